package layered

import "fmt"

// NewLayeredGraph assigns every node to a layer and splits long edges
// with dummy nodes. Expects that g has no cycles.
func NewLayeredGraph(g Graph) LayeredGraph {
	positions := assignLayers(g)
	edges := splitLongEdges(g, positions)
	return LayeredGraph{
		NodePosition: positions,
		Segments:     makeSegments(edges),
		Dummy:        collectDummies(edges),
		Edges:        edges,
	}
}

// assignLayers gives each node the longest path depth from a root, so
// every segment points strictly downward.
func assignLayers(g Graph) map[NodeID]LayerPosition {
	positions := make(map[NodeID]LayerPosition, len(g.Nodes))
	children := make(map[NodeID][]NodeID)
	for e := range g.Edges {
		children[e[0]] = append(children[e[0]], e[1])
	}

	for _, root := range g.Roots() {
		positions[root] = LayerPosition{}
		for que := []NodeID{root}; len(que) > 0; {
			p := que[0]
			que = que[1:]
			for _, child := range children[p] {
				if l := positions[p].Layer + 1; l > positions[child].Layer {
					positions[child] = LayerPosition{Layer: l}
				}
				que = append(que, child)
			}
		}
	}
	return positions
}

// splitLongEdges turns every edge into a chain of nodes, inserting a
// dummy node per crossed layer. Dummies get fresh ids past the caller's
// maximum and are registered in positions.
func splitLongEdges(g Graph, positions map[NodeID]LayerPosition) map[[2]NodeID][]NodeID {
	edges := make(map[[2]NodeID][]NodeID, len(g.Edges))

	nextDummyID := maxNodeID(g) + 1
	for e := range g.Edges {
		fromLayer := positions[e[0]].Layer
		toLayer := positions[e[1]].Layer

		chain := []NodeID{e[0]}
		for layer := fromLayer + 1; layer < toLayer; layer++ {
			positions[nextDummyID] = LayerPosition{Layer: layer}
			chain = append(chain, nextDummyID)
			nextDummyID++
		}
		chain = append(chain, e[1])

		edges[e] = chain
	}
	return edges
}

func makeSegments(edges map[[2]NodeID][]NodeID) map[[2]NodeID]bool {
	segments := map[[2]NodeID]bool{}
	for e, chain := range edges {
		if len(chain) < 2 {
			panic(fmt.Errorf("edge(%v) chain has %d nodes, at least 2 expected", e, len(chain)))
		}
		for i := 1; i < len(chain); i++ {
			segments[[2]NodeID{chain[i-1], chain[i]}] = true
		}
	}
	return segments
}

func collectDummies(edges map[[2]NodeID][]NodeID) map[NodeID]bool {
	dummy := map[NodeID]bool{}
	for _, chain := range edges {
		for i := 1; i < len(chain)-1; i++ {
			dummy[chain[i]] = true
		}
	}
	return dummy
}
