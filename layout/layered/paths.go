package layered

import "fmt"

// StraightEdgePathAssigner routes each edge through the centers of its
// chain nodes, dummies included, so long edges bend once per layer.
type StraightEdgePathAssigner struct{}

func (StraightEdgePathAssigner) AssignEdgePaths(g Graph, lg LayeredGraph, centers map[NodeID]Position) {
	assigned := 0
	for e, chain := range lg.Edges {
		if _, ok := g.Edges[e]; !ok {
			panic(fmt.Errorf("layered graph edge(%v) is not found in the original graph", e))
		}

		path := make([]Position, len(chain))
		for i, n := range chain {
			path[i] = centers[n]
		}
		g.Edges[e] = Edge{Path: path}
		assigned++
	}

	if assigned != len(g.Edges) {
		panic(fmt.Errorf("layered graph has wrong number of edges(%d) vs graph num edges(%d)", assigned, len(g.Edges)))
	}
}
