package layered

import (
	"fmt"
	"sort"
)

type LayerPosition struct {
	Layer int // rank index, root layer is 0
	Order int // ordering within the layer
}

func (p LayerPosition) IsLeftOf(other LayerPosition) bool {
	if p.Layer != other.Layer {
		panic(fmt.Sprintf("positions not on same layer: %+v < %+v", p, other))
	}
	return p.Order < other.Order
}

// LayeredGraph is the graph with dummy nodes added so that no segment
// spans more than one layer. A segment is either a real short edge or
// one piece of a split long edge.
type LayeredGraph struct {
	Segments     map[[2]NodeID]bool       // short edges and pieces of long edges
	Dummy        map[NodeID]bool          // nodes introduced by splitting long edges
	NodePosition map[NodeID]LayerPosition // node -> {layer, order in layer}
	Edges        map[[2]NodeID][]NodeID   // real edge -> {real, dummy..., real} chain
}

// Layers returns node ids grouped by layer, ordered within each layer.
func (g LayeredGraph) Layers() [][]NodeID {
	maxLayer := 0
	for _, position := range g.NodePosition {
		if position.Layer > maxLayer {
			maxLayer = position.Layer
		}
	}

	layers := make([][]NodeID, maxLayer+1)
	for node, position := range g.NodePosition {
		layers[position.Layer] = append(layers[position.Layer], node)
	}

	for i := range layers {
		sort.Slice(layers[i], func(a, b int) bool {
			return g.NodePosition[layers[i][a]].IsLeftOf(g.NodePosition[layers[i][b]])
		})
	}
	return layers
}

func (g LayeredGraph) Validate() error {
	for e := range g.Segments {
		from := g.NodePosition[e[0]].Layer
		to := g.NodePosition[e[1]].Layer
		if from >= to {
			return fmt.Errorf("segment(%v) is wrong direction, got from layer(%d) to layer(%d)", e, from, to)
		}
	}
	return nil
}

// UpperNeighbors are nodes one layer up connected to the given node.
func (g LayeredGraph) UpperNeighbors(node NodeID) []NodeID {
	var nodes []NodeID
	for e := range g.Segments {
		if e[1] == node && g.NodePosition[e[0]].Layer == g.NodePosition[node].Layer-1 {
			nodes = append(nodes, e[0])
		}
	}
	return nodes
}

// LowerNeighbors are nodes one layer down connected to the given node.
func (g LayeredGraph) LowerNeighbors(node NodeID) []NodeID {
	var nodes []NodeID
	for e := range g.Segments {
		if e[0] == node && g.NodePosition[e[1]].Layer == g.NodePosition[node].Layer+1 {
			nodes = append(nodes, e[1])
		}
	}
	return nodes
}
