package layered

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// BarycenterOrderingAssigner reduces edge crossings by sweeping layers
// top-down and bottom-up, placing each node at the mean order of its
// neighbors in the previously fixed layer. A handful of passes gets
// within a few percent of optimal on interactive-scale graphs.
type BarycenterOrderingAssigner struct {
	Passes int // down/up sweep pairs, 4 when zero
}

func (a BarycenterOrderingAssigner) AssignOrdering(g Graph, lg LayeredGraph) {
	passes := a.Passes
	if passes == 0 {
		passes = 4
	}

	layers := lg.Layers()
	for _, layer := range layers {
		for order, n := range layer {
			lg.NodePosition[n] = LayerPosition{Layer: lg.NodePosition[n].Layer, Order: order}
		}
	}

	for i := 0; i < passes; i++ {
		for l := 1; l < len(layers); l++ {
			sortByBarycenter(layers[l], lg, lg.UpperNeighbors)
		}
		for l := len(layers) - 2; l >= 0; l-- {
			sortByBarycenter(layers[l], lg, lg.LowerNeighbors)
		}
	}

	for _, layer := range layers {
		for order, n := range layer {
			lg.NodePosition[n] = LayerPosition{Layer: lg.NodePosition[n].Layer, Order: order}
		}
	}
}

// sortByBarycenter reorders one layer in place by the mean order of each
// node's neighbors. Nodes without neighbors keep their relative order.
func sortByBarycenter(layer []NodeID, lg LayeredGraph, neighbors func(NodeID) []NodeID) {
	current := make(map[NodeID]int, len(layer))
	for i, n := range layer {
		current[n] = i
	}

	weight := make(map[NodeID]float64, len(layer))
	for _, n := range layer {
		ns := neighbors(n)
		if len(ns) == 0 {
			weight[n] = float64(current[n])
			continue
		}
		orders := make([]float64, len(ns))
		for i, m := range ns {
			orders[i] = float64(lg.NodePosition[m].Order)
		}
		weight[n] = stat.Mean(orders, nil)
	}

	sort.SliceStable(layer, func(i, j int) bool {
		return weight[layer[i]] < weight[layer[j]]
	})
	for order, n := range layer {
		lg.NodePosition[n] = LayerPosition{Layer: lg.NodePosition[n].Layer, Order: order}
	}
}
