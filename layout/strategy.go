package layout

import "github.com/agentgrid/canvas-engine/canvas"

// sparseEdgeRatio is the average edges-per-node below which a flow
// reads as a simple sequence.
const sparseEdgeRatio = 1.2

// Detect picks the layout type matching the graph's shape. Checks run
// in priority order: a manager node forces a hierarchy, sparse graphs
// read as sequences, a single shared category reads as parallel peers,
// and everything else gets the hybrid default. An empty graph is hybrid.
func Detect(nodes []canvas.Node, edges []canvas.Edge) Type {
	if len(nodes) == 0 {
		return Hybrid
	}

	for _, n := range nodes {
		if n.Manager {
			return Hierarchical
		}
	}

	if float64(len(edges))/float64(len(nodes)) < sparseEdgeRatio {
		return Sequential
	}

	category := nodes[0].Category
	single := true
	for _, n := range nodes[1:] {
		if n.Category != category {
			single = false
			break
		}
	}
	if single {
		return Parallel
	}

	return Hybrid
}
