package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/agentgrid/canvas-engine/canvas"
)

// Complexity scores a flow for display, capped at 100. Monotonic in
// node count, edge count, and number of distinct categories.
func Complexity(nodes []canvas.Node, edges []canvas.Edge) int {
	categories := map[string]bool{}
	for _, n := range nodes {
		if n.Category != "" {
			categories[n.Category] = true
		}
	}

	score := 5*len(nodes) + 3*len(edges) + 10*len(categories)
	if score > 100 {
		score = 100
	}
	return score
}

// RouteEdges picks a rendering type per edge: step when the horizontal
// span between node centers dominates, smoothstep otherwise. Edges with
// a missing endpoint are returned unchanged. Returns a new slice.
func RouteEdges(edges []canvas.Edge, nodes []canvas.Node) []canvas.Edge {
	byID := make(map[string]canvas.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	out := make([]canvas.Edge, len(edges))
	copy(out, edges)
	for i, e := range out {
		src, okS := byID[e.Source]
		dst, okT := byID[e.Target]
		if !okS || !okT {
			continue
		}

		d := r2.Sub(dst.Center(), src.Center())
		if math.Abs(d.X) > math.Abs(d.Y)*2 {
			out[i].Type = canvas.EdgeStep
		} else {
			out[i].Type = canvas.EdgeSmoothstep
		}
	}
	return out
}
