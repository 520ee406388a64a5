package layout

import (
	"github.com/agentgrid/canvas-engine/canvas"
	"github.com/agentgrid/canvas-engine/layout/layered"
)

// transitionHint is attached by ApplyWithTransition so the client
// animates nodes into their new positions.
const transitionHint = "all 0.3s ease-in-out"

// Apply positions nodes according to the given layout type and returns
// a new slice; the input is untouched. Edges pass through unchanged.
// It never fails: unknown types fall back to the hybrid preset, and a
// node the pipeline loses (protocol violation, checked defensively)
// keeps its prior position under a logged warning.
func (e Engine) Apply(nodes []canvas.Node, edges []canvas.Edge, t Type) []canvas.Node {
	if len(nodes) == 0 {
		return []canvas.Node{}
	}
	if t == Circular {
		bounds := canvas.Bounds{W: 800, H: 600}
		return ApplyCircular(nodes, bounds.Center(), 200)
	}

	g, ids := buildLayeredGraph(nodes, edges)
	layered.NewSugiyama(e.config(t)).UpdateGraphLayout(g)

	out := make([]canvas.Node, len(nodes))
	copy(out, nodes)
	for i := range out {
		placed, ok := g.Nodes[ids[i]]
		if !ok {
			e.logger().Warn("node missing from layout result, keeping prior position", "node", out[i].ID)
			continue
		}
		x, y := float64(placed.X), float64(placed.Y)
		if Configs[t].Direction == LeftToRight {
			// pipeline lays top-to-bottom; transpose for horizontal flows
			w, h := out[i].Size()
			cx, cy := x+w/2, y+h/2
			x, y = cy-w/2, cx-h/2
		}
		out[i].X, out[i].Y = x, y
	}
	return out
}

// ApplyWithTransition is Apply plus a CSS transition hint on each node.
func (e Engine) ApplyWithTransition(nodes []canvas.Node, edges []canvas.Edge, t Type) []canvas.Node {
	out := e.Apply(nodes, edges, t)
	for i := range out {
		style := make(map[string]string, len(out[i].Style)+1)
		for k, v := range out[i].Style {
			style[k] = v
		}
		style["transition"] = transitionHint
		out[i].Style = style
	}
	return out
}

// buildLayeredGraph converts canvas nodes and edges to the pipeline's
// representation. Ids are sequential by node index. Dangling and self
// edges are skipped, not errored.
func buildLayeredGraph(nodes []canvas.Node, edges []canvas.Edge) (layered.Graph, []layered.NodeID) {
	g := layered.Graph{
		Nodes: make(map[layered.NodeID]layered.Node, len(nodes)),
		Edges: make(map[[2]layered.NodeID]layered.Edge, len(edges)),
	}

	ids := make([]layered.NodeID, len(nodes))
	byID := make(map[string]layered.NodeID, len(nodes))
	for i, n := range nodes {
		id := layered.NodeID(i + 1)
		ids[i] = id
		byID[n.ID] = id
		w, h := n.Size()
		g.Nodes[id] = layered.Node{W: int(w), H: int(h)}
	}

	for _, e := range edges {
		src, okS := byID[e.Source]
		dst, okT := byID[e.Target]
		if !okS || !okT || src == dst {
			continue
		}
		g.Edges[[2]layered.NodeID{src, dst}] = layered.Edge{}
	}
	return g, ids
}
