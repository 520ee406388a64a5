package layered

type NodesHorizontalCoordinatesAssigner interface {
	NodesHorizontalCoordinates(g Graph, lg LayeredGraph) map[NodeID]int
}

type NodesVerticalCoordinatesAssigner interface {
	NodesVerticalCoordinates(g Graph, lg LayeredGraph) map[NodeID]int
}

// PackedHorizontalAssigner lays nodes of each layer left to right with
// NodeSep between them, then centers every layer on the widest one.
// Coordinates are node centers. Dummy nodes take zero width.
type PackedHorizontalAssigner struct {
	NodeSep int
	MarginX int
}

func (a PackedHorizontalAssigner) NodesHorizontalCoordinates(g Graph, lg LayeredGraph) map[NodeID]int {
	layers := lg.Layers()

	widths := make([]int, len(layers))
	for l, layer := range layers {
		for i, n := range layer {
			if i > 0 {
				widths[l] += a.NodeSep
			}
			widths[l] += g.Nodes[n].W
		}
	}
	maxWidth := 0
	for _, w := range widths {
		if w > maxWidth {
			maxWidth = w
		}
	}

	xs := make(map[NodeID]int, len(lg.NodePosition))
	for l, layer := range layers {
		x := a.MarginX + (maxWidth-widths[l])/2
		for i, n := range layer {
			if i > 0 {
				x += a.NodeSep
			}
			w := g.Nodes[n].W
			xs[n] = x + w/2
			x += w
		}
	}
	return xs
}

// RankVerticalAssigner stacks layers downward, each as tall as its
// tallest node, RankSep apart. Coordinates are node centers.
type RankVerticalAssigner struct {
	RankSep int
	MarginY int
}

func (a RankVerticalAssigner) NodesVerticalCoordinates(g Graph, lg LayeredGraph) map[NodeID]int {
	layers := lg.Layers()

	ys := make(map[NodeID]int, len(lg.NodePosition))
	y := a.MarginY
	for _, layer := range layers {
		tallest := 0
		for _, n := range layer {
			if h := g.Nodes[n].H; h > tallest {
				tallest = h
			}
		}
		for _, n := range layer {
			ys[n] = y + tallest/2
		}
		y += tallest + a.RankSep
	}
	return ys
}
