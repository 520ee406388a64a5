package layered

// Scaler scales an existing layout by a constant factor. Node sizes are
// kept, only positions and edge paths move.
type Scaler struct {
	Scale float64
}

func (l Scaler) UpdateGraphLayout(g Graph) {
	for i := range g.Nodes {
		g.Nodes[i] = Node{
			Position: Position{
				X: int(float64(g.Nodes[i].X) * l.Scale),
				Y: int(float64(g.Nodes[i].Y) * l.Scale),
			},
			W: g.Nodes[i].W,
			H: g.Nodes[i].H,
		}
	}

	for e := range g.Edges {
		for p, pos := range g.Edges[e].Path {
			g.Edges[e].Path[p] = Position{
				X: int(float64(pos.X) * l.Scale),
				Y: int(float64(pos.Y) * l.Scale),
			}
		}

		if len(g.Edges[e].Path) == 0 {
			g.Edges[e] = Edge{Path: make([]Position, 2)}
		}

		// ends stay glued to node centers
		g.Edges[e].Path[0] = g.Nodes[e[0]].CenterXY()
		g.Edges[e].Path[len(g.Edges[e].Path)-1] = g.Nodes[e[1]].CenterXY()
	}
}

// FitScale returns the factor that fits the graph's bounding box into
// w×h, never upscaling. A degenerate box fits as-is.
func FitScale(g Graph, w, h int) float64 {
	minx, miny, maxx, maxy := g.BoundingBox()
	bw, bh := maxx-minx, maxy-miny
	if bw <= 0 || bh <= 0 || w <= 0 || h <= 0 {
		return 1
	}

	scale := 1.0
	if s := float64(w) / float64(bw); s < scale {
		scale = s
	}
	if s := float64(h) / float64(bh); s < scale {
		scale = s
	}
	return scale
}
