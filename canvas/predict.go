package canvas

const maxSuggestions = 3

// Prediction is the live drag-feedback result for one pointer position.
type Prediction struct {
	HasCollision bool    `json:"hasCollision"`
	IsOptimal    bool    `json:"isOptimalPosition"`
	Suggested    []Point `json:"suggestedPositions,omitempty"`
	Optimal      *Point  `json:"optimalPosition,omitempty"`
}

// PredictCollision tests dragged against every other node. On collision
// it probes the four axis-aligned offsets at MinSpacing for quick
// escapes and runs the full position search as a fallback suggestion.
// Called on every pointer move, so the clear path is a single O(n) scan.
func PredictCollision(dragged Node, nodes []Node, bounds Bounds) Prediction {
	others := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.ID != dragged.ID {
			others = append(others, n)
		}
	}

	if !OverlapsAny(dragged, others, MinSpacing) {
		return Prediction{IsOptimal: true}
	}

	pred := Prediction{HasCollision: true}
	offsets := []Point{
		{X: MinSpacing}, {X: -MinSpacing},
		{Y: MinSpacing}, {Y: -MinSpacing},
	}
	for _, off := range offsets {
		if len(pred.Suggested) == maxSuggestions {
			break
		}
		probe := dragged
		probe.X += off.X
		probe.Y += off.Y
		if !OverlapsAny(probe, others, MinSpacing) {
			pred.Suggested = append(pred.Suggested, Point{X: probe.X, Y: probe.Y})
		}
	}

	opt := FindOptimalPosition(others, dragged.Pos(), bounds)
	pred.Optimal = &Point{X: opt.X, Y: opt.Y}
	return pred
}
