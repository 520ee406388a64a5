package canvas

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Overlaps reports whether the centers of a and b are closer than
// spacing. This is a circular approximation, not a rectangle
// intersection test; elongated nodes can slip past it.
func Overlaps(a, b Node, spacing float64) bool {
	return r2.Norm(r2.Sub(a.Center(), b.Center())) < spacing
}

// OverlapsAny reports whether probe overlaps any of nodes at the given
// spacing.
func OverlapsAny(probe Node, nodes []Node, spacing float64) bool {
	for _, n := range nodes {
		if Overlaps(probe, n, spacing) {
			return true
		}
	}
	return false
}

// SnapTo rounds v to the nearest multiple of grid.
func SnapTo(v, grid float64) float64 {
	return math.Round(v/grid) * grid
}

// Snap rounds v to the nearest multiple of GridSize.
func Snap(v float64) float64 {
	return SnapTo(v, GridSize)
}

// inBounds reports whether a node of size w×h placed at p stays inside
// the padded canvas.
func inBounds(p r2.Vec, w, h float64, bounds Bounds) bool {
	return p.X >= Padding && p.X <= bounds.W-Padding-w &&
		p.Y >= Padding && p.Y <= bounds.H-Padding-h
}
