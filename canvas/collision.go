package canvas

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// spiral search parameters: sample 12 angles per ring, grow the ring by
// half the minimum spacing each round.
const (
	spiralSamples    = 12
	spiralRadiusStep = MinSpacing / 2
)

// FindOptimalPosition returns a position at or near preferred where a
// default-sized node keeps MinSpacing from every node in nodes. It never
// fails: when both the spiral search and the grid scan come up empty it
// returns the padded top-left corner, overlap or not.
func FindOptimalPosition(nodes []Node, preferred r2.Vec, bounds Bounds) r2.Vec {
	if len(nodes) == 0 {
		x := math.Max(preferred.X, Padding)
		y := math.Max(preferred.Y, Padding)
		return r2.Vec{X: Snap(x), Y: Snap(y)}
	}

	// candidates are snapped before the overlap test: snapping can move
	// a point up to half a grid cell, enough to drag a barely-clear
	// position back inside MinSpacing of an obstacle
	snapped := r2.Vec{X: Snap(preferred.X), Y: Snap(preferred.Y)}
	if !OverlapsAny(Node{X: snapped.X, Y: snapped.Y}, nodes, MinSpacing) {
		return snapped
	}

	if p, ok := spiralSearch(nodes, preferred, bounds); ok {
		return p
	}
	return gridScan(nodes, bounds)
}

// spiralSearch walks expanding rings around preferred, testing 12 angles
// per ring. Angular order within a ring takes priority over larger radii.
func spiralSearch(nodes []Node, preferred r2.Vec, bounds Bounds) (r2.Vec, bool) {
	maxRadius := math.Min(bounds.W, bounds.H) / 2
	for radius := MinSpacing; radius <= maxRadius; radius += spiralRadiusStep {
		for i := 0; i < spiralSamples; i++ {
			angle := 2 * math.Pi * float64(i) / spiralSamples
			p := r2.Vec{
				X: Snap(preferred.X + radius*math.Cos(angle)),
				Y: Snap(preferred.Y + radius*math.Sin(angle)),
			}
			if !inBounds(p, AgentWidth, AgentHeight, bounds) {
				continue
			}
			if !OverlapsAny(Node{X: p.X, Y: p.Y}, nodes, MinSpacing) {
				return p, true
			}
		}
	}
	return r2.Vec{}, false
}

// gridScan walks cells row-major across the padded canvas and returns
// the first free one. A full canvas degrades to the padded corner.
func gridScan(nodes []Node, bounds Bounds) r2.Vec {
	const (
		cellW = AgentWidth + MinSpacing
		cellH = AgentHeight + MinSpacing
	)
	cols := int((bounds.W - 2*Padding) / cellW)
	rows := int((bounds.H - 2*Padding) / cellH)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := r2.Vec{
				X: Snap(Padding + float64(col)*cellW),
				Y: Snap(Padding + float64(row)*cellH),
			}
			if !OverlapsAny(Node{X: p.X, Y: p.Y}, nodes, MinSpacing) {
				return p
			}
		}
	}
	return r2.Vec{X: Snap(Padding), Y: Snap(Padding)}
}
