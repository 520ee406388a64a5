package layout

import (
	"math"

	"github.com/agentgrid/canvas-engine/canvas"

	"gonum.org/v1/gonum/spatial/r2"
)

// ApplyCircular places nodes evenly around a circle by index, ignoring
// edges. Suits flows without a natural hierarchy, like peer
// collaboration. Returns a new slice.
func ApplyCircular(nodes []canvas.Node, center r2.Vec, radius float64) []canvas.Node {
	out := make([]canvas.Node, len(nodes))
	copy(out, nodes)
	if len(out) == 0 {
		return out
	}

	step := 2 * math.Pi / float64(len(out))
	for i := range out {
		angle := float64(i) * step
		w, h := out[i].Size()
		out[i].X = center.X + radius*math.Cos(angle) - w/2
		out[i].Y = center.Y + radius*math.Sin(angle) - h/2
	}
	return out
}
