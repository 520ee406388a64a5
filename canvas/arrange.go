package canvas

// arrangeMaxPasses caps the de-overlap loop so a dense canvas cannot
// stall the UI thread.
const arrangeMaxPasses = 50

// AutoArrange resolves pairwise overlaps across the whole canvas. The
// later-indexed node of each overlapping pair is moved to a position
// found by FindOptimalPosition with every other node as an obstacle.
// Passes repeat until a clean sweep or the pass cap, whichever first;
// dense inputs may still overlap on return. The input slice is not
// mutated.
func AutoArrange(nodes []Node, bounds Bounds) []Node {
	out := make([]Node, len(nodes))
	copy(out, nodes)

	for pass := 0; pass < arrangeMaxPasses; pass++ {
		moved := false
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				if !Overlaps(out[i], out[j], MinSpacing) {
					continue
				}
				obstacles := make([]Node, 0, len(out)-1)
				obstacles = append(obstacles, out[:j]...)
				obstacles = append(obstacles, out[j+1:]...)
				p := FindOptimalPosition(obstacles, out[j].Pos(), bounds)
				out[j].X, out[j].Y = p.X, p.Y
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	return out
}
