package canvas

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

const maxZones = 10

// PlacementZones samples candidate drop regions on a MinSpacing grid and
// scores the unoccupied ones. Purely advisory: the UI highlights them,
// nothing places into them. Occupancy uses a slightly relaxed spacing so
// zones next to (but clear of) a node survive the filter.
func PlacementZones(nodes []Node, bounds Bounds) []Zone {
	center := bounds.Center()

	var zones []Zone
	for y := Padding; y+AgentHeight <= bounds.H-Padding; y += MinSpacing {
		for x := Padding; x+AgentWidth <= bounds.W-Padding; x += MinSpacing {
			cand := Node{X: x, Y: y}
			if OverlapsAny(cand, nodes, MinSpacing*0.8) {
				continue
			}
			zones = append(zones, Zone{
				X: x, Y: y,
				W: AgentWidth, H: AgentHeight,
				Score: scoreZone(cand, nodes, center),
			})
		}
	}

	sort.SliceStable(zones, func(i, j int) bool {
		return zones[i].Score > zones[j].Score
	})
	if len(zones) > maxZones {
		zones = zones[:maxZones]
	}
	return zones
}

// scoreZone prefers zones near the canvas center, at a comfortable
// distance from their nearest neighbors, and on the snapping grid.
func scoreZone(cand Node, nodes []Node, center r2.Vec) float64 {
	score := 100 - r2.Norm(r2.Sub(cand.Center(), center))*0.1

	nearest := math.Inf(1)
	for _, n := range nodes {
		if d := r2.Norm(r2.Sub(cand.Center(), n.Center())); d < nearest {
			nearest = d
		}
	}
	switch {
	case nearest < MinSpacing:
		score -= 50
	case nearest <= 2*MinSpacing:
		score += 20
	}

	if Snap(cand.X) == cand.X && Snap(cand.Y) == cand.Y {
		score += 5
	}

	return math.Max(0, score)
}
