// Package canvas holds the drawing-surface data model and the collision
// resolver that keeps agent nodes apart on it.
package canvas

import "gonum.org/v1/gonum/spatial/r2"

// Canvas geometry constants, in canvas units.
const (
	// MinSpacing is the minimum center-to-center distance two nodes
	// should keep between each other.
	MinSpacing = 150.0

	// GridSize is the snapping grid pitch for engine-chosen positions.
	GridSize = 50.0

	// Padding is kept clear between engine-chosen positions and the
	// canvas border.
	Padding = 100.0

	// AgentWidth and AgentHeight are the node dimensions assumed when a
	// node does not carry its own.
	AgentWidth  = 200.0
	AgentHeight = 100.0
)

// Node is a positioned, sized rectangle representing one workflow agent.
// X and Y are the top-left corner.
type Node struct {
	ID       string            `json:"id"`
	X        float64           `json:"x"`
	Y        float64           `json:"y"`
	W        float64           `json:"width,omitempty"`
	H        float64           `json:"height,omitempty"`
	Category string            `json:"category,omitempty"`
	Manager  bool              `json:"manager,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Meta     map[string]any    `json:"meta,omitempty"`
}

// Size returns the node dimensions, falling back to the agent defaults
// when unset.
func (n Node) Size() (w, h float64) {
	w, h = n.W, n.H
	if w == 0 {
		w = AgentWidth
	}
	if h == 0 {
		h = AgentHeight
	}
	return w, h
}

// Pos returns the top-left corner.
func (n Node) Pos() r2.Vec {
	return r2.Vec{X: n.X, Y: n.Y}
}

// Center returns the node center.
func (n Node) Center() r2.Vec {
	w, h := n.Size()
	return r2.Vec{X: n.X + w/2, Y: n.Y + h/2}
}

// EdgeType selects how an edge is drawn between two nodes.
type EdgeType string

const (
	EdgeSmoothstep EdgeType = "smoothstep"
	EdgeStep       EdgeType = "step"
)

// Edge connects two nodes by ID. Endpoints are not required to resolve;
// operations that need both skip edges that dangle.
type Edge struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   EdgeType `json:"type,omitempty"`
}

// Bounds is the logical drawing-surface extent. It does not auto-expand.
type Bounds struct {
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Center returns the canvas center point.
func (b Bounds) Center() r2.Vec {
	return r2.Vec{X: b.W / 2, Y: b.H / 2}
}

// Point is a canvas coordinate as it crosses the wire. Internal
// geometry uses r2.Vec; this type only keys the JSON casing.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Zone is a scored candidate region for manual node placement. Advisory
// only, never persisted.
type Zone struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"width"`
	H     float64 `json:"height"`
	Score float64 `json:"score"`
}
