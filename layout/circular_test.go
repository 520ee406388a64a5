package layout

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/agentgrid/canvas-engine/canvas"
)

func TestApplyCircular(t *testing.T) {
	nodes := []canvas.Node{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
	}
	center := r2.Vec{X: 400, Y: 300}

	got := ApplyCircular(nodes, center, 200)

	// index 0 sits at angle 0, east of center
	if math.Abs(got[0].X-500) > 1e-6 || math.Abs(got[0].Y-250) > 1e-6 {
		t.Errorf("node 0 at (%v,%v), want (500,250)", got[0].X, got[0].Y)
	}
	// index 1 sits a quarter turn on, south of center
	if math.Abs(got[1].X-300) > 1e-6 || math.Abs(got[1].Y-450) > 1e-6 {
		t.Errorf("node 1 at (%v,%v), want (300,450)", got[1].X, got[1].Y)
	}

	// every node center sits on the circle
	for _, n := range got {
		d := r2.Norm(r2.Sub(n.Center(), center))
		if math.Abs(d-200) > 1e-6 {
			t.Errorf("node %s center %v off the circle: radius %v", n.ID, n.Center(), d)
		}
	}

	// input untouched
	if nodes[0].X != 0 || nodes[0].Y != 0 {
		t.Error("ApplyCircular mutated its input")
	}
}

func TestApplyCircularEmpty(t *testing.T) {
	if got := ApplyCircular(nil, r2.Vec{}, 100); len(got) != 0 {
		t.Errorf("got %d nodes, want 0", len(got))
	}
}
