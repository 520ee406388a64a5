package layout

import (
	"testing"

	"github.com/agentgrid/canvas-engine/canvas"
)

func TestApplyOrdersChainByRank(t *testing.T) {
	nodes := []canvas.Node{
		{ID: "a", X: 900, Y: 900},
		{ID: "b", X: 900, Y: 900},
		{ID: "c", X: 900, Y: 900},
	}
	edges := []canvas.Edge{
		{ID: "e1", Source: "a", Target: "b"},
		{ID: "e2", Source: "b", Target: "c"},
	}

	var e Engine
	got := e.Apply(nodes, edges, Hierarchical)

	if !(got[0].Y < got[1].Y && got[1].Y < got[2].Y) {
		t.Errorf("chain ranks out of order: ys %v %v %v", got[0].Y, got[1].Y, got[2].Y)
	}
	if got[0].X != got[1].X || got[1].X != got[2].X {
		t.Errorf("single-node ranks should share x: %v %v %v", got[0].X, got[1].X, got[2].X)
	}

	// input untouched
	if nodes[0].Y != 900 {
		t.Error("Apply mutated its input")
	}
}

func TestApplyLeftToRightTransposes(t *testing.T) {
	nodes := []canvas.Node{{ID: "a"}, {ID: "b"}}
	edges := []canvas.Edge{{ID: "e", Source: "a", Target: "b"}}

	var e Engine
	got := e.Apply(nodes, edges, Parallel) // LR preset

	if !(got[0].Center().X < got[1].Center().X) {
		t.Errorf("left-to-right flow should advance on x: %v vs %v", got[0].Center().X, got[1].Center().X)
	}
}

func TestApplyToleratesDanglingAndSelfEdges(t *testing.T) {
	nodes := []canvas.Node{{ID: "a"}, {ID: "b"}}
	edges := []canvas.Edge{
		{ID: "ok", Source: "a", Target: "b"},
		{ID: "dangling", Source: "a", Target: "ghost"},
		{ID: "self", Source: "a", Target: "a"},
	}

	var e Engine
	got := e.Apply(nodes, edges, Hybrid)
	if len(got) != 2 {
		t.Fatalf("got %d nodes, want 2", len(got))
	}
}

func TestApplyCycleDoesNotPanic(t *testing.T) {
	nodes := []canvas.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	edges := []canvas.Edge{
		{ID: "e1", Source: "a", Target: "b"},
		{ID: "e2", Source: "b", Target: "c"},
		{ID: "e3", Source: "c", Target: "a"},
	}

	var e Engine
	got := e.Apply(nodes, edges, Hybrid)
	if len(got) != 3 {
		t.Fatalf("got %d nodes, want 3", len(got))
	}
}

func TestApplyEmpty(t *testing.T) {
	var e Engine
	if got := e.Apply(nil, nil, Hierarchical); len(got) != 0 {
		t.Errorf("got %d nodes, want 0", len(got))
	}
}

func TestApplyWithTransitionAttachesHint(t *testing.T) {
	nodes := []canvas.Node{{ID: "a"}, {ID: "b"}}
	edges := []canvas.Edge{{ID: "e", Source: "a", Target: "b"}}

	var e Engine
	got := e.ApplyWithTransition(nodes, edges, Sequential)

	for _, n := range got {
		if n.Style["transition"] != transitionHint {
			t.Errorf("node %s missing transition hint, style: %v", n.ID, n.Style)
		}
	}
	if nodes[0].Style != nil {
		t.Error("input styles were mutated")
	}
}

func TestApplyUnknownTypeFallsBack(t *testing.T) {
	nodes := []canvas.Node{{ID: "a"}, {ID: "b"}}
	edges := []canvas.Edge{{ID: "e", Source: "a", Target: "b"}}

	var e Engine
	got := e.Apply(nodes, edges, Type("bogus"))
	if got[0].Y == got[1].Y {
		t.Error("fallback layout should still rank connected nodes apart")
	}
}
