package canvas

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPredictCollisionClear(t *testing.T) {
	dragged := Node{ID: "drag", X: 100, Y: 100, W: 200, H: 120}
	nodes := []Node{
		dragged, // the dragged node itself is excluded from the scan
		{ID: "far", X: 1000, Y: 1000},
	}

	pred := PredictCollision(dragged, nodes, testBounds)

	if pred.HasCollision {
		t.Error("no collision expected")
	}
	if !pred.IsOptimal {
		t.Error("clear position should be reported optimal")
	}
	if pred.Optimal != nil || len(pred.Suggested) != 0 {
		t.Error("clear position should carry no suggestions")
	}
}

func TestPredictCollisionSuggestsEscapes(t *testing.T) {
	dragged := Node{ID: "drag", X: 100, Y: 100, W: 200, H: 120}
	nodes := []Node{{ID: "other", X: 150, Y: 150}}

	pred := PredictCollision(dragged, nodes, testBounds)

	if !pred.HasCollision {
		t.Fatal("expected collision")
	}
	if len(pred.Suggested) == 0 {
		t.Error("expected at least one axis-offset escape")
	}
	if len(pred.Suggested) > 3 {
		t.Errorf("got %d suggestions, want at most 3", len(pred.Suggested))
	}
	for _, p := range pred.Suggested {
		moved := dragged
		moved.X, moved.Y = p.X, p.Y
		if OverlapsAny(moved, nodes, MinSpacing) {
			t.Errorf("suggested position %v still collides", p)
		}
	}
	if pred.Optimal == nil {
		t.Fatal("expected a fallback optimal position")
	}
	placed := Node{X: pred.Optimal.X, Y: pred.Optimal.Y}
	if OverlapsAny(placed, nodes, MinSpacing) {
		t.Errorf("optimal position %v still collides", *pred.Optimal)
	}
}

func TestPredictionWireCasing(t *testing.T) {
	// positions cross the HTTP surface: keys stay camelCase like the
	// rest of the payload
	dragged := Node{ID: "drag", X: 100, Y: 100, W: 200, H: 120}
	pred := PredictCollision(dragged, []Node{{ID: "other", X: 150, Y: 150}}, testBounds)

	b, err := json.Marshal(pred)
	if err != nil {
		t.Fatal(err)
	}
	body := string(b)
	if !strings.Contains(body, `"optimalPosition":{"x":`) {
		t.Errorf(`optimal position not lowercased: %s`, body)
	}
	if strings.Contains(body, `"X":`) {
		t.Errorf("uppercase coordinate keys on the wire: %s", body)
	}
}
