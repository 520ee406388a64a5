package layout

import (
	"fmt"
	"testing"

	"github.com/agentgrid/canvas-engine/canvas"
)

func chainEdges(n int) []canvas.Edge {
	edges := make([]canvas.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, canvas.Edge{
			ID:     fmt.Sprintf("e%d", i),
			Source: fmt.Sprintf("n%d", i),
			Target: fmt.Sprintf("n%d", i+1),
		})
	}
	return edges
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		nodes []canvas.Node
		edges []canvas.Edge
		want  Type
	}{
		{
			name: "empty graph defaults to hybrid",
			want: Hybrid,
		},
		{
			name: "manager node forces hierarchy",
			nodes: []canvas.Node{
				{ID: "n0", Category: "Ops"},
				{ID: "n1", Category: "Ops", Manager: true},
			},
			edges: chainEdges(4),
			want:  Hierarchical,
		},
		{
			name: "sparse graph reads as sequence",
			nodes: []canvas.Node{
				{ID: "n0", Category: "A"}, {ID: "n1", Category: "B"},
				{ID: "n2", Category: "C"}, {ID: "n3", Category: "D"},
				{ID: "n4", Category: "E"},
			},
			edges: chainEdges(4), // avg 0.8
			want:  Sequential,
		},
		{
			name: "single category with dense edges is parallel",
			nodes: []canvas.Node{
				{ID: "n0", Category: "Engineering"}, {ID: "n1", Category: "Engineering"},
				{ID: "n2", Category: "Engineering"}, {ID: "n3", Category: "Engineering"},
			},
			edges: chainEdges(5), // avg 1.25
			want:  Parallel,
		},
		{
			name: "mixed categories with dense edges is hybrid",
			nodes: []canvas.Node{
				{ID: "n0", Category: "Engineering"}, {ID: "n1", Category: "Sales"},
				{ID: "n2", Category: "Engineering"}, {ID: "n3", Category: "Sales"},
			},
			edges: chainEdges(5), // avg 1.25
			want:  Hybrid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.nodes, tt.edges); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}
