package layered

import "testing"

func TestBarycenterOrderingUncrossesTwoLayers(t *testing.T) {
	g := Graph{
		Nodes: map[NodeID]Node{1: {}, 2: {}, 3: {}, 4: {}},
		Edges: map[[2]NodeID]Edge{
			{1, 4}: {},
			{2, 3}: {},
		},
	}
	lg := NewLayeredGraph(g)

	BarycenterOrderingAssigner{}.AssignOrdering(g, lg)

	// whatever order the top layer settles into, the bottom layer must
	// mirror it so the two edges do not cross
	topLeftFirst := lg.NodePosition[1].Order < lg.NodePosition[2].Order
	bottomMirrors := lg.NodePosition[4].Order < lg.NodePosition[3].Order
	if topLeftFirst != bottomMirrors {
		t.Errorf("edges cross: positions %+v", lg.NodePosition)
	}
}

func TestBarycenterOrderingAssignsDistinctOrders(t *testing.T) {
	g := Graph{
		Nodes: map[NodeID]Node{1: {}, 2: {}, 3: {}, 4: {}, 5: {}},
		Edges: map[[2]NodeID]Edge{
			{1, 3}: {}, {1, 4}: {}, {2, 5}: {},
		},
	}
	lg := NewLayeredGraph(g)

	BarycenterOrderingAssigner{}.AssignOrdering(g, lg)

	for _, layer := range lg.Layers() {
		seen := map[int]bool{}
		for _, n := range layer {
			order := lg.NodePosition[n].Order
			if seen[order] {
				t.Errorf("duplicate order %d in layer %v", order, layer)
			}
			seen[order] = true
		}
	}
}
