// Package layered assigns rank/row coordinates to a directed graph of
// sized nodes, Sugiyama-style: cycle removal, layering with dummy nodes,
// barycenter ordering, then coordinate and edge-path assignment.
package layered

// NodeID identifies a node inside one layout run. Callers hand out
// sequential ids; ids above the caller's maximum are reserved for dummy
// nodes created while splitting long edges.
type NodeID = uint64

type Position struct {
	X int
	Y int
}

// Graph tells how to position nodes and paths for edges.
type Graph struct {
	Nodes map[NodeID]Node
	Edges map[[2]NodeID]Edge
}

// Node is a placed rectangle. Position is the top-left corner.
type Node struct {
	Position
	W int
	H int
}

func (n Node) CenterXY() Position {
	return Position{X: n.X + n.W/2, Y: n.Y + n.H/2}
}

// Edge is the path of points an edge goes through, start to finish.
type Edge struct {
	Path []Position
}

// Roots are nodes with no incoming edge.
func (g Graph) Roots() []NodeID {
	hasParent := make(map[NodeID]bool, len(g.Nodes))
	for e := range g.Edges {
		hasParent[e[1]] = true
	}

	var roots []NodeID
	for n := range g.Nodes {
		if !hasParent[n] {
			roots = append(roots, n)
		}
	}
	return roots
}

// BoundingBox coordinates that fit all nodes. Does not consider edges.
func (g Graph) BoundingBox() (minx, miny, maxx, maxy int) {
	for _, node := range g.Nodes {
		if node.X < minx {
			minx = node.X
		}
		if x := node.X + node.W; x > maxx {
			maxx = x
		}
		if node.Y < miny {
			miny = node.Y
		}
		if y := node.Y + node.H; y > maxy {
			maxy = y
		}
	}
	return minx, miny, maxx, maxy
}

func maxNodeID(g Graph) NodeID {
	var max NodeID
	for n := range g.Nodes {
		if n > max {
			max = n
		}
	}
	for e := range g.Edges {
		if e[0] > max {
			max = e[0]
		}
		if e[1] > max {
			max = e[1]
		}
	}
	return max
}
