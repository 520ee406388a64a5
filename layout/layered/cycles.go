package layered

import "sort"

type CycleRemover interface {
	RemoveCycles(g Graph)
	Restore(g Graph)
}

// DFSCycleRemover reverses back edges found by depth-first search and
// flips them back after layout. Edge paths computed while reversed are
// reversed too on restore, so callers see paths running source to target.
// A back edge whose opposite direction already exists in the graph is
// withheld instead of reversed (reversing would overwrite the real
// edge) and restored with the mirror of its mate's path. Self loops are
// dropped outright; they cannot be layered.
type DFSCycleRemover struct {
	reversed map[[2]NodeID]bool
	dropped  map[[2]NodeID]bool
}

func NewDFSCycleRemover() *DFSCycleRemover {
	return &DFSCycleRemover{
		reversed: map[[2]NodeID]bool{},
		dropped:  map[[2]NodeID]bool{},
	}
}

func (c *DFSCycleRemover) RemoveCycles(g Graph) {
	// deterministic traversal order
	nodes := make([]NodeID, 0, len(g.Nodes))
	for n := range g.Nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	children := make(map[NodeID][]NodeID, len(g.Nodes))
	for e := range g.Edges {
		children[e[0]] = append(children[e[0]], e[1])
	}
	for n := range children {
		sort.Slice(children[n], func(i, j int) bool { return children[n][i] < children[n][j] })
	}

	const (
		white = iota // unvisited
		grey         // on stack
		black        // done
	)
	state := make(map[NodeID]int, len(g.Nodes))

	var visit func(n NodeID)
	visit = func(n NodeID) {
		state[n] = grey
		for _, child := range children[n] {
			switch state[child] {
			case white:
				visit(child)
			case grey:
				c.reversed[[2]NodeID{n, child}] = true
			}
		}
		state[n] = black
	}
	for _, n := range nodes {
		if state[n] == white {
			visit(n)
		}
	}

	for e := range c.reversed {
		if e[0] == e[1] {
			delete(g.Edges, e)
			delete(c.reversed, e)
			continue
		}

		flipped := [2]NodeID{e[1], e[0]}
		if _, ok := g.Edges[flipped]; ok {
			// two-node cycle: the forward edge stays, the back edge is
			// withheld until Restore
			delete(g.Edges, e)
			delete(c.reversed, e)
			c.dropped[e] = true
			continue
		}

		edge := g.Edges[e]
		delete(g.Edges, e)
		g.Edges[flipped] = edge
	}
}

func (c *DFSCycleRemover) Restore(g Graph) {
	for e := range c.reversed {
		flipped := [2]NodeID{e[1], e[0]}
		edge := g.Edges[flipped]
		for i, j := 0, len(edge.Path)-1; i < j; i, j = i+1, j-1 {
			edge.Path[i], edge.Path[j] = edge.Path[j], edge.Path[i]
		}
		delete(g.Edges, flipped)
		g.Edges[e] = edge
	}

	for e := range c.dropped {
		mate := g.Edges[[2]NodeID{e[1], e[0]}]
		path := make([]Position, len(mate.Path))
		for i, p := range mate.Path {
			path[len(path)-1-i] = p
		}
		g.Edges[e] = Edge{Path: path}
	}

	c.reversed = map[[2]NodeID]bool{}
	c.dropped = map[[2]NodeID]bool{}
}
