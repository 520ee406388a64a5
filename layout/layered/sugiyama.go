package layered

// Config is the per-layout-type tuning handed down by the orchestrator.
type Config struct {
	NodeSep int // separation between nodes in the same rank
	RankSep int // separation between ranks
	MarginX int
	MarginY int
}

// Sugiyama breaks layered graph construction into phases. Zero-value
// phases are not usable; construct with NewSugiyama.
type Sugiyama struct {
	CycleRemover                       CycleRemover
	LevelsAssigner                     func(g Graph) LayeredGraph
	OrderingAssigner                   func(g Graph, lg LayeredGraph)
	NodesHorizontalCoordinatesAssigner NodesHorizontalCoordinatesAssigner
	NodesVerticalCoordinatesAssigner   NodesVerticalCoordinatesAssigner
	EdgePathAssigner                   func(g Graph, lg LayeredGraph, centers map[NodeID]Position)
}

// NewSugiyama wires the default phase implementations for a config.
func NewSugiyama(cfg Config) Sugiyama {
	return Sugiyama{
		CycleRemover:     NewDFSCycleRemover(),
		LevelsAssigner:   NewLayeredGraph,
		OrderingAssigner: BarycenterOrderingAssigner{}.AssignOrdering,
		NodesHorizontalCoordinatesAssigner: PackedHorizontalAssigner{
			NodeSep: cfg.NodeSep,
			MarginX: cfg.MarginX,
		},
		NodesVerticalCoordinatesAssigner: RankVerticalAssigner{
			RankSep: cfg.RankSep,
			MarginY: cfg.MarginY,
		},
		EdgePathAssigner: StraightEdgePathAssigner{}.AssignEdgePaths,
	}
}

// UpdateGraphLayout runs all phases and writes top-left positions back
// into g.Nodes and paths into g.Edges.
func (l Sugiyama) UpdateGraphLayout(g Graph) {
	l.CycleRemover.RemoveCycles(g)

	lg := l.LevelsAssigner(g)
	if err := lg.Validate(); err != nil {
		panic(err)
	}

	l.OrderingAssigner(g, lg)

	nodeX := l.NodesHorizontalCoordinatesAssigner.NodesHorizontalCoordinates(g, lg)
	nodeY := l.NodesVerticalCoordinatesAssigner.NodesVerticalCoordinates(g, lg)

	// real and dummy node centers
	centers := make(map[NodeID]Position, len(lg.NodePosition))
	for n := range lg.NodePosition {
		centers[n] = Position{X: nodeX[n], Y: nodeY[n]}
	}

	l.EdgePathAssigner(g, lg, centers)

	for n, node := range g.Nodes {
		g.Nodes[n] = Node{
			Position: Position{
				X: nodeX[n] - node.W/2,
				Y: nodeY[n] - node.H/2,
			},
			W: node.W,
			H: node.H,
		}
	}

	l.CycleRemover.Restore(g)
}
