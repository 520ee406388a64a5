// Package layout picks a layout strategy for a canvas graph, delegates
// coordinate assignment to the layered pipeline, and annotates results
// for the editor.
package layout

import (
	"log/slog"

	"github.com/agentgrid/canvas-engine/layout/layered"
)

// Type names a layout strategy.
type Type string

const (
	Sequential   Type = "sequential"
	Parallel     Type = "parallel"
	Hierarchical Type = "hierarchical"
	Hybrid       Type = "hybrid"
	Circular     Type = "circular"
)

// Direction is the primary layout axis.
type Direction string

const (
	TopToBottom Direction = "TB"
	LeftToRight Direction = "LR"
)

// Config tunes one layout type. Everything except Direction is handed
// verbatim to the layered pipeline.
type Config struct {
	Direction Direction
	NodeSep   int
	RankSep   int
	MarginX   int
	MarginY   int
}

// Configs are the named presets, one per non-circular type.
var Configs = map[Type]Config{
	Sequential:   {Direction: TopToBottom, NodeSep: 100, RankSep: 150, MarginX: 100, MarginY: 100},
	Parallel:     {Direction: LeftToRight, NodeSep: 120, RankSep: 200, MarginX: 100, MarginY: 100},
	Hierarchical: {Direction: TopToBottom, NodeSep: 150, RankSep: 180, MarginX: 100, MarginY: 100},
	Hybrid:       {Direction: TopToBottom, NodeSep: 120, RankSep: 160, MarginX: 100, MarginY: 100},
}

// Engine is the layout orchestrator. The zero value is usable and logs
// through slog.Default. It holds no mutable state, so one Engine can
// serve any number of canvases.
type Engine struct {
	Log *slog.Logger
}

func (e Engine) logger() *slog.Logger {
	if e.Log != nil {
		return e.Log
	}
	return slog.Default()
}

func (e Engine) config(t Type) layered.Config {
	cfg, ok := Configs[t]
	if !ok {
		cfg = Configs[Hybrid]
	}
	return layered.Config{
		NodeSep: cfg.NodeSep,
		RankSep: cfg.RankSep,
		MarginX: cfg.MarginX,
		MarginY: cfg.MarginY,
	}
}
