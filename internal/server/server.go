// Package server exposes the canvas engine over HTTP for the workflow
// editor frontend.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agentgrid/canvas-engine/canvas"
	"github.com/agentgrid/canvas-engine/layout"
	"github.com/agentgrid/canvas-engine/layout/layered"
)

type Server struct {
	log    *slog.Logger
	engine layout.Engine
}

func New(log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{log: log, engine: layout.Engine{Log: log}}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/v1/layout", s.handleLayout)
	r.Post("/v1/arrange", s.handleArrange)
	r.Post("/v1/zones", s.handleZones)
	r.Post("/v1/predict", s.handlePredict)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"ok":true,"service":"canvas-engine"}`))
}

type layoutRequest struct {
	Nodes  []canvas.Node  `json:"nodes"`
	Edges  []canvas.Edge  `json:"edges"`
	Layout layout.Type    `json:"layout,omitempty"`
	Bounds *canvas.Bounds `json:"bounds,omitempty"`
}

type layoutResponse struct {
	Nodes      []canvas.Node `json:"nodes"`
	Edges      []canvas.Edge `json:"edges"`
	Layout     layout.Type   `json:"layout"`
	Complexity int           `json:"complexity"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	assignIDs(req.Nodes)

	t := req.Layout
	if t == "" {
		t = layout.Detect(req.Nodes, req.Edges)
	}

	start := time.Now()
	nodes := s.engine.ApplyWithTransition(req.Nodes, req.Edges, t)
	if req.Bounds != nil {
		nodes = fitToBounds(nodes, *req.Bounds)
	}
	layoutDuration.Observe(time.Since(start).Seconds())
	layoutTotal.WithLabelValues(string(t)).Inc()

	writeJSON(w, layoutResponse{
		Nodes:      nodes,
		Edges:      layout.RouteEdges(req.Edges, nodes),
		Layout:     t,
		Complexity: layout.Complexity(req.Nodes, req.Edges),
	})
}

type arrangeRequest struct {
	Nodes  []canvas.Node `json:"nodes"`
	Bounds canvas.Bounds `json:"bounds"`
}

func (s *Server) handleArrange(w http.ResponseWriter, r *http.Request) {
	var req arrangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	assignIDs(req.Nodes)
	arrangeTotal.Inc()
	writeJSON(w, map[string]any{
		"nodes": canvas.AutoArrange(req.Nodes, req.Bounds),
	})
}

func (s *Server) handleZones(w http.ResponseWriter, r *http.Request) {
	var req arrangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{
		"zones": canvas.PlacementZones(req.Nodes, req.Bounds),
	})
}

type predictRequest struct {
	Node   canvas.Node   `json:"node"`
	Nodes  []canvas.Node `json:"nodes"`
	Bounds canvas.Bounds `json:"bounds"`
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, canvas.PredictCollision(req.Node, req.Nodes, req.Bounds))
}

// assignIDs gives an id to any node arriving without one, so edges and
// predictions can refer to it afterwards.
func assignIDs(nodes []canvas.Node) {
	for i := range nodes {
		if nodes[i].ID == "" {
			nodes[i].ID = uuid.NewString()
		}
	}
}

// fitToBounds uniformly scales an oversized layout into the padded
// canvas. Layouts that already fit pass through unscaled.
func fitToBounds(nodes []canvas.Node, bounds canvas.Bounds) []canvas.Node {
	g := layered.Graph{
		Nodes: make(map[layered.NodeID]layered.Node, len(nodes)),
		Edges: map[[2]layered.NodeID]layered.Edge{},
	}
	for i, n := range nodes {
		w, h := n.Size()
		g.Nodes[layered.NodeID(i+1)] = layered.Node{
			Position: layered.Position{X: int(n.X), Y: int(n.Y)},
			W:        int(w),
			H:        int(h),
		}
	}

	scale := layered.FitScale(g, int(bounds.W-2*canvas.Padding), int(bounds.H-2*canvas.Padding))
	if scale >= 1 {
		return nodes
	}
	layered.Scaler{Scale: scale}.UpdateGraphLayout(g)

	out := make([]canvas.Node, len(nodes))
	copy(out, nodes)
	for i := range out {
		placed := g.Nodes[layered.NodeID(i+1)]
		out[i].X = float64(placed.X) + canvas.Padding
		out[i].Y = float64(placed.Y) + canvas.Padding
	}
	return out
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encoding response", "error", err)
	}
}
