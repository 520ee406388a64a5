package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// layoutTotal counts layout requests by the strategy actually applied.
	layoutTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canvas_layout_total",
			Help: "Total number of layout requests by applied layout type",
		},
		[]string{"layout"},
	)

	// layoutDuration tracks end-to-end layout latency.
	layoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "canvas_layout_duration_seconds",
			Help:    "Time spent computing a layout",
			Buckets: prometheus.DefBuckets,
		},
	)

	// arrangeTotal counts whole-canvas de-overlap runs.
	arrangeTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "canvas_arrange_total",
			Help: "Total number of auto-arrange requests",
		},
	)
)

func init() {
	prometheus.MustRegister(layoutTotal)
	prometheus.MustRegister(layoutDuration)
	prometheus.MustRegister(arrangeTotal)
}
