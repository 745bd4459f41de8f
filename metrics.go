package fotocard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fotocard_uploads_total",
		Help: "Photo uploads by result.",
	}, []string{"result"})

	exportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fotocard_exports_total",
		Help: "Exported cards by delivery strategy.",
	}, []string{"strategy"})

	renderSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fotocard_render_seconds",
		Help:    "Time spent compositing and encoding a card.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	})
)
