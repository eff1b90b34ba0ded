package registry

import "github.com/prometheus/client_golang/prometheus"

var (
	modelsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "macrolib",
			Subsystem: "registry",
			Name:      "models_created_total",
			Help:      "Total models produced by CreateModel",
		},
		[]string{"model"},
	)

	eventsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "macrolib",
			Subsystem: "registry",
			Name:      "events_created_total",
			Help:      "Total events produced by CreateEvent",
		},
		[]string{"event"},
	)
)

func init() {
	prometheus.MustRegister(modelsCreated, eventsCreated)
}
