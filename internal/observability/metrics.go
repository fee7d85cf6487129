package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the service.
//
// PersistenceFailures is the operator-visible channel for the fire-and-forget
// recording path: a store write failure never changes an HTTP response, so it
// must show up here (and in logs) or not at all. GenerationEmpty counts 200
// responses from the generation service that lacked the expected candidate
// structure; the client still receives an empty reply in that case.
type Metrics struct {
	ChatTurns           *prometheus.CounterVec
	AuthRejections      *prometheus.CounterVec
	GenerationErrors    prometheus.Counter
	GenerationEmpty     prometheus.Counter
	PersistenceFailures prometheus.Counter
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ChatTurns: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_turns_total",
			Help:      "Chat turns by outcome.",
		}, []string{"status"}),
		AuthRejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_rejections_total",
			Help:      "Rejected requests by reason.",
		}, []string{"reason"}),
		GenerationErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_errors_total",
			Help:      "Failed calls to the generation service.",
		}),
		GenerationEmpty: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_empty_total",
			Help:      "Successful generation calls that produced no candidate text.",
		}),
		PersistenceFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_failures_total",
			Help:      "Conversation record writes that failed.",
		}),
	}
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
