// Package metrics exposes search progress as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all search metrics. It implements generator.Observer.
type Metrics struct {
	registry *prometheus.Registry

	Generated       prometheus.Counter
	CandidateErrors prometheus.Counter
	Found           *prometheus.CounterVec
	DroppedHits     prometheus.Counter
	PersistFailures prometheus.Counter
	Rate            prometheus.Gauge
}

// NewMetrics creates a Metrics instance on its own registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "seedhunter"
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		Generated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "generated_total",
			Help:      "Total number of candidate mnemonics processed",
		}),
		CandidateErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "candidate_errors_total",
			Help:      "Total number of candidates skipped because derivation failed",
		}),
		Found: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "found_total",
			Help:      "Total number of vanity hits by chain",
		}, []string{"chain"}),
		DroppedHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "dropped_hits_total",
			Help:      "Total number of hits replaced in the result slot before being consumed",
		}),
		PersistFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "persist_failures_total",
			Help:      "Total number of hits that could not be written to the output file",
		}),
		Rate: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "rate",
			Help:      "Candidates per second over the last sampling interval",
		}),
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Mux returns a mux serving /metrics and /health.
func (m *Metrics) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// SetRate records the latest sampled search rate.
func (m *Metrics) SetRate(rate float64) {
	m.Rate.Set(rate)
}

func (m *Metrics) CandidateGenerated() { m.Generated.Inc() }

func (m *Metrics) CandidateFailed() { m.CandidateErrors.Inc() }

func (m *Metrics) HitFound(chain generator.Chain) {
	m.Found.WithLabelValues(chain.String()).Inc()
}

func (m *Metrics) HitDropped() { m.DroppedHits.Inc() }

func (m *Metrics) PersistFailed() { m.PersistFailures.Inc() }

var _ generator.Observer = (*Metrics)(nil)
