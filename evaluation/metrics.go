package evaluation

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors an Evaluator updates. They are registered on
// a caller-supplied registry so that several evaluators (and tests) never
// collide on the default one.
type Metrics struct {
	// Duration observes coloring time per algorithm.
	Duration *prometheus.HistogramVec

	// Colors records the colors used by the last evaluation of a graph.
	Colors *prometheus.GaugeVec

	// Runs counts finished evaluations.
	Runs *prometheus.CounterVec

	// Improper counts colorings that failed the properness check.
	Improper *prometheus.CounterVec

	// Failed counts evaluations that returned an error or timed out.
	Failed *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "brocs_coloring_duration_seconds",
				Help:    "Wall-clock time spent coloring a graph",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
			[]string{"algorithm"},
		),
		Colors: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "brocs_coloring_colors",
				Help: "Distinct colors used by the last coloring of a graph",
			},
			[]string{"graph", "algorithm"},
		),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brocs_coloring_runs_total",
				Help: "Total number of finished evaluations",
			},
			[]string{"algorithm"},
		),
		Improper: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brocs_coloring_improper_total",
				Help: "Total number of colorings with a conflicting edge",
			},
			[]string{"algorithm"},
		),
		Failed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brocs_coloring_failed_total",
				Help: "Total number of evaluations that returned an error",
			},
			[]string{"algorithm"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Duration, m.Colors, m.Runs, m.Improper, m.Failed} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(r Result) {
	if m == nil {
		return
	}
	m.Duration.WithLabelValues(r.Algorithm).Observe(r.Duration.Seconds())
	m.Colors.WithLabelValues(r.Graph, r.Algorithm).Set(float64(r.UniqueColors))
	m.Runs.WithLabelValues(r.Algorithm).Inc()
	if !r.Proper {
		m.Improper.WithLabelValues(r.Algorithm).Inc()
	}
}

func (m *Metrics) fail(algorithm string) {
	if m == nil {
		return
	}
	m.Failed.WithLabelValues(algorithm).Inc()
}
