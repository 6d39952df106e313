package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-keywordform/pkg/submission"
)

// Metrics counts submissions and times the search call.
type Metrics struct {
	submissions *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewMetrics registers the collectors on reg. liveSessions, when set, backs a
// gauge of browser sessions currently held by the server.
func NewMetrics(reg prometheus.Registerer, liveSessions func() int) (*Metrics, error) {
	m := &Metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "keywordform",
			Name:      "submissions_total",
			Help:      "Keyword research submissions by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "keywordform",
			Name:      "search_duration_seconds",
			Help:      "Time spent waiting for the keyword research service.",
			Buckets:   []float64{1, 5, 10, 20, 30, 45, 60, 90},
		}),
	}
	collectors := []prometheus.Collector{m.submissions, m.duration}
	if liveSessions != nil {
		collectors = append(collectors, prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "keywordform",
			Name:      "sessions",
			Help:      "Browser sessions currently held by the server.",
		}, func() float64 { return float64(liveSessions()) }))
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe counts finished submissions; pass it to submission.WithObserver.
func (m *Metrics) Observe(state submission.Lifecycle) {
	switch state.Phase() {
	case submission.PhaseSuccess, submission.PhaseError:
		m.submissions.WithLabelValues(string(state.Phase())).Inc()
	}
}

// ObserveDuration records one search round trip.
func (m *Metrics) ObserveDuration(d time.Duration) {
	m.duration.Observe(d.Seconds())
}

// Suppressed counts submits rejected before reaching the service.
func (m *Metrics) Suppressed() {
	m.submissions.WithLabelValues("suppressed").Inc()
}
