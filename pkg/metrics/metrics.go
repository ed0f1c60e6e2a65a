package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for the lookup counter.
const (
	OutcomeOK            = "ok"
	OutcomeInvalidFormat = "invalid_format"
	OutcomeNotFound      = "not_found"
	OutcomeUpstreamError = "upstream_error"
)

type Metrics struct {
	LookupsTotal    *prometheus.CounterVec
	UpstreamSeconds *prometheus.HistogramVec
}

func New() *Metrics {
	return &Metrics{
		LookupsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "zip2mp_lookups_total",
			Help: "Total lookup requests by country and outcome",
		}, []string{"country", "outcome"}),
		UpstreamSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zip2mp_upstream_request_duration_seconds",
			Help:    "Duration of outbound calls to civic-data sources",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"source"}),
	}
}

func (m *Metrics) IncLookup(country, outcome string) {
	if m == nil {
		return
	}
	m.LookupsTotal.WithLabelValues(country, outcome).Inc()
}

func (m *Metrics) ObserveUpstream(source string, start time.Time) {
	if m == nil {
		return
	}
	m.UpstreamSeconds.WithLabelValues(source).Observe(time.Since(start).Seconds())
}
