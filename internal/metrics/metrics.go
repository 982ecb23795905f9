package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds request-path metrics for direct instrumentation in the API layer.
type Metrics struct {
	FilterRequests   prometheus.Counter
	FilterDuration   prometheus.Histogram
	FilterResultRows prometheus.Histogram
	ChartRenders     *prometheus.CounterVec
}

// New creates and registers request metrics with the given registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FilterRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "catalogd",
			Subsystem: "explore",
			Name:      "filter_requests_total",
			Help:      "Total filter recompute passes triggered by API requests.",
		}),
		FilterDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "catalogd",
			Subsystem: "explore",
			Name:      "filter_duration_seconds",
			Help:      "Duration of one filter-and-aggregate pass.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		}),
		FilterResultRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "catalogd",
			Subsystem: "explore",
			Name:      "filter_result_rows",
			Help:      "Row count of filtered views.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		ChartRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalogd",
			Subsystem: "explore",
			Name:      "chart_renders_total",
			Help:      "Chart payloads served, by chart name.",
		}, []string{"chart"}),
	}

	reg.MustRegister(
		m.FilterRequests,
		m.FilterDuration,
		m.FilterResultRows,
		m.ChartRenders,
	)

	return m
}
