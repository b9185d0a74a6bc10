package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameRateLimited,
			Help:      HelpTextRateLimited,
		},
	)
)

// Conversion Metrics
var (
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameConversionsTotal,
			Help:      HelpTextConversionsTotal,
		},
		[]string{LabelEra, LabelOutcome},
	)

	ReverseLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameReverseTotal,
			Help:      HelpTextReverseTotal,
		},
		[]string{LabelOutcome},
	)

	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      MetricNameBatchSize,
			Help:      HelpTextBatchSize,
			Buckets:   BatchSizeBuckets,
		},
	)
)

// RecordConversion counts one conversion. outcome is OutcomeSuccess or the
// error kind; era is EraUnknown when the prefix was never resolved.
func RecordConversion(era, outcome string) {
	if era == "" {
		era = EraUnknown
	}
	ConversionsTotal.WithLabelValues(era, outcome).Inc()
}

// RecordReverseLookup counts one Gregorian-to-era lookup.
func RecordReverseLookup(outcome string) {
	ReverseLookupsTotal.WithLabelValues(outcome).Inc()
}
