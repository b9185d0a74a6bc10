package metrics

// ============================================================================
// Metric Names
// ============================================================================

const namespace = "wareki"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameRateLimited          = "http_rate_limited_total"
)

// Conversion metric names
const (
	MetricNameConversionsTotal = "conversions_total"
	MetricNameReverseTotal     = "reverse_lookups_total"
	MetricNameBatchSize        = "batch_size"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextRateLimited          = "Total number of requests rejected by the rate limiter"
)

// Conversion metric help text
const (
	HelpTextConversionsTotal = "Era code conversions by era and outcome"
	HelpTextReverseTotal     = "Gregorian to era code lookups by outcome"
	HelpTextBatchSize        = "Number of codes per batch conversion"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelEra     = "era"
	LabelOutcome = "outcome"
)

// Label values
const (
	OutcomeSuccess = "success"
	// EraUnknown labels conversions that failed before an era was resolved.
	EraUnknown = "unknown"
	// PathUnmatched labels requests no route matched.
	PathUnmatched = "unmatched"
)

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets are tuned for sub-millisecond handlers
var HTTPLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}

// BatchSizeBuckets cover the configured batch limit range
var BatchSizeBuckets = []float64{1, 2, 5, 10, 25, 50, 100, 250, 1000}
