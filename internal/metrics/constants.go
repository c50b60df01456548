package metrics

// Namespace prefixes every metric name
const Namespace = "textrealm"

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Game metric names
const (
	MetricNameCommandsTotal     = "commands_total"
	MetricNameSessionsConnected = "sessions_connected"
	MetricNameItemsSold         = "items_sold_total"
	MetricNameItemsBought       = "items_bought_total"
	MetricNameMoneyEarned       = "money_earned_total"
	MetricNameMoneySpent        = "money_spent_total"
	MetricNamePersistenceErrors = "persistence_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of domain events published"
)

// Game metric help text
const (
	HelpTextCommandsTotal     = "Total number of dispatched commands by outcome"
	HelpTextSessionsConnected = "Current number of connected sessions"
	HelpTextItemsSold         = "Total number of items sold to shops"
	HelpTextItemsBought       = "Total number of items bought from shops"
	HelpTextMoneyEarned       = "Total money earned from selling items"
	HelpTextMoneySpent        = "Total money spent buying items"
	HelpTextPersistenceErrors = "Total number of failed item persistence jobs"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelItem    = "item"
	LabelCommand = "command"
	LabelResult  = "result"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded    = "Metrics recorded for event"
)
