package metrics

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
	MetricNameEventsPublished   = "events_published_total"
	MetricNameEventDecodeErrors = "event_decode_errors_total"
)

// Stream metric names
const (
	MetricNameStreamClients = "event_stream_clients"
	MetricNameStreamDropped = "event_stream_dropped_total"
)

// Business metric names
const (
	MetricNameRecipesRegistered  = "recipes_registered_total"
	MetricNameRecipesRejected    = "recipes_rejected_total"
	MetricNameCatalogClears      = "recipe_catalog_clears_total"
	MetricNameItemsCrafted       = "items_crafted_total"
	MetricNameIngredientsUsed    = "ingredients_consumed_total"
	MetricNameCraftsFailed       = "crafts_failed_total"
	MetricNameQuestTransitions   = "quest_transitions_total"
	MetricNameCommandsDispatched = "commands_dispatched_total"
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
	HelpTextEventsPublished   = "Total number of events published"
	HelpTextEventDecodeErrors = "Total number of event payloads that could not be decoded"
)

// Stream metric help text
const (
	HelpTextStreamClients = "Current number of connected event stream clients"
	HelpTextStreamDropped = "Total number of stream events dropped because a buffer was full"
)

// Business metric help text
const (
	HelpTextRecipesRegistered  = "Total number of recipes registered"
	HelpTextRecipesRejected    = "Total number of recipe registrations rejected"
	HelpTextCatalogClears      = "Total number of recipe catalog clears"
	HelpTextItemsCrafted       = "Total number of items crafted"
	HelpTextIngredientsUsed    = "Total number of ingredient units consumed by crafts"
	HelpTextCraftsFailed       = "Total number of failed craft attempts"
	HelpTextQuestTransitions   = "Total number of quest lifecycle transitions"
	HelpTextCommandsDispatched = "Total number of commands dispatched"
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
	LabelKind    = "kind"
	LabelCommand = "command"
	LabelOutcome = "outcome"
	LabelReason  = "reason"
)

// Stream drop reasons
const (
	DropReasonHubFull    = "hub_full"
	DropReasonClientFull = "client_full"
)

// Command outcomes
const (
	OutcomeOK      = "ok"
	OutcomeIgnored = "ignored"
	OutcomeError   = "error"
)

// UnmatchedRoute labels requests no route matched, keeping path cardinality bounded
const UnmatchedRoute = "unmatched"

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
	LogMsgEventDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
