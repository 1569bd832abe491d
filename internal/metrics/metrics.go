package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventDecodeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventDecodeErrors,
			Help: HelpTextEventDecodeErrors,
		},
		[]string{LabelType},
	)
)

// Stream Metrics
var (
	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
	)

	StreamDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStreamDropped,
			Help: HelpTextStreamDropped,
		},
		[]string{LabelReason},
	)
)

// Business Metrics
var (
	RecipesRegistered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipesRegistered,
			Help: HelpTextRecipesRegistered,
		},
		[]string{LabelKind},
	)

	RecipesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipesRejected,
			Help: HelpTextRecipesRejected,
		},
		[]string{LabelKind},
	)

	CatalogClears = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogClears,
			Help: HelpTextCatalogClears,
		},
	)

	ItemsCrafted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsCrafted,
			Help: HelpTextItemsCrafted,
		},
		[]string{LabelKind},
	)

	IngredientsConsumed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIngredientsUsed,
			Help: HelpTextIngredientsUsed,
		},
	)

	CraftsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftsFailed,
			Help: HelpTextCraftsFailed,
		},
		[]string{LabelKind},
	)

	QuestTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestTransitions,
			Help: HelpTextQuestTransitions,
		},
		[]string{LabelType},
	)

	CommandsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsDispatched,
			Help: HelpTextCommandsDispatched,
		},
		[]string{LabelCommand, LabelOutcome},
	)
)
