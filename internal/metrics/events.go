package metrics

import (
	"context"

	"github.com/osse101/CraftQuest_Go/internal/event"
	"github.com/osse101/CraftQuest_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes() {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.RecipeRegistered, event.RecipeRejected:
		p, err := event.DecodePayload[event.RecipePayloadV1](evt.Payload)
		if err != nil {
			return e.decodeFailed(ctx, evt, err)
		}
		if evt.Type == event.RecipeRegistered {
			RecipesRegistered.WithLabelValues(string(p.OutputKind)).Inc()
		} else {
			RecipesRejected.WithLabelValues(string(p.OutputKind)).Inc()
		}

	case event.CatalogCleared:
		CatalogClears.Inc()

	case event.ItemCrafted, event.CraftFailed:
		p, err := event.DecodePayload[event.CraftPayloadV1](evt.Payload)
		if err != nil {
			return e.decodeFailed(ctx, evt, err)
		}
		if evt.Type == event.ItemCrafted {
			ItemsCrafted.WithLabelValues(string(p.OutputKind)).Inc()
			IngredientsConsumed.Add(float64(p.Consumed))
		} else {
			CraftsFailed.WithLabelValues(string(p.OutputKind)).Inc()
		}

	case event.QuestAdded, event.QuestUpdated, event.QuestCompleted, event.QuestRemoved, event.QuestsCleared:
		QuestTransitions.WithLabelValues(string(evt.Type)).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// decodeFailed counts the failure but never fails the publisher
func (e *EventMetricsCollector) decodeFailed(ctx context.Context, evt event.Event, err error) error {
	EventDecodeErrors.WithLabelValues(string(evt.Type)).Inc()
	logger.FromContext(ctx).Debug(LogMsgEventDecodeFailed, "type", evt.Type, "error", err)
	return nil
}

// RecordCommand counts one dispatched command by outcome
func RecordCommand(command, outcome string) {
	if command == "" {
		command = UnmatchedRoute
	}
	CommandsDispatched.WithLabelValues(command, outcome).Inc()
}
