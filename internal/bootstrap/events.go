package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/CraftQuest_Go/internal/event"
	"github.com/osse101/CraftQuest_Go/internal/metrics"
	"github.com/osse101/CraftQuest_Go/internal/sse"
)

// InitializeEventSystem creates the event bus and subscribes the metrics collector to it
func InitializeEventSystem() (event.Bus, error) {
	bus := event.NewMemoryBus()

	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)
	slog.Info(LogMsgEventSystemInitialized)

	return bus, nil
}

// InitializeEventStream starts the stream hub and forwards every bus event to it
func InitializeEventStream(bus event.Bus) *sse.Hub {
	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()
	slog.Info(LogMsgEventStreamStarted)
	return hub
}
