package sse

import (
	"context"

	"github.com/osse101/CraftQuest_Go/internal/event"
	"github.com/osse101/CraftQuest_Go/internal/logger"
)

// Subscriber bridges the event bus to the stream hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new stream subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every session event type to the hub
func (s *Subscriber) Subscribe() {
	types := event.AllTypes()
	for _, t := range types {
		s.bus.Subscribe(t, s.forward)
	}
	logger.Info(LogMsgSubscribed, "types", len(types))
}

func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	slot, _ := evt.GetMetadataValue(event.MetadataKeySlot).(string)
	s.hub.Broadcast(string(evt.Type), slot, evt.Payload)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "type", evt.Type, "slot", slot)
	return nil
}
