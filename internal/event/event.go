package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/CraftQuest_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types published by the crafting and quest subsystems
const (
	RecipeRegistered Type = domain.EventTypeRecipeRegistered
	RecipeRejected   Type = domain.EventTypeRecipeRejected
	CatalogCleared   Type = domain.EventTypeCatalogCleared
	ItemCrafted      Type = domain.EventTypeItemCrafted
	CraftFailed      Type = domain.EventTypeCraftFailed
	QuestAdded       Type = domain.EventTypeQuestAdded
	QuestUpdated     Type = domain.EventTypeQuestUpdated
	QuestCompleted   Type = domain.EventTypeQuestCompleted
	QuestRemoved     Type = domain.EventTypeQuestRemoved
	QuestsCleared    Type = domain.EventTypeQuestsCleared
)

// AllTypes lists every event type published by a session
func AllTypes() []Type {
	return []Type{
		RecipeRegistered,
		RecipeRejected,
		CatalogCleared,
		ItemCrafted,
		CraftFailed,
		QuestAdded,
		QuestUpdated,
		QuestCompleted,
		QuestRemoved,
		QuestsCleared,
	}
}

// Typed event payloads for type safety

// RecipePayloadV1 is the payload for recipe registration events
type RecipePayloadV1 struct {
	OutputKind      domain.ItemKind `json:"output_kind"`
	OutputID        int             `json:"output_id"`
	IngredientCount int             `json:"ingredient_count,omitempty"`
	Reason          string          `json:"reason,omitempty"`
}

// CraftPayloadV1 is the payload for craft events
type CraftPayloadV1 struct {
	OutputKind domain.ItemKind `json:"output_kind"`
	OutputID   int             `json:"output_id"`
	OutputName string          `json:"output_name,omitempty"`
	Consumed   int             `json:"consumed,omitempty"`
	Reason     string          `json:"reason,omitempty"`
}

// QuestPayloadV1 is the payload for quest lifecycle events
type QuestPayloadV1 struct {
	QuestID     int    `json:"quest_id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Type-safe event constructors

// NewRecipeRegisteredEvent creates a recipe.registered event
func NewRecipeRegisteredEvent(recipe domain.Recipe) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RecipeRegistered,
		Payload: RecipePayloadV1{
			OutputKind:      recipe.OutputKind,
			OutputID:        recipe.OutputID,
			IngredientCount: len(recipe.Ingredients),
		},
	}
}

// NewRecipeRejectedEvent creates a recipe.rejected event; reason is the error message
func NewRecipeRejectedEvent(kind domain.ItemKind, id int, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RecipeRejected,
		Payload: RecipePayloadV1{OutputKind: kind, OutputID: id, Reason: reason},
	}
}

// NewCatalogClearedEvent creates a recipe.catalog_cleared event
func NewCatalogClearedEvent(removed int) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     CatalogCleared,
		Payload:  RecipePayloadV1{IngredientCount: removed},
		Metadata: nil,
	}
}

// NewItemCraftedEvent creates an item.crafted event
func NewItemCraftedEvent(recipe domain.Recipe, outputName string) Event {
	consumed := 0
	for _, ing := range recipe.Ingredients {
		consumed += ing.Count
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemCrafted,
		Payload: CraftPayloadV1{
			OutputKind: recipe.OutputKind,
			OutputID:   recipe.OutputID,
			OutputName: outputName,
			Consumed:   consumed,
		},
	}
}

// NewCraftFailedEvent creates an item.craft_failed event
func NewCraftFailedEvent(recipe domain.Recipe, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CraftFailed,
		Payload: CraftPayloadV1{
			OutputKind: recipe.OutputKind,
			OutputID:   recipe.OutputID,
			Reason:     reason,
		},
	}
}

// NewQuestEvent creates a quest lifecycle event of the given type
func NewQuestEvent(eventType Type, questID int, title, description string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: QuestPayloadV1{
			QuestID:     questID,
			Title:       title,
			Description: description,
		},
	}
}

// WithSlot returns a copy of the event tagged with the originating save slot
func (e Event) WithSlot(slot string) Event {
	md := make(Metadata, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		md[k] = v
	}
	md[MetadataKeySlot] = slot
	e.Metadata = md
	return e
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// NopBus discards every event. Useful for callers that do not observe events.
type NopBus struct{}

func (NopBus) Publish(context.Context, Event) error { return nil }
func (NopBus) Subscribe(Type, Handler)              {}
