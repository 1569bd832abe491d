package session

import (
	"context"
	"time"

	"github.com/osse101/CraftQuest_Go/internal/command"
	"github.com/osse101/CraftQuest_Go/internal/crafting"
	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/event"
	"github.com/osse101/CraftQuest_Go/internal/inventory"
	"github.com/osse101/CraftQuest_Go/internal/item"
	"github.com/osse101/CraftQuest_Go/internal/logger"
	"github.com/osse101/CraftQuest_Go/internal/quest"
)

// Deps are the shared collaborators every session is built from
type Deps struct {
	Registry item.Registry
	Parser   *crafting.Parser
	Labels   quest.Labels
	Bus      event.Bus
}

// Session owns one game's catalog, ledger and inventory.
// It is created explicitly; nothing is initialised on first access.
type Session struct {
	slot       string
	catalog    *crafting.Catalog
	engine     *crafting.Engine
	ledger     *quest.Ledger
	party      *inventory.Party
	dispatcher *command.Dispatcher
}

// New builds an empty session for slot
func New(ctx context.Context, slot string, deps Deps) *Session {
	var bus event.Bus = event.NopBus{}
	if deps.Bus != nil {
		bus = slotBus{Bus: deps.Bus, slot: slot}
	}

	catalog := crafting.NewCatalog(deps.Registry, deps.Parser, bus)
	engine := crafting.NewEngine(catalog, bus)
	ledger := quest.NewLedger(deps.Labels, bus)
	party := inventory.NewParty(deps.Registry)

	s := &Session{
		slot:    slot,
		catalog: catalog,
		engine:  engine,
		ledger:  ledger,
		party:   party,
		dispatcher: command.NewDispatcher(command.Targets{
			Catalog:   catalog,
			Engine:    engine,
			Ledger:    ledger,
			Inventory: party,
			Registry:  deps.Registry,
		}),
	}

	logger.FromContext(ctx).Info(LogMsgSessionInit, "slot", slot)
	return s
}

// Slot returns the save slot the session belongs to
func (s *Session) Slot() string { return s.slot }

func (s *Session) Catalog() *crafting.Catalog { return s.catalog }

func (s *Session) Engine() *crafting.Engine { return s.engine }

func (s *Session) Ledger() *quest.Ledger { return s.ledger }

func (s *Session) Inventory() *inventory.Party { return s.party }

func (s *Session) Dispatcher() *command.Dispatcher { return s.dispatcher }

// Clear empties the catalog, the ledger and the inventory
func (s *Session) Clear(ctx context.Context) {
	s.catalog.Clear(ctx)
	s.ledger.Clear(ctx)
	s.party.Clear()
	logger.FromContext(ctx).Info(LogMsgSessionCleared, "slot", s.slot)
}

// Snapshot captures the persisted shape of the session
func (s *Session) Snapshot() domain.SaveState {
	inProgress, completed := s.ledger.Snapshot()
	return domain.SaveState{
		Version:    domain.SaveStateVersion,
		Recipes:    s.catalog.All(),
		InProgress: inProgress,
		Completed:  completed,
		Inventory:  s.party.Slots(),
		SavedAt:    time.Now().UTC(),
	}
}

// Restore replaces the session's state with a snapshot.
// Recipes and the ledger are validated before anything is swapped, so a rejected snapshot changes nothing.
func (s *Session) Restore(ctx context.Context, state domain.SaveState) error {
	if err := s.catalog.ValidateRecipes(state.Recipes); err != nil {
		return err
	}
	if err := s.ledger.Restore(ctx, state.InProgress, state.Completed); err != nil {
		return err
	}
	if err := s.catalog.Restore(ctx, state.Recipes); err != nil {
		return err
	}
	s.party.Restore(state.Inventory)
	return nil
}

// slotBus tags every published event with the session's slot
type slotBus struct {
	event.Bus
	slot string
}

func (b slotBus) Publish(ctx context.Context, evt event.Event) error {
	return b.Bus.Publish(ctx, evt.WithSlot(b.slot))
}
