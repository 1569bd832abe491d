package session

import (
	"context"

	"github.com/osse101/CraftQuest_Go/internal/domain"
)

// Recipes lists slot's catalog with affordability against its inventory
func (m *Manager) Recipes(ctx context.Context, slot string) ([]domain.RecipeListing, error) {
	var out []domain.RecipeListing
	err := m.WithSession(ctx, slot, func(s *Session) error {
		out = s.Catalog().Listings(s.Inventory())
		return nil
	})
	return out, err
}

// Craft crafts one unit of (kind, id) in slot
func (m *Manager) Craft(ctx context.Context, slot string, kind domain.ItemKind, id int) (domain.Recipe, error) {
	var recipe domain.Recipe
	err := m.WithSession(ctx, slot, func(s *Session) error {
		var err error
		recipe, err = s.Engine().CraftOutput(ctx, kind, id, s.Inventory())
		return err
	})
	return recipe, err
}

// Quests returns one bucket of slot's ledger with its label
func (m *Manager) Quests(ctx context.Context, slot string, bucket domain.QuestBucket) (domain.QuestListing, error) {
	var out domain.QuestListing
	err := m.WithSession(ctx, slot, func(s *Session) error {
		var err error
		out, err = s.Ledger().Listing(bucket)
		return err
	})
	return out, err
}

// Inventory returns the items slot holds
func (m *Manager) Inventory(ctx context.Context, slot string) ([]domain.InventorySlot, error) {
	var out []domain.InventorySlot
	err := m.WithSession(ctx, slot, func(s *Session) error {
		out = s.Inventory().Slots()
		return nil
	})
	return out, err
}
