package handler

import (
	"context"

	"github.com/osse101/CraftQuest_Go/internal/command"
	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/repository"
)

// SessionService is the per-slot game state the HTTP API operates on.
// session.Manager is the production implementation.
type SessionService interface {
	Dispatch(ctx context.Context, slot, line string) (command.Result, error)
	Recipes(ctx context.Context, slot string) ([]domain.RecipeListing, error)
	Craft(ctx context.Context, slot string, kind domain.ItemKind, id int) (domain.Recipe, error)
	Quests(ctx context.Context, slot string, bucket domain.QuestBucket) (domain.QuestListing, error)
	Inventory(ctx context.Context, slot string) ([]domain.InventorySlot, error)
	Save(ctx context.Context, slot string) (domain.SaveState, error)
	Load(ctx context.Context, slot string) error
	ListSaves(ctx context.Context) ([]repository.SlotInfo, error)
	DeleteSave(ctx context.Context, slot string) error
}
