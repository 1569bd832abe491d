package repository

import (
	"context"
	"time"

	"github.com/osse101/CraftQuest_Go/internal/domain"
)

// SlotInfo summarises a stored save without decoding its state
type SlotInfo struct {
	Slot    string    `json:"slot"`
	Version string    `json:"version"`
	SavedAt time.Time `json:"saved_at"`
}

// SaveState persists session snapshots keyed by save slot
type SaveState interface {
	// Save upserts the state stored under slot
	Save(ctx context.Context, slot string, state domain.SaveState) error
	// Load returns domain.ErrSaveNotFound when slot has never been saved
	Load(ctx context.Context, slot string) (*domain.SaveState, error)
	Delete(ctx context.Context, slot string) error
	ListSlots(ctx context.Context) ([]SlotInfo, error)
}
