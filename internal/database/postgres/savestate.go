package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/repository"
)

// SaveStateRepository stores session snapshots as JSONB rows keyed by slot
type SaveStateRepository struct {
	db *pgxpool.Pool
}

var _ repository.SaveState = (*SaveStateRepository)(nil)

// NewSaveStateRepository creates a repository over pool
func NewSaveStateRepository(db *pgxpool.Pool) *SaveStateRepository {
	return &SaveStateRepository{db: db}
}

// Save upserts state under slot
func (r *SaveStateRepository) Save(ctx context.Context, slot string, state domain.SaveState) error {
	if state.SavedAt.IsZero() {
		state.SavedAt = time.Now().UTC()
	}
	if state.Version == "" {
		state.Version = domain.SaveStateVersion
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeState, err)
	}

	if _, err := r.db.Exec(ctx, querySaveState, slot, state.Version, payload, state.SavedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveState, err)
	}
	return nil
}

// Load returns the state stored under slot
func (r *SaveStateRepository) Load(ctx context.Context, slot string) (*domain.SaveState, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, queryLoadState, slot).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadState, err)
	}

	var state domain.SaveState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeState, err)
	}
	return &state, nil
}

// Delete removes the state stored under slot
func (r *SaveStateRepository) Delete(ctx context.Context, slot string) error {
	tag, err := r.db.Exec(ctx, queryDeleteState, slot)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteState, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrSaveNotFound, slot)
	}
	return nil
}

// ListSlots returns every stored slot ordered by name
func (r *SaveStateRepository) ListSlots(ctx context.Context) ([]repository.SlotInfo, error) {
	rows, err := r.db.Query(ctx, queryListSlots)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSlots, err)
	}

	slots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (repository.SlotInfo, error) {
		var s repository.SlotInfo
		err := row.Scan(&s.Slot, &s.Version, &s.SavedAt)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSlots, err)
	}
	return slots, nil
}
