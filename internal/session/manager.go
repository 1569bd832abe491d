package session

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/CraftQuest_Go/internal/command"
	"github.com/osse101/CraftQuest_Go/internal/concurrency"
	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/logger"
	"github.com/osse101/CraftQuest_Go/internal/repository"
)

// Manager owns sessions keyed by save slot and serializes work per slot
type Manager struct {
	deps  Deps
	repo  repository.SaveState
	locks *concurrency.LockManager

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a manager. repo may be nil, which disables Save and Load.
func NewManager(deps Deps, repo repository.SaveState, locks *concurrency.LockManager) *Manager {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &Manager{
		deps:     deps,
		repo:     repo,
		locks:    locks,
		sessions: make(map[string]*Session),
	}
}

// Init creates a fresh session for slot, replacing any existing one
func (m *Manager) Init(ctx context.Context, slot string) *Session {
	slot = normalizeSlot(slot)
	var s *Session
	_ = m.locks.WithLock(slot, func() error {
		s = m.install(ctx, slot)
		return nil
	})
	return s
}

// Get returns the session for slot if one was initialised
func (m *Manager) Get(slot string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[normalizeSlot(slot)]
	return s, ok
}

// WithSession runs fn against slot's session while holding the slot lock.
// A slot that has never been used is initialised explicitly first.
func (m *Manager) WithSession(ctx context.Context, slot string, fn func(*Session) error) error {
	slot = normalizeSlot(slot)
	return m.locks.WithLock(slot, func() error {
		s, ok := m.Get(slot)
		if !ok {
			s = m.install(ctx, slot)
		}
		return fn(s)
	})
}

// Dispatch runs a command line against slot's session
func (m *Manager) Dispatch(ctx context.Context, slot, line string) (command.Result, error) {
	var res command.Result
	err := m.WithSession(ctx, slot, func(s *Session) error {
		var err error
		res, err = s.Dispatcher().Dispatch(ctx, line)
		return err
	})
	return res, err
}

// Save persists slot's session
func (m *Manager) Save(ctx context.Context, slot string) (domain.SaveState, error) {
	slot = normalizeSlot(slot)
	if m.repo == nil {
		return domain.SaveState{}, fmt.Errorf(ErrFmtSave, slot, ErrNoStore)
	}

	var state domain.SaveState
	err := m.WithSession(ctx, slot, func(s *Session) error {
		state = s.Snapshot()
		return m.repo.Save(ctx, slot, state)
	})
	if err != nil {
		return domain.SaveState{}, fmt.Errorf(ErrFmtSave, slot, err)
	}

	logger.FromContext(ctx).Info(LogMsgSessionSaved, "slot", slot, "recipes", len(state.Recipes))
	return state, nil
}

// Load replaces slot's session state with the stored snapshot
func (m *Manager) Load(ctx context.Context, slot string) error {
	slot = normalizeSlot(slot)
	if m.repo == nil {
		return fmt.Errorf(ErrFmtLoad, slot, ErrNoStore)
	}

	state, err := m.repo.Load(ctx, slot)
	if err != nil {
		return fmt.Errorf(ErrFmtLoad, slot, err)
	}

	err = m.WithSession(ctx, slot, func(s *Session) error {
		return s.Restore(ctx, *state)
	})
	if err != nil {
		return fmt.Errorf(ErrFmtRestore, slot, err)
	}

	logger.FromContext(ctx).Info(LogMsgSessionLoaded, "slot", slot, "recipes", len(state.Recipes))
	return nil
}

// Drop forgets slot's in-memory session. Stored saves are kept.
func (m *Manager) Drop(ctx context.Context, slot string) {
	slot = normalizeSlot(slot)
	_ = m.locks.WithLock(slot, func() error {
		m.mu.Lock()
		delete(m.sessions, slot)
		m.mu.Unlock()
		return nil
	})
	logger.FromContext(ctx).Info(LogMsgSessionDropped, "slot", slot)
}

// Slots returns the names of every live session
func (m *Manager) Slots() []string {
	m.mu.RLock()
	out := make([]string, 0, len(m.sessions))
	for slot := range m.sessions {
		out = append(out, slot)
	}
	m.mu.RUnlock()
	sort.Strings(out)
	return out
}

// install must be called with the slot lock held
func (m *Manager) install(ctx context.Context, slot string) *Session {
	s := New(ctx, slot, m.deps)
	m.mu.Lock()
	m.sessions[slot] = s
	m.mu.Unlock()
	return s
}

func normalizeSlot(slot string) string {
	if slot == "" {
		return domain.DefaultSaveSlot
	}
	return slot
}

// ListSaves returns every stored slot
func (m *Manager) ListSaves(ctx context.Context) ([]repository.SlotInfo, error) {
	if m.repo == nil {
		return nil, ErrNoStore
	}
	return m.repo.ListSlots(ctx)
}

// DeleteSave removes slot's stored save. The live session is left untouched.
func (m *Manager) DeleteSave(ctx context.Context, slot string) error {
	slot = normalizeSlot(slot)
	if m.repo == nil {
		return fmt.Errorf(ErrFmtDelete, slot, ErrNoStore)
	}
	if err := m.repo.Delete(ctx, slot); err != nil {
		return fmt.Errorf(ErrFmtDelete, slot, err)
	}
	logger.FromContext(ctx).Info(LogMsgSaveDeleted, "slot", slot)
	return nil
}
