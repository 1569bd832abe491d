package inventory

import (
	"fmt"
	"sync"

	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/item"
)

// Party is the held-item ledger of one game session.
// Stack limits come from the item registry; unknown items use domain.DefaultMaxStack.
type Party struct {
	mu       sync.RWMutex
	slots    []domain.InventorySlot
	registry item.Registry
}

// NewParty creates an empty inventory
func NewParty(registry item.Registry) *Party {
	return &Party{registry: registry}
}

// QuantityOf returns how many of (kind, id) are held
func (p *Party) QuantityOf(kind domain.ItemKind, id int) int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, qty := findSlot(p.slots, domain.ItemKey{Kind: kind, ID: id})
	return qty
}

// Credit adds count units of key
func (p *Party) Credit(key domain.ItemKey, count int) error {
	return p.Apply([]domain.InventoryDelta{{Key: key, Delta: count}})
}

// Debit removes count units of key
func (p *Party) Debit(key domain.ItemKey, count int) error {
	return p.Apply([]domain.InventoryDelta{{Key: key, Delta: -count}})
}

// Apply validates every delta against a working copy and commits them together.
// Either all deltas are applied or none are.
func (p *Party) Apply(deltas []domain.InventoryDelta) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	work := cloneSlots(p.slots)
	for _, d := range deltas {
		if d.Delta == 0 {
			continue
		}
		_, have := findSlot(work, d.Key)
		next := have + d.Delta
		if next < 0 {
			return fmt.Errorf(ErrFmtInsufficient, domain.ErrInsufficientQuantity, d.Key, have, -d.Delta)
		}
		if limit := p.stackLimit(d.Key); next > limit {
			return fmt.Errorf(ErrFmtOverflow, domain.ErrInventoryFull, d.Key, next, limit)
		}
		work = applyDelta(work, d.Key, d.Delta)
	}

	p.slots = work
	return nil
}

// Slots returns a copy of the held stacks in acquisition order
func (p *Party) Slots() []domain.InventorySlot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return cloneSlots(p.slots)
}

// Restore replaces the held stacks, merging duplicates and dropping non-positive quantities
func (p *Party) Restore(slots []domain.InventorySlot) {
	var work []domain.InventorySlot
	for _, s := range slots {
		if s.Quantity <= 0 {
			continue
		}
		work = applyDelta(work, s.Key(), s.Quantity)
	}

	p.mu.Lock()
	p.slots = work
	p.mu.Unlock()
}

// Clear drops every held stack
func (p *Party) Clear() {
	p.mu.Lock()
	p.slots = nil
	p.mu.Unlock()
}

func (p *Party) stackLimit(key domain.ItemKey) int {
	if p.registry == nil {
		return domain.DefaultMaxStack
	}
	it, ok := p.registry.Lookup(key.Kind, key.ID)
	if !ok {
		return domain.DefaultMaxStack
	}
	return it.StackLimit()
}

// ValidateQuantity rejects non-positive counts for gain/lose requests
func ValidateQuantity(count int) error {
	if count < 1 {
		return fmt.Errorf(ErrFmtBadQuantity, domain.ErrInvalidQuantity, count)
	}
	return nil
}
