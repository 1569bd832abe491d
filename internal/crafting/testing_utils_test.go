package crafting

import (
	"context"
	"sync"

	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/event"
	"github.com/osse101/CraftQuest_Go/internal/item"
)

var (
	herbKey  = domain.ItemKey{Kind: domain.KindConsumable, ID: 1}
	oreKey   = domain.ItemKey{Kind: domain.KindConsumable, ID: 2}
	vestKey  = domain.ItemKey{Kind: domain.KindArmor, ID: 1}
	swordKey = domain.ItemKey{Kind: domain.KindWeapon, ID: 1}
)

func newTestRegistry() *item.MemoryRegistry {
	return item.NewMemoryRegistry(
		domain.Item{Kind: domain.KindConsumable, ID: 1, Name: "Herb"},
		domain.Item{Kind: domain.KindConsumable, ID: 2, Name: "Ore"},
		domain.Item{Kind: domain.KindArmor, ID: 1, Name: "Leather Vest", Recipe: "item:1:5 item:2:1"},
		domain.Item{Kind: domain.KindWeapon, ID: 1, Name: "Spear", Recipe: "item 2 2"},
		domain.Item{Kind: domain.KindWeapon, ID: 2, Name: "Stick"},
	)
}

// recordingBus captures published events for assertions
type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *recordingBus) Publish(_ context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBus) Subscribe(event.Type, event.Handler) {}

func (b *recordingBus) types() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Type, len(b.events))
	for i, e := range b.events {
		out[i] = e.Type
	}
	return out
}

func newTestCatalog(t interface{ Fatalf(string, ...any) }) (*Catalog, *recordingBus) {
	parser, err := NewParser(FormatAuto)
	if err != nil {
		t.Fatalf("parser: %v", err)
	}
	bus := &recordingBus{}
	return NewCatalog(newTestRegistry(), parser, bus), bus
}

// MockInventory is a non-batch inventory with error injection for rollback tests
type MockInventory struct {
	mu    sync.Mutex
	items map[domain.ItemKey]int

	shouldFailCredit bool
	shouldFailDebit  bool
	failDebitAfter   int // fail the Nth debit (1-based) when > 0
	debits           int
	creditError      error
}

func NewMockInventory(seed map[domain.ItemKey]int) *MockInventory {
	m := &MockInventory{items: make(map[domain.ItemKey]int)}
	for k, v := range seed {
		m.items[k] = v
	}
	return m
}

func (m *MockInventory) QuantityOf(kind domain.ItemKind, id int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[domain.ItemKey{Kind: kind, ID: id}]
}

func (m *MockInventory) Debit(key domain.ItemKey, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debits++
	if m.shouldFailDebit || (m.failDebitAfter > 0 && m.debits == m.failDebitAfter) {
		return domain.ErrInsufficientQuantity
	}
	if m.items[key] < count {
		return domain.ErrInsufficientQuantity
	}
	m.items[key] -= count
	return nil
}

func (m *MockInventory) Credit(key domain.ItemKey, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldFailCredit && key == m.outputOnly() {
		if m.creditError != nil {
			return m.creditError
		}
		return domain.ErrInventoryFull
	}
	m.items[key] += count
	return nil
}

// outputOnly limits credit failures to non-ingredient keys so rollback credits succeed
func (m *MockInventory) outputOnly() domain.ItemKey {
	return vestKey
}

func (m *MockInventory) snapshot() map[domain.ItemKey]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[domain.ItemKey]int, len(m.items))
	for k, v := range m.items {
		if v != 0 {
			out[k] = v
		}
	}
	return out
}
