package item

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/logger"
)

// Registry resolves (kind, id) pairs to item definitions.
// Callers never keep the returned pointer beyond the current operation;
// they keep the key and resolve again, so Reload is always observed.
type Registry interface {
	Lookup(kind domain.ItemKind, id int) (*domain.Item, bool)
}

// MemoryRegistry is an in-memory Registry backed by a validated item config
type MemoryRegistry struct {
	mu    sync.RWMutex
	items map[domain.ItemKey]domain.Item
}

// NewMemoryRegistry creates a registry holding the given items
func NewMemoryRegistry(items ...domain.Item) *MemoryRegistry {
	r := &MemoryRegistry{items: make(map[domain.ItemKey]domain.Item, len(items))}
	for _, it := range items {
		r.items[it.Key()] = it
	}
	return r
}

// LoadRegistry loads, validates and indexes an items config file
func LoadRegistry(ctx context.Context, loader Loader, path string) (*MemoryRegistry, error) {
	cfg, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid items config %s: %w", path, err)
	}

	r := NewMemoryRegistry(cfg.Items...)
	logger.FromContext(ctx).Info(LogMsgRegistryLoaded, "path", path, "items", len(cfg.Items))
	return r, nil
}

// Lookup returns a copy of the item definition for (kind, id)
func (r *MemoryRegistry) Lookup(kind domain.ItemKind, id int) (*domain.Item, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[domain.ItemKey{Kind: kind, ID: id}]
	if !ok {
		return nil, false
	}
	return &it, true
}

// Reload atomically replaces every definition
func (r *MemoryRegistry) Reload(ctx context.Context, items []domain.Item) {
	next := make(map[domain.ItemKey]domain.Item, len(items))
	for _, it := range items {
		next[it.Key()] = it
	}

	r.mu.Lock()
	r.items = next
	r.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgRegistryReloaded, "items", len(items))
}

// All returns every definition ordered by kind then id
func (r *MemoryRegistry) All() []domain.Item {
	r.mu.RLock()
	out := make([]domain.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	r.mu.RUnlock()

	rank := make(map[domain.ItemKind]int, len(domain.ItemKinds))
	for i, k := range domain.ItemKinds {
		rank[k] = i
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return rank[out[i].Kind] < rank[out[j].Kind]
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Len returns the number of definitions
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
