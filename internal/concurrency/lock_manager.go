package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per save slot so every mutation
// on a slot's catalog, ledger and inventory is serialized.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given slot
func (lm *LockManager) GetLock(slot string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(slot, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the slot's mutex
func (lm *LockManager) WithLock(slot string, fn func() error) error {
	mu := lm.GetLock(slot)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
