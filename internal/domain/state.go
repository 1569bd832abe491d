package domain

import "time"

// SaveState is the persisted shape of a session: the catalog's ordered recipes,
// the ledger's two id-keyed buckets and the held inventory.
// No derived index is stored; it is rebuilt on restore.
type SaveState struct {
	Version    string             `json:"version"`
	Recipes    []Recipe           `json:"recipes"`
	InProgress map[int]QuestEntry `json:"in_progress"`
	Completed  map[int]QuestEntry `json:"completed"`
	Inventory  []InventorySlot    `json:"inventory"`
	SavedAt    time.Time          `json:"saved_at,omitempty"`
}
