package domain

import "fmt"

// ItemKind is the closed set of item categories the host engine distinguishes
type ItemKind string

const (
	KindConsumable ItemKind = "item"
	KindWeapon     ItemKind = "weapon"
	KindArmor      ItemKind = "armor"
)

// ItemKinds lists every valid kind in display order
var ItemKinds = []ItemKind{KindConsumable, KindWeapon, KindArmor}

// ParseItemKind converts a case-sensitive kind token ("item", "weapon", "armor")
func ParseItemKind(token string) (ItemKind, bool) {
	switch ItemKind(token) {
	case KindConsumable, KindWeapon, KindArmor:
		return ItemKind(token), true
	}
	return "", false
}

// Valid reports whether k is one of the known kinds
func (k ItemKind) Valid() bool {
	_, ok := ParseItemKind(string(k))
	return ok
}

// ItemKey identifies an item definition by kind and numeric id.
// It is the only reference recipes and inventories hold to an item.
type ItemKey struct {
	Kind ItemKind `json:"kind"`
	ID   int      `json:"id"`
}

func (k ItemKey) String() string {
	return fmt.Sprintf("%s:%d", k.Kind, k.ID)
}

// Item represents an item definition owned by the registry
type Item struct {
	Kind        ItemKind `json:"kind" validate:"required,oneof=item weapon armor"`
	ID          int      `json:"id" validate:"gte=1"`
	Name        string   `json:"name" validate:"required,max=64"`
	Description string   `json:"description,omitempty"`
	MaxStack    int      `json:"max_stack,omitempty" validate:"gte=0"` // 0 means DefaultMaxStack
	// Recipe is the embedded recipe metadata, e.g. "item:1:5 item:2:1"
	Recipe string `json:"recipe,omitempty"`
}

// Key returns the registry key for the item
func (i *Item) Key() ItemKey {
	return ItemKey{Kind: i.Kind, ID: i.ID}
}

// StackLimit returns the maximum quantity a single inventory may hold
func (i *Item) StackLimit() int {
	if i.MaxStack <= 0 {
		return DefaultMaxStack
	}
	return i.MaxStack
}
