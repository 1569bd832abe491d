package domain

// InventorySlot represents a single held item stack
type InventorySlot struct {
	Kind     ItemKind `json:"kind"`
	ItemID   int      `json:"item_id"`
	Quantity int      `json:"quantity"`
}

// Key returns the registry key of the slot's item
func (s InventorySlot) Key() ItemKey {
	return ItemKey{Kind: s.Kind, ID: s.ItemID}
}

// InventoryDelta is a signed quantity change applied to one item
type InventoryDelta struct {
	Key   ItemKey `json:"key"`
	Delta int     `json:"delta"`
}
