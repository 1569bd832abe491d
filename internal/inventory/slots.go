package inventory

import "github.com/osse101/CraftQuest_Go/internal/domain"

// findSlot finds the slot holding key.
// Returns the index of the slot and the quantity found, or -1, 0.
func findSlot(slots []domain.InventorySlot, key domain.ItemKey) (int, int) {
	for i, slot := range slots {
		if slot.Kind == key.Kind && slot.ItemID == key.ID {
			return i, slot.Quantity
		}
	}
	return -1, 0
}

// applyDelta adds delta to the slot for key, appending a slot when needed and
// dropping it when it reaches zero. The caller validates bounds first.
func applyDelta(slots []domain.InventorySlot, key domain.ItemKey, delta int) []domain.InventorySlot {
	i, qty := findSlot(slots, key)
	if i == -1 {
		if delta <= 0 {
			return slots
		}
		return append(slots, domain.InventorySlot{Kind: key.Kind, ItemID: key.ID, Quantity: delta})
	}

	if qty+delta == 0 {
		return append(slots[:i], slots[i+1:]...)
	}
	slots[i].Quantity += delta
	return slots
}

func cloneSlots(slots []domain.InventorySlot) []domain.InventorySlot {
	out := make([]domain.InventorySlot, len(slots))
	copy(out, slots)
	return out
}
