package handler

import (
	"net/http"

	"github.com/osse101/CraftQuest_Go/internal/domain"
)

// InventoryResponse lists held item stacks
type InventoryResponse struct {
	Slot  string                 `json:"slot"`
	Items []domain.InventorySlot `json:"items"`
}

// HandleGetInventory returns the items a slot holds
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Param slot query string false "Save slot"
// @Success 200 {object} InventoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/inventory [get]
func HandleGetInventory(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := slotParam(w, r)
		if !ok {
			return
		}

		items, err := svc.Inventory(r.Context(), slot)
		if err != nil {
			respondServiceError(w, r, "inventory", err)
			return
		}
		if items == nil {
			items = []domain.InventorySlot{}
		}
		respondJSON(w, http.StatusOK, InventoryResponse{Slot: displaySlot(slot), Items: items})
	}
}
