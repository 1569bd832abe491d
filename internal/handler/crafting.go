package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/logger"
)

// CraftRequest names the output item to craft one unit of
type CraftRequest struct {
	Slot string `json:"slot" validate:"max=64,slot"`
	Kind string `json:"kind" validate:"required,item_kind"`
	ID   int    `json:"id" validate:"gte=1"`
}

// CraftResponse reports the recipe that was consumed
type CraftResponse struct {
	Message string        `json:"message"`
	Recipe  domain.Recipe `json:"recipe"`
}

// HandleGetRecipes lists a slot's registered recipes in registration order
// @Summary List recipes
// @Description Returns every registered recipe with its affordable flag and per-ingredient status
// @Tags crafting
// @Produce json
// @Param slot query string false "Save slot"
// @Success 200 {array} domain.RecipeListing
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/recipes [get]
func HandleGetRecipes(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := slotParam(w, r)
		if !ok {
			return
		}

		listings, err := svc.Recipes(r.Context(), slot)
		if err != nil {
			respondServiceError(w, r, "recipes", err)
			return
		}
		respondJSON(w, http.StatusOK, listings)
	}
}

// HandleCraft crafts one unit of a registered recipe's output
// @Summary Craft an item
// @Description Consumes the recipe's ingredients and grants one output unit, atomically
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body CraftRequest true "Output to craft"
// @Success 200 {object} CraftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/craft [post]
func HandleCraft(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Craft"); err != nil {
			return
		}

		kind, _ := domain.ParseItemKind(req.Kind)
		recipe, err := svc.Craft(r.Context(), req.Slot, kind, req.ID)
		if err != nil {
			logger.FromContext(r.Context()).Info(LogMsgCraftFailed, "slot", req.Slot, "kind", req.Kind, "id", req.ID, "error", err)
			respondServiceError(w, r, "craft", err)
			return
		}

		respondJSON(w, http.StatusOK, CraftResponse{
			Message: fmt.Sprintf(MsgCrafted, recipe.OutputKey()),
			Recipe:  recipe,
		})
	}
}
