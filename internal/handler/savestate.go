package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/logger"
	"github.com/osse101/CraftQuest_Go/internal/repository"
)

// SlotRequest names the save slot to persist or restore
type SlotRequest struct {
	Slot string `json:"slot" validate:"max=64,slot"`
}

// HandleSave persists a slot's catalog, ledger and inventory
// @Summary Save a slot
// @Tags persistence
// @Accept json
// @Produce json
// @Param request body SlotRequest true "Slot"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/save [post]
func HandleSave(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SlotRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save"); err != nil {
			return
		}

		state, err := svc.Save(r.Context(), req.Slot)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgSaveFailed, "slot", req.Slot, "error", err)
			respondServiceError(w, r, "save", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{
			Message: fmt.Sprintf(MsgSaved, displaySlot(req.Slot)),
			Data:    state,
		})
	}
}

// HandleLoad replaces a slot's in-memory state with its stored save
// @Summary Load a slot
// @Tags persistence
// @Accept json
// @Produce json
// @Param request body SlotRequest true "Slot"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/load [post]
func HandleLoad(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SlotRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Load"); err != nil {
			return
		}

		if err := svc.Load(r.Context(), req.Slot); err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgLoadFailed, "slot", req.Slot, "error", err)
			respondServiceError(w, r, "load", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: fmt.Sprintf(MsgLoaded, displaySlot(req.Slot))})
	}
}

func displaySlot(slot string) string {
	if slot == "" {
		return domain.DefaultSaveSlot
	}
	return slot
}

// SavesResponse lists stored saves
type SavesResponse struct {
	Saves []repository.SlotInfo `json:"saves"`
}

// HandleListSaves lists every stored save slot
// @Summary List saves
// @Tags persistence
// @Produce json
// @Success 200 {object} SavesResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/saves [get]
func HandleListSaves(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		saves, err := svc.ListSaves(r.Context())
		if err != nil {
			respondServiceError(w, r, "list saves", err)
			return
		}
		if saves == nil {
			saves = []repository.SlotInfo{}
		}
		respondJSON(w, http.StatusOK, SavesResponse{Saves: saves})
	}
}

// HandleDeleteSave removes a stored save. The in-memory game is kept.
// @Summary Delete a save
// @Tags persistence
// @Produce json
// @Param slot query string false "Save slot"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/save [delete]
func HandleDeleteSave(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := slotParam(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteSave(r.Context(), slot); err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgDeleteFailed, "slot", slot, "error", err)
			respondServiceError(w, r, "delete save", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: fmt.Sprintf(MsgDeleted, displaySlot(slot))})
	}
}
