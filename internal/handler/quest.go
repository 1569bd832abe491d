package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/CraftQuest_Go/internal/domain"
)

// HandleGetQuests returns one quest bucket in ascending id order
// @Summary List quests
// @Description Returns the in-progress or completed quests of a slot together with the bucket label
// @Tags quests
// @Produce json
// @Param slot query string false "Save slot"
// @Param bucket query string false "in_progress (default) or completed"
// @Success 200 {object} domain.QuestListing
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/quests [get]
func HandleGetQuests(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := slotParam(w, r)
		if !ok {
			return
		}

		bucket, ok := domain.ParseQuestBucket(GetOptionalQueryParam(r, ParamBucket, ""))
		if !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, ParamBucket))
			return
		}

		listing, err := svc.Quests(r.Context(), slot, bucket)
		if err != nil {
			respondServiceError(w, r, "quests", err)
			return
		}
		respondJSON(w, http.StatusOK, listing)
	}
}
