package handler

import (
	"net/http"

	"github.com/osse101/CraftQuest_Go/internal/command"
	"github.com/osse101/CraftQuest_Go/internal/logger"
	"github.com/osse101/CraftQuest_Go/internal/metrics"
)

// CommandRequest carries one raw command line for a save slot
type CommandRequest struct {
	Slot string `json:"slot" validate:"max=64,slot"`
	Line string `json:"line" validate:"required,max=500"`
}

// HandleCommand dispatches a command line against a slot.
// Unknown commands are ignored and reported with ignored=true.
// @Summary Dispatch a command
// @Description Parses and runs a CraftBox, QuestManager or Inventory command line
// @Tags commands
// @Accept json
// @Produce json
// @Param request body CommandRequest true "Command line"
// @Success 200 {object} command.Result
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/command [post]
func HandleCommand(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CommandRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Command"); err != nil {
			return
		}

		res, err := svc.Dispatch(r.Context(), req.Slot, req.Line)
		if err != nil {
			metrics.RecordCommand(res.Command, metrics.OutcomeError)
			logger.FromContext(r.Context()).Info(LogMsgDispatchFailed, "slot", req.Slot, "error", err)
			respondServiceError(w, r, "command", err)
			return
		}

		metrics.RecordCommand(res.Command, commandOutcome(res))
		respondJSON(w, http.StatusOK, res)
	}
}

func commandOutcome(res command.Result) string {
	if res.Ignored {
		return metrics.OutcomeIgnored
	}
	return metrics.OutcomeOK
}
