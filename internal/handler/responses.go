package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON encodes payload into a pooled buffer before writing the status
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the status and message it maps to
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "op", op, "error", err)
	} else {
		log.Info(LogMsgServiceError, "op", op, "error", err)
	}
	respondError(w, status, msg)
}

// User-facing messages for domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgItemNotFoundError          = "Item not found"
	ErrMsgUnknownOutputItemError     = "That item does not exist"
	ErrMsgAlreadyRegisteredError     = "That recipe is already in the craft box"
	ErrMsgMalformedIngredientError   = "The recipe for that item is malformed"
	ErrMsgRecipeNotFoundError        = "Recipe not found"
	ErrMsgInsufficientIngredientsErr = "Not enough ingredients"
	ErrMsgInsufficientQuantityError  = "Not enough items"
	ErrMsgInventoryFullError         = "Inventory is full"
	ErrMsgInvalidQuantityError       = "Quantity must be positive"
	ErrMsgInvalidTitleError          = "Quest title must not be empty"
	ErrMsgInvalidIDError             = "Invalid id"
	ErrMsgDuplicateIDError           = "A quest with that id already exists"
	ErrMsgQuestNotFoundError         = "Quest not found"
	ErrMsgInvalidBucketError         = "Bucket must be in_progress or completed"
	ErrMsgInvalidArgumentsError      = "Invalid command arguments"
	ErrMsgSaveNotFoundError          = "No save for that slot"
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a message users can act on
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrUnknownOutputItem):
		return http.StatusBadRequest, ErrMsgUnknownOutputItemError
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return http.StatusConflict, ErrMsgAlreadyRegisteredError
	case errors.Is(err, domain.ErrMalformedIngredient):
		return http.StatusUnprocessableEntity, ErrMsgMalformedIngredientError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrInsufficientIngredients):
		return http.StatusUnprocessableEntity, ErrMsgInsufficientIngredientsErr
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusUnprocessableEntity, ErrMsgInsufficientQuantityError
	case errors.Is(err, domain.ErrInventoryFull):
		return http.StatusUnprocessableEntity, ErrMsgInventoryFullError
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityError
	case errors.Is(err, domain.ErrInvalidTitle):
		return http.StatusBadRequest, ErrMsgInvalidTitleError
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, ErrMsgInvalidIDError
	case errors.Is(err, domain.ErrDuplicateID):
		return http.StatusConflict, ErrMsgDuplicateIDError
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, ErrMsgQuestNotFoundError
	case errors.Is(err, domain.ErrInvalidBucket):
		return http.StatusBadRequest, ErrMsgInvalidBucketError
	case errors.Is(err, domain.ErrInvalidArguments):
		return http.StatusBadRequest, ErrMsgInvalidArgumentsError
	case errors.Is(err, domain.ErrSaveNotFound):
		return http.StatusNotFound, ErrMsgSaveNotFoundError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
