package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Recipe registration errors
	ErrMsgUnknownOutputItem   = "unknown output item"
	ErrMsgAlreadyRegistered   = "recipe already registered"
	ErrMsgMalformedIngredient = "malformed ingredient"
	ErrMsgRecipeNotFound      = "recipe not found"

	// Craft transaction errors
	ErrMsgInsufficientIngredients = "insufficient ingredients"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInventoryFull        = "inventory is full"
	ErrMsgInvalidQuantity      = "invalid quantity"

	// Quest errors
	ErrMsgInvalidTitle  = "invalid quest title"
	ErrMsgInvalidID     = "invalid id"
	ErrMsgDuplicateID   = "duplicate quest id"
	ErrMsgQuestNotFound = "quest not found"
	ErrMsgInvalidBucket = "invalid quest bucket"

	// Command errors
	ErrMsgInvalidArguments = "invalid arguments"
	ErrMsgUnknownCommand   = "unknown command"

	// Persistence errors
	ErrMsgSaveNotFound = "save not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	ErrUnknownOutputItem   = errors.New(ErrMsgUnknownOutputItem)
	ErrAlreadyRegistered   = errors.New(ErrMsgAlreadyRegistered)
	ErrMalformedIngredient = errors.New(ErrMsgMalformedIngredient)
	ErrRecipeNotFound      = errors.New(ErrMsgRecipeNotFound)

	ErrInsufficientIngredients = errors.New(ErrMsgInsufficientIngredients)

	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInventoryFull        = errors.New(ErrMsgInventoryFull)
	ErrInvalidQuantity      = errors.New(ErrMsgInvalidQuantity)

	ErrInvalidTitle  = errors.New(ErrMsgInvalidTitle)
	ErrInvalidID     = errors.New(ErrMsgInvalidID)
	ErrDuplicateID   = errors.New(ErrMsgDuplicateID)
	ErrQuestNotFound = errors.New(ErrMsgQuestNotFound)
	ErrInvalidBucket = errors.New(ErrMsgInvalidBucket)

	ErrInvalidArguments = errors.New(ErrMsgInvalidArguments)
	ErrUnknownCommand   = errors.New(ErrMsgUnknownCommand)

	ErrSaveNotFound = errors.New(ErrMsgSaveNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
