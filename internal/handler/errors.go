package handler

// Request-level error messages
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgInvalidKind           = "Invalid item kind"
)

// Success messages
const (
	MsgCrafted = "Crafted %s"
	MsgSaved   = "Saved slot %s"
	MsgLoaded  = "Loaded slot %s"
	MsgDeleted = "Deleted save %s"
)

// Log messages
const (
	LogMsgDispatchFailed = "Command dispatch failed"
	LogMsgCraftFailed    = "Craft failed"
	LogMsgSaveFailed     = "Save failed"
	LogMsgLoadFailed     = "Load failed"
	LogMsgDeleteFailed   = "Delete save failed"
	LogMsgServiceError   = "Service error"
)

// Query parameter names
const (
	ParamSlot   = "slot"
	ParamBucket = "bucket"
)
