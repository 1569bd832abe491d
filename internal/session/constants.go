package session

import "errors"

// ErrNoStore is returned by Save and Load when the manager has no repository
var ErrNoStore = errors.New("no save store configured")

// Log messages
const (
	LogMsgSessionInit    = "Session initialised"
	LogMsgSessionCleared = "Session cleared"
	LogMsgSessionSaved   = "Session saved"
	LogMsgSessionLoaded  = "Session loaded"
	LogMsgSessionDropped = "Session dropped"
	LogMsgSaveDeleted    = "Stored save deleted"
)

// Error formats
const (
	ErrFmtSave    = "save slot %s: %w"
	ErrFmtLoad    = "load slot %s: %w"
	ErrFmtRestore = "restore slot %s: %w"
	ErrFmtDelete  = "delete slot %s: %w"
)
