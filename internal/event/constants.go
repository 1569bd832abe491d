package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	// LogMsgHandlerErrorFormat wraps the errors returned by subscribers of one event
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// Metadata keys
const (
	MetadataKeySlot = "slot"
)
