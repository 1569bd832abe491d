package item

// Item configuration file names
const (
	// ConfigFileName is the name of the items configuration file
	ConfigFileName = "items.json"
)

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Validation error formats
const (
	ErrFmtItemInvalid   = "%w: item at index %d (%s): %s"
	ErrFmtItemDuplicate = "%w: %s"
)

// Log messages
const (
	LogMsgRegistryLoaded   = "Item registry loaded"
	LogMsgRegistryReloaded = "Item registry reloaded"
)
