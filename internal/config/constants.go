package config

const (
	// Configuration file paths
	ConfigPathItems = "configs/items.json"
)

// Recipe metadata formats
const (
	RecipeFormatAuto   = "auto"
	RecipeFormatColon  = "colon"
	RecipeFormatLegacy = "legacy"
)

// Defaults
const (
	DefaultPort          = 8080
	DefaultDBMaxConns    = 10
	DefaultCommandPrefix = "!"
	DefaultAPIURL        = "http://localhost:8080"
)
