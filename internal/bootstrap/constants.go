package bootstrap

import "time"

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingCraftQuest  = "Starting CraftQuest"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Game Data
// =============================================================================

const (
	LogMsgLoadingItems        = "Loading item definitions"
	LogMsgParserReady         = "Recipe parser ready"
	ErrMsgFailedLoadItems     = "failed to load items config"
	ErrMsgInvalidRecipeFormat = "invalid recipe format"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventStreamStarted         = "Event stream hub started"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Save Store
// =============================================================================

const (
	LogMsgConnectingDatabase = "Connecting to database"
	LogMsgMigrationsApplied  = "Database migrations applied"
	LogMsgSaveStoreReady     = "Save store ready"
	ErrMsgFailedConnectDB    = "failed to connect to database"
	ErrMsgFailedPingDB       = "failed to ping database"
	ErrMsgFailedMigrate      = "failed to migrate database"

	// DBConnectTimeout bounds the initial connection and ping
	DBConnectTimeout = 10 * time.Second
)

// Autosave
const (
	LogMsgAutosaveEnabled = "Autosave enabled"
	LogMsgAutosaveNoStore = "Autosave requested but no save store is configured"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
	LogMsgClosingStreams       = "Closing event streams"
	LogMsgStoppingAutosave     = "Stopping autosave"
)
