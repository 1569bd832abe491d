package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, job skipped"
)

// ============================================================================
// Log Messages - Autosave
// ============================================================================

// Log messages for autosave operations
const (
	LogMsgAutosaveStarting  = "Autosave starting"
	LogMsgAutosaveCompleted = "Autosave completed"
	LogMsgAutosaveSlotFail  = "Autosave failed for slot"
)

// ErrFmtAutosave wraps the first failure of an autosave run
const ErrFmtAutosave = "autosave: %d of %d slots failed: %w"

// ============================================================================
// Defaults
// ============================================================================

const (
	// DefaultJobTimeout bounds a single job run
	DefaultJobTimeout = 30 * time.Second

	// DefaultWorkers and DefaultQueueSize size the background pool
	DefaultWorkers   = 1
	DefaultQueueSize = 4
)
