package postgres

// Queries
const (
	querySaveState = `
		INSERT INTO save_states (slot, version, state, saved_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slot) DO UPDATE
		SET version = EXCLUDED.version, state = EXCLUDED.state, saved_at = EXCLUDED.saved_at`

	queryLoadState = `SELECT state FROM save_states WHERE slot = $1`

	queryDeleteState = `DELETE FROM save_states WHERE slot = $1`

	queryListSlots = `SELECT slot, version, saved_at FROM save_states ORDER BY slot`
)

// Error Messages - Save State Operations
const (
	ErrMsgFailedToEncodeState = "failed to encode save state"
	ErrMsgFailedToDecodeState = "failed to decode save state"
	ErrMsgFailedToSaveState   = "failed to save state"
	ErrMsgFailedToLoadState   = "failed to load state"
	ErrMsgFailedToDeleteState = "failed to delete state"
	ErrMsgFailedToListSlots   = "failed to list save slots"
)
