package quest

// Error message formats
const (
	ErrFmtInvalidID      = "%w: %d"
	ErrFmtEmptyTitle     = "%w: title is empty"
	ErrFmtDuplicateID    = "%w: %d is already %s"
	ErrFmtNotFound       = "%w: %d"
	ErrFmtNotInProgress  = "%w: %d is not in progress"
	ErrFmtBadBucket      = "%w: %q"
	ErrFmtRestoreOverlap = "%w: %d is in both buckets"
)

// Log messages
const (
	LogMsgQuestAdded     = "Quest added"
	LogMsgQuestUpdated   = "Quest description appended"
	LogMsgQuestCompleted = "Quest completed"
	LogMsgQuestRemoved   = "Quest removed"
	LogMsgQuestsCleared  = "Quest ledger cleared"
	LogMsgLedgerRestored = "Quest ledger restored"
	LogMsgPublishFailed  = "Failed to publish quest event"
)
