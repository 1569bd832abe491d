package domain

// DefaultMaxStack matches the host engine's party item cap
const DefaultMaxStack = 99

// Default quest bucket labels
const (
	DefaultInProgressLabel = "Quests in Progress"
	DefaultCompletedLabel  = "Quests Completed"
)

// DefaultSaveSlot is used when a caller does not name a save slot
const DefaultSaveSlot = "default"

// SaveStateVersion is bumped whenever the persisted SaveState shape changes
const SaveStateVersion = "1.0"
