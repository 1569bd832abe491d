package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "recipe.registered")
const (
	// EventTypeRecipeRegistered is published when a recipe enters the catalog
	EventTypeRecipeRegistered = "recipe.registered"

	// EventTypeRecipeRejected is published when a registration attempt fails
	EventTypeRecipeRejected = "recipe.rejected"

	// EventTypeCatalogCleared is published when the catalog is emptied
	EventTypeCatalogCleared = "recipe.catalog_cleared"

	// EventTypeItemCrafted is published after a committed craft transaction
	EventTypeItemCrafted = "item.crafted"

	// EventTypeCraftFailed is published when a craft is refused or rolled back
	EventTypeCraftFailed = "item.craft_failed"

	// EventTypeQuestAdded is published when a quest enters the in-progress bucket
	EventTypeQuestAdded = "quest.added"

	// EventTypeQuestUpdated is published when a description is appended
	EventTypeQuestUpdated = "quest.updated"

	// EventTypeQuestCompleted is published when a quest moves to the completed bucket
	EventTypeQuestCompleted = "quest.completed"

	// EventTypeQuestRemoved is published when a quest is deleted
	EventTypeQuestRemoved = "quest.removed"

	// EventTypeQuestsCleared is published when both buckets are emptied
	EventTypeQuestsCleared = "quest.cleared"
)
