package command

// Plugin names and subcommands, matched case-sensitively
const (
	PluginCraftBox     = "CraftBox"
	PluginQuestManager = "QuestManager"
	PluginInventory    = "Inventory"

	SubOpen     = "open"
	SubAdd      = "add"
	SubClear    = "clear"
	SubCraft    = "craft"
	SubUpdate   = "update"
	SubComplete = "complete"
	SubRemove   = "remove"
	SubGain     = "gain"
	SubLose     = "lose"
)

// Views opened by the open subcommands
const (
	ViewCraftBox = "craftbox"
	ViewQuests   = "quests"
)

// Error message formats
const (
	ErrFmtEmptyLine     = "%w: empty command"
	ErrFmtUnknown       = "%w: %s"
	ErrFmtArgCount      = "%w: %s expects %s"
	ErrFmtBadKind       = "%w: unknown kind %q"
	ErrFmtBadKindHint   = "%w: unknown kind %q (did you mean %q?)"
	ErrFmtBadID         = "%w: %q is not an integer"
	ErrFmtBadCount      = "%w: %q is not a positive integer"
	ErrFmtMissingTitle  = "%w: quest title is required"
	ErrFmtUnhandledType = "unhandled command type %T"
)

// Usage strings reported with argument count errors
const (
	UsageKindID      = "<kind> <id>"
	UsageNone        = "no arguments"
	UsageIDTitle     = "<id> <title...>"
	UsageIDText      = "<id> <text...>"
	UsageIDOptText   = "<id> [<text...>]"
	UsageID          = "<id>"
	UsageKindIDCount = "<kind> <id> <count>"
)

// Result messages
const (
	MsgOpened         = "opened %s"
	MsgRecipeAdded    = "recipe for %s registered"
	MsgRecipesCleared = "recipe catalog cleared"
	MsgCrafted        = "crafted %s"
	MsgQuestAdded     = "quest %d added"
	MsgQuestUpdated   = "quest %d updated"
	MsgQuestCompleted = "quest %d completed"
	MsgQuestRemoved   = "quest %d removed"
	MsgQuestsCleared  = "quests cleared"
	MsgGained         = "gained %d %s"
	MsgLost           = "lost %d %s"
)

// Log messages
const (
	LogMsgIgnored       = "Ignoring unknown command"
	LogMsgRejected      = "Command rejected"
	LogMsgExecuted      = "Command executed"
	LogMsgExecuteFailed = "Command failed"
)
