package discord

import "time"

// Embed colors
const (
	ColorInfo    = 0x3498db
	ColorSuccess = 0x2ecc71
	ColorWarning = 0xe67e22
	ColorError   = 0xe74c3c
)

// FooterCraftQuest is shown under every embed
const FooterCraftQuest = "CraftQuest"

// API client settings
const (
	DefaultClientTimeout = 10 * time.Second
	MaxRetries           = 3
	RetryBaseDelay       = 500 * time.Millisecond
)

// SlotPrefix namespaces the save slot of each discord channel
const SlotPrefix = "discord-"

// Friendly messages
const (
	MsgGenericError   = "❌ Something went wrong."
	MsgUnreachable    = "❌ Error connecting to game server."
	MsgNotFound       = "❓ **Not Found**"
	MsgConflict       = "📌 **Already There**"
	MsgNotPossible    = "🎒 **Can't Do That**"
	MsgInvalidInput   = "⚠️ **Invalid Input**"
	MsgIgnored        = "Unknown command. Try `CraftBox open` or `QuestManager open`."
	MsgNoRecipes      = "The craft box is empty. Add one with `CraftBox add <kind> <id>`."
	MsgNoQuests       = "No quests here."
	MsgEmptyInventory = "Your party carries nothing."
)

// Log messages
const (
	LogMsgBotReady          = "Bot is ready"
	LogMsgBotRunning        = "Discord bot is now running"
	LogMsgRetrying          = "Retrying API request"
	LogMsgRequestFailed     = "API request failed"
	LogMsgServerErrorRetry  = "Server error, will retry"
	LogMsgActionFailed      = "Action failed"
	LogMsgSendFailed        = "Failed to send response"
	LogMsgDeferFailed       = "Failed to send deferred response"
	LogMsgCommandsUnchanged = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated   = "Commands updated"
	LogMsgMessageForwarded  = "Forwarded message command"
	LogMsgHealthServer      = "Starting bot health server"
	LogMsgHealthServerFail  = "Bot health server failed"

	LogMsgStreamConnected    = "Connected to event stream"
	LogMsgStreamStopped      = "Event stream client stopped"
	LogMsgStreamFailed       = "Event stream connection failed"
	LogMsgStreamParseError   = "Failed to parse stream event"
	LogMsgStreamHandlerError = "Stream event handler failed"
)

// API paths
const (
	PathCommand   = "/api/v1/command"
	PathRecipes   = "/api/v1/recipes"
	PathCraft     = "/api/v1/craft"
	PathQuests    = "/api/v1/quests"
	PathInventory = "/api/v1/inventory"
	PathSave      = "/api/v1/save"
	PathLoad      = "/api/v1/load"
	PathHealth    = "/healthz"
)
