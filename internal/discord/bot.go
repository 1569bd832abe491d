package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CraftQuest_Go/internal/logger"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	AppID    string
	Prefix   string
	Registry *CommandRegistry
	Stream   *StreamClient
}

// Config holds the bot configuration
type Config struct {
	Token  string
	AppID  string
	APIURL string
	APIKey string
	Prefix string
	Notify bool
}

// New creates a new Discord bot with the game commands registered
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	registry := NewCommandRegistry()
	RegisterGameCommands(registry)

	bot := &Bot{
		Session:  s,
		Client:   NewAPIClient(cfg.APIURL, cfg.APIKey),
		AppID:    cfg.AppID,
		Prefix:   cfg.Prefix,
		Registry: registry,
	}
	if cfg.Notify {
		bot.Stream = NewStreamClient(cfg.APIURL, cfg.APIKey, NotifyEventTypes)
		RegisterNotifications(bot.Stream, s)
	}
	return bot, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if b.Stream != nil {
		b.Stream.Start(context.Background())
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop closes the event stream and the gateway connection
func (b *Bot) Stop() {
	if b.Stream != nil {
		b.Stream.Stop()
	}
	if err := b.Session.Close(); err != nil {
		slog.Error("Failed to close Discord session", "error", err)
	}
}

// Connected reports whether the gateway session is ready
func (b *Bot) Connected() bool {
	return b.Session != nil && b.Session.DataReady
}

func (b *Bot) ready(s *discordgo.Session, _ *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	b.Registry.Handle(s, i, b.Client)
}

// messageCreate forwards prefixed chat lines to the command endpoint
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	line, ok := parsePrefixed(b.Prefix, m.Content)
	if !ok {
		return
	}

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	RecordCommand()
	res, err := b.Client.Command(ctx, slotFor(m.ChannelID), line)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgActionFailed, "line", line, "error", err)
		if _, sendErr := s.ChannelMessageSend(m.ChannelID, formatFriendlyError(err)); sendErr != nil {
			slog.Error(LogMsgSendFailed, "error", sendErr)
		}
		return
	}
	if res.Ignored {
		return
	}

	logger.FromContext(ctx).Info(LogMsgMessageForwarded, "command", res.Command, "channel", m.ChannelID)
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, resultEmbed(res)); err != nil {
		slog.Error(LogMsgSendFailed, "error", err)
	}
}

// parsePrefixed strips prefix from content. An empty prefix never matches.
func parsePrefixed(prefix, content string) (string, bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", false
	}
	line := strings.TrimSpace(strings.TrimPrefix(content, prefix))
	return line, line != ""
}

// slotFor gives every channel its own save slot
func slotFor(channelID string) string {
	return SlotPrefix + channelID
}
