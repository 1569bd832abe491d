package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CraftQuest_Go/internal/event"
)

// NotifyEventTypes are the stream events announced in discord channels
var NotifyEventTypes = []string{
	string(event.ItemCrafted),
	string(event.QuestAdded),
	string(event.QuestCompleted),
}

// EmbedSender posts embeds to a channel. *discordgo.Session satisfies it.
type EmbedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// RegisterNotifications announces stream events in the channel that owns the slot.
// Slots that do not belong to a discord channel are skipped.
func RegisterNotifications(c *StreamClient, sender EmbedSender) {
	for _, t := range NotifyEventTypes {
		c.OnEvent(t, func(_ context.Context, evt StreamEvent) error {
			channelID, ok := channelForSlot(evt.Slot)
			if !ok {
				return nil
			}
			embed, err := notificationEmbed(evt)
			if err != nil {
				return err
			}
			if _, err := sender.ChannelMessageSendEmbed(channelID, embed); err != nil {
				return fmt.Errorf("failed to send notification: %w", err)
			}
			return nil
		})
	}
}

// channelForSlot reverses slotFor
func channelForSlot(slot string) (string, bool) {
	if !strings.HasPrefix(slot, SlotPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(slot, SlotPrefix)
	return id, id != ""
}

func notificationEmbed(evt StreamEvent) (*discordgo.MessageEmbed, error) {
	switch evt.Type {
	case string(event.ItemCrafted):
		var p event.CraftPayloadV1
		if err := json.Unmarshal(evt.Payload, &p); err != nil {
			return nil, fmt.Errorf("invalid craft payload: %w", err)
		}
		name := p.OutputName
		if name == "" {
			name = keyLabel(p.OutputKind, p.OutputID)
		}
		return newEmbed("🛠️ Crafted", fmt.Sprintf("**%s** joined the inventory.", name), ColorSuccess), nil
	case string(event.QuestAdded), string(event.QuestCompleted):
		var p event.QuestPayloadV1
		if err := json.Unmarshal(evt.Payload, &p); err != nil {
			return nil, fmt.Errorf("invalid quest payload: %w", err)
		}
		title := p.Title
		if title == "" {
			title = fmt.Sprintf("Quest #%d", p.QuestID)
		}
		if evt.Type == string(event.QuestCompleted) {
			return newEmbed("🏆 Quest Completed", "**"+title+"**", ColorSuccess), nil
		}
		return newEmbed("📜 New Quest", "**"+title+"**\n"+p.Description, ColorInfo), nil
	}
	return nil, fmt.Errorf("no notification for event type %q", evt.Type)
}
