package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CraftQuest_Go/internal/command"
	"github.com/osse101/CraftQuest_Go/internal/domain"
)

func newEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterCraftQuest},
	}
}

// kindLabel renders an item kind for display, e.g. "weapon" as "Weapon".
// Casers are stateful so each call gets its own.
func kindLabel(k domain.ItemKind) string {
	return cases.Title(language.English).String(string(k))
}

func keyLabel(kind domain.ItemKind, id int) string {
	return fmt.Sprintf("%s #%d", kindLabel(kind), id)
}

// resultEmbed renders a dispatched command line
func resultEmbed(res command.Result) *discordgo.MessageEmbed {
	if res.Ignored {
		return newEmbed("🤷 Ignored", MsgIgnored, ColorWarning)
	}
	msg := res.Message
	if msg != "" {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	return newEmbed("⚔️ "+res.Command, msg, ColorSuccess)
}

// formatRecipes lists each recipe with a check mark when the party can afford it
func formatRecipes(listings []domain.RecipeListing) string {
	if len(listings) == 0 {
		return MsgNoRecipes
	}

	var sb strings.Builder
	for _, l := range listings {
		mark := "❌"
		if l.Affordable {
			mark = "✅"
		}
		name := l.Name
		if name == "" {
			name = keyLabel(l.Recipe.OutputKind, l.Recipe.OutputID)
		}
		fmt.Fprintf(&sb, "%s **%s** (%s)\n", mark, name, keyLabel(l.Recipe.OutputKind, l.Recipe.OutputID))
		for _, st := range l.Status {
			ingName := st.Name
			if ingName == "" {
				ingName = keyLabel(st.Kind, st.ID)
			}
			fmt.Fprintf(&sb, "  • %s %d/%d\n", ingName, st.Have, st.Need)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatQuests lists entries with their latest description
func formatQuests(listing domain.QuestListing) string {
	if len(listing.Entries) == 0 {
		return MsgNoQuests
	}

	var sb strings.Builder
	for _, q := range listing.Entries {
		fmt.Fprintf(&sb, "**%d. %s**\n", q.ID, q.Title)
		if n := len(q.Descriptions); n > 0 {
			fmt.Fprintf(&sb, "  %s\n", q.Descriptions[n-1])
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatInventory(items []domain.InventorySlot) string {
	if len(items) == 0 {
		return MsgEmptyInventory
	}

	var sb strings.Builder
	for _, it := range items {
		fmt.Fprintf(&sb, "%s x%d\n", keyLabel(it.Kind, it.ItemID), it.Quantity)
	}
	return strings.TrimRight(sb.String(), "\n")
}
