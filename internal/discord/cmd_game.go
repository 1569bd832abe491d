package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CraftQuest_Go/internal/domain"
)

// RegisterGameCommands adds every CraftQuest slash command to registry
func RegisterGameCommands(registry *CommandRegistry) {
	registry.Register(LineCommand())
	registry.Register(RecipesCommand())
	registry.Register(CraftCommand())
	registry.Register(QuestsCommand())
	registry.Register(InventoryCommand())
	registry.Register(SaveCommand())
	registry.Register(LoadCommand())
}

// LineCommand sends a raw command line, the same text the chat prefix accepts
func LineCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "cq",
		Description: "Run a CraftQuest command line",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "line",
				Description: "e.g. CraftBox open, QuestManager add 1 Find the herb",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, api GameAPI) {
		line := getOptions(i)["line"].StringValue()
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			res, err := api.Command(ctx, slotFor(i.ChannelID), line)
			if err != nil {
				return nil, err
			}
			return resultEmbed(res), nil
		})
	}

	return cmd, handler
}

// RecipesCommand shows the craft box with affordability
func RecipesCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "recipes",
		Description: "Show the recipes in the craft box",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, api GameAPI) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			listings, err := api.Recipes(ctx, slotFor(i.ChannelID))
			if err != nil {
				return nil, err
			}
			return newEmbed("📜 Craft Box", formatRecipes(listings), ColorInfo), nil
		})
	}

	return cmd, handler
}

// CraftCommand crafts one unit of a recipe output
func CraftCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	kindChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.ItemKinds))
	for _, k := range domain.ItemKinds {
		kindChoices = append(kindChoices, &discordgo.ApplicationCommandOptionChoice{Name: kindLabel(k), Value: string(k)})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "craft",
		Description: "Craft an item from the craft box",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "kind",
				Description: "Output kind",
				Required:    true,
				Choices:     kindChoices,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "id",
				Description: "Output id",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, api GameAPI) {
		opts := getOptions(i)
		kind := domain.ItemKind(opts["kind"].StringValue())
		id := int(opts["id"].IntValue())
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			msg, err := api.Craft(ctx, slotFor(i.ChannelID), kind, id)
			if err != nil {
				return nil, err
			}
			return newEmbed("🔨 Crafted", msg, ColorSuccess), nil
		})
	}

	return cmd, handler
}

// QuestsCommand shows one quest bucket
func QuestsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "quests",
		Description: "Show the quest ledger",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "bucket",
				Description: "Which quests to show",
				Required:    false,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "In progress", Value: string(domain.BucketInProgress)},
					{Name: "Completed", Value: string(domain.BucketCompleted)},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, api GameAPI) {
		bucket := domain.BucketInProgress
		if o, ok := getOptions(i)["bucket"]; ok {
			bucket = domain.QuestBucket(o.StringValue())
		}
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			listing, err := api.Quests(ctx, slotFor(i.ChannelID), bucket)
			if err != nil {
				return nil, err
			}
			return newEmbed("📖 "+listing.Label, formatQuests(listing), ColorInfo), nil
		})
	}

	return cmd, handler
}

// InventoryCommand shows the party's items
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "Show the party inventory",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, api GameAPI) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			items, err := api.Inventory(ctx, slotFor(i.ChannelID))
			if err != nil {
				return nil, err
			}
			return newEmbed("🎒 Inventory", formatInventory(items), ColorInfo), nil
		})
	}

	return cmd, handler
}

// SaveCommand persists this channel's game
func SaveCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "save",
		Description: "Save this channel's game",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, api GameAPI) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			msg, err := api.Save(ctx, slotFor(i.ChannelID))
			if err != nil {
				return nil, err
			}
			return newEmbed("💾 Saved", msg, ColorSuccess), nil
		})
	}

	return cmd, handler
}

// LoadCommand restores this channel's last save
func LoadCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "load",
		Description: "Load this channel's last save",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, api GameAPI) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			msg, err := api.Load(ctx, slotFor(i.ChannelID))
			if err != nil {
				return nil, err
			}
			return newEmbed("📂 Loaded", msg, ColorSuccess), nil
		})
	}

	return cmd, handler
}
