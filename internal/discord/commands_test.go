package discord

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func interaction(name string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: name},
	}}
}

func TestCommandRegistry_Handle(t *testing.T) {
	registry := NewCommandRegistry()
	var called []string
	registry.Register(&discordgo.ApplicationCommand{Name: "recipes"}, func(_ *discordgo.Session, i *discordgo.InteractionCreate, _ GameAPI) {
		called = append(called, i.ApplicationCommandData().Name)
	})

	before := commandCounter.Load()
	registry.Handle(nil, interaction("recipes"), nil)
	registry.Handle(nil, interaction("nope"), nil)

	assert.Equal(t, []string{"recipes"}, called)
	assert.Equal(t, before+1, commandCounter.Load())
}

func TestRegisterGameCommands(t *testing.T) {
	registry := NewCommandRegistry()
	RegisterGameCommands(registry)

	for _, name := range []string{"cq", "recipes", "craft", "quests", "inventory", "save", "load"} {
		assert.Contains(t, registry.Commands, name)
		assert.Contains(t, registry.Handlers, name)
	}

	craft := registry.Commands["craft"]
	if assert.Len(t, craft.Options, 2) {
		assert.Len(t, craft.Options[0].Choices, 3)
		assert.Equal(t, "Weapon", craft.Options[0].Choices[1].Name)
		assert.Equal(t, "weapon", craft.Options[0].Choices[1].Value)
	}
}

func TestCommandsEqual(t *testing.T) {
	base := func() []*discordgo.ApplicationCommand {
		cmd, _ := CraftCommand()
		save, _ := SaveCommand()
		return []*discordgo.ApplicationCommand{cmd, save}
	}

	assert.True(t, commandsEqual(base(), base()))

	reordered := base()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	assert.True(t, commandsEqual(base(), reordered), "order does not matter")

	changed := base()
	changed[0].Options[1].Required = false
	assert.False(t, commandsEqual(base(), changed))

	renamedChoice := base()
	renamedChoice[0].Options[0].Choices[0].Name = "Potion"
	assert.False(t, commandsEqual(base(), renamedChoice))

	assert.False(t, commandsEqual(base(), base()[:1]))
}

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"transport failure", errors.New("dial tcp: connection refused"), MsgUnreachable},
		{"not found", &APIError{Status: http.StatusNotFound, Message: "Recipe not found"}, MsgNotFound + "\nRecipe not found"},
		{"conflict", &APIError{Status: http.StatusConflict, Message: "Recipe already registered"}, MsgConflict + "\nRecipe already registered"},
		{"unprocessable", &APIError{Status: http.StatusUnprocessableEntity, Message: "Not enough ingredients"}, MsgNotPossible + "\nNot enough ingredients"},
		{"bad request", &APIError{Status: http.StatusBadRequest, Message: "Invalid bucket"}, MsgInvalidInput + "\nInvalid bucket"},
		{"server error", &APIError{Status: http.StatusInternalServerError, Message: "boom"}, MsgGenericError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFriendlyError(tt.err))
		})
	}
}

func TestParsePrefixed(t *testing.T) {
	tests := []struct {
		prefix, content string
		line            string
		ok              bool
	}{
		{"!", "!CraftBox open", "CraftBox open", true},
		{"!", "! QuestManager add 1 Find herb ", "QuestManager add 1 Find herb", true},
		{"!", "CraftBox open", "", false},
		{"!", "!", "", false},
		{"", "CraftBox open", "", false},
		{"cq ", "cq Inventory gain item 1 2", "Inventory gain item 1 2", true},
	}

	for _, tt := range tests {
		line, ok := parsePrefixed(tt.prefix, tt.content)
		assert.Equal(t, tt.ok, ok, tt.content)
		assert.Equal(t, tt.line, line, tt.content)
	}
}

func TestSlotFor(t *testing.T) {
	assert.Equal(t, "discord-123", slotFor("123"))
}
