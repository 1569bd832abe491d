package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/CraftQuest_Go/internal/crafting"
	"github.com/osse101/CraftQuest_Go/internal/domain"
)

// Parse turns a command line into a typed Command.
// Unknown plugins or subcommands return domain.ErrUnknownCommand; malformed
// arguments return domain.ErrInvalidArguments, domain.ErrInvalidID or
// domain.ErrInvalidTitle. Nothing is executed here.
func Parse(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, fmt.Errorf(ErrFmtEmptyLine, domain.ErrUnknownCommand)
	}
	if len(tokens) == 1 {
		return nil, fmt.Errorf(ErrFmtUnknown, domain.ErrUnknownCommand, tokens[0])
	}
	return ParseArgs(tokens[0], tokens[1], tokens[2:])
}

// ParseArgs parses an already tokenized command
func ParseArgs(plugin, sub string, args []string) (Command, error) {
	switch plugin {
	case PluginCraftBox:
		return parseCraftBox(sub, args)
	case PluginQuestManager:
		return parseQuestManager(sub, args)
	case PluginInventory:
		return parseInventory(sub, args)
	}
	return nil, fmt.Errorf(ErrFmtUnknown, domain.ErrUnknownCommand, plugin)
}

func parseCraftBox(sub string, args []string) (Command, error) {
	name := PluginCraftBox + " " + sub
	switch sub {
	case SubOpen:
		if len(args) != 0 {
			return nil, argCount(name, UsageNone)
		}
		return OpenCraftBox{}, nil
	case SubClear:
		if len(args) != 0 {
			return nil, argCount(name, UsageNone)
		}
		return ClearRecipes{}, nil
	case SubAdd, SubCraft:
		if len(args) != 2 {
			return nil, argCount(name, UsageKindID)
		}
		kind, err := parseKind(args[0])
		if err != nil {
			return nil, err
		}
		id, err := parseID(args[1])
		if err != nil {
			return nil, err
		}
		if sub == SubAdd {
			return AddRecipe{Kind: kind, ID: id}, nil
		}
		return Craft{Kind: kind, ID: id}, nil
	}
	return nil, fmt.Errorf(ErrFmtUnknown, domain.ErrUnknownCommand, name)
}

func parseQuestManager(sub string, args []string) (Command, error) {
	name := PluginQuestManager + " " + sub
	switch sub {
	case SubOpen:
		if len(args) != 0 {
			return nil, argCount(name, UsageNone)
		}
		return OpenQuests{}, nil
	case SubClear:
		if len(args) != 0 {
			return nil, argCount(name, UsageNone)
		}
		return ClearQuests{}, nil
	case SubAdd:
		if len(args) < 1 {
			return nil, argCount(name, UsageIDTitle)
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		title := joinText(args[1:])
		if title == "" {
			return nil, fmt.Errorf(ErrFmtMissingTitle, domain.ErrInvalidTitle)
		}
		return AddQuest{ID: id, Title: title}, nil
	case SubUpdate:
		if len(args) < 1 {
			return nil, argCount(name, UsageIDText)
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return UpdateQuest{ID: id, Text: joinText(args[1:])}, nil
	case SubComplete:
		if len(args) < 1 {
			return nil, argCount(name, UsageIDOptText)
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return CompleteQuest{ID: id, Text: joinText(args[1:])}, nil
	case SubRemove:
		if len(args) != 1 {
			return nil, argCount(name, UsageID)
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return RemoveQuest{ID: id}, nil
	}
	return nil, fmt.Errorf(ErrFmtUnknown, domain.ErrUnknownCommand, name)
}

func parseInventory(sub string, args []string) (Command, error) {
	name := PluginInventory + " " + sub
	if sub != SubGain && sub != SubLose {
		return nil, fmt.Errorf(ErrFmtUnknown, domain.ErrUnknownCommand, name)
	}
	if len(args) != 3 {
		return nil, argCount(name, UsageKindIDCount)
	}
	kind, err := parseKind(args[0])
	if err != nil {
		return nil, err
	}
	id, err := parseID(args[1])
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(args[2])
	if err != nil || count < 1 {
		return nil, fmt.Errorf(ErrFmtBadCount, domain.ErrInvalidArguments, args[2])
	}
	if sub == SubGain {
		return GainItem{Kind: kind, ID: id, Count: count}, nil
	}
	return LoseItem{Kind: kind, ID: id, Count: count}, nil
}

func parseKind(token string) (domain.ItemKind, error) {
	kind, ok := domain.ParseItemKind(token)
	if ok {
		return kind, nil
	}
	if hint := crafting.SuggestKind(token); hint != "" {
		return "", fmt.Errorf(ErrFmtBadKindHint, domain.ErrInvalidArguments, token, hint)
	}
	return "", fmt.Errorf(ErrFmtBadKind, domain.ErrInvalidArguments, token)
}

func parseID(token string) (int, error) {
	id, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtBadID, domain.ErrInvalidID, token)
	}
	return id, nil
}

func argCount(name, usage string) error {
	return fmt.Errorf(ErrFmtArgCount, domain.ErrInvalidArguments, name, usage)
}

func joinText(args []string) string {
	return strings.Join(args, " ")
}
