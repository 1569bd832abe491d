package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CraftQuest_Go/internal/crafting"
	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/inventory"
	"github.com/osse101/CraftQuest_Go/internal/item"
	"github.com/osse101/CraftQuest_Go/internal/logger"
	"github.com/osse101/CraftQuest_Go/internal/quest"
)

// Result describes what a dispatched command did
type Result struct {
	Command string `json:"command,omitempty"`
	Ignored bool   `json:"ignored,omitempty"`
	View    string `json:"view,omitempty"`
	Message string `json:"message,omitempty"`
}

// Targets are the session-owned instances commands operate on
type Targets struct {
	Catalog   *crafting.Catalog
	Engine    *crafting.Engine
	Ledger    *quest.Ledger
	Inventory *inventory.Party
	Registry  item.Registry
}

// Dispatcher routes typed commands to the catalog, engine, ledger and inventory
type Dispatcher struct {
	t Targets
}

// NewDispatcher creates a dispatcher over one session's targets
func NewDispatcher(t Targets) *Dispatcher {
	return &Dispatcher{t: t}
}

// Dispatch parses and executes line. Unknown commands are ignored without error.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) (Result, error) {
	log := logger.FromContext(ctx)

	cmd, err := Parse(line)
	if errors.Is(err, domain.ErrUnknownCommand) {
		log.Debug(LogMsgIgnored, "line", line)
		return Result{Ignored: true}, nil
	}
	if err != nil {
		log.Info(LogMsgRejected, "line", line, "error", err)
		return Result{}, err
	}
	return d.Execute(ctx, cmd)
}

// Execute runs an already parsed command
func (d *Dispatcher) Execute(ctx context.Context, cmd Command) (Result, error) {
	log := logger.FromContext(ctx)

	res, err := d.execute(ctx, cmd)
	res.Command = cmd.Name()
	if err != nil {
		log.Info(LogMsgExecuteFailed, "command", cmd.Name(), "error", err)
		return res, err
	}
	log.Debug(LogMsgExecuted, "command", cmd.Name())
	return res, nil
}

func (d *Dispatcher) execute(ctx context.Context, cmd Command) (Result, error) {
	switch c := cmd.(type) {
	case OpenCraftBox:
		return Result{View: ViewCraftBox, Message: fmt.Sprintf(MsgOpened, ViewCraftBox)}, nil
	case AddRecipe:
		if err := d.t.Catalog.RegisterFromItem(ctx, c.Kind, c.ID); err != nil {
			return Result{}, err
		}
		return Result{Message: fmt.Sprintf(MsgRecipeAdded, d.itemName(c.Kind, c.ID))}, nil
	case ClearRecipes:
		d.t.Catalog.Clear(ctx)
		return Result{Message: MsgRecipesCleared}, nil
	case Craft:
		if _, err := d.t.Engine.CraftOutput(ctx, c.Kind, c.ID, d.t.Inventory); err != nil {
			return Result{}, err
		}
		return Result{Message: fmt.Sprintf(MsgCrafted, d.itemName(c.Kind, c.ID))}, nil
	case OpenQuests:
		return Result{View: ViewQuests, Message: fmt.Sprintf(MsgOpened, ViewQuests)}, nil
	case AddQuest:
		if err := d.t.Ledger.AddQuest(ctx, c.ID, c.Title); err != nil {
			return Result{}, err
		}
		return Result{Message: fmt.Sprintf(MsgQuestAdded, c.ID)}, nil
	case UpdateQuest:
		if err := d.t.Ledger.AppendDescription(ctx, c.ID, c.Text); err != nil {
			return Result{}, err
		}
		return Result{Message: fmt.Sprintf(MsgQuestUpdated, c.ID)}, nil
	case CompleteQuest:
		if err := d.t.Ledger.CompleteQuest(ctx, c.ID, c.Text); err != nil {
			return Result{}, err
		}
		return Result{Message: fmt.Sprintf(MsgQuestCompleted, c.ID)}, nil
	case RemoveQuest:
		if err := d.t.Ledger.RemoveQuest(ctx, c.ID); err != nil {
			return Result{}, err
		}
		return Result{Message: fmt.Sprintf(MsgQuestRemoved, c.ID)}, nil
	case ClearQuests:
		d.t.Ledger.Clear(ctx)
		return Result{Message: MsgQuestsCleared}, nil
	case GainItem:
		if err := d.checkItem(c.Kind, c.ID); err != nil {
			return Result{}, err
		}
		if err := d.t.Inventory.Credit(domain.ItemKey{Kind: c.Kind, ID: c.ID}, c.Count); err != nil {
			return Result{}, err
		}
		return Result{Message: fmt.Sprintf(MsgGained, c.Count, d.itemName(c.Kind, c.ID))}, nil
	case LoseItem:
		if err := d.t.Inventory.Debit(domain.ItemKey{Kind: c.Kind, ID: c.ID}, c.Count); err != nil {
			return Result{}, err
		}
		return Result{Message: fmt.Sprintf(MsgLost, c.Count, d.itemName(c.Kind, c.ID))}, nil
	}
	return Result{}, fmt.Errorf(ErrFmtUnhandledType, cmd)
}

func (d *Dispatcher) checkItem(kind domain.ItemKind, id int) error {
	if _, ok := d.t.Registry.Lookup(kind, id); !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, domain.ItemKey{Kind: kind, ID: id})
	}
	return nil
}

func (d *Dispatcher) itemName(kind domain.ItemKind, id int) string {
	if it, ok := d.t.Registry.Lookup(kind, id); ok {
		return it.Name
	}
	return domain.ItemKey{Kind: kind, ID: id}.String()
}
