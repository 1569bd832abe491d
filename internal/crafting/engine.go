package crafting

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/event"
	"github.com/osse101/CraftQuest_Go/internal/logger"
)

// Inventory is the held-item collaborator a craft debits and credits
type Inventory interface {
	QuantityReader
	Debit(key domain.ItemKey, count int) error
	Credit(key domain.ItemKey, count int) error
}

// BatchInventory applies a set of deltas all-or-nothing.
// When an inventory implements it the engine commits a craft as one batch.
type BatchInventory interface {
	Apply(deltas []domain.InventoryDelta) error
}

// Engine executes craft transactions
type Engine struct {
	catalog *Catalog
	bus     event.Bus
}

// NewEngine creates a craft engine over catalog
func NewEngine(catalog *Catalog, bus event.Bus) *Engine {
	if bus == nil {
		bus = event.NopBus{}
	}
	return &Engine{catalog: catalog, bus: bus}
}

// CraftOutput crafts the registered recipe producing (kind, id)
func (e *Engine) CraftOutput(ctx context.Context, kind domain.ItemKind, id int, inv Inventory) (domain.Recipe, error) {
	recipe, ok := e.catalog.Lookup(kind, id)
	if !ok {
		return domain.Recipe{}, fmt.Errorf(ErrFmtRecipeNotFound, domain.ErrRecipeNotFound, domain.ItemKey{Kind: kind, ID: id})
	}
	return recipe, e.Craft(ctx, recipe, inv)
}

// Craft consumes every ingredient of recipe and credits one unit of its output.
// Affordability is checked before any mutation; an inventory failure leaves inv unchanged.
func (e *Engine) Craft(ctx context.Context, recipe domain.Recipe, inv Inventory) error {
	log := logger.FromContext(ctx)
	output := recipe.OutputKey()

	if !IsAffordable(recipe, inv) {
		err := fmt.Errorf(ErrFmtInsufficient, domain.ErrInsufficientIngredients, output)
		log.Info(LogMsgCraftFailed, "output", output.String(), "error", err)
		e.publish(ctx, event.NewCraftFailedEvent(recipe, err.Error()))
		return err
	}

	var err error
	if batch, ok := inv.(BatchInventory); ok {
		err = batch.Apply(craftDeltas(recipe))
	} else {
		err = e.applySequential(ctx, recipe, inv)
	}
	if err != nil {
		err = fmt.Errorf(ErrFmtCraftApplyFailed, output, err)
		log.Warn(LogMsgCraftFailed, "output", output.String(), "error", err)
		e.publish(ctx, event.NewCraftFailedEvent(recipe, err.Error()))
		return err
	}

	name := e.catalog.itemName(output)
	log.Info(LogMsgItemCrafted, "output", output.String(), "name", name)
	e.publish(ctx, event.NewItemCraftedEvent(recipe, name))
	return nil
}

// craftDeltas builds the debits in ingredient order followed by the output credit
func craftDeltas(recipe domain.Recipe) []domain.InventoryDelta {
	deltas := make([]domain.InventoryDelta, 0, len(recipe.Ingredients)+1)
	for _, ing := range recipe.Ingredients {
		deltas = append(deltas, domain.InventoryDelta{Key: ing.Key(), Delta: -ing.Count})
	}
	return append(deltas, domain.InventoryDelta{Key: recipe.OutputKey(), Delta: 1})
}

// applySequential debits then credits one call at a time, crediting back
// every applied debit if a later step fails.
func (e *Engine) applySequential(ctx context.Context, recipe domain.Recipe, inv Inventory) error {
	var applied []domain.Ingredient

	rollback := func(cause error) error {
		var errs []error
		for i := len(applied) - 1; i >= 0; i-- {
			if err := inv.Credit(applied[i].Key(), applied[i].Count); err != nil {
				errs = append(errs, err)
			}
		}
		if len(errs) > 0 {
			return fmt.Errorf(ErrFmtRollbackFailed, recipe.OutputKey(), cause, errors.Join(errs...))
		}
		logger.FromContext(ctx).Info(LogMsgRolledBack, "output", recipe.OutputKey().String(), "debits", len(applied))
		return cause
	}

	for _, ing := range recipe.Ingredients {
		if err := inv.Debit(ing.Key(), ing.Count); err != nil {
			return rollback(err)
		}
		applied = append(applied, ing)
	}

	if err := inv.Credit(recipe.OutputKey(), 1); err != nil {
		return rollback(err)
	}
	return nil
}

func (e *Engine) publish(ctx context.Context, evt event.Event) {
	if err := e.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
