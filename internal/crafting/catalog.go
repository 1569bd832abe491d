package crafting

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/event"
	"github.com/osse101/CraftQuest_Go/internal/item"
	"github.com/osse101/CraftQuest_Go/internal/logger"
)

// QuantityReader reports held quantities. It is all affordability needs.
type QuantityReader interface {
	QuantityOf(kind domain.ItemKind, id int) int
}

// Catalog stores registered recipes in insertion order with an index keyed by output.
// At most one recipe exists per output; later registrations are rejected.
type Catalog struct {
	mu       sync.RWMutex
	recipes  []domain.Recipe
	index    map[domain.ItemKey]int
	registry item.Registry
	parser   *Parser
	bus      event.Bus
}

// NewCatalog creates an empty catalog
func NewCatalog(registry item.Registry, parser *Parser, bus event.Bus) *Catalog {
	if bus == nil {
		bus = event.NopBus{}
	}
	return &Catalog{
		index:    make(map[domain.ItemKey]int),
		registry: registry,
		parser:   parser,
		bus:      bus,
	}
}

// Register validates spec and stores a recipe producing (kind, id).
// Checks run in order: output resolves, output not yet registered, every ingredient valid.
// Nothing is stored unless all of them pass.
func (c *Catalog) Register(ctx context.Context, kind domain.ItemKind, id int, spec string) error {
	log := logger.FromContext(ctx)
	key := domain.ItemKey{Kind: kind, ID: id}

	recipe, err := c.register(key, spec)
	if err != nil {
		log.Info(LogMsgRecipeRejected, "output", key.String(), "error", err)
		c.publish(ctx, event.NewRecipeRejectedEvent(kind, id, err.Error()))
		return err
	}

	log.Info(LogMsgRecipeRegistered, "output", key.String(), "ingredients", len(recipe.Ingredients))
	c.publish(ctx, event.NewRecipeRegisteredEvent(recipe))
	return nil
}

// RegisterFromItem registers the recipe embedded in the output item's metadata
func (c *Catalog) RegisterFromItem(ctx context.Context, kind domain.ItemKind, id int) error {
	it, ok := c.registry.Lookup(kind, id)
	if !ok {
		err := fmt.Errorf(ErrFmtUnknownOutput, domain.ErrUnknownOutputItem, domain.ItemKey{Kind: kind, ID: id})
		c.publish(ctx, event.NewRecipeRejectedEvent(kind, id, err.Error()))
		return err
	}
	if strings.TrimSpace(it.Recipe) == "" {
		err := fmt.Errorf(ErrFmtNoRecipeMetadata, domain.ErrMalformedIngredient, it.Key())
		c.publish(ctx, event.NewRecipeRejectedEvent(kind, id, err.Error()))
		return err
	}
	return c.Register(ctx, kind, id, it.Recipe)
}

func (c *Catalog) register(key domain.ItemKey, spec string) (domain.Recipe, error) {
	if _, ok := c.registry.Lookup(key.Kind, key.ID); !ok {
		return domain.Recipe{}, fmt.Errorf(ErrFmtUnknownOutput, domain.ErrUnknownOutputItem, key)
	}

	c.mu.RLock()
	_, exists := c.index[key]
	c.mu.RUnlock()
	if exists {
		return domain.Recipe{}, fmt.Errorf(ErrFmtAlreadyRegistered, domain.ErrAlreadyRegistered, key)
	}

	ingredients, err := c.parser.Parse(spec)
	if err != nil {
		return domain.Recipe{}, err
	}
	for _, ing := range ingredients {
		if _, ok := c.registry.Lookup(ing.Kind, ing.ID); !ok {
			return domain.Recipe{}, fmt.Errorf(ErrFmtUnresolved, domain.ErrMalformedIngredient, ing.Key())
		}
	}

	recipe := domain.Recipe{OutputKind: key.Kind, OutputID: key.ID, Ingredients: ingredients}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Re-check under the write lock; a concurrent Register may have won.
	if _, exists := c.index[key]; exists {
		return domain.Recipe{}, fmt.Errorf(ErrFmtAlreadyRegistered, domain.ErrAlreadyRegistered, key)
	}
	c.index[key] = len(c.recipes)
	c.recipes = append(c.recipes, recipe)

	return cloneRecipe(recipe), nil
}

// All returns every recipe in registration order
func (c *Catalog) All() []domain.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = cloneRecipe(r)
	}
	return out
}

// Lookup returns the recipe producing (kind, id)
func (c *Catalog) Lookup(kind domain.ItemKind, id int) (domain.Recipe, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[domain.ItemKey{Kind: kind, ID: id}]
	if !ok {
		return domain.Recipe{}, false
	}
	return cloneRecipe(c.recipes[i]), true
}

// Len returns the number of registered recipes
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.recipes)
}

// Clear removes every recipe
func (c *Catalog) Clear(ctx context.Context) {
	c.mu.Lock()
	removed := len(c.recipes)
	c.recipes = nil
	c.index = make(map[domain.ItemKey]int)
	c.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgCatalogCleared, "removed", removed)
	c.publish(ctx, event.NewCatalogClearedEvent(removed))
}

// ValidateRecipes checks persisted recipes against the registration rules:
// the output resolves, there is at least one ingredient, and every ingredient
// resolves with a count of at least 1.
func (c *Catalog) ValidateRecipes(recipes []domain.Recipe) error {
	for _, r := range recipes {
		if err := c.validateRecipe(r); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) validateRecipe(r domain.Recipe) error {
	key := r.OutputKey()
	if _, ok := c.registry.Lookup(key.Kind, key.ID); !ok {
		return fmt.Errorf(ErrFmtUnknownOutput, domain.ErrUnknownOutputItem, key)
	}
	if len(r.Ingredients) == 0 {
		return fmt.Errorf(ErrFmtNoIngredients, domain.ErrMalformedIngredient, key)
	}
	for _, ing := range r.Ingredients {
		if ing.Count < 1 {
			return fmt.Errorf(ErrFmtStoredCount, domain.ErrMalformedIngredient, key, ing.Count, ing.Key())
		}
		if _, ok := c.registry.Lookup(ing.Kind, ing.ID); !ok {
			return fmt.Errorf(ErrFmtUnresolved, domain.ErrMalformedIngredient, ing.Key())
		}
	}
	return nil
}

// Restore replaces the catalog with persisted recipes and rebuilds the index.
// It fails without changes if any recipe breaks the registration rules.
// A repeated output keeps its first occurrence.
func (c *Catalog) Restore(ctx context.Context, recipes []domain.Recipe) error {
	if err := c.ValidateRecipes(recipes); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	next := make([]domain.Recipe, 0, len(recipes))
	index := make(map[domain.ItemKey]int, len(recipes))
	for _, r := range recipes {
		key := r.OutputKey()
		if _, dup := index[key]; dup {
			log.Warn(LogMsgRestoreSkipped, "output", key.String())
			continue
		}
		index[key] = len(next)
		next = append(next, cloneRecipe(r))
	}

	c.mu.Lock()
	c.recipes = next
	c.index = index
	c.mu.Unlock()

	log.Info(LogMsgCatalogRestored, "recipes", len(next))
	return nil
}

// IsAffordable reports whether inv holds at least count of every ingredient
func IsAffordable(recipe domain.Recipe, inv QuantityReader) bool {
	for _, ing := range recipe.Ingredients {
		if inv.QuantityOf(ing.Kind, ing.ID) < ing.Count {
			return false
		}
	}
	return true
}

// IsAffordable reports whether inv can pay for recipe
func (c *Catalog) IsAffordable(recipe domain.Recipe, inv QuantityReader) bool {
	return IsAffordable(recipe, inv)
}

// Status returns the need/have breakdown of each ingredient, resolving names lazily
func (c *Catalog) Status(recipe domain.Recipe, inv QuantityReader) []domain.IngredientStatus {
	out := make([]domain.IngredientStatus, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		have := inv.QuantityOf(ing.Kind, ing.ID)
		out = append(out, domain.IngredientStatus{
			Kind:   ing.Kind,
			ID:     ing.ID,
			Name:   c.itemName(ing.Key()),
			Need:   ing.Count,
			Have:   have,
			Enough: have >= ing.Count,
		})
	}
	return out
}

// Listings returns every recipe in registration order with its affordability against inv
func (c *Catalog) Listings(inv QuantityReader) []domain.RecipeListing {
	recipes := c.All()
	out := make([]domain.RecipeListing, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, domain.RecipeListing{
			Recipe:     r,
			Name:       c.itemName(r.OutputKey()),
			Affordable: IsAffordable(r, inv),
			Status:     c.Status(r, inv),
		})
	}
	return out
}

func (c *Catalog) itemName(key domain.ItemKey) string {
	if it, ok := c.registry.Lookup(key.Kind, key.ID); ok {
		return it.Name
	}
	return key.String()
}

func (c *Catalog) publish(ctx context.Context, evt event.Event) {
	if err := c.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func cloneRecipe(r domain.Recipe) domain.Recipe {
	r.Ingredients = cloneIngredients(r.Ingredients)
	return r
}
