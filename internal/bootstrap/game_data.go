package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/CraftQuest_Go/internal/config"
	"github.com/osse101/CraftQuest_Go/internal/crafting"
	"github.com/osse101/CraftQuest_Go/internal/item"
	"github.com/osse101/CraftQuest_Go/internal/logger"
	"github.com/osse101/CraftQuest_Go/internal/validation"
)

// LoadItems checks the items file against its schema, then loads the item definitions every session resolves against
func LoadItems(ctx context.Context, cfg *config.Config) (*item.MemoryRegistry, error) {
	logger.FromContext(ctx).Info(LogMsgLoadingItems, "path", cfg.ItemsConfig)

	schema, err := validation.NewItemsValidator()
	if err != nil {
		return nil, err
	}
	if err := schema.ValidateFile(cfg.ItemsConfig); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
	}

	registry, err := item.LoadRegistry(ctx, item.NewLoader(), cfg.ItemsConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
	}
	return registry, nil
}

// NewRecipeParser builds the ingredient parser for the configured metadata format
func NewRecipeParser(ctx context.Context, cfg *config.Config) (*crafting.Parser, error) {
	parser, err := crafting.NewParser(cfg.RecipeFormat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidRecipeFormat, err)
	}
	logger.FromContext(ctx).Info(LogMsgParserReady, "format", parser.Format())
	return parser, nil
}
