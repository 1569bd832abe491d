package command

import "github.com/osse101/CraftQuest_Go/internal/domain"

// Command is a parsed, typed instruction from the command surface
type Command interface {
	Name() string
}

// OpenCraftBox shows the crafting view. It does not touch core state.
type OpenCraftBox struct{}

func (OpenCraftBox) Name() string { return PluginCraftBox + " " + SubOpen }

// AddRecipe registers the recipe embedded in an item's metadata
type AddRecipe struct {
	Kind domain.ItemKind
	ID   int
}

func (AddRecipe) Name() string { return PluginCraftBox + " " + SubAdd }

// ClearRecipes empties the recipe catalog
type ClearRecipes struct{}

func (ClearRecipes) Name() string { return PluginCraftBox + " " + SubClear }

// Craft crafts the registered recipe producing (Kind, ID)
type Craft struct {
	Kind domain.ItemKind
	ID   int
}

func (Craft) Name() string { return PluginCraftBox + " " + SubCraft }

// OpenQuests shows the quest view. It does not touch core state.
type OpenQuests struct{}

func (OpenQuests) Name() string { return PluginQuestManager + " " + SubOpen }

// AddQuest creates an in-progress quest
type AddQuest struct {
	ID    int
	Title string
}

func (AddQuest) Name() string { return PluginQuestManager + " " + SubAdd }

// UpdateQuest appends a description line
type UpdateQuest struct {
	ID   int
	Text string
}

func (UpdateQuest) Name() string { return PluginQuestManager + " " + SubUpdate }

// CompleteQuest moves a quest to completed with optional closing text
type CompleteQuest struct {
	ID   int
	Text string
}

func (CompleteQuest) Name() string { return PluginQuestManager + " " + SubComplete }

// RemoveQuest deletes a quest from either bucket
type RemoveQuest struct {
	ID int
}

func (RemoveQuest) Name() string { return PluginQuestManager + " " + SubRemove }

// ClearQuests empties both quest buckets
type ClearQuests struct{}

func (ClearQuests) Name() string { return PluginQuestManager + " " + SubClear }

// GainItem credits Count units to the inventory
type GainItem struct {
	Kind  domain.ItemKind
	ID    int
	Count int
}

func (GainItem) Name() string { return PluginInventory + " " + SubGain }

// LoseItem debits Count units from the inventory
type LoseItem struct {
	Kind  domain.ItemKind
	ID    int
	Count int
}

func (LoseItem) Name() string { return PluginInventory + " " + SubLose }
