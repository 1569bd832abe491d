package domain

// Ingredient is a single input requirement of a recipe.
// It holds only the (kind, id) pair so registry reloads are always reflected.
type Ingredient struct {
	Kind  ItemKind `json:"kind"`
	ID    int      `json:"id"`
	Count int      `json:"count"`
}

// Key returns the registry key of the ingredient
func (i Ingredient) Key() ItemKey {
	return ItemKey{Kind: i.Kind, ID: i.ID}
}

// Recipe maps an ordered list of ingredients to one unit of an output item.
// A recipe is uniquely identified by its output key.
type Recipe struct {
	OutputKind  ItemKind     `json:"output_kind"`
	OutputID    int          `json:"output_id"`
	Ingredients []Ingredient `json:"ingredients"`
}

// OutputKey returns the identity of the recipe
func (r *Recipe) OutputKey() ItemKey {
	return ItemKey{Kind: r.OutputKind, ID: r.OutputID}
}

// IngredientStatus is one line of a recipe's requirement breakdown
type IngredientStatus struct {
	Kind   ItemKind `json:"kind"`
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Need   int      `json:"need"`
	Have   int      `json:"have"`
	Enough bool     `json:"enough"`
}

// RecipeListing is a catalog entry as shown to a player: the recipe,
// whether the current inventory can afford it and the per-ingredient breakdown
type RecipeListing struct {
	Recipe     Recipe             `json:"recipe"`
	Name       string             `json:"name"`
	Affordable bool               `json:"affordable"`
	Status     []IngredientStatus `json:"status"`
}
