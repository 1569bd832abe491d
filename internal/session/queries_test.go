package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftQuest_Go/internal/domain"
)

func TestManager_Queries(t *testing.T) {
	ctx := context.Background()
	m := NewManager(newTestDeps(t, nil), nil, nil)
	seed(t, m, "a")

	recipes, err := m.Recipes(ctx, "a")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Leather Vest", recipes[0].Name)
	assert.True(t, recipes[0].Affordable)

	recipe, err := m.Craft(ctx, "a", domain.KindArmor, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemKey{Kind: domain.KindArmor, ID: 1}, recipe.OutputKey())

	inv, err := m.Inventory(ctx, "a")
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.InventorySlot{
		{Kind: domain.KindConsumable, ItemID: 1, Quantity: 2},
		{Kind: domain.KindArmor, ItemID: 1, Quantity: 1},
	}, inv)

	_, err = m.Craft(ctx, "a", domain.KindArmor, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientIngredients)

	listing, err := m.Quests(ctx, "a", domain.BucketCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCompletedLabel, listing.Label)
	require.Len(t, listing.Entries, 1)
	assert.Equal(t, 4, listing.Entries[0].ID)

	_, err = m.Quests(ctx, "a", domain.QuestBucket("archived"))
	assert.ErrorIs(t, err, domain.ErrInvalidBucket)
}

func TestManager_ListAndDeleteSaves(t *testing.T) {
	ctx := context.Background()
	repo := NewMockSaveState()
	m := NewManager(newTestDeps(t, nil), repo, nil)
	seed(t, m, "b")
	seed(t, m, "a")

	_, err := m.Save(ctx, "b")
	require.NoError(t, err)
	_, err = m.Save(ctx, "a")
	require.NoError(t, err)

	slots, err := m.ListSaves(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "a", slots[0].Slot)
	assert.Equal(t, "b", slots[1].Slot)

	require.NoError(t, m.DeleteSave(ctx, "a"))
	_, stillLive := m.Get("a")
	assert.True(t, stillLive)
	assert.ErrorIs(t, m.DeleteSave(ctx, "a"), domain.ErrSaveNotFound)

	noStore := NewManager(newTestDeps(t, nil), nil, nil)
	_, err = noStore.ListSaves(ctx)
	assert.ErrorIs(t, err, ErrNoStore)
	assert.ErrorIs(t, noStore.DeleteSave(ctx, "a"), ErrNoStore)
}
