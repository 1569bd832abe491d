package quest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/event"
)

func newTestLedger() *Ledger {
	return NewLedger(DefaultLabels(), nil)
}

func requireDisjoint(t *testing.T, l *Ledger) {
	t.Helper()
	in, done := l.Snapshot()
	for id := range in {
		_, both := done[id]
		require.False(t, both, "quest %d is in both buckets", id)
	}
}

func TestLedger_FindTheKeyScenario(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	require.NoError(t, l.AddQuest(ctx, 4, "Find the key"))
	require.NoError(t, l.AppendDescription(ctx, 4, "Hint: check the cellar"))
	require.NoError(t, l.CompleteQuest(ctx, 4, "Key found"))

	in, done := l.Snapshot()
	assert.NotContains(t, in, 4)
	assert.Equal(t, domain.QuestEntry{
		ID:           4,
		Title:        "Find the key",
		Descriptions: []string{"Hint: check the cellar", "Key found"},
	}, done[4])
}

func TestLedger_AddQuest(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      int
		title   string
		wantErr error
	}{
		{name: "valid", id: 1, title: "Slay the rat"},
		{name: "empty title", id: 2, title: "", wantErr: domain.ErrInvalidTitle},
		{name: "blank title", id: 2, title: "   ", wantErr: domain.ErrInvalidTitle},
		{name: "negative id", id: -1, title: "x", wantErr: domain.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger()
			err := l.AddQuest(ctx, tt.id, tt.title)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				in, done := l.Snapshot()
				assert.Empty(t, in)
				assert.Empty(t, done)
				return
			}
			require.NoError(t, err)
			got, bucket, ok := l.Get(tt.id)
			require.True(t, ok)
			assert.Equal(t, domain.BucketInProgress, bucket)
			assert.Equal(t, tt.title, got.Title)
			assert.Empty(t, got.Descriptions)
		})
	}
}

func TestLedger_AddQuest_DuplicateInEitherBucket(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	require.NoError(t, l.AddQuest(ctx, 1, "First"))
	require.NoError(t, l.AddQuest(ctx, 2, "Second"))
	require.NoError(t, l.CompleteQuest(ctx, 2, ""))

	assert.ErrorIs(t, l.AddQuest(ctx, 1, "Again"), domain.ErrDuplicateID)
	assert.ErrorIs(t, l.AddQuest(ctx, 2, "Again"), domain.ErrDuplicateID)

	got, _, _ := l.Get(1)
	assert.Equal(t, "First", got.Title, "Title is immutable")
	requireDisjoint(t, l)
}

func TestLedger_TitleIsNFCNormalised(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	// "e" followed by a combining acute accent
	require.NoError(t, l.AddQuest(ctx, 1, "Cafe\u0301"))
	got, _, _ := l.Get(1)
	assert.Equal(t, "Caf\u00e9", got.Title)
}

func TestLedger_AppendDescription(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	require.NoError(t, l.AddQuest(ctx, 1, "Open"))
	require.NoError(t, l.AddQuest(ctx, 2, "Done"))
	require.NoError(t, l.CompleteQuest(ctx, 2, ""))

	require.NoError(t, l.AppendDescription(ctx, 1, "step one"))
	require.NoError(t, l.AppendDescription(ctx, 2, "epilogue"), "Completed quests accept descriptions")

	got, _, _ := l.Get(1)
	assert.Equal(t, []string{"step one"}, got.Descriptions)
	got, bucket, _ := l.Get(2)
	assert.Equal(t, domain.BucketCompleted, bucket)
	assert.Equal(t, []string{"epilogue"}, got.Descriptions)

	assert.ErrorIs(t, l.AppendDescription(ctx, 3, "nope"), domain.ErrQuestNotFound)
}

func TestLedger_AppendDescription_EmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	bus := event.NewMemoryBus()
	var published int
	bus.Subscribe(event.QuestUpdated, func(context.Context, event.Event) error {
		published++
		return nil
	})

	l := NewLedger(DefaultLabels(), bus)
	require.NoError(t, l.AddQuest(ctx, 1, "Quest"))
	require.NoError(t, l.AppendDescription(ctx, 1, "kept"))
	beforeIn, beforeDone := l.Snapshot()

	require.NoError(t, l.AppendDescription(ctx, 1, ""))
	require.NoError(t, l.AppendDescription(ctx, 1, "  "))

	afterIn, afterDone := l.Snapshot()
	assert.Equal(t, beforeIn, afterIn)
	assert.Equal(t, beforeDone, afterDone)
	assert.Equal(t, 1, published)
}

func TestLedger_DescriptionsKeepSpacing(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	require.NoError(t, l.AddQuest(ctx, 1, "  Quest  "))
	require.NoError(t, l.AppendDescription(ctx, 1, "  indented  line "))
	require.NoError(t, l.CompleteQuest(ctx, 1, " \t "))

	got, bucket, ok := l.Get(1)
	require.True(t, ok)
	assert.Equal(t, domain.BucketCompleted, bucket)
	assert.Equal(t, "Quest", got.Title, "Titles are trimmed")
	assert.Equal(t, []string{"  indented  line "}, got.Descriptions, "Whitespace-only completion text is not appended")
}

func TestLedger_CompleteQuest(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		l := newTestLedger()
		assert.ErrorIs(t, l.CompleteQuest(ctx, 9, "x"), domain.ErrQuestNotFound)
	})

	t.Run("already completed leaves buckets unchanged", func(t *testing.T) {
		l := newTestLedger()
		require.NoError(t, l.AddQuest(ctx, 1, "Quest"))
		require.NoError(t, l.CompleteQuest(ctx, 1, "done"))
		beforeIn, beforeDone := l.Snapshot()

		err := l.CompleteQuest(ctx, 1, "again")
		assert.ErrorIs(t, err, domain.ErrQuestNotFound)

		afterIn, afterDone := l.Snapshot()
		assert.Equal(t, beforeIn, afterIn)
		assert.Equal(t, beforeDone, afterDone)
	})

	t.Run("without text keeps descriptions", func(t *testing.T) {
		l := newTestLedger()
		require.NoError(t, l.AddQuest(ctx, 1, "Quest"))
		require.NoError(t, l.AppendDescription(ctx, 1, "a"))
		require.NoError(t, l.CompleteQuest(ctx, 1, ""))

		got, bucket, _ := l.Get(1)
		assert.Equal(t, domain.BucketCompleted, bucket)
		assert.Equal(t, []string{"a"}, got.Descriptions)
	})
}

func TestLedger_RemoveQuest(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	require.NoError(t, l.AddQuest(ctx, 1, "Open"))
	require.NoError(t, l.AddQuest(ctx, 2, "Done"))
	require.NoError(t, l.CompleteQuest(ctx, 2, ""))

	require.NoError(t, l.RemoveQuest(ctx, 1))
	require.NoError(t, l.RemoveQuest(ctx, 2))
	assert.ErrorIs(t, l.RemoveQuest(ctx, 2), domain.ErrQuestNotFound)

	_, _, ok := l.Get(2)
	assert.False(t, ok)
	require.NoError(t, l.AddQuest(ctx, 2, "Reused"), "Removal keeps no tombstone")
}

func TestLedger_ClearAndQuery(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	for _, id := range []int{30, 4, 12} {
		require.NoError(t, l.AddQuest(ctx, id, "q"))
	}
	require.NoError(t, l.CompleteQuest(ctx, 12, ""))

	open, err := l.Query(domain.BucketInProgress)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, 4, open[0].ID)
	assert.Equal(t, 30, open[1].ID)

	listing, err := l.Listing(domain.BucketCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCompletedLabel, listing.Label)
	require.Len(t, listing.Entries, 1)

	_, err = l.Query(domain.QuestBucket("archived"))
	assert.ErrorIs(t, err, domain.ErrInvalidBucket)

	l.Clear(ctx)
	open, _ = l.Query(domain.BucketInProgress)
	done, _ := l.Query(domain.BucketCompleted)
	assert.Empty(t, open)
	assert.Empty(t, done)
}

func TestLedger_NeverInBothBuckets(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	ops := []func(){
		func() { _ = l.AddQuest(ctx, 1, "a") },
		func() { _ = l.CompleteQuest(ctx, 1, "") },
		func() { _ = l.AddQuest(ctx, 1, "b") },
		func() { _ = l.RemoveQuest(ctx, 1) },
		func() { _ = l.AddQuest(ctx, 1, "c") },
		func() { _ = l.CompleteQuest(ctx, 1, "x") },
		func() { _ = l.CompleteQuest(ctx, 1, "y") },
		func() { _ = l.AddQuest(ctx, 2, "d") },
		func() { _ = l.AddQuest(ctx, 2, "e") },
	}
	for _, op := range ops {
		op()
		requireDisjoint(t, l)
	}
}

func TestLedger_CustomLabels(t *testing.T) {
	l := NewLedger(Labels{InProgress: "Active"}, nil)
	assert.Equal(t, "Active", l.Label(domain.BucketInProgress))
	assert.Equal(t, domain.DefaultCompletedLabel, l.Label(domain.BucketCompleted))
}

func TestLedger_SnapshotRestore(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	require.NoError(t, l.AddQuest(ctx, 1, "Open"))
	require.NoError(t, l.AddQuest(ctx, 2, "Done"))
	require.NoError(t, l.CompleteQuest(ctx, 2, "fin"))
	in, done := l.Snapshot()

	restored := newTestLedger()
	require.NoError(t, restored.Restore(ctx, in, done))
	gotIn, gotDone := restored.Snapshot()
	assert.Equal(t, in, gotIn)
	assert.Equal(t, done, gotDone)

	overlap := map[int]domain.QuestEntry{1: {ID: 1, Title: "x"}}
	err := restored.Restore(ctx, overlap, overlap)
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
	gotIn, _ = restored.Snapshot()
	assert.Equal(t, in, gotIn, "Failed restore must not change state")
}
