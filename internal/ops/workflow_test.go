package ops

import (
	"context"
	"testing"

	"github.com/hpungsan/wordly/internal/errors"
	"github.com/stretchr/testify/require"
)

// TestFullWorkflow exercises the history lifecycle:
// today → today (same word) → define → history → show → latest → clear → show (not found)
func TestFullWorkflow(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	src := newFakeSource("eloquent", "resilience", "eloquent")

	// 1. Today
	first, err := Today(ctx, src, store, TodayInput{})
	require.NoError(t, err)
	require.True(t, first.Saved)

	_, err = Today(ctx, src, store, TodayInput{})
	require.NoError(t, err)

	// 2. Same headword again collapses to one entry at its old position
	again, err := Today(ctx, src, store, TodayInput{})
	require.NoError(t, err)
	require.NotEqual(t, first.Word.ID, again.Word.ID)

	// 3. Define with save inserts at the front
	_, err = Define(ctx, src, store, DefineInput{Headword: "ubiquitous", Save: true})
	require.NoError(t, err)

	hist, err := History(ctx, store, HistoryInput{})
	require.NoError(t, err)
	require.Len(t, hist.Items, 3)
	require.Equal(t, "ubiquitous", hist.Items[0].Word)
	require.Equal(t, "resilience", hist.Items[1].Word)
	require.Equal(t, "eloquent", hist.Items[2].Word)
	require.Equal(t, again.Word.ID, hist.Items[2].ID)

	// 4. Show
	shown, err := Show(ctx, store, ShowInput{Headword: "Eloquent"})
	require.NoError(t, err)
	require.Equal(t, again.Word.ID, shown.ID)

	// 5. Latest
	latest, err := Latest(ctx, store)
	require.NoError(t, err)
	require.NotNil(t, latest.Item)
	require.Equal(t, "ubiquitous", latest.Item.Word)

	// 6. Clear
	cleared, err := Clear(ctx, store)
	require.NoError(t, err)
	require.Equal(t, 3, cleared.Cleared)

	// 7. Show - verify gone
	_, err = Show(ctx, store, ShowInput{Headword: "eloquent"})
	require.True(t, errors.Is(err, errors.ErrNotFound))
}
