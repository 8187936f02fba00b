package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKV_GetMissing(t *testing.T) {
	database, err := Init(t.TempDir())
	require.NoError(t, err)
	defer database.Close()

	value, ok, err := GetValue(context.Background(), database, "word_history")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestKV_SetGetOverwriteDelete(t *testing.T) {
	database, err := Init(t.TempDir())
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()
	kv := NewKV(database)

	require.NoError(t, kv.Set(ctx, "word_history", `[]`))
	value, ok, err := kv.Get(ctx, "word_history")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, value)

	require.NoError(t, kv.Set(ctx, "word_history", `[{"word":"time"}]`))
	value, _, err = kv.Get(ctx, "word_history")
	require.NoError(t, err)
	assert.Equal(t, `[{"word":"time"}]`, value)

	var rows int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&rows))
	assert.Equal(t, 1, rows, "overwrite must not add rows")

	require.NoError(t, kv.Delete(ctx, "word_history"))
	_, ok, err = kv.Get(ctx, "word_history")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is a no-op
	require.NoError(t, kv.Delete(ctx, "word_history"))
}

func TestKV_KeysAreIndependent(t *testing.T) {
	database, err := Init(t.TempDir())
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()
	require.NoError(t, SetValue(ctx, database, "a", "1"))
	require.NoError(t, SetValue(ctx, database, "b", "2"))
	require.NoError(t, DeleteValue(ctx, database, "a"))

	value, ok, err := GetValue(ctx, database, "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", value)
}

func TestKV_ClosedDatabaseFails(t *testing.T) {
	database, err := Init(t.TempDir())
	require.NoError(t, err)
	database.Close()

	_, _, err = GetValue(context.Background(), database, "word_history")
	assert.Error(t, err)
	assert.Error(t, SetValue(context.Background(), database, "word_history", "[]"))
	assert.Error(t, DeleteValue(context.Background(), database, "word_history"))
}
