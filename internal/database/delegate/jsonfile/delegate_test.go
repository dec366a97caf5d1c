package jsonfile_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gameshelf.dev/shelf/internal/database/delegate"
	"gameshelf.dev/shelf/internal/database/delegate/jsonfile"
	"gameshelf.dev/shelf/internal/database/delegate/storetest"
	"gameshelf.dev/shelf/internal/game"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDelegate(t *testing.T) *jsonfile.JSONFileDelegate {
	t.Helper()
	d := &jsonfile.JSONFileDelegate{Path: filepath.Join(t.TempDir(), "games.json")}
	require.NoError(t, d.Open())
	require.NoError(t, d.Migrate())
	return d
}

func TestGameStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) delegate.GameStore {
		return newTestDelegate(t)
	})
}

func TestOpenMissingFile(t *testing.T) {
	d := newTestDelegate(t)
	count, err := d.Count(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, count)
	assert.NoFileExists(t, d.Path)
}

func TestPersistAcrossReopen(t *testing.T) {
	ctx := context.Background()
	d := newTestDelegate(t)
	g := game.NewGame("Disco Elysium", "PC")
	require.NoError(t, d.Add(ctx, g))
	require.NoError(t, d.SetStatus(ctx, g.ID, game.Completed))
	expected, err := d.GetAll(ctx)
	require.NoError(t, err)
	require.NoError(t, d.Close())

	reopened := &jsonfile.JSONFileDelegate{Path: d.Path}
	require.NoError(t, reopened.Open())
	actual, err := reopened.GetAll(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("reopened library mismatch (-expected +actual):\n%s", diff)
	}
}

func TestOpenCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	d := jsonfile.JSONFileDelegate{Path: path}
	assert.Error(t, d.Open())
}

func TestOpenNullDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0644))
	d := jsonfile.JSONFileDelegate{Path: path}
	require.NoError(t, d.Open())
	games, err := d.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, games)
}

func TestFileRewrittenOnRemove(t *testing.T) {
	ctx := context.Background()
	d := newTestDelegate(t)
	g := game.NewGame("Inside", "PS4")
	require.NoError(t, d.Add(ctx, g))
	require.NoError(t, d.Remove(ctx, g.ID))

	data, err := os.ReadFile(d.Path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestCanceledContext(t *testing.T) {
	d := newTestDelegate(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Add(ctx, game.NewGame("Limbo", "PC")), context.Canceled)
	_, err := d.GetAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAddDuplicateIDRejected(t *testing.T) {
	ctx := context.Background()
	d := newTestDelegate(t)
	g := game.NewGame("Hades", "PC")
	require.NoError(t, d.Add(ctx, g))
	duplicate := *g
	assert.ErrorIs(t, d.Add(ctx, &duplicate), delegate.ErrDuplicateID)
	assert.ErrorIs(t, d.AddAll(ctx, []game.Game{{ID: g.ID, Title: "Hades II"}}), delegate.ErrDuplicateID)

	data, err := os.ReadFile(d.Path)
	require.NoError(t, err)
	var stored []game.Game
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Len(t, stored, 1)
}

func TestStoredDateNotShared(t *testing.T) {
	ctx := context.Background()
	d := newTestDelegate(t)
	completed := time.Date(2022, 3, 4, 5, 6, 7, 0, time.UTC)
	g := game.NewGame("Tunic", "PC")
	g.SetStatus(game.Completed, completed)
	require.NoError(t, d.Add(ctx, g))
	*g.DateCompleted = completed.AddDate(1, 0, 0)

	stored, err := d.Get(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.DateCompleted)
	assert.Equal(t, completed, *stored.DateCompleted)
	*stored.DateCompleted = completed.AddDate(2, 0, 0)

	all, err := d.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, completed, *all[0].DateCompleted)
	*all[0].DateCompleted = completed.AddDate(3, 0, 0)

	again, err := d.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, completed, *again.DateCompleted)
}
