// Package storetest holds the behaviour every delegate.GameStore implementation must show.
package storetest

import (
	"context"
	"testing"
	"time"

	"gameshelf.dev/shelf/internal/database/delegate"
	"gameshelf.dev/shelf/internal/game"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an opened and migrated empty store. The suite closes it.
type Factory func(t *testing.T) delegate.GameStore

// Run executes the whole suite against the stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	tests := map[string]func(*testing.T, delegate.GameStore){
		"AddThenGet":             testAddThenGet,
		"AddAssignsDefaults":     testAddAssignsDefaults,
		"AddRejectsEmptyTitle":   testAddRejectsEmptyTitle,
		"AddDuplicateID":         testAddDuplicateID,
		"GetUnknown":             testGetUnknown,
		"GetAllOrderedByTitle":   testGetAllOrderedByTitle,
		"GetPaged":               testGetPaged,
		"GetPagedInvalidPage":    testGetPagedInvalidPage,
		"CountAfterAddAndRemove": testCountAfterAddAndRemove,
		"Update":                 testUpdate,
		"UpdateUnknown":          testUpdateUnknown,
		"UpdateZeroID":           testUpdateZeroID,
		"RemoveUnknown":          testRemoveUnknown,
		"SetStatusCompleted":     testSetStatusCompleted,
		"SetStatusClearsDate":    testSetStatusClearsDate,
		"SetStatusUnknownGame":   testSetStatusUnknownGame,
		"SetStatusUnknownStatus": testSetStatusUnknownStatus,
		"DistinctPlatforms":      testDistinctPlatforms,
		"AddAll":                 testAddAll,
		"AddAllEmpty":            testAddAllEmpty,
		"AddAllDuplicateID":      testAddAllDuplicateID,
	}
	for name, test := range tests {
		test := test
		t.Run(name, func(t *testing.T) {
			store := newStore(t)
			defer store.Close()
			test(t, store)
		})
	}
}

func addGames(t *testing.T, store delegate.GameStore, titles ...string) []game.Game {
	t.Helper()
	games := make([]game.Game, 0, len(titles))
	for _, title := range titles {
		g := game.NewGame(title, "PC")
		require.NoError(t, store.Add(context.Background(), g))
		games = append(games, *g)
	}
	return games
}

func titles(games []game.Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.Title)
	}
	return out
}

func testAddThenGet(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	added := &game.Game{
		ID:          uuid.New(),
		Title:       "Outer Wilds",
		Platform:    "Xbox One",
		Status:      game.Paused,
		Description: "Supernova in 22 minutes",
	}
	require.NoError(t, store.Add(ctx, added))

	stored, err := store.Get(ctx, added.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	if diff := cmp.Diff(*added, *stored); diff != "" {
		t.Errorf("stored game mismatch (-added +stored):\n%s", diff)
	}
}

func testAddAssignsDefaults(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	g := &game.Game{Title: "Tunic"}
	require.NoError(t, store.Add(ctx, g))
	assert.NotEqual(t, uuid.Nil, g.ID)
	assert.Equal(t, game.Wishlist, g.Status)

	stored, err := store.Get(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, game.Wishlist, stored.Status)
	assert.Empty(t, stored.Platform)
}

func testAddRejectsEmptyTitle(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	assert.ErrorIs(t, store.Add(ctx, &game.Game{Title: "  "}), game.ErrEmptyTitle)
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func testAddDuplicateID(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	g := addGames(t, store, "Hades")[0]
	duplicate := game.NewGame("Hades II", "PC")
	duplicate.ID = g.ID
	assert.Error(t, store.Add(ctx, duplicate))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	stored, err := store.Get(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Hades", stored.Title)
}

func testGetUnknown(t *testing.T, store delegate.GameStore) {
	addGames(t, store, "Hades")
	stored, err := store.Get(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, stored)
}

func testGetAllOrderedByTitle(t *testing.T, store delegate.GameStore) {
	addGames(t, store, "Celeste", "Anno 1800", "Doom", "Bastion")
	games, err := store.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Anno 1800", "Bastion", "Celeste", "Doom"}, titles(games))
}

func testGetPaged(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	addGames(t, store, "E", "C", "A", "D", "B")

	first, err := store.GetPaged(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titles(first))

	second, err := store.GetPaged(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, titles(second))

	last, err := store.GetPaged(ctx, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"E"}, titles(last))

	beyond, err := store.GetPaged(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func testGetPagedInvalidPage(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	_, err := store.GetPaged(ctx, 0, 2)
	assert.ErrorIs(t, err, delegate.ErrInvalidPage)
	_, err = store.GetPaged(ctx, 1, 0)
	assert.ErrorIs(t, err, delegate.ErrInvalidPage)
}

func testCountAfterAddAndRemove(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	games := addGames(t, store, "A", "B", "C", "D")
	require.NoError(t, store.Remove(ctx, games[0].ID))
	require.NoError(t, store.Remove(ctx, games[2].ID))
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	removed, err := store.Get(ctx, games[0].ID)
	require.NoError(t, err)
	assert.Nil(t, removed)
}

func testUpdate(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	g := game.NewGame("Hollow Knight", "Switch")
	g.Description = "Bugs"
	require.NoError(t, store.Add(ctx, g))

	g.Title = "Hollow Knight: Silksong"
	g.Platform = "PC"
	g.Description = ""
	require.NoError(t, store.Update(ctx, g))

	stored, err := store.Get(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Hollow Knight: Silksong", stored.Title)
	assert.Equal(t, "PC", stored.Platform)
	assert.Empty(t, stored.Description)
}

func testUpdateUnknown(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	before := addGames(t, store, "A", "B")
	assert.NoError(t, store.Update(ctx, game.NewGame("Ghost", "PC")))

	after, err := store.GetAll(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("store changed (-before +after):\n%s", diff)
	}
}

func testUpdateZeroID(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	before := addGames(t, store, "A", "B")
	assert.NoError(t, store.Update(ctx, &game.Game{Title: "Ghost", Status: game.Wishlist}))

	after, err := store.GetAll(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("store changed (-before +after):\n%s", diff)
	}
}

func testRemoveUnknown(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	before := addGames(t, store, "A", "B")
	assert.NoError(t, store.Remove(ctx, uuid.New()))

	after, err := store.GetAll(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("store changed (-before +after):\n%s", diff)
	}
}

func testSetStatusCompleted(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	g := addGames(t, store, "Celeste")[0]
	called := time.Now().Add(-time.Millisecond)
	require.NoError(t, store.SetStatus(ctx, g.ID, game.Completed))

	stored, err := store.Get(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, game.Completed, stored.Status)
	if assert.NotNil(t, stored.DateCompleted) {
		assert.False(t, stored.DateCompleted.Before(called))
	}
}

func testSetStatusClearsDate(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	g := addGames(t, store, "Celeste")[0]
	for _, status := range []game.Status{game.Playing, game.Paused, game.Wishlist} {
		require.NoError(t, store.SetStatus(ctx, g.ID, game.Completed))
		require.NoError(t, store.SetStatus(ctx, g.ID, status))

		stored, err := store.Get(ctx, g.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, status, stored.Status)
		assert.Nil(t, stored.DateCompleted)
	}
}

func testSetStatusUnknownGame(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	addGames(t, store, "A")
	assert.NoError(t, store.SetStatus(ctx, uuid.New(), game.Completed))
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func testSetStatusUnknownStatus(t *testing.T, store delegate.GameStore) {
	g := addGames(t, store, "A")[0]
	assert.ErrorIs(t, store.SetStatus(context.Background(), g.ID, "Abandoned"), game.ErrUnknownStatus)
}

func testDistinctPlatforms(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	for _, platform := range []string{"PC", "pc ", "Switch", ""} {
		require.NoError(t, store.Add(ctx, game.NewGame("Game on "+platform, platform)))
	}
	platforms, err := store.GetDistinctPlatforms(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"PC", "Switch"}, platforms)
}

func testAddAll(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	require.NoError(t, store.AddAll(ctx, []game.Game{
		{Title: "Portal 2", Platform: "PC"},
		{Title: "Journey", Platform: "PS4", Status: game.Completed},
	}))
	games, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Journey", "Portal 2"}, titles(games))
	for _, g := range games {
		assert.NotEqual(t, uuid.Nil, g.ID)
	}
	assert.Equal(t, game.Completed, games[0].Status)
	assert.Equal(t, game.Wishlist, games[1].Status)
}

func testAddAllEmpty(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	require.NoError(t, store.AddAll(ctx, nil))
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func testAddAllDuplicateID(t *testing.T, store delegate.GameStore) {
	ctx := context.Background()
	id := uuid.New()
	assert.Error(t, store.AddAll(ctx, []game.Game{
		{ID: id, Title: "Portal", Platform: "PC"},
		{ID: id, Title: "Portal 2", Platform: "PC"},
	}))
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
