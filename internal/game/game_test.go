package game_test

import (
	"errors"
	"testing"
	"time"

	"gameshelf.dev/shelf/internal/game"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewGame(t *testing.T) {
	g := game.NewGame("Celeste", "PC")
	assert.NotEqual(t, uuid.Nil, g.ID)
	assert.Equal(t, "Celeste", g.Title)
	assert.Equal(t, "PC", g.Platform)
	assert.Equal(t, game.Wishlist, g.Status)
	assert.Nil(t, g.DateCompleted)
}

func TestPrepareAssignsDefaults(t *testing.T) {
	g := game.Game{Title: "Hades"}
	assert.NoError(t, g.Prepare())
	assert.NotEqual(t, uuid.Nil, g.ID)
	assert.Equal(t, game.Wishlist, g.Status)
}

func TestPrepareKeepsIdentifier(t *testing.T) {
	id := uuid.New()
	g := game.Game{ID: id, Title: "Hades", Status: game.Paused}
	assert.NoError(t, g.Prepare())
	assert.Equal(t, id, g.ID)
	assert.Equal(t, game.Paused, g.Status)
}

func TestValidateEmptyTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t"} {
		g := game.Game{Title: title, Status: game.Wishlist}
		assert.True(t, errors.Is(g.Validate(), game.ErrEmptyTitle), "title %q", title)
	}
}

func TestValidateUnknownStatus(t *testing.T) {
	g := game.Game{Title: "Hades", Status: "Abandoned"}
	assert.ErrorIs(t, g.Validate(), game.ErrUnknownStatus)
}

func TestSetStatusCompleted(t *testing.T) {
	g := game.NewGame("Celeste", "PC")
	before := time.Now()
	g.SetStatus(game.Completed, time.Now())
	assert.Equal(t, game.Completed, g.Status)
	if assert.NotNil(t, g.DateCompleted) {
		assert.False(t, g.DateCompleted.Before(before))
		assert.Equal(t, time.UTC, g.DateCompleted.Location())
	}
}

func TestSetStatusClearsCompletionDate(t *testing.T) {
	for _, status := range []game.Status{game.Wishlist, game.Playing, game.Paused} {
		g := game.NewGame("Celeste", "PC")
		g.SetStatus(game.Completed, time.Now())
		g.SetStatus(status, time.Now())
		assert.Equal(t, status, g.Status)
		assert.Nil(t, g.DateCompleted)
	}
}

func TestCloneCopiesCompletionDate(t *testing.T) {
	completed := time.Date(2021, 8, 14, 20, 15, 0, 0, time.UTC)
	g := game.NewGame("Celeste", "PC")
	g.SetStatus(game.Completed, completed)
	clone := g.Clone()
	*clone.DateCompleted = completed.AddDate(1, 0, 0)
	assert.Equal(t, completed, *g.DateCompleted)

	g.SetStatus(game.Playing, completed)
	assert.Nil(t, g.Clone().DateCompleted)
}

func TestParseStatus(t *testing.T) {
	cases := map[string]game.Status{
		"Wishlist":  game.Wishlist,
		"playing":   game.Playing,
		" PAUSED ":  game.Paused,
		"completed": game.Completed,
	}
	for input, expected := range cases {
		status, err := game.ParseStatus(input)
		assert.NoError(t, err)
		assert.Equal(t, expected, status)
	}
	_, err := game.ParseStatus("beaten")
	assert.ErrorIs(t, err, game.ErrUnknownStatus)
}

func TestDistinctPlatforms(t *testing.T) {
	assert.Equal(t, []string{"PC", "Switch"}, game.DistinctPlatforms([]string{"PC", "pc ", "Switch", ""}))
	assert.Equal(t, []string{"PC", "Switch"}, game.DistinctPlatforms([]string{"pc ", "Switch", "PC", "  "}))
	assert.Equal(t, []string{"Atari 2600", "NES", "PS5"}, game.DistinctPlatforms([]string{"PS5", "nes", "Atari 2600", "NES"}))
	assert.Empty(t, game.DistinctPlatforms(nil))
}
