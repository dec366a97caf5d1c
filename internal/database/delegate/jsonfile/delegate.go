// Package jsonfile keeps the whole library in memory and mirrors it to a JSON file.
// The file is read once when opened and rewritten after every change, so it must
// not be shared by several processes.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gameshelf.dev/shelf/internal/database/delegate"
	"gameshelf.dev/shelf/internal/game"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultPath = "games.json"

type JSONFileDelegate struct {
	Path  string
	Clock func() time.Time

	games []game.Game
}

func (d *JSONFileDelegate) path() string {
	if d.Path == "" {
		return DefaultPath
	}
	return d.Path
}

func (d *JSONFileDelegate) Open() (err error) {
	var data []byte
	if data, err = os.ReadFile(d.path()); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logrus.WithField("path", d.path()).Debug("Library file not found, starting empty")
			d.games = []game.Game{}
			return nil
		}
		return
	}
	var games []game.Game
	if err = json.Unmarshal(data, &games); err != nil {
		return
	}
	if games == nil {
		games = []game.Game{}
	}
	d.games = games
	return
}

func (d *JSONFileDelegate) Migrate() error { return nil }

func (d *JSONFileDelegate) Close() error {
	d.games = nil
	return nil
}

func (d *JSONFileDelegate) save() (err error) {
	var data []byte
	if data, err = json.MarshalIndent(d.games, "", "  "); err != nil {
		return
	}
	if dir := filepath.Dir(d.path()); dir != "." {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return
		}
	}
	return os.WriteFile(d.path(), data, 0644)
}

func (d *JSONFileDelegate) now() time.Time {
	if d.Clock != nil {
		return d.Clock()
	}
	return time.Now()
}

func (d *JSONFileDelegate) indexOf(id uuid.UUID) int {
	for i := range d.games {
		if d.games[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *JSONFileDelegate) sorted() []game.Game {
	games := make([]game.Game, len(d.games))
	for i := range d.games {
		games[i] = d.games[i].Clone()
	}
	sort.SliceStable(games, func(i, j int) bool {
		if games[i].Title != games[j].Title {
			return games[i].Title < games[j].Title
		}
		return games[i].ID.String() < games[j].ID.String()
	})
	return games
}

func (d *JSONFileDelegate) GetAll(ctx context.Context) ([]game.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.sorted(), nil
}

func (d *JSONFileDelegate) GetPaged(ctx context.Context, pageNumber int, pageSize int) ([]game.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	offset, err := delegate.Offset(pageNumber, pageSize)
	if err != nil {
		return nil, err
	}
	games := d.sorted()
	if offset >= len(games) {
		return []game.Game{}, nil
	}
	end := offset + pageSize
	if end > len(games) {
		end = len(games)
	}
	return games[offset:end], nil
}

func (d *JSONFileDelegate) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int64(len(d.games)), nil
}

func (d *JSONFileDelegate) Get(ctx context.Context, id uuid.UUID) (*game.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if i := d.indexOf(id); i >= 0 {
		entity := d.games[i].Clone()
		return &entity, nil
	}
	return nil, nil
}

func (d *JSONFileDelegate) Add(ctx context.Context, g *game.Game) (err error) {
	if err = ctx.Err(); err != nil {
		return
	}
	if err = g.Prepare(); err != nil {
		return
	}
	if d.indexOf(g.ID) >= 0 {
		return fmt.Errorf("add game %s: %w", g.ID, delegate.ErrDuplicateID)
	}
	d.games = append(d.games, g.Clone())
	if err = d.save(); err != nil {
		d.games = d.games[:len(d.games)-1]
		return
	}
	logrus.WithFields(logrus.Fields{"id": g.ID, "title": g.Title}).Debug("Game added")
	return
}

func (d *JSONFileDelegate) AddAll(ctx context.Context, games []game.Game) (err error) {
	if err = ctx.Err(); err != nil || len(games) == 0 {
		return
	}
	seen := make(map[uuid.UUID]bool, len(games))
	for i := range games {
		if err = games[i].Prepare(); err != nil {
			return
		}
		if seen[games[i].ID] || d.indexOf(games[i].ID) >= 0 {
			return fmt.Errorf("add game %s: %w", games[i].ID, delegate.ErrDuplicateID)
		}
		seen[games[i].ID] = true
	}
	previous := len(d.games)
	for i := range games {
		d.games = append(d.games, games[i].Clone())
	}
	if err = d.save(); err != nil {
		d.games = d.games[:previous]
		return
	}
	logrus.WithField("count", len(games)).Debug("Games added")
	return
}

func (d *JSONFileDelegate) Update(ctx context.Context, g *game.Game) (err error) {
	if err = ctx.Err(); err != nil {
		return
	}
	if err = g.Validate(); err != nil {
		return
	}
	i := d.indexOf(g.ID)
	if i < 0 {
		logrus.WithField("id", g.ID).Debug("Update skipped, game not found")
		return
	}
	previous := d.games[i]
	d.games[i] = g.Clone()
	if err = d.save(); err != nil {
		d.games[i] = previous
	}
	return
}

func (d *JSONFileDelegate) Remove(ctx context.Context, id uuid.UUID) (err error) {
	if err = ctx.Err(); err != nil {
		return
	}
	i := d.indexOf(id)
	if i < 0 {
		return
	}
	previous := d.games
	games := make([]game.Game, 0, len(d.games)-1)
	games = append(games, d.games[:i]...)
	d.games = append(games, d.games[i+1:]...)
	if err = d.save(); err != nil {
		d.games = previous
		return
	}
	logrus.WithField("id", id).Debug("Game removed")
	return
}

func (d *JSONFileDelegate) SetStatus(ctx context.Context, id uuid.UUID, status game.Status) (err error) {
	if status, err = game.ParseStatus(string(status)); err != nil {
		return
	}
	var entity *game.Game
	if entity, err = d.Get(ctx, id); err != nil || entity == nil {
		return
	}
	entity.SetStatus(status, d.now())
	return d.Update(ctx, entity)
}

func (d *JSONFileDelegate) GetDistinctPlatforms(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	platforms := make([]string, 0, len(d.games))
	for _, g := range d.games {
		platforms = append(platforms, g.Platform)
	}
	return game.DistinctPlatforms(platforms), nil
}
