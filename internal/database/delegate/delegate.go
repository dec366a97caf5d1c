package delegate

import (
	"context"
	"errors"

	"gameshelf.dev/shelf/internal/game"
	"github.com/google/uuid"
)

var (
	ErrInvalidPage = errors.New("page number and page size must be positive")
	ErrDuplicateID = errors.New("a game with the same id already exists")
)

// DatabaseDelegate handles the lifecycle of the underlying storage.
type DatabaseDelegate interface {
	Open() error
	Close() error
	Migrate() error
}

// GameStore is the repository of the game library. Reads of a missing record
// return a nil game and a nil error; writes on an unknown id are no-ops.
type GameStore interface {
	DatabaseDelegate

	GetAll(ctx context.Context) ([]game.Game, error)
	GetPaged(ctx context.Context, pageNumber int, pageSize int) ([]game.Game, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id uuid.UUID) (*game.Game, error)
	Add(ctx context.Context, g *game.Game) error
	AddAll(ctx context.Context, games []game.Game) error
	Update(ctx context.Context, g *game.Game) error
	Remove(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status game.Status) error
	GetDistinctPlatforms(ctx context.Context) ([]string, error)
}

// Offset converts a one-based page into the number of records to skip.
func Offset(pageNumber int, pageSize int) (offset int, err error) {
	if pageNumber < 1 || pageSize < 1 {
		err = ErrInvalidPage
		return
	}
	offset = (pageNumber - 1) * pageSize
	return
}
