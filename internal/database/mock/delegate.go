package mock

import (
	"context"

	"gameshelf.dev/shelf/internal/database/delegate/orm"
	"gameshelf.dev/shelf/internal/game"
	"github.com/google/uuid"
)

// MockDelegate is an in-memory SQLite store whose lifecycle steps can be made to fail.
type MockDelegate struct {
	orm.ORMDelegate

	FailOpen      bool
	FailMigration bool
	FailCount     bool
	FailAddAll    bool
	Error         error

	Migrated    bool
	Closed      bool
	AddAllCalls int
}

func (m *MockDelegate) Open() error {
	if m.FailOpen {
		return m.Error
	}
	m.DSN = "file:mock-" + uuid.NewString() + "?mode=memory&cache=shared"
	return m.ORMDelegate.Open()
}

func (m *MockDelegate) Migrate() error {
	if m.FailMigration {
		return m.Error
	}
	m.Migrated = true
	return m.ORMDelegate.Migrate()
}

func (m *MockDelegate) Close() error {
	m.Closed = true
	return m.ORMDelegate.Close()
}

func (m *MockDelegate) Count(ctx context.Context) (int64, error) {
	if m.FailCount {
		return 0, m.Error
	}
	return m.ORMDelegate.Count(ctx)
}

func (m *MockDelegate) AddAll(ctx context.Context, games []game.Game) error {
	m.AddAllCalls++
	if m.FailAddAll {
		return m.Error
	}
	return m.ORMDelegate.AddAll(ctx, games)
}
