package mock

import "gameshelf.dev/shelf/internal/game"

type MockImporter struct {
	Available     bool
	ImportStarted bool
	Error         error
	Games         []game.Game
}

func (m *MockImporter) CanImport() bool {
	return m.Available
}

func (m *MockImporter) Import() ([]game.Game, error) {
	m.ImportStarted = true
	if m.Error != nil {
		return nil, m.Error
	}
	games := make([]game.Game, len(m.Games))
	copy(games, m.Games)
	return games, nil
}
