package importer

import "gameshelf.dev/shelf/internal/game"

// Importer provides the games used to seed an empty library.
type Importer interface {
	// CanImport reports whether the importer source is available.
	CanImport() bool
	// Import reads every game of the source. Returned games may lack an identifier.
	Import() ([]game.Game, error)
}
