package database

import (
	"context"

	"gameshelf.dev/shelf/internal/database/delegate"
	"gameshelf.dev/shelf/internal/database/importer"
	"github.com/sirupsen/logrus"
)

type Database struct {
	store     delegate.GameStore
	importers []importer.Importer
}

func NewDatabase(store delegate.GameStore, importers []importer.Importer) (instance *Database) {
	instance = &Database{
		store:     store,
		importers: importers,
	}
	return
}

// Initialize opens the store, applies the migrations and seeds it when empty.
// Seeding problems are logged, never returned.
func (d *Database) Initialize(ctx context.Context) (err error) {
	logrus.Info("Connecting to database")
	if err = d.store.Open(); err != nil {
		return
	}
	logrus.Info("Applying database migrations")
	if err = d.store.Migrate(); err != nil {
		return
	}
	d.Seed(ctx)
	return
}

// Seed fills an empty store from the first importer able to import.
// It returns the number of games stored.
func (d *Database) Seed(ctx context.Context) (seeded int) {
	count, err := d.store.Count(ctx)
	if err != nil {
		logrus.Errorf("Cannot count the stored games: %+v", err)
		return
	}
	if count > 0 {
		logrus.WithField("games", count).Debug("Library already populated, skipping seed")
		return
	}

	for _, source := range d.importers {
		if !source.CanImport() {
			continue
		}
		games, err := source.Import()
		if err != nil {
			logrus.Errorf("Cannot import the seed data: %+v", err)
			return
		}
		if len(games) == 0 {
			logrus.Info("No seed data to store")
			return
		}
		logrus.Info("Storing the imported games")
		if err = d.store.AddAll(ctx, games); err != nil {
			logrus.Errorf("Cannot store the imported games: %+v", err)
			return
		}
		seeded = len(games)
		logrus.WithField("games", seeded).Info("Library seeded")
		return
	}
	logrus.Debug("No seed source available")
	return
}

func (d *Database) Store() delegate.GameStore {
	return d.store
}

func (d *Database) Deinitialize() {
	if err := d.store.Close(); err != nil {
		logrus.Warnf("Cannot close the database: %+v", err)
	}
}
