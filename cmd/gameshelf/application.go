package main

import (
	"context"
	"io"

	"gameshelf.dev/shelf/internal/configloader"
	"gameshelf.dev/shelf/internal/database"
	"gameshelf.dev/shelf/internal/database/delegate"
	"gameshelf.dev/shelf/internal/database/delegate/jsonfile"
	"gameshelf.dev/shelf/internal/database/delegate/orm"
	"gameshelf.dev/shelf/internal/database/importer"
	"gameshelf.dev/shelf/internal/logging"
	"github.com/sirupsen/logrus"
)

// application holds what the commands share: the configuration and the single store instance.
type application struct {
	configurationFilePath string
	config                configloader.Config
	database              *database.Database
	logOutput             io.Writer
}

func (a *application) start(ctx context.Context) (err error) {
	// Loading application configuration
	if a.config, err = configloader.LoadConfiguration(APPLICATION_NAME, a.configurationFilePath); err != nil {
		return
	}
	if a.logOutput, err = logging.Setup(a.config); err != nil {
		return
	}
	if a.configurationFilePath != "" {
		logrus.Infof("Loaded config file %s", a.configurationFilePath)
	}
	logrus.Debugf("Setting log level to %s", logrus.GetLevel().String())

	a.database = database.NewDatabase(newStore(a.config), newImporters(a.config))
	if err = a.database.Initialize(ctx); err != nil {
		a.database = nil
	}
	return
}

func (a *application) stop() {
	if a.database != nil {
		a.database.Deinitialize()
		a.database = nil
	}
	if closer, ok := a.logOutput.(io.Closer); ok && a.config.LogFile != "" {
		closer.Close()
	}
}

func (a *application) store() delegate.GameStore {
	return a.database.Store()
}

func newStore(config configloader.Config) delegate.GameStore {
	if config.StoreBackend == configloader.BackendJSON {
		return &jsonfile.JSONFileDelegate{Path: config.JSONPath}
	}
	return &orm.ORMDelegate{DSN: config.DatabaseDSN}
}

// newImporters returns the single seed source enabled by the configuration.
func newImporters(config configloader.Config) []importer.Importer {
	switch config.SeedSource {
	case configloader.SeedCSV:
		return []importer.Importer{importer.NewCSVImporter(config.SeedCSVPath)}
	case configloader.SeedSample:
		return []importer.Importer{&importer.SampleImporter{}}
	default:
		return nil
	}
}
