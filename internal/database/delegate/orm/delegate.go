package orm

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gameshelf.dev/shelf/internal/game"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Location of the SQLite database when no DSN is configured.
const DefaultDatabasePath = "data/gameshelf.db"

var errNotOpen = errors.New("database is not open")

// ORMDelegate stores the library in a relational database through GORM.
// DSN accepts postgres://, postgresql:// or any SQLite form (file path, file:..., sqlite:///..., :memory:).
type ORMDelegate struct {
	DSN   string
	Clock func() time.Time

	database *gorm.DB
}

func (d *ORMDelegate) Open() (err error) {
	var dialector gorm.Dialector
	if dialector, err = d.dialector(); err != nil {
		return
	}
	if d.database, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}); err != nil {
		return
	}
	logrus.WithField("dialect", dialector.Name()).Debug("Database opened")
	return
}

func (d *ORMDelegate) dialector() (gorm.Dialector, error) {
	dsn := d.DSN
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn), nil
	}
	if dsn == "" {
		dsn = DefaultDatabasePath
	}
	if strings.HasPrefix(dsn, "sqlite:///") {
		dsn = "file:" + strings.TrimPrefix(dsn, "sqlite:///")
	}
	if path := sqlitePath(dsn); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, err
		}
	}
	return sqlite.Open(dsn), nil
}

// sqlitePath extracts the file system path of a SQLite DSN, empty for in-memory databases.
func sqlitePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.Index(path, "?"); i >= 0 {
		if strings.Contains(path[i:], "mode=memory") {
			return ""
		}
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return ""
	}
	return path
}

func (d *ORMDelegate) Migrate() (err error) {
	if d.database == nil {
		return errNotOpen
	}
	return d.database.AutoMigrate(&game.Game{})
}

func (d *ORMDelegate) Close() (err error) {
	if d.database == nil {
		return errNotOpen
	}
	var database *sql.DB
	if database, err = d.database.DB(); err != nil {
		return
	}
	if err = database.Close(); err != nil {
		return
	}
	d.database = nil
	return
}

func (d *ORMDelegate) now() time.Time {
	if d.Clock != nil {
		return d.Clock()
	}
	return time.Now()
}
