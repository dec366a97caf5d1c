package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gameshelf.dev/shelf/internal/game"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

const (
	DefaultCSVPath = "games_data.csv"
	// Platform assigned to rows without any platform.
	UnknownPlatform = "N/A"
)

// csvRecord is the fixed schema of a seed row. Columns missing from the file read as empty strings.
type csvRecord struct {
	Name          string
	Platforms     string
	StatusPlaying string
	StatusBeaten  string
	StatusToPlay  string
	Updated       string
	Genres        string
}

var csvColumns = map[string]func(*csvRecord, string){
	"name":                 func(r *csvRecord, v string) { r.Name = v },
	"platforms":            func(r *csvRecord, v string) { r.Platforms = v },
	"added_status_playing": func(r *csvRecord, v string) { r.StatusPlaying = v },
	"added_status_beaten":  func(r *csvRecord, v string) { r.StatusBeaten = v },
	"added_status_toplay":  func(r *csvRecord, v string) { r.StatusToPlay = v },
	"updated":              func(r *csvRecord, v string) { r.Updated = v },
	"genres":               func(r *csvRecord, v string) { r.Genres = v },
}

// CSVImporter reads games from a catalog export with one game per row.
type CSVImporter struct {
	Path string
}

func NewCSVImporter(path string) *CSVImporter {
	if path == "" {
		path = DefaultCSVPath
	}
	return &CSVImporter{Path: path}
}

func (c *CSVImporter) CanImport() bool {
	logrus.Debug("Checking if a seed CSV file could be imported")
	info, err := os.Stat(c.Path)
	if err != nil || info.IsDir() {
		logrus.WithField("path", c.Path).Debug("The seed CSV file is not present")
		return false
	}
	return true
}

func (c *CSVImporter) Import() (games []game.Game, err error) {
	var file *os.File
	if file, err = os.Open(c.Path); err != nil {
		return
	}
	defer file.Close()
	var records []csvRecord
	if records, err = readCSVRecords(file); err != nil {
		err = fmt.Errorf("cannot read %s: %w", c.Path, err)
		return
	}

	games = make([]game.Game, 0, len(records))
	for line, record := range records {
		if strings.TrimSpace(record.Name) == "" {
			logrus.WithField("row", line+1).Warn("Skipping seed row without a name")
			continue
		}
		games = append(games, record.toGame())
	}
	logrus.WithFields(logrus.Fields{"path": c.Path, "games": len(games)}).Info("Seed CSV file read")
	return
}

func readCSVRecords(source io.Reader) (records []csvRecord, err error) {
	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var header []string
	if header, err = reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("missing header row")
		}
		return
	}
	setters := make([]func(*csvRecord, string), len(header))
	for i, column := range header {
		setters[i] = csvColumns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(column, "\ufeff")))]
	}

	for {
		var row []string
		if row, err = reader.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			return
		}
		var record csvRecord
		for i, value := range row {
			if i < len(setters) && setters[i] != nil {
				setters[i](&record, value)
			}
		}
		records = append(records, record)
	}
}

func (r csvRecord) toGame() game.Game {
	g := game.Game{
		Title:       strings.TrimSpace(r.Name),
		Platform:    firstPlatform(r.Platforms),
		Status:      r.status(),
		Description: "Genres: " + r.Genres,
	}
	if g.Status == game.Completed {
		if updated, err := cast.ToTimeE(strings.TrimSpace(r.Updated)); err == nil {
			updated = updated.UTC()
			g.DateCompleted = &updated
		}
	}
	return g
}

// status derives the status from the counters. Playing wins over Completed,
// anything else (to-play counter or no counter at all) is a wish.
func (r csvRecord) status() game.Status {
	switch {
	case counter(r.StatusPlaying) > 0:
		return game.Playing
	case counter(r.StatusBeaten) > 0:
		return game.Completed
	case counter(r.StatusToPlay) > 0:
		return game.Wishlist
	default:
		return game.Wishlist
	}
}

func counter(value string) int {
	count, err := cast.ToIntE(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return count
}

func firstPlatform(platforms string) string {
	first := strings.TrimSpace(strings.SplitN(platforms, ",", 2)[0])
	if first == "" {
		return UnknownPlatform
	}
	return first
}
