package importer

import (
	_ "embed"
	"time"

	"gameshelf.dev/shelf/internal/game"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed samples.yaml
var samplesDocument []byte

type sampleGame struct {
	Title       string     `yaml:"title"`
	Platform    string     `yaml:"platform"`
	Status      string     `yaml:"status"`
	Completed   *time.Time `yaml:"completed"`
	Description string     `yaml:"description"`
}

// SampleImporter seeds the library with a handful of built-in games.
type SampleImporter struct {
	Clock func() time.Time
}

func (s *SampleImporter) CanImport() bool { return true }

func (s *SampleImporter) Import() (games []game.Game, err error) {
	var samples []sampleGame
	if err = yaml.Unmarshal(samplesDocument, &samples); err != nil {
		return
	}
	now := time.Now
	if s.Clock != nil {
		now = s.Clock
	}
	games = make([]game.Game, 0, len(samples))
	for _, sample := range samples {
		var status game.Status
		if status, err = game.ParseStatus(sample.Status); err != nil {
			return nil, err
		}
		g := game.Game{
			Title:       sample.Title,
			Platform:    sample.Platform,
			Description: sample.Description,
		}
		g.SetStatus(status, now())
		if status == game.Completed && sample.Completed != nil {
			completed := sample.Completed.UTC()
			g.DateCompleted = &completed
		}
		games = append(games, g)
	}
	logrus.WithField("games", len(games)).Info("Sample games loaded")
	return
}
