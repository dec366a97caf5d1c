package logging

import (
	"io"
	"os"
	"strings"

	"gameshelf.dev/shelf/internal/configloader"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the standard logrus logger from the application configuration.
// It returns the writer receiving the entries so that callers can close a log file.
func Setup(config configloader.Config) (io.Writer, error) {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(level)

	if strings.EqualFold(config.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var output io.Writer = os.Stderr
	if strings.TrimSpace(config.LogFile) != "" {
		output = &lumberjack.Logger{
			Filename:   config.LogFile,
			MaxSize:    config.LogMaxSizeMB,
			MaxBackups: config.LogMaxBackups,
			MaxAge:     config.LogMaxAgeDays,
			Compress:   config.LogCompress,
		}
	}
	logrus.SetOutput(output)
	return output, nil
}
