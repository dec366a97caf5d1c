package configloader

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	BackendSQL  = "sql"
	BackendJSON = "json"

	SeedCSV    = "csv"
	SeedSample = "sample"
	SeedNone   = "none"
)

// Structure to bind application parameters
type Config struct {
	LogLevel      string `mapstructure:"LOG_LEVEL"`  // logrus library log level to be assigned
	LogFormat     string `mapstructure:"LOG_FORMAT"` // text or json
	LogFile       string `mapstructure:"LOG_FILE"`   // rotated log file, stderr when empty
	LogMaxSizeMB  int    `mapstructure:"LOG_MAX_SIZE_MB"`
	LogMaxBackups int    `mapstructure:"LOG_MAX_BACKUPS"`
	LogMaxAgeDays int    `mapstructure:"LOG_MAX_AGE_DAYS"`
	LogCompress   bool   `mapstructure:"LOG_COMPRESS"`

	StoreBackend string `mapstructure:"STORE_BACKEND"` // sql or json
	DatabaseDSN  string `mapstructure:"DATABASE_DSN"`
	JSONPath     string `mapstructure:"JSON_PATH"`

	SeedSource  string `mapstructure:"SEED_SOURCE"` // csv, sample or none
	SeedCSVPath string `mapstructure:"SEED_CSV_PATH"`

	PageSize int `mapstructure:"PAGE_SIZE"`
}

// Initialize default parameters values
func initDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_MAX_SIZE_MB", 10)
	v.SetDefault("LOG_MAX_BACKUPS", 3)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)
	v.SetDefault("LOG_COMPRESS", false)
	v.SetDefault("STORE_BACKEND", BackendSQL)
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("JSON_PATH", "games.json")
	v.SetDefault("SEED_SOURCE", SeedCSV)
	v.SetDefault("SEED_CSV_PATH", "games_data.csv")
	v.SetDefault("PAGE_SIZE", 10)
}

// Load configuration from env file
func LoadConfiguration(applicationName string, configurationFilePath string) (config Config, err error) {
	v := viper.New()
	initDefaultConfiguration(v)

	if configurationFilePath == "" {
		// Read the volume root path
		root := filepath.VolumeName(".")
		if root == "" {
			root = string(filepath.Separator)
		}

		// Set configuration named config from etc/*appName*, $HOME/.*appName* or current folders
		v.AddConfigPath(filepath.Join(root, "etc", applicationName))
		v.AddConfigPath(filepath.Join("$HOME", "."+applicationName))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	} else {
		// Set the configuration file path
		v.SetConfigFile(configurationFilePath)
	}

	// Get configuration from environment variables, if set
	v.AutomaticEnv()

	// Get configuration from configuration file, if set
	if configError := v.ReadInConfig(); configError != nil {
		if configurationFilePath != "" {
			err = configError
			return
		}
		logrus.Debug(configError.Error())
	}
	if err = v.Unmarshal(&config); err != nil {
		return
	}
	err = config.Validate()
	return
}

func (c Config) Validate() error {
	switch c.StoreBackend {
	case BackendSQL, BackendJSON:
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
	switch c.SeedSource {
	case SeedCSV, SeedSample, SeedNone:
	default:
		return fmt.Errorf("unknown seed source %q", c.SeedSource)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	return nil
}
