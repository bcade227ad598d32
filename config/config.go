package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultSavePath = "unoflip.sav"
	defaultLogLevel = "info"
)

// Config carries the front-end settings. Game rules (hand size, match
// threshold) are engine constants and deliberately not configurable.
type Config struct {
	SavePath string
	LogLevel string
}

// Load reads an optional .env file and the UNO_* environment, falling back
// to defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("could not read .env file")
	}
	return Config{
		SavePath: getenv("UNO_SAVE_PATH", defaultSavePath),
		LogLevel: getenv("UNO_LOG_LEVEL", defaultLogLevel),
	}
}

// ApplyLogLevel configures logrus from the loaded level, keeping the default
// on an unparseable value.
func (c Config) ApplyLogLevel() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.WithField("level", c.LogLevel).Warn("unknown log level, using info")
		return
	}
	logrus.SetLevel(level)
}

func getenv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
