package config

import (
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Storage
	DataDir     string `env:"POCKETBOOK_DATA_DIR"     envDefault:"."`
	StoreFile   string `env:"POCKETBOOK_STORE_FILE"   envDefault:"store.json"`
	SessionFile string `env:"POCKETBOOK_SESSION_FILE" envDefault:"session"`

	// Presentation
	HistoryLimit int `env:"POCKETBOOK_HISTORY_LIMIT" envDefault:"10"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load loads configuration from environment variables, honoring a
// local .env file when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// StorePath is the full path of the account store document.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, c.StoreFile)
}

// SessionPath is the full path of the session marker file.
func (c *Config) SessionPath() string {
	return filepath.Join(c.DataDir, c.SessionFile)
}
