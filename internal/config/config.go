// Package config resolves runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings shared by every command.
type Config struct {
	// DB is a SQLite file path or a Postgres DSN. Empty means the default
	// per-user data path.
	DB        string `env:"MATHSKILLS_DB"`
	DBDriver  string `env:"MATHSKILLS_DB_DRIVER" envDefault:"sqlite"`
	User      string `env:"MATHSKILLS_USER" envDefault:"local"`
	LogLevel  string `env:"MATHSKILLS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"MATHSKILLS_LOG_FORMAT" envDefault:"console"`
}

// Load reads the given dotenv files (missing files are skipped, existing
// environment variables win) and then parses MATHSKILLS_* variables.
func Load(dotenvFiles ...string) (Config, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("MATHSKILLS_DB_DRIVER: unsupported driver %q", c.DBDriver)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("MATHSKILLS_LOG_FORMAT: unsupported format %q", c.LogFormat)
	}
	if c.User == "" {
		return errors.New("MATHSKILLS_USER: must not be empty")
	}
	return nil
}
