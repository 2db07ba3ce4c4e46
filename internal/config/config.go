// Package config reads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime knob of the API server.
type Config struct {
	Address     string        `env:"ADDRESS" envDefault:":3000"`
	DatabaseURL string        `env:"DATABASE_URL"`
	DataDir     string        `env:"DATA_DIR"`
	JWTSecret   string        `env:"JWT_SECRET" envDefault:"dev-secret-change-in-production"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
}

// Load reads .env (when present) and parses the environment. When no DATA_DIR
// is set the sqlite file lands in the OS user-config directory, which is how
// the packaged desktop build locates its database.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DataDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		cfg.DataDir = filepath.Join(dir, "fichas")
	}

	return cfg, nil
}

// SQLitePath is the default database file used when DATABASE_URL is unset.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "fichas.db")
}
