package config

import (
	"fmt"
	"io"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port         string `env:"PORT,default=8080"`
	LogLevel     string `env:"LOG_LEVEL,default=info"`
	DefaultImage string `env:"DEFAULT_IMAGE,default=https://i.pravatar.cc/48"`
	SeedEnabled  bool   `env:"SEED_ENABLED,default=true"`
	SeedFile     string `env:"SEED_FILE"`
	IDStrategy   string `env:"ID_STRATEGY,default=uuid"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadDotEnv loads .env files into the environment. Variables already set
// win. A missing file is reported on w and otherwise ignored.
func LoadDotEnv(w io.Writer, filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		fmt.Fprintln(w, "No .env file found, using environment variables")
	}
}
