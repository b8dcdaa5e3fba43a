package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	defaultConfigPath = "./config.yaml"
	defaultEnvFile    = ".env"
)

// Load builds the configuration. Sources, highest priority first: process
// environment, a .env file (ENV_FILE), the YAML file (CONFIG_PATH), env-default
// tags. A missing default file is fine; a missing explicit one is an error.
func Load() (*Config, error) {
	envFile, explicitEnv := sourcePath("ENV_FILE", defaultEnvFile)
	if err := godotenv.Load(envFile); err != nil && (explicitEnv || !errors.Is(err, fs.ErrNotExist)) {
		return nil, fmt.Errorf("config: env file %s: %w", envFile, err)
	}

	cfg := defaults()
	if err := readInto(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func readInto(cfg *Config) error {
	path, explicit := sourcePath("CONFIG_PATH", defaultConfigPath)

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}

// sourcePath returns the value of key, or fallback when it is unset.
func sourcePath(key, fallback string) (string, bool) {
	if v := os.Getenv(key); v != "" {
		return v, true
	}
	return fallback, false
}
