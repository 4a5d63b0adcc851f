// Package config loads daybook's configuration from an optional YAML file,
// with DAYBOOK_* environment variables (optionally via a local .env file)
// taking precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LogConfig controls the zap logger.
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"` // "console" or "json"
}

// Config is the full runtime configuration.
type Config struct {
	StorePath     string    `yaml:"store_path"`
	Backend       string    `yaml:"backend"` // bolt | json | sqlite; empty picks by extension
	UndoWindowSec int       `yaml:"undo_window_sec"`
	Log           LogConfig `yaml:"log"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() Config {
	return Config{
		StorePath:     defaultStorePath(),
		Backend:       "",
		UndoWindowSec: 5,
		Log:           LogConfig{Level: "info", Encoding: "console"},
	}
}

// Load reads the YAML file at path (a missing file is fine), then applies
// environment overrides.
func Load(path string) (Config, error) {
	// Best effort; a missing .env is the common case.
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	if cfg.StorePath == "" {
		cfg.StorePath = defaultStorePath()
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DAYBOOK_STORE_PATH"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("DAYBOOK_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("DAYBOOK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("DAYBOOK_LOG_ENCODING"); v != "" {
		cfg.Log.Encoding = v
	}
	if v := os.Getenv("DAYBOOK_UNDO_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.UndoWindowSec = n
		}
	}
}

func defaultStorePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "daybook.bolt"
	}
	return filepath.Join(configDir, "daybook", "daybook.bolt")
}
