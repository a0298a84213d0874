package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// DefaultConfigFile is read from the working directory when present
const DefaultConfigFile = "lifestep.json"

// Config holds the configuration for a session
type Config struct {
	LogLevel      string `json:"log_level"`
	ShowStats     bool   `json:"show_stats"`
	MaxIterations int    `json:"max_iterations"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		LogLevel:      LevelInfo,
		ShowStats:     false,
		MaxIterations: 0, // unlimited
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if config.MaxIterations < 0 {
		return DefaultConfig(), errors.Errorf("[LoadConfig] max_iterations must not be negative, got %d", config.MaxIterations)
	}

	return config, nil
}
