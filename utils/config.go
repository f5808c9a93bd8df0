package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendConsole  = "console"

	PatternRandom = "random"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Rows        int    `json:"rows"`
	Columns     int    `json:"columns"`
	CellSize    int    `json:"cell_size"`
	Frontend    string `json:"frontend"`
	Seed        int64  `json:"seed"`    // 0 picks a time based seed
	Workers     int    `json:"workers"` // 0 uses one worker per CPU
	Pattern     string `json:"pattern"`
	HistorySize int    `json:"history_size"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:        50,
		Columns:     70,
		CellSize:    15,
		Frontend:    FrontendWindow,
		Pattern:     PatternRandom,
		HistorySize: 5,
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
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the config describes a runnable game
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return errors.Wrapf(model.ErrInvalidDimension, "[Validate] rows: %d, columns: %d", c.Rows, c.Columns)
	}
	if c.CellSize <= 0 {
		return errors.Wrapf(model.ErrInvalidDimension, "[Validate] cell size: %d", c.CellSize)
	}
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal, FrontendConsole:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown frontend: %q", c.Frontend)
	}
	if c.Pattern != PatternRandom {
		if _, err := model.LookupPattern(c.Pattern); err != nil {
			return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern: %q", c.Pattern)
		}
	}
	if c.HistorySize < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] history size: %d", c.HistorySize)
	}
	return nil
}
