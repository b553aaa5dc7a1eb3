// Package config loads gridpath CLI configuration.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (GRIDPATH_GRID_WIDTH, GRIDPATH_SEARCH_ALGORITHM, ...)
//  2. YAML config file passed with --config
//  3. Defaults from Default()
//
// Environment variables drop the GRIDPATH_ prefix, are lower-cased and split
// on the first underscore into section and field:
//
//	GRIDPATH_GRID_WIDTH              -> grid.width
//	GRIDPATH_SEARCH_ORDERED_DIJKSTRA -> search.ordered_dijkstra
//	GRIDPATH_LOG_LEVEL               -> log.level
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/search"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "GRIDPATH_"

const maxConfigFileSize = 1024 * 1024 // 1MB

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete CLI configuration.
type Config struct {
	Grid   GridConfig     `koanf:"grid"`
	Search SearchConfig   `koanf:"search"`
	Log    logging.Config `koanf:"log"`
}

// GridConfig sizes the grid used when no scenario file is given.
type GridConfig struct {
	Width  int `koanf:"width"`
	Height int `koanf:"height"`
}

// SearchConfig selects the default algorithm.
type SearchConfig struct {
	Algorithm       string `koanf:"algorithm"`
	OrderedDijkstra bool   `koanf:"ordered_dijkstra"`
}

// Default returns a 15×15 grid searched with A*.
func Default() Config {
	return Config{
		Grid:   GridConfig{Width: 15, Height: 15},
		Search: SearchConfig{Algorithm: search.AStar.String()},
		Log:    logging.NewDefaultConfig(),
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path, and environment overrides, then validates it.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if info.Size() > maxConfigFileSize {
			return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrInvalid, path, maxConfigFileSize)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: failed to load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: failed to load environment variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps GRIDPATH_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}

	return parts[0] + "." + parts[1]
}

// Validate checks grid dimensions, the algorithm name and logging settings.
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}
	if _, err := search.ParseAlgorithm(c.Search.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Algorithm returns the parsed default algorithm.
func (c *Config) Algorithm() search.Algorithm {
	a, _ := search.ParseAlgorithm(c.Search.Algorithm)
	return a
}

// SearchOptions returns the search options implied by the configuration.
func (c *Config) SearchOptions() []search.Option {
	var opts []search.Option
	if c.Search.OrderedDijkstra {
		opts = append(opts, search.WithOrderedDijkstra())
	}

	return opts
}
