// Package config loads game settings from embedded defaults, an optional
// YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// MaxBoardSize is the largest board the terminal layout supports.
const MaxBoardSize = 26

// Environment variables read by ApplyEnv.
const (
	EnvBoardSize  = "BATTLESHIP_BOARD_SIZE"
	EnvSeed       = "BATTLESHIP_SEED"
	EnvThinkDelay = "BATTLESHIP_THINK_DELAY"
	EnvLogLevel   = "BATTLESHIP_LOG_LEVEL"
	EnvLogFile    = "BATTLESHIP_LOG_FILE"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration options.
type Config struct {
	BoardSize int   `yaml:"board_size"`
	Fleet     []int `yaml:"fleet"` // Ship lengths in placement order

	// Seed for random number generation. Used for reproducible placement and
	// computer targeting. A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	ThinkDelay time.Duration `yaml:"think_delay"`
	LogLevel   string        `yaml:"log_level"`
	LogFile    string        `yaml:"log_file"`
	Theme      Theme         `yaml:"theme"`
}

// Theme holds hex colors (e.g., "#FF0000") for drawing cells.
type Theme struct {
	Water   string `yaml:"water"`
	Ship    string `yaml:"ship"`
	Hit     string `yaml:"hit"`
	Miss    string `yaml:"miss"`
	Cursor  string `yaml:"cursor"`
	Preview string `yaml:"preview"`
	Invalid string `yaml:"invalid"`
	Title   string `yaml:"title"`
}

// Default returns the embedded default configuration.
func Default() Config {
	return MustLoadEmbedded[Config]("defaults.yaml")
}

// Load returns the defaults overlaid with the YAML file at path.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if err := overlayFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBoardSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvBoardSize, err)
		}
		c.BoardSize = n
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvSeed, err)
		}
		c.Seed = n
	}
	if v, ok := lookup(EnvThinkDelay); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvThinkDelay, err)
		}
		c.ThinkDelay = d
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.LogFile = v
	}
	return nil
}

// Validate checks that the board and fleet are usable.
func (c Config) Validate() error {
	if c.BoardSize < 1 || c.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: board_size %d not in 1..%d", ErrInvalidConfig, c.BoardSize, MaxBoardSize)
	}
	if len(c.Fleet) == 0 {
		return fmt.Errorf("%w: fleet is empty", ErrInvalidConfig)
	}
	for i, length := range c.Fleet {
		if length < 1 || length > c.BoardSize {
			return fmt.Errorf("%w: fleet[%d] length %d not in 1..%d", ErrInvalidConfig, i, length, c.BoardSize)
		}
	}
	if c.ThinkDelay < 0 {
		return fmt.Errorf("%w: think_delay %s is negative", ErrInvalidConfig, c.ThinkDelay)
	}
	return nil
}

// NewRand returns a random source for the configured seed.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
