package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/battleship/internal/config"
)

func TestHeadlessConfig(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, 1500*time.Millisecond, cfg.ThinkDelay)

	got := headlessConfig(cfg)

	assert.Equal(t, time.Duration(0), got.ThinkDelay)
	assert.Equal(t, cfg.Fleet, got.Fleet)
	assert.Equal(t, 1500*time.Millisecond, cfg.ThinkDelay, "input config is not modified")
}

func TestLoadConfigLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board_size: 8\nseed: 5\n"), 0o644))
	t.Setenv(config.EnvLogLevel, "debug")

	cfg, err := loadConfig(path, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.BoardSize)
	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)

	cfg, err = loadConfig(path, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed, "-seed overrides the file")
}

func TestLoadConfigValidates(t *testing.T) {
	t.Setenv(config.EnvBoardSize, "0")

	_, err := loadConfig("", 0)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
