// Package logging builds the game's structured logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger at the given level writing to w.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "battleship",
	}), nil
}

// Open returns a logger for use while the terminal UI owns the screen.
// Output goes to path, or is discarded when path is empty. The returned
// close function releases the file.
func Open(path, level string) (*log.Logger, func() error, error) {
	if path == "" {
		logger, err := New(io.Discard, level)
		return logger, func() error { return nil }, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}
