package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultLogPath is where --debug writes the play log.
const DefaultLogPath = "~/.arcade/tetris.log"

// NewLogger returns the logger used by local play. The terminal belongs to
// the game, so output goes to a file when debug is set and is discarded
// otherwise. On success the returned close func is never nil.
func NewLogger(debug bool) (*log.Logger, func() error, error) {
	if !debug {
		return discardLogger(), func() error { return nil }, nil
	}

	path, err := expandHome(DefaultLogPath)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("tui: cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("tui: cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           log.DebugLevel,
	})
	return logger, f.Close, nil
}

// discardLogger stands in when no logger is configured.
func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
