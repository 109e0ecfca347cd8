// Package log wires the default slog logger to a rotating log file.
// The TUI owns the terminal, so logs never go to stderr while running.
package log

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	charmlog "charm.land/log/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs a charm log handler writing to path as the slog
// default. With debug set, debug-level records are kept.
func Setup(path string, debug bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := charmlog.InfoLevel
	if debug {
		level = charmlog.DebugLevel
	}

	logger := charmlog.NewWithOptions(writer, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})

	slog.SetDefault(slog.New(logger))
	return nil
}
