// ABOUTME: Diagnostic logging setup for --verbose
// ABOUTME: Installs a slog text handler as the process default logger
package ui

import (
	"io"
	"log/slog"
)

// SetupLogging routes slog output to w. Debug records are only emitted when verbose.
func SetupLogging(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
