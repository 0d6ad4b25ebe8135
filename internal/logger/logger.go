// Package logger builds the process logger. The returned *slog.Logger is
// always handed to components by parameter; nothing in this repo logs through
// slog's package-level default.
package logger

import (
	"io"
	"log/slog"
)

// Format selects the log output encoding.
type Format string

const (
	// FormatText is human-readable output for interactive runs.
	FormatText Format = "text"
	// FormatJSON is structured output for log aggregation.
	FormatJSON Format = "json"
)

// New returns a logger writing to w in the given format. verbose lowers the
// level from info to debug. Unknown formats fall back to text.
func New(w io.Writer, format Format, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
