// Package logging configures the global slog logger for the statstable CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup configures the global slog logger with text output on w
// (os.Stderr when nil). debug lowers the level from Info to Debug.
func Setup(debug bool, w io.Writer) {
	setup(debug, w, false)
}

// SetupJSON is Setup with a JSON handler.
func SetupJSON(debug bool, w io.Writer) {
	setup(debug, w, true)
}

func setup(debug bool, w io.Writer, asJSON bool) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if asJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}
