package logging

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

var (
	// Logger is the global structured logger
	Logger *slog.Logger

	// Verbose enables debug logging
	Verbose bool
)

func init() {
	Logger = slog.New(newTextHandler(os.Stderr, charmlog.InfoLevel))
}

// newTextHandler returns a charmbracelet/log logger, which doubles as a slog.Handler.
func newTextHandler(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:  level,
		Prefix: "lan-address-gen",
	})
}

// Setup configures the logger based on verbosity and output preferences
func Setup(verbose bool, jsonOutput bool, w io.Writer) {
	Verbose = verbose

	if w == nil {
		w = os.Stderr
	}

	if jsonOutput {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		Logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
		return
	}

	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	Logger = slog.New(newTextHandler(w, level))
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// With returns a logger with additional attributes
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}
