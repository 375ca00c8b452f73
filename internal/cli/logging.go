package cli

import (
	"log/slog"
	"os"
)

// SetupLogging installs the default slog logger writing text to stderr.
// Quiet wins over verbose.
func SetupLogging(verbose, quiet bool) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: LogLevel(verbose, quiet),
	})))
}

// LogLevel maps the verbosity flags to a slog level
func LogLevel(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
