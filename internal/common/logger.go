package common

import (
	"io"
	"log/slog"
	"os"
)

// SetupLogger installs a JSON slog logger tagged with component as the
// default and returns it. The level is debug when verbose is set or DEBUG is
// present in the environment, info otherwise.
func SetupLogger(component string, verbose bool) *slog.Logger {
	return newLogger(os.Stderr, component, verbose || os.Getenv("DEBUG") != "")
}

func newLogger(w io.Writer, component string, debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})

	logger := slog.New(handler).With("component", component)
	slog.SetDefault(logger)
	return logger
}
