// Package logging provides structured logging for relay using zerolog.
// Diagnostic output goes to stderr, human-readable on a terminal and JSON
// otherwise, so it never mixes with the demo transcript on stdout.
//
// Commands receive their logger through the context:
//
//	ctx = logging.WithCommand(logging.WithLogger(ctx, logger), "run")
//	logging.FromContext(ctx).Debug().Msg("Demo finished")
//
// The tagged status lines of the demo are written by a ProcessLogger,
// see Process and NewProcessLogger.
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Nop discards everything. Components fall back to it when no logger is injected.
var Nop = zerolog.Nop()

// defaultLogger serves callers that have no logger in their context.
var defaultLogger = NewLoggerFromConfig(envConfig())

// Default returns the process-wide fallback logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the fallback logger and zerolog's global log.Logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// envConfig builds the fallback configuration from LOG_LEVEL, LOG_FORMAT
// and DEBUG, before any config file or flag has been read.
func envConfig() *Config {
	cfg := DefaultConfig()
	switch {
	case os.Getenv("LOG_LEVEL") != "":
		cfg.Level = os.Getenv("LOG_LEVEL")
	case os.Getenv("DEBUG") != "":
		cfg.Level = "debug"
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	return cfg
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
