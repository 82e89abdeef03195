package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/relay/pkg/logging"
)

var logLevels = map[string]struct{}{
	"trace": {},
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
	"off":   {},
}

// NewLogger builds the diagnostic logger for config. Problems with the
// requested level are reported on stderr and never fail the command.
func NewLogger(config *Config) zerolog.Logger {
	level, warning := determineLogLevel(config)
	if warning != "" {
		fmt.Fprintln(os.Stderr, "Warning: "+warning)
	}

	return logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: level == "debug" || level == "trace",
	})
}

// determineLogLevel picks the level: --log-level (or LOG_LEVEL) first,
// then -q, then -v, then info. Quiet wins over verbose. The second
// result is a warning for the user, empty when there is none.
func determineLogLevel(config *Config) (level, warning string) {
	switch {
	case config.LogLevel != "":
		if _, ok := logLevels[config.LogLevel]; !ok {
			return "info", fmt.Sprintf("invalid log level %q, using %q", config.LogLevel, "info")
		}
		return config.LogLevel, ""
	case config.Verbose && config.Quiet:
		return "warn", "both --verbose and --quiet specified, using --quiet"
	case config.Quiet:
		return "warn", ""
	case config.Verbose:
		return "debug", ""
	default:
		return "info", ""
	}
}
