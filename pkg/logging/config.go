package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/relay/pkg/constants"
)

// Config describes a diagnostic logger.
type Config struct {
	// Level: trace, debug, info, warn, error or off. Unknown values mean info.
	Level string

	// Format: json, console or auto (console only when writing to a terminal).
	Format string

	// Output: stderr, stdout, discard or a file path opened for append.
	Output string

	// NoColor disables ANSI colors in console format.
	NoColor bool

	// AddCaller adds file:line to every event. Debug and trace always do.
	AddCaller bool

	// Fields are attached to every event.
	Fields map[string]any
}

// DefaultConfig logs info and above to stderr, honoring NO_COLOR.
func DefaultConfig() *Config {
	return &Config{
		Level:   "info",
		Format:  "auto",
		Output:  "stderr",
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

var levels = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"off":      zerolog.Disabled,
	"disabled": zerolog.Disabled,
	"none":     zerolog.Disabled,
}

// NewLoggerFromConfig builds a logger from cfg; a nil cfg means DefaultConfig.
// The zerolog global level follows cfg.Level except for off, which only
// silences this logger so ProcessLogger lines keep printing.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level, ok := levels[strings.ToLower(cfg.Level)]
	if !ok {
		level = zerolog.InfoLevel
	}
	if level != zerolog.Disabled {
		zerolog.SetGlobalLevel(level)
	}

	out := openOutput(cfg.Output)
	ctx := zerolog.New(withFormat(out, cfg.Format, cfg.NoColor)).
		Level(level).
		With().
		Timestamp()

	if cfg.AddCaller || level <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	if len(cfg.Fields) > 0 {
		ctx = ctx.Fields(cfg.Fields)
	}
	return ctx.Logger()
}

// openOutput resolves an output name. Unopenable files fall back to stderr.
func openOutput(name string) io.Writer {
	switch strings.ToLower(name) {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	case "discard", "none":
		return io.Discard
	}
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return os.Stderr
	}
	return f
}

// withFormat wraps out in a ConsoleWriter for console output.
func withFormat(out io.Writer, format string, noColor bool) io.Writer {
	switch strings.ToLower(format) {
	case "console", "pretty":
	case "", "auto":
		if f, ok := out.(*os.File); !ok || f != os.Stderr || !isTerminal(f) {
			return out
		}
	default:
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: noColor}
}
