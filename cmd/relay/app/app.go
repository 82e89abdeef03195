// Package app provides the application context and dependency management
// for the relay CLI. It centralizes configuration, logging, and the
// process logger, and wires them into every command.
package app

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/relay/cmd/application"
	"github.com/agentstation/relay/pkg/errors"
	"github.com/agentstation/relay/pkg/logging"
)

// App represents the relay application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger, rebuilt from flags unless injected
	logger       *zerolog.Logger
	customLogger bool

	// Demo output
	stdout io.Writer

	// Process logger (lazy-initialized, singleton)
	mu      sync.RWMutex
	process *logging.ProcessLogger
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the default
// locations, which can be customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		stdout:  os.Stdout,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Stdout returns the writer demo output goes to.
func (a *App) Stdout() io.Writer {
	return a.stdout
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Script returns the demo script described by the configuration.
func (a *App) Script() application.Script {
	return application.Script{
		Formats:  append([]string(nil), a.config.Formats...),
		Users:    append([]string(nil), a.config.Users...),
		Greeting: a.config.Greeting,
		Farewell: a.config.Farewell,
	}
}

// Process returns the process logger, creating it lazily on first use.
// This is thread-safe and ensures only one instance is created. The
// instance is also installed as the package-wide logging.Process.
func (a *App) Process() *logging.ProcessLogger {
	a.mu.RLock()
	if a.process != nil {
		p := a.process
		a.mu.RUnlock()
		return p
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.process != nil {
		return a.process
	}

	a.process = logging.NewProcessLogger(a.stdout)
	logging.SetProcess(a.process)
	return a.process
}

// Shutdown performs graceful shutdown of the application.
func (a *App) Shutdown(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		a.logger.Warn().Err(err).Msg("Shutdown context already done")
	}
	a.logger.Debug().Msg("Shutdown complete")
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewValidationError("config", nil, "config cannot be nil")
		}
		if err := config.Validate(); err != nil {
			return err
		}
		a.config = config
		if !a.customLogger {
			logger := NewLogger(config)
			a.logger = &logger
		}
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		if logger == nil {
			return errors.NewValidationError("logger", nil, "logger cannot be nil")
		}
		a.logger = logger
		a.customLogger = true
		return nil
	}
}

// WithOutput redirects demo output (useful for testing).
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		if w == nil {
			return errors.NewValidationError("output", nil, "output writer cannot be nil")
		}
		a.stdout = w
		return nil
	}
}

// WithProcessLogger sets a custom process logger.
func WithProcessLogger(p *logging.ProcessLogger) Option {
	return func(a *App) error {
		a.process = p
		return nil
	}
}
