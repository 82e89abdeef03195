package application

import (
	"io"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/relay/pkg/constants"
	"github.com/agentstation/relay/pkg/logging"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
//
// Example Usage:
//
//	var out bytes.Buffer
//	mock := &application.Mock{
//	    StdoutFunc: func() io.Writer { return &out },
//	}
//	cmd := run.NewCommand(mock)
//	// ... execute cmd, then inspect out
type Mock struct {
	ScriptFunc       func() Script
	ProcessFunc      func() *logging.ProcessLogger
	StdoutFunc       func() io.Writer
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string

	processOnce sync.Once
	process     *logging.ProcessLogger
}

// Script returns a script using the mock function or the default demo.
func (m *Mock) Script() Script {
	if m.ScriptFunc != nil {
		return m.ScriptFunc()
	}
	return Script{
		Formats:  slices.Clone(constants.DefaultFormats),
		Users:    slices.Clone(constants.DefaultUsers),
		Greeting: constants.DefaultGreeting,
		Farewell: constants.DefaultFarewell,
	}
}

// Process returns a process logger using the mock function or one writing
// to Stdout, created once.
func (m *Mock) Process() *logging.ProcessLogger {
	if m.ProcessFunc != nil {
		return m.ProcessFunc()
	}
	m.processOnce.Do(func() {
		m.process = logging.NewProcessLogger(m.Stdout())
	})
	return m.process
}

// Stdout returns a writer using the mock function or io.Discard.
func (m *Mock) Stdout() io.Writer {
	if m.StdoutFunc != nil {
		return m.StdoutFunc()
	}
	return io.Discard
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
