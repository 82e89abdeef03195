// Package application provides the application interface for relay commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            script := app.Script()
//	            app.Process().Log(constants.StartMessage)
//	            // ... play the script against app.Stdout()
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    StdoutFunc: func() io.Writer { return &buf },
//	}
//	cmd := run.NewCommand(mock)
package application

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/relay/pkg/logging"
)

// Script is the demo a run command plays: which sources to print, who
// joins the chat, and the two broadcast messages.
type Script struct {
	Formats  []string `json:"formats" yaml:"formats"`
	Users    []string `json:"users" yaml:"users"`
	Greeting string   `json:"greeting" yaml:"greeting"`
	Farewell string   `json:"farewell" yaml:"farewell"`
}

// Application provides the application interface that commands need.
// The App struct from cmd/relay/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Script returns a copy of the configured demo script.
	Script() Script

	// Process returns the process logger used for start and finish lines.
	// Repeated calls return the same instance.
	Process() *logging.ProcessLogger

	// Stdout returns the writer command output goes to.
	Stdout() io.Writer

	// Logger returns the configured diagnostic logger.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml)
	// or an empty string to auto-detect.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
