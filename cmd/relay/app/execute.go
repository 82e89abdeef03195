package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/relay/cmd/relay/cmd/completion"
	"github.com/agentstation/relay/cmd/relay/cmd/formats"
	"github.com/agentstation/relay/cmd/relay/cmd/run"
	"github.com/agentstation/relay/cmd/relay/cmd/version"
	"github.com/agentstation/relay/pkg/errors"
	"github.com/agentstation/relay/pkg/logging"
)

// Execute runs the relay CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.stdout)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
// Invoked without a subcommand, relay runs the demo.
func (a *App) createRootCommand() *cobra.Command {
	runCmd := run.NewCommand(a)

	rootCmd := &cobra.Command{
		Use:     "relay",
		Short:   "Format adapter and chat broadcast demo",
		Version: a.version,
		Long: `Relay adapts content sources of different formats (TXT, JSON, XML)
to one text interface and broadcasts chat messages to subscribed users.

Running relay without a subcommand plays the demo script: print the
content of every configured source, greet all users, let the last user
leave, then send a message only the remaining users receive.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		RunE:              runCmd.RunE,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	// Add global flags. Values are read back in setupCommand so unset
	// flags never clobber config file or environment settings.
	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.relay.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringP("format", "o", "", "output format: table, json, yaml")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error, off (overrides -v/-q)")

	// The root command runs the demo, so it accepts the demo's flags too.
	rootCmd.Flags().AddFlagSet(runCmd.Flags())

	rootCmd.SetVersionTemplate("relay {{.Version}}\n")

	a.registerCommands(rootCmd, runCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// These flags are defined as persistent flags in createRootCommand, so errors indicate programming errors
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "format")
	logLevel := mustGetString(cmd, "log-level")
	configFile := mustGetString(cmd, "config")

	// An explicit --config replaces whatever the default search found.
	if cmd.Flags().Changed("config") {
		config, err := LoadConfig(configFile)
		if err != nil {
			return errors.WrapResource("load", "config", configFile, err)
		}
		a.config = config
	}

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	// Code without a command context falls back to the same logger.
	if !a.customLogger {
		logger := NewLogger(a.config)
		a.logger = &logger
		logging.SetDefault(logger)
	}

	cmd.SetContext(logging.WithCommand(logging.WithLogger(cmd.Context(), a.logger), cmd.Name()))
	logging.FromContext(cmd.Context()).Debug().
		Str("config", a.config.ConfigFile).
		Msg("Command starting")

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd, runCmd *cobra.Command) {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(formats.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a))
	rootCmd.AddCommand(completion.NewCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
