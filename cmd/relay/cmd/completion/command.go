// Package completion provides shell completion script generation.
package completion

import (
	"io"

	"github.com/spf13/cobra"
)

// shell describes one supported shell and how cobra generates its script.
type shell struct {
	name     string
	loadHint string
	generate func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name:     "bash",
		loadHint: "source <(relay completion bash)",
		generate: func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	},
	{
		name:     "zsh",
		loadHint: "source <(relay completion zsh)",
		generate: func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	},
	{
		name:     "fish",
		loadHint: "relay completion fish | source",
		generate: func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	},
	{
		name:     "powershell",
		loadHint: "relay completion powershell | Out-String | Invoke-Expression",
		generate: func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
	},
}

// NewCommand creates the completion command with one subcommand per shell.
// This replaces Cobra's auto-generated completion command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for relay.

The script is written to stdout; load it in your shell or save it to the
shell's completion directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	for _, s := range shells {
		cmd.AddCommand(newShellCommand(s))
	}

	return cmd
}

func newShellCommand(s shell) *cobra.Command {
	return &cobra.Command{
		Use:   s.name,
		Short: "Generate " + s.name + " completion script",
		Long: `Generate the autocompletion script for ` + s.name + `.

To load completions in your current shell session:

  ` + s.loadHint,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.generate(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
