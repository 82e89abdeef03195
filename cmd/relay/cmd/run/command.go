// Package run provides the demo command: adapt every configured source,
// then play the chat broadcast script.
package run

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/relay/cmd/application"
	"github.com/agentstation/relay/internal/cmd/output"
	"github.com/agentstation/relay/pkg/logging"
)

// NewCommand creates the run command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var transcript bool

	cmd := &cobra.Command{
		Use:     "run",
		GroupID: "core",
		Short:   "Play the adapter and chat demo",
		Long: `Run prints the content of every configured source through its
format adapter, then plays the chat script: every user receives the
greeting, the last user leaves, and the remaining users receive the
farewell. Start and finish are marked with [ЛОГ] lines.

With --transcript, each user's received messages are printed afterwards
in the selected --format.`,
		Example: `  relay run
  relay run --transcript -o yaml
  relay run --config demo.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Resolve the format first so a bad -o fails before any output.
			var format output.Format
			if transcript {
				parsed, err := output.ParseFormat(app.OutputFormat())
				if err != nil {
					return err
				}
				format = output.DetectFormat(string(parsed))
			}

			result, err := Play(cmd.Context(), app)
			if err != nil {
				return err
			}
			logResult(logging.FromContextOr(cmd.Context(), app.Logger()), result)

			if !transcript {
				return nil
			}
			fmt.Fprintln(app.Stdout())
			return output.NewFormatter(format).Format(app.Stdout(), transcriptData(result, format))
		},
	}

	cmd.Flags().BoolVar(&transcript, "transcript", false, "print every user's received messages after the demo")

	return cmd
}

// transcriptData shapes the transcript for the chosen format.
func transcriptData(result *Result, format output.Format) any {
	if format != output.FormatTable {
		return result.Transcript
	}
	data := output.Data{
		Headers:         []string{"User", "#", "Message"},
		ColumnAlignment: []output.Align{output.AlignLeft, output.AlignRight, output.AlignLeft},
	}
	for _, d := range result.Transcript {
		data.Rows = append(data.Rows, []string{d.User, fmt.Sprint(d.Seq), d.Message})
	}
	return data
}
