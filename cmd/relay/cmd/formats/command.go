// Package formats provides the command listing supported content sources.
package formats

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/relay/cmd/application"
	"github.com/agentstation/relay/internal/cmd/output"
	"github.com/agentstation/relay/pkg/adapter"
	"github.com/agentstation/relay/pkg/errors"
	"github.com/agentstation/relay/pkg/logging"
	"github.com/agentstation/relay/pkg/sources"
)

// Info describes one supported content source.
type Info struct {
	Kind    string `json:"kind" yaml:"kind"`
	Source  string `json:"source" yaml:"source"`
	Content string `json:"content" yaml:"content"`
}

// NewCommand creates the formats command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "formats",
		Aliases: []string{"sources"},
		GroupID: "core",
		Short:   "List supported content formats",
		Long: `Formats lists every content source relay can adapt together with the
text its adapter produces.`,
		Example: `  relay formats
  relay formats -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			format := output.DetectFormat(string(parsed))

			infos, err := List()
			if err != nil {
				return err
			}
			logger := logging.FromContextOr(cmd.Context(), app.Logger())
			logger.Debug().Int("count", len(infos)).Str("format", string(format)).Msg("Listing formats")

			return output.NewFormatter(format).Format(app.Stdout(), render(infos, format))
		},
	}
}

// List describes every known source kind in canonical order.
func List() ([]Info, error) {
	infos := make([]Info, 0, len(sources.Kinds()))
	for _, kind := range sources.Kinds() {
		a, err := adapter.NewFromKind(kind.String())
		if err != nil {
			return nil, errors.WrapResource("create", "adapter", kind.String(), err)
		}
		infos = append(infos, Info{
			Kind:    kind.String(),
			Source:  sourceName(kind),
			Content: a.Content(),
		})
	}
	return infos, nil
}

// sourceName returns the bare type name of the source behind kind.
func sourceName(kind sources.Kind) string {
	src, err := sources.New(kind)
	if err != nil {
		return ""
	}
	name := fmt.Sprintf("%T", src)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func render(infos []Info, format output.Format) any {
	if format != output.FormatTable {
		return infos
	}
	data := output.Data{Headers: []string{"Kind", "Source", "Content"}}
	for _, info := range infos {
		data.Rows = append(data.Rows, []string{info.Kind, info.Source, info.Content})
	}
	return data
}
