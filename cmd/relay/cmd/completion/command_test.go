package completion

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionCommand(t *testing.T) {
	for _, s := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(s, func(t *testing.T) {
			root := &cobra.Command{Use: "relay"}
			root.AddCommand(&cobra.Command{Use: "run", Run: func(*cobra.Command, []string) {}})
			root.AddCommand(NewCommand())

			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs([]string{"completion", s})

			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), "relay")
		})
	}
}
