package formats

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/relay/cmd/application"
	"github.com/agentstation/relay/pkg/errors"
	"github.com/agentstation/relay/pkg/logging"
)

var expected = []Info{
	{Kind: "txt", Source: "TextFile", Content: "Дані з TXT файлу"},
	{Kind: "json", Source: "JSONFile", Content: `{ "message": "Дані з JSON файлу" }`},
	{Kind: "xml", Source: "XMLFile", Content: "<message>Дані з XML файлу</message>"},
}

func run(t *testing.T, format string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := &application.Mock{
		StdoutFunc:       func() io.Writer { return &out },
		OutputFormatFunc: func() string { return format },
	}
	cmd := NewCommand(app)
	cmd.SetArgs(nil)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	infos, err := List()
	require.NoError(t, err)
	assert.Equal(t, expected, infos)
}

func TestFormatsCommand_JSON(t *testing.T) {
	out, err := run(t, "json")
	require.NoError(t, err)

	var infos []Info
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	assert.Equal(t, expected, infos)
}

func TestFormatsCommand_YAML(t *testing.T) {
	out, err := run(t, "yaml")
	require.NoError(t, err)

	var infos []Info
	require.NoError(t, yaml.Unmarshal([]byte(out), &infos))
	assert.Equal(t, expected, infos)
}

func TestFormatsCommand_Table(t *testing.T) {
	out, err := run(t, "table")
	require.NoError(t, err)

	for _, info := range expected {
		assert.Contains(t, out, info.Source)
	}
	assert.Contains(t, out, "Дані з TXT файлу")
}

func TestFormatsCommand_InvalidFormat(t *testing.T) {
	out, err := run(t, "csv")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, out)
}

func TestFormatsCommand_UsesContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithCommand(logging.WithLogger(context.Background(), tl.Logger), "formats")

	cmd := NewCommand(&application.Mock{
		StdoutFunc:       func() io.Writer { return io.Discard },
		OutputFormatFunc: func() string { return "json" },
	})
	cmd.SetArgs(nil)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	require.NoError(t, cmd.ExecuteContext(ctx))

	assert.True(t, tl.ContainsAll(`"command":"formats"`, "Listing formats", `"count":3`), tl.Output())
}
