package version

import (
	"bytes"
	"io"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/relay/cmd/application"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	app := &application.Mock{
		StdoutFunc:  func() io.Writer { return &out },
		VersionFunc: func() string { return "1.2.3" },
		CommitFunc:  func() string { return "abc123" },
	}

	cmd := NewCommand(app)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "relay version 1.2.3\n")
	assert.Contains(t, out.String(), "commit: abc123\n")
	assert.Contains(t, out.String(), "built: unknown\n")
	assert.Contains(t, out.String(), "built by: test\n")
	assert.Contains(t, out.String(), "go version: "+runtime.Version()+"\n")
}
