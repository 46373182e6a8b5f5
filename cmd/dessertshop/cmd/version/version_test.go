package version

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dessertshop/internal/appcontext"
)

func TestVersionText(t *testing.T) {
	app := &appcontext.Mock{VersionFunc: func() string { return "1.2.3" }}

	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "dessertshop 1.2.3")
	assert.Contains(t, out.String(), "commit:   unknown")
}

func TestVersionJSON(t *testing.T) {
	app := &appcontext.Mock{
		VersionFunc:      func() string { return "1.2.3" },
		OutputFormatFunc: func() string { return "json" },
	}

	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	var info Info
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
}
