package get

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/pkg/desserts"
	"github.com/agentstation/dessertshop/pkg/errors"
)

func TestGet(t *testing.T) {
	app := appcontext.NewMock(desserts.New("D001", "Chocolate Cake", "chocolate", 10, 12, true))
	app.OutputFormatFunc = func() string { return "yaml" }

	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"D001"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "name: Chocolate Cake")

	cmd = NewCommand(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"D002"})
	assert.True(t, errors.IsNotFound(cmd.Execute()))
}
