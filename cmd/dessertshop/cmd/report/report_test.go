package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/pkg/desserts"
)

func TestReportStdout(t *testing.T) {
	app := appcontext.NewMock(desserts.New("D001", "Chocolate Cake", "chocolate", 10, 12, true))

	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--title", "Stock Take"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "# Stock Take")
	assert.Contains(t, out.String(), "Chocolate Cake")
}

func TestReportFile(t *testing.T) {
	app := appcontext.NewMock(desserts.New("D001", "Chocolate Cake", "chocolate", 10, 12, true))
	path := filepath.Join(t.TempDir(), "inventory.md")

	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--out", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Report written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Dessert Inventory Report")
}
