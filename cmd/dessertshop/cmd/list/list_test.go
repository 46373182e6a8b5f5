package list

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/pkg/desserts"
)

func execute(t *testing.T, app appcontext.Interface, args ...string) string {
	t.Helper()
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{}, args...))
	require.NoError(t, cmd.Execute())
	return out.String()
}

func sample() []desserts.Dessert {
	return []desserts.Dessert{
		desserts.New("D001", "Chocolate Cake", "chocolate", 10, 12, true),
		desserts.New("D002", "Lemon Tart", "lemon", 4.5, 3, false),
	}
}

func TestListTable(t *testing.T) {
	out := execute(t, appcontext.NewMock(sample()...))
	assert.Contains(t, out, "Chocolate Cake")
	assert.Contains(t, out, "Lemon Tart")
}

func TestListJSON(t *testing.T) {
	app := appcontext.NewMock(sample()...)
	app.OutputFormatFunc = func() string { return "json" }

	var got []desserts.Dessert
	require.NoError(t, json.Unmarshal([]byte(execute(t, app)), &got))
	assert.Equal(t, sample(), got)
}

func TestListEmpty(t *testing.T) {
	out := execute(t, appcontext.NewMock())
	assert.Contains(t, out, "No dessert data available")
}

func TestListIndexed(t *testing.T) {
	out := execute(t, appcontext.NewMock(sample()...), "--indexed")
	assert.Contains(t, out, "Lemon Tart")
	assert.Contains(t, out, "#")
}
