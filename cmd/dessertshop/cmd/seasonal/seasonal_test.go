package seasonal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/pkg/desserts"
)

func TestSeasonal(t *testing.T) {
	app := appcontext.NewMock(
		desserts.New("D001", "Chocolate Cake", "chocolate", 10, 12, true),
		desserts.New("D002", "Lemon Tart", "lemon", 4.5, 3, false),
	)

	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Chocolate Cake")
	assert.NotContains(t, out.String(), "Lemon Tart")
}

func TestSeasonalNone(t *testing.T) {
	cmd := NewCommand(appcontext.NewMock())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "No seasonal limited desserts available")
}
