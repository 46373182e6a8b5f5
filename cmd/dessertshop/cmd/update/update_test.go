package update

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/pkg/desserts"
	"github.com/agentstation/dessertshop/pkg/errors"
)

func TestUpdate(t *testing.T) {
	app := appcontext.NewMock(
		desserts.New("D001", "Cake", "vanilla", 5, 1, false),
		desserts.New("D002", "Tart", "lemon", 4, 2, false),
	)

	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"D001", "Sponge Cake", "vanilla", "6", "3", "true"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Dessert D001 updated")

	store, _ := app.Store()
	all := store.ToArray()
	assert.Equal(t, desserts.New("D001", "Sponge Cake", "vanilla", 6, 3, true), all[0])
	assert.Equal(t, "D002", all[1].ID)
}

func TestUpdateMissing(t *testing.T) {
	app := appcontext.NewMock()

	cmd := NewCommand(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"D404", "Cake", "vanilla", "6", "3", "no"})
	err := cmd.Execute()
	assert.True(t, errors.IsNotFound(err))
}
