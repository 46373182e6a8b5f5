package add

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/pkg/desserts"
	"github.com/agentstation/dessertshop/pkg/errors"
)

func execute(app appcontext.Interface, args ...string) (string, error) {
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAdd(t *testing.T) {
	app := appcontext.NewMock()

	out, err := execute(app, "D001", "Chocolate Cake", "chocolate", "12.50", "8", "yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Dessert D001 added")

	store, _ := app.Store()
	got, ok := store.FindByID("D001")
	require.True(t, ok)
	assert.Equal(t, desserts.New("D001", "Chocolate Cake", "chocolate", 12.5, 8, true), got)
}

func TestAddRejected(t *testing.T) {
	app := appcontext.NewMock(desserts.New("D001", "Cake", "vanilla", 5, 1, false))

	_, err := execute(app, "D001", "Tart", "lemon", "4", "2", "no")
	assert.True(t, errors.IsAlreadyExists(err))

	_, err = execute(app, "D002", "Tart", "lemon", "-4", "2", "no")
	assert.True(t, errors.IsValidationError(err))

	_, err = execute(app, "D002", "Tart")
	assert.Error(t, err)

	store, _ := app.Store()
	assert.Equal(t, 1, store.Len())
}
