package menu

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dessertshop/pkg/desserts"
)

func run(t *testing.T, store Store, script ...string) string {
	t.Helper()
	var out bytes.Buffer
	m := New(store, strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	require.NoError(t, m.Run(context.Background()))
	return out.String()
}

func TestAddWithReprompts(t *testing.T) {
	store := desserts.NewStore()
	out := run(t, store,
		"1",
		"D001",
		"Chocolate Cake",
		"chocolate",
		"cheap", // rejected
		"-2",    // rejected
		"10.5",
		"1.5", // rejected
		"12",
		"maybe", // rejected
		"YES",
		"10",
	)

	got, ok := store.FindByID("D001")
	require.True(t, ok)
	assert.Equal(t, desserts.New("D001", "Chocolate Cake", "chocolate", 10.5, 12, true), got)

	assert.Contains(t, out, "Invalid price: must be a number")
	assert.Contains(t, out, "Invalid price: cannot be negative")
	assert.Contains(t, out, "Invalid stock: must be a whole number")
	assert.Contains(t, out, "Invalid seasonal: must be yes or no")
	assert.Contains(t, out, "Dessert D001 added")
	assert.Contains(t, out, "Exiting system!")
}

func TestAddDuplicate(t *testing.T) {
	store := desserts.NewStore(desserts.WithDesserts(desserts.New("D001", "Cake", "vanilla", 5, 1, false)))
	out := run(t, store, "1", "D001", "Tart", "lemon", "4", "2", "no")

	assert.Contains(t, out, "Dessert D001 not added")
	got, _ := store.FindByID("D001")
	assert.Equal(t, "Cake", got.Name)
}

func TestUpdate(t *testing.T) {
	store := desserts.NewStore(desserts.WithDesserts(
		desserts.New("D001", "Cake", "vanilla", 5, 1, false),
		desserts.New("D002", "Tart", "lemon", 4, 2, false),
	))

	out := run(t, store, "2", "D002", "Lemon Tart", "lemon", "6.25", "3", "yes")
	assert.Contains(t, out, "Current Dessert Info:")
	assert.Contains(t, out, "Dessert D002 updated")

	all := store.ToArray()
	assert.Equal(t, "D001", all[0].ID)
	assert.Equal(t, desserts.New("D002", "Lemon Tart", "lemon", 6.25, 3, true), all[1])

	out = run(t, store, "2", "D404")
	assert.Contains(t, out, "Dessert not found")
}

func TestDelete(t *testing.T) {
	store := desserts.NewStore(desserts.WithDesserts(desserts.New("D001", "Cake", "vanilla", 5, 1, false)))

	out := run(t, store, "3", "D001", "3", "D001")
	assert.Contains(t, out, "Dessert D001 deleted")
	assert.Contains(t, out, "Dessert D001 not deleted")
	assert.Equal(t, 0, store.Len())
}

func TestQueries(t *testing.T) {
	store := desserts.NewStore(desserts.WithDesserts(
		desserts.New("D001", "Chocolate Cake", "chocolate", 10, 12, true),
		desserts.New("D002", "Chocolate Mousse", "dark chocolate", 15, 4, false),
		desserts.New("D003", "Lemon Tart", "lemon", 25, 0, true),
	))

	out := run(t, store, "4", "5", "D003", "6", "Chocolate", "7", "8", "9")

	assert.Contains(t, out, "===== Dessert Shop Menu =====")
	assert.Contains(t, out, "Search Result:")
	assert.Contains(t, out, "Found 2 matching desserts:")
	assert.Contains(t, out, "----- Seasonal Limited Desserts -----")
	assert.Contains(t, out, "Array Index 2:")
	assert.Contains(t, out, "Total elements in array: 3")
	assert.Contains(t, out, "over $20.00:")
}

func TestEmptyQueries(t *testing.T) {
	out := run(t, desserts.NewStore(), "4", "6", "x", "7", "8")
	assert.Contains(t, out, "No dessert data available")
	assert.Contains(t, out, "No matching results")
	assert.Contains(t, out, "No seasonal limited desserts available")
	assert.Contains(t, out, "No dessert data available in array")
}

func TestInvalidChoiceAndEOF(t *testing.T) {
	out := run(t, desserts.NewStore(), "0", "abc", "11")
	assert.Equal(t, 3, strings.Count(out, "Invalid choice"))
	assert.NotContains(t, out, "Exiting system!")
}

func TestEOFMidPrompt(t *testing.T) {
	store := desserts.NewStore()
	run(t, store, "1", "D001", "Cake")
	assert.Equal(t, 0, store.Len())
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(desserts.NewStore(), strings.NewReader("4\n"), &bytes.Buffer{})
	err := m.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}
