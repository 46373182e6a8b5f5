package alerts

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dessertshop/internal/cmd/output"
	pkgerrors "github.com/agentstation/dessertshop/pkg/errors"
)

func TestForMutation(t *testing.T) {
	ok := ForMutation("added", "D001", nil)
	assert.Equal(t, LevelSuccess, ok.Level)
	assert.Equal(t, "✓ Dessert D001 added", ok.String())

	warn := ForMutation("added", "D001", pkgerrors.NewWriteError("x.yaml", errors.New("disk full")))
	assert.Equal(t, LevelWarning, warn.Level)
	assert.NotEmpty(t, warn.Details)

	rejected := ForMutation("deleted", "D009", pkgerrors.NewNotFoundError("dessert", "D009"))
	assert.Equal(t, LevelError, rejected.Level)
	assert.Equal(t, "✗ Dessert D009 not deleted: dessert with ID D009 not found", rejected.String())
}

func TestFormatWriterPlain(t *testing.T) {
	var buf bytes.Buffer
	fw := NewFormatWriter(&buf, output.FormatTable)

	require.NoError(t, fw.WriteAlert(NewInfo("No desserts found").WithDetails("Try another keyword.")))
	assert.Equal(t, "i No desserts found\n   Try another keyword.\n", buf.String())
}

func TestFormatWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	fw := NewFormatWriter(&buf, output.FormatJSON)

	require.NoError(t, fw.WriteAlert(NewError("Dessert D001 not added").WithError(errors.New("boom"))))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "error", got["level"])
	assert.Equal(t, "boom", got["error"])
}

func TestFormatWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	fw := NewFormatWriter(&buf, output.FormatYAML)

	require.NoError(t, fw.WriteAlert(NewSuccess("Dessert D001 added")))
	assert.Contains(t, buf.String(), "level: success")
	assert.Contains(t, buf.String(), "message: Dessert D001 added")
}
