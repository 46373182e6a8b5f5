package histogram

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/pkg/desserts"
)

func TestHistogram(t *testing.T) {
	var ds []desserts.Dessert
	for i, p := range []float64{5, 10, 10.01, 20, 20.01, 30} {
		ds = append(ds, desserts.New(string(rune('A'+i)), "d", "f", p, 1, false))
	}
	app := appcontext.NewMock(ds...)
	app.OutputFormatFunc = func() string { return "json" }

	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	var buckets []desserts.Bucket
	require.NoError(t, json.Unmarshal(out.Bytes(), &buckets))
	require.Len(t, buckets, 3)
	for _, b := range buckets {
		assert.Equal(t, 2, b.Count, b.Label)
	}
}
