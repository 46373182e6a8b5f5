package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dessertshop/internal/cmd/table"
	"github.com/agentstation/dessertshop/pkg/desserts"
)

func sample() []desserts.Dessert {
	return []desserts.Dessert{
		desserts.New("D001", "Chocolate Cake", "chocolate", 10, 12, true),
		desserts.New("D002", "Lemon Tart", "lemon", 4.5, 3, false),
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"table", "JSON", "yaml", "wide", ""} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestTableFormatterData(t *testing.T) {
	var buf bytes.Buffer
	data := table.Data{
		Headers: []string{"ID", "Name"},
		Rows:    [][]string{{"D001", "Chocolate Cake"}},
	}
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, data))
	out := buf.String()
	assert.Contains(t, out, "D001")
	assert.Contains(t, out, "Chocolate Cake")
}

func TestTableFormatterReflection(t *testing.T) {
	type info struct {
		Version   string `json:"version"`
		BuildDate string `json:"build_date"`
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, info{Version: "1.0.0", BuildDate: "today"}))
	out := strings.ToUpper(buf.String())
	assert.Contains(t, out, "BUILD DATE")
	assert.Contains(t, out, "1.0.0")
}

func TestFormatDessertsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatDesserts(&buf, FormatJSON, sample(), false))

	var got []desserts.Dessert
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample(), got)

	buf.Reset()
	require.NoError(t, FormatDesserts(&buf, FormatJSON, nil, false))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatDessertsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatDesserts(&buf, FormatYAML, sample()[:1], false))
	assert.Contains(t, buf.String(), "id: D001")
	assert.Contains(t, buf.String(), "seasonal: true")
}

func TestFormatDessertsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatDesserts(&buf, FormatWide, sample(), true))
	out := buf.String()
	assert.Contains(t, out, "Lemon Tart")
	assert.Contains(t, out, "$4.50")
}

func TestFormatHistogram(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatHistogram(&buf, FormatJSON, desserts.PriceHistogram{2, 2, 2}))

	var got []desserts.Bucket
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "over $20.00", got[2].Label)
	assert.Equal(t, 2, got[2].Count)
}

func TestFormatDessert(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatDessert(&buf, FormatTable, sample()[0]))
	assert.Contains(t, buf.String(), "12 servings")
}
