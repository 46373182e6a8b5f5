package validation

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dessertshop/pkg/desserts"
	"github.com/agentstation/dessertshop/pkg/errors"
)

func TestParseText(t *testing.T) {
	v, err := ParseText(FieldName, "  Lemon Tart ")
	require.NoError(t, err)
	assert.Equal(t, "Lemon Tart", v)

	_, err = ParseID("   ")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), FieldID)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"10", 10, false},
		{" 10.01 ", 10.01, false},
		{"$4.50", 4.5, false},
		{"0", 0, false},
		{"-1", 0, true},
		{"ten", 0, true},
		{"", 0, true},
		{"NaN", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStock(t *testing.T) {
	n, err := ParseStock(" 12")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	for _, bad := range []string{"-3", "1.5", "many", ""} {
		_, err := ParseStock(bad)
		assert.True(t, errors.IsValidationError(err), bad)
	}

	_, err = ParseStock("1.5")
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr), "conversion error stays reachable")
	assert.Equal(t, "Atoi", numErr.Func)
	assert.Equal(t, "validation failed for field stock: must be a whole number", err.Error())

	_, err = ParsePrice("ten")
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "ParseFloat", numErr.Func)

	_, err = ParseStock("-3")
	assert.False(t, errors.As(err, &numErr))
}

func TestParseSeasonal(t *testing.T) {
	for _, in := range []string{"yes", "YES", "y", "true", " True "} {
		v, err := ParseSeasonal(in)
		require.NoError(t, err, in)
		assert.True(t, v, in)
	}
	for _, in := range []string{"no", "No", "n", "false"} {
		v, err := ParseSeasonal(in)
		require.NoError(t, err, in)
		assert.False(t, v, in)
	}
	_, err := ParseSeasonal("maybe")
	assert.True(t, errors.IsValidationError(err))
}

func TestParseChoice(t *testing.T) {
	n, err := ParseChoice("10", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	for _, bad := range []string{"0", "11", "x", ""} {
		_, err := ParseChoice(bad, 1, 10)
		assert.Error(t, err, bad)
	}
}

func TestFieldsDessert(t *testing.T) {
	f := Fields{ID: "D001", Name: "Chocolate Cake", Flavor: "chocolate", Price: "10.01", Stock: "12", Seasonal: "yes"}
	d, err := f.Dessert()
	require.NoError(t, err)
	assert.Equal(t, desserts.New("D001", "Chocolate Cake", "chocolate", 10.01, 12, true), d)

	f.Stock = "-1"
	_, err = f.Dessert()
	require.Error(t, err)
	var ve *errors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, FieldStock, ve.Field)
}
