package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/artgo"
	"github.com/hupe1980/artgo/codec"
)

func TestParseJSON(t *testing.T) {
	data := []byte(`{"rows":[[1,0,1],[0,1,0]],"labels":["x","y"]}`)

	for _, c := range []codec.Codec{nil, codec.JSON{}, codec.GoJSON{}} {
		m, err := ParseJSON(data, c)
		require.NoError(t, err)
		assert.Equal(t, 3, m.Features)
		assert.Equal(t, [][]uint8{{1, 0, 1}, {0, 1, 0}}, m.Rows)
		assert.Equal(t, []string{"x", "y"}, m.Labels)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := ParseJSON([]byte(`{"rows":[[1,0],[0,2]]}`), nil)
	var ie *artgo.ErrInvalidInput
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 1, ie.Row)
	assert.Equal(t, 1, ie.Column)

	_, err = ParseJSON([]byte(`{"rows":`), nil)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestMarshalJSON_RoundTrip(t *testing.T) {
	m := Purchases()

	data, err := MarshalJSON(m, nil)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"features":11`)
	assert.NotContains(t, string(data), "labels")

	got, err := ParseJSON(data, codec.JSON{})
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestParseJSON_UnknownField(t *testing.T) {
	_, err := ParseJSON([]byte(`{"feature":2,"rows":[[1,0]]}`), nil)
	assert.ErrorIs(t, err, ErrFormat)
}
