package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Features int      `json:"features"`
	Rows     [][]int  `json:"rows"`
	Labels   []string `json:"labels,omitempty"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecs_Agree(t *testing.T) {
	data := []byte(`{"features":3,"rows":[[1,0,1],[0,1,0]],"labels":["a","b"]}`)

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var d doc
			require.NoError(t, c.Unmarshal(data, &d))
			assert.Equal(t, 3, d.Features)
			assert.Equal(t, [][]int{{1, 0, 1}, {0, 1, 0}}, d.Rows)
			assert.Equal(t, []string{"a", "b"}, d.Labels)
		})
	}
}

func TestMustMarshal(t *testing.T) {
	b := MustMarshal(nil, map[string]int{"features": 2})
	assert.JSONEq(t, `{"features":2}`, string(b))

	assert.Panics(t, func() { MustMarshal(JSON{}, func() {}) })
}

func TestCodecs_Strict(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var d doc
			assert.Error(t, c.Unmarshal([]byte(`{"feature":3,"rows":[]}`), &d), "unknown field")

			err := c.Unmarshal([]byte(`{"features":1,"rows":[[1]]} {"features":2}`), &d)
			assert.ErrorIs(t, err, ErrStrict)

			require.NoError(t, c.Unmarshal([]byte(" {\"features\":1,\"rows\":[[1]]}\n"), &d))
			assert.Equal(t, 1, d.Features)
		})
	}
}
