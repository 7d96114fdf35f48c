package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/artgo"
)

func TestPurchases(t *testing.T) {
	m := Purchases()
	require.NoError(t, m.Validate())
	assert.Equal(t, 14, m.Len())
	assert.Equal(t, 11, m.Features)
	assert.Nil(t, m.Labels)
	assert.Equal(t, "3", m.Label(3))

	// Each call returns a fresh copy.
	m.Rows[0][0] = 1
	assert.Equal(t, uint8(0), Purchases().Rows[0][0])
}

func TestMatrix_Validate(t *testing.T) {
	tests := []struct {
		name string
		m    *Matrix
		row  int
	}{
		{"NoFeatures", &Matrix{}, -1},
		{"LabelCount", &Matrix{Features: 2, Rows: [][]uint8{{1, 0}}, Labels: []string{"a", "b"}}, -1},
		{"ShortRow", &Matrix{Features: 2, Rows: [][]uint8{{1, 0}, {1}}}, 1},
		{"NonBinary", &Matrix{Features: 2, Rows: [][]uint8{{3, 0}}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ie *artgo.ErrInvalidInput
			require.ErrorAs(t, tt.m.Validate(), &ie)
			assert.Equal(t, tt.row, ie.Row)
		})
	}
}

func TestMatrix_Clone(t *testing.T) {
	m := &Matrix{Features: 2, Rows: [][]uint8{{1, 0}, {0, 1}}, Labels: []string{"a", "b"}}
	c := m.Clone()
	assert.Equal(t, m, c)

	c.Rows[0][0] = 0
	c.Labels[0] = "z"
	assert.Equal(t, uint8(1), m.Rows[0][0])
	assert.Equal(t, "a", m.Labels[0])
}

func TestMatrix_Permute(t *testing.T) {
	m := &Matrix{Features: 2, Rows: [][]uint8{{1, 0}, {0, 1}, {1, 1}}, Labels: []string{"a", "b", "c"}}

	p, err := m.Permute([]int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{{1, 1}, {1, 0}, {0, 1}}, p.Rows)
	assert.Equal(t, []string{"c", "a", "b"}, p.Labels)
	assert.Equal(t, "c", p.Label(0))

	for _, bad := range [][]int{{0, 1}, {0, 0, 1}, {0, 1, 3}, {-1, 0, 1}} {
		_, err := m.Permute(bad)
		assert.ErrorIs(t, err, ErrPermutation, "%v", bad)
	}
}

func TestMatrix_Fingerprint(t *testing.T) {
	m := Purchases()
	assert.Equal(t, m.Fingerprint(), Purchases().Fingerprint())

	p, err := m.Permute([]int{1, 0, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13})
	require.NoError(t, err)
	assert.NotEqual(t, m.Fingerprint(), p.Fingerprint())

	m.Labels = make([]string, m.Len())
	assert.Equal(t, Purchases().Fingerprint(), m.Fingerprint())
}
