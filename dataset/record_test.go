package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecords(t *testing.T) {
	m, err := FromRecords([]Record{
		{Item: 7, Features: "011"},
		{Item: 2, Features: "1 0 1", Label: "alice"},
		{Item: 4, Features: "000"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, m.Features)
	assert.Equal(t, [][]uint8{{1, 0, 1}, {0, 0, 0}, {0, 1, 1}}, m.Rows)
	assert.Equal(t, []string{"alice", "", ""}, m.Labels)
	assert.Equal(t, "1", m.Label(1))
}

func TestFromRecords_Unlabeled(t *testing.T) {
	m, err := FromRecords([]Record{{Item: 0, Features: "1"}, {Item: 1, Features: "0"}})
	require.NoError(t, err)
	assert.Nil(t, m.Labels)
}

func TestFromRecords_Errors(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
	}{
		{"Empty", nil},
		{"Duplicate", []Record{{Item: 1, Features: "1"}, {Item: 1, Features: "0"}}},
		{"Ragged", []Record{{Item: 0, Features: "10"}, {Item: 1, Features: "1"}}},
		{"NotBinary", []Record{{Item: 0, Features: "12"}}},
		{"Blank", []Record{{Item: 0, Features: "  "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRecords(tt.records)
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}
