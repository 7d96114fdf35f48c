package dataset

import (
	"fmt"

	"github.com/hupe1980/artgo"
	"github.com/hupe1980/artgo/codec"
)

// document is the JSON shape. Rows are ints because []uint8 marshals as
// base64.
type document struct {
	Features int      `json:"features"`
	Rows     [][]int  `json:"rows"`
	Labels   []string `json:"labels,omitempty"`
}

// ParseJSON decodes a JSON document with c (codec.Default when nil).
// A missing "features" is taken from the first row.
func ParseJSON(data []byte, c codec.Codec) (*Matrix, error) {
	if c == nil {
		c = codec.Default
	}

	var doc document
	if err := c.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("%s: %v", c.Name(), err)}
	}

	m := &Matrix{Features: doc.Features, Labels: doc.Labels, Rows: make([][]uint8, len(doc.Rows))}
	if m.Features == 0 && len(doc.Rows) > 0 {
		m.Features = len(doc.Rows[0])
	}

	for i, src := range doc.Rows {
		row := make([]uint8, len(src))
		for j, v := range src {
			if v != 0 && v != 1 {
				return nil, &artgo.ErrInvalidInput{Row: i, Column: j, Reason: fmt.Sprintf("value %d is not binary", v)}
			}
			row[j] = uint8(v)
		}
		m.Rows[i] = row
	}
	return m, nil
}

// MarshalJSON encodes m as a JSON document with c (codec.Default when nil).
func MarshalJSON(m *Matrix, c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}

	doc := document{Features: m.Features, Labels: m.Labels, Rows: make([][]int, len(m.Rows))}
	for i, row := range m.Rows {
		doc.Rows[i] = make([]int, len(row))
		for j, v := range row {
			doc.Rows[i][j] = int(v)
		}
	}
	return c.Marshal(doc)
}
