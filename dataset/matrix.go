package dataset

import (
	"fmt"
	"strconv"

	"github.com/hupe1980/artgo"
	"github.com/hupe1980/artgo/internal/hash"
)

// Matrix is a set of items, each a row of Features binary values.
type Matrix struct {
	Features int
	Rows     [][]uint8

	// Labels optionally names each item. It is nil or has one entry per row.
	Labels []string
}

// Len returns the number of items.
func (m *Matrix) Len() int { return len(m.Rows) }

// Label returns the label of item i, or its index when unlabeled.
func (m *Matrix) Label(i int) string {
	if i < len(m.Labels) && m.Labels[i] != "" {
		return m.Labels[i]
	}
	return strconv.Itoa(i)
}

// Validate checks the shape and values. It returns *artgo.ErrInvalidInput.
func (m *Matrix) Validate() error {
	if m.Features < 1 {
		return &artgo.ErrInvalidInput{Row: -1, Column: -1, Reason: fmt.Sprintf("features = %d, want at least 1", m.Features)}
	}
	if m.Labels != nil && len(m.Labels) != len(m.Rows) {
		return &artgo.ErrInvalidInput{Row: -1, Column: -1, Reason: fmt.Sprintf("%d labels for %d rows", len(m.Labels), len(m.Rows))}
	}
	return artgo.ValidateRows(m.Rows, m.Features)
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		Features: m.Features,
		Rows:     make([][]uint8, len(m.Rows)),
	}
	for i, row := range m.Rows {
		out.Rows[i] = append([]uint8(nil), row...)
	}
	if m.Labels != nil {
		out.Labels = append([]string(nil), m.Labels...)
	}
	return out
}

// Permute returns a matrix whose item k is item perm[k] of m. Rows are
// shared with m.
func (m *Matrix) Permute(perm []int) (*Matrix, error) {
	if len(perm) != len(m.Rows) {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrPermutation, len(perm), len(m.Rows))
	}

	seen := make([]bool, len(perm))
	out := &Matrix{Features: m.Features, Rows: make([][]uint8, len(perm))}
	if m.Labels != nil {
		out.Labels = make([]string, len(perm))
	}

	for k, i := range perm {
		if i < 0 || i >= len(perm) || seen[i] {
			return nil, fmt.Errorf("%w: index %d at position %d", ErrPermutation, i, k)
		}
		seen[i] = true
		out.Rows[k] = m.Rows[i]
		if m.Labels != nil {
			out.Labels[k] = m.Labels[i]
		}
	}
	return out, nil
}

// Fingerprint returns a CRC32C over the rows in order. Labels are ignored.
func (m *Matrix) Fingerprint() uint32 {
	return hash.Rows(m.Rows)
}
