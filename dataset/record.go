package dataset

import (
	"fmt"
	"sort"
)

// Record is one item of a tabular source such as a database table.
type Record struct {
	Item     int
	Features string
	Label    string
}

// FromRecords builds a matrix from records in ascending Item order. Item
// numbers must be unique; gaps are allowed.
func FromRecords(records []Record) (*Matrix, error) {
	if len(records) == 0 {
		return nil, &ParseError{Reason: "no rows"}
	}

	sorted := append([]Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Item < sorted[j].Item })

	m := &Matrix{Rows: make([][]uint8, len(sorted))}
	labels := make([]string, len(sorted))
	labeled := false

	for i, rec := range sorted {
		if i > 0 && rec.Item == sorted[i-1].Item {
			return nil, &ParseError{Reason: fmt.Sprintf("duplicate item %d", rec.Item)}
		}

		row, err := ParseRow(rec.Features)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", rec.Item, err)
		}
		if m.Features == 0 {
			m.Features = len(row)
		} else if len(row) != m.Features {
			return nil, &ParseError{Reason: fmt.Sprintf("item %d: %d values, want %d", rec.Item, len(row), m.Features)}
		}

		m.Rows[i] = row
		labels[i] = rec.Label
		if rec.Label != "" {
			labeled = true
		}
	}

	if labeled {
		m.Labels = labels
	}
	return m, nil
}
