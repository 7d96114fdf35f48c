package prototype

import "github.com/bits-and-blooms/bitset"

// FromRow packs a validated 0/1 row into a bitset of length len(row).
func FromRow(row []uint8) *bitset.BitSet {
	b := bitset.New(uint(len(row)))
	for j, v := range row {
		if v != 0 {
			b.Set(uint(j))
		}
	}
	return b
}

// FromRows packs every row. Rows must already be validated.
func FromRows(rows [][]uint8) []*bitset.BitSet {
	out := make([]*bitset.BitSet, len(rows))
	for i, row := range rows {
		out[i] = FromRow(row)
	}
	return out
}

// ToRow unpacks the first features bits of b into a 0/1 row.
func ToRow(b *bitset.BitSet, features uint) []uint8 {
	row := make([]uint8, features)
	for j := uint(0); j < features; j++ {
		if b.Test(j) {
			row[j] = 1
		}
	}
	return row
}
