package hash

import (
	"hash"
	"hash/crc32"
)

// crc32cTable is pre-computed for CRC32-Castagnoli polynomial.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
// Uses hardware acceleration when available (SSE4.2, ARM CRC).
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// NewCRC32C returns a new CRC32-Castagnoli hash.Hash32.
func NewCRC32C() hash.Hash32 {
	return crc32.New(crc32cTable)
}

// rowSeparator never occurs in a binary row.
var rowSeparator = []byte{0xFF}

// Rows fingerprints a binary matrix. Rows are hashed in order with a
// separator after each, so the same values in a different shape or order
// give a different sum.
func Rows(rows [][]uint8) uint32 {
	h := NewCRC32C()
	for _, row := range rows {
		_, _ = h.Write(row)
		_, _ = h.Write(rowSeparator)
	}
	return h.Sum32()
}
