// Package hash provides CRC32-Castagnoli checksums for S3 upload integrity
// headers and dataset fingerprints.
//
//	checksum := hash.CRC32C(data)
//	fingerprint := hash.Rows(rows)
package hash
