// Package dataset reads and writes binary item-by-feature matrices.
//
// Two document formats are supported:
//
// Text, one item per line. Values are either a contiguous 0/1 string or
// separated by commas or whitespace. A label may precede the values,
// terminated by a colon. '#' starts a comment.
//
//	# customer purchases
//	alice: 00000100100
//	bob:   0,1,0,0,0,0,0,1,0,0,1
//
// JSON, decoded with the codec package:
//
//	{"features": 11, "rows": [[0,0,0,0,0,1,0,0,1,0,0]], "labels": ["alice"]}
//
// Either format may be compressed with gzip, zstd or LZ4 (frame format);
// compression is detected from the leading magic bytes.
//
// Load reads a document from any blobstore.BlobStore:
//
//	m, err := dataset.Load(ctx, blobstore.NewLocalStore("testdata"), "purchases.txt.zst")
//	eng, _ := artgo.New(m.Features, m.Len())
//	res, err := eng.Assign(m.Rows)
package dataset
