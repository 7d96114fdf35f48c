// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	)
//
//	m, err := dataset.Load(ctx, store, "purchases.txt.zst")
//
// # Features
//
//   - Range reads for partial fetches
//   - Parallel ranged downloads for whole-blob reads
//   - CRC32C-checked single PUTs for small blobs, multipart above PartSize
//   - Automatic pagination for listing
package s3
