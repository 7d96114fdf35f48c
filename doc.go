// Package artgo clusters binary feature vectors with an ART1 (Adaptive
// Resonance Theory) prototype algorithm.
//
// Each item is a row of F binary features, for example the products a
// customer bought. Items are assigned to clusters whose prototype is the
// bitwise AND of all members. Passes over the items repeat until one pass
// changes nothing or the pass budget runs out.
//
// # Quick Start
//
//	eng, _ := artgo.New(11, len(rows))
//	res, err := eng.Assign(rows)
//	if err != nil {
//	    // *artgo.ErrInvalidInput or *artgo.ErrCapacityExceeded
//	}
//	for _, c := range res.Clusters() {
//	    fmt.Println(c.ID, c.Prototype, c.Members)
//	}
//
// # Acceptance
//
// An item v is offered to active clusters in ascending index order. A
// cluster with prototype P accepts v when both
//
//	|v ∧ P| / (β + |P|)  >  |v| / (β + F)      (resonance)
//	|v ∧ P| / |v|        <  ρ                  (vigilance)
//
// hold. The first accepting cluster wins. If it is the item's current
// cluster the item stays; otherwise the item moves and both prototypes are
// recomputed. An item that no cluster accepts and that has no cluster yet
// gets the lowest inactive slot.
//
// Note the vigilance polarity: a higher ρ accepts more. An all-zero row
// never passes vigilance and always ends up alone in its own cluster.
//
// # Order and Determinism
//
// Results depend on row order. The same rows in the same order with the same
// options always give the same result.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Package sweep runs independent
// engines concurrently.
//
// # Packages
//
//   - dataset: input matrices in text or JSON, optionally compressed,
//     loaded from any blobstore.BlobStore
//   - dataset/dynamo, dataset/sqlite: matrices stored as table rows
//   - blobstore: local, in-memory, S3 and MinIO storage for datasets
//   - sweep: concurrent runs over vigilance values or row orders
package artgo
