// Package prototype holds the cluster slots of the ART1 engine.
//
// A Table owns a fixed number of prototype slots and the item membership
// table. Each slot keeps:
//
//   - the prototype bits (bits-and-blooms bitset, length F)
//   - the member set (Roaring bitmap of item indices)
//   - an incrementally maintained member count
//
// A slot is active iff its count is non-zero. The prototype of an active
// slot is always the bitwise AND of its members' feature vectors; every
// membership change recomputes the affected prototypes before returning.
//
// Item vectors are referenced, never copied or mutated.
package prototype
