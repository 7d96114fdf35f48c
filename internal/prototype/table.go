package prototype

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// Unassigned marks an item that has no cluster yet.
const Unassigned = -1

var (
	// ErrCapacityExceeded is returned by Allocate when every slot is active.
	ErrCapacityExceeded = errors.New("prototype: capacity exceeded")

	// ErrInvariant is wrapped by Check when the table is inconsistent.
	ErrInvariant = errors.New("prototype: invariant violated")
)

type slot struct {
	bits    *bitset.BitSet
	members *roaring.Bitmap
	count   int
}

// Table is the prototype slot table. It is not safe for concurrent use.
type Table struct {
	features   uint
	items      []*bitset.BitSet
	slots      []slot
	membership []int
}

// New creates a table with capacity slots for the given items.
// All slots start inactive and all items unassigned.
func New(capacity int, features uint, items []*bitset.BitSet) *Table {
	slots := make([]slot, capacity)
	for c := range slots {
		slots[c] = slot{
			bits:    bitset.New(features),
			members: roaring.New(),
		}
	}

	membership := make([]int, len(items))
	for i := range membership {
		membership[i] = Unassigned
	}

	return &Table{
		features:   features,
		items:      items,
		slots:      slots,
		membership: membership,
	}
}

// Capacity returns the number of slots.
func (t *Table) Capacity() int { return len(t.slots) }

// Features returns the vector length F.
func (t *Table) Features() uint { return t.features }

// Len returns the number of items.
func (t *Table) Len() int { return len(t.items) }

// Item returns the feature vector of item i.
func (t *Table) Item(i int) *bitset.BitSet { return t.items[i] }

// Of returns the cluster of item i, or Unassigned.
func (t *Table) Of(i int) int { return t.membership[i] }

// Active reports whether cluster c has at least one member.
func (t *Table) Active(c int) bool { return t.slots[c].count > 0 }

// Count returns the member count of cluster c.
func (t *Table) Count(c int) int { return t.slots[c].count }

// Prototype returns the prototype bits of cluster c.
// The returned bitset is owned by the table and must not be modified.
func (t *Table) Prototype(c int) *bitset.BitSet { return t.slots[c].bits }

// Members returns the item indices of cluster c in ascending order.
func (t *Table) Members(c int) []int {
	out := make([]int, 0, t.slots[c].count)
	it := t.slots[c].members.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Membership returns a copy of the membership table.
func (t *Table) Membership() []int {
	out := make([]int, len(t.membership))
	copy(out, t.membership)
	return out
}

// ActiveClusters returns the indices of all active clusters in ascending order.
func (t *Table) ActiveClusters() []int {
	var out []int
	for c := range t.slots {
		if t.slots[c].count > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Counts returns a copy of the per-slot member counts.
func (t *Table) Counts() []int {
	out := make([]int, len(t.slots))
	for c := range t.slots {
		out[c] = t.slots[c].count
	}
	return out
}

// Move reassigns item i to cluster to and returns its previous cluster.
// Both prototypes are recomputed from their member sets. Moving an item to
// the cluster it already belongs to is a no-op.
func (t *Table) Move(i, to int) int {
	old := t.membership[i]
	if old == to {
		return old
	}

	t.membership[i] = to
	t.slots[to].members.Add(uint32(i))
	t.slots[to].count++

	if old != Unassigned {
		t.slots[old].members.Remove(uint32(i))
		t.slots[old].count--
		t.Recompute(old)
	}
	t.Recompute(to)

	return old
}

// Allocate places item i into the lowest-index inactive slot and
// initializes the prototype to the item's vector.
// It returns ErrCapacityExceeded if every slot is active.
func (t *Table) Allocate(i int) (int, error) {
	c := t.firstInactive()
	if c < 0 {
		return Unassigned, ErrCapacityExceeded
	}

	if old := t.membership[i]; old != Unassigned {
		t.slots[old].members.Remove(uint32(i))
		t.slots[old].count--
		t.Recompute(old)
	}

	s := &t.slots[c]
	s.bits = t.items[i].Clone()
	s.members.Clear()
	s.members.Add(uint32(i))
	s.count = 1
	t.membership[i] = c

	return c, nil
}

func (t *Table) firstInactive() int {
	for c := range t.slots {
		if t.slots[c].count == 0 {
			return c
		}
	}
	return -1
}

// Recompute rebuilds the prototype of cluster c as the AND of its members.
// Recomputing an empty cluster leaves its bits untouched.
func (t *Table) Recompute(c int) {
	s := &t.slots[c]
	if s.members.IsEmpty() {
		return
	}

	var proto *bitset.BitSet
	s.members.Iterate(func(i uint32) bool {
		if proto == nil {
			proto = t.items[i].Clone()
			return true
		}
		proto.InPlaceIntersection(t.items[i])
		return true
	})
	s.bits = proto
}

// Check verifies every table invariant from scratch:
//   - member counts equal the membership-table tallies
//   - member sets agree with the membership table
//   - each active prototype equals the AND of its members
func (t *Table) Check() error {
	tally := make([]int, len(t.slots))
	for i, c := range t.membership {
		if c == Unassigned {
			continue
		}
		if c < 0 || c >= len(t.slots) {
			return fmt.Errorf("%w: item %d assigned to cluster %d out of range", ErrInvariant, i, c)
		}
		if !t.slots[c].members.Contains(uint32(i)) {
			return fmt.Errorf("%w: item %d missing from cluster %d member set", ErrInvariant, i, c)
		}
		tally[c]++
	}

	for c := range t.slots {
		s := &t.slots[c]
		if s.count != tally[c] {
			return fmt.Errorf("%w: cluster %d count %d, membership table has %d", ErrInvariant, c, s.count, tally[c])
		}
		if int(s.members.GetCardinality()) != tally[c] {
			return fmt.Errorf("%w: cluster %d member set has %d entries, membership table has %d",
				ErrInvariant, c, s.members.GetCardinality(), tally[c])
		}
		if s.count == 0 {
			continue
		}

		var want *bitset.BitSet
		s.members.Iterate(func(i uint32) bool {
			if want == nil {
				want = t.items[i].Clone()
			} else {
				want.InPlaceIntersection(t.items[i])
			}
			return true
		})
		if !want.Equal(s.bits) {
			return fmt.Errorf("%w: cluster %d prototype %s, want %s", ErrInvariant, c, s.bits, want)
		}
	}

	return nil
}
