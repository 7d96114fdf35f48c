package artgo

import (
	"fmt"
	"sort"

	"github.com/hupe1980/artgo/internal/prototype"
)

// Unassigned marks an item without a cluster. It never appears in the
// membership of a successful Result.
const Unassigned = prototype.Unassigned

// Result is the outcome of Assign or Step.
//
// All slices and maps are owned by the Result; later engine calls do not
// modify them.
type Result struct {
	// Membership maps item index to cluster index.
	Membership []int

	// Prototypes maps each active cluster index to its prototype row.
	Prototypes map[int][]uint8

	// Counts holds the member count of every slot, active or not.
	Counts []int

	// Passes is the number of passes run since Assign started.
	Passes int

	// Reassignments counts moves of items into existing clusters.
	Reassignments int

	// Allocations counts new clusters created.
	Allocations int

	// Converged is true when the last pass made no change.
	Converged bool
}

// Cluster is one active cluster with its members.
type Cluster struct {
	ID        int
	Prototype []uint8
	Members   []int
}

// NumClusters returns the number of active clusters.
func (r *Result) NumClusters() int {
	return len(r.Prototypes)
}

// Clusters returns the active clusters in ascending ID order, each with its
// members in item order.
func (r *Result) Clusters() []Cluster {
	ids := make([]int, 0, len(r.Prototypes))
	for id := range r.Prototypes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	byID := make(map[int]int, len(ids))
	out := make([]Cluster, len(ids))
	for k, id := range ids {
		byID[id] = k
		out[k] = Cluster{ID: id, Prototype: r.Prototypes[id]}
	}
	for item, c := range r.Membership {
		if k, ok := byID[c]; ok {
			out[k].Members = append(out[k].Members, item)
		}
	}
	return out
}

// Err returns nil for a converged result and an error wrapping
// ErrNotConverged otherwise.
func (r *Result) Err() error {
	if r.Converged {
		return nil
	}
	return fmt.Errorf("%w after %d passes", ErrNotConverged, r.Passes)
}

func snapshot(tbl *prototype.Table) *Result {
	res := &Result{
		Membership: tbl.Membership(),
		Prototypes: make(map[int][]uint8),
		Counts:     tbl.Counts(),
	}
	for _, c := range tbl.ActiveClusters() {
		res.Prototypes[c] = prototype.ToRow(tbl.Prototype(c), tbl.Features())
	}
	return res
}
