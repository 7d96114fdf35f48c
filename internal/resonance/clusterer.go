package resonance

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/artgo/internal/prototype"
)

// ErrInvalidConfig is returned by New for out-of-range parameters.
var ErrInvalidConfig = errors.New("resonance: invalid config")

// Config holds the tunable parameters of a run.
type Config struct {
	// Vigilance is ρ in [0, 1).
	Vigilance float64

	// Beta is the small positive, finite constant β.
	Beta float64

	// MaxPasses is the pass budget K. The clusterer never runs pass K+1.
	MaxPasses int

	// CheckInvariants verifies the whole table after every membership change.
	CheckInvariants bool

	// OnPass is called after every completed pass. Optional.
	OnPass func(PassStats)
}

// Validate checks parameter ranges.
func (c Config) Validate() error {
	switch {
	case !(c.Vigilance >= 0 && c.Vigilance < 1):
		return fmt.Errorf("%w: vigilance %v not in [0,1)", ErrInvalidConfig, c.Vigilance)
	case !(c.Beta > 0) || math.IsInf(c.Beta, 1):
		return fmt.Errorf("%w: beta %v must be positive and finite", ErrInvalidConfig, c.Beta)
	case c.MaxPasses < 1:
		return fmt.Errorf("%w: max passes %d must be at least 1", ErrInvalidConfig, c.MaxPasses)
	}
	return nil
}

// PassStats describes one pass.
type PassStats struct {
	Pass       int
	Reassigned int
	Allocated  int
}

// Changes returns the number of membership changes in the pass.
func (p PassStats) Changes() int { return p.Reassigned + p.Allocated }

// Stats summarizes a run.
type Stats struct {
	Passes     int
	Reassigned int
	Allocated  int
	Converged  bool
}

// ItemError reports the item being processed when a pass failed.
type ItemError struct {
	Item int
	Err  error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Item, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// Clusterer drives passes over a prototype table. It is not safe for
// concurrent use.
type Clusterer struct {
	cfg    Config
	table  *prototype.Table
	passes int
}

// New creates a clusterer over table.
func New(cfg Config, table *prototype.Table) (*Clusterer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Clusterer{cfg: cfg, table: table}, nil
}

// Table returns the underlying prototype table.
func (c *Clusterer) Table() *prototype.Table { return c.table }

// Passes returns the number of passes run so far.
func (c *Clusterer) Passes() int { return c.passes }

// Run executes passes until one makes no change or MaxPasses passes have run.
// A budget exhausted without a zero-change pass yields Converged == false and
// a nil error.
func (c *Clusterer) Run() (Stats, error) {
	var st Stats
	for st.Passes < c.cfg.MaxPasses {
		ps, err := c.Pass()
		st.Passes++
		st.Reassigned += ps.Reassigned
		st.Allocated += ps.Allocated
		if err != nil {
			return st, err
		}
		if ps.Changes() == 0 {
			st.Converged = true
			break
		}
	}
	return st, nil
}

// Pass runs one full sweep over all items.
func (c *Clusterer) Pass() (PassStats, error) {
	c.passes++
	ps := PassStats{Pass: c.passes}

	for i := 0; i < c.table.Len(); i++ {
		moved, allocated, err := c.visit(i)
		if err != nil {
			return ps, &ItemError{Item: i, Err: err}
		}
		if moved {
			ps.Reassigned++
		}
		if allocated {
			ps.Allocated++
		}
	}

	if c.cfg.OnPass != nil {
		c.cfg.OnPass(ps)
	}
	return ps, nil
}

func (c *Clusterer) visit(i int) (moved, allocated bool, err error) {
	t := c.table
	v := t.Item(i)
	itemOnes := v.Count()

	for p := 0; p < t.Capacity(); p++ {
		if !t.Active(p) {
			continue
		}

		proto := t.Prototype(p)
		match := v.IntersectionCardinality(proto)
		if !Resonates(match, proto.Count(), itemOnes, t.Features(), c.cfg.Beta) {
			continue
		}
		if !Vigilant(match, itemOnes, c.cfg.Vigilance) {
			continue
		}

		if t.Of(i) == p {
			// Current cluster accepts the item: nothing to do.
			return false, false, nil
		}

		t.Move(i, p)
		if err := c.check(); err != nil {
			return false, false, err
		}
		return true, false, nil
	}

	if t.Of(i) != prototype.Unassigned {
		return false, false, nil
	}

	if _, err := t.Allocate(i); err != nil {
		return false, false, err
	}
	if err := c.check(); err != nil {
		return false, false, err
	}
	return false, true, nil
}

func (c *Clusterer) check() error {
	if !c.cfg.CheckInvariants {
		return nil
	}
	return c.table.Check()
}
