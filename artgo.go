package artgo

import (
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/artgo/internal/prototype"
	"github.com/hupe1980/artgo/internal/resonance"
)

// Engine clusters binary feature vectors with the ART1 prototype algorithm.
//
// An Engine owns all of its state and is not safe for concurrent use. Run
// independent jobs on independent engines (see package sweep).
type Engine struct {
	features int
	items    int
	opts     options
	logger   *Logger

	clusterer *resonance.Clusterer
	stats     resonance.Stats
}

// New creates an engine for items rows of features binary values.
func New(features, items int, optFns ...Option) (*Engine, error) {
	o := applyOptions(optFns)

	switch {
	case features < 1:
		return nil, &ErrInvalidConfig{Field: "features", Value: features}
	case items < 0:
		return nil, &ErrInvalidConfig{Field: "items", Value: items}
	case o.capacity < 1:
		return nil, &ErrInvalidConfig{Field: "capacity", Value: o.capacity}
	}

	cfg := resonance.Config{Vigilance: o.vigilance, Beta: o.beta, MaxPasses: o.maxPasses}
	if err := cfg.Validate(); err != nil {
		field, value := "max_passes", any(o.maxPasses)
		switch {
		case !(o.vigilance >= 0 && o.vigilance < 1):
			field, value = "vigilance", o.vigilance
		case !(o.beta > 0) || math.IsInf(o.beta, 1):
			field, value = "beta", o.beta
		}
		return nil, &ErrInvalidConfig{Field: field, Value: value, cause: err}
	}

	return &Engine{
		features: features,
		items:    items,
		opts:     o,
		logger:   o.logger.WithFeatures(features).WithCapacity(o.capacity),
	}, nil
}

// Features returns F.
func (e *Engine) Features() int { return e.features }

// Items returns N.
func (e *Engine) Items() int { return e.items }

// Capacity returns C_max.
func (e *Engine) Capacity() int { return e.opts.capacity }

// Assign clusters rows from scratch and returns the final membership and
// prototypes.
//
// Rows are processed in order and the outcome depends on that order. Assign
// runs passes until one makes no change or the pass budget is spent; in the
// latter case the returned Result has Converged == false and a nil error.
//
// Errors:
//   - *ErrInvalidInput: wrong row count, wrong row length or a value other
//     than 0 and 1. Nothing is processed.
//   - *ErrCapacityExceeded: an item needed a new cluster and every slot was
//     active. No Result is returned.
func (e *Engine) Assign(rows [][]uint8) (*Result, error) {
	start := time.Now()

	res, err := e.assign(rows)

	passes, converged := e.stats.Passes, e.stats.Converged
	e.opts.metricsCollector.RecordAssign(time.Since(start), passes, converged, err)
	e.logger.LogAssign(len(rows), res, err)

	return res, err
}

func (e *Engine) assign(rows [][]uint8) (*Result, error) {
	e.clusterer = nil
	e.stats = resonance.Stats{}

	if len(rows) != e.items {
		return nil, &ErrInvalidInput{
			Row:    -1,
			Column: -1,
			Reason: fmt.Sprintf("got %d rows, engine expects %d", len(rows), e.items),
		}
	}
	if err := ValidateRows(rows, e.features); err != nil {
		return nil, err
	}

	tbl := prototype.New(e.opts.capacity, uint(e.features), prototype.FromRows(rows))
	cl, err := resonance.New(e.config(), tbl)
	if err != nil {
		return nil, err
	}

	st, err := cl.Run()
	e.stats = st
	if err != nil {
		return nil, translateError(err, e.opts.capacity)
	}

	e.clusterer = cl
	return e.result(), nil
}

// Step runs one more pass over the rows of the last successful Assign and
// returns the updated result. Converged reports whether this pass made no
// change. Step is not bounded by the pass budget.
func (e *Engine) Step() (*Result, error) {
	if e.clusterer == nil {
		return nil, ErrNotAssigned
	}

	start := time.Now()
	ps, err := e.clusterer.Pass()

	e.stats.Passes++
	e.stats.Reassigned += ps.Reassigned
	e.stats.Allocated += ps.Allocated
	e.stats.Converged = err == nil && ps.Changes() == 0

	err = translateError(err, e.opts.capacity)
	e.opts.metricsCollector.RecordAssign(time.Since(start), 1, e.stats.Converged, err)
	if err != nil {
		e.clusterer = nil
		e.logger.Error("step failed", "pass", ps.Pass, "error", err)
		return nil, err
	}

	e.logger.Debug("step completed", "pass", ps.Pass, "changes", ps.Changes())
	return e.result(), nil
}

func (e *Engine) config() resonance.Config {
	return resonance.Config{
		Vigilance:       e.opts.vigilance,
		Beta:            e.opts.beta,
		MaxPasses:       e.opts.maxPasses,
		CheckInvariants: e.opts.checkInvariants,
		OnPass: func(ps resonance.PassStats) {
			e.logger.LogPass(ps.Pass, ps.Reassigned, ps.Allocated)
			e.opts.metricsCollector.RecordPass(ps.Reassigned, ps.Allocated)
		},
	}
}

func (e *Engine) result() *Result {
	res := snapshot(e.clusterer.Table())
	res.Passes = e.stats.Passes
	res.Reassignments = e.stats.Reassigned
	res.Allocations = e.stats.Allocated
	res.Converged = e.stats.Converged
	return res
}

// ValidateRows checks that every row has exactly features values, each 0 or 1.
// It returns *ErrInvalidInput for the first offending cell.
func ValidateRows(rows [][]uint8, features int) error {
	for i, row := range rows {
		if len(row) != features {
			return &ErrInvalidInput{
				Row:    i,
				Column: -1,
				Reason: fmt.Sprintf("length %d, want %d", len(row), features),
			}
		}
		for j, v := range row {
			if v > 1 {
				return &ErrInvalidInput{
					Row:    i,
					Column: j,
					Reason: fmt.Sprintf("value %d is not binary", v),
				}
			}
		}
	}
	return nil
}
