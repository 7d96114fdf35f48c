package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/artgo"
	"github.com/hupe1980/artgo/dataset"
	"github.com/hupe1980/artgo/internal/resource"
)

// ErrNoMatrix is the Outcome error of a job without a matrix.
var ErrNoMatrix = errors.New("sweep: job has no matrix")

// Job is one clustering run.
type Job struct {
	Name   string
	Matrix *dataset.Matrix

	// Order presents item Order[k] to the engine at position k. Nil keeps
	// the matrix order.
	Order []int

	// Options configure the job's engine. They are applied after the
	// sweep-wide logger and metrics collector, so they can override them.
	Options []artgo.Option
}

// Outcome is the result of one job.
type Outcome struct {
	Name   string
	Result *artgo.Result

	// Membership maps original item index to cluster index, undoing Order.
	Membership []int

	Err      error
	Duration time.Duration
}

type options struct {
	workers int64
	logger  *artgo.Logger
	metrics artgo.MetricsCollector
}

// Option configures Run.
type Option func(*options)

// WithWorkers sets the maximum number of concurrent jobs.
// Defaults to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = int64(n)
	}
}

// WithLogger gives every job engine a logger tagged with the job name.
func WithLogger(l *artgo.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetricsCollector shares mc between all job engines.
func WithMetricsCollector(mc artgo.MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}

// Run executes jobs concurrently and returns one Outcome per job, in job
// order. A failing job only fails its own Outcome. If ctx is cancelled, jobs
// not yet started get ctx.Err() as their error and Run returns it too.
func Run(ctx context.Context, jobs []Job, optFns ...Option) ([]Outcome, error) {
	o := options{workers: int64(runtime.GOMAXPROCS(0))}
	for _, fn := range optFns {
		fn(&o)
	}

	rc := resource.NewController(resource.Config{MaxWorkers: o.workers})
	outcomes := make([]Outcome, len(jobs))

	// Job failures are reported in outcomes, never through g, so g only
	// waits for the started jobs.
	var g errgroup.Group

	var stopErr error
	for i := range jobs {
		outcomes[i].Name = jobs[i].Name

		if stopErr == nil {
			stopErr = ctx.Err()
		}
		if stopErr == nil {
			stopErr = rc.AcquireWorker(ctx)
		}
		if stopErr != nil {
			outcomes[i].Err = stopErr
			continue
		}

		g.Go(func() error {
			defer rc.ReleaseWorker()
			outcomes[i] = run(jobs[i], o)
			return nil
		})
	}

	_ = g.Wait()
	return outcomes, stopErr
}

func run(job Job, o options) (out Outcome) {
	start := time.Now()
	out = Outcome{Name: job.Name}
	defer func() { out.Duration = time.Since(start) }()

	m := job.Matrix
	if m == nil {
		out.Err = ErrNoMatrix
		return out
	}
	if err := m.Validate(); err != nil {
		out.Err = err
		return out
	}
	if job.Order != nil {
		pm, err := m.Permute(job.Order)
		if err != nil {
			out.Err = err
			return out
		}
		m = pm
	}

	var opts []artgo.Option
	if o.logger != nil {
		opts = append(opts, artgo.WithLogger(&artgo.Logger{Logger: o.logger.With("job", job.Name)}))
	}
	if o.metrics != nil {
		opts = append(opts, artgo.WithMetricsCollector(o.metrics))
	}
	opts = append(opts, job.Options...)

	eng, err := artgo.New(m.Features, m.Len(), opts...)
	if err != nil {
		out.Err = err
		return out
	}

	res, err := eng.Assign(m.Rows)
	if err != nil {
		out.Err = err
		return out
	}

	out.Result = res
	out.Membership = res.Membership
	if job.Order != nil {
		out.Membership = make([]int, len(res.Membership))
		for k, item := range job.Order {
			out.Membership[item] = res.Membership[k]
		}
	}
	return out
}

// Vigilance returns one job per vigilance value, each over m in its given
// order. base options apply to every job.
func Vigilance(m *dataset.Matrix, rhos []float64, base ...artgo.Option) []Job {
	jobs := make([]Job, len(rhos))
	for i, rho := range rhos {
		opts := append(append([]artgo.Option(nil), base...), artgo.WithVigilance(rho))
		jobs[i] = Job{
			Name:    fmt.Sprintf("rho=%.2f", rho),
			Matrix:  m,
			Options: opts,
		}
	}
	return jobs
}

// Orderings returns one job per permutation of m's items.
func Orderings(m *dataset.Matrix, perms [][]int, base ...artgo.Option) []Job {
	jobs := make([]Job, len(perms))
	for i, perm := range perms {
		jobs[i] = Job{
			Name:    fmt.Sprintf("order-%d", i),
			Matrix:  m,
			Order:   perm,
			Options: append([]artgo.Option(nil), base...),
		}
	}
	return jobs
}
