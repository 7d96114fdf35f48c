package artgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    assignCounter   prometheus.Counter
//	    passesHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordAssign(duration time.Duration, passes int, converged bool, err error) {
//	    p.assignCounter.Inc()
//	    p.passesHistogram.Observe(float64(passes))
//	}
type MetricsCollector interface {
	// RecordAssign is called after each Assign or Step call.
	// passes is the number of passes run by the call, converged reports
	// whether the last pass made no change, err is nil if successful.
	RecordAssign(duration time.Duration, passes int, converged bool, err error)

	// RecordPass is called after each completed pass.
	RecordPass(reassigned, allocated int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAssign(time.Duration, int, bool, error) {}
func (NoopMetricsCollector) RecordPass(int, int)                         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
// Safe for concurrent use, so one collector can be shared by many engines.
type BasicMetricsCollector struct {
	AssignCount      atomic.Int64
	AssignErrors     atomic.Int64
	AssignTotalNanos atomic.Int64
	NonConverged     atomic.Int64
	PassCount        atomic.Int64
	Reassignments    atomic.Int64
	Allocations      atomic.Int64
}

// RecordAssign implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAssign(duration time.Duration, passes int, converged bool, err error) {
	b.AssignCount.Add(1)
	b.AssignTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AssignErrors.Add(1)
		return
	}
	if !converged {
		b.NonConverged.Add(1)
	}
}

// RecordPass implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPass(reassigned, allocated int) {
	b.PassCount.Add(1)
	b.Reassignments.Add(int64(reassigned))
	b.Allocations.Add(int64(allocated))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AssignCount:    b.AssignCount.Load(),
		AssignErrors:   b.AssignErrors.Load(),
		AssignAvgNanos: b.getAvgAssignNanos(),
		NonConverged:   b.NonConverged.Load(),
		PassCount:      b.PassCount.Load(),
		Reassignments:  b.Reassignments.Load(),
		Allocations:    b.Allocations.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAssignNanos() int64 {
	count := b.AssignCount.Load()
	if count == 0 {
		return 0
	}
	return b.AssignTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AssignCount    int64
	AssignErrors   int64
	AssignAvgNanos int64
	NonConverged   int64
	PassCount      int64
	Reassignments  int64
	Allocations    int64
}
