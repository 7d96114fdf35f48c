// Package resource bounds shared resources across concurrent clustering jobs.
//
// A Controller manages two resource types:
//
//   - Concurrency: a weighted semaphore limiting how many jobs run at once
//   - IO: a token bucket limiting how fast datasets are read
//
// Worker slots:
//
//	rc := resource.NewController(resource.Config{MaxWorkers: 4})
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
// IO throttling:
//
//	rc := resource.NewController(resource.Config{
//	    IOLimitBytesPerSec: 8 * 1024 * 1024,
//	})
//	r := resource.NewRateLimitedReader(ctx, blob, rc)
//
// All methods are safe for concurrent use. A nil *Controller is valid and
// imposes no limits.
package resource
