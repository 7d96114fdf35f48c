// Package sweep runs independent clustering jobs concurrently.
//
// Each job gets its own artgo.Engine, so jobs never share mutable state. A
// worker semaphore bounds how many run at once:
//
//	jobs := sweep.Vigilance(dataset.Purchases(), []float64{0.3, 0.5, 0.7, 0.9})
//	outcomes, err := sweep.Run(ctx, jobs, sweep.WithWorkers(4))
//	for _, o := range outcomes {
//	    fmt.Println(o.Name, o.Result.NumClusters(), o.Err)
//	}
package sweep
