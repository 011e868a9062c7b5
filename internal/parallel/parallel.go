// Package parallel runs independent jobs on several goroutines.
//
// Jobs are coarse: typically one whole training run, each owning its own
// autodiff graph. A graph is not safe for concurrent use, so jobs must never
// share one.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Maximum number of goroutines to use.
	MinJobs    int  // Fewer jobs than this run sequentially.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinJobs:    2,
	}
}

// Sequential returns a Config that runs every job on the calling goroutine.
func Sequential() Config {
	return Config{}
}

// For executes f(i) for i in [0, n) and returns once every call has finished.
//
// Workers pull the next index from a shared counter, so slow jobs do not hold
// up a fixed chunk of fast ones. Falls back to sequential execution if
// parallelism is disabled or there are too few jobs.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < max(cfg.MinJobs, 2) {
		// Sequential fallback.
		for i := range n {
			f(i)
		}
		return
	}

	var (
		wg   sync.WaitGroup
		next atomic.Int64
	)
	workers := min(cfg.NumWorkers, n)
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return
				}
				f(i)
			}
		}()
	}
	wg.Wait()
}

// ForErr is For for jobs that can fail.
//
// Every job runs to completion; the error of the lowest failing index is
// returned together with that index, or (-1, nil) if all succeeded.
func ForErr(n int, f func(i int) error, cfg Config) (int, error) {
	errs := make([]error, n)
	For(n, func(i int) {
		errs[i] = f(i)
	}, cfg)

	for i, err := range errs {
		if err != nil {
			return i, err
		}
	}
	return -1, nil
}
