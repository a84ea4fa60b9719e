package terrain

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// workerCount resolves a configured worker count: <= 0 means one per CPU.
func workerCount(n int) int {
	if !Parallel {
		return 1
	}
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n < 1 {
		n = 1
	}
	return n
}

// forEachBand splits [0, n) into one contiguous band per worker (the first
// n%workers bands get one extra item) and runs fn on every band concurrently.
// The first error cancels ctx for the remaining bands.
func forEachBand(ctx context.Context, n, workers int, fn func(ctx context.Context, lo, hi int) error) error {
	workers = workerCount(workers)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		if n <= 0 {
			return nil
		}
		return fn(ctx, 0, n)
	}
	per, rem := n/workers, n%workers

	g, ctx := errgroup.WithContext(ctx)
	lo := 0
	for w := 0; w < workers; w++ {
		count := per
		if w < rem {
			count++
		}
		a, b := lo, lo+count
		lo = b
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, a, b)
		})
	}
	return g.Wait()
}
