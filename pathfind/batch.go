package pathfind

import (
	"context"
	"sync"

	"github.com/katalvlaran/gridpath/gridmap"
)

// NearestAll runs one independent Nearest search from every free cell of
// the grid and collects the found paths, keyed by start cell. Cells from
// which no target is reachable are absent from the result.
//
// Searches fan out over a worker pool (Options.Workers goroutines, default
// runtime.NumCPU()). The grid and cost model are shared read-only across
// workers; every search owns its frontier and visited set exclusively, so
// no locking is needed beyond result collection.
//
// ctx cancels the sweep between searches; a canceled sweep returns
// ctx.Err() and a nil map.
//
// Complexity: O(F · N log N) total work, F = free cells, spread across
// the pool.
func NearestAll(ctx context.Context, g *gridmap.Grid, isTarget Predicate, opts ...Option) (map[gridmap.Cell]Path, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate shared inputs once, before spawning workers.
	if g == nil {
		return nil, ErrNilGrid
	}
	if isTarget == nil {
		return nil, ErrNilPredicate
	}

	starts := g.FreeCells()
	out := make(map[gridmap.Cell]Path, len(starts))

	var (
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)
	jobs := make(chan gridmap.Cell)

	// 3) Start the worker pool. Each worker drains start cells and runs a
	//    fully independent search per cell.
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for start := range jobs {
				path, _, err := Nearest(g, start, isTarget, opts...)
				mu.Lock()
				switch {
				case err != nil:
					if firstErr == nil {
						firstErr = err
					}
				case path != nil:
					out[start] = path
				}
				mu.Unlock()
			}
		}()
	}

	// 4) Feed starts until done or canceled.
	canceled := false
feed:
	for _, start := range starts {
		if ctx.Err() != nil {
			canceled = true

			break feed
		}
		select {
		case <-ctx.Done():
			canceled = true

			break feed
		case jobs <- start:
		}
	}
	close(jobs)
	wg.Wait()

	if canceled {
		return nil, ctx.Err()
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}
