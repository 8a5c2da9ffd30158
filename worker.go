package mazerun

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// BatchResult holds both search outcomes for one grid of a batch.
type BatchResult struct {
	Index   int
	Minimum Result
	Optimal OptimalResult
}

// SolveBatch runs MinimumCost and OptimalCells over each grid. Grids are
// searched concurrently by up to NumberOfWorkers goroutines, each search on
// its own ledger and frontier. Results are returned in input order. The first
// failure cancels the remaining searches.
func SolveBatch(
	contextObject context.Context,
	grids []*Grid,
	options ...Option,
) ([]BatchResult, error) {
	searchOptions, err := buildOptions(options)
	if err != nil {
		return nil, err
	}

	results := make([]BatchResult, len(grids))
	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(searchOptions.NumberOfWorkers)

	for i, grid := range grids {
		group.Go(func() error {
			minimum, err := MinimumCost(groupContext, grid, options...)
			if err != nil {
				return fmt.Errorf("grid %d: minimum cost: %w", i, err)
			}
			optimal, err := OptimalCells(groupContext, grid, options...)
			if err != nil {
				return fmt.Errorf("grid %d: optimal cells: %w", i, err)
			}
			results[i] = BatchResult{Index: i, Minimum: minimum, Optimal: optimal}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
