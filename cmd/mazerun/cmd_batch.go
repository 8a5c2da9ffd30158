package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/mazerun"
	"github.com/pdrpinto/mazerun/internal/cache"
)

func newBatchCmd(state *app) *cobra.Command {
	var useCache bool
	cmd := &cobra.Command{
		Use:   "batch [maze file...]",
		Short: "Solve many mazes concurrently and print a table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, state, args, useCache || state.cfg.Cache.Enabled)
		},
	}
	cmd.Flags().BoolVar(&useCache, "cache", false, "reuse results stored in the configured cache directory")
	return cmd
}

func runBatch(cmd *cobra.Command, state *app, paths []string, useCache bool) error {
	var store *cache.Store
	if useCache {
		var err error
		store, err = cache.Open(state.cfg.Cache.Dir)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	entries := make([]cache.Entry, len(paths))
	keys := make([]string, len(paths))
	var pending []*mazerun.Grid
	var pendingIdx []int
	for i, path := range paths {
		grid, text, err := readGrid(path, cmd.InOrStdin())
		if err != nil {
			return err
		}
		if store != nil {
			search := state.cfg.Search
			keys[i] = cache.Key(text, search.StepCost, search.TurnCost, search.Facing)
			entry, hit, err := store.Get(keys[i])
			if err != nil {
				return err
			}
			if hit {
				state.logger.Debug("cache hit", "file", path)
				entries[i] = entry
				continue
			}
		}
		pending = append(pending, grid)
		pendingIdx = append(pendingIdx, i)
	}

	results, err := mazerun.SolveBatch(cmd.Context(), pending, state.options...)
	if err != nil {
		return err
	}
	for j, res := range results {
		i := pendingIdx[j]
		entries[i] = cache.Entry{
			Found:        res.Minimum.Found,
			MinimumCost:  res.Minimum.TotalCost,
			OptimalCells: res.Optimal.Cells.Len(),
		}
		if store != nil {
			if err := store.Put(keys[i], entries[i]); err != nil {
				return err
			}
		}
	}
	state.logger.Info("batch finished", "mazes", len(paths), "searched", len(pending))

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MAZE\tCOST\tCELLS")
	for i, path := range paths {
		if !entries[i].Found {
			fmt.Fprintf(tw, "%s\t-\t0\n", path)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", path, entries[i].MinimumCost, entries[i].OptimalCells)
	}
	return tw.Flush()
}
