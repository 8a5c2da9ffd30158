package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/mazerun"
)

// pathMark draws optimal cells in rendered output.
const pathMark = 'O'

func newSolveCmd(state *app) *cobra.Command {
	var show bool
	cmd := &cobra.Command{
		Use:   "solve [maze file...]",
		Short: "Print the minimum cost and the number of cells on any optimal path",
		Long: `Reads each maze ('#' wall, '.' open, 'S' start, 'E' goal) and reports
the cheapest cost from S (facing east) to E, plus how many cells lie on at
least one path of that cost. Use "-" to read from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := solveOne(cmd, state, path, show); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "draw the maze with optimal cells marked")
	return cmd
}

func solveOne(cmd *cobra.Command, state *app, path string, show bool) error {
	grid, _, err := readGrid(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	minimum, err := mazerun.MinimumCost(ctx, grid, state.options...)
	if err != nil {
		return err
	}
	optimal, err := mazerun.OptimalCells(ctx, grid, state.options...)
	if err != nil {
		return err
	}
	state.logger.Info("solved maze",
		"file", path,
		"found", minimum.Found,
		"cost", minimum.TotalCost,
		"cells", optimal.Cells.Len(),
	)

	out := cmd.OutOrStdout()
	writeSummary(out, path, minimum.Found, minimum.TotalCost, optimal.Cells.Len())
	if show && optimal.Found {
		fmt.Fprint(out, grid.Render(optimal.Cells.Contains, pathMark))
	}
	return nil
}

func writeSummary(out io.Writer, name string, found bool, cost, cells int) {
	if !found {
		fmt.Fprintf(out, "%s: no path\n", name)
		return
	}
	fmt.Fprintf(out, "%s: minimum cost %d, optimal cells %d\n", name, cost, cells)
}
