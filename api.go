package mazerun

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/pdrpinto/mazerun/internal"
)

// Published move costs.
const (
	DefaultStepCost = 1
	DefaultTurnCost = 1000
)

// Result contains the outcome of a minimum-cost search.
type Result struct {
	// Path is one optimal route as a sequence of states, start first.
	Path          []State
	TotalCost     int
	ExpandedNodes int
	Found         bool
}

// OptimalResult contains the outcome of an all-optimal-paths search.
type OptimalResult struct {
	Cells         PathSet
	TotalCost     int
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	StepCost        int
	TurnCost        int
	Facing          Orientation
	Logger          *slog.Logger
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithCosts overrides the forward-step and 90 degree turn costs.
func WithCosts(stepCost, turnCost int) Option {
	return func(options *Options) {
		options.StepCost = stepCost
		options.TurnCost = turnCost
	}
}

// WithFacing sets the orientation the agent has on the start cell.
func WithFacing(facing Orientation) Option {
	return func(options *Options) { options.Facing = facing }
}

// WithLogger routes debug output of the search to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithWorkers specifies how many grids SolveBatch searches concurrently.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

func buildOptions(options []Option) (Options, error) {
	searchOptions := Options{
		StepCost:        DefaultStepCost,
		TurnCost:        DefaultTurnCost,
		Facing:          East,
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.StepCost <= 0 || searchOptions.TurnCost <= 0 {
		return Options{}, fmt.Errorf("%w: step=%d turn=%d", ErrInvalidCost, searchOptions.StepCost, searchOptions.TurnCost)
	}
	if !searchOptions.Facing.IsValid() {
		return Options{}, fmt.Errorf("invalid start orientation %d", searchOptions.Facing)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.DiscardHandler)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions, nil
}

// MinimumCost returns the cheapest cost from the grid's start state to any
// state on the goal cell. The search stops at the first goal pop. An
// unreachable goal yields Found == false and a nil error.
func MinimumCost(
	contextObject context.Context,
	grid *Grid,
	options ...Option,
) (Result, error) {
	searchOptions, err := buildOptions(options)
	if err != nil {
		return Result{}, err
	}

	contextObject, span := startSearchSpan(contextObject, "minimum_cost", grid)
	began := time.Now()

	engine := newSearch(grid, searchOptions, false)
	err = engine.run(contextObject)

	result := Result{ExpandedNodes: engine.expanded}
	if err == nil && engine.goalFound {
		result.Found = true
		result.TotalCost = engine.bestGoal
		result.Path = internal.ReconstructPath(engine.ledger.firstPredecessor, engine.goals[0], engine.startState)
	}

	endSearchSpan(span, result.TotalCost, result.ExpandedNodes, result.Found, err)
	recordSearchMetrics(contextObject, "minimum_cost", time.Since(began), result.ExpandedNodes, result.Found)
	if err != nil {
		return Result{}, err
	}
	searchOptions.Logger.Debug("minimum cost search finished",
		"found", result.Found,
		"cost", result.TotalCost,
		"expanded", result.ExpandedNodes,
	)
	return result, nil
}

// OptimalCells returns every cell that lies on at least one minimum-cost path
// from the start to the goal, start and goal included. An unreachable goal
// yields an empty set and Found == false.
func OptimalCells(
	contextObject context.Context,
	grid *Grid,
	options ...Option,
) (OptimalResult, error) {
	searchOptions, err := buildOptions(options)
	if err != nil {
		return OptimalResult{}, err
	}

	contextObject, span := startSearchSpan(contextObject, "optimal_cells", grid)
	began := time.Now()

	engine := newSearch(grid, searchOptions, true)
	err = engine.run(contextObject)

	var result OptimalResult
	if err == nil {
		result = engine.optimalResult()
	}

	endSearchSpan(span, result.TotalCost, engine.expanded, result.Found, err)
	recordSearchMetrics(contextObject, "optimal_cells", time.Since(began), engine.expanded, result.Found)
	if err != nil {
		return OptimalResult{}, err
	}
	searchOptions.Logger.Debug("optimal cells search finished",
		"found", result.Found,
		"cost", result.TotalCost,
		"cells", result.Cells.Len(),
		"goal_states", len(engine.goals),
		"expanded", result.ExpandedNodes,
	)
	return result, nil
}
