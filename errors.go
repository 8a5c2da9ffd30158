package mazerun

import "errors"

// Sentinel errors returned while building a Grid or configuring a search.
var (
	// ErrEmptyGrid is returned when the input contains no rows.
	ErrEmptyGrid = errors.New("grid is empty")

	// ErrRaggedRows is returned when rows have different lengths.
	ErrRaggedRows = errors.New("grid rows have inconsistent lengths")

	// ErrMissingStart is returned when no start marker is present.
	ErrMissingStart = errors.New("grid has no start marker")

	// ErrMissingGoal is returned when no goal marker is present.
	ErrMissingGoal = errors.New("grid has no goal marker")

	// ErrDuplicateMarker is returned when a start or goal marker appears twice.
	ErrDuplicateMarker = errors.New("grid marker appears more than once")

	// ErrUnknownTile is returned for characters outside the tile alphabet.
	ErrUnknownTile = errors.New("unknown tile character")

	// ErrMarkerBlocked is returned when the start or goal is out of bounds or
	// on a wall.
	ErrMarkerBlocked = errors.New("start or goal is not an open cell")

	// ErrInvalidCost is returned when a step or turn cost is not positive.
	ErrInvalidCost = errors.New("move costs must be positive")
)
