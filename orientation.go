package mazerun

import (
	"fmt"
	"strings"
)

// Orientation is the cardinal direction the agent is facing.
type Orientation int

// Orientations in clockwise order.
const (
	North Orientation = iota
	East
	South
	West
)

const orientationCount = 4

// Orientations returns all orientations in clockwise order.
func Orientations() []Orientation {
	return []Orientation{North, East, South, West}
}

// Clockwise returns the orientation after a 90 degree right turn.
func (o Orientation) Clockwise() Orientation {
	return (o + 1) % orientationCount
}

// CounterClockwise returns the orientation after a 90 degree left turn.
func (o Orientation) CounterClockwise() Orientation {
	return (o + orientationCount - 1) % orientationCount
}

// Delta returns the row and column offsets of one forward step.
func (o Orientation) Delta() (rowDelta, colDelta int) {
	switch o {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Forward translates cell one step in this orientation.
// Bounds and walls are not checked.
func (o Orientation) Forward(cell Cell) Cell {
	dr, dc := o.Delta()
	return Cell{Row: cell.Row + dr, Col: cell.Col + dc}
}

// IsValid reports whether o is one of the four cardinal orientations.
func (o Orientation) IsValid() bool {
	return o >= North && o <= West
}

func (o Orientation) String() string {
	switch o {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseOrientation accepts full names or single letters, case-insensitive.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}
