package mazerun

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Cell identifies a grid position.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// State is a cell plus the orientation the agent faces there.
type State struct {
	Cell   Cell
	Facing Orientation
}

// Tile classifies a single grid cell.
type Tile uint8

const (
	Open Tile = iota
	Wall
)

// Text markers understood by ParseGrid.
const (
	MarkWall  = '#'
	MarkOpen  = '.'
	MarkStart = 'S'
	MarkGoal  = 'E'
)

// Grid is an immutable wall/open layout with a start and a goal cell.
type Grid struct {
	rows, cols int
	tiles      []Tile
	start      Cell
	goal       Cell
}

// NewGrid copies tiles and validates start and goal.
func NewGrid(tiles [][]Tile, start, goal Cell) (*Grid, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{rows: len(tiles), cols: len(tiles[0]), start: start, goal: goal}
	g.tiles = make([]Tile, 0, g.rows*g.cols)
	for r, row := range tiles {
		if len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, r, len(row), g.cols)
		}
		g.tiles = append(g.tiles, row...)
	}
	if !g.IsOpen(start) {
		return nil, fmt.Errorf("%w: start %v", ErrMarkerBlocked, start)
	}
	if !g.IsOpen(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrMarkerBlocked, goal)
	}
	return g, nil
}

// ParseGrid builds a Grid from its text form.
func ParseGrid(text string) (*Grid, error) {
	return ReadGrid(strings.NewReader(text))
}

// ReadGrid reads the text form of a grid: '#' wall, '.' open, 'S' start and
// 'E' goal. Trailing blank lines are ignored.
func ReadGrid(r io.Reader) (*Grid, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	tiles := make([][]Tile, len(lines))
	var start, goal *Cell
	for r, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, r, len(line), len(lines[0]))
		}
		tiles[r] = make([]Tile, len(line))
		for c := 0; c < len(line); c++ {
			cell := Cell{Row: r, Col: c}
			switch line[c] {
			case MarkWall:
				tiles[r][c] = Wall
			case MarkOpen:
				tiles[r][c] = Open
			case MarkStart:
				if start != nil {
					return nil, fmt.Errorf("%w: start at %v and %v", ErrDuplicateMarker, *start, cell)
				}
				start = &cell
			case MarkGoal:
				if goal != nil {
					return nil, fmt.Errorf("%w: goal at %v and %v", ErrDuplicateMarker, *goal, cell)
				}
				goal = &cell
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownTile, line[c], cell)
			}
		}
	}
	if start == nil {
		return nil, ErrMissingStart
	}
	if goal == nil {
		return nil, ErrMissingGoal
	}
	return NewGrid(tiles, *start, *goal)
}

func (g *Grid) Rows() int   { return g.rows }
func (g *Grid) Cols() int   { return g.cols }
func (g *Grid) Start() Cell { return g.start }
func (g *Grid) Goal() Cell  { return g.goal }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsWall reports whether c is a wall. Out-of-bounds cells count as walls.
func (g *Grid) IsWall(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.tiles[c.Row*g.cols+c.Col] == Wall
}

// IsOpen reports whether the agent may occupy c.
func (g *Grid) IsOpen(c Cell) bool {
	return g.InBounds(c) && g.tiles[c.Row*g.cols+c.Col] == Open
}

// Neighbor returns the cell one step from c in direction o. The result may be
// out of bounds or a wall.
func (g *Grid) Neighbor(c Cell, o Orientation) Cell {
	return o.Forward(c)
}

// OpenCells counts the cells that are not walls.
func (g *Grid) OpenCells() int {
	n := 0
	for _, t := range g.tiles {
		if t == Open {
			n++
		}
	}
	return n
}

// WithWall returns a copy of g with c turned into a wall. The receiver is not
// modified. Placing a wall on the start or goal fails with ErrMarkerBlocked.
func (g *Grid) WithWall(c Cell) (*Grid, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v is out of bounds", ErrMarkerBlocked, c)
	}
	if c == g.start || c == g.goal {
		return nil, fmt.Errorf("%w: cannot wall %v", ErrMarkerBlocked, c)
	}
	cp := *g
	cp.tiles = append([]Tile(nil), g.tiles...)
	cp.tiles[c.Row*g.cols+c.Col] = Wall
	return &cp, nil
}

// String renders g in the format accepted by ParseGrid.
func (g *Grid) String() string {
	return g.Render(nil, 0)
}

// Render draws g, marking every open cell for which highlight returns true
// with mark. Start and goal markers take precedence. A nil highlight marks
// nothing.
func (g *Grid) Render(highlight func(Cell) bool, mark byte) string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := Cell{Row: r, Col: c}
			switch {
			case cell == g.start:
				b.WriteByte(MarkStart)
			case cell == g.goal:
				b.WriteByte(MarkGoal)
			case g.tiles[r*g.cols+c] == Wall:
				b.WriteByte(MarkWall)
			default:
				if highlight != nil && highlight(cell) {
					b.WriteByte(mark)
				} else {
					b.WriteByte(MarkOpen)
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
