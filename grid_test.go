package mazerun

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid("#####\n#S.E#\n#####\n")
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, Cell{Row: 1, Col: 1}, g.Start())
	assert.Equal(t, Cell{Row: 1, Col: 3}, g.Goal())
	assert.True(t, g.IsWall(Cell{Row: 0, Col: 0}))
	assert.False(t, g.IsWall(Cell{Row: 1, Col: 2}))
	assert.True(t, g.IsOpen(g.Start()))
	assert.True(t, g.IsOpen(g.Goal()))
	assert.Equal(t, 3, g.OpenCells())
}

func TestParseGrid_CRLFAndTrailingBlankLines(t *testing.T) {
	g, err := ParseGrid("#####\r\n#S.E#\r\n#####\r\n\n\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 5, g.Cols())
}

func TestParseGrid_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyGrid},
		{"only blank lines", "\n\n", ErrEmptyGrid},
		{"ragged rows", "#####\n#S.E\n#####", ErrRaggedRows},
		{"missing start", "#####\n#..E#\n#####", ErrMissingStart},
		{"missing goal", "#####\n#S..#\n#####", ErrMissingGoal},
		{"two starts", "#####\n#SSE#\n#####", ErrDuplicateMarker},
		{"two goals", "#####\n#SEE#\n#####", ErrDuplicateMarker},
		{"unknown tile", "#####\n#S?E#\n#####", ErrUnknownTile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGrid(tt.input)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewGrid_Validation(t *testing.T) {
	tiles := [][]Tile{
		{Wall, Wall, Wall},
		{Wall, Open, Wall},
		{Wall, Open, Wall},
	}

	_, err := NewGrid(tiles, Cell{Row: 0, Col: 0}, Cell{Row: 1, Col: 1})
	assert.ErrorIs(t, err, ErrMarkerBlocked)

	_, err = NewGrid(tiles, Cell{Row: 1, Col: 1}, Cell{Row: 5, Col: 5})
	assert.ErrorIs(t, err, ErrMarkerBlocked)

	_, err = NewGrid(nil, Cell{}, Cell{})
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewGrid([][]Tile{{Open, Open}, {Open}}, Cell{}, Cell{Col: 1})
	assert.ErrorIs(t, err, ErrRaggedRows)

	g, err := NewGrid(tiles, Cell{Row: 1, Col: 1}, Cell{Row: 2, Col: 1})
	require.NoError(t, err)

	// The grid owns a copy of its tiles.
	tiles[2][1] = Wall
	assert.True(t, g.IsOpen(Cell{Row: 2, Col: 1}))
}

func TestGrid_BoundsAndNeighbor(t *testing.T) {
	g, err := ParseGrid("S.E")
	require.NoError(t, err)

	assert.False(t, g.InBounds(Cell{Row: -1, Col: 0}))
	assert.False(t, g.InBounds(Cell{Row: 0, Col: 3}))
	assert.True(t, g.IsWall(Cell{Row: 0, Col: 3}), "out of bounds counts as wall")
	assert.False(t, g.IsOpen(Cell{Row: 1, Col: 0}))

	assert.Equal(t, Cell{Row: -1, Col: 0}, g.Neighbor(Cell{}, North))
	assert.Equal(t, Cell{Row: 0, Col: 1}, g.Neighbor(Cell{}, East))
}

func TestGrid_WithWallDoesNotMutate(t *testing.T) {
	g, err := ParseGrid("#####\n#S.E#\n#####")
	require.NoError(t, err)

	walled, err := g.WithWall(Cell{Row: 1, Col: 2})
	require.NoError(t, err)
	assert.True(t, walled.IsWall(Cell{Row: 1, Col: 2}))
	assert.False(t, g.IsWall(Cell{Row: 1, Col: 2}))

	_, err = g.WithWall(g.Start())
	assert.ErrorIs(t, err, ErrMarkerBlocked)
	_, err = g.WithWall(Cell{Row: 9, Col: 9})
	assert.ErrorIs(t, err, ErrMarkerBlocked)
}

func TestGrid_StringRoundTrip(t *testing.T) {
	text := readTestdata(t, "maze_a.txt")
	g, err := ParseGrid(text)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimRight(text, "\n")+"\n", g.String())
}

func TestGrid_Render(t *testing.T) {
	g, err := ParseGrid("#####\n#S.E#\n#.#.#\n#####")
	require.NoError(t, err)

	out := g.Render(func(c Cell) bool { return c.Row == 1 }, 'O')
	assert.Equal(t, "#####\n#SOE#\n#.#.#\n#####\n", out)
}
