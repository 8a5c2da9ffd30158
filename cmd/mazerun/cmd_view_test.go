package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/mazerun"
)

// recordingCanvas keeps the last rune drawn at each position.
type recordingCanvas struct {
	width, height int
	cells         map[[2]int]rune
}

func newRecordingCanvas(width, height int) *recordingCanvas {
	return &recordingCanvas{width: width, height: height, cells: make(map[[2]int]rune)}
}

func (c *recordingCanvas) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	c.cells[[2]int{x, y}] = primary
}

func (c *recordingCanvas) Size() (int, int) { return c.width, c.height }

func (c *recordingCanvas) row(y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteRune(c.cells[[2]int{x, y}])
	}
	return b.String()
}

func testViewer(t *testing.T, text string) *viewer {
	t.Helper()
	grid, err := mazerun.ParseGrid(text)
	require.NoError(t, err)
	v, err := newViewer(grid, nil, 1)
	require.NoError(t, err)
	return v
}

func TestViewer_DrawsFinalPath(t *testing.T) {
	v := testViewer(t, "#######\n#S...E#\n#######\n")
	v.advance(1000)
	require.NotNil(t, v.result)

	c := newRecordingCanvas(40, 10)
	v.draw(c)
	assert.Equal(t, "███████", c.row(0, 7))
	assert.Equal(t, "█SOOOE█", c.row(1, 7))
	assert.True(t, strings.HasPrefix(c.row(3, 40), "cost 4 | optimal cells 5"))
}

func TestViewer_ShowsProgress(t *testing.T) {
	v := testViewer(t, "#######\n#S...E#\n#######\n")
	v.advance(1)
	assert.Nil(t, v.result)

	c := newRecordingCanvas(40, 10)
	v.draw(c)
	assert.Equal(t, glyphQueued, c.cells[[2]int{2, 1}])
	assert.True(t, strings.HasPrefix(c.row(3, 40), "running | step 1"))
}

func TestViewer_Keys(t *testing.T) {
	v := testViewer(t, "#######\n#S...E#\n#######\n")

	assert.False(t, v.handleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.True(t, v.paused)

	assert.False(t, v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)))
	assert.Equal(t, 1, v.last.StepIndex)

	assert.False(t, v.handleKey(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone)))
	assert.Equal(t, 2, v.stepsPerTick)

	assert.False(t, v.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	require.NotNil(t, v.result)
	assert.Equal(t, 4, v.result.TotalCost)

	assert.False(t, v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	assert.Nil(t, v.result)

	assert.True(t, v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, v.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestViewer_DrawsOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 5)

	v := testViewer(t, "#######\n#S...E#\n#######\n")
	v.advance(1000)
	assert.NotPanics(t, func() {
		v.draw(screen)
		screen.Show()
	})
}

func TestViewer_EnterFinishesInOnePress(t *testing.T) {
	tests := []struct {
		name  string
		maze  func(t *testing.T) string
		found bool
		cost  int
	}{
		{
			name: "maze a",
			maze: func(t *testing.T) string {
				data, err := os.ReadFile(mazeA)
				require.NoError(t, err)
				return string(data)
			},
			found: true,
			cost:  7036,
		},
		{
			name:  "open room",
			maze:  func(*testing.T) string { return "SE\n" },
			found: true,
			cost:  1,
		},
		{
			name:  "enclosed goal",
			maze:  func(*testing.T) string { return "#######\n#S.#.E#\n#..####\n#######\n" },
			found: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testViewer(t, tt.maze(t))
			assert.False(t, v.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
			assert.True(t, v.stepper.Done())
			require.NotNil(t, v.result)
			assert.Equal(t, tt.found, v.result.Found)
			assert.Equal(t, tt.cost, v.result.TotalCost)
		})
	}
}

func TestWatchFile_SignalsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte("#######\n#S...E#\n#######\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	state := &app{logger: slog.New(slog.DiscardHandler)}
	reload, stop, err := watchFile(ctx, path, state)
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("#######\n#S..E.#\n#######\n"), 0644))
	select {
	case <-reload:
	case <-time.After(5 * time.Second):
		t.Fatal("no reload signal after write")
	}
}

func TestWatchFile_MissingFile(t *testing.T) {
	state := &app{logger: slog.New(slog.DiscardHandler)}
	_, _, err := watchFile(context.Background(), filepath.Join(t.TempDir(), "absent.txt"), state)
	assert.Error(t, err)
}
