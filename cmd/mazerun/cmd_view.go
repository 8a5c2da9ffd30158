package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/mazerun"
)

var errNotTerminal = errors.New("view needs an interactive terminal")

// canvas is the part of tcell.Screen the viewer draws on.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

var (
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleOpen     = tcell.StyleDefault
	styleQueued   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleExplored = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleOptimal  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleMarker   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Glyphs used by the viewer.
const (
	glyphWall     = '█'
	glyphOpen     = ' '
	glyphQueued   = '·'
	glyphExplored = '░'
	glyphOptimal  = 'O'
)

// viewer animates an all-optimal-paths search over one grid.
type viewer struct {
	grid         *mazerun.Grid
	options      []mazerun.Option
	stepper      *mazerun.Stepper
	last         mazerun.StepSnapshot
	result       *mazerun.OptimalResult
	paused       bool
	stepsPerTick int
}

func newViewer(grid *mazerun.Grid, options []mazerun.Option, stepsPerTick int) (*viewer, error) {
	v := &viewer{options: options, stepsPerTick: max(stepsPerTick, 1)}
	if err := v.reset(grid); err != nil {
		return nil, err
	}
	return v, nil
}

// reset restarts the animation on grid.
func (v *viewer) reset(grid *mazerun.Grid) error {
	stepper, err := mazerun.NewStepper(grid, v.options...)
	if err != nil {
		return err
	}
	v.grid = grid
	v.stepper = stepper
	v.last = mazerun.StepSnapshot{}
	v.result = nil
	return nil
}

// advance performs up to n steps and captures the result once done.
func (v *viewer) advance(n int) {
	for i := 0; i < n && !v.stepper.Done(); i++ {
		v.last = v.stepper.Step()
	}
	if v.result == nil {
		if res, ok := v.stepper.Result(); ok {
			v.result = &res
		}
	}
}

// finish runs the search to completion.
func (v *viewer) finish() {
	for !v.stepper.Done() {
		v.last = v.stepper.Step()
	}
	v.advance(0)
}

// handleKey applies a key press. It returns true when the viewer should exit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		v.finish()
		return false
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		v.paused = !v.paused
	case 'n':
		v.advance(1)
	case 'r':
		_ = v.reset(v.grid)
	case '+':
		v.stepsPerTick *= 2
	case '-':
		v.stepsPerTick = max(v.stepsPerTick/2, 1)
	}
	return false
}

func (v *viewer) draw(c canvas) {
	width, height := c.Size()
	for r := 0; r < v.grid.Rows() && r < height-1; r++ {
		for col := 0; col < v.grid.Cols() && col < width; col++ {
			glyph, style := v.cellLook(mazerun.Cell{Row: r, Col: col})
			c.SetContent(col, r, glyph, nil, style)
		}
	}
	status := v.status()
	row := min(v.grid.Rows(), height-1)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(status) {
			ch = rune(status[x])
		}
		c.SetContent(x, row, ch, nil, styleStatus)
	}
}

func (v *viewer) cellLook(cell mazerun.Cell) (rune, tcell.Style) {
	switch {
	case cell == v.grid.Start():
		return mazerun.MarkStart, styleMarker
	case cell == v.grid.Goal():
		return mazerun.MarkGoal, styleMarker
	case v.grid.IsWall(cell):
		return glyphWall, styleWall
	case v.result != nil && v.result.Cells.Contains(cell):
		return glyphOptimal, styleOptimal
	case v.stepper.Explored(cell):
		return glyphExplored, styleExplored
	case v.stepper.Queued(cell):
		return glyphQueued, styleQueued
	default:
		return glyphOpen, styleOpen
	}
}

func (v *viewer) status() string {
	if v.result != nil {
		if !v.result.Found {
			return fmt.Sprintf("no path | expanded %d | r restart q quit", v.result.ExpandedNodes)
		}
		return fmt.Sprintf("cost %d | optimal cells %d | expanded %d | r restart q quit",
			v.result.TotalCost, v.result.Cells.Len(), v.result.ExpandedNodes)
	}
	state := "running"
	if v.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s | step %d cost %d frontier %d | x%d | space pause n step enter finish",
		state, v.last.StepIndex, v.last.Cost, v.last.Frontier, v.stepsPerTick)
}

func newViewCmd(state *app) *cobra.Command {
	var (
		watch    bool
		speed    int
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "view [maze file]",
		Short: "Animate the all-optimal-paths search in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout.Fd()) {
				return errNotTerminal
			}
			grid, _, err := readGrid(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			v, err := newViewer(grid, state.options, speed)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			var reload <-chan struct{}
			if watch && args[0] != "-" {
				ch, stop, err := watchFile(cmd.Context(), args[0], state)
				if err != nil {
					return err
				}
				defer stop()
				reload = ch
			}
			return runViewer(cmd.Context(), screen, v, args[0], interval, reload, state)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "restart when the maze file changes")
	cmd.Flags().IntVar(&speed, "speed", 8, "search steps per frame")
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Millisecond, "time between frames")
	return cmd
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runViewer(
	ctx context.Context,
	screen tcell.Screen,
	v *viewer,
	path string,
	interval time.Duration,
	reload <-chan struct{},
	state *app,
) error {
	if ctx == nil {
		ctx = context.Background()
	}
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		screen.Clear()
		v.draw(screen)
		screen.Show()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.handleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-reload:
			grid, _, err := readGrid(path, nil)
			if err != nil {
				state.logger.Warn("reload failed", "file", path, "error", err)
				continue
			}
			if err := v.reset(grid); err != nil {
				return err
			}
		case <-ticker.C:
			if !v.paused {
				v.advance(v.stepsPerTick)
			}
		}
	}
}

// watchFile signals on the returned channel whenever path is written or
// replaced. The stop function closes the watcher.
func watchFile(ctx context.Context, path string, state *app) (<-chan struct{}, func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	out := make(chan struct{}, 1)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					select {
					case out <- struct{}{}:
					default:
					}
				}
				// Editors that replace the file drop the watch.
				if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					_ = watcher.Add(path)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				state.logger.Warn("file watcher error", "error", err)
			}
		}
	}()
	return out, func() { watcher.Close() }, nil
}
