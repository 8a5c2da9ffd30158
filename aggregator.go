package mazerun

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/pdrpinto/mazerun/internal"
)

// PathSet is the set of cells lying on at least one minimum-cost path.
// The zero value is an empty set.
type PathSet struct {
	cells map[Cell]struct{}
}

// Len returns the number of distinct cells.
func (p PathSet) Len() int { return len(p.cells) }

// Contains reports whether c is on some optimal path.
func (p PathSet) Contains(c Cell) bool {
	_, ok := p.cells[c]
	return ok
}

// Cells returns the members in row-major order.
func (p PathSet) Cells() []Cell {
	out := make([]Cell, 0, len(p.cells))
	for c := range p.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Cell) int {
		if n := cmp.Compare(a.Row, b.Row); n != 0 {
			return n
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return out
}

// collectOptimalCells walks the predecessor relation backwards from every
// optimal goal state and projects the visited states onto cells.
func collectOptimalCells(l *ledger, goals []State) PathSet {
	states := internal.CollectAncestors(goals, l.predecessors)
	cells := make(map[Cell]struct{}, len(states))
	for st := range states {
		if _, ok := l.bestCost(st); !ok {
			panic(fmt.Sprintf("mazerun: state %v reached through predecessors has no ledger entry", st))
		}
		cells[st.Cell] = struct{}{}
	}
	return PathSet{cells: cells}
}
