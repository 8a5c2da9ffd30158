package mazerun

import (
	"container/heap"
	"context"
)

// ctxCheckInterval is how many pops happen between context checks.
const ctxCheckInterval = 1024

// move is one outgoing transition of a state.
type move struct {
	to   State
	cost int
}

// search owns the frontier and ledger of a single run. It is not safe for
// concurrent use.
//
// With allPaths unset it is plain Dijkstra and finishes on the first goal pop.
// With allPaths set the ledger admits ties and the run continues until the
// frontier only holds states costlier than the best goal cost, collecting
// every goal state popped at that cost.
type search struct {
	grid       *Grid
	options    Options
	allPaths   bool
	startState State

	ledger     *ledger
	openSet    priorityQueue
	openSetMap map[State]*priorityQueueItem
	closedSet  map[State]bool

	expanded  int
	goalFound bool
	bestGoal  int
	goals     []State
	done      bool
}

func newSearch(grid *Grid, options Options, allPaths bool) *search {
	s := &search{
		grid:       grid,
		options:    options,
		allPaths:   allPaths,
		startState: State{Cell: grid.Start(), Facing: options.Facing},
		ledger:     newLedger(allPaths),
		openSet:    make(priorityQueue, 0),
		openSetMap: make(map[State]*priorityQueueItem),
		closedSet:  make(map[State]bool),
	}
	heap.Init(&s.openSet)
	s.ledger.seed(s.startState)
	startItem := &priorityQueueItem{State: s.startState, Cost: 0}
	heap.Push(&s.openSet, startItem)
	s.openSetMap[s.startState] = startItem
	return s
}

// run steps until the search is done or ctx is cancelled.
func (s *search) run(ctx context.Context) error {
	for pops := 0; !s.done; pops++ {
		if pops%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		s.step()
	}
	return nil
}

// step pops the cheapest frontier entry and expands it. It returns the popped
// item, or nil once the search is done.
func (s *search) step() *priorityQueueItem {
	if s.done {
		return nil
	}
	if s.openSet.Len() == 0 {
		s.done = true
		return nil
	}

	currentItem := heap.Pop(&s.openSet).(*priorityQueueItem)
	current := currentItem.State
	delete(s.openSetMap, current)

	// Everything left is at least this expensive.
	if s.goalFound && currentItem.Cost > s.bestGoal {
		s.done = true
		return nil
	}
	if s.closedSet[current] {
		return currentItem
	}
	s.closedSet[current] = true
	s.expanded++

	if current.Cell == s.grid.Goal() {
		if !s.goalFound {
			s.goalFound = true
			s.bestGoal = currentItem.Cost
		}
		s.goals = append(s.goals, current)
		if !s.allPaths {
			s.done = true
		}
		return currentItem
	}

	for _, next := range s.moves(current) {
		if s.closedSet[next.to] {
			continue
		}
		tentative := currentItem.Cost + next.cost
		if !s.ledger.relax(current, next.to, tentative) {
			continue
		}
		if item, inOpen := s.openSetMap[next.to]; !inOpen {
			item = &priorityQueueItem{State: next.to, Cost: tentative}
			heap.Push(&s.openSet, item)
			s.openSetMap[next.to] = item
		} else if tentative < item.Cost {
			item.Cost = tentative
			heap.Fix(&s.openSet, item.IndexInQueue)
		}
	}
	return currentItem
}

// moves lists the transitions out of st: both rotations, plus a forward
// step when the next cell is open.
func (s *search) moves(st State) []move {
	out := make([]move, 0, 3)
	out = append(out,
		move{to: State{Cell: st.Cell, Facing: st.Facing.Clockwise()}, cost: s.options.TurnCost},
		move{to: State{Cell: st.Cell, Facing: st.Facing.CounterClockwise()}, cost: s.options.TurnCost},
	)
	ahead := s.grid.Neighbor(st.Cell, st.Facing)
	if s.grid.InBounds(ahead) && !s.grid.IsWall(ahead) {
		out = append(out, move{to: State{Cell: ahead, Facing: st.Facing}, cost: s.options.StepCost})
	}
	return out
}

// optimalResult aggregates the collected goal states. It is only meaningful
// once the search is done.
func (s *search) optimalResult() OptimalResult {
	if !s.goalFound {
		return OptimalResult{Cells: PathSet{}, ExpandedNodes: s.expanded}
	}
	return OptimalResult{
		Cells:         collectOptimalCells(s.ledger, s.goals),
		TotalCost:     s.bestGoal,
		ExpandedNodes: s.expanded,
		Found:         true,
	}
}
