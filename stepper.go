package mazerun

// StepSnapshot exposes the per-iteration state of an all-optimal-paths search.
type StepSnapshot struct {
	// Current is the state popped by this step. It is meaningless when
	// Popped is false.
	Current   State
	Cost      int
	Popped    bool
	Frontier  int
	Finalized int
	Done      bool
	Found     bool
	StepIndex int
}

// Stepper drives OptimalCells one frontier pop at a time.
type Stepper struct {
	engine    *search
	stepCount int
}

// NewStepper prepares an all-optimal-paths search over grid without running it.
func NewStepper(grid *Grid, options ...Option) (*Stepper, error) {
	searchOptions, err := buildOptions(options)
	if err != nil {
		return nil, err
	}
	return &Stepper{engine: newSearch(grid, searchOptions, true)}, nil
}

// Step advances the search by one pop and returns a snapshot. Once the search
// is done further calls return the final snapshot again.
func (s *Stepper) Step() StepSnapshot {
	if !s.engine.done {
		s.stepCount++
	}
	item := s.engine.step()
	snapshot := StepSnapshot{
		Frontier:  s.engine.openSet.Len(),
		Finalized: s.engine.expanded,
		Done:      s.engine.done,
		Found:     s.engine.goalFound,
		StepIndex: s.stepCount,
	}
	if item != nil {
		snapshot.Current = item.State
		snapshot.Cost = item.Cost
		snapshot.Popped = true
	}
	return snapshot
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.engine.done }

// Explored reports whether any orientation of c has been finalized.
func (s *Stepper) Explored(c Cell) bool {
	for _, o := range Orientations() {
		if s.engine.closedSet[State{Cell: c, Facing: o}] {
			return true
		}
	}
	return false
}

// Queued reports whether any orientation of c is waiting in the frontier.
func (s *Stepper) Queued(c Cell) bool {
	for _, o := range Orientations() {
		if _, ok := s.engine.openSetMap[State{Cell: c, Facing: o}]; ok {
			return true
		}
	}
	return false
}

// Result returns the aggregated outcome. The boolean is false until the
// search is done.
func (s *Stepper) Result() (OptimalResult, bool) {
	if !s.engine.done {
		return OptimalResult{}, false
	}
	return s.engine.optimalResult(), true
}
