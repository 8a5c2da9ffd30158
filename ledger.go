package mazerun

// ledger maps each discovered state to the best cost found so far and to the
// states it was reached from at that cost.
//
// With admitTies set, a relaxation whose cost equals the stored best is
// accepted and its source is kept as an additional predecessor. Every edge
// cost is positive, so all tied predecessors of a state are recorded before
// that state is popped from the frontier.
type ledger struct {
	best      map[State]int
	preds     map[State][]State
	admitTies bool
}

func newLedger(admitTies bool) *ledger {
	return &ledger{
		best:      make(map[State]int),
		preds:     make(map[State][]State),
		admitTies: admitTies,
	}
}

// bestCost returns the cheapest cost recorded for s.
func (l *ledger) bestCost(s State) (int, bool) {
	cost, ok := l.best[s]
	return cost, ok
}

// tryImprove records cost for s and reports whether it is strictly better than
// the stored value, or equal to it when ties are admitted.
func (l *ledger) tryImprove(s State, cost int) bool {
	prev, ok := l.best[s]
	if ok && (cost > prev || (cost == prev && !l.admitTies)) {
		return false
	}
	l.best[s] = cost
	return true
}

// relax offers the transition from -> to at the given total cost. A strict
// improvement replaces the predecessor list, a tie extends it.
func (l *ledger) relax(from, to State, cost int) bool {
	prev, known := l.best[to]
	if !l.tryImprove(to, cost) {
		return false
	}
	if !known || cost < prev {
		l.preds[to] = []State{from}
	} else {
		l.preds[to] = append(l.preds[to], from)
	}
	return true
}

// seed records the zero-cost start state, which has no predecessors.
func (l *ledger) seed(s State) {
	l.best[s] = 0
}

func (l *ledger) predecessors(s State) []State {
	return l.preds[s]
}

// firstPredecessor is the back-pointer used to rebuild a single path.
func (l *ledger) firstPredecessor(s State) (State, bool) {
	p := l.preds[s]
	if len(p) == 0 {
		return State{}, false
	}
	return p[0], true
}

func (l *ledger) size() int { return len(l.best) }
