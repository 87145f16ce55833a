package elementary

import "sync"

// minStripCells is the smallest interior strip handed to a worker goroutine.
const minStripCells = 256

// Option customizes an Automaton.
type Option func(*Automaton)

// WithWorkers splits the interior of each generation across n goroutines.
// Values below 2 keep the single-threaded path.
func WithWorkers(n int) Option {
	return func(a *Automaton) {
		if n < 1 {
			n = 1
		}
		a.workers = n
	}
}

// Automaton is a one-dimensional, two-state, radius-one cellular automaton
// with both edges fixed to Dead after the initial generation.
//
// An Automaton is not safe for concurrent use; it is owned by a single driver.
type Automaton struct {
	row        Row
	rule       RuleTable
	capacity   int
	generation int
	configured bool
	workers    int
}

// New returns an unconfigured automaton. Reconfigure must be called before
// Advance.
func New(opts ...Option) *Automaton {
	a := &Automaton{workers: 1}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Reconfigure replaces the row, rule table and row capacity and resets the
// generation counter to zero. Prior progress is discarded. The initial row is
// copied and kept exactly as supplied, edges included.
func (a *Automaton) Reconfigure(initial Row, rowCapacity int, rule RuleTable) error {
	if len(initial) == 0 {
		return ErrEmptyRow
	}
	if rowCapacity < 1 {
		return ErrRowCapacity
	}
	for i, c := range initial {
		if !c.Valid() {
			return invalidCellAt(i, c)
		}
	}
	a.row = initial.Clone()
	a.rule = rule
	a.capacity = rowCapacity
	a.generation = 0
	a.configured = true
	return nil
}

// Advance computes the next generation, makes it current and returns a copy.
func (a *Automaton) Advance() (Row, error) {
	if !a.configured {
		return nil, ErrNotConfigured
	}
	if a.IsComplete() {
		return nil, ErrExhausted
	}

	prev := a.row
	next := make(Row, len(prev))
	last := len(prev) - 1
	if a.workers > 1 && last-1 >= 2*minStripCells {
		a.stepParallel(prev, next)
	} else {
		stepRange(a.rule, prev, next, 1, last)
	}
	next[0] = Dead
	next[last] = Dead

	a.row = next
	a.generation++
	return next.Clone(), nil
}

// stepRange fills next[lo:hi] from prev. Only prev is read.
func stepRange(rule RuleTable, prev, next Row, lo, hi int) {
	for i := lo; i < hi; i++ {
		next[i] = rule.Next(prev[i-1], prev[i], prev[i+1])
	}
}

func (a *Automaton) stepParallel(prev, next Row) {
	lo, hi := 1, len(prev)-1
	interior := hi - lo
	workers := a.workers
	if maxWorkers := interior / minStripCells; workers > maxWorkers {
		workers = maxWorkers
	}
	strip := (interior + workers - 1) / workers

	var wg sync.WaitGroup
	for start := lo; start < hi; start += strip {
		end := start + strip
		if end > hi {
			end = hi
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			stepRange(a.rule, prev, next, start, end)
		}(start, end)
	}
	wg.Wait()
}

// CurrentRow returns a copy of the current generation.
func (a *Automaton) CurrentRow() Row { return a.row.Clone() }

// Generation returns the number of generations produced since the last
// Reconfigure.
func (a *Automaton) Generation() int { return a.generation }

// RowCapacity returns the configured number of generations to produce.
func (a *Automaton) RowCapacity() int { return a.capacity }

// Len returns the number of cells per row.
func (a *Automaton) Len() int { return len(a.row) }

// Rule returns the rule table in force.
func (a *Automaton) Rule() RuleTable { return a.rule }

// Configured reports whether Reconfigure has succeeded at least once.
func (a *Automaton) Configured() bool { return a.configured }

// IsComplete reports whether the row capacity has been reached. An
// unconfigured automaton is never complete.
func (a *Automaton) IsComplete() bool {
	return a.configured && a.generation >= a.capacity
}
