// Package sweep runs one initial row under many rules and summarizes how each
// strip evolves.
package sweep

import (
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"eca/internal/elementary"
)

// Result summarizes one rule's strip.
type Result struct {
	Rule uint8
	// DiedAt is the first generation with no live cells, or -1.
	DiedAt int
	// CycleStart and Period describe the first repeated row, or -1 and 0 when
	// no row repeats within the strip.
	CycleStart int
	Period     int
	FinalAlive int
	// Density is the mean fraction of live cells over all generations.
	Density float64
}

// Settled reports whether the strip reached a fixed point or cycle.
func (r Result) Settled() bool { return r.Period > 0 }

// AllRules returns 0..255.
func AllRules() []uint8 {
	rules := make([]uint8, 256)
	for i := range rules {
		rules[i] = uint8(i)
	}
	return rules
}

// Run evaluates every rule from initial for rows generations using up to
// workers goroutines. Results come back in the order of rules.
func Run(ctx context.Context, initial elementary.Row, rows int, rules []uint8, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(rules))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rule := range rules {
		g.Go(func() error {
			res, err := Evaluate(ctx, initial, rows, rule)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Evaluate produces rows generations (the initial row included) under rule.
func Evaluate(ctx context.Context, initial elementary.Row, rows int, rule uint8) (Result, error) {
	a := elementary.New()
	if err := a.Reconfigure(initial, rows, elementary.RuleFromWolfram(rule)); err != nil {
		return Result{}, err
	}
	res := Result{Rule: rule, DiedAt: -1, CycleStart: -1}
	seen := map[string]int{}
	alive := 0
	row := a.CurrentRow()
	for generation := 0; ; generation++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		n := row.Alive()
		alive += n
		if n == 0 && res.DiedAt < 0 {
			res.DiedAt = generation
		}
		key := row.String()
		if first, ok := seen[key]; ok && res.Period == 0 {
			res.CycleStart = first
			res.Period = generation - first
		}
		seen[key] = generation
		res.FinalAlive = n
		if generation == rows-1 {
			break
		}
		next, err := a.Advance()
		if err != nil {
			return Result{}, err
		}
		row = next
	}
	res.Density = float64(alive) / float64(rows*len(initial))
	return res, nil
}

// Rank orders results with the densest unsettled strips first.
func Rank(results []Result) []Result {
	out := slices.Clone(results)
	slices.SortStableFunc(out, func(a, b Result) int {
		if a.Settled() != b.Settled() {
			if !a.Settled() {
				return -1
			}
			return 1
		}
		switch {
		case a.Density > b.Density:
			return -1
		case a.Density < b.Density:
			return 1
		}
		return int(a.Rule) - int(b.Rule)
	})
	return out
}
