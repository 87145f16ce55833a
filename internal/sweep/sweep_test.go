package sweep

import (
	"context"
	"errors"
	"testing"

	"eca/internal/elementary"
)

func mustRow(t *testing.T, s string) elementary.Row {
	t.Helper()
	row, err := elementary.ParseRow(s)
	if err != nil {
		t.Fatalf("parse row: %v", err)
	}
	return row
}

func TestEvaluateDiesOut(t *testing.T) {
	res, err := Evaluate(context.Background(), mustRow(t, "00100"), 4, 0)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.DiedAt != 1 || res.FinalAlive != 0 {
		t.Fatalf("rule 0: %+v", res)
	}
	if res.CycleStart != 1 || res.Period != 1 {
		t.Fatalf("rule 0 should settle on the dead row: %+v", res)
	}
}

func TestEvaluateFixedPoint(t *testing.T) {
	res, err := Evaluate(context.Background(), mustRow(t, "00100"), 5, 254)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	// 00100 -> 01110 -> 01110
	if res.DiedAt != -1 || res.CycleStart != 1 || res.Period != 1 || res.FinalAlive != 3 {
		t.Fatalf("rule 254: %+v", res)
	}
	if want := float64(1+3*4) / float64(5*5); res.Density != want {
		t.Fatalf("density = %v, expected %v", res.Density, want)
	}
}

func TestEvaluateNoRepeat(t *testing.T) {
	res, err := Evaluate(context.Background(), mustRow(t, "0000000000100000000000"), 3, 90)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.Settled() || res.CycleStart != -1 {
		t.Fatalf("rule 90 should not repeat in three rows: %+v", res)
	}
}

func TestRunAllRules(t *testing.T) {
	initial := mustRow(t, "0000000100000000")
	results, err := Run(context.Background(), initial, 16, AllRules(), 4)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != 256 {
		t.Fatalf("results = %d", len(results))
	}
	for i, res := range results {
		if int(res.Rule) != i {
			t.Fatalf("result %d has rule %d", i, res.Rule)
		}
		single, err := Evaluate(context.Background(), initial, 16, res.Rule)
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		if single != res {
			t.Fatalf("rule %d: parallel %+v != sequential %+v", i, res, single)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, mustRow(t, "010"), 3, []uint8{30}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, expected context.Canceled", err)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	if _, err := Run(context.Background(), nil, 3, []uint8{30}, 1); !errors.Is(err, elementary.ErrEmptyRow) {
		t.Fatalf("err = %v, expected ErrEmptyRow", err)
	}
}

func TestRank(t *testing.T) {
	results := []Result{
		{Rule: 1, Period: 1, Density: 0.9},
		{Rule: 2, Density: 0.2},
		{Rule: 3, Density: 0.5},
	}
	ranked := Rank(results)
	if ranked[0].Rule != 3 || ranked[1].Rule != 2 || ranked[2].Rule != 1 {
		t.Fatalf("rank order = %v", ranked)
	}
	if results[0].Rule != 1 {
		t.Fatal("Rank modified its input")
	}
}
