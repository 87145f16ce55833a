package elementary

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func mustRow(t *testing.T, s string) Row {
	t.Helper()
	row, err := ParseRow(s)
	if err != nil {
		t.Fatalf("parse row %q: %v", s, err)
	}
	return row
}

func configured(t *testing.T, initial string, capacity int, rule RuleTable, opts ...Option) *Automaton {
	t.Helper()
	a := New(opts...)
	if err := a.Reconfigure(mustRow(t, initial), capacity, rule); err != nil {
		t.Fatalf("reconfigure: %v", err)
	}
	return a
}

func TestAdvanceAllButZeroRule(t *testing.T) {
	// Rule 254: every neighborhood except 000 produces a live cell.
	a := configured(t, "00100", 10, RuleFromWolfram(254))

	row, err := a.Advance()
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if got := row.String(); got != "01110" {
		t.Fatalf("generation 1 = %s, expected 01110", got)
	}
	if a.Generation() != 1 {
		t.Fatalf("generation counter = %d, expected 1", a.Generation())
	}

	row, err = a.Advance()
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if got := row.String(); got != "01110" {
		t.Fatalf("generation 2 = %s, expected edges forced dead", got)
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	// 000 -> 0, every other neighborhood alive.
	a := configured(t, "0000000", 50, RuleFromWolfram(0xFE))
	for g := 1; g <= 50; g++ {
		row, err := a.Advance()
		if err != nil {
			t.Fatalf("advance %d: %v", g, err)
		}
		if row.String() != "0000000" {
			t.Fatalf("generation %d = %s, expected all dead", g, row)
		}
	}
}

func TestInitialRowKeepsLiveEdges(t *testing.T) {
	a := configured(t, "10001", 3, RuleFromWolfram(255))
	if got := a.CurrentRow().String(); got != "10001" {
		t.Fatalf("initial row = %s, expected it unchanged", got)
	}
	row, err := a.Advance()
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if got := row.String(); got != "01110" {
		t.Fatalf("generation 1 = %s, expected 01110", got)
	}
}

func TestBoundaryAndLengthInvariants(t *testing.T) {
	initial := "1101001110100101110011"
	for rule := 0; rule < 256; rule++ {
		a := configured(t, initial, 20, RuleFromWolfram(uint8(rule)))
		for !a.IsComplete() {
			row, err := a.Advance()
			if err != nil {
				t.Fatalf("rule %d: advance: %v", rule, err)
			}
			if len(row) != len(initial) {
				t.Fatalf("rule %d: row length %d, expected %d", rule, len(row), len(initial))
			}
			if row[0] != Dead || row[len(row)-1] != Dead {
				t.Fatalf("rule %d generation %d: edges not dead: %s", rule, a.Generation(), row)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	run := func() []string {
		a := configured(t, "0000000000100000000001000000000", 40, RuleFromWolfram(30))
		var rows []string
		for !a.IsComplete() {
			row, err := a.Advance()
			if err != nil {
				t.Fatalf("advance: %v", err)
			}
			rows = append(rows, row.String())
		}
		return rows
	}
	first := run()
	for i := 0; i < 3; i++ {
		if !slices.Equal(first, run()) {
			t.Fatal("repeated runs produced different generations")
		}
	}
}

func TestGenerationMonotonic(t *testing.T) {
	a := configured(t, "010", 5, RuleFromWolfram(90))
	if a.Generation() != 0 {
		t.Fatalf("generation after reconfigure = %d", a.Generation())
	}
	for i := 1; i <= 5; i++ {
		if _, err := a.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		if a.Generation() != i {
			t.Fatalf("generation = %d, expected %d", a.Generation(), i)
		}
	}
	if err := a.Reconfigure(mustRow(t, "0110"), 2, RuleFromWolfram(90)); err != nil {
		t.Fatalf("reconfigure: %v", err)
	}
	if a.Generation() != 0 || a.IsComplete() {
		t.Fatalf("reconfigure did not reset progress: generation=%d complete=%v", a.Generation(), a.IsComplete())
	}
	if a.Len() != 4 {
		t.Fatalf("row length = %d, expected 4", a.Len())
	}
}

func TestSynchronousUpdate(t *testing.T) {
	// Rule 2: only 001 produces a live cell, so a single live cell moves one
	// step left per generation. An in-place update would smear it along the row.
	a := configured(t, "0000000010", 4, RuleFromWolfram(2))
	expected := []string{"0000000100", "0000001000", "0000010000", "0000100000"}
	for i, want := range expected {
		row, err := a.Advance()
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
		if row.String() != want {
			t.Fatalf("generation %d = %s, expected %s", i+1, row, want)
		}
	}

	// Rule 16: only 100 produces a live cell, so the cell moves right.
	a = configured(t, "0100000000", 3, RuleFromWolfram(16))
	expected = []string{"0010000000", "0001000000", "0000100000"}
	for i, want := range expected {
		row, err := a.Advance()
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
		if row.String() != want {
			t.Fatalf("right shift generation %d = %s, expected %s", i+1, row, want)
		}
	}
}

func TestExhaustedAfterCapacity(t *testing.T) {
	a := configured(t, "00100", 1, RuleFromWolfram(90))
	if a.IsComplete() {
		t.Fatal("fresh automaton reported complete")
	}
	if _, err := a.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !a.IsComplete() {
		t.Fatal("expected automaton to be complete after one advance")
	}
	before := a.CurrentRow()
	if _, err := a.Advance(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("second advance err = %v, expected ErrExhausted", err)
	}
	if a.Generation() != 1 || !slices.Equal(before, a.CurrentRow()) {
		t.Fatal("failed advance must not change state")
	}
}

func TestAdvanceRequiresConfiguration(t *testing.T) {
	a := New()
	if a.IsComplete() || a.Configured() || a.Len() != 0 {
		t.Fatal("new automaton must be empty and unconfigured")
	}
	if _, err := a.Advance(); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("advance err = %v, expected ErrNotConfigured", err)
	}
}

func TestReconfigureRejectsBadInput(t *testing.T) {
	a := New()
	cases := []struct {
		name     string
		row      Row
		capacity int
		want     error
	}{
		{name: "empty row", row: Row{}, capacity: 1, want: ErrEmptyRow},
		{name: "zero capacity", row: Row{Dead}, capacity: 0, want: ErrRowCapacity},
		{name: "bad cell", row: Row{Dead, Cell(7)}, capacity: 1, want: ErrInvalidCell},
	}
	for _, tc := range cases {
		err := a.Reconfigure(tc.row, tc.capacity, RuleFromWolfram(30))
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, expected %v", tc.name, err, tc.want)
		}
		if !errors.Is(err, ErrConfiguration) {
			t.Fatalf("%s: err = %v does not wrap ErrConfiguration", tc.name, err)
		}
	}
	if a.Configured() {
		t.Fatal("failed reconfigure must leave the automaton unconfigured")
	}
}

func TestSnapshotsDoNotAlias(t *testing.T) {
	initial := mustRow(t, "00100")
	a := New()
	if err := a.Reconfigure(initial, 3, RuleFromWolfram(90)); err != nil {
		t.Fatalf("reconfigure: %v", err)
	}
	initial[2] = Dead
	if a.CurrentRow().String() != "00100" {
		t.Fatal("automaton aliases the caller's initial row")
	}
	snap := a.CurrentRow()
	snap[1] = Alive
	if a.CurrentRow().String() != "00100" {
		t.Fatal("CurrentRow returned a mutable alias")
	}
	row, _ := a.Advance()
	row[2] = Alive
	if a.CurrentRow().String() != "01010" {
		t.Fatalf("Advance returned a mutable alias: %s", a.CurrentRow())
	}
}

func TestTinyRows(t *testing.T) {
	for _, initial := range []string{"1", "11"} {
		a := configured(t, initial, 2, RuleFromWolfram(255))
		row, err := a.Advance()
		if err != nil {
			t.Fatalf("%s: advance: %v", initial, err)
		}
		if row.String() != strings.Repeat("0", len(initial)) {
			t.Fatalf("%s: generation 1 = %s, expected all edges dead", initial, row)
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 2000; i++ {
		if i%7 == 0 || i%13 == 0 {
			b.WriteByte('1')
			continue
		}
		b.WriteByte('0')
	}
	initial := b.String()
	for _, rule := range []uint8{30, 90, 110, 184} {
		seq := configured(t, initial, 30, RuleFromWolfram(rule))
		par := configured(t, initial, 30, RuleFromWolfram(rule), WithWorkers(4))
		for !seq.IsComplete() {
			want, err := seq.Advance()
			if err != nil {
				t.Fatalf("sequential advance: %v", err)
			}
			got, err := par.Advance()
			if err != nil {
				t.Fatalf("parallel advance: %v", err)
			}
			if !slices.Equal(want, got) {
				t.Fatalf("rule %d generation %d differs between sequential and parallel", rule, seq.Generation())
			}
		}
	}
}
