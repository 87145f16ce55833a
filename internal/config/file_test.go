package config

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"eca/internal/elementary"
)

func TestParseSettingsFile(t *testing.T) {
	src := `
// rule 90 from a single cell, drawn twice side by side
cells = 22;
rows = 10;
initial = "0" * 5 + "1" + "0" * 5 + "00000100000";
wolfram = 90;
rule "111" = 1;
`
	s, err := Parse("test.eca", src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Cells != 22 || s.Rows != 10 {
		t.Fatalf("unexpected dimensions %+v", s)
	}
	if s.InitialStates != "0000010000000000100000" {
		t.Fatalf("initial = %s", s.InitialStates)
	}
	table, err := s.RuleTable()
	if err != nil {
		t.Fatalf("rule table: %v", err)
	}
	if table.Wolfram() != 90|128 {
		t.Fatalf("rule = %d, expected %d", table.Wolfram(), 90|128)
	}
}

func TestParseActiveList(t *testing.T) {
	s, err := Parse("active.eca", `cells = 5; active = ["001", "100"];`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !slices.Equal(s.Active(), []string{"001", "100"}) {
		t.Fatalf("active = %v", s.Active())
	}
	if s.InitialStates != "00100" {
		t.Fatalf("initial = %s, expected centred cell", s.InitialStates)
	}

	s, err = Parse("empty.eca", `active = [];`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(s.Active()) != 0 {
		t.Fatalf("active = %v, expected none", s.Active())
	}
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	s, err := Parse("empty.eca", "// nothing here\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	d := Default()
	if s.Cells != d.Cells || s.InitialStates != d.InitialStates || !slices.Equal(s.Active(), d.Active()) {
		t.Fatal("empty file did not keep defaults")
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":        `cells 5;`,
		"unknown key":   `colour = 3;`,
		"rule value":    `rule "001" = 2;`,
		"wolfram range": `wolfram = 256;`,
		"bad key":       `rule "0011" = 1;`,
		"mismatch":      `cells = 4; initial = "01";`,
		"huge repeat":   `initial = "01" * 9223372036854775807;`,
		"long pattern":  `initial = "0" * 600 + "1" * 401;`,
	}
	for name, src := range cases {
		if _, err := Parse(name, src); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}

	_, err := Parse("huge.eca", `initial = "01" * 9223372036854775807;`)
	if err == nil || !strings.Contains(err.Error(), "initial states longer than 1000 cells") {
		t.Fatalf("err = %v, expected length limit error", err)
	}
	if _, err := Parse("limit.eca", `cells = 1000; initial = "0" * 999 + "1";`); err != nil {
		t.Fatalf("pattern at the cell limit rejected: %v", err)
	}

	_, err = Parse("mismatch.eca", `cells = 4; initial = "01";`)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "initialStates" {
		t.Fatalf("err = %v, expected initialStates validation error", err)
	}
	if !errors.Is(err, elementary.ErrConfiguration) || !strings.HasPrefix(err.Error(), "mismatch.eca") {
		t.Fatalf("err = %v lacks file name or configuration cause", err)
	}
}
