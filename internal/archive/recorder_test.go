package archive

import (
	"testing"

	"eca/internal/config"
	"eca/internal/elementary"
)

func TestRecorder(t *testing.T) {
	s, err := config.Default().Apply(map[string]string{"cells": "3", "rows": "2", "initial": "010", "rule": "90"})
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	rule, _ := s.RuleTable()
	rec := NewRecorder(s, rule)
	row, _ := elementary.ParseRow("010")
	if err := rec.RenderRow(0, row); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := rec.RenderRow(2, row); err == nil {
		t.Fatal("expected error for out-of-order generation")
	}
	run := rec.Run()
	if run.Wolfram != 90 || run.RuleOutputs != "01011010" || len(run.Generations) != 1 || run.ID == "" {
		t.Fatalf("unexpected run %+v", run)
	}
}
