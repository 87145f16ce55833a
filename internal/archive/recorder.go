package archive

import (
	"fmt"
	"time"

	"eca/internal/config"
	"eca/internal/elementary"
)

// Recorder collects displayed generations into a Run. It satisfies the
// player's row renderer contract.
type Recorder struct {
	run Run
}

// NewRecorder starts a run for settings under a fresh ID.
func NewRecorder(s config.Settings, rule elementary.RuleTable) *Recorder {
	return &Recorder{run: Run{
		ID:            NewRunID(),
		CreatedAt:     time.Now().UTC(),
		Cells:         s.Cells,
		Rows:          s.Rows,
		InitialStates: s.InitialStates,
		RuleOutputs:   rule.Outputs(),
		Wolfram:       rule.Wolfram(),
		Generations:   make([]string, 0, s.Rows),
	}}
}

// RenderRow appends row; generations must arrive in order.
func (r *Recorder) RenderRow(generation int, row elementary.Row) error {
	if generation != len(r.run.Generations) {
		return fmt.Errorf("recorder expected generation %d, got %d", len(r.run.Generations), generation)
	}
	r.run.Generations = append(r.run.Generations, row.String())
	return nil
}

// Run returns the recorded run.
func (r *Recorder) Run() Run { return r.run }
