package archive

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Run is a recorded strip: the settings it was produced from and every
// displayed generation as a '0'/'1' string.
type Run struct {
	SchemaVersion int       `json:"schema_version"`
	CodecVersion  int       `json:"codec_version"`
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Cells         int       `json:"cells"`
	Rows          int       `json:"rows"`
	InitialStates string    `json:"initial_states"`
	// RuleOutputs lists the next state for "000".."111".
	RuleOutputs string   `json:"rule_outputs"`
	Wolfram     uint8    `json:"wolfram"`
	Generations []string `json:"generations"`
}

// RunSummary is the listing view of a Run.
type RunSummary struct {
	ID          string
	CreatedAt   time.Time
	Cells       int
	Rows        int
	Wolfram     uint8
	Generations int
}

// Summary returns the listing view of r.
func (r Run) Summary() RunSummary {
	return RunSummary{
		ID:          r.ID,
		CreatedAt:   r.CreatedAt,
		Cells:       r.Cells,
		Rows:        r.Rows,
		Wolfram:     r.Wolfram,
		Generations: len(r.Generations),
	}
}

// NewRunID returns a fresh random identifier.
func NewRunID() string { return uuid.NewString() }

// Store persists recorded runs.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context) ([]RunSummary, error)
}
