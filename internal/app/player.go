package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"eca/internal/config"
	"eca/internal/core"
	"eca/internal/elementary"
)

// RowRenderer receives each displayed generation.
type RowRenderer interface {
	RenderRow(generation int, row elementary.Row) error
}

// Player owns one automaton and the strip of generations drawn so far. It is
// driven by a single caller: a frame callback, a terminal loop or a batch run.
type Player struct {
	automaton *elementary.Automaton
	settings  config.Settings
	grid      *core.ByteGrid
	renderers []RowRenderer
	loaded    bool
}

// NewPlayer returns a Player with an unconfigured automaton.
func NewPlayer(renderers ...RowRenderer) *Player {
	return &Player{automaton: elementary.New(), renderers: renderers}
}

// NewPlayerWithAutomaton lets callers supply an automaton built with options.
func NewPlayerWithAutomaton(a *elementary.Automaton, renderers ...RowRenderer) *Player {
	return &Player{automaton: a, renderers: renderers}
}

// AddRenderer registers another receiver for displayed generations.
func (p *Player) AddRenderer(r RowRenderer) { p.renderers = append(p.renderers, r) }

// Load validates settings, reconfigures the automaton and clears the strip.
// On error the previous state is kept.
func (p *Player) Load(s config.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	rule, err := s.RuleTable()
	if err != nil {
		return err
	}
	initial, err := s.InitialRow()
	if err != nil {
		return err
	}
	if err := p.automaton.Reconfigure(initial, s.Rows, rule); err != nil {
		return err
	}
	p.settings = s.Clone()
	if p.grid == nil || p.grid.W != s.Cells || p.grid.H != s.Rows {
		p.grid = core.NewByteGrid(s.Cells, s.Rows)
	} else {
		p.grid.Clear()
	}
	p.loaded = true
	return nil
}

// Restart reloads the last applied settings from generation 0.
func (p *Player) Restart() error {
	if !p.loaded {
		return elementary.ErrNotConfigured
	}
	return p.Load(p.settings)
}

// Step displays the current generation at its row and advances the
// automaton. It reports false once every row has been drawn.
func (p *Player) Step() (bool, error) {
	if !p.loaded || p.automaton.IsComplete() {
		return false, nil
	}
	generation := p.automaton.Generation()
	row := p.automaton.CurrentRow()
	p.grid.SetRow(generation, row.Bytes())
	for _, r := range p.renderers {
		if err := r.RenderRow(generation, row); err != nil {
			return false, fmt.Errorf("render generation %d: %w", generation, err)
		}
	}
	if _, err := p.automaton.Advance(); err != nil {
		return false, err
	}
	return true, nil
}

// RunAll steps until every row has been drawn or ctx is done.
func (p *Player) RunAll(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := p.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// Done reports whether every configured row has been drawn.
func (p *Player) Done() bool { return p.loaded && p.automaton.IsComplete() }

// Generation returns the number of rows drawn since the last Load.
func (p *Player) Generation() int { return p.automaton.Generation() }

// Grid exposes the strip of drawn generations, or nil before Load.
func (p *Player) Grid() *core.ByteGrid { return p.grid }

// Settings returns a copy of the applied settings.
func (p *Player) Settings() config.Settings { return p.settings.Clone() }

// Rule returns the rule table in force.
func (p *Player) Rule() elementary.RuleTable { return p.automaton.Rule() }

// Parameters reports the applied settings and progress for the HUD.
func (p *Player) Parameters() core.ParameterSnapshot {
	rule := p.automaton.Rule()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Strip",
			Params: []core.Parameter{
				intParam("cells", "Cells", p.settings.Cells),
				intParam("rows", "Rows", p.settings.Rows),
				intParam("generation", "Generation", p.automaton.Generation()),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				intParam("rule", "Wolfram", int(rule.Wolfram())),
				{Key: "table", Label: "000..111", Type: core.ParamTypeString, Value: rule.Outputs()},
				{Key: "active", Label: "Active", Type: core.ParamTypeString, Value: strings.Join(p.settings.Active(), " ")},
			},
		},
	}}
}

// ParameterControls exposes the rule number as a HUD control.
func (p *Player) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{Key: "rule", Label: "Rule", Step: 1, Min: 0, Max: 255}}
}

// SetIntParameter applies a new Wolfram rule and restarts the strip.
func (p *Player) SetIntParameter(key string, value int) bool {
	if key != "rule" || value < 0 || value > 255 || !p.loaded {
		return false
	}
	next := p.settings.Clone()
	next.ApplyWolfram(uint8(value))
	return p.Load(next) == nil
}

// Reseed restarts with a random initial row of the same width.
func (p *Player) Reseed(seed int64) error {
	if !p.loaded {
		return elementary.ErrNotConfigured
	}
	next := p.settings.Clone()
	next.InitialStates = config.RandomInitialStates(next.Cells, seed)
	return p.Load(next)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
