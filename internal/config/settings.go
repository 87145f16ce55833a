package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"eca/internal/core"
	"eca/internal/elementary"
)

// Bounds enforced on user-supplied dimensions.
const (
	MinCells = 1
	MaxCells = 1000
	MinRows  = 1
	MaxRows  = 1000
)

const (
	defaultCells   = 505
	defaultRows    = 505
	defaultRepeats = 5
)

// defaultBlock is one 101-cell segment of the default initial row.
var defaultBlock = strings.Repeat("0", 50) + "1" + strings.Repeat("0", 50)

var defaultActive = []string{"001", "011", "100", "110"}

// Settings is the user-facing automaton configuration. Rules maps each
// neighborhood string ("000".."111") to '0' or '1'.
type Settings struct {
	Cells         int
	Rows          int
	InitialStates string
	Rules         map[string]byte
}

// Default returns the settings the application starts with: 505 cells and
// rows, five single-cell blocks and rule 90.
func Default() Settings {
	s := Settings{
		Cells:         defaultCells,
		Rows:          defaultRows,
		InitialStates: strings.Repeat(defaultBlock, defaultRepeats),
	}
	s.SetActive(defaultActive)
	return s
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	out := s
	out.Rules = make(map[string]byte, len(s.Rules))
	for k, v := range s.Rules {
		out.Rules[k] = v
	}
	return out
}

// SetActive replaces the rule entries so that exactly the listed
// neighborhoods produce a live cell.
func (s *Settings) SetActive(active []string) {
	s.Rules = make(map[string]byte, 8)
	for _, n := range elementary.Neighborhoods() {
		s.Rules[n.String()] = '0'
	}
	for _, key := range active {
		s.Rules[strings.TrimSpace(key)] = '1'
	}
}

// ApplyWolfram replaces the rule entries with those of Wolfram rule n.
func (s *Settings) ApplyWolfram(n uint8) {
	s.SetActive(elementary.RuleFromWolfram(n).Active())
}

// Active lists the neighborhoods set to '1', sorted.
func (s Settings) Active() []string {
	var out []string
	for k, v := range s.Rules {
		if v == '1' {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// CenteredInitialStates returns n dead cells with a single live cell in the
// middle.
func CenteredInitialStates(n int) string {
	if n <= 0 {
		return ""
	}
	buf := []byte(strings.Repeat("0", n))
	buf[n/2] = '1'
	return string(buf)
}

// RandomInitialStates returns n cells drawn from a deterministic seed.
func RandomInitialStates(n int, seed int64) string {
	return core.NewRNG(seed).BinaryString(n)
}

// Validate checks cells, rows, initial states and then the rule entries, and
// returns the first problem found.
func (s Settings) Validate() error {
	if s.Cells < MinCells || s.Cells > MaxCells {
		return &ValidationError{Field: "cells", Message: "Invalid cell number."}
	}
	if s.Rows < MinRows || s.Rows > MaxRows {
		return &ValidationError{Field: "rows", Message: "Invalid rows number."}
	}
	if len(s.InitialStates) != s.Cells {
		return &ValidationError{Field: "initialStates", Message: "Cell count must equal initial states length."}
	}
	if i := strings.IndexFunc(s.InitialStates, func(r rune) bool { return r != '0' && r != '1' }); i >= 0 {
		return &ValidationError{
			Field:   "initialStates",
			Message: fmt.Sprintf("Initial states may only contain 0 and 1 (position %d).", i),
		}
	}
	for _, n := range elementary.Neighborhoods() {
		v, ok := s.Rules[n.String()]
		if !ok {
			return &ValidationError{Field: n.String(), Message: "Rule " + n.String() + " is not set."}
		}
		if v != '0' && v != '1' {
			return &ValidationError{Field: n.String(), Message: "Rule " + n.String() + " must be 0 or 1."}
		}
	}
	if len(s.Rules) != 8 {
		return &ValidationError{Field: "rules", Message: "Rules may only use the neighborhoods 000 to 111."}
	}
	return nil
}

// RuleTable converts the rule entries into the automaton's table.
func (s Settings) RuleTable() (elementary.RuleTable, error) {
	return elementary.ParseRuleTable(s.Rules)
}

// InitialRow converts the initial states into a row.
func (s Settings) InitialRow() (elementary.Row, error) {
	return elementary.ParseRow(s.InitialStates)
}

// Apply returns a validated copy of s with flag-style key/value pairs
// applied. Keys are cells, rows, initial, rule (a Wolfram number), active (a
// comma separated neighborhood list) and the eight neighborhoods themselves.
// Setting cells without initial centres a single live cell in the new width.
func (s Settings) Apply(cfg map[string]string) (Settings, error) {
	s = s.Clone()
	if v, ok := cfg["cells"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, &ValidationError{Field: "cells", Message: "Invalid cell number."}
		}
		s.Cells = parsed
		if _, ok := cfg["initial"]; !ok {
			s.InitialStates = CenteredInitialStates(parsed)
		}
	}
	if v, ok := cfg["rows"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, &ValidationError{Field: "rows", Message: "Invalid rows number."}
		}
		s.Rows = parsed
	}
	if v, ok := cfg["initial"]; ok {
		s.InitialStates = v
	}
	if v, ok := cfg["rule"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 || parsed > 255 {
			return Settings{}, &ValidationError{Field: "rule", Message: "Rule number must be between 0 and 255."}
		}
		s.ApplyWolfram(uint8(parsed))
	}
	if v, ok := cfg["active"]; ok {
		s.SetActive(splitList(v))
	}
	for _, n := range elementary.Neighborhoods() {
		if v, ok := cfg[n.String()]; ok {
			if len(v) != 1 {
				return Settings{}, &ValidationError{Field: n.String(), Message: "Rule " + n.String() + " must be 0 or 1."}
			}
			s.Rules[n.String()] = v[0]
		}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
