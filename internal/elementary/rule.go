package elementary

import (
	"fmt"
	"strings"
)

// RuleTable maps each of the eight neighborhoods to the next cell state. The
// zero value maps everything to Dead.
type RuleTable struct {
	next [8]Cell
}

// BuildRuleTable constructs a table from an explicit neighborhood mapping.
// Every one of the eight neighborhoods must be present.
func BuildRuleTable(entries map[Neighborhood]Cell) (RuleTable, error) {
	var t RuleTable
	var seen [8]bool
	for n, c := range entries {
		if !n.valid() {
			return RuleTable{}, fmt.Errorf("%w: neighborhood {%d %d %d}", ErrInvalidCell, n.Left, n.Center, n.Right)
		}
		if !c.Valid() {
			return RuleTable{}, fmt.Errorf("%w: value %d for %s", ErrInvalidCell, c, n)
		}
		idx := n.Index()
		t.next[idx] = c
		seen[idx] = true
	}
	var missing []string
	for i, ok := range seen {
		if !ok {
			missing = append(missing, neighborhoodAt(uint8(i)).String())
		}
	}
	if len(missing) > 0 {
		return RuleTable{}, fmt.Errorf("%w: missing %s", ErrIncompleteRule, strings.Join(missing, ", "))
	}
	return t, nil
}

// ParseRuleTable builds a table from string keys ("000".."111") to '0'/'1'.
func ParseRuleTable(entries map[string]byte) (RuleTable, error) {
	parsed := make(map[Neighborhood]Cell, len(entries))
	for key, value := range entries {
		n, err := ParseNeighborhood(key)
		if err != nil {
			return RuleTable{}, err
		}
		c, err := ParseCell(value)
		if err != nil {
			return RuleTable{}, fmt.Errorf("rule %s: %w", key, err)
		}
		parsed[n] = c
	}
	return BuildRuleTable(parsed)
}

// RuleFromWolfram returns the table encoded by a Wolfram rule number, where
// bit i of n is the next state for the neighborhood with index i.
func RuleFromWolfram(n uint8) RuleTable {
	var t RuleTable
	for i := range t.next {
		t.next[i] = Cell(n >> uint(i) & 1)
	}
	return t
}

// Next returns the state for a cell whose neighborhood is (left, center, right).
func (t RuleTable) Next(left, center, right Cell) Cell {
	return t.next[Neighborhood{Left: left, Center: center, Right: right}.Index()]
}

// Wolfram returns the rule number equivalent to t.
func (t RuleTable) Wolfram() uint8 {
	var n uint8
	for i, c := range t.next {
		n |= uint8(c&1) << uint(i)
	}
	return n
}

// Entries returns the table as an explicit neighborhood map.
func (t RuleTable) Entries() map[Neighborhood]Cell {
	out := make(map[Neighborhood]Cell, len(t.next))
	for i, c := range t.next {
		out[neighborhoodAt(uint8(i))] = c
	}
	return out
}

// Active lists the neighborhoods that produce a live cell, in canonical order.
func (t RuleTable) Active() []string {
	var out []string
	for i, c := range t.next {
		if c == Alive {
			out = append(out, neighborhoodAt(uint8(i)).String())
		}
	}
	return out
}

// Outputs returns the next states for "000".."111" as an 8-character string.
func (t RuleTable) Outputs() string {
	b := make([]byte, len(t.next))
	for i, c := range t.next {
		b[i] = c.Byte()
	}
	return string(b)
}

func (t RuleTable) String() string {
	return fmt.Sprintf("rule %d", t.Wolfram())
}
