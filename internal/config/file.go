package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// A settings file is a list of semicolon-terminated assignments:
//
//	// rule 90 from a single cell
//	cells = 101;
//	rows = 50;
//	initial = "0" * 50 + "1" + "0" * 50;
//	wolfram = 90;
//	rule "111" = 1;
//	active = ["001", "011"];
//
// Later assignments override earlier ones; anything left out keeps its
// default value.
type settingsFile struct {
	Entries []*settingsEntry `parser:"@@*"`
}

type settingsEntry struct {
	Pos lexer.Position

	Cells   *int         `parser:"  'cells' '=' @Int ';'"`
	Rows    *int         `parser:"| 'rows' '=' @Int ';'"`
	Initial *patternExpr `parser:"| 'initial' '=' @@ ';'"`
	Wolfram *int         `parser:"| 'wolfram' '=' @Int ';'"`
	Active  *activeList  `parser:"| 'active' '=' @@ ';'"`
	Rule    *ruleEntry   `parser:"| 'rule' @@ ';'"`
}

type patternExpr struct {
	Parts []*patternPart `parser:"@@ ( '+' @@ )*"`
}

type patternPart struct {
	Block  string `parser:"@String"`
	Repeat *int   `parser:"( '*' @Int )?"`
}

type activeList struct {
	Items []string `parser:"'[' ( @String ( ',' @String )* )? ']'"`
}

type ruleEntry struct {
	Neighborhood string `parser:"@String '='"`
	Value        int    `parser:"@Int"`
}

var fileParser = participle.MustBuild[settingsFile](participle.Unquote("String"))

// expand concatenates the repeated blocks. The length is checked before any
// block is repeated.
func (p *patternExpr) expand(pos lexer.Position) (string, error) {
	total := 0
	for _, part := range p.Parts {
		n := 1
		if part.Repeat != nil {
			n = *part.Repeat
		}
		if n < 0 {
			return "", fmt.Errorf("%s: negative repeat count %d", pos, n)
		}
		if n > 0 && len(part.Block) > (MaxCells-total)/n {
			return "", fmt.Errorf("%s: initial states longer than %d cells", pos, MaxCells)
		}
		total += len(part.Block) * n
	}
	var b strings.Builder
	b.Grow(total)
	for _, part := range p.Parts {
		n := 1
		if part.Repeat != nil {
			n = *part.Repeat
		}
		b.WriteString(strings.Repeat(part.Block, n))
	}
	return b.String(), nil
}

// Parse reads settings from source text, starting from Default. The result is
// validated before it is returned.
func Parse(name, src string) (Settings, error) {
	file, err := fileParser.ParseString(name, src)
	if err != nil {
		return Settings{}, err
	}
	s := Default()
	cellsSet, initialSet := false, false
	for _, e := range file.Entries {
		switch {
		case e.Cells != nil:
			s.Cells = *e.Cells
			cellsSet = true
		case e.Rows != nil:
			s.Rows = *e.Rows
		case e.Initial != nil:
			initial, err := e.Initial.expand(e.Pos)
			if err != nil {
				return Settings{}, err
			}
			s.InitialStates = initial
			initialSet = true
		case e.Wolfram != nil:
			if *e.Wolfram < 0 || *e.Wolfram > 255 {
				return Settings{}, fmt.Errorf("%s: wolfram rule %d out of range 0-255", e.Pos, *e.Wolfram)
			}
			s.ApplyWolfram(uint8(*e.Wolfram))
		case e.Active != nil:
			s.SetActive(e.Active.Items)
		case e.Rule != nil:
			if e.Rule.Value != 0 && e.Rule.Value != 1 {
				return Settings{}, fmt.Errorf("%s: rule %q must be 0 or 1, got %d", e.Pos, e.Rule.Neighborhood, e.Rule.Value)
			}
			s.Rules[e.Rule.Neighborhood] = byte('0' + e.Rule.Value)
		}
	}
	if cellsSet && !initialSet {
		s.InitialStates = CenteredInitialStates(s.Cells)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// ParseFile reads and parses the settings file at path.
func ParseFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	return Parse(path, string(data))
}
