package render

import (
	"fmt"
	"io"
	"strings"

	"eca/internal/elementary"
)

// TextRenderer writes one line per generation.
type TextRenderer struct {
	w         io.Writer
	on, off   string
	numbering bool
}

// NewTextRenderer writes rows as 0/1 digits, or as block glyphs when glyphs
// is set.
func NewTextRenderer(w io.Writer, glyphs bool) *TextRenderer {
	if glyphs {
		return &TextRenderer{w: w, on: "█", off: " "}
	}
	return &TextRenderer{w: w, on: "1", off: "0"}
}

// WithNumbers prefixes each line with its generation index.
func (t *TextRenderer) WithNumbers() *TextRenderer {
	t.numbering = true
	return t
}

// RenderRow writes row as a single line.
func (t *TextRenderer) RenderRow(generation int, row elementary.Row) error {
	var b strings.Builder
	if t.numbering {
		fmt.Fprintf(&b, "%4d ", generation)
	}
	for _, c := range row {
		if c == elementary.Alive {
			b.WriteString(t.on)
			continue
		}
		b.WriteString(t.off)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(t.w, b.String())
	return err
}
