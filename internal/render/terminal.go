package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"eca/internal/elementary"
)

// TerminalRenderer draws generations onto a terminal screen, one character
// per cell. Once the screen is full older generations scroll off the top.
type TerminalRenderer struct {
	screen  tcell.Screen
	on, off tcell.Style
	rows    [][]uint8
	top     int
}

// NewTerminalRenderer draws onto screen starting at line top, leaving the
// lines above it for a status bar.
func NewTerminalRenderer(screen tcell.Screen, p Palette, top int) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		on:     tcell.StyleDefault.Background(tcellColor(p.On)).Foreground(tcellColor(p.Off)),
		off:    tcell.StyleDefault.Background(tcellColor(p.Off)).Foreground(tcellColor(p.On)),
		top:    top,
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// RenderRow appends row below the previous generation and shows the screen.
func (t *TerminalRenderer) RenderRow(generation int, row elementary.Row) error {
	_, h := t.screen.Size()
	visible := h - t.top
	if visible <= 0 {
		return nil
	}
	t.rows = append(t.rows, row.Bytes())
	if len(t.rows) > visible {
		t.rows = t.rows[len(t.rows)-visible:]
		for y := range t.rows {
			t.drawLine(y, t.rows[y])
		}
	} else {
		t.drawLine(len(t.rows)-1, t.rows[len(t.rows)-1])
	}
	t.screen.Show()
	return nil
}

func (t *TerminalRenderer) drawLine(y int, cells []uint8) {
	w, _ := t.screen.Size()
	for x, c := range cells {
		if x >= w {
			break
		}
		style := t.off
		if c != 0 {
			style = t.on
		}
		t.screen.SetContent(x, t.top+y, ' ', nil, style)
	}
}

// Reset forgets all drawn generations and clears the drawing area.
func (t *TerminalRenderer) Reset() {
	t.rows = nil
	w, h := t.screen.Size()
	for y := t.top; y < h; y++ {
		for x := 0; x < w; x++ {
			t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
	t.screen.Show()
}

// DrawStatus writes text on the first line of the screen.
func (t *TerminalRenderer) DrawStatus(text string) {
	if t.top == 0 {
		return
	}
	w, _ := t.screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range text {
		if x >= w {
			break
		}
		t.screen.SetContent(x, 0, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		t.screen.SetContent(x, 0, ' ', nil, style)
	}
	t.screen.Show()
}
