package render

import (
	"flag"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the colors used to draw a strip.
type Palette struct {
	On     color.RGBA
	Off    color.RGBA
	Stroke color.RGBA
}

// DefaultPalette returns light live cells on a dark slate background, with
// cell outlines in the background color.
func DefaultPalette() Palette {
	off := color.RGBA{R: 0x2f, G: 0x4f, B: 0x4f, A: 0xff}
	return Palette{
		On:     color.RGBA{R: 0xf3, G: 0xf2, B: 0xf2, A: 0xff},
		Off:    off,
		Stroke: off,
	}
}

// Color returns the color for a 0/1 cell value.
func (p Palette) Color(v uint8) color.RGBA {
	if v != 0 {
		return p.On
	}
	return p.Off
}

// ParseHexColor parses "#rrggbb" or "rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Bind registers -alive and -dead color flags on fs that update p. The dead
// color also sets the stroke.
func (p *Palette) Bind(fs *flag.FlagSet) {
	fs.Func("alive", "live cell color as #rrggbb (default #f3f2f2)", func(v string) error {
		c, err := ParseHexColor(v)
		if err != nil {
			return err
		}
		p.On = c
		return nil
	})
	fs.Func("dead", "dead cell and outline color as #rrggbb (default #2f4f4f)", func(v string) error {
		c, err := ParseHexColor(v)
		if err != nil {
			return err
		}
		p.Off = c
		p.Stroke = c
		return nil
	})
}
