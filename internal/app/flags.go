package app

import "flag"

// Config represents the window parameters for the GUI.
type Config struct {
	Width  int
	Height int
	TPS    int
	HUD    int
}

// NewConfig returns a Config populated with sensible defaults: a 1010px square
// strip drawn at 30 generations per second.
func NewConfig() *Config {
	return &Config{Width: 1010, Height: 1010, TPS: 30, HUD: 180}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "drawing surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "drawing surface height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations drawn per second")
	fs.IntVar(&c.HUD, "hud", c.HUD, "width of the parameter panel in pixels (0 hides it)")
}
