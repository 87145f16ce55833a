package config

import "flag"

// Flags are the command-line inputs that produce Settings.
type Flags struct {
	ConfigPath string
	Cells      int
	Rows       int
	Initial    string
	Rule       int
	Active     string
	Random     bool
	Seed       int64
}

// NewFlags returns Flags populated with the default settings.
func NewFlags() *Flags {
	d := Default()
	return &Flags{Cells: d.Cells, Rows: d.Rows, Rule: -1, Seed: 42}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "settings file to load before applying flags")
	fs.IntVar(&f.Cells, "cells", f.Cells, "number of cells per row (1-1000)")
	fs.IntVar(&f.Rows, "rows", f.Rows, "number of rows to draw (1-1000)")
	fs.StringVar(&f.Initial, "initial", f.Initial, "initial states as a string of 0 and 1")
	fs.IntVar(&f.Rule, "rule", f.Rule, "Wolfram rule number (0-255); overrides the rule table")
	fs.StringVar(&f.Active, "active", f.Active, "comma separated neighborhoods that produce a live cell, e.g. 001,011")
	fs.BoolVar(&f.Random, "random", f.Random, "seed the initial row randomly")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for -random")
}

// Settings resolves the flags that were set on fs into validated Settings.
// A settings file is applied first, then each explicitly set flag.
func (f *Flags) Settings(fs *flag.FlagSet) (Settings, error) {
	base := Default()
	if f.ConfigPath != "" {
		loaded, err := ParseFile(f.ConfigPath)
		if err != nil {
			return Settings{}, err
		}
		base = loaded
	}

	cfg := map[string]string{}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "cells", "rows", "initial", "rule", "active":
			cfg[fl.Name] = fl.Value.String()
		}
	})
	if f.Random {
		cells := base.Cells
		if _, ok := cfg["cells"]; ok {
			cells = f.Cells
		}
		cfg["initial"] = RandomInitialStates(cells, f.Seed)
	}
	return base.Apply(cfg)
}
