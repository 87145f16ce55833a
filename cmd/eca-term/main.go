package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"eca/internal/app"
	"eca/internal/config"
	"eca/internal/core"
	"eca/internal/render"
)

func main() {
	settingsFlags := config.NewFlags()
	settingsFlags.Bind(flag.CommandLine)
	tps := flag.Int("tps", 30, "generations drawn per second")
	palette := render.DefaultPalette()
	palette.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := settingsFlags.Settings(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	err = loop(screen, settings, palette, *tps)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}

func loop(screen tcell.Screen, settings config.Settings, palette render.Palette, tps int) error {
	term := render.NewTerminalRenderer(screen, palette, 1)
	player := app.NewPlayer(term)
	if err := player.Load(settings); err != nil {
		return err
	}
	term.Reset()

	events := make(chan tcell.Event, 8)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen, events, done)

	step := core.NewFixedStep(tps)
	ticker := time.NewTicker(step.Interval() / 2)
	defer ticker.Stop()

	paused := false
	status := func() {
		state := "running"
		switch {
		case player.Done():
			state = "done"
		case paused:
			state = "paused"
		}
		term.DrawStatus(fmt.Sprintf(" %s  generation %d/%d  %s  [space] pause  [n] step  [r] restart  [q] quit",
			player.Rule(), player.Generation(), settings.Rows, state))
	}
	status()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'n':
					if _, err := player.Step(); err != nil {
						return err
					}
				case ev.Rune() == 'r':
					if err := player.Restart(); err != nil {
						return err
					}
					term.Reset()
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			status()
		case <-ticker.C:
			if paused || player.Done() || !step.ShouldStep() {
				continue
			}
			if _, err := player.Step(); err != nil {
				return err
			}
			status()
		}
	}
}

// pumpEvents forwards screen events until the screen is finalized or done is
// closed.
func pumpEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
