//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"eca/internal/app"
	"eca/internal/config"
	"eca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	settingsFlags := config.NewFlags()
	settingsFlags.Bind(flag.CommandLine)
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	palette := render.DefaultPalette()
	palette.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := settingsFlags.Settings(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}

	player := app.NewPlayer()
	if err := player.Load(settings); err != nil {
		log.Fatal(err)
	}

	game := app.New(player, *cfg, palette)

	ebiten.SetWindowTitle(fmt.Sprintf("eca %s", player.Rule()))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width+max(cfg.HUD, 0), cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
