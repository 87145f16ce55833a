//go:build ebiten

package app

import (
	"time"

	"eca/internal/core"
	"eca/internal/render"
	"eca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Player to the ebiten.Game interface. Each tick draws one
// generation until the strip is full.
type Game struct {
	player  *Player
	cfg     Config
	palette render.Palette
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	paused   bool
	tickOnce bool
	err      error
}

// New constructs a Game for a loaded player.
func New(player *Player, cfg Config, palette render.Palette) *Game {
	g := &Game{
		player:  player,
		cfg:     cfg,
		palette: palette,
		hud:     ui.NewHUD(player, cfg.HUD),
		overlay: ui.NewOverlay(palette.Stroke),
	}
	g.ensurePainter()
	return g
}

func (g *Game) ensurePainter() {
	grid := g.player.Grid()
	if grid == nil {
		return
	}
	if g.painter != nil {
		if w, h := g.painter.Size(); w == grid.W && h == grid.H {
			return
		}
	}
	g.painter = render.NewGridPainter(grid.W, grid.H, g.palette)
}

func (g *Game) geometry() core.Geometry {
	s := g.player.Settings()
	return core.GeometryFor(g.cfg.Width, g.cfg.Height, s.Cells, s.Rows)
}

// Update handles per-frame logic and draws the next generation.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.player.Restart(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.player.Reseed(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	g.overlay.Update()
	g.hud.Update(g.cfg.Width)
	g.ensurePainter()

	if !g.paused || g.tickOnce {
		if _, err := g.player.Step(); err != nil {
			g.err = err
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the strip, grid lines and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Off)
	geom := g.geometry()
	if g.painter != nil {
		g.painter.Blit(screen, g.player.Grid(), geom)
	}
	g.overlay.Draw(screen, g.player.Grid(), geom)
	g.hud.Draw(screen, g.cfg.Width, g.cfg.Height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width + max(g.cfg.HUD, 0), g.cfg.Height
}
