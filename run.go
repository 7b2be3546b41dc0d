package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int // window width in pixels; defaults to the canvas width
	Height  int // window height in pixels; defaults to the canvas height
	ShowFPS bool
}

// Run opens a window and drives the surface's update/draw loop until the
// window is closed. For anything beyond a plain window, implement
// [ebiten.Game] yourself and call [Surface.Update] and [Surface.Draw].
func Run(surface *Surface, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = surface.Canvas().Width()
	}
	if cfg.Height <= 0 {
		cfg.Height = surface.Canvas().Height()
	}
	if cfg.Title == "" {
		cfg.Title = "easel"
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(&runGame{surface: surface, cfg: cfg})
}

type runGame struct {
	surface *Surface
	cfg     RunConfig
}

func (g *runGame) Update() error {
	g.surface.Update()
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	g.surface.Draw(screen)
	if g.cfg.ShowFPS {
		DrawFPS(screen)
	}
}

func (g *runGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
