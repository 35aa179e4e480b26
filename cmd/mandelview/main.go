// mandelview opens a window showing the Mandelbrot set.
// Mouse wheel zooms around the pointer, WASD or arrow keys pan, R resets the
// view, 1-6 jump to landmarks and Esc quits.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	mandel "github.com/marben/mandel_explorer"
	"github.com/marben/mandel_explorer/explorer"
	"github.com/marben/mandel_explorer/input"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg := mandel.DefaultConfig
	session, err := explorer.New(cfg)
	if err != nil {
		return fmt.Errorf("explorer.New: %w", err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Mandelbrot Set")
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(&game{session: session}); err != nil {
		return fmt.Errorf("ebiten.RunGame: %w", err)
	}
	return nil
}

var landmarkKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

// game implements ebiten.Game.
type game struct {
	session *explorer.Session
	frame   []byte
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.frame = g.session.Step(pollInput()).Pix
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}
	screen.WritePixels(g.frame)

	v := g.session.Viewport()
	c := v.Region().Center()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("center %.6g%+.6gi  zoom %.3g  render %s  fps %.0f",
		real(c), imag(c), v.Zoom(), g.session.Stats().Duration.Round(100*time.Microsecond), ebiten.ActualFPS()))
}

// Layout pins the logical screen to the buffer so pixels and cursor
// coordinates line up with the session's buffer space.
func (g *game) Layout(_, _ int) (int, int) {
	return g.session.Size()
}

func pollInput() input.State {
	var s input.State

	_, s.Wheel = ebiten.Wheel()
	s.PointerX, s.PointerY = ebiten.CursorPosition()

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		s.Held |= input.Up
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		s.Held |= input.Down
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		s.Held |= input.Left
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		s.Held |= input.Right
	}

	s.Reset = inpututil.IsKeyJustPressed(ebiten.KeyR)
	for i, k := range landmarkKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.Landmark = i + 1
		}
	}
	return s
}
