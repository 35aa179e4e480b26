// mandelray is the raylib frontend: same controls as mandelview, drawn
// through a streaming texture.
package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	mandel "github.com/marben/mandel_explorer"
	"github.com/marben/mandel_explorer/explorer"
	"github.com/marben/mandel_explorer/input"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

var landmarkKeys = []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive, rl.KeySix}

func run() error {
	mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg := mandel.DefaultConfig
	session, err := explorer.New(cfg)
	if err != nil {
		return fmt.Errorf("explorer.New: %w", err)
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "Mandelbrot Set")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.TPS))

	img := rl.GenImageColor(cfg.Width, cfg.Height, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(tex)

	pixels := make([]color.RGBA, cfg.Width*cfg.Height)
	for !rl.WindowShouldClose() {
		frame := session.Step(pollInput())
		copyPixels(pixels, frame)
		rl.UpdateTexture(tex, pixels)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.DrawTexture(tex, 0, 0, rl.White)
		rl.DrawFPS(10, 10)
		rl.EndDrawing()
	}
	return nil
}

func pollInput() input.State {
	s := input.State{
		Wheel:    float64(rl.GetMouseWheelMove()),
		PointerX: int(rl.GetMouseX()),
		PointerY: int(rl.GetMouseY()),
		Reset:    rl.IsKeyPressed(rl.KeyR),
	}

	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		s.Held |= input.Up
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		s.Held |= input.Down
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		s.Held |= input.Left
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		s.Held |= input.Right
	}

	for i, k := range landmarkKeys {
		if rl.IsKeyPressed(k) {
			s.Landmark = i + 1
		}
	}
	return s
}

// copyPixels reinterprets the RGBA byte buffer as the color slice raylib wants.
func copyPixels(dst []color.RGBA, src *image.RGBA) {
	pix := src.Pix
	for i := range dst {
		o := i * 4
		if o+4 > len(pix) {
			return
		}
		dst[i] = color.RGBA{R: pix[o], G: pix[o+1], B: pix[o+2], A: pix[o+3]}
	}
}
