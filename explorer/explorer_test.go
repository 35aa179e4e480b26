package explorer

import (
	"errors"
	"image/color"
	"math"
	"testing"

	mandel "github.com/marben/mandel_explorer"
	"github.com/marben/mandel_explorer/input"
	"github.com/marben/mandel_explorer/render"
)

var black = color.RGBA{A: 255}

func newSession(t *testing.T, cfg mandel.Config) *Session {
	t.Helper()
	s, err := New(cfg, WithRenderer(render.New(render.WithWorkers(4))))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestStep_InitialFrame(t *testing.T) {
	cfg := mandel.DefaultConfig
	s := newSession(t, cfg)
	frame := s.Step(input.State{})

	if b := frame.Bounds(); b.Dx() != 1080 || b.Dy() != 720 {
		t.Fatalf("frame bounds = %v, want 1080x720", b)
	}

	// top-left corner is -2.5-1.5i, far outside the set
	c := s.Viewport().PlaneCoordinate(0, 0, 1080, 720)
	if c != complex(-2.5, -1.5) {
		t.Fatalf("pixel (0,0) maps to %v, want -2.5-1.5i", c)
	}
	sample := mandel.Evaluate(c, cfg.MaxIterations)
	if !sample.Escaped || sample.Iterations >= 10 {
		t.Errorf("Evaluate(%v) = %+v, want a quick escape", c, sample)
	}
	if got := frame.RGBAAt(0, 0); got == black {
		t.Error("pixel (0,0) is black, want a color")
	}

	// the center is -0.5+0i, inside the main cardioid
	c = s.Viewport().PlaneCoordinate(540, 360, 1080, 720)
	if c != complex(-0.5, 0) {
		t.Fatalf("pixel (540,360) maps to %v, want -0.5+0i", c)
	}
	sample = mandel.Evaluate(c, cfg.MaxIterations)
	if sample.Escaped || sample.Iterations != cfg.MaxIterations {
		t.Errorf("Evaluate(%v) = %+v, want inside the set", c, sample)
	}
	if got := frame.RGBAAt(540, 360); got != black {
		t.Errorf("pixel (540,360) = %v, want black", got)
	}
}

func TestStep_ReusesBuffer(t *testing.T) {
	cfg := mandel.DefaultConfig
	cfg.Width, cfg.Height = 64, 48
	s := newSession(t, cfg)

	first := s.Step(input.State{})
	second := s.Step(input.State{Wheel: 1, PointerX: 10, PointerY: 10})
	if first != second || &first.Pix[0] != &second.Pix[0] {
		t.Error("Step allocated a new buffer for an unchanged size")
	}
}

func TestStep_AppliesInputBeforeRender(t *testing.T) {
	cfg := mandel.DefaultConfig
	cfg.Width, cfg.Height = 60, 40
	s := newSession(t, cfg)

	frame := s.Step(input.State{Landmark: 1})
	if s.Viewport().Region() != mandel.Landmarks[0].Region {
		t.Fatalf("region = %+v, want landmark", s.Viewport().Region())
	}

	want := render.New(render.WithWorkers(1))
	img := *frame
	img.Pix = make([]byte, len(frame.Pix))
	want.Render(&img, mandel.Landmarks[0].Region, cfg.MaxIterations)
	for i := range img.Pix {
		if img.Pix[i] != frame.Pix[i] {
			t.Fatal("frame was not rendered from the updated region")
		}
	}
}

func TestResize(t *testing.T) {
	cfg := mandel.DefaultConfig
	cfg.Width, cfg.Height = 32, 32
	s := newSession(t, cfg)

	before := s.Step(input.State{})
	s.Resize(32, 32)
	if s.Step(input.State{}) != before {
		t.Error("Resize to the same size reallocated the buffer")
	}

	s.Resize(0, 10)
	if w, h := s.Size(); w != 32 || h != 32 {
		t.Errorf("Resize(0,10) changed size to %dx%d", w, h)
	}

	s.Resize(20, 10)
	frame := s.Step(input.State{})
	if b := frame.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("frame bounds = %v, want 20x10", b)
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := mandel.DefaultConfig
	cfg.Width = 0
	if _, err := New(cfg); !errors.Is(err, mandel.ErrInvalidConfig) {
		t.Errorf("New() error = %v, want ErrInvalidConfig", err)
	}
}

func TestNew_ControllerFromConfig(t *testing.T) {
	cfg := mandel.DefaultConfig
	cfg.Width, cfg.Height = 100, 100
	cfg.PanStep = 0.1
	s := newSession(t, cfg)

	s.Step(input.State{Held: input.Right})
	want := cfg.Home.Xmin + cfg.PanStep*cfg.Home.Width()
	if got := s.Viewport().Region().Xmin; math.Abs(got-want) > 1e-12 {
		t.Errorf("Xmin = %v, want %v after a 10%% pan", got, want)
	}
}
