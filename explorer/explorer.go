// Package explorer ties input, viewport and renderer into a per-tick pipeline
// that presentation layers drive.
package explorer

import (
	"fmt"
	"image"
	"log/slog"

	mandel "github.com/marben/mandel_explorer"
	"github.com/marben/mandel_explorer/input"
	"github.com/marben/mandel_explorer/render"
)

// Session owns the viewport and the pixel buffer. It is driven from a single
// goroutine: the presentation layer's update loop.
type Session struct {
	cfg        mandel.Config
	viewport   *mandel.Viewport
	controller input.Controller
	renderer   *render.Renderer

	buf *image.RGBA
}

type Option func(*Session)

// WithRenderer replaces the default renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithController replaces the controller derived from the config.
func WithController(c input.Controller) Option {
	return func(s *Session) { s.controller = c }
}

func New(cfg mandel.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("explorer.New: %w", err)
	}

	s := &Session{
		cfg:        cfg,
		viewport:   mandel.NewViewport(cfg.Home, mandel.WithMaxZoomOut(cfg.MaxZoomOut)),
		controller: input.ControllerFromConfig(cfg),
		buf:        image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
	}
	for _, o := range opts {
		o(s)
	}
	if s.renderer == nil {
		s.renderer = render.New()
	}

	mandel.Logger().Info("session started",
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.Int("maxIter", cfg.MaxIterations),
		slog.Int("workers", s.renderer.Workers()))
	return s, nil
}

// Step applies one tick of input and renders the resulting view.
// The returned image is reused by the next Step; callers must finish
// presenting it before calling Step again.
func (s *Session) Step(in input.State) *image.RGBA {
	w, h := s.Size()
	s.controller.Apply(in, s.viewport, w, h)

	region := s.viewport.Region()
	s.renderer.Render(s.buf, region, s.cfg.MaxIterations)
	return s.buf
}

// Resize changes the buffer dimensions. The buffer is only reallocated when
// the size actually changes.
func (s *Session) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if cw, ch := s.Size(); cw == w && ch == h {
		return
	}
	s.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	mandel.Logger().Info("buffer resized", slog.Int("width", w), slog.Int("height", h))
}

func (s *Session) Size() (w, h int) {
	b := s.buf.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Session) Viewport() *mandel.Viewport { return s.viewport }

func (s *Session) Config() mandel.Config { return s.cfg }

func (s *Session) Stats() render.Stats { return s.renderer.Stats() }
