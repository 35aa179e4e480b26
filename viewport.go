package mandel

import (
	"log/slog"
	"math"
)

const (
	DefaultMaxZoomOut = 10.0
	// Below this the rectangle is only a few hundred float64 ulps wide.
	DefaultMinZoomIn = 1e-12
)

// Viewport is the region under view together with its zoom history.
// It is not safe for concurrent use; renderers get a frozen copy via Region.
type Viewport struct {
	home   Region
	region Region
	zoom   float64 // current width / home width

	maxZoomOut float64
	minZoomIn  float64
}

type ViewportOption func(*Viewport)

// WithMaxZoomOut caps the cumulative zoom factor.
func WithMaxZoomOut(f float64) ViewportOption {
	return func(v *Viewport) { v.maxZoomOut = f }
}

// WithMinZoomIn sets the smallest cumulative zoom factor.
func WithMinZoomIn(f float64) ViewportOption {
	return func(v *Viewport) { v.minZoomIn = f }
}

// NewViewport starts at home. An invalid home falls back to the package Home.
func NewViewport(home Region, opts ...ViewportOption) *Viewport {
	if !home.Valid() {
		home = Home
	}
	v := &Viewport{
		home:       home,
		region:     home,
		zoom:       1,
		maxZoomOut: DefaultMaxZoomOut,
		minZoomIn:  DefaultMinZoomIn,
	}
	for _, o := range opts {
		o(v)
	}
	if !(v.maxZoomOut >= 1) || math.IsInf(v.maxZoomOut, 0) {
		v.maxZoomOut = DefaultMaxZoomOut
	}
	if !(v.minZoomIn > 0 && v.minZoomIn <= 1) {
		v.minZoomIn = DefaultMinZoomIn
	}
	return v
}

func (v *Viewport) Region() Region { return v.region }
func (v *Viewport) Home() Region   { return v.home }

// Zoom returns the cumulative zoom factor relative to the home region.
func (v *Viewport) Zoom() float64 { return v.zoom }

// PlaneCoordinate maps a buffer pixel onto the current region.
func (v *Viewport) PlaneCoordinate(px, py, imgW, imgH int) complex128 {
	return v.region.PlaneCoordinate(px, py, imgW, imgH)
}

// ZoomAt scales the region by factor around pivot, keeping pivot at the same
// relative position. factor < 1 zooms in. The cumulative zoom is clamped to
// [minZoomIn, maxZoomOut]; operations that would leave a degenerate
// region are dropped. Reports whether the region changed.
func (v *Viewport) ZoomAt(pivot complex128, factor float64) bool {
	if !finite(real(pivot)) || !finite(imag(pivot)) || !(factor > 0) || math.IsInf(factor, 0) {
		Logger().Debug("zoom rejected", slog.Any("pivot", pivot), slog.Float64("factor", factor))
		return false
	}

	zoom := v.zoom * factor
	switch {
	case zoom > v.maxZoomOut:
		zoom = v.maxZoomOut
	case zoom < v.minZoomIn:
		zoom = v.minZoomIn
	}
	factor = zoom / v.zoom
	if factor == 1 {
		return false
	}

	px, py := real(pivot), imag(pivot)
	r := v.region
	next := Region{
		Xmin: px - (px-r.Xmin)*factor,
		Xmax: px + (r.Xmax-px)*factor,
		Ymin: py - (py-r.Ymin)*factor,
		Ymax: py + (r.Ymax-py)*factor,
	}
	if !next.Valid() {
		Logger().Debug("zoom rejected: degenerate region", slog.Any("region", next))
		return false
	}

	v.region = next
	v.zoom = zoom
	return true
}

// Pan shifts the region by dx of its width and dy of its height.
// Both offsets are computed from the region as it was before the call.
func (v *Viewport) Pan(dx, dy float64) bool {
	if !finite(dx) || !finite(dy) {
		return false
	}
	if dx == 0 && dy == 0 {
		return false
	}

	r := v.region
	ox, oy := dx*r.Width(), dy*r.Height()
	next := Region{
		Xmin: r.Xmin + ox,
		Xmax: r.Xmax + ox,
		Ymin: r.Ymin + oy,
		Ymax: r.Ymax + oy,
	}
	if !next.Valid() {
		Logger().Debug("pan rejected: degenerate region", slog.Any("region", next))
		return false
	}

	v.region = next
	return true
}

// Reset restores the home region.
func (v *Viewport) Reset() {
	v.region = v.home
	v.zoom = 1
}

// JumpTo replaces the region with r, provided the implied zoom stays within limits.
func (v *Viewport) JumpTo(r Region) bool {
	if !r.Valid() {
		return false
	}
	zoom := r.Width() / v.home.Width()
	if zoom > v.maxZoomOut || zoom < v.minZoomIn {
		Logger().Debug("jump rejected: zoom out of range", slog.Float64("zoom", zoom))
		return false
	}

	v.region = r
	v.zoom = zoom
	return true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
