// Package input turns a tick's worth of pointer and keyboard state into
// viewport operations.
package input

import (
	"log/slog"

	mandel "github.com/marben/mandel_explorer"
)

// Direction is a set of held directional keys.
type Direction uint8

const (
	Up Direction = 1 << iota
	Down
	Left
	Right
)

func (d Direction) Has(o Direction) bool { return d&o != 0 }

// State is the input snapshot for one tick. Pointer coordinates are in
// buffer pixels.
type State struct {
	Wheel              float64 // > 0 zooms in, < 0 zooms out
	PointerX, PointerY int
	Held               Direction
	Reset              bool
	Landmark           int // 1-based index into mandel.Landmarks, 0 for none
}

// Controller applies State to a viewport.
type Controller struct {
	ZoomIn  float64
	ZoomOut float64
	PanStep float64
}

func DefaultController() Controller {
	return ControllerFromConfig(mandel.DefaultConfig)
}

func ControllerFromConfig(cfg mandel.Config) Controller {
	return Controller{
		ZoomIn:  cfg.ZoomIn,
		ZoomOut: cfg.ZoomOut,
		PanStep: cfg.PanStep,
	}
}

// Apply mutates v according to s for an imgW × imgH buffer.
//
// Order: reset (ends the tick), landmark jump (ends the tick),
// wheel zoom around the pointer, then a single combined pan.
func (c Controller) Apply(s State, v *mandel.Viewport, imgW, imgH int) {
	if s.Reset {
		v.Reset()
		mandel.Logger().Debug("view reset")
		return
	}

	if s.Landmark > 0 && s.Landmark <= len(mandel.Landmarks) {
		lm := mandel.Landmarks[s.Landmark-1]
		if v.JumpTo(lm.Region) {
			mandel.Logger().Debug("jumped to landmark", slog.String("name", lm.Name))
		}
		return
	}

	if s.Wheel != 0 && imgW > 0 && imgH > 0 {
		px := clamp(s.PointerX, 0, imgW)
		py := clamp(s.PointerY, 0, imgH)
		pivot := v.PlaneCoordinate(px, py, imgW, imgH)

		factor := c.ZoomIn
		if s.Wheel < 0 {
			factor = c.ZoomOut
		}
		v.ZoomAt(pivot, factor)
	}

	if dx, dy := c.panDelta(s.Held); dx != 0 || dy != 0 {
		v.Pan(dx, dy)
	}
}

// panDelta sums the held directions into one offset so diagonals are a
// single move computed from the pre-tick region.
func (c Controller) panDelta(d Direction) (dx, dy float64) {
	if d.Has(Up) {
		dy -= c.PanStep
	}
	if d.Has(Down) {
		dy += c.PanStep
	}
	if d.Has(Left) {
		dx -= c.PanStep
	}
	if d.Has(Right) {
		dx += c.PanStep
	}
	return dx, dy
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
