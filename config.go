package mandel

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the explorer's startup constants.
type Config struct {
	Width, Height int    // pixel buffer dimensions
	Home          Region // view shown at startup and on reset
	MaxIterations int
	TPS           int // ticks (frames) per second

	ZoomIn     float64 // factor applied per wheel step towards the set
	ZoomOut    float64 // factor applied per wheel step away from it
	PanStep    float64 // fraction of the view moved per tick per held key
	MaxZoomOut float64 // cap on the cumulative zoom factor relative to Home
}

var DefaultConfig = Config{
	Width:         1080,
	Height:        720,
	Home:          Home,
	MaxIterations: 500,
	TPS:           60,
	ZoomIn:        0.9,
	ZoomOut:       1.1,
	PanStep:       0.01,
	MaxZoomOut:    10.0,
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: buffer %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case !c.Home.Valid():
		return fmt.Errorf("%w: home region %+v", ErrInvalidConfig, c.Home)
	case c.MaxIterations < 0:
		return fmt.Errorf("%w: max iterations %d", ErrInvalidConfig, c.MaxIterations)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	case !(c.ZoomIn > 0 && c.ZoomIn < 1):
		return fmt.Errorf("%w: zoom in factor %v must be in (0, 1)", ErrInvalidConfig, c.ZoomIn)
	case !(c.ZoomOut > 1):
		return fmt.Errorf("%w: zoom out factor %v must be > 1", ErrInvalidConfig, c.ZoomOut)
	case !(c.MaxZoomOut >= 1):
		return fmt.Errorf("%w: max zoom out %v must be >= 1", ErrInvalidConfig, c.MaxZoomOut)
	case !(c.PanStep >= 0):
		return fmt.Errorf("%w: pan step %v", ErrInvalidConfig, c.PanStep)
	}
	return nil
}
