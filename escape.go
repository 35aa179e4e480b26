package mandel

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Sample is the escape-time result for a single point.
type Sample struct {
	// Iterations performed before the orbit left the radius-2 disc,
	// or the whole budget if it never did.
	Iterations int
	// Escaped is false when the budget ran out; the point is then treated as inside the set.
	Escaped bool
}

// Evaluate iterates z = z*z + c from z = 0 until |z| > 2 or maxIter iterations are done.
// A negative budget is treated as 0.
func Evaluate(c complex128, maxIter int) Sample {
	z := complex(0, 0)
	for i := range max(maxIter, 0) {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return Sample{Iterations: i + 1, Escaped: true}
		}
	}
	return Sample{Iterations: max(maxIter, 0)}
}

var black = color.RGBA{A: 255}

// Colorize maps a sample to a display color.
// Points inside the set are black, escaped points get a fully saturated hue
// proportional to iterations/maxIter.
func Colorize(s Sample, maxIter int) color.RGBA {
	if !s.Escaped {
		return black
	}

	var hue float64
	if maxIter > 0 {
		hue = math.Mod(float64(s.Iterations)/float64(maxIter)*360, 360)
	}

	r, g, b := colorful.Hsv(hue, 1, 1).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
