package mandel

import "math"

// Region within the Mandelbrot set.
// X runs along the real axis, Y along the imaginary axis.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Home is the full view of the set shown at startup and after reset.
var Home = Region{
	Xmin: -2.5,
	Xmax: 1.5,
	Ymin: -1.5,
	Ymax: 1.5,
}

func (r Region) Width() float64  { return r.Xmax - r.Xmin }
func (r Region) Height() float64 { return r.Ymax - r.Ymin }

// Center returns the plane point in the middle of the region.
func (r Region) Center() complex128 {
	return complex((r.Xmin+r.Xmax)/2, (r.Ymin+r.Ymax)/2)
}

// Valid reports whether all bounds are finite and the rectangle has positive area.
func (r Region) Valid() bool {
	for _, f := range [...]float64{r.Xmin, r.Xmax, r.Ymin, r.Ymax, r.Width(), r.Height()} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return r.Xmax > r.Xmin && r.Ymax > r.Ymin
}

// PlaneCoordinate maps pixel (px, py) of an imgW × imgH buffer onto the region.
// Pixel (0, 0) maps to (Xmin, Ymin) and (imgW, imgH) to (Xmax, Ymax) exactly.
func (r Region) PlaneCoordinate(px, py, imgW, imgH int) complex128 {
	return complex(
		lerp(r.Xmin, r.Xmax, float64(px)/float64(imgW)),
		lerp(r.Ymin, r.Ymax, float64(py)/float64(imgH)),
	)
}

// lerp is written as (1-t)*a + t*b so both ends are exact.
func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// Landmark is a named region worth visiting.
type Landmark struct {
	Name   string
	Region Region
}

// Classic regions / landmarks in the Mandelbrot set, in keyboard order.
var Landmarks = []Landmark{
	// dense filaments and repeating "seahorse" curls
	{"Seahorse Valley", Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}},
	// large bulb with trunk-like tendrils
	{"Elephant Valley", Region{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02}},
	// small Mandelbrot copy with tight spiral arms
	{"Spiral Minibrot", Region{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}},
	// threefold symmetric spiral structure
	{"Triple Spiral", Region{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980}},
	// deep, highly detailed spiral filaments
	{"Valley of the Dragon", Region{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850}},
	// self-similar Mandelbrot copy inside a spiral arm
	{"Minibrot in a Mini-Spiral", Region{Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220}},
}
