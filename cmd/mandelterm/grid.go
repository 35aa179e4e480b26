package main

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	xdraw "golang.org/x/image/draw"

	mandel "github.com/marben/mandel_explorer"
)

// supersample is the number of rendered pixels per displayed pixel on each axis.
const supersample = 2

// grid maps the terminal onto pixels. Every cell shows two pixels stacked
// with the upper half block; the last row is the status line.
type grid struct {
	cols, rows int
}

func (g grid) imageRows() int { return max(g.rows-1, 0) }

// displaySize is the pixel grid shown in the terminal.
func (g grid) displaySize() (w, h int) { return g.cols, g.imageRows() * 2 }

// bufferSize is the rendered buffer before downscaling.
func (g grid) bufferSize() (w, h int) {
	w, h = g.displaySize()
	return w * supersample, h * supersample
}

// bufferPoint returns the buffer pixel at the center of cell (cx, cy).
func (g grid) bufferPoint(cx, cy int) (x, y int) {
	return cx*supersample + supersample/2, cy*2*supersample + supersample
}

// view draws frames onto a tcell screen.
type view struct {
	screen tcell.Screen
	grid   grid
	small  *image.RGBA
}

func newView(screen tcell.Screen) *view {
	v := &view{screen: screen}
	v.resize()
	return v
}

func (v *view) resize() {
	cols, rows := v.screen.Size()
	v.grid = grid{cols: cols, rows: rows}
	w, h := v.grid.displaySize()
	v.small = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (v *view) draw(frame *image.RGBA, status string) {
	xdraw.ApproxBiLinear.Scale(v.small, v.small.Bounds(), frame, frame.Bounds(), xdraw.Src, nil)

	for cy := range v.grid.imageRows() {
		for cx := range v.grid.cols {
			top := v.small.RGBAAt(cx, cy*2)
			bottom := v.small.RGBAAt(cx, cy*2+1)
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			v.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	v.drawStatus(status)
	v.screen.Show()
}

func (v *view) drawStatus(status string) {
	y := v.grid.rows - 1
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range status {
		w := runewidth.RuneWidth(r)
		if x+w > v.grid.cols {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x += max(w, 1)
	}
	for ; x < v.grid.cols; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}

func statusLine(vp *mandel.Viewport, took time.Duration) string {
	c := vp.Region().Center()
	return fmt.Sprintf(" center %.6g%+.6gi │ zoom %.3g │ %s │ wheel zoom · wasd/arrows pan · r reset · 1-6 landmarks · q quit",
		real(c), imag(c), vp.Zoom(), took.Round(time.Millisecond))
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
