// Package render schedules a frame of the Mandelbrot set across goroutines.
//
// The buffer is split into tiles; workers pop tiles from a shared cursor and
// fill them with mandel.RenderTile. Tiles never overlap, so the workers
// share the output buffer without locking.
package render

import (
	"image"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	mandel "github.com/marben/mandel_explorer"
)

const (
	DefaultTileW = 64
	DefaultTileH = 64
)

// Stats describes the most recent Render call.
type Stats struct {
	Tiles    int
	Workers  int
	Duration time.Duration
}

// Renderer renders frames in parallel. A Renderer may be reused for any
// number of frames but Render must not be called concurrently.
type Renderer struct {
	workers      int
	tileW, tileH int

	// tiles cached for the last buffer bounds
	bounds image.Rectangle
	tiles  []image.Rectangle

	stats Stats
}

type Option func(*Renderer)

// WithWorkers sets the number of goroutines. n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Renderer) { r.workers = n }
}

// WithTileSize sets the tile dimensions. Non-positive values keep the default.
func WithTileSize(w, h int) Option {
	return func(r *Renderer) {
		if w > 0 {
			r.tileW = w
		}
		if h > 0 {
			r.tileH = h
		}
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		tileW: DefaultTileW,
		tileH: DefaultTileH,
	}
	for _, o := range opts {
		o(r)
	}
	if r.workers <= 0 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	return r
}

var _ mandel.FrameRenderer = (*Renderer)(nil)

// Render fills dst with region at maxIter and returns once every tile is done.
// region is received by value and stays fixed for the whole pass.
func (r *Renderer) Render(dst *image.RGBA, region mandel.Region, maxIter int) {
	start := time.Now()
	tiles := r.tilesFor(dst.Bounds())

	workers := min(r.workers, len(tiles))
	var next atomic.Int64
	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for {
				i := int(next.Add(1)) - 1
				if i >= len(tiles) {
					return
				}
				mandel.RenderTile(dst, region, tiles[i], maxIter)
			}
		})
	}
	wg.Wait()

	r.stats = Stats{Tiles: len(tiles), Workers: workers, Duration: time.Since(start)}
	mandel.Logger().Debug("frame rendered",
		slog.Int("tiles", r.stats.Tiles),
		slog.Int("workers", r.stats.Workers),
		slog.Duration("took", r.stats.Duration))
}

func (r *Renderer) Stats() Stats { return r.stats }

func (r *Renderer) Workers() int { return r.workers }

func (r *Renderer) tilesFor(b image.Rectangle) []image.Rectangle {
	if b != r.bounds || r.tiles == nil {
		r.bounds = b
		r.tiles = splitRectNoClip(b, r.tileW, r.tileH)
	}
	return r.tiles
}

// splitRectNoClip splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func splitRectNoClip(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	tiles := make([]image.Rectangle, 0, ((w+tileW-1)/tileW)*((h+tileH-1)/tileH))

	for oy := 0; oy < h; oy += tileH {
		th := min(tileH, h-oy)

		for ox := 0; ox < w; ox += tileW {
			tw := min(tileW, w-ox)

			tile := image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			)
			tiles = append(tiles, tile)
		}
	}

	return tiles
}
