package mandel

import (
	"image"
)

// FrameRenderer fills dst with the region r at the given iteration budget.
// Implementations must not retain dst after returning.
type FrameRenderer interface {
	Render(dst *image.RGBA, r Region, maxIter int)
}

// RenderTile fills the tile rectangle of dst. Plane coordinates are taken
// relative to the full dst bounds, so any partition of dst into tiles
// produces the same image. Tiles rendered concurrently must not overlap.
func RenderTile(dst *image.RGBA, r Region, tile image.Rectangle, maxIter int) {
	bounds := dst.Bounds()
	imgW, imgH := bounds.Dx(), bounds.Dy()
	tile = tile.Intersect(bounds)

	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		row := dst.PixOffset(tile.Min.X, py)
		for px := tile.Min.X; px < tile.Max.X; px++ {
			c := r.PlaneCoordinate(px-bounds.Min.X, py-bounds.Min.Y, imgW, imgH)
			col := Colorize(Evaluate(c, maxIter), maxIter)

			pix := dst.Pix[row : row+4 : row+4]
			pix[0], pix[1], pix[2], pix[3] = col.R, col.G, col.B, col.A
			row += 4
		}
	}
}
