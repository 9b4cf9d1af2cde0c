package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// RasterCanvas is a software Canvas backed by an *image.RGBA. It needs no
// display, which makes it the reference surface for pixel checks.
type RasterCanvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

var _ Canvas = (*RasterCanvas)(nil)

// NewRasterCanvas creates a transparent canvas of the given size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: vector.NewRasterizer(width, height),
	}
}

func (c *RasterCanvas) Clear(clr color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

func (c *RasterCanvas) FillRect(x, y, width, height float32, clr color.Color) {
	c.FillPolygon(RectPoints(x, y, width, height), clr)
}

func (c *RasterCanvas) FillPolygon(pts []Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Over
	c.ras.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.ras.LineTo(p.X, p.Y)
	}
	c.ras.ClosePath()
	c.ras.Draw(c.img, b, image.NewUniform(clr), image.Point{})
}

// At returns the pixel at (x, y).
func (c *RasterCanvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Bounds returns the canvas rectangle.
func (c *RasterCanvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Snapshot returns a copy of the current pixels.
func (c *RasterCanvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}
