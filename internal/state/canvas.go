package state

import (
	"house-door/pkg/render"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ render.Canvas = (*EbitenCanvas)(nil)

// EbitenCanvas рисует фигуры на *ebiten.Image
type EbitenCanvas struct {
	dst     *ebiten.Image
	fillImg *ebiten.Image // 1x1 белый пиксель — источник для DrawTriangles
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

func NewEbitenCanvas(dst *ebiten.Image) *EbitenCanvas {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &EbitenCanvas{
		dst:     dst,
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 8),
		fillIs:  make([]uint16, 0, 12),
	}
}

func (c *EbitenCanvas) Clear(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *EbitenCanvas) FillRect(x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(c.dst, x, y, width, height, clr, false)
}

func (c *EbitenCanvas) FillPolygon(pts []render.Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		path.LineTo(p.X, p.Y)
	}
	path.Close()

	r, g, b, a := render.VertexColor(clr)
	c.fillVs, c.fillIs = path.AppendVerticesAndIndicesForFilling(c.fillVs[:0], c.fillIs[:0])
	for i := range c.fillVs {
		c.fillVs[i].SrcX = 0
		c.fillVs[i].SrcY = 0
		c.fillVs[i].ColorR = r
		c.fillVs[i].ColorG = g
		c.fillVs[i].ColorB = b
		c.fillVs[i].ColorA = a
	}
	c.dst.DrawTriangles(c.fillVs, c.fillIs, c.fillImg, &ebiten.DrawTrianglesOptions{})
}
