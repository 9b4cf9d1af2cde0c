package main

import (
	"house-door/pkg/render"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylibCanvas рисует в текущий кадр raylib (между BeginDrawing и EndDrawing)
type raylibCanvas struct{}

var _ render.Canvas = raylibCanvas{}

func (raylibCanvas) Clear(c color.Color) {
	rl.ClearBackground(colorToRL(c))
}

func (raylibCanvas) FillRect(x, y, width, height float32, c color.Color) {
	rl.DrawRectangleV(rl.NewVector2(x, y), rl.NewVector2(width, height), colorToRL(c))
}

// FillPolygon разбивает выпуклый многоугольник веером треугольников
func (raylibCanvas) FillPolygon(pts []render.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	rlColor := colorToRL(c)
	p0 := rl.NewVector2(pts[0].X, pts[0].Y)
	for i := 1; i+1 < len(pts); i++ {
		p1 := rl.NewVector2(pts[i].X, pts[i].Y)
		p2 := rl.NewVector2(pts[i+1].X, pts[i+1].Y)
		// raylib отбрасывает треугольники, заданные по часовой стрелке на экране
		if cross(p0, p1, p2) > 0 {
			p1, p2 = p2, p1
		}
		rl.DrawTriangle(p0, p1, p2, rlColor)
	}
}

func cross(a, b, c rl.Vector2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// colorToRL преобразует стандартный color.Color в rl.Color
func colorToRL(c color.Color) rl.Color {
	rgba := render.ToRGBA(c)
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}
