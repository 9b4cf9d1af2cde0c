// Package render defines the drawing surface shared by the window backends
// and a software implementation of it.
package render

import "image/color"

// Point is a vertex in logical screen coordinates, y pointing down.
type Point struct {
	X, Y float32
}

// Canvas is a drawable surface. Implementations paint immediately and in
// call order, so later shapes cover earlier ones.
type Canvas interface {
	Clear(c color.Color)
	FillRect(x, y, width, height float32, c color.Color)
	// FillPolygon fills the closed polygon pts. Fewer than three points draw nothing.
	FillPolygon(pts []Point, c color.Color)
}

// RectPoints returns the corners of an axis-aligned rectangle, clockwise on screen.
func RectPoints(x, y, width, height float32) []Point {
	return []Point{
		{x, y},
		{x + width, y},
		{x + width, y + height},
		{x, y + height},
	}
}
