package model

import "math"

// Point is a position on the slide canvas.
type Point struct {
	X, Y float64
}

// Distance returns the straight-line distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// BBox is an axis-aligned box: X and Y are the top-left corner.
type BBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewBBox returns the box at (x, y) with the given size.
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromPoints returns the smallest box spanning a and b, in either
// order.
func NewBBoxFromPoints(a, b Point) BBox {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return BBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func (b BBox) Left() float64   { return b.X }
func (b BBox) Top() float64    { return b.Y }
func (b BBox) Right() float64  { return b.X + b.Width }
func (b BBox) Bottom() float64 { return b.Y + b.Height }

// Center is the midpoint of the box.
func (b BBox) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Contains reports whether p lies inside b or on its edge.
func (b BBox) Contains(p Point) bool {
	return b.X <= p.X && p.X <= b.Right() && b.Y <= p.Y && p.Y <= b.Bottom()
}

// Intersects reports whether b and o overlap. Touching edges count.
func (b BBox) Intersects(o BBox) bool {
	return b.X <= o.Right() && o.X <= b.Right() && b.Y <= o.Bottom() && o.Y <= b.Bottom()
}

// Union is the smallest box covering both b and o.
func (b BBox) Union(o BBox) BBox {
	return NewBBoxFromPoints(
		Point{X: math.Min(b.X, o.X), Y: math.Min(b.Y, o.Y)},
		Point{X: math.Max(b.Right(), o.Right()), Y: math.Max(b.Bottom(), o.Bottom())},
	)
}

// MoveTo places the top-left corner at (x, y) and keeps the size.
func (b BBox) MoveTo(x, y float64) BBox {
	b.X, b.Y = x, y
	return b
}

// Scale multiplies the position by sx and sy. With resize the size is
// scaled too.
func (b BBox) Scale(sx, sy float64, resize bool) BBox {
	b.X *= sx
	b.Y *= sy
	if resize {
		b.Width *= sx
		b.Height *= sy
	}
	return b
}
