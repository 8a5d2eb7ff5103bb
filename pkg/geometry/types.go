// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PointInt represents a 2D point with integer (pixel) coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ToFloat converts to Point2D.
func (p PointInt) ToFloat() Point2D {
	return Point2D{X: float64(p.X), Y: float64(p.Y)}
}

// Distance returns the Euclidean distance to another point.
func (p PointInt) Distance(other PointInt) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// RectInt represents an axis-aligned rectangle with integer coordinates.
type RectInt struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewRectInt creates a new RectInt.
func NewRectInt(x, y, width, height int) RectInt {
	return RectInt{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x coordinate of the right edge.
func (r RectInt) Right() int {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r RectInt) Bottom() int {
	return r.Y + r.Height
}

// Contains reports whether the point lies inside the rectangle.
// Edges are inclusive.
func (r RectInt) Contains(p PointInt) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r RectInt) Center() PointInt {
	return PointInt{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// TopLeft returns the top-left corner.
func (r RectInt) TopLeft() PointInt {
	return PointInt{X: r.X, Y: r.Y}
}

// Intersects reports whether this rectangle overlaps another.
func (r RectInt) Intersects(other RectInt) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Inflate grows the rectangle by (dw, dh), keeping it centered except at
// the canvas edges where growth is one-sided, and clamps the far edges to
// the canvas bounds (width, height).
func (r RectInt) Inflate(dw, dh, width, height int) RectInt {
	x := r.X - dw/2
	if x < 0 {
		x = 0
	}
	y := r.Y - dh/2
	if y < 0 {
		y = 0
	}
	w := r.Width + dw
	if x+w > width {
		w = width - x
	}
	h := r.Height + dh
	if y+h > height {
		h = height - y
	}
	return RectInt{X: x, Y: y, Width: w, Height: h}
}

// Distance returns the minimum distance between two rectangles,
// 0 when they overlap or touch.
func (r RectInt) Distance(other RectInt) float64 {
	dx := 0
	if other.X > r.Right() {
		dx = other.X - r.Right()
	} else if r.X > other.Right() {
		dx = r.X - other.Right()
	}
	dy := 0
	if other.Y > r.Bottom() {
		dy = other.Y - r.Bottom()
	} else if r.Y > other.Bottom() {
		dy = r.Y - other.Bottom()
	}
	return math.Hypot(float64(dx), float64(dy))
}

// RectAround returns a degenerate rectangle centered on a single point,
// inflated by (dw, dh) and clamped to the canvas bounds. Used to give
// point-like elements a comparable spatial extent.
func RectAround(p PointInt, dw, dh, width, height int) RectInt {
	return RectInt{X: p.X, Y: p.Y}.Inflate(dw, dh, width, height)
}

// BoundingRect computes the axis-aligned bounding rectangle of a point
// sequence. The rectangle spans from the minimum to the maximum coordinate
// on each axis, inclusive of the boundary pixels.
func BoundingRect(points []PointInt) RectInt {
	if len(points) == 0 {
		return RectInt{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return RectInt{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
}
