package vision

import (
	"image"

	"schematic-tracer/pkg/geometry"
)

// Native is the pure-Go vision engine. Contour extraction uses
// Moore-neighbor border tracing; measurements are the shoelace area and
// polyline arc length. It is deterministic, which also makes it the
// reference backend for tests.
type Native struct{}

// NewNative creates the pure-Go engine.
func NewNative() *Native {
	return &Native{}
}

// mooreOffsets enumerates the 8-neighborhood clockwise starting west.
var mooreOffsets = [8]geometry.PointInt{
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
}

// FindContours extracts outer contours from a binary mask. Both retrieval
// modes trace outer borders only; holes are not followed. The hierarchy is
// flat: every entry is {-1,-1,-1,-1}.
func (n *Native) FindContours(mask *image.Gray, retrieval RetrievalMode, approx ApproxMode) ([]Contour, [][4]int) {
	if mask == nil {
		return nil, nil
	}
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()

	fg := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return mask.GrayAt(b.Min.X+x, b.Min.Y+y).Y > 0
	}

	visited := make([]bool, w*h)
	var contours []Contour

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Border start: foreground pixel entered from the background
			// on its left, not already part of a traced border.
			if !fg(x, y) || visited[y*w+x] || fg(x-1, y) {
				continue
			}
			c := traceBorder(fg, x, y)
			for _, p := range c {
				visited[p.Y*w+p.X] = true
			}
			if approx == ApproxSimple {
				c = compressContour(c)
			}
			contours = append(contours, c)
		}
	}

	hierarchy := make([][4]int, len(contours))
	for i := range hierarchy {
		hierarchy[i] = [4]int{-1, -1, -1, -1}
	}
	return contours, hierarchy
}

// traceBorder follows the outer border clockwise from the start pixel
// using Moore-neighbor tracing with Jacob's stopping criterion.
func traceBorder(fg func(x, y int) bool, startX, startY int) Contour {
	start := geometry.PointInt{X: startX, Y: startY}
	contour := Contour{start}

	cur := start
	// Entered from the west neighbor.
	backtrack := 0

	for {
		found := false
		dir := backtrack
		for i := 0; i < 8; i++ {
			dir = (backtrack + 1 + i) % 8
			off := mooreOffsets[dir]
			nx, ny := cur.X+off.X, cur.Y+off.Y
			if fg(nx, ny) {
				// Next backtrack direction points at the previous pixel.
				backtrack = (dir + 4) % 8
				cur = geometry.PointInt{X: nx, Y: ny}
				found = true
				break
			}
		}
		if !found {
			// Isolated pixel.
			return contour
		}
		if cur == start && len(contour) > 1 {
			return contour
		}
		contour = append(contour, cur)
	}
}

// compressContour removes interior points of straight runs, keeping
// direction-change vertices. Matches the chain-approximation convention
// of keeping the run endpoints.
func compressContour(c Contour) Contour {
	if len(c) <= 2 {
		return c
	}
	out := Contour{c[0]}
	for i := 1; i < len(c)-1; i++ {
		dx1 := c[i].X - c[i-1].X
		dy1 := c[i].Y - c[i-1].Y
		dx2 := c[i+1].X - c[i].X
		dy2 := c[i+1].Y - c[i].Y
		if dx1 != dx2 || dy1 != dy2 {
			out = append(out, c[i])
		}
	}
	out = append(out, c[len(c)-1])
	return out
}

// ContourArea measures the enclosed area with the shoelace formula.
func (n *Native) ContourArea(c Contour) float64 {
	return geometry.PolygonArea(c)
}

// ArcLength measures the contour length.
func (n *Native) ArcLength(c Contour, closed bool) float64 {
	return geometry.ArcLength(c, closed)
}

// BoundingRect computes the contour's axis-aligned bounding rectangle.
func (n *Native) BoundingRect(c Contour) geometry.RectInt {
	return geometry.BoundingRect(c)
}
