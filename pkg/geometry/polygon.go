package geometry

import "math"

// PolygonArea computes the enclosed area of a closed point sequence using
// the shoelace formula. The contour is treated as implicitly closed.
func PolygonArea(points []PointInt) float64 {
	if len(points) < 3 {
		return 0
	}
	var sum float64
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += float64(points[i].X)*float64(points[j].Y) -
			float64(points[j].X)*float64(points[i].Y)
	}
	return math.Abs(sum) / 2
}

// ArcLength computes the total length of a polyline. When closed is true
// the segment from the last point back to the first is included.
func ArcLength(points []PointInt, closed bool) float64 {
	if len(points) < 2 {
		return 0
	}
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}
	if closed {
		total += points[len(points)-1].Distance(points[0])
	}
	return total
}

// WireMidpoint returns the midpoint of a polyline's per-axis extremes:
// ((minX+maxX)/2, (minY+maxY)/2) with integer truncation. The first
// occurrence wins for both the minimum and the maximum on each axis.
func WireMidpoint(points []PointInt) PointInt {
	if len(points) == 0 {
		return PointInt{}
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
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
	return PointInt{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
}
