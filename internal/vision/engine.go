// Package vision abstracts the mask-coupled vision primitives behind an
// engine interface so the segmentation stages can run against either the
// pure-Go implementation or an OpenCV backend.
package vision

import (
	"fmt"
	"image"

	"schematic-tracer/pkg/geometry"
)

// RetrievalMode selects which contours FindContours returns.
type RetrievalMode int

const (
	// RetrievalExternal returns only outermost contours.
	RetrievalExternal RetrievalMode = iota
	// RetrievalList returns all contours without nesting information.
	RetrievalList
)

// ApproxMode selects how contour points are stored.
type ApproxMode int

const (
	// ApproxNone keeps every boundary point.
	ApproxNone ApproxMode = iota
	// ApproxSimple drops redundant collinear points.
	ApproxSimple
)

// Contour is an ordered boundary point sequence.
type Contour []geometry.PointInt

// Engine is the capability set the segmentation stages need from a vision
// backend. Masks are single-channel images with foreground > 0.
type Engine interface {
	// FindContours extracts contours from a binary mask. The second return
	// value is the contour hierarchy, one entry per contour; backends that
	// track no nesting return -1 entries.
	FindContours(mask *image.Gray, retrieval RetrievalMode, approx ApproxMode) ([]Contour, [][4]int)

	// ContourArea measures the enclosed area of a contour.
	ContourArea(c Contour) float64

	// ArcLength measures the length of a contour, optionally closed.
	ArcLength(c Contour, closed bool) float64

	// BoundingRect computes the axis-aligned bounding rectangle of a contour.
	BoundingRect(c Contour) geometry.RectInt
}

// New returns the engine with the given name: "native" or "gocv".
// The gocv engine is only available in builds with the gocv tag.
func New(name string) (Engine, error) {
	switch name {
	case "", "native":
		return NewNative(), nil
	case "gocv":
		return newGoCV()
	default:
		return nil, fmt.Errorf("unknown vision engine %q", name)
	}
}
