package component

import (
	"errors"
	"image"

	"schematic-tracer/internal/vision"
)

// ErrNoComponents is returned when no contour passes the area filter.
// Callers must treat it as a hard stop for the run.
var ErrNoComponents = errors.New("component: no components detected")

// DetectionOptions configures component detection.
type DetectionOptions struct {
	MinArea            float64 // Minimum contour area to consider as a component
	BoxWidthIncrement  int     // Bounding box width tolerance in pixels
	BoxHeightIncrement int     // Bounding box height tolerance in pixels
}

// DefaultDetectionOptions returns sensible defaults for component detection.
func DefaultDetectionOptions() DetectionOptions {
	return DetectionOptions{
		MinArea:            800,
		BoxWidthIncrement:  20,
		BoxHeightIncrement: 20,
	}
}

// Detect converts the closed+opened blob mask into components. Each contour
// with area at or above the minimum becomes one component whose bounding
// rectangle is inflated by the configured increments and clamped to the
// image bounds.
func Detect(eng vision.Engine, mask *image.Gray, opts DetectionOptions) ([]*Component, error) {
	if mask == nil {
		return nil, ErrNoComponents
	}
	w := mask.Bounds().Dx()
	h := mask.Bounds().Dy()

	contours, _ := eng.FindContours(mask, vision.RetrievalExternal, vision.ApproxSimple)

	var components []*Component
	for _, c := range contours {
		if eng.ContourArea(c) < opts.MinArea {
			continue
		}
		box := eng.BoundingRect(c).Inflate(opts.BoxWidthIncrement, opts.BoxHeightIncrement, w, h)
		components = append(components, New(box))
	}

	if len(components) == 0 {
		return nil, ErrNoComponents
	}
	return components, nil
}
