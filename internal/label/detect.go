package label

import (
	"errors"
	"image"

	"schematic-tracer/internal/vision"
)

// ErrNoLabels is returned when no contour passes the area filter.
var ErrNoLabels = errors.New("label: no labels detected")

// DetectionOptions configures label detection.
type DetectionOptions struct {
	MinArea         float64 // Minimum contour area to consider as a label
	BoxWidthMargin  int     // Bounding box width tolerance in pixels
	BoxHeightMargin int     // Bounding box height tolerance in pixels
}

// DefaultDetectionOptions returns sensible defaults for label detection.
func DefaultDetectionOptions() DetectionOptions {
	return DetectionOptions{
		MinArea:         64,
		BoxWidthMargin:  2,
		BoxHeightMargin: 2,
	}
}

// Detect extracts label bounding boxes from the leftover-ink mask (the
// preprocessed image minus components minus wires). Contours below the
// minimum area are dropped. Returns ErrNoLabels when nothing qualifies.
func Detect(eng vision.Engine, mask *image.Gray, opts DetectionOptions) ([]*Label, error) {
	if mask == nil {
		return nil, ErrNoLabels
	}
	w := mask.Bounds().Dx()
	h := mask.Bounds().Dy()

	contours, _ := eng.FindContours(mask, vision.RetrievalExternal, vision.ApproxSimple)

	var labels []*Label
	for _, c := range contours {
		if eng.ContourArea(c) < opts.MinArea {
			continue
		}
		box := eng.BoundingRect(c).Inflate(opts.BoxWidthMargin, opts.BoxHeightMargin, w, h)
		labels = append(labels, New(box))
	}

	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	return labels, nil
}
