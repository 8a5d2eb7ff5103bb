package connection

import (
	"errors"
	"image"

	"schematic-tracer/internal/vision"
)

// ErrNoConnections is returned when no wire segments survive a detection
// stage. The run cannot proceed to port detection without connections.
var ErrNoConnections = errors.New("connection: no connections detected")

// DetectionOptions configures wire segment detection.
type DetectionOptions struct {
	MinLength float64 // Minimum contour arc length to consider as a wire
	BoxMargin int     // Component box inflation for intersection tests, pixels
}

// DefaultDetectionOptions returns sensible defaults for wire detection.
func DefaultDetectionOptions() DetectionOptions {
	return DetectionOptions{
		MinLength: 30,
		BoxMargin: 2,
	}
}

// Detect extracts wire segments from the mask with all component boxes
// painted black. Each contour with arc length at or above the minimum
// becomes one connection; no intersection logic runs here.
func Detect(eng vision.Engine, mask *image.Gray, opts DetectionOptions) ([]*Connection, error) {
	if mask == nil {
		return nil, ErrNoConnections
	}

	contours, _ := eng.FindContours(mask, vision.RetrievalList, vision.ApproxNone)

	var connections []*Connection
	for _, c := range contours {
		if eng.ArcLength(c, false) < opts.MinLength {
			continue
		}
		connections = append(connections, New(c))
	}

	if len(connections) == 0 {
		return nil, ErrNoConnections
	}
	return connections, nil
}
