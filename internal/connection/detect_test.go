package connection

import (
	"errors"
	"image"
	"testing"

	"schematic-tracer/internal/vision"
	"schematic-tracer/pkg/geometry"
)

// fakeEngine returns preset contours and measures them with the pure
// geometry helpers.
type fakeEngine struct {
	contours []vision.Contour
}

func (f *fakeEngine) FindContours(_ *image.Gray, _ vision.RetrievalMode, _ vision.ApproxMode) ([]vision.Contour, [][4]int) {
	h := make([][4]int, len(f.contours))
	for i := range h {
		h[i] = [4]int{-1, -1, -1, -1}
	}
	return f.contours, h
}

func (f *fakeEngine) ContourArea(c vision.Contour) float64 {
	return geometry.PolygonArea(c)
}

func (f *fakeEngine) ArcLength(c vision.Contour, closed bool) float64 {
	return geometry.ArcLength(c, closed)
}

func (f *fakeEngine) BoundingRect(c vision.Contour) geometry.RectInt {
	return geometry.BoundingRect(c)
}

// hline builds a horizontal polyline of the given pixel length.
func hline(x, y, length int) vision.Contour {
	c := make(vision.Contour, length)
	for i := 0; i < length; i++ {
		c[i] = geometry.PointInt{X: x + i, Y: y}
	}
	return c
}

func TestDetectLengthFilter(t *testing.T) {
	eng := &fakeEngine{contours: []vision.Contour{
		hline(0, 10, 80), // length 79: kept
		hline(0, 20, 10), // length 9: dropped
	}}

	opts := DefaultDetectionOptions()
	opts.MinLength = 30

	conns, err := Detect(eng, image.NewGray(image.Rect(0, 0, 100, 100)), opts)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(conns) != 1 {
		t.Fatalf("connections: got %d, want 1", len(conns))
	}
	if len(conns[0].Wire) != 80 {
		t.Errorf("wire points: got %d, want 80", len(conns[0].Wire))
	}
	if conns[0].StartID != "" || conns[0].EndID != "" {
		t.Errorf("fresh connection must have empty endpoints")
	}
}

func TestDetectLengthAtThresholdKept(t *testing.T) {
	eng := &fakeEngine{contours: []vision.Contour{
		hline(0, 10, 31), // length exactly 30
	}}

	opts := DefaultDetectionOptions()
	opts.MinLength = 30

	conns, err := Detect(eng, image.NewGray(image.Rect(0, 0, 100, 100)), opts)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(conns) != 1 {
		t.Fatalf("contour at threshold must be kept, got %d connections", len(conns))
	}
}

func TestDetectEmptyFails(t *testing.T) {
	eng := &fakeEngine{contours: nil}

	_, err := Detect(eng, image.NewGray(image.Rect(0, 0, 50, 50)), DefaultDetectionOptions())
	if !errors.Is(err, ErrNoConnections) {
		t.Fatalf("expected ErrNoConnections, got %v", err)
	}

	_, err = Detect(eng, nil, DefaultDetectionOptions())
	if !errors.Is(err, ErrNoConnections) {
		t.Fatalf("nil mask: expected ErrNoConnections, got %v", err)
	}
}
