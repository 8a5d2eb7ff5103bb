// Package label provides text label detection and the label entity.
// Labels are positioned and attributed to schematic elements, never read;
// OCR is out of scope.
package label

import (
	"github.com/google/uuid"

	"schematic-tracer/pkg/geometry"
)

// Position is a label's placement: top-left corner plus rotation angle.
type Position struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// Label represents a detected text region attached to exactly one
// schematic element (component, connection, or node).
type Label struct {
	ID      string           `json:"id"`
	OwnerID string           `json:"owner"` // ID of the owning element
	Name    string           `json:"name"`
	Value   string           `json:"value"`
	Unit    string           `json:"unit"`
	Box     geometry.RectInt `json:"box"`
	Pos     Position         `json:"position"`

	IsNameHidden  bool `json:"isNameHidden"`
	IsValueHidden bool `json:"isValueHidden"`
}

// New creates a label with a fresh ID and the given bounding box.
// The owner is assigned later during attribution.
func New(box geometry.RectInt) *Label {
	return &Label{
		ID:  uuid.New().String(),
		Box: box,
	}
}
