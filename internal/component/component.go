// Package component provides circuit component detection and the component
// and port entities of the schematic graph.
package component

import (
	"github.com/google/uuid"

	"schematic-tracer/internal/label"
	"schematic-tracer/pkg/geometry"
)

// PortType is a coarse direction tag for a port.
type PortType int

const (
	// PortHybrid is the default: direction unknown or bidirectional.
	PortHybrid PortType = iota
	PortInput
	PortOutput
)

func (t PortType) String() string {
	switch t {
	case PortHybrid:
		return "hybrid"
	case PortInput:
		return "input"
	case PortOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Port is a component's connection point where a wire terminates.
// Position is relative to the component's bounding box, in [0,1] per axis.
type Port struct {
	ID           string           `json:"id"`
	OwnerID      string           `json:"owner"`      // Owning component's ID
	ConnectionID string           `json:"connection"` // Connection terminating here
	Position     geometry.Point2D `json:"position"`
	Type         PortType         `json:"type"`
}

// NewPort creates a port with a fresh ID.
func NewPort(ownerID, connectionID string, position geometry.Point2D) *Port {
	return &Port{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		ConnectionID: connectionID,
		Position:     position,
		Type:         PortHybrid,
	}
}

// Position is a component's finalized placement: top-left corner plus
// rotation angle.
type Position struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// Component represents one detected circuit component.
type Component struct {
	ID       string           `json:"id"`
	Box      geometry.RectInt `json:"box"`
	Ports    []*Port          `json:"ports"`
	Position Position         `json:"position"`

	// Type and Name are free-form; classification happens outside this core.
	Type string `json:"type,omitempty"`
	Name string `json:"name,omitempty"`

	// Label is the primary label; Labels holds every attributed label.
	Label  *label.Label   `json:"label,omitempty"`
	Labels []*label.Label `json:"labels,omitempty"`
}

// New creates a component with a fresh ID and the given bounding box.
func New(box geometry.RectInt) *Component {
	return &Component{
		ID:  uuid.New().String(),
		Box: box,
	}
}

// AddPort appends a port to the component.
func (c *Component) AddPort(p *Port) {
	c.Ports = append(c.Ports, p)
}

// AttachLabel appends a label and makes it the primary one.
func (c *Component) AttachLabel(l *label.Label) {
	l.OwnerID = c.ID
	c.Labels = append(c.Labels, l)
	c.Label = l
}
