// Package connection provides wire segment detection, junction synthesis,
// and the connection and node entities of the schematic graph.
package connection

import (
	"github.com/google/uuid"

	"schematic-tracer/internal/label"
	"schematic-tracer/pkg/geometry"
)

// Connection represents one detected wire segment. StartID and EndID each
// reference a port or a node, or stay empty when the wire never reaches a
// component. StartID is always filled before EndID.
type Connection struct {
	ID      string              `json:"id"`
	StartID string              `json:"start"`
	EndID   string              `json:"end"`
	Wire    []geometry.PointInt `json:"wire"`

	Label  *label.Label   `json:"label,omitempty"`
	Labels []*label.Label `json:"labels,omitempty"`
}

// New creates a connection with a fresh ID and the given wire.
func New(wire []geometry.PointInt) *Connection {
	return &Connection{
		ID:   uuid.New().String(),
		Wire: wire,
	}
}

// Bounds returns the wire's bounding rectangle.
func (c *Connection) Bounds() geometry.RectInt {
	return geometry.BoundingRect(c.Wire)
}

// AttachLabel appends a label and makes it the primary one.
func (c *Connection) AttachLabel(l *label.Label) {
	l.OwnerID = c.ID
	c.Labels = append(c.Labels, l)
	c.Label = l
}

// NodeType distinguishes synthesized junctions from unset nodes.
type NodeType int

const (
	// NodeUnset is the default type.
	NodeUnset NodeType = iota
	// NodeJunction marks a node synthesized where three or more wire
	// segments meet.
	NodeJunction
)

func (t NodeType) String() string {
	switch t {
	case NodeJunction:
		return "junction"
	default:
		return "unset"
	}
}

// Node is a junction point where more than two connections meet.
type Node struct {
	ID            string            `json:"id"`
	Position      geometry.PointInt `json:"position"`
	ConnectionIDs []string          `json:"connections"`
	Type          NodeType          `json:"type"`

	Label  *label.Label   `json:"label,omitempty"`
	Labels []*label.Label `json:"labels,omitempty"`
}

// NewNode creates a node with a fresh ID at the given position.
func NewNode(position geometry.PointInt) *Node {
	return &Node{
		ID:       uuid.New().String(),
		Position: position,
	}
}

// AttachLabel appends a label and makes it the primary one.
func (n *Node) AttachLabel(l *label.Label) {
	l.OwnerID = n.ID
	n.Labels = append(n.Labels, l)
	n.Label = l
}
