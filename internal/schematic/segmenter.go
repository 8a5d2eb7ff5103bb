// Package schematic assembles detected components, connections, and nodes
// into a wired schematic graph: port placement, start/end linkage, label
// attribution, and the serialized segmentation map.
package schematic

import (
	"errors"

	"schematic-tracer/internal/component"
	"schematic-tracer/internal/connection"
	"schematic-tracer/internal/label"
	"schematic-tracer/pkg/geometry"
)

// ErrNoPorts is returned when every component is pruned because no wire
// reaches it.
var ErrNoPorts = errors.New("schematic: no component has a port")

// Options configures the segmenter's geometric tolerances.
type Options struct {
	PortBoxMargin       int // Component box inflation for port scans, pixels
	ConnectionBoxMargin int // Connection box inflation for label attribution
	NodeBoxMargin       int // Extent given to a node's point for attribution
}

// DefaultOptions returns the segmenter defaults.
func DefaultOptions() Options {
	return Options{
		PortBoxMargin:       2,
		ConnectionBoxMargin: 2,
		NodeBoxMargin:       20,
	}
}

// Segmenter holds the run-scoped graph while it is being wired. All lists
// belong to one segmentation run; a fresh run builds a fresh Segmenter.
type Segmenter struct {
	width  int
	height int
	opts   Options

	components  []*component.Component
	connections []*connection.Connection
	nodes       []*connection.Node
	labels      []*label.Label
}

// NewSegmenter creates a segmenter for a canvas of the given size.
func NewSegmenter(width, height int, opts Options) *Segmenter {
	return &Segmenter{width: width, height: height, opts: opts}
}

// SetGraph installs the detected elements for this run.
func (s *Segmenter) SetGraph(components []*component.Component, connections []*connection.Connection, nodes []*connection.Node) {
	s.components = components
	s.connections = connections
	s.nodes = nodes
}

// Components returns the current component list.
func (s *Segmenter) Components() []*component.Component { return s.components }

// Connections returns the current connection list.
func (s *Segmenter) Connections() []*connection.Connection { return s.connections }

// Nodes returns the current node list.
func (s *Segmenter) Nodes() []*connection.Node { return s.nodes }

// Labels returns the labels attributed so far.
func (s *Segmenter) Labels() []*label.Label { return s.labels }

// DetectPorts places a port wherever a connection's wire enters a
// component's inflated box, wires the connection's start/end IDs to the new
// port, prunes components left without ports, and finalizes component
// positions. Components and connections are visited in detection order, so
// the first connection to reach a component fills its own StartID first.
func (s *Segmenter) DetectPorts() error {
	for _, comp := range s.components {
		box := comp.Box.Inflate(s.opts.PortBoxMargin, s.opts.PortBoxMargin, s.width, s.height)
		for _, conn := range s.connections {
			pt, ok := firstPointInside(conn.Wire, box)
			if !ok {
				continue
			}
			port := component.NewPort(comp.ID, conn.ID, portPosition(pt, comp.Box))
			comp.AddPort(port)
			if conn.StartID == "" {
				conn.StartID = port.ID
			} else {
				conn.EndID = port.ID
			}
		}
	}

	// Components no wire reaches carry no connectivity: prune them.
	pruned := s.components[:0]
	for _, comp := range s.components {
		if len(comp.Ports) == 0 {
			continue
		}
		comp.Position = component.Position{
			X: float64(comp.Box.X),
			Y: float64(comp.Box.Y),
		}
		pruned = append(pruned, comp)
	}
	s.components = pruned

	if len(s.components) == 0 {
		return ErrNoPorts
	}
	return nil
}

// firstPointInside returns the first wire point contained in the box.
func firstPointInside(wire []geometry.PointInt, box geometry.RectInt) (geometry.PointInt, bool) {
	for _, pt := range wire {
		if box.Contains(pt) {
			return pt, true
		}
	}
	return geometry.PointInt{}, false
}

// portPosition maps an intersection point to relative coordinates within
// the component's box. Points caught in the margin strip outside an edge
// clamp to that edge (0 or 1); interior points interpolate linearly.
func portPosition(pt geometry.PointInt, box geometry.RectInt) geometry.Point2D {
	return geometry.Point2D{
		X: relativeCoord(pt.X, box.X, box.Width),
		Y: relativeCoord(pt.Y, box.Y, box.Height),
	}
}

func relativeCoord(v, origin, size int) float64 {
	if v <= origin {
		return 0
	}
	if v >= origin+size {
		return 1
	}
	return float64(v-origin) / float64(size)
}
