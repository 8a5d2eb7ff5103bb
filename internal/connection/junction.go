package connection

import (
	"schematic-tracer/internal/component"
	"schematic-tracer/pkg/geometry"
)

// SynthesizeJunctions applies the junction rule to every connection. For
// each connection the components are tested in order; the first wire point
// inside a component's inflated box is recorded and that component is not
// tested again for the same wire. With N recorded intersections:
//
//	N == 0: the connection is discarded,
//	N <= 2: the connection is kept unchanged,
//	N > 2:  the connection is replaced by a node at the midpoint of the
//	        wire's per-axis extremes plus N two-point connections, one per
//	        intersection point, each ending at the node.
//
// Returns the surviving connections and the synthesized nodes, or
// ErrNoConnections when nothing survives.
func SynthesizeJunctions(connections []*Connection, components []*component.Component, width, height int, opts DetectionOptions) ([]*Connection, []*Node, error) {
	var kept []*Connection
	var nodes []*Node

	for _, conn := range connections {
		hits := intersectionPoints(conn.Wire, components, width, height, opts.BoxMargin)

		switch {
		case len(hits) == 0:
			// Wire touches nothing: drop it.

		case len(hits) <= 2:
			kept = append(kept, conn)

		default:
			node := NewNode(geometry.WireMidpoint(conn.Wire))
			node.Type = NodeJunction
			for _, pt := range hits {
				stub := New([]geometry.PointInt{pt, node.Position})
				stub.EndID = node.ID
				node.ConnectionIDs = append(node.ConnectionIDs, stub.ID)
				kept = append(kept, stub)
			}
			nodes = append(nodes, node)
		}
	}

	if len(kept) == 0 {
		return nil, nil, ErrNoConnections
	}
	return kept, nodes, nil
}

// intersectionPoints records, per component, the first wire point inside
// that component's inflated box. Each component contributes at most one
// point.
func intersectionPoints(wire []geometry.PointInt, components []*component.Component, width, height, margin int) []geometry.PointInt {
	var hits []geometry.PointInt
	for _, comp := range components {
		box := comp.Box.Inflate(margin, margin, width, height)
		for _, pt := range wire {
			if box.Contains(pt) {
				hits = append(hits, pt)
				break
			}
		}
	}
	return hits
}
