// Package netlist partitions a segmented schematic into electrical nets:
// groups of ports and junction nodes joined by connections.
package netlist

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"schematic-tracer/internal/component"
	"schematic-tracer/internal/connection"
	"schematic-tracer/pkg/geometry"
)

// NetElementType identifies what kind of element is in a net.
type NetElementType int

const (
	ElementPort NetElementType = iota
	ElementNode
	ElementConnection
)

func (t NetElementType) String() string {
	switch t {
	case ElementPort:
		return "Port"
	case ElementNode:
		return "Node"
	case ElementConnection:
		return "Connection"
	default:
		return "Unknown"
	}
}

// NetElement identifies an element in a net with its position.
type NetElement struct {
	Type     NetElementType   `json:"type"`
	ID       string           `json:"id"`
	Position geometry.Point2D `json:"position"`
}

// Net represents one electrical net.
type Net struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Elements []NetElement `json:"elements"`

	// Element IDs for quick lookup
	PortIDs       []string `json:"port_ids"`
	NodeIDs       []string `json:"node_ids"`
	ConnectionIDs []string `json:"connection_ids"`
}

// ContainsElement checks if an element is in this net.
func (n *Net) ContainsElement(elementID string) bool {
	for _, e := range n.Elements {
		if e.ID == elementID {
			return true
		}
	}
	return false
}

// ElementCount returns the total number of elements in the net.
func (n *Net) ElementCount() int {
	return len(n.Elements)
}

// Extract partitions the schematic graph into nets. Ports and nodes are
// the vertices; every connection whose start and end are both wired is an
// edge. Connections with a single wired endpoint join that endpoint's net.
// Nets are ordered by their smallest member index for reproducibility.
func Extract(components []*component.Component, connections []*connection.Connection, nodes []*connection.Node) []*Net {
	type vertex struct {
		elem NetElement
	}

	var vertices []vertex
	index := make(map[string]int64)

	add := func(e NetElement) {
		if _, ok := index[e.ID]; ok {
			return
		}
		index[e.ID] = int64(len(vertices))
		vertices = append(vertices, vertex{elem: e})
	}

	for _, comp := range components {
		for _, port := range comp.Ports {
			// Absolute port position from its relative box coordinates.
			pos := geometry.Point2D{
				X: float64(comp.Box.X) + port.Position.X*float64(comp.Box.Width),
				Y: float64(comp.Box.Y) + port.Position.Y*float64(comp.Box.Height),
			}
			add(NetElement{Type: ElementPort, ID: port.ID, Position: pos})
		}
	}
	for _, node := range nodes {
		add(NetElement{Type: ElementNode, ID: node.ID, Position: node.Position.ToFloat()})
	}

	g := simple.NewUndirectedGraph()
	for id := range vertices {
		g.AddNode(simple.Node(id))
	}
	for _, conn := range connections {
		a, okA := index[conn.StartID]
		b, okB := index[conn.EndID]
		if okA && okB && a != b {
			g.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
		}
	}

	if len(vertices) == 0 {
		return nil
	}

	groups := topo.ConnectedComponents(g)

	// Order groups by smallest vertex index so net numbering is stable.
	sort.Slice(groups, func(i, j int) bool {
		return minID(groups[i]) < minID(groups[j])
	})

	memberNet := make(map[string]*Net)
	var nets []*Net
	for i, group := range groups {
		net := &Net{
			ID:   fmt.Sprintf("net-%03d", i+1),
			Name: fmt.Sprintf("net-%03d", i+1),
		}
		ids := make([]int64, 0, len(group))
		for _, gn := range group {
			ids = append(ids, gn.ID())
		}
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
		for _, id := range ids {
			e := vertices[id].elem
			net.Elements = append(net.Elements, e)
			switch e.Type {
			case ElementPort:
				net.PortIDs = append(net.PortIDs, e.ID)
			case ElementNode:
				net.NodeIDs = append(net.NodeIDs, e.ID)
			}
			memberNet[e.ID] = net
		}
		nets = append(nets, net)
	}

	// A connection belongs to the net of its endpoints.
	for _, conn := range connections {
		net := memberNet[conn.StartID]
		if net == nil {
			net = memberNet[conn.EndID]
		}
		if net == nil {
			continue
		}
		net.ConnectionIDs = append(net.ConnectionIDs, conn.ID)
		pos := geometry.Point2D{}
		if len(conn.Wire) > 0 {
			pos = conn.Wire[0].ToFloat()
		}
		net.Elements = append(net.Elements, NetElement{
			Type:     ElementConnection,
			ID:       conn.ID,
			Position: pos,
		})
	}

	return nets
}

func minID(group []graph.Node) int64 {
	m := group[0].ID()
	for _, n := range group[1:] {
		if n.ID() < m {
			m = n.ID()
		}
	}
	return m
}
