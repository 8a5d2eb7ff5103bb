package schematic

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"schematic-tracer/internal/component"
	"schematic-tracer/internal/label"
)

// The segmentation map is the emitted file format: top-level arrays of
// components, connections, and nodes, each entry carrying its ID, nested
// label, and element-specific fields.

// MapPosition is an emitted placement record.
type MapPosition struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// MapLabel is an emitted label record.
type MapLabel struct {
	ID            string      `json:"id"`
	Owner         string      `json:"owner"`
	Name          string      `json:"name"`
	Value         string      `json:"value"`
	Unit          string      `json:"unit"`
	Position      MapPosition `json:"position"`
	IsNameHidden  bool        `json:"isNameHidden"`
	IsValueHidden bool        `json:"isValueHidden"`
}

// MapPort is an emitted port record. Position coordinates are rounded to
// one decimal digit.
type MapPort struct {
	ID         string      `json:"id"`
	Owner      string      `json:"owner"`
	Type       string      `json:"type"`
	Position   MapPosition `json:"position"`
	Connection string      `json:"connection"`
}

// MapComponent is an emitted component record.
type MapComponent struct {
	ID    string    `json:"id"`
	Label *MapLabel `json:"label"`
	Ports []MapPort `json:"ports"`
}

// MapConnection is an emitted connection record.
type MapConnection struct {
	ID    string    `json:"id"`
	Label *MapLabel `json:"label"`
	Start string    `json:"start"`
	End   string    `json:"end"`
}

// MapNode is an emitted node record.
type MapNode struct {
	ID          string    `json:"id"`
	Label       *MapLabel `json:"label"`
	Connections []string  `json:"connections"`
	Type        string    `json:"type"`
}

// Map is the complete segmentation map document.
type Map struct {
	Components  []MapComponent  `json:"components"`
	Connections []MapConnection `json:"connections"`
	Nodes       []MapNode       `json:"nodes"`
}

// BuildMap serializes the segmenter's graph into a map document. Any
// malformed element aborts the build; no partial map is returned.
func (s *Segmenter) BuildMap() (*Map, error) {
	m := &Map{
		Components:  make([]MapComponent, 0, len(s.components)),
		Connections: make([]MapConnection, 0, len(s.connections)),
		Nodes:       make([]MapNode, 0, len(s.nodes)),
	}

	for i, comp := range s.components {
		rec, err := buildComponent(comp)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		m.Components = append(m.Components, rec)
	}
	for i, conn := range s.connections {
		if conn == nil || conn.ID == "" {
			return nil, fmt.Errorf("connection %d: missing id", i)
		}
		m.Connections = append(m.Connections, MapConnection{
			ID:    conn.ID,
			Label: buildLabel(conn.Label),
			Start: conn.StartID,
			End:   conn.EndID,
		})
	}
	for i, node := range s.nodes {
		if node == nil || node.ID == "" {
			return nil, fmt.Errorf("node %d: missing id", i)
		}
		m.Nodes = append(m.Nodes, MapNode{
			ID:          node.ID,
			Label:       buildLabel(node.Label),
			Connections: append([]string(nil), node.ConnectionIDs...),
			Type:        node.Type.String(),
		})
	}

	return m, nil
}

// WriteMap builds the map and writes it as indented JSON.
func (s *Segmenter) WriteMap(path string) error {
	m, err := s.BuildMap()
	if err != nil {
		return fmt.Errorf("build segmentation map: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode segmentation map: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

func buildComponent(comp *component.Component) (MapComponent, error) {
	if comp == nil || comp.ID == "" {
		return MapComponent{}, fmt.Errorf("missing id")
	}

	rec := MapComponent{
		ID:    comp.ID,
		Label: buildLabel(comp.Label),
		Ports: make([]MapPort, 0, len(comp.Ports)),
	}
	for i, port := range comp.Ports {
		if port == nil || port.ID == "" {
			return MapComponent{}, fmt.Errorf("port %d: missing id", i)
		}
		if port.OwnerID != comp.ID {
			return MapComponent{}, fmt.Errorf("port %d: owner mismatch", i)
		}
		rec.Ports = append(rec.Ports, MapPort{
			ID:    port.ID,
			Owner: port.OwnerID,
			Type:  port.Type.String(),
			Position: MapPosition{
				X: round1(port.Position.X),
				Y: round1(port.Position.Y),
			},
			Connection: port.ConnectionID,
		})
	}
	return rec, nil
}

func buildLabel(l *label.Label) *MapLabel {
	if l == nil {
		return nil
	}
	return &MapLabel{
		ID:    l.ID,
		Owner: l.OwnerID,
		Name:  l.Name,
		Value: l.Value,
		Unit:  l.Unit,
		Position: MapPosition{
			X:     l.Pos.X,
			Y:     l.Pos.Y,
			Angle: l.Pos.Angle,
		},
		IsNameHidden:  l.IsNameHidden,
		IsValueHidden: l.IsValueHidden,
	}
}

// round1 rounds to one decimal digit.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
