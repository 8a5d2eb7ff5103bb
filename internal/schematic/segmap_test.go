package schematic

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"schematic-tracer/internal/component"
	"schematic-tracer/internal/connection"
	"schematic-tracer/internal/label"
	"schematic-tracer/pkg/geometry"
)

// buildTestGraph wires a small graph: one component with one port, one
// connection ending at one junction node, one label on the component.
func buildTestGraph(t *testing.T) *Segmenter {
	t.Helper()

	comp := component.New(geometry.RectInt{X: 0, Y: 0, Width: 10, Height: 10})
	conn := connection.New([]geometry.PointInt{{X: 10, Y: 5}, {X: 30, Y: 5}})
	node := connection.NewNode(geometry.PointInt{X: 30, Y: 5})
	node.Type = connection.NodeJunction
	node.ConnectionIDs = []string{conn.ID}
	conn.EndID = node.ID

	port := component.NewPort(comp.ID, conn.ID, geometry.Point2D{X: 1, Y: 0.5})
	comp.AddPort(port)
	conn.StartID = port.ID

	l := label.New(geometry.RectInt{X: 2, Y: 12, Width: 8, Height: 4})
	l.Pos = label.Position{X: 2, Y: 12}
	comp.AttachLabel(l)

	s := NewSegmenter(100, 100, DefaultOptions())
	s.SetGraph([]*component.Component{comp}, []*connection.Connection{conn}, []*connection.Node{node})
	return s
}

func TestBuildMapShape(t *testing.T) {
	s := buildTestGraph(t)

	m, err := s.BuildMap()
	if err != nil {
		t.Fatalf("BuildMap: %v", err)
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"components", "connections", "nodes"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("document missing top-level %q", key)
		}
	}

	comps := doc["components"].([]any)
	if len(comps) != 1 {
		t.Fatalf("components: got %d, want 1", len(comps))
	}
	compDoc := comps[0].(map[string]any)
	for _, key := range []string{"id", "label", "ports"} {
		if _, ok := compDoc[key]; !ok {
			t.Errorf("component entry missing %q", key)
		}
	}

	ports := compDoc["ports"].([]any)
	portDoc := ports[0].(map[string]any)
	for _, key := range []string{"id", "owner", "type", "position", "connection"} {
		if _, ok := portDoc[key]; !ok {
			t.Errorf("port entry missing %q", key)
		}
	}
	if portDoc["type"] != "hybrid" {
		t.Errorf("port type: got %v, want hybrid", portDoc["type"])
	}

	labelDoc := compDoc["label"].(map[string]any)
	for _, key := range []string{"id", "owner", "name", "value", "unit", "position", "isNameHidden", "isValueHidden"} {
		if _, ok := labelDoc[key]; !ok {
			t.Errorf("label entry missing %q", key)
		}
	}
	labelPos := labelDoc["position"].(map[string]any)
	for _, key := range []string{"x", "y", "angle"} {
		if _, ok := labelPos[key]; !ok {
			t.Errorf("label position missing %q", key)
		}
	}

	connDoc := doc["connections"].([]any)[0].(map[string]any)
	for _, key := range []string{"id", "label", "start", "end"} {
		if _, ok := connDoc[key]; !ok {
			t.Errorf("connection entry missing %q", key)
		}
	}

	nodeDoc := doc["nodes"].([]any)[0].(map[string]any)
	for _, key := range []string{"id", "label", "connections", "type"} {
		if _, ok := nodeDoc[key]; !ok {
			t.Errorf("node entry missing %q", key)
		}
	}
	if nodeDoc["type"] != "junction" {
		t.Errorf("node type: got %v, want junction", nodeDoc["type"])
	}
}

func TestBuildMapRoundsPortPositions(t *testing.T) {
	comp := component.New(geometry.RectInt{X: 0, Y: 0, Width: 10, Height: 10})
	conn := connection.New([]geometry.PointInt{{X: 0, Y: 0}})
	port := component.NewPort(comp.ID, conn.ID, geometry.Point2D{X: 0.4166667, Y: 0.6512})
	comp.AddPort(port)
	conn.StartID = port.ID

	s := NewSegmenter(100, 100, DefaultOptions())
	s.SetGraph([]*component.Component{comp}, []*connection.Connection{conn}, nil)

	m, err := s.BuildMap()
	if err != nil {
		t.Fatalf("BuildMap: %v", err)
	}

	pos := m.Components[0].Ports[0].Position
	if pos.X != 0.4 || pos.Y != 0.7 {
		t.Errorf("rounded position: got (%v,%v), want (0.4,0.7)", pos.X, pos.Y)
	}
}

func TestBuildMapRejectsMalformed(t *testing.T) {
	comp := component.New(geometry.RectInt{X: 0, Y: 0, Width: 10, Height: 10})
	port := component.NewPort("someone-else", "conn", geometry.Point2D{})
	comp.AddPort(port)

	s := NewSegmenter(100, 100, DefaultOptions())
	s.SetGraph([]*component.Component{comp}, nil, nil)

	if _, err := s.BuildMap(); err == nil {
		t.Fatalf("owner mismatch must abort the map build")
	}

	s2 := NewSegmenter(100, 100, DefaultOptions())
	s2.SetGraph(nil, []*connection.Connection{{}}, nil)
	if _, err := s2.BuildMap(); err == nil {
		t.Fatalf("connection without id must abort the map build")
	}
}

func TestWriteMap(t *testing.T) {
	s := buildTestGraph(t)

	path := filepath.Join(t.TempDir(), "segmentation.json")
	if err := s.WriteMap(path); err != nil {
		t.Fatalf("WriteMap: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("written map is not valid JSON: %v", err)
	}
}
