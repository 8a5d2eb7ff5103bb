package connection

import (
	"errors"
	"testing"

	"schematic-tracer/internal/component"
	"schematic-tracer/pkg/geometry"
)

func compAt(box geometry.RectInt) *component.Component {
	return component.New(box)
}

func TestSynthesizeJunctionsThreeWay(t *testing.T) {
	// Wire touching three component boxes: one node plus three stubs.
	wire := []geometry.PointInt{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 15, Y: 20}}
	conn := New(wire)

	comps := []*component.Component{
		compAt(geometry.RectInt{X: 8, Y: 8, Width: 4, Height: 4}),   // contains (10,10)
		compAt(geometry.RectInt{X: 18, Y: 8, Width: 4, Height: 4}),  // contains (20,10)
		compAt(geometry.RectInt{X: 13, Y: 18, Width: 4, Height: 4}), // contains (15,20)
	}

	kept, nodes, err := SynthesizeJunctions([]*Connection{conn}, comps, 100, 100, DefaultDetectionOptions())
	if err != nil {
		t.Fatalf("SynthesizeJunctions: %v", err)
	}

	if len(nodes) != 1 {
		t.Fatalf("nodes: got %d, want 1", len(nodes))
	}
	node := nodes[0]
	if node.Type != NodeJunction {
		t.Errorf("node type: got %v, want junction", node.Type)
	}
	// Midpoint of extremes: x in [10,20], y in [10,20].
	if node.Position != (geometry.PointInt{X: 15, Y: 15}) {
		t.Errorf("node position: got %+v, want (15,15)", node.Position)
	}

	if len(kept) != 3 {
		t.Fatalf("connections: got %d, want 3", len(kept))
	}
	if len(node.ConnectionIDs) != 3 {
		t.Fatalf("node connection IDs: got %d, want 3", len(node.ConnectionIDs))
	}
	for i, stub := range kept {
		if stub.EndID != node.ID {
			t.Errorf("stub %d endId: got %q, want node ID", i, stub.EndID)
		}
		if stub.StartID != "" {
			t.Errorf("stub %d startId must stay empty until port wiring", i)
		}
		if len(stub.Wire) != 2 {
			t.Errorf("stub %d wire points: got %d, want 2", i, len(stub.Wire))
		}
		if stub.Wire[1] != node.Position {
			t.Errorf("stub %d must end at the node position", i)
		}
		if node.ConnectionIDs[i] != stub.ID {
			t.Errorf("node must record stub %d's ID", i)
		}
	}
}

func TestSynthesizeJunctionsTwoWayUnchanged(t *testing.T) {
	wire := []geometry.PointInt{{X: 10, Y: 10}, {X: 20, Y: 10}}
	conn := New(wire)

	comps := []*component.Component{
		compAt(geometry.RectInt{X: 8, Y: 8, Width: 4, Height: 4}),
		compAt(geometry.RectInt{X: 18, Y: 8, Width: 4, Height: 4}),
	}

	kept, nodes, err := SynthesizeJunctions([]*Connection{conn}, comps, 100, 100, DefaultDetectionOptions())
	if err != nil {
		t.Fatalf("SynthesizeJunctions: %v", err)
	}
	if len(nodes) != 0 {
		t.Fatalf("nodes: got %d, want 0", len(nodes))
	}
	if len(kept) != 1 || kept[0] != conn {
		t.Fatalf("two-way connection must be kept unchanged")
	}
	if len(kept[0].Wire) != 2 {
		t.Errorf("wire must be unmodified")
	}
}

func TestSynthesizeJunctionsUntouchedDiscarded(t *testing.T) {
	far := New([]geometry.PointInt{{X: 80, Y: 80}, {X: 90, Y: 90}})
	near := New([]geometry.PointInt{{X: 10, Y: 10}, {X: 20, Y: 10}})

	comps := []*component.Component{
		compAt(geometry.RectInt{X: 8, Y: 8, Width: 4, Height: 4}),
	}

	kept, nodes, err := SynthesizeJunctions([]*Connection{far, near}, comps, 100, 100, DefaultDetectionOptions())
	if err != nil {
		t.Fatalf("SynthesizeJunctions: %v", err)
	}
	if len(nodes) != 0 {
		t.Errorf("nodes: got %d, want 0", len(nodes))
	}
	if len(kept) != 1 || kept[0] != near {
		t.Fatalf("untouched connection must be discarded, touching one kept")
	}
}

func TestSynthesizeJunctionsAllDiscardedFails(t *testing.T) {
	conn := New([]geometry.PointInt{{X: 80, Y: 80}, {X: 90, Y: 90}})
	comps := []*component.Component{
		compAt(geometry.RectInt{X: 8, Y: 8, Width: 4, Height: 4}),
	}

	_, _, err := SynthesizeJunctions([]*Connection{conn}, comps, 100, 100, DefaultDetectionOptions())
	if !errors.Is(err, ErrNoConnections) {
		t.Fatalf("expected ErrNoConnections, got %v", err)
	}
}

func TestIntersectionOnePointPerComponent(t *testing.T) {
	// A wire running through one component several times still counts it once.
	wire := []geometry.PointInt{{X: 10, Y: 10}, {X: 30, Y: 10}, {X: 10, Y: 12}, {X: 30, Y: 12}}
	comps := []*component.Component{
		compAt(geometry.RectInt{X: 8, Y: 8, Width: 6, Height: 6}),
		compAt(geometry.RectInt{X: 28, Y: 8, Width: 6, Height: 6}),
	}

	hits := intersectionPoints(wire, comps, 100, 100, 2)
	if len(hits) != 2 {
		t.Fatalf("hits: got %d, want 2 (one per component)", len(hits))
	}
	// The first matching point per component is recorded.
	if hits[0] != (geometry.PointInt{X: 10, Y: 10}) {
		t.Errorf("first hit: got %+v, want (10,10)", hits[0])
	}
	if hits[1] != (geometry.PointInt{X: 30, Y: 10}) {
		t.Errorf("second hit: got %+v, want (30,10)", hits[1])
	}
}

func TestInflatedBoxClampedToCanvas(t *testing.T) {
	// A component at the canvas edge still participates; inflation clamps.
	wire := []geometry.PointInt{{X: 0, Y: 0}, {X: 5, Y: 0}}
	comps := []*component.Component{
		compAt(geometry.RectInt{X: 0, Y: 0, Width: 3, Height: 3}),
	}

	hits := intersectionPoints(wire, comps, 10, 10, 4)
	if len(hits) != 1 {
		t.Fatalf("hits: got %d, want 1", len(hits))
	}
}
