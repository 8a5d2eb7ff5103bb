package schematic

import (
	"math"

	"schematic-tracer/internal/label"
	"schematic-tracer/pkg/geometry"
)

// AttributeLabels assigns every label to its nearest element by
// rectangle-to-rectangle distance. Connection boxes are inflated by the
// connection margin; a node's single point is given extent via the node
// margin. Exact distance ties resolve by category precedence (component,
// then connection, then node) and by detection order within a category,
// which the strict less-than comparison pins down. The winning element
// records the label and makes it the primary one.
func (s *Segmenter) AttributeLabels(labels []*label.Label) {
	connBoxes := make([]geometry.RectInt, len(s.connections))
	for i, conn := range s.connections {
		connBoxes[i] = conn.Bounds().Inflate(s.opts.ConnectionBoxMargin, s.opts.ConnectionBoxMargin, s.width, s.height)
	}
	nodeBoxes := make([]geometry.RectInt, len(s.nodes))
	for i, node := range s.nodes {
		nodeBoxes[i] = geometry.RectAround(node.Position, s.opts.NodeBoxMargin, s.opts.NodeBoxMargin, s.width, s.height)
	}

	for _, l := range labels {
		best := math.MaxFloat64
		var attach func()

		for _, comp := range s.components {
			if d := l.Box.Distance(comp.Box); d < best {
				best = d
				attach = func() { comp.AttachLabel(l) }
			}
		}
		for i, conn := range s.connections {
			if d := l.Box.Distance(connBoxes[i]); d < best {
				best = d
				attach = func() { conn.AttachLabel(l) }
			}
		}
		for i, node := range s.nodes {
			if d := l.Box.Distance(nodeBoxes[i]); d < best {
				best = d
				attach = func() { node.AttachLabel(l) }
			}
		}

		if attach == nil {
			// No elements to attach to; cannot happen after a successful
			// port detection pass.
			continue
		}
		l.Pos = label.Position{X: float64(l.Box.X), Y: float64(l.Box.Y)}
		attach()
		s.labels = append(s.labels, l)
	}
}
