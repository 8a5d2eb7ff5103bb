// Package pipeline runs the full segmentation: preprocessing, detection,
// junction synthesis, port wiring, label attribution, and net extraction.
package pipeline

import (
	"fmt"
	"image"
	"log"

	"schematic-tracer/internal/component"
	"schematic-tracer/internal/config"
	"schematic-tracer/internal/connection"
	"schematic-tracer/internal/imgproc"
	"schematic-tracer/internal/label"
	"schematic-tracer/internal/netlist"
	"schematic-tracer/internal/schematic"
	"schematic-tracer/internal/vision"
	"schematic-tracer/pkg/geometry"
)

// Result holds the segmented graph of one run.
type Result struct {
	Image     image.Image // The working image after normalization
	Segmenter *schematic.Segmenter
	Nets      []*netlist.Net
}

// Run executes all stages on the given scan. Every stage runs to
// completion before the next; a stage that finds nothing aborts the run.
func Run(src image.Image, cfg config.Config, eng vision.Engine) (*Result, error) {
	popts := imgproc.Options{
		MaxDimension:         cfg.Preprocess.MaxDimension,
		BlurRadius:           cfg.Preprocess.BlurRadius,
		Threshold:            cfg.Preprocess.Threshold,
		ComponentCloseRadius: cfg.Preprocess.ComponentCloseRadius,
		ComponentOpenRadius:  cfg.Preprocess.ComponentOpenRadius,
		LabelCloseRadius:     cfg.Preprocess.LabelCloseRadius,
		LabelOpenRadius:      cfg.Preprocess.LabelOpenRadius,
		WireEraseRadius:      cfg.Preprocess.WireEraseRadius,
	}

	working := imgproc.Normalize(src, popts)
	w := working.Bounds().Dx()
	h := working.Bounds().Dy()
	bin := imgproc.BinaryMask(working, popts)

	// Stage 1: components from the closed+opened blob mask.
	compMask := imgproc.ComponentMask(bin, popts)
	components, err := component.Detect(eng, compMask, component.DetectionOptions{
		MinArea:            cfg.Component.MinArea,
		BoxWidthIncrement:  cfg.Component.BoxWidthIncrement,
		BoxHeightIncrement: cfg.Component.BoxHeightIncrement,
	})
	if err != nil {
		return nil, fmt.Errorf("component detection: %w", err)
	}
	log.Printf("Detected %d components", len(components))

	// Stage 2: wire segments from the mask with components blacked out.
	boxes := make([]geometry.RectInt, len(components))
	for i, c := range components {
		boxes[i] = c.Box
	}
	wireMask := imgproc.WireMask(bin, boxes)
	copts := connection.DetectionOptions{
		MinLength: cfg.Connection.MinLength,
		BoxMargin: cfg.Connection.BoxMargin,
	}
	connections, err := connection.Detect(eng, wireMask, copts)
	if err != nil {
		return nil, fmt.Errorf("connection detection: %w", err)
	}
	log.Printf("Detected %d wire segments", len(connections))

	// Stage 3: junction synthesis.
	connections, nodes, err := connection.SynthesizeJunctions(connections, components, w, h, copts)
	if err != nil {
		return nil, fmt.Errorf("junction synthesis: %w", err)
	}
	log.Printf("Junction synthesis: %d connections, %d nodes", len(connections), len(nodes))

	// Stage 4: port detection and graph wiring.
	seg := schematic.NewSegmenter(w, h, schematic.Options{
		PortBoxMargin:       cfg.Segmenter.PortBoxMargin,
		ConnectionBoxMargin: cfg.Segmenter.ConnectionBoxMargin,
		NodeBoxMargin:       cfg.Segmenter.NodeBoxMargin,
	})
	seg.SetGraph(components, connections, nodes)
	if err := seg.DetectPorts(); err != nil {
		return nil, fmt.Errorf("port detection: %w", err)
	}
	log.Printf("Port detection: %d components survive", len(seg.Components()))

	// Stage 5: labels from the leftover ink, attributed to the graph.
	wires := make([][]geometry.PointInt, len(seg.Connections()))
	for i, c := range seg.Connections() {
		wires[i] = c.Wire
	}
	labelMask := imgproc.LabelMask(bin, boxes, wires, popts)
	labels, err := label.Detect(eng, labelMask, label.DetectionOptions{
		MinArea:         cfg.Label.MinArea,
		BoxWidthMargin:  cfg.Label.BoxWidthMargin,
		BoxHeightMargin: cfg.Label.BoxHeightMargin,
	})
	if err != nil {
		return nil, fmt.Errorf("label detection: %w", err)
	}
	seg.AttributeLabels(labels)
	log.Printf("Attributed %d labels", len(seg.Labels()))

	// Stage 6: electrical nets.
	nets := netlist.Extract(seg.Components(), seg.Connections(), seg.Nodes())
	log.Printf("Extracted %d nets", len(nets))

	return &Result{
		Image:     working,
		Segmenter: seg,
		Nets:      nets,
	}, nil
}
