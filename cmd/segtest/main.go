// Command segtest runs the segmentation pipeline on a schematic image and
// prints per-stage statistics without writing any output files.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"schematic-tracer/internal/config"
	"schematic-tracer/internal/imgproc"
	"schematic-tracer/internal/pipeline"
	"schematic-tracer/internal/vision"
)

func main() {
	imagePath := flag.String("image", "", "Path to schematic image (PNG, JPEG, or TIFF)")
	configPath := flag.String("config", "", "Optional YAML config file")
	engineName := flag.String("engine", "", "Vision engine: native or gocv")
	verbose := flag.Bool("v", false, "Log pipeline stages")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: segtest -image <path> [-config <path>] [-engine native|gocv] [-v]")
		os.Exit(1)
	}
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config failed: %v\n", err)
		os.Exit(1)
	}
	if *engineName != "" {
		cfg.Engine = *engineName
	}

	eng, err := vision.New(cfg.Engine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Engine failed: %v\n", err)
		os.Exit(1)
	}

	src, err := imgproc.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded image: %dx%d pixels\n", src.Bounds().Dx(), src.Bounds().Dy())
	fmt.Printf("Engine: %s\n", cfg.Engine)

	result, err := pipeline.Run(src, cfg, eng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Segmentation failed: %v\n", err)
		os.Exit(1)
	}

	seg := result.Segmenter
	fmt.Printf("\nComponents: %d\n", len(seg.Components()))
	for _, comp := range seg.Components() {
		name := "(unlabeled)"
		if comp.Label != nil {
			name = comp.Label.ID[:8]
		}
		fmt.Printf("  %-10s box=(%d,%d %dx%d) ports=%d label=%s\n",
			comp.ID[:8], comp.Box.X, comp.Box.Y, comp.Box.Width, comp.Box.Height,
			len(comp.Ports), name)
	}

	fmt.Printf("\nConnections: %d\n", len(seg.Connections()))
	for _, conn := range seg.Connections() {
		fmt.Printf("  %-10s points=%d start=%s end=%s\n",
			conn.ID[:8], len(conn.Wire), short(conn.StartID), short(conn.EndID))
	}

	fmt.Printf("\nNodes: %d\n", len(seg.Nodes()))
	for _, node := range seg.Nodes() {
		fmt.Printf("  %-10s pos=(%d,%d) type=%s connections=%d\n",
			node.ID[:8], node.Position.X, node.Position.Y, node.Type, len(node.ConnectionIDs))
	}

	fmt.Printf("\nLabels: %d\n", len(seg.Labels()))
	fmt.Printf("Nets: %d\n", len(result.Nets))
	for _, net := range result.Nets {
		fmt.Printf("  %-8s ports=%d nodes=%d connections=%d\n",
			net.ID, len(net.PortIDs), len(net.NodeIDs), len(net.ConnectionIDs))
	}
}

func short(id string) string {
	if id == "" {
		return "-"
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
