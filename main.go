// Command schematic-tracer segments a raster schematic image into a graph
// of components, wires, junction nodes, and labels, and writes the
// segmentation map, net list, per-element crops, and a debug overlay.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"schematic-tracer/internal/config"
	"schematic-tracer/internal/imgproc"
	"schematic-tracer/internal/pipeline"
	"schematic-tracer/internal/render"
	"schematic-tracer/internal/roi"
	"schematic-tracer/internal/vision"
)

const (
	appName    = "schematic-tracer"
	appVersion = "0.1.0"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	imagePath := flag.String("image", "", "Path to schematic image (PNG, JPEG, or TIFF)")
	configPath := flag.String("config", "", "Optional YAML config file")
	outDir := flag.String("out", "", "Output directory (overrides config)")
	engineName := flag.String("engine", "", "Vision engine: native or gocv (overrides config)")
	flag.Parse()

	if *imagePath == "" {
		flag.Usage()
		os.Exit(1)
	}

	log.Printf("Starting %s v%s", appName, appVersion)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *engineName != "" {
		cfg.Engine = *engineName
	}

	eng, err := vision.New(cfg.Engine)
	if err != nil {
		log.Fatalf("Vision engine: %v", err)
	}

	src, err := imgproc.Load(*imagePath)
	if err != nil {
		log.Fatalf("Load image: %v", err)
	}
	log.Printf("Loaded %s: %dx%d", *imagePath, src.Bounds().Dx(), src.Bounds().Dy())

	result, err := pipeline.Run(src, cfg, eng)
	if err != nil {
		log.Fatalf("Segmentation: %v", err)
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		log.Fatalf("Output directory: %v", err)
	}

	mapPath := filepath.Join(cfg.Output.Dir, "segmentation.json")
	if err := result.Segmenter.WriteMap(mapPath); err != nil {
		log.Fatalf("Segmentation map: %v", err)
	}
	log.Printf("Wrote %s", mapPath)

	netsPath := filepath.Join(cfg.Output.Dir, "netlist.json")
	if err := writeNets(result, netsPath); err != nil {
		log.Fatalf("Netlist: %v", err)
	}
	log.Printf("Wrote %s", netsPath)

	if cfg.Output.WriteROIs {
		roiDir := filepath.Join(cfg.Output.Dir, "roi")
		err := roi.Export(result.Image, result.Segmenter.Components(),
			result.Segmenter.Connections(), result.Segmenter.Nodes(), roiDir)
		if err != nil {
			// Partial ROI output is still useful; report and continue.
			log.Printf("ROI export: %v", err)
		} else {
			log.Printf("Wrote ROI crops to %s", roiDir)
		}
	}

	if cfg.Output.WriteOverlay {
		overlay := render.Overlay(result.Image, result.Segmenter.Components(),
			result.Segmenter.Connections(), result.Segmenter.Nodes(),
			result.Segmenter.Labels(), result.Nets)
		overlayPath := filepath.Join(cfg.Output.Dir, "overlay.png")
		if err := imgproc.SavePNG(overlay, overlayPath); err != nil {
			log.Printf("Overlay: %v", err)
		} else {
			log.Printf("Wrote %s", overlayPath)
		}
	}

	log.Printf("Done: %d components, %d connections, %d nodes, %d labels, %d nets",
		len(result.Segmenter.Components()), len(result.Segmenter.Connections()),
		len(result.Segmenter.Nodes()), len(result.Segmenter.Labels()), len(result.Nets))
}

func writeNets(result *pipeline.Result, path string) error {
	data, err := json.MarshalIndent(result.Nets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
