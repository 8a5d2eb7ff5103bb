// Package roi crops and persists per-element sub-images of the original
// schematic scan.
package roi

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"schematic-tracer/internal/component"
	"schematic-tracer/internal/connection"
	"schematic-tracer/internal/label"
	"schematic-tracer/pkg/geometry"
)

// Export writes one crop of the original image per component, keyed by the
// component's ID, and one per attached label, keyed by
// <ownerID>_<ordinal>. Individual failures are collected and do not stop
// the remaining crops; the aggregate error is returned at the end.
func Export(src image.Image, components []*component.Component, connections []*connection.Connection, nodes []*connection.Node, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create roi directory: %w", err)
	}

	var errs []error

	for _, comp := range components {
		name := comp.ID + ".png"
		if err := writeCrop(src, comp.Box, filepath.Join(dir, name)); err != nil {
			errs = append(errs, fmt.Errorf("component %s: %w", comp.ID, err))
		}
	}

	exportLabels := func(owner string, labels []*label.Label) {
		for i, l := range labels {
			name := fmt.Sprintf("%s_%d.png", owner, i+1)
			if err := writeCrop(src, l.Box, filepath.Join(dir, name)); err != nil {
				errs = append(errs, fmt.Errorf("label %s: %w", l.ID, err))
			}
		}
	}

	for _, comp := range components {
		exportLabels(comp.ID, comp.Labels)
	}
	for _, conn := range connections {
		exportLabels(conn.ID, conn.Labels)
	}
	for _, node := range nodes {
		exportLabels(node.ID, node.Labels)
	}

	return errors.Join(errs...)
}

// writeCrop clips the box to the image bounds, crops, and saves as PNG.
func writeCrop(src image.Image, box geometry.RectInt, path string) error {
	b := src.Bounds()
	r := image.Rect(box.X, box.Y, box.X+box.Width, box.Y+box.Height).Intersect(b)
	if r.Empty() {
		return fmt.Errorf("box %+v outside image bounds", box)
	}

	cropped := imaging.Crop(src, r)
	if err := imaging.Save(cropped, path); err != nil {
		return fmt.Errorf("save %s: %w", filepath.Base(path), err)
	}
	return nil
}
