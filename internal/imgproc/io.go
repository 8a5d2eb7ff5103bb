// Package imgproc provides image loading and the filter chain that turns a
// schematic scan into the binary masks the detectors consume.
package imgproc

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/tiff"
)

// Load reads a schematic image (PNG, JPEG, or TIFF).
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// SavePNG writes an image as PNG.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
