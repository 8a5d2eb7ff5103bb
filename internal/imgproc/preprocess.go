package imgproc

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"

	"schematic-tracer/pkg/geometry"
)

// Options configures the preprocessing filter chain.
type Options struct {
	MaxDimension int     // Resize bound for the working image, 0 disables
	BlurRadius   float64 // Gaussian blur radius before thresholding
	Threshold    uint8   // Binary threshold level

	// Morphology radii: the component mask uses a large radius so bodies
	// collapse into solid blobs; the label mask uses a small one to merge
	// individual glyphs into word boxes.
	ComponentCloseRadius float64
	ComponentOpenRadius  float64
	LabelCloseRadius     float64
	LabelOpenRadius      float64

	WireEraseRadius int // Half-width of the wire erasure stroke, pixels
}

// DefaultOptions returns the preprocessing defaults.
func DefaultOptions() Options {
	return Options{
		MaxDimension:         1600,
		BlurRadius:           2,
		Threshold:            128,
		ComponentCloseRadius: 7,
		ComponentOpenRadius:  7,
		LabelCloseRadius:     3,
		LabelOpenRadius:      1,
		WireEraseRadius:      3,
	}
}

// Normalize resizes the image so its larger dimension does not exceed the
// configured bound. Images already within the bound pass through.
func Normalize(img image.Image, opts Options) image.Image {
	if opts.MaxDimension <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= opts.MaxDimension && h <= opts.MaxDimension {
		return img
	}
	if w >= h {
		return imaging.Resize(img, opts.MaxDimension, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, opts.MaxDimension, imaging.Lanczos)
}

// BinaryMask converts the scan into an ink mask: blur, threshold, invert.
// Dark ink on light paper comes out as foreground (255).
func BinaryMask(img image.Image, opts Options) *image.Gray {
	blurred := blur.Gaussian(img, opts.BlurRadius)
	bin := segment.Threshold(blurred, opts.Threshold)
	return invertGray(bin)
}

// ComponentMask derives the closed+opened blob mask: morphological close
// then open with the large component radius, so each component body
// becomes one solid isolated blob.
func ComponentMask(bin *image.Gray, opts Options) *image.Gray {
	closed := closeGray(bin, opts.ComponentCloseRadius)
	return openGray(closed, opts.ComponentOpenRadius)
}

// WireMask clones the ink mask and paints every component box black,
// leaving only the wires.
func WireMask(bin *image.Gray, boxes []geometry.RectInt) *image.Gray {
	out := cloneGray(bin)
	for _, box := range boxes {
		paintRect(out, box, 0)
	}
	return out
}

// LabelMask removes components and wires from the ink mask, then closes
// and opens with the small label radii so leftover glyph ink merges into
// word-sized blobs.
func LabelMask(bin *image.Gray, boxes []geometry.RectInt, wires [][]geometry.PointInt, opts Options) *image.Gray {
	out := cloneGray(bin)
	for _, box := range boxes {
		paintRect(out, box, 0)
	}
	for _, wire := range wires {
		for _, pt := range wire {
			paintDisc(out, pt, opts.WireEraseRadius, 0)
		}
	}
	closed := closeGray(out, opts.LabelCloseRadius)
	return openGray(closed, opts.LabelOpenRadius)
}

// closeGray is dilation followed by erosion.
func closeGray(mask *image.Gray, radius float64) *image.Gray {
	if radius <= 0 {
		return mask
	}
	d := effect.Dilate(mask, radius)
	e := effect.Erode(d, radius)
	return segment.Threshold(e, 128)
}

// openGray is erosion followed by dilation.
func openGray(mask *image.Gray, radius float64) *image.Gray {
	if radius <= 0 {
		return mask
	}
	e := effect.Erode(mask, radius)
	d := effect.Dilate(e, radius)
	return segment.Threshold(d, 128)
}

func cloneGray(src *image.Gray) *image.Gray {
	out := image.NewGray(src.Bounds())
	copy(out.Pix, src.Pix)
	return out
}

func invertGray(src *image.Gray) *image.Gray {
	out := image.NewGray(src.Bounds())
	for i, v := range src.Pix {
		out.Pix[i] = 255 - v
	}
	return out
}

// paintRect fills a rectangle with the given value, clipped to the mask.
func paintRect(mask *image.Gray, box geometry.RectInt, value uint8) {
	b := mask.Bounds()
	r := image.Rect(box.X, box.Y, box.X+box.Width+1, box.Y+box.Height+1).Intersect(b)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			mask.SetGray(x, y, color.Gray{Y: value})
		}
	}
}

// paintDisc fills a filled circle with the given value, clipped to the mask.
func paintDisc(mask *image.Gray, center geometry.PointInt, radius int, value uint8) {
	b := mask.Bounds()
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			x, y := center.X+dx, center.Y+dy
			if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
				mask.SetGray(x, y, color.Gray{Y: value})
			}
		}
	}
}
