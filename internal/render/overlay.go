// Package render draws annotated overlays of the segmented schematic for
// visual inspection.
package render

import (
	"image"
	"image/color"
	"image/draw"

	colorful "github.com/lucasb-eyer/go-colorful"

	"schematic-tracer/internal/component"
	"schematic-tracer/internal/connection"
	"schematic-tracer/internal/label"
	"schematic-tracer/internal/netlist"
	"schematic-tracer/pkg/geometry"
)

var (
	componentColor = color.RGBA{R: 0, G: 160, B: 255, A: 255}
	nodeColor      = color.RGBA{R: 255, G: 64, B: 64, A: 255}
	labelColor     = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	portColor      = color.RGBA{R: 0, G: 220, B: 100, A: 255}
	wireFallback   = color.RGBA{R: 140, G: 140, B: 140, A: 255}
)

// Overlay renders the segmented graph on top of the original image.
// Component boxes, ports, nodes, and label boxes get fixed class colors;
// wires are colored per net.
func Overlay(src image.Image, components []*component.Component, connections []*connection.Connection, nodes []*connection.Node, labels []*label.Label, nets []*netlist.Net) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)

	netColor := wireColors(connections, nets)

	for _, conn := range connections {
		c, ok := netColor[conn.ID]
		if !ok {
			c = wireFallback
		}
		drawWire(out, conn.Wire, c)
	}

	for _, comp := range components {
		drawRect(out, comp.Box, componentColor)
		for _, port := range comp.Ports {
			pt := geometry.PointInt{
				X: comp.Box.X + int(port.Position.X*float64(comp.Box.Width)),
				Y: comp.Box.Y + int(port.Position.Y*float64(comp.Box.Height)),
			}
			drawDisc(out, pt, 3, portColor)
		}
	}

	for _, node := range nodes {
		drawDisc(out, node.Position, 4, nodeColor)
	}

	for _, l := range labels {
		drawRect(out, l.Box, labelColor)
	}

	return out
}

// wireColors assigns each net a palette color and maps every member
// connection to it.
func wireColors(connections []*connection.Connection, nets []*netlist.Net) map[string]color.RGBA {
	out := make(map[string]color.RGBA, len(connections))
	if len(nets) == 0 {
		return out
	}
	palette, err := colorful.HappyPalette(len(nets))
	if err != nil {
		return out
	}
	for i, net := range nets {
		r, g, b := palette[i].RGB255()
		c := color.RGBA{R: r, G: g, B: b, A: 255}
		for _, id := range net.ConnectionIDs {
			out[id] = c
		}
	}
	return out
}

func drawRect(img *image.RGBA, r geometry.RectInt, c color.RGBA) {
	for x := r.X; x <= r.X+r.Width; x++ {
		setPixel(img, x, r.Y, c)
		setPixel(img, x, r.Y+r.Height, c)
	}
	for y := r.Y; y <= r.Y+r.Height; y++ {
		setPixel(img, r.X, y, c)
		setPixel(img, r.X+r.Width, y, c)
	}
}

func drawWire(img *image.RGBA, wire []geometry.PointInt, c color.RGBA) {
	for _, pt := range wire {
		setPixel(img, pt.X, pt.Y, c)
	}
}

func drawDisc(img *image.RGBA, center geometry.PointInt, radius int, c color.RGBA) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				setPixel(img, center.X+dx, center.Y+dy, c)
			}
		}
	}
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}
