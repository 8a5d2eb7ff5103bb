//go:build gocv

package vision

import (
	"image"

	"schematic-tracer/pkg/geometry"

	"gocv.io/x/gocv"
)

// goCV is the OpenCV-backed engine.
type goCV struct{}

func newGoCV() (Engine, error) {
	return &goCV{}, nil
}

func (g *goCV) FindContours(mask *image.Gray, retrieval RetrievalMode, approx ApproxMode) ([]Contour, [][4]int) {
	if mask == nil {
		return nil, nil
	}
	mat, err := gocv.ImageGrayToMatGray(mask)
	if err != nil {
		return nil, nil
	}
	defer mat.Close()

	mode := gocv.RetrievalExternal
	if retrieval == RetrievalList {
		mode = gocv.RetrievalList
	}
	method := gocv.ChainApproxNone
	if approx == ApproxSimple {
		method = gocv.ChainApproxSimple
	}

	pv := gocv.FindContours(mat, mode, method)
	defer pv.Close()

	contours := make([]Contour, 0, pv.Size())
	hierarchy := make([][4]int, 0, pv.Size())
	for i := 0; i < pv.Size(); i++ {
		pts := pv.At(i).ToPoints()
		c := make(Contour, len(pts))
		for j, p := range pts {
			c[j] = geometry.PointInt{X: p.X, Y: p.Y}
		}
		contours = append(contours, c)
		hierarchy = append(hierarchy, [4]int{-1, -1, -1, -1})
	}
	return contours, hierarchy
}

func (g *goCV) ContourArea(c Contour) float64 {
	pv := gocv.NewPointVectorFromPoints(toImagePoints(c))
	defer pv.Close()
	return gocv.ContourArea(pv)
}

func (g *goCV) ArcLength(c Contour, closed bool) float64 {
	pv := gocv.NewPointVectorFromPoints(toImagePoints(c))
	defer pv.Close()
	return gocv.ArcLength(pv, closed)
}

func (g *goCV) BoundingRect(c Contour) geometry.RectInt {
	pv := gocv.NewPointVectorFromPoints(toImagePoints(c))
	defer pv.Close()
	r := gocv.BoundingRect(pv)
	return geometry.RectInt{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

func toImagePoints(c Contour) []image.Point {
	pts := make([]image.Point, len(c))
	for i, p := range c {
		pts[i] = image.Point{X: p.X, Y: p.Y}
	}
	return pts
}
