package surface

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/midbel/slices"
)

// Raster paints on an RGBA image.
type Raster struct {
	dc *gg.Context
}

// NewRaster creates a raster surface of the given size cleared with bg.
func NewRaster(width, height int, bg color.Color) *Raster {
	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)
	if bg != nil {
		dc.SetColor(bg)
		dc.Clear()
	}
	dc.SetLineWidth(1)
	return &Raster{dc: dc}
}

func (r *Raster) Width() int {
	return r.dc.Width()
}

func (r *Raster) Height() int {
	return r.dc.Height()
}

func (r *Raster) SetColor(c color.Color) {
	r.dc.SetColor(c)
}

func (r *Raster) SetStrokeWidth(w float64) {
	r.dc.SetLineWidth(w)
}

func (r *Raster) FillRect(x, y, w, h int) {
	r.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	r.dc.Fill()
}

func (r *Raster) DrawLine(x0, y0, x1, y1 int) {
	r.dc.DrawLine(float64(x0), float64(y0), float64(x1), float64(y1))
	r.dc.Stroke()
}

func (r *Raster) DrawPolyline(points []image.Point) {
	if len(points) == 0 {
		return
	}
	fst := slices.Fst(points)
	r.dc.MoveTo(float64(fst.X), float64(fst.Y))
	for _, pt := range slices.Rest(points) {
		r.dc.LineTo(float64(pt.X), float64(pt.Y))
	}
	r.dc.Stroke()
}

func (r *Raster) FillOval(x, y, w, h int) {
	var (
		rx = float64(w) / 2
		ry = float64(h) / 2
	)
	r.dc.DrawEllipse(float64(x)+rx, float64(y)+ry, rx, ry)
	r.dc.Fill()
}

func (r *Raster) DrawText(str string, x, y int) {
	r.dc.DrawString(str, float64(x), float64(y))
}

func (r *Raster) MeasureText(str string) (int, int) {
	w, h := r.dc.MeasureString(str)
	return int(math.Ceil(w)), int(math.Ceil(h))
}

func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

func (r *Raster) Save(w io.Writer) error {
	return r.dc.EncodePNG(w)
}
