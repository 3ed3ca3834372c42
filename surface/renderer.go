package surface

import (
	"image"
	"image/color"
	"io"

	"github.com/midbel/slices"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Renderer adapts a go-chart renderer so that charts can be written with
// either of its PNG or SVG backends.
type Renderer struct {
	rdr chart.Renderer
}

// NewRenderer creates the renderer with provider, typically chart.PNG or
// chart.SVG, and loads the default go-chart font.
func NewRenderer(provider chart.RendererProvider, width, height int) (*Renderer, error) {
	rdr, err := provider(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}
	rdr.SetFont(font)
	rdr.SetFontSize(FontSize)
	rdr.SetStrokeWidth(1)
	return &Renderer{rdr: rdr}, nil
}

func (r *Renderer) SetColor(c color.Color) {
	dc := toDrawing(c)
	r.rdr.SetStrokeColor(dc)
	r.rdr.SetFillColor(dc)
	r.rdr.SetFontColor(dc)
}

func (r *Renderer) SetStrokeWidth(w float64) {
	r.rdr.SetStrokeWidth(w)
}

func (r *Renderer) FillRect(x, y, w, h int) {
	r.rdr.MoveTo(x, y)
	r.rdr.LineTo(x+w, y)
	r.rdr.LineTo(x+w, y+h)
	r.rdr.LineTo(x, y+h)
	r.rdr.Close()
	r.rdr.Fill()
}

func (r *Renderer) DrawLine(x0, y0, x1, y1 int) {
	r.rdr.MoveTo(x0, y0)
	r.rdr.LineTo(x1, y1)
	r.rdr.Stroke()
}

func (r *Renderer) DrawPolyline(points []image.Point) {
	if len(points) == 0 {
		return
	}
	fst := slices.Fst(points)
	r.rdr.MoveTo(fst.X, fst.Y)
	for _, pt := range slices.Rest(points) {
		r.rdr.LineTo(pt.X, pt.Y)
	}
	r.rdr.Stroke()
}

func (r *Renderer) FillOval(x, y, w, h int) {
	radius := float64(max(w, h)) / 2
	r.rdr.Circle(radius, x+w/2, y+h/2)
	r.rdr.Fill()
}

func (r *Renderer) DrawText(str string, x, y int) {
	r.rdr.Text(str, x, y)
}

func (r *Renderer) MeasureText(str string) (int, int) {
	box := r.rdr.MeasureText(str)
	return box.Width(), box.Height()
}

func (r *Renderer) Save(w io.Writer) error {
	return r.rdr.Save(w)
}

func toDrawing(c color.Color) drawing.Color {
	n := toNRGBA(c)
	return drawing.Color{
		R: n.R,
		G: n.G,
		B: n.B,
		A: n.A,
	}
}
