package surface

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

// Vector collects the drawing as SVG elements.
type Vector struct {
	width  int
	height int

	elements []svg.Element
	fill     string
	opacity  float64
	stroke   float64
}

func NewVector(width, height int) *Vector {
	return &Vector{
		width:   width,
		height:  height,
		fill:    "#000000",
		opacity: 1,
		stroke:  1,
	}
}

func (v *Vector) SetColor(c color.Color) {
	n := toNRGBA(c)
	v.fill = fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	v.opacity = float64(n.A) / 0xff
}

func (v *Vector) SetStrokeWidth(w float64) {
	v.stroke = w
}

func (v *Vector) FillRect(x, y, w, h int) {
	var el svg.Rect
	el.Pos = svg.NewPos(float64(x), float64(y))
	el.Dim = svg.NewDim(float64(w), float64(h))
	el.Fill = v.getFill()
	v.elements = append(v.elements, el.AsElement())
}

func (v *Vector) DrawLine(x0, y0, x1, y1 int) {
	li := svg.NewLine(svg.NewPos(float64(x0), float64(y0)), svg.NewPos(float64(x1), float64(y1)))
	li.Stroke = v.getStroke()
	v.elements = append(v.elements, li.AsElement())
}

func (v *Vector) DrawPolyline(points []image.Point) {
	if len(points) == 0 {
		return
	}
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = v.getStroke()
	pat.Fill = svg.NewFill("none")

	fst := slices.Fst(points)
	pat.AbsMoveTo(svg.NewPos(float64(fst.X), float64(fst.Y)))
	for _, pt := range slices.Rest(points) {
		pat.AbsLineTo(svg.NewPos(float64(pt.X), float64(pt.Y)))
	}
	v.elements = append(v.elements, pat.AsElement())
}

// FillOval only draws circles: the larger side of the box is used as the
// diameter.
func (v *Vector) FillOval(x, y, w, h int) {
	var (
		el   svg.Circle
		size = max(w, h)
		half = float64(size) / 2
	)
	el.Pos = svg.NewPos(float64(x)+half, float64(y)+half)
	el.Radius = half
	el.Fill = v.getFill()
	v.elements = append(v.elements, el.AsElement())
}

func (v *Vector) DrawText(str string, x, y int) {
	tx := svg.NewText(str)
	tx.Pos = svg.NewPos(float64(x), float64(y))
	tx.Font = svg.NewFont(FontSize)

	var g svg.Group
	g.Fill = v.getFill()
	g.Append(tx.AsElement())
	v.elements = append(v.elements, g.AsElement())
}

func (v *Vector) MeasureText(str string) (int, int) {
	return measure(str)
}

func (v *Vector) Save(w io.Writer) error {
	el := svg.NewSVG(svg.WithDimension(float64(v.width), float64(v.height)))
	el.OmitProlog = true
	for i := range v.elements {
		el.Append(v.elements[i])
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (v *Vector) getFill() svg.Fill {
	fill := svg.NewFill(v.fill)
	fill.Opacity = v.opacity
	return fill
}

func (v *Vector) getStroke() svg.Stroke {
	sk := svg.NewStroke(v.fill, v.stroke)
	sk.Opacity = v.opacity
	return sk
}
