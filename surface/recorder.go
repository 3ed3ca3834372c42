package surface

import (
	"image"
	"image/color"

	"github.com/samber/lo"
)

type Kind int

const (
	KindRect Kind = iota
	KindLine
	KindPolyline
	KindOval
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindLine:
		return "line"
	case KindPolyline:
		return "polyline"
	case KindOval:
		return "oval"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one primitive drawn on a Recorder. Rects and ovals keep their
// origin in Points[0] and their dimension in Size.
type Op struct {
	Kind   Kind
	Color  color.NRGBA
	Stroke float64
	Points []image.Point
	Size   image.Point
	Text   string
}

// Recorder is a surface that keeps every primitive drawn on it instead of
// producing pixels.
type Recorder struct {
	ops    []Op
	color  color.NRGBA
	stroke float64
}

func NewRecorder() *Recorder {
	return &Recorder{
		color:  color.NRGBA{A: 0xff},
		stroke: 1,
	}
}

func (r *Recorder) SetColor(c color.Color) {
	r.color = toNRGBA(c)
}

func (r *Recorder) SetStrokeWidth(w float64) {
	r.stroke = w
}

func (r *Recorder) FillRect(x, y, w, h int) {
	r.push(KindRect, []image.Point{image.Pt(x, y)}, image.Pt(w, h), "")
}

func (r *Recorder) DrawLine(x0, y0, x1, y1 int) {
	r.push(KindLine, []image.Point{image.Pt(x0, y0), image.Pt(x1, y1)}, image.Point{}, "")
}

func (r *Recorder) DrawPolyline(points []image.Point) {
	r.push(KindPolyline, append([]image.Point(nil), points...), image.Point{}, "")
}

func (r *Recorder) FillOval(x, y, w, h int) {
	r.push(KindOval, []image.Point{image.Pt(x, y)}, image.Pt(w, h), "")
}

func (r *Recorder) DrawText(str string, x, y int) {
	r.push(KindText, []image.Point{image.Pt(x, y)}, image.Point{}, str)
}

func (r *Recorder) MeasureText(str string) (int, int) {
	return measure(str)
}

func (r *Recorder) Ops() []Op {
	return append([]Op(nil), r.ops...)
}

// Filter returns the recorded primitives of the given kind accepted by keep.
// A nil keep accepts all of them.
func (r *Recorder) Filter(kind Kind, keep func(Op) bool) []Op {
	return lo.Filter(r.ops, func(op Op, _ int) bool {
		return op.Kind == kind && (keep == nil || keep(op))
	})
}

func (r *Recorder) Count(kind Kind) int {
	return lo.CountBy(r.ops, func(op Op) bool {
		return op.Kind == kind
	})
}

func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.color = color.NRGBA{A: 0xff}
	r.stroke = 1
}

func (r *Recorder) push(kind Kind, points []image.Point, size image.Point, str string) {
	r.ops = append(r.ops, Op{
		Kind:   kind,
		Color:  r.color,
		Stroke: r.stroke,
		Points: points,
		Size:   size,
		Text:   str,
	})
}
