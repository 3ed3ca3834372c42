package scorechart

import (
	"image"
	"image/color"
)

// Trace is a series once mapped onto the surface.
type Trace struct {
	Points []image.Point
	// Base is the pixel row of the X axis.
	Base  int
	Color color.Color
}

type Renderer interface {
	Render(Surface, Trace)
}

// LinearRenderer joins every point of the trace with a single line.
type LinearRenderer struct {
	Width float64
}

func (r LinearRenderer) Render(s Surface, t Trace) {
	if len(t.Points) < 2 {
		return
	}
	s.SetStrokeWidth(r.Width)
	s.SetColor(t.Color)
	s.DrawPolyline(t.Points)
	s.SetStrokeWidth(1)
}

// DropRenderer draws a line from each point down to the X axis and then a
// marker on the point itself.
type DropRenderer struct {
	Width  float64
	Size   int
	Marker color.Color
	Point  PointFunc
}

func (r DropRenderer) Render(s Surface, t Trace) {
	s.SetStrokeWidth(r.Width)
	s.SetColor(t.Color)
	for _, pt := range t.Points {
		s.DrawLine(pt.X, pt.Y, pt.X, t.Base)
	}
	s.SetStrokeWidth(1)
	if r.Point == nil {
		return
	}
	s.SetColor(r.Marker)
	for _, pt := range t.Points {
		r.Point(s, pt, r.Size)
	}
}

// renderer picks how a series of n values is drawn.
func (s Style) renderer(n int) Renderer {
	if s.dense(n) {
		return LinearRenderer{
			Width: s.GraphStroke,
		}
	}
	return DropRenderer{
		Width:  s.GraphStroke,
		Size:   s.PointWidth,
		Marker: s.Marker,
		Point:  s.Point,
	}
}
