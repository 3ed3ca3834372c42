package scorechart

// labelGap is the horizontal room left between a label and the Y axis.
const labelGap = 5

// Frame is the plot area in pixels.
type Frame struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

func (f Frame) Width() int {
	return f.Right - f.Left
}

func (f Frame) Height() int {
	return f.Bottom - f.Top
}

// frameFor returns the plot area of a surface. The area never has a negative
// size, even when the surface is smaller than the margins.
func (s Style) frameFor(width, height int) Frame {
	var (
		left = s.Padding + s.LabelPadding
		top  = s.Padding
		w    = max(0, width-2*s.Padding-s.LabelPadding)
		h    = max(0, height-2*s.Padding-s.LabelPadding)
	)
	return Frame{
		Left:   left,
		Top:    top,
		Right:  left + w,
		Bottom: top + h,
	}
}

// NumberAxis is the vertical value axis: one tick per division, and, unless
// the chart has no data, a gridline and a label next to each tick.
type NumberAxis struct {
	Ticks  int
	Domain Domain
	Format func(float64) string

	WithOuterTicks bool
	WithLabelTicks bool
}

func (a NumberAxis) Render(s Surface, st Style, f Frame) {
	format := a.Format
	if format == nil {
		format = func(v float64) string {
			return FormatValue(Truncate(v))
		}
	}
	if a.Ticks <= 0 {
		return
	}
	values := a.Domain.Values(a.Ticks)
	for i := 0; i <= a.Ticks; i++ {
		var (
			x0 = f.Left
			x1 = f.Left + st.PointWidth
			y  = f.Bottom - (i*f.Height())/a.Ticks
		)
		if a.WithOuterTicks {
			s.SetColor(st.Grid)
			s.DrawLine(f.Left+1+st.PointWidth, y, f.Right, y)
		}
		s.SetColor(st.Ink)
		if a.WithLabelTicks {
			str := format(values[i])
			w, h := s.MeasureText(str)
			s.DrawText(str, x0-w-labelGap, y+h/2-3)
		}
		s.DrawLine(x0, y, x1, y)
	}
}

// IndexAxis is the horizontal axis of a series of Count values. Gridlines are
// thinned so that only every Stride-th index gets one.
type IndexAxis struct {
	Count  int
	Stride int
}

// Positions returns the pixel column of every gridline.
func (a IndexAxis) Positions(f Frame) []int {
	if a.Count <= 1 || a.Stride <= 0 {
		return nil
	}
	var list []int
	for i := 0; i < a.Count; i += a.Stride {
		list = append(list, i*f.Width()/(a.Count-1)+f.Left)
	}
	return list
}

func (a IndexAxis) Render(s Surface, st Style, f Frame) {
	s.SetColor(st.Grid)
	for _, x := range a.Positions(f) {
		s.DrawLine(x, f.Bottom, x, f.Top)
	}
}

func drawAxisLines(s Surface, st Style, f Frame) {
	s.SetColor(st.Ink)
	s.DrawLine(f.Left, f.Bottom, f.Left, f.Top)
	s.DrawLine(f.Left, f.Bottom, f.Right, f.Bottom)
}
