package scorechart

import (
	"fmt"
	"image"
	"image/color"

	log "github.com/sirupsen/logrus"
)

type Mode int

const (
	// ModeAverage labels the chart with the average of its series.
	ModeAverage Mode = iota
	// ModeTitle labels the chart with its title only.
	ModeTitle
)

// DistanceTitle is the title of the only series that is never averaged.
const DistanceTitle = "Distance"

// ModeFor returns the labelling mode historically implied by a title.
func ModeFor(title string) Mode {
	if title == DistanceTitle {
		return ModeTitle
	}
	return ModeAverage
}

func ParseMode(str string) (Mode, error) {
	switch str {
	case "average", "avg":
		return ModeAverage, nil
	case "title":
		return ModeTitle, nil
	default:
		return 0, fmt.Errorf("%w: %s: unknown mode", ErrInvalidInput, str)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeAverage:
		return "average"
	case ModeTitle:
		return "title"
	default:
		return "unknown"
	}
}

// Chart draws a single series of scores.
type Chart struct {
	Style

	title  string
	mode   Mode
	color  color.Color
	series []float64
	stats  Stats
	label  string
	host   Host
}

// New creates a chart whose mode is derived from its title.
func New(series []float64, col color.Color, title string) (*Chart, error) {
	return NewChart(series, col, title, ModeFor(title))
}

func NewChart(series []float64, col color.Color, title string, mode Mode) (*Chart, error) {
	c := Chart{
		Style: DefaultStyle(),
		title: title,
		mode:  mode,
		color: col,
	}
	if c.color == nil {
		c.color = Category10.Color(0)
	}
	if err := c.update(series); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Chart) Title() string {
	return c.title
}

func (c *Chart) Mode() Mode {
	return c.mode
}

func (c *Chart) Color() color.Color {
	return c.color
}

func (c *Chart) Stats() Stats {
	return c.stats
}

// Label is the summary text shown alongside the chart.
func (c *Chart) Label() string {
	return c.label
}

// Series returns a copy of the values being charted.
func (c *Chart) Series() []float64 {
	return append([]float64(nil), c.series...)
}

// SetSeries replaces the values being charted. The attached host, if any,
// receives the new label and is asked to repaint. On error the chart keeps
// its previous series.
func (c *Chart) SetSeries(series []float64) error {
	if err := c.update(series); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"title": c.title,
		"count": c.stats.Count,
	}).Debug("series replaced")
	if c.host != nil {
		c.host.SetLabel(c.label)
		c.host.Repaint()
	}
	return nil
}

// Attach sets the host displaying the chart and hands it the current label.
func (c *Chart) Attach(h Host) {
	c.host = h
	if h != nil {
		h.SetLabel(c.label)
	}
}

func (c *Chart) update(series []float64) error {
	st, err := computeStats(series)
	if err != nil {
		return err
	}
	if st.Min == st.Max {
		log.WithField("title", c.title).Debugf("flat series at %v, using a span of %v", st.Min, minSpan)
	}
	c.series = append([]float64(nil), series...)
	c.stats = st
	c.label = c.makeLabel()
	return nil
}

func (c *Chart) makeLabel() string {
	if c.mode == ModeTitle {
		return c.title
	}
	return fmt.Sprintf("Average %s: %s", c.title, FormatValue(c.stats.Average))
}

// Draw paints the chart on a surface of the given size. Draw does not modify
// the chart: the same chart and size always give the same drawing.
func (c *Chart) Draw(s Surface, width, height int) error {
	if width <= 0 || height <= 0 {
		return SurfaceError{Width: width, Height: height}
	}
	if err := c.Style.validate(); err != nil {
		return err
	}
	var (
		count = len(c.series)
		frame = c.frameFor(width, height)
		yaxis = NumberAxis{
			Ticks:          c.YDivisions,
			Domain:         c.stats.Domain().Widen(),
			WithOuterTicks: count > 0,
			WithLabelTicks: count > 0,
		}
		xaxis = IndexAxis{
			Count:  count,
			Stride: c.stride(count),
		}
	)
	s.SetStrokeWidth(1)
	s.SetColor(c.Background)
	s.FillRect(frame.Left, frame.Top, frame.Width(), frame.Height())

	yaxis.Render(s, c.Style, frame)
	xaxis.Render(s, c.Style, frame)
	drawAxisLines(s, c.Style, frame)

	c.renderer(count).Render(s, c.trace(frame))
	return nil
}

// Points returns the pixel position of every value on a surface of the given
// size.
func (c *Chart) Points(width, height int) []image.Point {
	return c.trace(c.frameFor(width, height)).Points
}

func (c *Chart) scalers(f Frame) (Scaler, Scaler) {
	var (
		xdom = NumberDomain(0, float64(len(c.series)-1))
		ydom = c.stats.Domain().Widen().Reverse()
		x    = NumberScaler(xdom, NewRange(0, float64(f.Width())))
		y    = NumberScaler(ydom, NewRange(0, float64(f.Height())))
	)
	return x, y
}

func (c *Chart) trace(f Frame) Trace {
	var (
		x, y   = c.scalers(f)
		points = make([]image.Point, len(c.series))
	)
	for i, v := range c.series {
		points[i] = image.Pt(
			int(x.Scale(float64(i))+float64(f.Left)),
			int(y.Scale(v)+float64(f.Top)),
		)
	}
	return Trace{
		Points: points,
		Base:   f.Bottom,
		Color:  c.color,
	}
}
