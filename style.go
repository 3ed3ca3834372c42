package scorechart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPadding        = 25
	DefaultLabelPadding   = 25
	DefaultPointWidth     = 4
	DefaultYDivisions     = 10
	DefaultGraphStroke    = 3.0
	DefaultDenseThreshold = 40
	DefaultMaxGridlines   = 20
)

// Style holds the geometry and colors used to draw a chart.
type Style struct {
	// Padding is the outer margin on every side of the plot area.
	Padding int
	// LabelPadding is the extra room on the left and bottom kept for labels.
	LabelPadding int
	PointWidth   int
	YDivisions   int
	GraphStroke  float64
	// Series longer than DenseThreshold are drawn as a single line.
	DenseThreshold int
	MaxGridlines   int
	Point          PointFunc

	Background color.Color
	Grid       color.Color
	Ink        color.Color
	Marker     color.Color
}

func DefaultStyle() Style {
	return Style{
		Padding:        DefaultPadding,
		LabelPadding:   DefaultLabelPadding,
		PointWidth:     DefaultPointWidth,
		YDivisions:     DefaultYDivisions,
		GraphStroke:    DefaultGraphStroke,
		DenseThreshold: DefaultDenseThreshold,
		MaxGridlines:   DefaultMaxGridlines,
		Point:          GetCircle,
		Background:     color.White,
		Grid:           color.NRGBA{R: 200, G: 200, B: 200, A: 200},
		Ink:            color.Black,
		Marker:         color.NRGBA{R: 102, G: 102, B: 102, A: 255},
	}
}

func (s Style) validate() error {
	switch {
	case s.Padding < 0 || s.LabelPadding < 0:
		return fmt.Errorf("%w: negative padding", ErrInvalidStyle)
	case s.PointWidth < 0:
		return fmt.Errorf("%w: negative point width", ErrInvalidStyle)
	case s.YDivisions <= 0:
		return fmt.Errorf("%w: y divisions must be positive (%d)", ErrInvalidStyle, s.YDivisions)
	case s.MaxGridlines <= 0:
		return fmt.Errorf("%w: max gridlines must be positive (%d)", ErrInvalidStyle, s.MaxGridlines)
	case s.DenseThreshold < 0:
		return fmt.Errorf("%w: negative dense threshold", ErrInvalidStyle)
	case s.Background == nil || s.Grid == nil || s.Ink == nil || s.Marker == nil:
		return fmt.Errorf("%w: missing color", ErrInvalidStyle)
	}
	return nil
}

// stride is the distance between two vertical gridlines for a series of n
// values.
func (s Style) stride(n int) int {
	return n/s.MaxGridlines + 1
}

func (s Style) dense(n int) bool {
	return n > s.DenseThreshold
}

type styleFile struct {
	Padding        *int     `yaml:"padding"`
	LabelPadding   *int     `yaml:"label-padding"`
	PointWidth     *int     `yaml:"point-width"`
	YDivisions     *int     `yaml:"y-divisions"`
	GraphStroke    *float64 `yaml:"graph-stroke"`
	DenseThreshold *int     `yaml:"dense-threshold"`
	MaxGridlines   *int     `yaml:"max-gridlines"`
	Point          string   `yaml:"point"`
	Colors         struct {
		Background string `yaml:"background"`
		Grid       string `yaml:"grid"`
		Ink        string `yaml:"ink"`
		Marker     string `yaml:"marker"`
	} `yaml:"colors"`
}

// LoadStyle reads a YAML style document. Options missing from the document
// keep their default value.
func LoadStyle(r io.Reader) (Style, error) {
	var (
		file  styleFile
		style = DefaultStyle()
	)
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return style, fmt.Errorf("%w: %s", ErrInvalidStyle, err)
	}
	setInt(&style.Padding, file.Padding)
	setInt(&style.LabelPadding, file.LabelPadding)
	setInt(&style.PointWidth, file.PointWidth)
	setInt(&style.YDivisions, file.YDivisions)
	setInt(&style.DenseThreshold, file.DenseThreshold)
	setInt(&style.MaxGridlines, file.MaxGridlines)
	if file.GraphStroke != nil {
		style.GraphStroke = *file.GraphStroke
	}
	if file.Point != "" {
		fn, err := GetPointFunc(file.Point)
		if err != nil {
			return style, err
		}
		style.Point = fn
	}
	colors := []struct {
		str string
		ptr *color.Color
	}{
		{str: file.Colors.Background, ptr: &style.Background},
		{str: file.Colors.Grid, ptr: &style.Grid},
		{str: file.Colors.Ink, ptr: &style.Ink},
		{str: file.Colors.Marker, ptr: &style.Marker},
	}
	for _, c := range colors {
		if c.str == "" {
			continue
		}
		col, err := ParseColor(c.str)
		if err != nil {
			return style, err
		}
		*c.ptr = col
	}
	return style, style.validate()
}

func LoadStyleFile(file string) (Style, error) {
	r, err := os.Open(file)
	if err != nil {
		return DefaultStyle(), err
	}
	defer r.Close()
	return LoadStyle(r)
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
