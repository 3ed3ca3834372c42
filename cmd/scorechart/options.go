package main

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/midbel/scorechart"
	"github.com/midbel/scorechart/surface"
	"github.com/urfave/cli/v2"
	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	engineRaster  = "gg"
	engineVector  = "svg"
	engineGoChart = "gochart"
)

type canvas interface {
	scorechart.Surface
	Save(io.Writer) error
}

type options struct {
	Column   int
	NoHeader bool
	Title    string
	Mode     string
	Color    string
	Palette  scorechart.Palette
	Width    int
	Height   int
	Engine   string
	Format   string
	Style    scorechart.Style
}

func loadOptions(c *cli.Context) (options, error) {
	opts := options{
		Column:   c.Int("column"),
		NoHeader: c.Bool("no-header"),
		Title:    c.String("title"),
		Mode:     c.String("mode"),
		Color:    c.String("color"),
		Width:    c.Int("width"),
		Height:   c.Int("height"),
		Engine:   c.String("engine"),
		Format:   c.String("format"),
		Style:    scorechart.DefaultStyle(),
	}
	palette, err := scorechart.GetPalette(c.String("palette"))
	if err != nil {
		return opts, err
	}
	opts.Palette = palette
	if file := c.String("config"); file != "" {
		style, err := scorechart.LoadStyleFile(file)
		if err != nil {
			return opts, fmt.Errorf("%s: %w", file, err)
		}
		opts.Style = style
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return opts, fmt.Errorf("%w: %dx%d", scorechart.ErrInvalidSurface, opts.Width, opts.Height)
	}
	return opts, nil
}

func (o options) mode(title string) (scorechart.Mode, error) {
	if o.Mode == "" || o.Mode == "auto" {
		return scorechart.ModeFor(title), nil
	}
	return scorechart.ParseMode(o.Mode)
}

// color returns the series color. Without an explicit color, the n-th input
// takes the n-th color of the palette.
func (o options) color(n int) (color.Color, error) {
	palette := o.Palette
	if len(palette) == 0 {
		palette = scorechart.Category10
	}
	if o.Color == "" {
		return palette.Color(n), nil
	}
	if i, err := strconv.Atoi(o.Color); err == nil {
		return palette.Color(i), nil
	}
	return scorechart.ParseColor(o.Color)
}

func (o options) chart(series []float64, title string, n int) (*scorechart.Chart, error) {
	if o.Title != "" {
		title = o.Title
	}
	mode, err := o.mode(title)
	if err != nil {
		return nil, err
	}
	col, err := o.color(n)
	if err != nil {
		return nil, err
	}
	ch, err := scorechart.NewChart(series, col, title, mode)
	if err != nil {
		return nil, err
	}
	ch.Style = o.Style
	return ch, nil
}

func (o options) canvas() (canvas, error) {
	switch o.Engine {
	case "", engineRaster:
		return surface.NewRaster(o.Width, o.Height, color.White), nil
	case engineVector:
		return surface.NewVector(o.Width, o.Height), nil
	case engineGoChart:
		provider := chart.PNG
		if o.Format == "svg" {
			provider = chart.SVG
		}
		return surface.NewRenderer(provider, o.Width, o.Height)
	default:
		return nil, fmt.Errorf("%s: unknown engine", o.Engine)
	}
}

func (o options) extension() string {
	if o.Engine == engineVector || (o.Engine == engineGoChart && o.Format == "svg") {
		return ".svg"
	}
	return ".png"
}

func (o options) draw(ch *scorechart.Chart, w io.Writer) error {
	cv, err := o.canvas()
	if err != nil {
		return err
	}
	if err := ch.Draw(cv, o.Width, o.Height); err != nil {
		return err
	}
	return cv.Save(w)
}
