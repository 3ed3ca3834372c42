package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/midbel/scorechart"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func watchCommand() *cli.Command {
	flags := append(chartFlags(),
		&cli.StringFlag{
			Name:     "file",
			Usage:    "image kept up to date with the input",
			Required: true,
		},
		&cli.DurationFlag{
			Name:  "interval",
			Value: 2 * time.Second,
			Usage: "delay between two reads of the input",
		},
	)
	return &cli.Command{
		Name:      "watch",
		Usage:     "redraw a chart whenever its input changes",
		ArgsUsage: "FILE",
		Flags:     flags,
		Action:    runWatch,
	}
}

// fileHost keeps an image file in sync with a chart.
type fileHost struct {
	opts  options
	file  string
	chart *scorechart.Chart
	label string
}

func (h *fileHost) SetLabel(str string) {
	h.label = str
	log.WithField("file", h.file).Info(str)
}

func (h *fileHost) Repaint() {
	if err := h.paint(); err != nil {
		log.WithField("file", h.file).Errorf("repaint failed: %s", err)
	}
}

func (h *fileHost) paint() error {
	if h.chart == nil {
		return nil
	}
	return writeImage(h.opts, h.chart, h.file)
}

func runWatch(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("watch expects exactly one input file")
	}
	every := c.Duration("interval")
	if every <= 0 {
		return fmt.Errorf("%w: interval must be positive (%s)", scorechart.ErrInvalidInput, every)
	}
	opts, err := loadOptions(c)
	if err != nil {
		return err
	}
	var (
		input = c.Args().First()
		host  = fileHost{
			opts: opts,
			file: c.String("file"),
		}
	)
	series, err := readSeriesFile(input, opts.Column, !opts.NoHeader)
	if err != nil {
		return err
	}
	ch, err := opts.chart(series, getIdent(input), 0)
	if err != nil {
		return err
	}
	host.chart = ch
	ch.Attach(&host)
	host.Repaint()

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return watch(ctx, every, ch, func() ([]float64, error) {
		return readSeriesFile(input, opts.Column, !opts.NoHeader)
	})
}

// watch polls read until ctx is done and hands every new series to the
// chart. Read failures are logged and the previous series is kept.
func watch(ctx context.Context, every time.Duration, ch *scorechart.Chart, read func() ([]float64, error)) error {
	if every <= 0 {
		return fmt.Errorf("%w: interval must be positive (%s)", scorechart.ErrInvalidInput, every)
	}
	tick := time.NewTicker(every)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
		}
		series, err := read()
		if err != nil {
			log.Warnf("read failed: %s", err)
			continue
		}
		if slices.Equal(series, ch.Series()) {
			continue
		}
		if err := ch.SetSeries(series); err != nil {
			log.Warnf("update failed: %s", err)
		}
	}
}
