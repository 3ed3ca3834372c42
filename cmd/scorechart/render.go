package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/midbel/scorechart"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func renderCommand() *cli.Command {
	flags := append(chartFlags(), &cli.StringFlag{
		Name:  "output",
		Value: ".",
		Usage: "directory where images are written",
	})
	return &cli.Command{
		Name:      "render",
		Usage:     "draw one chart per input file",
		ArgsUsage: "FILE...",
		Flags:     flags,
		Action:    runRender,
	}
}

func runRender(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no input files given")
	}
	opts, err := loadOptions(c)
	if err != nil {
		return err
	}
	dir := c.String("output")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var (
		files = c.Args().Slice()
		grp   errgroup.Group
	)
	list, err := targets(files, dir, opts.extension())
	if err != nil {
		return err
	}
	grp.SetLimit(runtime.NumCPU())
	for i, file := range files {
		grp.Go(func() error {
			return renderFile(opts, file, list[i], i)
		})
	}
	return grp.Wait()
}

// targets returns the output file of every input. Two inputs sharing a name
// would write the same image, so they are rejected.
func targets(files []string, dir, ext string) ([]string, error) {
	var (
		list = make([]string, 0, len(files))
		seen = make(map[string]string)
	)
	for _, file := range files {
		target := filepath.Join(dir, getIdent(file)+ext)
		if other, ok := seen[target]; ok {
			return nil, fmt.Errorf("%w: %s and %s both write %s", scorechart.ErrInvalidInput, other, file, target)
		}
		seen[target] = file
		list = append(list, target)
	}
	return list, nil
}

func renderFile(opts options, file, target string, n int) error {
	series, err := readSeriesFile(file, opts.Column, !opts.NoHeader)
	if err != nil {
		return err
	}
	ch, err := opts.chart(series, getIdent(file), n)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if err := writeImage(opts, ch, target); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	log.WithFields(log.Fields{
		"file":   target,
		"points": len(series),
	}).Info(ch.Label())
	return nil
}

// writeImage draws ch into target. Nothing is left behind when drawing or
// writing fails.
func writeImage(opts options, ch *scorechart.Chart, target string) error {
	w, err := os.Create(target)
	if err != nil {
		return err
	}
	if err := opts.draw(ch, w); err != nil {
		w.Close()
		os.Remove(target)
		return err
	}
	if err := w.Close(); err != nil {
		os.Remove(target)
		return err
	}
	return nil
}
