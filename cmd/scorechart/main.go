package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

func main() {
	app := &cli.App{
		Name:  "scorechart",
		Usage: "draw series of scores as charts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				EnvVars: []string{"SCORECHART_LOG_LEVEL"},
			},
		},
		Before: setupLog,
		Commands: []*cli.Command{
			renderCommand(),
			watchCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLog(c *cli.Context) error {
	level, err := log.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return nil
}

func chartFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "column",
			Value: 1,
			Usage: "index of the column holding the scores",
		},
		&cli.BoolFlag{
			Name:  "no-header",
			Usage: "input files have no header line",
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "chart title (default: input file name)",
		},
		&cli.StringFlag{
			Name:  "mode",
			Value: "auto",
			Usage: "summary label: average, title or auto",
		},
		&cli.StringFlag{
			Name:  "color",
			Usage: "series color as #rrggbb or an index in the palette",
		},
		&cli.StringFlag{
			Name:  "palette",
			Value: "category10",
			Usage: "palette used for default colors: category10 or tableau10",
		},
		&cli.IntFlag{
			Name:  "width",
			Value: defaultWidth,
			Usage: "image width",
		},
		&cli.IntFlag{
			Name:  "height",
			Value: defaultHeight,
			Usage: "image height",
		},
		&cli.StringFlag{
			Name:  "engine",
			Value: engineRaster,
			Usage: "drawing engine: gg, svg or gochart",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "png",
			Usage: "output format of the gochart engine: png or svg",
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "YAML style file",
			EnvVars: []string{"SCORECHART_CONFIG"},
		},
	}
}
