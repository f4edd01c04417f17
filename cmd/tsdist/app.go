// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/tsdist/dtw"
	"github.com/katalvlaran/tsdist/metric"
)

const envPrefix = "TSDIST_"

func newApp() *cli.App {
	return &cli.App{
		Name:  "tsdist",
		Usage: "Distances between numeric time series",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "logrus level (debug, info, warn, error)",
				EnvVars: []string{envPrefix + "LOG_LEVEL"},
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			{
				Name:      "compare",
				Usage:     "Compare two series files (one value per line or comma separated, '-' for stdin)",
				ArgsUsage: "<file1> <file2>",
				Flags:     metricFlags(),
				Action:    compareAction,
			},
			{
				Name:   "demo",
				Usage:  "Compare two synthetic chirps",
				Flags:  append(metricFlags(), demoFlags()...),
				Action: demoAction,
			},
		},
	}
}

func setupLogging(c *cli.Context) error {
	level, err := log.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(c.App.ErrWriter)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	return nil
}

func metricFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "metric",
			Aliases: []string{"m"},
			Usage:   "metrics to report (ed, norm-ed, dtw); default all",
			EnvVars: []string{envPrefix + "METRICS"},
		},
		&cli.Float64Flag{
			Name:    "window",
			Aliases: []string{"r"},
			Usage:   "DTW warping window as a fraction of the length (w = floor(n·r))",
			EnvVars: []string{envPrefix + "WINDOW"},
		},
		&cli.IntFlag{
			Name:    "band",
			Aliases: []string{"w"},
			Usage:   "DTW warping window as an absolute half-width",
			EnvVars: []string{envPrefix + "BAND"},
		},
		&cli.BoolFlag{
			Name:    "low-memory",
			Usage:   "run DTW over two rolling rows instead of the full grid",
			EnvVars: []string{envPrefix + "LOW_MEMORY"},
		},
	}
}

// settings is the resolved configuration of one invocation.
type settings struct {
	kinds   []metric.Kind
	dtwOpts []dtw.Option
}

func loadSettings(c *cli.Context) (settings, error) {
	var s settings

	names := c.StringSlice("metric")
	if len(names) == 0 {
		s.kinds = metric.Kinds()
	}
	seen := make(map[metric.Kind]bool, len(names))
	for _, name := range names {
		k, err := metric.ParseKind(name)
		if err != nil {
			return s, err
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		s.kinds = append(s.kinds, k)
	}

	if c.IsSet("window") && c.IsSet("band") {
		return s, fmt.Errorf("--window and --band are mutually exclusive")
	}
	if c.IsSet("window") {
		s.dtwOpts = append(s.dtwOpts, dtw.WithWindow(c.Float64("window")))
		log.WithField("r", c.Float64("window")).Debug("DTW window")
	}
	if c.IsSet("band") {
		s.dtwOpts = append(s.dtwOpts, dtw.WithBand(c.Int("band")))
		log.WithField("w", c.Int("band")).Debug("DTW band")
	}
	if c.Bool("low-memory") {
		s.dtwOpts = append(s.dtwOpts, dtw.WithMemoryMode(dtw.TwoRows))
	}

	return s, nil
}
