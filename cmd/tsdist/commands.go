// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/tsdist/synth"
)

func compareAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("compare needs exactly two series files", 2)
	}
	if c.Args().Get(0) == "-" && c.Args().Get(1) == "-" {
		return cli.Exit("stdin ('-') can only supply one of the two series", 2)
	}
	s, err := loadSettings(c)
	if err != nil {
		return err
	}

	a, err := readSeriesFile(c.Args().Get(0), c.App.Reader)
	if err != nil {
		return err
	}
	b, err := readSeriesFile(c.Args().Get(1), c.App.Reader)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"len1": len(a), "len2": len(b)}).Debug("series loaded")

	return report(c.App.Writer, s, a, b)
}

func demoFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "length", Aliases: []string{"n"}, Value: 128, Usage: "samples per series"},
		&cli.Int64Flag{Name: "seed", Value: 1, Usage: "noise seed"},
		&cli.Float64Flag{Name: "noise", Value: 0.05, Usage: "Gaussian noise sigma"},
		&cli.Float64Flag{Name: "shift", Value: 0.01, Usage: "start frequency offset of the second chirp"},
	}
}

func demoAction(c *cli.Context) error {
	s, err := loadSettings(c)
	if err != nil {
		return err
	}

	n := c.Int("length")
	if n < 1 {
		return cli.Exit("--length must be positive", 2)
	}
	if c.Float64("noise") < 0 || c.Float64("shift") < 0 {
		return cli.Exit("--noise and --shift must be non-negative", 2)
	}

	seed := c.Int64("seed")
	a := synth.Chirp(n, synth.WithNoise(c.Float64("noise")), synth.WithSeed(seed))
	b := synth.Chirp(n,
		synth.WithFrequency(0.02+c.Float64("shift")),
		synth.WithNoise(c.Float64("noise")),
		synth.WithSeed(seed+1),
	)
	log.WithFields(log.Fields{"n": n, "seed": seed}).Debug("synthetic chirps generated")

	return report(c.App.Writer, s, a, b)
}

func readSeriesFile(path string, stdin io.Reader) ([]float64, error) {
	if path == "-" {
		return parseSeries(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ts, err := parseSeries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ts, nil
}
