// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/tsdist/metric"
)

// report computes every requested metric and renders one table row each.
// A metric that fails is shown with its error; report only returns an
// error when every metric failed.
func report(w io.Writer, s settings, a, b []float64) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"metric", "distance", "note"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	var firstErr error
	failed := 0
	for _, k := range s.kinds {
		m, err := metric.New(k, s.dtwOpts...)
		if err != nil {
			return err
		}

		d, err := m.Distance(a, b)
		switch {
		case err != nil:
			log.WithError(err).WithField("metric", m.Name()).Warn("metric failed")
			table.Append([]string{m.Name(), "-", err.Error()})
			failed++
			if firstErr == nil {
				firstErr = err
			}
		case math.IsInf(d, 1):
			table.Append([]string{m.Name(), "+Inf", "no admissible alignment"})
		default:
			table.Append([]string{m.Name(), fmt.Sprintf("%.6g", d), ""})
		}
	}

	table.Render()
	if failed == len(s.kinds) {
		return firstErr
	}

	return nil
}
