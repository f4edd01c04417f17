// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// parseSeries reads numbers separated by commas, semicolons or whitespace.
// Text after '#' on a line is ignored.
func parseSeries(r io.Reader) ([]float64, error) {
	var ts []float64

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || unicode.IsSpace(r)
		})
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			ts = append(ts, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return ts, nil
}
