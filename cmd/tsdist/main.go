// SPDX-License-Identifier: MIT

// Command tsdist reports ED, normalized ED and DTW distances between two
// time series read from files, or between two synthetic series.
//
//	tsdist compare --window 0.1 a.txt b.txt
//	tsdist demo --length 256 --noise 0.05
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
