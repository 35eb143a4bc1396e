// Command synthcheck verifies that a dataset directory is internally
// consistent: every labels.json entry has a matching WAV file and every
// WAV file is labeled. It exits nonzero listing each problem found.
//
//	synthcheck -dir data/synth_chord_data
package main

import (
	"flag"
	"log"

	"github.com/katalvlaran/synthset/dataset"
)

func main() {
	dir := flag.String("dir", ".", "dataset directory to check")
	flag.Parse()

	labels, err := dataset.LoadLabels(*dir)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := dataset.Validate(*dir); err != nil {
		log.Fatalf("dataset %s:\n%v", *dir, err)
	}

	log.Printf("dataset %s: %d datapoints ok", *dir, len(labels))
}
