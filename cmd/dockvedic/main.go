// Command dockvedic drives a docking search described by a receptor
// fixture, a ligand fixture, and a sectioned parameter file: it builds
// the scoring function and transform pipeline the parameter file
// describes, runs the pipeline against the ligand's chromosome, and
// writes the resulting pose and restart record.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
