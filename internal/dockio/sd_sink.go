// Package dockio implements the driver-facing pose output the core scoring
// and search packages never touch directly: an SD-file-flavoured pose sink
// (one molfile-style record per scored pose, with score components written
// as SDF data-item tags) and a YAML-backed restart record sink/source used
// to round-trip a chromosome's vector across a process restart.
package dockio

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/workspace"
)

// SDSink writes each rendered pose as a minimal MDL molfile record
// (counts line, atom block, single-order bond block) followed by SDF-style `>  <TAG>`
// score fields and a `$$$$` record terminator, the same record shape the
// reference implementation's MdlFileSource reads back in.
type SDSink struct {
	w       *bufio.Writer
	records int
}

// NewSDSink wraps w for writing; the caller owns closing the underlying
// writer.
func NewSDSink(w io.Writer) *SDSink {
	return &SDSink{w: bufio.NewWriter(w)}
}

// Render writes one record for m, whose heavy/hydrogen atoms are emitted
// in index order, and every scores entry as a sorted SDF tag so output is
// deterministic across runs with the same score-map content.
func (s *SDSink) Render(m *model.Model, scores workspace.ScoreMap) error {
	fmt.Fprintf(s.w, "%s\n  dockvedic\n\n", m.Name)
	fmt.Fprintf(s.w, "%3d%3d  0  0  0  0  0  0  0  0999 V2000\n", len(m.Atoms), len(m.Bonds))
	for i := range m.Atoms {
		a := &m.Atoms[i]
		fmt.Fprintf(s.w, "%10.4f%10.4f%10.4f %-3s 0  0  0  0  0  0  0  0  0  0  0  0\n",
			a.Coord.X, a.Coord.Y, a.Coord.Z, symbolOrDefault(a.Element))
	}
	for _, b := range m.Bonds {
		fmt.Fprintf(s.w, "%3d%3d  1  0\n", b.Atom1+1, b.Atom2+1)
	}
	fmt.Fprintln(s.w, "M  END")

	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(s.w, ">  <%s>\n%g\n\n", k, scores[k])
	}
	fmt.Fprintln(s.w, "$$$$")

	s.records++
	return s.w.Flush()
}

// RecordsWritten returns the number of poses rendered so far.
func (s *SDSink) RecordsWritten() int { return s.records }

func symbolOrDefault(el string) string {
	if el == "" {
		return "C"
	}
	return el
}
