package dockio

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarat-asymmetrica/dockvedic/internal/chrom"
	"github.com/sarat-asymmetrica/dockvedic/internal/errs"
)

// RestartRecord is the exact chromosome state needed to resume a run
// without precision loss through a molfile's fixed-width coordinate
// fields, the companion to an SDSink-written pose for a restart
// round-trip (Scenario F): the pose file carries the human/tool-readable
// structure, this file carries the bit-reproducible search state.
type RestartRecord struct {
	RunID  string    `yaml:"run_id"`
	Vector []float64 `yaml:"vector"`
	Score  float64   `yaml:"score"`
}

// WriteRestartRecord serialises rec to w as YAML.
func WriteRestartRecord(w io.Writer, rec RestartRecord) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(rec); err != nil {
		return errs.FileError("writing restart record").WithCause(err)
	}
	return nil
}

// WriteRestartFile writes rec to path, creating or truncating it.
func WriteRestartFile(path string, rec RestartRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.FileError("opening restart file " + path).WithCause(err)
	}
	defer f.Close()
	return WriteRestartRecord(f, rec)
}

// ReadRestartRecord parses a YAML restart record from r.
func ReadRestartRecord(r io.Reader) (RestartRecord, error) {
	var rec RestartRecord
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&rec); err != nil {
		return RestartRecord{}, errs.FileParseError("parsing restart record").WithCause(err)
	}
	return rec, nil
}

// ReadRestartFile reads and parses a restart record from path.
func ReadRestartFile(path string) (RestartRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return RestartRecord{}, errs.FileError("opening restart file " + path).WithCause(err)
	}
	defer f.Close()
	return ReadRestartRecord(f)
}

// RestoreChromosome writes rec's vector back into c and syncs it onto the
// model, the step that turns a parsed restart record back into live
// search state ahead of a re-score.
func RestoreChromosome(c *chrom.Chromosome, rec RestartRecord) error {
	if err := c.SetVector(rec.Vector); err != nil {
		return err
	}
	c.SyncToModel()
	return nil
}
