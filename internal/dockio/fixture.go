package dockio

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarat-asymmetrica/dockvedic/internal/errs"
	"github.com/sarat-asymmetrica/dockvedic/internal/geom"
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
)

// AtomFixture is one atom of a YAML-described receptor or ligand, the
// minimal coordinate/typing fixture format `dock run`/`dock score` load
// in place of the external MOL/SD parser spec.md §1 scopes out.
type AtomFixture struct {
	Name        string  `yaml:"name"`
	Element     string  `yaml:"element"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Z           float64 `yaml:"z"`
	VdwRadius   float64 `yaml:"vdw_radius"`
	Charge      float64 `yaml:"charge"`
	IsDonor     bool    `yaml:"is_donor"`
	IsAcceptor  bool    `yaml:"is_acceptor"`
	IsLipophile bool    `yaml:"is_lipophile"`
}

// BondFixture connects two atoms by their index in the fixture's Atoms
// list. Rotatable marks a bond as a torsional degree of freedom the CLI
// should add a Dihedral chromosome element for.
type BondFixture struct {
	Atom1      int  `yaml:"atom1"`
	Atom2      int  `yaml:"atom2"`
	Rotatable  bool `yaml:"rotatable"`
}

// ModelFixture is the on-disk shape of one receptor or ligand.
type ModelFixture struct {
	Name  string        `yaml:"name"`
	Atoms []AtomFixture `yaml:"atoms"`
	Bonds []BondFixture `yaml:"bonds"`
}

// ToModel converts the fixture into a model.Model ready for the workspace.
func (f *ModelFixture) ToModel() *model.Model {
	m := &model.Model{Name: f.Name}
	m.Atoms = make([]model.Atom, len(f.Atoms))
	for i, a := range f.Atoms {
		m.Atoms[i] = model.Atom{
			Index:       i,
			Name:        a.Name,
			Element:     a.Element,
			Coord:       geom.Coord{X: a.X, Y: a.Y, Z: a.Z},
			VdwRadius:   a.VdwRadius,
			Charge:      a.Charge,
			IsDonor:     a.IsDonor,
			IsAcceptor:  a.IsAcceptor,
			IsLipophile: a.IsLipophile,
			ParentIndex: -1,
		}
	}
	m.Bonds = make([]model.Bond, len(f.Bonds))
	for i, b := range f.Bonds {
		m.Bonds[i] = model.Bond{Atom1: b.Atom1, Atom2: b.Atom2, RotatableBond: b.Rotatable}
		if b.Rotatable {
			m.Flexible = true
		}
	}
	return m
}

// RotatableBonds returns the (Atom1, Atom2) pairs marked Rotatable, in
// fixture order, for the CLI to build one Dihedral chromosome element per
// bond.
func (f *ModelFixture) RotatableBonds() [][2]int {
	var out [][2]int
	for _, b := range f.Bonds {
		if b.Rotatable {
			out = append(out, [2]int{b.Atom1, b.Atom2})
		}
	}
	return out
}

// ParseModelFixture parses a ModelFixture from r.
func ParseModelFixture(r io.Reader) (*ModelFixture, error) {
	var f ModelFixture
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, errs.FileParseError("parsing model fixture").WithCause(err)
	}
	return &f, nil
}

// LoadModelFixtureFile reads and parses a ModelFixture from path.
func LoadModelFixtureFile(path string) (*ModelFixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.FileError("opening model fixture " + path).WithCause(err)
	}
	defer f.Close()
	return ParseModelFixture(f)
}
