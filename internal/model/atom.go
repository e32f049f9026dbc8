// Package model implements the atom/bond/molecule data the scoring and
// search layers operate on. Atoms live in a per-model arena addressed by
// integer index rather than individually heap-allocated and
// pointer-chased, so a rigid-body coordinate update during search is a
// tight loop over a slice instead of a pointer walk.
package model

import "github.com/sarat-asymmetrica/dockvedic/internal/geom"

// LonePairGeometry classifies how a polar acceptor's directional envelope
// should be evaluated: PLANE acceptors (most carbonyl/aromatic oxygens)
// use the angle to the acceptor's parent plane; LONEPAIR acceptors
// (anionic oxygens, ring nitrogens) use an explicit lone-pair direction.
type LonePairGeometry int

const (
	LonePairNone LonePairGeometry = iota
	LonePairPlane
	LonePairExplicit
)

// Atom is one atom of the receptor, ligand, or solvent model. Index is the
// atom's position in its owning Model's Atoms slice and is stable for the
// lifetime of the model, which is what lets a Chromosome element or an
// InteractionCenter reference an atom by (model, index) rather than by
// pointer.
type Atom struct {
	Index       int
	Name        string
	Element     string
	Coord       geom.Coord
	VdwRadius   float64
	Charge      float64
	IsDonor     bool
	IsAcceptor  bool
	IsLipophile bool
	// AcceptorGeometry only applies when IsAcceptor is true.
	AcceptorGeometry LonePairGeometry
	// Selected marks an atom as part of the currently flexible/movable
	// subset. Whoever builds the model sets it (the CLI wiring marks every
	// ligand atom); Chromosome.SyncToModel leaves it unchanged.
	Selected bool
	// ParentIndex is the bonded heavy-atom index for a polar hydrogen or
	// the lone-pair carrier for an acceptor; -1 if not applicable.
	ParentIndex int
	// PseudoParents holds the constituent atom indices when this atom is a
	// pseudo-atom (a centroid of several real atoms), used by guanidinium
	// and carboxylate interaction centers.
	PseudoParents []int
	// TriposType is the SYBYL/Tripos atom type string (e.g. "C.3", "N.ar",
	// "O.co2") the VdW term looks up per-atom vdW parameters by, supplied
	// by the atom-typing collaborator out of core scope.
	TriposType string
	// User1 is a cached per-atom weighting factor (local contact density
	// times partial charge) the polar term multiplies into every pair
	// contribution involving this atom; computed once by an auxiliary
	// setup pass and otherwise left at its zero value (no weighting).
	User1 float64
}

// IsPseudo reports whether this atom is a synthetic centroid atom rather
// than a physically bonded atom.
func (a *Atom) IsPseudo() bool { return len(a.PseudoParents) > 0 }

// Bond connects two atoms of the same model by index.
type Bond struct {
	Atom1, Atom2 int
	RotatableBond bool
}

// Model is a rigid or partially flexible molecule: a receptor, a ligand, or
// a solvent fragment. All coordinate mutation during search happens by
// writing directly into Atoms[i].Coord; nothing in this package holds a
// separate coordinate cache that could drift out of sync.
type Model struct {
	Name  string
	Atoms []Atom
	Bonds []Bond
	// Flexible marks whether any atom in this model participates in a
	// torsional degree of freedom (as opposed to being purely rigid).
	Flexible bool
	// Inactive excludes a solvent model from solvent-solvent and
	// receptor-solvent scoring without removing it from the workspace
	// model list; zero value (false/active) is the default since models
	// are built directly by the file-parsing collaborator rather than
	// through a constructor.
	Inactive bool
}

// AddPseudoAtom appends a centroid atom over the given real atom indices
// and returns its index, mirroring the rxdock guanidinium/carboxylate
// pseudo-atom construction used by the polar scoring term.
func (m *Model) AddPseudoAtom(parents []int, name string) int {
	c := geom.Coord{}
	for _, p := range parents {
		c.X += m.Atoms[p].Coord.X
		c.Y += m.Atoms[p].Coord.Y
		c.Z += m.Atoms[p].Coord.Z
	}
	n := float64(len(parents))
	if n > 0 {
		c.X /= n
		c.Y /= n
		c.Z /= n
	}
	idx := len(m.Atoms)
	m.Atoms = append(m.Atoms, Atom{
		Index:         idx,
		Name:          name,
		Coord:         c,
		PseudoParents: append([]int(nil), parents...),
		ParentIndex:   -1,
	})
	return idx
}

// SelectedIndices returns the indices of every atom currently flagged
// Selected, in ascending order.
func (m *Model) SelectedIndices() []int {
	var out []int
	for i := range m.Atoms {
		if m.Atoms[i].Selected {
			out = append(out, i)
		}
	}
	return out
}

// Centroid returns the unweighted centroid of all atoms, used as the
// rigid-body reference point for the ligand chromosome element.
func (m *Model) Centroid() geom.Coord {
	var c geom.Coord
	if len(m.Atoms) == 0 {
		return c
	}
	for i := range m.Atoms {
		c.X += m.Atoms[i].Coord.X
		c.Y += m.Atoms[i].Coord.Y
		c.Z += m.Atoms[i].Coord.Z
	}
	n := float64(len(m.Atoms))
	return geom.Coord{X: c.X / n, Y: c.Y / n, Z: c.Z / n}
}
