package model

import "github.com/sarat-asymmetrica/dockvedic/internal/geom"

// InteractionCenter is the unit the VdW and polar indexed terms index onto
// the grid: either a single atom or a small group (a pseudo-atom plus its
// two flanking substituents, for directional donor/acceptor geometry).
// Atom2/Atom3 are -1 when unused.
type InteractionCenter struct {
	Model      *Model
	Atom1      int
	Atom2      int
	Atom3      int
	Geometry   LonePairGeometry
	IsDonor    bool
	IsAcceptor bool
}

// Coord returns the representative coordinate of the center: Atom1's
// position, since Atom2/Atom3 only refine directionality, never position.
func (ic InteractionCenter) Coord() geom.Coord {
	return ic.Model.Atoms[ic.Atom1].Coord
}

// AtomList deconvolutes a pseudo-atom center into its constituent real
// atom indices, or returns the single real atom index otherwise.
func (ic InteractionCenter) AtomList() []int {
	a := &ic.Model.Atoms[ic.Atom1]
	if a.IsPseudo() {
		return a.PseudoParents
	}
	return []int{ic.Atom1}
}

// IsSelected reports whether any constituent atom of this center is
// currently part of the flexible/movable subset.
func (ic InteractionCenter) IsSelected() bool {
	for _, idx := range ic.AtomList() {
		if ic.Model.Atoms[idx].Selected {
			return true
		}
	}
	return false
}
