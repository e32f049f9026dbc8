package chrom

import (
	"math"

	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/randsrc"
)

// ReceptorDihedral is the chromosome element for a receptor OH/NH3 tip: a
// Dihedral constrained to a hindered-rotor period, 2*pi/fold instead of
// the full 2*pi a ligand torsion gets, since a hydroxyl (fold
// 1, behaves like a plain Dihedral) or an ammonium (fold 3, every third
// of a full turn is equivalent by symmetry) only has that many physically
// distinct positions.
type ReceptorDihedral struct {
	*Dihedral
	fold int
}

// NewReceptorDihedral constructs a ReceptorDihedral over the same
// bond/affected-atom geometry as NewDihedral, with fold-fold rotational
// symmetry (1 for a hydroxyl tip, 3 for an ammonium tip).
func NewReceptorDihedral(m *model.Model, src *randsrc.Source, bondAtom1, bondAtom2 int, affectedAtoms []int, maxStep float64, fold int) *ReceptorDihedral {
	if fold < 1 {
		fold = 1
	}
	return &ReceptorDihedral{
		Dihedral: NewDihedral(m, src, bondAtom1, bondAtom2, affectedAtoms, maxStep),
		fold:     fold,
	}
}

// period returns the angular period this tip's symmetry repeats over.
func (r *ReceptorDihedral) period() float64 { return 2 * math.Pi / float64(r.fold) }

func (r *ReceptorDihedral) Randomise(stepSize float64) {
	p := r.period()
	target := r.rand.Uniform(-p/2, p/2) * stepSize
	r.rotate(target - r.angle)
	r.angle = target
}

func (r *ReceptorDihedral) Mutate(relStepSize float64) {
	r.Dihedral.Mutate(relStepSize)
	r.angle = wrapToPeriod(r.angle, r.period())
}

// wrapToPeriod folds angle into (-period/2, period/2], the canonical
// representative of its symmetry-equivalent positions.
func wrapToPeriod(angle, period float64) float64 {
	if period <= 0 {
		return angle
	}
	a := math.Mod(angle+period/2, period)
	if a < 0 {
		a += period
	}
	return a - period/2
}

func (r *ReceptorDihedral) Clone() Element {
	clone := *r
	d := *r.Dihedral
	d.affectedAtoms = append([]int(nil), r.Dihedral.affectedAtoms...)
	clone.Dihedral = &d
	return &clone
}
