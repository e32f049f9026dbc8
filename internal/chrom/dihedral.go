package chrom

import (
	"math"

	"github.com/sarat-asymmetrica/dockvedic/internal/geom"
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/randsrc"
)

// Dihedral is the chromosome element for a single rotatable bond: a torsion
// angle applied to every atom on the moving side of the bond, computed
// once at construction (AffectedAtoms) since the bond topology does not
// change during search.
type Dihedral struct {
	model          *model.Model
	rand           *randsrc.Source
	bondAtom1      int
	bondAtom2      int
	affectedAtoms  []int // rotate these about the bondAtom1->bondAtom2 axis
	refAngle       float64
	angle          float64 // delta applied since SyncFromModel, radians
	maxStep        float64 // radians
	dist           MutationDist
}

// NewDihedral constructs a Dihedral element rotating affectedAtoms about
// the axis from bondAtom1 to bondAtom2. Mutate defaults to a Cauchy step,
// the heavier-tailed of the two policies a torsion can use; switch to
// DistUniform with SetMutationPolicy for a plain rectangular step.
func NewDihedral(m *model.Model, src *randsrc.Source, bondAtom1, bondAtom2 int, affectedAtoms []int, maxStep float64) *Dihedral {
	return &Dihedral{
		model: m, rand: src,
		bondAtom1: bondAtom1, bondAtom2: bondAtom2,
		affectedAtoms: append([]int(nil), affectedAtoms...),
		maxStep:       maxStep,
		dist:          DistCauchy,
	}
}

// SetMutationPolicy selects the distribution Mutate draws its step from:
// DistCauchy (default) or DistUniform. Any other value falls back to
// DistCauchy.
func (d *Dihedral) SetMutationPolicy(dist MutationDist) {
	if dist != DistUniform {
		dist = DistCauchy
	}
	d.dist = dist
}

func (d *Dihedral) axis() geom.Vector {
	p1 := d.model.Atoms[d.bondAtom1].Coord
	p2 := d.model.Atoms[d.bondAtom2].Coord
	return p2.Sub(p1)
}

func (d *Dihedral) rotate(delta float64) {
	pivot := d.model.Atoms[d.bondAtom2].Coord
	q := geom.FromAxisAngle(d.axis(), delta)
	for _, idx := range d.affectedAtoms {
		rel := d.model.Atoms[idx].Coord.Sub(pivot)
		d.model.Atoms[idx].Coord = pivot.Add(q.Rotate(rel))
	}
}

func (d *Dihedral) Reset() {
	d.rotate(-d.angle)
	d.angle = 0
}

func (d *Dihedral) Randomise(stepSize float64) {
	target := d.rand.Uniform(-math.Pi, math.Pi) * stepSize
	d.rotate(target - d.angle)
	d.angle = target
}

func (d *Dihedral) Mutate(relStepSize float64) {
	step := d.maxStep * relStepSize
	var delta float64
	if d.dist == DistUniform {
		delta = d.rand.Uniform(-step, step)
	} else {
		delta = d.rand.Cauchy(step)
	}
	d.rotate(delta)
	d.angle += delta
}

func (d *Dihedral) SyncFromModel() { d.angle = 0 }
func (d *Dihedral) SyncToModel()   {} // mutation already writes atom coords directly

func (d *Dihedral) Clone() Element {
	clone := *d
	clone.affectedAtoms = append([]int(nil), d.affectedAtoms...)
	return &clone
}

func (d *Dihedral) Length() int      { return 1 }
func (d *Dihedral) XOverLength() int { return 1 }

func (d *Dihedral) AppendVector(dst []float64) []float64 { return append(dst, d.angle) }

func (d *Dihedral) SetVector(src []float64, pos *int) error {
	if len(src)-*pos < 1 {
		return errShortVector(len(src)-*pos, 1)
	}
	target := src[*pos]
	d.rotate(target - d.angle)
	d.angle = target
	*pos++
	return nil
}

func (d *Dihedral) AppendStepVector(dst []float64) []float64 { return append(dst, d.maxStep) }

func (d *Dihedral) CompareVector(src []float64, pos *int) float64 {
	if len(src)-*pos < 1 {
		*pos++
		return -1
	}
	step := d.maxStep
	if step <= 0 {
		step = 1
	}
	rel := math.Abs(src[*pos]-d.angle) / step
	*pos++
	return rel
}
