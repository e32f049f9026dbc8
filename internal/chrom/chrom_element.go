// Package chrom implements the chromosome abstraction the search
// transforms manipulate: a flat vector of degrees of freedom (ligand
// rigid-body pose, per-bond torsions, receptor side-chain dihedrals,
// solvent occupancy) that can be synchronised to and from the underlying
// Model coordinates, mutated by a controlled random step, or set directly
// to a vector produced by a simplex or GA crossover.
package chrom

import (
	"fmt"

	"github.com/sarat-asymmetrica/dockvedic/internal/errs"
)

// Element is one degree-of-freedom group (a rigid-body pose, a single
// torsion, ...). A Chromosome is built by aggregating Elements for every
// model registered with the workspace.
type Element interface {
	// Reset returns the element to its state at construction time.
	Reset()
	// Randomise replaces the element's value with a fresh random value
	// drawn about its reference (construction/SyncFromModel) state, the
	// spread scaled by stepSize, used to seed an initial population.
	Randomise(stepSize float64)
	// Mutate perturbs the element's value by a random step scaled by
	// relStepSize, used by simulated annealing and the GA's mutation
	// operator.
	Mutate(relStepSize float64)
	// SyncFromModel reads the element's current value out of the Model's
	// atom coordinates.
	SyncFromModel()
	// SyncToModel writes the element's current value back into the
	// Model's atom coordinates.
	SyncToModel()
	// Clone returns an independent copy, used when a population genome
	// snapshots its chromosome.
	Clone() Element
	// Length is the number of values this element contributes to
	// GetVector/SetVector.
	Length() int
	// XOverLength is the number of values this element contributes to a
	// GA crossover point vector, which may differ from Length (e.g. a
	// rigid-body element crosses over as a single unit even though it
	// occupies 7 vector slots).
	XOverLength() int
	// AppendVector appends the element's scalar values to dst.
	AppendVector(dst []float64) []float64
	// SetVector consumes values starting at offset *pos from src,
	// advancing *pos by Length(). Returns a BadArgument error if src is
	// too short.
	SetVector(src []float64, pos *int) error
	// AppendStepVector appends the per-value maximum mutation step to
	// dst, used by the simplex transform to build its initial step sizes.
	AppendStepVector(dst []float64) []float64
	// CompareVector returns the largest relative difference between src
	// (starting at *pos) and the element's current value, each DoF's
	// absolute difference scaled by that DoF's own step size from
	// AppendStepVector, advancing *pos by Length(). Returns -1 if src
	// runs out before Length() values have been consumed. Used to
	// deduplicate a GA population against a single equality_threshold
	// that compares consistently across translation, rotation, and
	// torsion DoFs.
	CompareVector(src []float64, pos *int) float64
}

// MutationDist selects the random distribution Mutate draws its step from,
// a per-element policy flag (spec: "dihedral mutations are Cauchy or
// uniform rectangular ...; translations are gaussian or uniform"). Not
// every element honours every value: Dihedral/ReceptorDihedral choose
// between DistCauchy and DistUniform, RigidBody between DistGaussian and
// DistUniform.
type MutationDist int

const (
	DistGaussian MutationDist = iota
	DistCauchy
	DistUniform
)

// errShortVector is returned by SetVector when the source slice runs out
// before the element has consumed Length() values.
func errShortVector(have, want int) error {
	return errs.BadArgument("chromosome vector too short").
		WithDetail(fmt.Sprintf("have %d remaining, need %d", have, want))
}
