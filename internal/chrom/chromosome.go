package chrom

import (
	"fmt"

	"github.com/sarat-asymmetrica/dockvedic/internal/errs"
	"github.com/sarat-asymmetrica/dockvedic/internal/randsrc"
)

// Chromosome aggregates every Element registered for a search (typically
// one RigidBody per flexible model plus one Dihedral per rotatable bond)
// into a single vector the transforms operate on, the way the workspace
// assembles one combined chromosome across all of its registered models.
type Chromosome struct {
	elements []Element
}

// NewChromosome builds an empty aggregate; elements are registered with
// Add as each model's degrees of freedom are discovered.
func NewChromosome() *Chromosome { return &Chromosome{} }

// Add appends an element to the aggregate. Returns a BadArgument error if
// elem is nil.
func (c *Chromosome) Add(elem Element) error {
	if elem == nil {
		return errs.BadArgument("cannot add nil chromosome element")
	}
	c.elements = append(c.elements, elem)
	return nil
}

func (c *Chromosome) NumElements() int { return len(c.elements) }

func (c *Chromosome) Reset() {
	for _, e := range c.elements {
		e.Reset()
	}
}

func (c *Chromosome) Randomise(stepSize float64) {
	for _, e := range c.elements {
		e.Randomise(stepSize)
	}
}

func (c *Chromosome) Mutate(relStepSize float64) {
	for _, e := range c.elements {
		e.Mutate(relStepSize)
	}
}

func (c *Chromosome) SyncFromModel() {
	for _, e := range c.elements {
		e.SyncFromModel()
	}
}

func (c *Chromosome) SyncToModel() {
	for _, e := range c.elements {
		e.SyncToModel()
	}
}

func (c *Chromosome) Clone() *Chromosome {
	clone := &Chromosome{elements: make([]Element, len(c.elements))}
	for i, e := range c.elements {
		clone.elements[i] = e.Clone()
	}
	return clone
}

func (c *Chromosome) Length() int {
	n := 0
	for _, e := range c.elements {
		n += e.Length()
	}
	return n
}

func (c *Chromosome) XOverLength() int {
	n := 0
	for _, e := range c.elements {
		n += e.XOverLength()
	}
	return n
}

// GetVector returns the full flattened DOF vector.
func (c *Chromosome) GetVector() []float64 {
	var v []float64
	for _, e := range c.elements {
		v = e.AppendVector(v)
	}
	return v
}

// SetVector writes src back into every element in order. Returns a
// BadArgument error (without having partially applied later elements) if
// src is shorter than Length().
func (c *Chromosome) SetVector(src []float64) error {
	if len(src) < c.Length() {
		return errs.BadArgument("chromosome vector length mismatch").
			WithDetail(fmt.Sprintf("got %d, want %d", len(src), c.Length()))
	}
	pos := 0
	for _, e := range c.elements {
		if err := e.SetVector(src, &pos); err != nil {
			return err
		}
	}
	return nil
}

// GetStepVector returns the per-value maximum mutation step, used by the
// simplex transform to size its initial simplex.
func (c *Chromosome) GetStepVector() []float64 {
	var v []float64
	for _, e := range c.elements {
		v = e.AppendStepVector(v)
	}
	return v
}

// UniformCrossover returns a new chromosome built by choosing each element
// independently (with equal probability) from c or other, the way the GA
// population treats a rigid-body pose or a single torsion as one
// indivisible crossover unit rather than mixing its raw vector values with
// its counterpart's. c and other must have the same element structure
// (the same chromosome shape registered for this search).
func (c *Chromosome) UniformCrossover(other *Chromosome, src *randsrc.Source) *Chromosome {
	child := &Chromosome{elements: make([]Element, len(c.elements))}
	for i := range c.elements {
		if i < len(other.elements) && src.Float64() < 0.5 {
			child.elements[i] = other.elements[i].Clone()
		} else {
			child.elements[i] = c.elements[i].Clone()
		}
	}
	return child
}

// CompareVector returns the largest relative per-DoF difference between
// src and the chromosome's current value, each DoF's difference scaled by
// its own mutation step so a single equality_threshold compares
// consistently across rigid-body and dihedral DoFs. Returns -1 if src's
// length does not match this chromosome's shape, used by the GA population
// to deduplicate converged individuals.
func (c *Chromosome) CompareVector(src []float64) float64 {
	if len(src) != c.Length() {
		return -1
	}
	pos := 0
	var maxRel float64
	for _, e := range c.elements {
		rel := e.CompareVector(src, &pos)
		if rel < 0 {
			return -1
		}
		if rel > maxRel {
			maxRel = rel
		}
	}
	return maxRel
}
