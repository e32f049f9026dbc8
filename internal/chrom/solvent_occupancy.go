package chrom

import (
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/randsrc"
)

// SolventOccupancy is the chromosome element for a single explicit solvent
// model's presence in the pose: a single DoF in [0, 1], > 0.5 meaning the
// model is active (Model.Inactive false) and counted by the VdW/polar
// terms, <= 0.5 meaning it is switched out of scoring entirely. Unlike
// RigidBody/Dihedral, which perturb a continuous value, Mutate flips the
// occupancy with a probability scaled by relStepSize rather than nudging
// it, matching a DoF with only two physically meaningful states.
type SolventOccupancy struct {
	model    *model.Model
	rand     *randsrc.Source
	occupied bool
	refState bool
	flipProb float64
}

// NewSolventOccupancy constructs a SolventOccupancy element over m,
// initially occupied. Mutate flips it with probability
// flipProb*relStepSize (capped at 1); Randomise ignores flipProb and
// stepSize, keeping the current state with probability 1/2 and otherwise
// setting it by a fair coin.
func NewSolventOccupancy(m *model.Model, src *randsrc.Source, flipProb float64) *SolventOccupancy {
	s := &SolventOccupancy{model: m, rand: src, occupied: true, refState: true, flipProb: flipProb}
	s.SyncToModel()
	return s
}

func (s *SolventOccupancy) Reset() {
	s.occupied = s.refState
	s.SyncToModel()
}

func (s *SolventOccupancy) Randomise(stepSize float64) {
	if s.rand.Float64() < 0.5 {
		s.occupied = s.rand.Float64() >= 0.5
	}
	s.SyncToModel()
}

func (s *SolventOccupancy) Mutate(relStepSize float64) {
	p := s.flipProb * relStepSize
	if p > 1 {
		p = 1
	}
	if s.rand.Float64() < p {
		s.occupied = !s.occupied
	}
	s.SyncToModel()
}

func (s *SolventOccupancy) SyncFromModel() { s.occupied = !s.model.Inactive }
func (s *SolventOccupancy) SyncToModel()   { s.model.Inactive = !s.occupied }

func (s *SolventOccupancy) Clone() Element {
	clone := *s
	return &clone
}

func (s *SolventOccupancy) Length() int      { return 1 }
func (s *SolventOccupancy) XOverLength() int { return 1 }

func (s *SolventOccupancy) occupancyValue() float64 {
	if s.occupied {
		return 1.0
	}
	return 0.0
}

func (s *SolventOccupancy) AppendVector(dst []float64) []float64 {
	return append(dst, s.occupancyValue())
}

func (s *SolventOccupancy) SetVector(src []float64, pos *int) error {
	if len(src)-*pos < 1 {
		return errShortVector(len(src)-*pos, 1)
	}
	s.occupied = src[*pos] > 0.5
	*pos++
	s.SyncToModel()
	return nil
}

func (s *SolventOccupancy) AppendStepVector(dst []float64) []float64 {
	return append(dst, 1.0)
}

func (s *SolventOccupancy) CompareVector(src []float64, pos *int) float64 {
	if len(src)-*pos < 1 {
		*pos++
		return -1
	}
	other := src[*pos] > 0.5
	*pos++
	if other == s.occupied {
		return 0
	}
	return 1
}
