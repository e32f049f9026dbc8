package transform

import (
	"math"

	"github.com/sarat-asymmetrica/dockvedic/internal/chrom"
	"github.com/sarat-asymmetrica/dockvedic/internal/logging"
	"github.com/sarat-asymmetrica/dockvedic/internal/randsrc"
	"github.com/sarat-asymmetrica/dockvedic/internal/request"
	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
)

const (
	ParamSAStart      = "START"     // initial temperature
	ParamSAFinal      = "FINAL"     // final temperature
	ParamSABlocks     = "NBLOCKS"   // number of cooling blocks
	ParamSASteps      = "STEPS"     // Monte Carlo trials per block
	ParamSAMinAccRate = "MINACCRT"  // minimum acceptance rate before halving step size
	ParamSAPartFreq   = "PARTITIONFREQ"
	ParamSAStepSize   = "STEPSIZE" // initial relative step size
)

// gasConstant is R in the Metropolis acceptance criterion (J/mol/K); the
// 1000x factor in the exponent converts the score's implicit kcal/mol unit
// to J/mol to match it, the same scaling the annealing schedule this is
// grounded on applies.
const gasConstant = 8.314

// SimAnnTransform performs simulated annealing over the workspace's
// chromosome: a geometric cooling schedule runs STEPS Metropolis trials
// per block, halving the mutation step size whenever a block's acceptance
// rate falls below MINACCRT, and rebuilding the scoring function's
// non-bonded partitioning every PARTITIONFREQ accepted trials. Score is
// minimized (lower is better), the opposite convention from the GA
// population.
type SimAnnTransform struct {
	*BaseTransform
	c    *chrom.Chromosome
	rand *randsrc.Source
}

func NewSimAnnTransform(name string, c *chrom.Chromosome, src *randsrc.Source) *SimAnnTransform {
	s := &SimAnnTransform{BaseTransform: NewBaseTransform("SimAnnTransform", name), c: c, rand: src}
	s.AddParameter(ParamSAStart, variant.Double(1000.0))
	s.AddParameter(ParamSAFinal, variant.Double(100.0))
	s.AddParameter(ParamSABlocks, variant.Int(10))
	s.AddParameter(ParamSASteps, variant.Int(50))
	s.AddParameter(ParamSAMinAccRate, variant.Double(0.25))
	s.AddParameter(ParamSAPartFreq, variant.Int(50))
	s.AddParameter(ParamSAStepSize, variant.Double(1.0))
	s.BindSelf(s)
	return s
}

// Stats summarizes one annealing run. Execute neither fills nor returns
// one, and no caller in this module constructs it.
type Stats struct {
	InitialScore float64
	FinalScore   float64
	Accepted     int
	Trials       int
}

func (s *SimAnnTransform) Execute() {
	ws := s.GetWorkSpace()
	if ws == nil || s.c == nil {
		return
	}
	sf := ws.GetSF()
	if sf == nil {
		logging.Default().Warn("SimAnnTransform.Execute: no scoring function registered")
		return
	}

	t0 := s.GetParameter(ParamSAStart).AsDouble()
	tFinal := s.GetParameter(ParamSAFinal).AsDouble()
	nBlocks := s.GetParameter(ParamSABlocks).AsInt()
	nSteps := s.GetParameter(ParamSASteps).AsInt()
	minAccRate := s.GetParameter(ParamSAMinAccRate).AsDouble()
	partFreq := s.GetParameter(ParamSAPartFreq).AsInt()
	stepSize := s.GetParameter(ParamSAStepSize).AsDouble()

	if nBlocks < 1 {
		nBlocks = 1
	}
	tFac := 1.0
	if nBlocks > 1 && t0 > 0 {
		tFac = math.Pow(tFinal/t0, 1.0/float64(nBlocks-1))
	}

	s.c.SyncToModel()
	currentScore := sf.Score()
	bestVector := s.c.GetVector()
	bestScore := currentScore

	t := t0
	acceptedSinceRepart := 0
	log := logging.Default().Named("simann")

	for block := 0; block < nBlocks; block++ {
		accepted := 0
		for step := 0; step < nSteps; step++ {
			// SetVector (not a fresh clone) so every element, including a
			// Dihedral whose Mutate rotates the shared model in place, can
			// revert a rejected trial exactly via its own SetVector logic.
			preTrial := s.c.GetVector()
			s.c.Mutate(stepSize)
			trialScore := sf.Score()
			delta := trialScore - currentScore

			accept := delta < 0.0 || math.Exp(-1000.0*delta/(gasConstant*t)) > s.rand.Float64()
			if accept {
				currentScore = trialScore
				accepted++
				acceptedSinceRepart++
				if trialScore < bestScore {
					bestScore = trialScore
					bestVector = s.c.GetVector()
				}
				if partFreq > 0 && acceptedSinceRepart >= partFreq {
					sf.HandleRequest(request.NewPartition(stepSize))
					acceptedSinceRepart = 0
				}
			} else {
				_ = s.c.SetVector(preTrial)
			}
		}
		accRate := float64(accepted) / float64(nSteps)
		if accRate < minAccRate {
			stepSize *= 0.5
		}
		t *= tFac
		log.Debug("annealing block complete",
			logging.Int("block", block), logging.Float64("temperature", t),
			logging.Float64("acceptance_rate", accRate), logging.Float64("score", currentScore))
	}

	_ = s.c.SetVector(bestVector)
}
