package transform

import (
	"github.com/sarat-asymmetrica/dockvedic/internal/logging"
	"github.com/sarat-asymmetrica/dockvedic/internal/population"
	"github.com/sarat-asymmetrica/dockvedic/internal/request"
	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
)

const (
	ParamGANewFraction  = "NEW_FRACTION"       // fraction of the population replaced per GAstep
	ParamGAPCrossover   = "PCROSSOVER"         // probability a child is built by crossover rather than cloning a parent
	ParamGAXOverMut     = "XOVERMUT"           // mutate crossover children as well as clones
	ParamGACMutate      = "CMUTATE"            // scale each mutation step by 1+|Cauchy(1)| instead of using the plain step
	ParamGAStepSize     = "STEP_SIZE"          // relative mutation step size
	ParamGAEqualThresh  = "EQUALITY_THRESHOLD"
	ParamGANCycles      = "NCYCLES"      // maximum GAstep generations
	ParamGANConvergence = "NCONVERGENCE" // generations without improvement before stopping early
	ParamGAHistoryFreq  = "HISTORY_FREQ" // log a progress line every N generations (0 disables)
)

// GATransform runs the workspace's population through its generational
// GAstep loop until either NCYCLES generations have run or NCONVERGENCE
// consecutive generations pass without an improvement in the population's
// best score. Like SimAnnTransform/SimplexTransform, the GA population
// minimizes: a lower score is a better genome.
type GATransform struct {
	*BaseTransform
}

func NewGATransform(name string) *GATransform {
	g := &GATransform{BaseTransform: NewBaseTransform("GATransform", name)}
	g.AddParameter(ParamGANewFraction, variant.Double(0.5))
	g.AddParameter(ParamGAPCrossover, variant.Double(0.4))
	g.AddParameter(ParamGAXOverMut, variant.Bool(true))
	g.AddParameter(ParamGACMutate, variant.Bool(false))
	g.AddParameter(ParamGAStepSize, variant.Double(1.0))
	g.AddParameter(ParamGAEqualThresh, variant.Double(0.1))
	g.AddParameter(ParamGANCycles, variant.Int(100))
	g.AddParameter(ParamGANConvergence, variant.Int(4))
	g.AddParameter(ParamGAHistoryFreq, variant.Int(0))
	g.BindSelf(g)
	return g
}

func (g *GATransform) Execute() {
	ws := g.GetWorkSpace()
	if ws == nil {
		return
	}
	sf := ws.GetSF()
	if sf == nil {
		logging.Default().Warn("GATransform.Execute: no scoring function registered")
		return
	}
	raw := ws.GetPopulation()
	if raw == nil {
		logging.Default().Warn("GATransform.Execute: no population seeded")
		return
	}
	// RandomPopTransform is the only producer of a workspace population and
	// always builds a *population.Population; the workspace itself only
	// exposes the narrow workspace.Population view, so recover the full
	// type here to reach GAstep/Best.
	pop, ok := raw.(*population.Population)
	if !ok {
		logging.Default().Error("GATransform.Execute: population does not support GA stepping")
		return
	}
	if pop.GetActualSize() == 0 {
		logging.Default().Warn("GATransform.Execute: population is empty")
		return
	}

	newFraction := g.GetParameter(ParamGANewFraction).AsDouble()
	pcross := g.GetParameter(ParamGAPCrossover).AsDouble()
	xovermut := g.GetParameter(ParamGAXOverMut).AsBool()
	cmutate := g.GetParameter(ParamGACMutate).AsBool()
	stepSize := g.GetParameter(ParamGAStepSize).AsDouble()
	equalityThreshold := g.GetParameter(ParamGAEqualThresh).AsDouble()
	nCycles := g.GetParameter(ParamGANCycles).AsInt()
	nConvergence := g.GetParameter(ParamGANConvergence).AsInt()
	historyFreq := g.GetParameter(ParamGAHistoryFreq).AsInt()

	// Clearing the partition distance forces every indexed scoring term to
	// rebuild against the population's full spread of poses rather than a
	// stale partition left over from a prior simulated-annealing stage.
	sf.HandleRequest(request.NewPartition(0))

	nReplicates := int(float64(pop.MaxSize()) * newFraction)
	if nReplicates < 1 {
		nReplicates = 1
	}

	log := logging.Default().Named("ga")
	bestScore := pop.Best().Score
	stagnant := 0

	for cycle := 0; cycle < nCycles; cycle++ {
		if err := pop.GAstep(nReplicates, stepSize, equalityThreshold, pcross, xovermut, cmutate); err != nil {
			log.Error("GAstep failed", logging.Err(err))
			return
		}
		best := pop.Best()
		if best.Score < bestScore {
			bestScore = best.Score
			stagnant = 0
		} else {
			stagnant++
		}
		if historyFreq > 0 && cycle%historyFreq == 0 {
			log.Debug("GA cycle complete", logging.Int("cycle", cycle), logging.Float64("best_score", bestScore))
		}
		if stagnant >= nConvergence {
			log.Info("GA converged", logging.Int("cycle", cycle), logging.Float64("best_score", bestScore))
			break
		}
	}
}
