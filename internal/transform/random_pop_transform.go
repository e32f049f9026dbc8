package transform

import (
	"github.com/sarat-asymmetrica/dockvedic/internal/chrom"
	"github.com/sarat-asymmetrica/dockvedic/internal/logging"
	"github.com/sarat-asymmetrica/dockvedic/internal/population"
	"github.com/sarat-asymmetrica/dockvedic/internal/randsrc"
	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
)

const ParamPopSize = "POPSIZE"

// RandomPopTransform seeds the workspace's population by randomising a
// template chromosome POPSIZE times and scoring each against the
// workspace's current scoring function, the first stage of almost every
// GA-based docking protocol.
type RandomPopTransform struct {
	*BaseTransform
	seed *chrom.Chromosome
	rand *randsrc.Source
}

// NewRandomPopTransform builds the transform. seed is cloned for every
// population member, never mutated directly.
func NewRandomPopTransform(name string, seed *chrom.Chromosome, src *randsrc.Source) *RandomPopTransform {
	r := &RandomPopTransform{BaseTransform: NewBaseTransform("RandomPopTransform", name), seed: seed, rand: src}
	r.AddParameter(ParamPopSize, variant.Int(50))
	r.BindSelf(r)
	return r
}

func (r *RandomPopTransform) Execute() {
	ws := r.GetWorkSpace()
	if ws == nil || r.seed == nil {
		return
	}
	sf := ws.GetSF()
	if sf == nil {
		logging.Default().Warn("RandomPopTransform.Execute: no scoring function registered", logging.String("transform", r.GetFullName()))
		return
	}
	size := r.GetParameter(ParamPopSize).AsInt()
	pop, err := population.New(r.seed, size, sf, r.rand)
	if err != nil {
		logging.Default().Error("RandomPopTransform.Execute: population construction failed", logging.Err(err))
		return
	}
	ws.SetPopulation(pop)
}
