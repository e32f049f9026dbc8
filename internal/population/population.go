package population

import (
	"math"
	"sort"

	"github.com/sarat-asymmetrica/dockvedic/internal/chrom"
	"github.com/sarat-asymmetrica/dockvedic/internal/errs"
	"github.com/sarat-asymmetrica/dockvedic/internal/randsrc"
)

// Scorer is the minimal scoring-function contract the population needs:
// whatever chromosome shape is currently synced onto the model, return its
// score. Like every other transform, the population minimizes: a lower
// score is a better pose.
type Scorer interface {
	Score() float64
}

// sigmaTruncationC is Goldberg's sigma truncation multiplier (Genetic
// Algorithms in Search, Optimization, and Machine Learning, p.124), the
// same constant the genetic-programming population in this codebase's
// lineage defaults to.
const sigmaTruncationC = 2.0

// Population is a fixed-size set of genomes ranked by score, the pool a
// GATransform iterates with GAstep.
type Population struct {
	genomes []*Genome
	size    int
	sf      Scorer
	rand    *randsrc.Source

	scoreMean     float64
	scoreVariance float64
}

// New creates a randomised population of size genomes cloned from seed,
// scores and sorts them, and computes sigma-truncated fitness. Returns a
// BadArgument error if size <= 0 or seed/sf is nil.
func New(seed *chrom.Chromosome, size int, sf Scorer, src *randsrc.Source) (*Population, error) {
	if size <= 0 {
		return nil, errs.BadArgument("population size must be positive")
	}
	if seed == nil {
		return nil, errs.BadArgument("population seed chromosome must not be nil")
	}
	if sf == nil {
		return nil, errs.BadArgument("population scoring function must not be nil")
	}
	p := &Population{size: size, sf: sf, rand: src}
	p.genomes = make([]*Genome, size)
	for i := range p.genomes {
		c := seed.Clone()
		c.Randomise(1.0)
		p.genomes[i] = newGenome(c)
	}
	p.rescoreAndRank()
	return p, nil
}

// better reports whether a is the better (lower) score than b, the
// minimizing convention every transform in this package shares.
func better(a, b float64) bool { return a < b }

// MaxSize returns the configured population size, satisfying the
// workspace.Population contract.
func (p *Population) MaxSize() int { return p.size }

// GetActualSize returns the current number of genomes, which can fall
// below MaxSize after MergeNewPop discards duplicates.
func (p *Population) GetActualSize() int { return len(p.genomes) }

// Best returns the lowest-scoring (best) genome, or nil for an empty
// population.
func (p *Population) Best() *Genome {
	if len(p.genomes) == 0 {
		return nil
	}
	return p.genomes[0]
}

func (p *Population) GetScoreMean() float64     { return p.scoreMean }
func (p *Population) GetScoreVariance() float64 { return p.scoreVariance }
func (p *Population) GetSF() Scorer             { return p.sf }

// SetSF replaces the scoring function, forcing a full rescore and rerank
// (called between GA stages when scoring-function parameters have
// changed, e.g. partitioning distance or term weights).
func (p *Population) SetSF(sf Scorer) error {
	if sf == nil {
		return errs.BadArgument("population scoring function must not be nil")
	}
	p.sf = sf
	p.rescoreAndRank()
	return nil
}

// evaluate syncs g's chromosome onto the model and scores it.
func (p *Population) evaluate(g *Genome) {
	g.Chrom.SyncToModel()
	g.Score = p.sf.Score()
}

func (p *Population) rescoreAndRank() {
	for _, g := range p.genomes {
		p.evaluate(g)
	}
	p.sortAscending()
	p.scaleFitness()
	if best := p.Best(); best != nil {
		best.Chrom.SyncToModel()
	}
}

func (p *Population) sortAscending() {
	sort.Slice(p.genomes, func(i, j int) bool { return better(p.genomes[i].Score, p.genomes[j].Score) })
}

// scaleFitness applies Goldberg sigma-truncation scaling inverted for a
// minimizing score: Fitness = max(0, (mean + c*stdev) - Score), so the
// roulette wheel always sees non-negative weights, lower-scoring (better)
// genomes get a larger share, and a population with low variance (near
// convergence) doesn't collapse to near-uniform selection pressure.
func (p *Population) scaleFitness() {
	n := len(p.genomes)
	if n == 0 {
		return
	}
	var total float64
	for _, g := range p.genomes {
		total += g.Score
	}
	mean := total / float64(n)
	var ss float64
	for _, g := range p.genomes {
		d := g.Score - mean
		ss += d * d
	}
	variance := 0.0
	if n > 1 {
		variance = ss / float64(n-1)
	}
	stdev := math.Sqrt(variance)
	p.scoreMean = mean
	p.scoreVariance = variance
	for _, g := range p.genomes {
		f := (mean + sigmaTruncationC*stdev) - g.Score
		if f < 0 {
			f = 0
		}
		g.Fitness = f
	}
}

// RouletteWheelSelect picks a genome with probability proportional to its
// scaled fitness, via cumulative-sum binary search over the (already
// descending-by-score) population.
func (p *Population) RouletteWheelSelect() *Genome {
	n := len(p.genomes)
	if n == 0 {
		return nil
	}
	cumulative := make([]float64, n)
	var totalFitness float64
	for i, g := range p.genomes {
		totalFitness += g.Fitness
		cumulative[i] = totalFitness
	}
	if totalFitness <= 0 {
		return p.genomes[p.rand.Intn(n)]
	}
	cutoff := p.rand.Float64() * totalFitness
	if i := sort.SearchFloat64s(cumulative, cutoff); i < n {
		return p.genomes[i]
	}
	return p.genomes[n-1]
}

// TournamentSelect runs a size-2 tournament: two genomes are drawn
// uniformly, and the lower-scoring (better) one wins with probability tp
// (otherwise the loser is returned), matching the probabilistic
// tournament selector this family of GA populations also offers alongside
// roulette-wheel selection.
func (p *Population) TournamentSelect(tp float64) *Genome {
	n := len(p.genomes)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return p.genomes[0]
	}
	i := p.rand.Intn(n)
	j := i
	for j == i {
		j = p.rand.Intn(n)
	}
	a, b := p.genomes[i], p.genomes[j]
	winner, loser := a, b
	if better(b.Score, a.Score) {
		winner, loser = b, a
	}
	if p.rand.Float64() < tp {
		return winner
	}
	return loser
}

// GAstep advances one generation: nReplicates-1 children are created by
// selecting two parents with TournamentSelect (win probability 0.7),
// either crossing them over (probability pcross; the child is mutated too
// only if xovermut) or cloning the first parent and mutating the clone
// (Cauchy-scaled step if cmutate, otherwise regular Mutate); a clone of
// the single best existing genome makes up the nReplicates-th new genome
// (elitism). New genomes equal (within equalityThreshold) to an
// existing genome's vector are discarded to preserve population diversity.
func (p *Population) GAstep(nReplicates int, relStepSize, equalityThreshold, pcross float64, xovermut, cmutate bool) error {
	if nReplicates <= 0 {
		return errs.BadArgument("nReplicates must be positive")
	}
	best := p.Best()
	if best == nil {
		return errs.InvalidRequest("cannot step an empty population")
	}
	newPop := make([]*Genome, 0, nReplicates)
	for i := 0; i < nReplicates-1; i++ {
		mother := p.TournamentSelect(0.7)
		father := p.TournamentSelect(0.7)
		var childChrom *chrom.Chromosome
		if p.rand.Float64() < pcross {
			childChrom = mother.Chrom.UniformCrossover(father.Chrom, p.rand)
			if xovermut {
				mutate(childChrom, relStepSize, cmutate, p.rand)
			}
		} else {
			childChrom = mother.Chrom.Clone()
			mutate(childChrom, relStepSize, cmutate, p.rand)
		}
		newPop = append(newPop, newGenome(childChrom))
	}
	newPop = append(newPop, best.clone())

	p.mergeNewPop(newPop, equalityThreshold)
	return nil
}

// mutate applies a regular mutation, or (when cmutate is true) a single
// mutation at a step scaled by 1+|Cauchy(1)|, a heavier-tailed step that
// occasionally escapes local minima, the xovermut/cmutate combination
// GAstep exposes.
func mutate(c *chrom.Chromosome, relStepSize float64, cmutate bool, src *randsrc.Source) {
	if cmutate {
		c.Mutate(relStepSize * (1 + math.Abs(src.Cauchy(1.0))))
		return
	}
	c.Mutate(relStepSize)
}

// mergeNewPop folds newPop into the population, evaluating each new
// genome, dropping ones whose chromosome is within equalityThreshold (via
// chrom.Chromosome.CompareVector's per-DoF-scaled comparison) of an
// already-kept genome, then truncating back to MaxSize by score.
func (p *Population) mergeNewPop(newPop []*Genome, equalityThreshold float64) {
	for _, g := range newPop {
		p.evaluate(g)
	}
	merged := append(append([]*Genome{}, p.genomes...), newPop...)
	sort.Slice(merged, func(i, j int) bool { return better(merged[i].Score, merged[j].Score) })

	kept := merged[:0]
	for _, g := range merged {
		dup := false
		for _, k := range kept {
			if rel := k.Chrom.CompareVector(g.Chrom.GetVector()); rel >= 0 && rel <= equalityThreshold {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, g)
		}
		if len(kept) >= p.size {
			break
		}
	}
	p.genomes = kept
	p.scaleFitness()
	if best := p.Best(); best != nil {
		best.Chrom.SyncToModel()
	}
}
