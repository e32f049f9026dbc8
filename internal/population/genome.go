// Package population implements the genetic-algorithm population the
// GATransform drives: a fixed-size set of genomes (chromosome + cached
// score), sigma-truncation fitness scaling, roulette-wheel and tournament
// selection, and the GAstep that advances one generation.
package population

import "github.com/sarat-asymmetrica/dockvedic/internal/chrom"

// Genome pairs a chromosome snapshot with its score and scaled fitness.
// Score is the scoring function's raw value (minimizing convention: lower
// is better); Fitness is the sigma-truncated, always-non-negative value
// used for roulette-wheel selection, where a lower Score yields a larger
// Fitness.
type Genome struct {
	Chrom   *chrom.Chromosome
	Score   float64
	Fitness float64
}

func newGenome(c *chrom.Chromosome) *Genome {
	return &Genome{Chrom: c}
}

func (g *Genome) clone() *Genome {
	return &Genome{Chrom: g.Chrom.Clone(), Score: g.Score, Fitness: g.Fitness}
}
