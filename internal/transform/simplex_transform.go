package transform

import (
	"sort"

	"github.com/sarat-asymmetrica/dockvedic/internal/chrom"
	"github.com/sarat-asymmetrica/dockvedic/internal/logging"
	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
)

const (
	ParamSimplexMaxCalls  = "MAXCALLS"  // maximum scoring-function evaluations
	ParamSimplexStopRange = "STOPRANGE" // fractional simplex-spread convergence threshold
	ParamSimplexStepSize  = "STEPSIZE"  // initial vertex displacement, relative to each DOF's own step
)

// Nelder-Mead reflection/expansion/contraction coefficients, the standard
// values from the original algorithm.
const (
	nmAlpha = 1.0 // reflection
	nmGamma = 2.0 // expansion
	nmRho   = 0.5 // contraction
	nmSigma = 0.5 // shrink
)

// SimplexTransform performs a Nelder-Mead local search over the workspace's
// chromosome, used as a final polish after simulated annealing or a GA run
// has found a promising basin. Like SimAnnTransform it minimizes: a lower
// score is a better vertex.
type SimplexTransform struct {
	*BaseTransform
	c *chrom.Chromosome
}

func NewSimplexTransform(name string, c *chrom.Chromosome) *SimplexTransform {
	s := &SimplexTransform{BaseTransform: NewBaseTransform("SimplexTransform", name), c: c}
	s.AddParameter(ParamSimplexMaxCalls, variant.Int(200))
	s.AddParameter(ParamSimplexStopRange, variant.Double(1e-4))
	s.AddParameter(ParamSimplexStepSize, variant.Double(1.0))
	s.BindSelf(s)
	return s
}

type simplexVertex struct {
	vec   []float64
	score float64
}

func (s *SimplexTransform) Execute() {
	ws := s.GetWorkSpace()
	if ws == nil || s.c == nil {
		return
	}
	sf := ws.GetSF()
	if sf == nil {
		logging.Default().Warn("SimplexTransform.Execute: no scoring function registered")
		return
	}

	maxCalls := s.GetParameter(ParamSimplexMaxCalls).AsInt()
	stopRange := s.GetParameter(ParamSimplexStopRange).AsDouble()
	stepScale := s.GetParameter(ParamSimplexStepSize).AsDouble()

	n := s.c.Length()
	if n == 0 {
		return
	}
	steps := s.c.GetStepVector()

	evaluate := func(vec []float64) float64 {
		_ = s.c.SetVector(vec)
		return sf.Score()
	}

	origin := s.c.GetVector()
	vertices := make([]simplexVertex, n+1)
	vertices[0] = simplexVertex{vec: append([]float64(nil), origin...), score: evaluate(origin)}
	calls := 1
	for i := 0; i < n; i++ {
		v := append([]float64(nil), origin...)
		delta := steps[i] * stepScale
		if delta == 0 {
			delta = 0.1
		}
		v[i] += delta
		vertices[i+1] = simplexVertex{vec: v, score: evaluate(v)}
		calls++
	}

	sortVertices := func() {
		sort.Slice(vertices, func(a, b int) bool { return vertices[a].score < vertices[b].score })
	}
	sortVertices()

	for calls < maxCalls {
		spread := vertices[n].score - vertices[0].score
		if spread < 0 {
			spread = -spread
		}
		denom := vertices[0].score
		if denom < 0 {
			denom = -denom
		}
		if denom > 1e-12 && spread/denom < stopRange {
			break
		}

		centroid := make([]float64, n)
		for i := 0; i < n; i++ {
			for k := 0; k < n; k++ {
				centroid[k] += vertices[i].vec[k]
			}
		}
		for k := 0; k < n; k++ {
			centroid[k] /= float64(n)
		}

		worst := vertices[n]
		reflected := reflectVertex(centroid, worst.vec, nmAlpha)
		reflScore := evaluate(reflected)
		calls++

		switch {
		case reflScore < vertices[0].score:
			expanded := reflectVertex(centroid, worst.vec, nmAlpha*nmGamma)
			expScore := evaluate(expanded)
			calls++
			if expScore < reflScore {
				vertices[n] = simplexVertex{vec: expanded, score: expScore}
			} else {
				vertices[n] = simplexVertex{vec: reflected, score: reflScore}
			}
		case reflScore < vertices[n-1].score:
			vertices[n] = simplexVertex{vec: reflected, score: reflScore}
		default:
			contracted := reflectVertex(centroid, worst.vec, -nmRho)
			contrScore := evaluate(contracted)
			calls++
			if contrScore < worst.score {
				vertices[n] = simplexVertex{vec: contracted, score: contrScore}
			} else {
				for i := 1; i <= n; i++ {
					shrunk := make([]float64, n)
					for k := 0; k < n; k++ {
						shrunk[k] = vertices[0].vec[k] + nmSigma*(vertices[i].vec[k]-vertices[0].vec[k])
					}
					vertices[i] = simplexVertex{vec: shrunk, score: evaluate(shrunk)}
					calls++
				}
			}
		}
		sortVertices()
		if calls >= maxCalls {
			break
		}
	}

	_ = s.c.SetVector(vertices[0].vec)
}

// reflectVertex returns centroid + coeff*(centroid - worst), the shared
// formula behind reflection, expansion, and (with a negative coeff)
// contraction.
func reflectVertex(centroid, worst []float64, coeff float64) []float64 {
	out := make([]float64, len(centroid))
	for i := range centroid {
		out[i] = centroid[i] + coeff*(centroid[i]-worst[i])
	}
	return out
}
