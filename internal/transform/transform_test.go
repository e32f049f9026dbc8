package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarat-asymmetrica/dockvedic/internal/chrom"
	"github.com/sarat-asymmetrica/dockvedic/internal/geom"
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/object"
	"github.com/sarat-asymmetrica/dockvedic/internal/population"
	"github.com/sarat-asymmetrica/dockvedic/internal/randsrc"
	"github.com/sarat-asymmetrica/dockvedic/internal/request"
	"github.com/sarat-asymmetrica/dockvedic/internal/transform"
	"github.com/sarat-asymmetrica/dockvedic/internal/workspace"
)

// testSF scores a workspace's first model by the squared distance of its
// first atom from the origin. negated flips the sign so the same fixture
// can drive both the GA's maximize convention and the SimAnn/Simplex
// minimize convention.
type testSF struct {
	ws      *workspace.WorkSpace
	negated bool
}

func (s *testSF) Score() float64 {
	m, err := s.ws.GetModel(0)
	if err != nil {
		return 0
	}
	d := m.Atoms[0].Coord.Dist2(geom.Coord{})
	if s.negated {
		return -d
	}
	return d
}
func (s *testSF) ScoreMap(sm workspace.ScoreMap)  { sm["TOTAL"] = s.Score() }
func (s *testSF) HandleRequest(request.Request)   {}
func (s *testSF) GetFullName() string             { return "TEST.SF" }
func (s *testSF) Update(object.Subject)           {}
func (s *testSF) Deleted(object.Subject)          {}

func seedWorkspace(t *testing.T, negated bool) (*workspace.WorkSpace, *chrom.Chromosome, *model.Model) {
	t.Helper()
	m := &model.Model{Atoms: []model.Atom{{Index: 0, Coord: geom.Coord{X: 3, Y: 4, Z: 0}}}}
	ws := workspace.New()
	ws.AddModels(m)
	c := chrom.NewChromosome()
	require.NoError(t, c.Add(chrom.NewRigidBody(m, randsrc.New(11), 2.0, 1.0)))
	ws.SetSF(&testSF{ws: ws, negated: negated})
	return ws, c, m
}

func TestNullTransformIsNoOp(t *testing.T) {
	ws, _, m := seedWorkspace(t, false)
	before := m.Atoms[0].Coord
	n := transform.NewNullTransform("null")
	n.Register(ws)
	n.Execute()
	assert.Equal(t, before, m.Atoms[0].Coord)
}

// recorder is a minimal transform.Step that appends its name when
// executed, used to verify TransformAgg runs children in registration
// order.
type recorder struct {
	name string
	log  *[]string
}

func (r recorder) Update(object.Subject)             {}
func (r recorder) Deleted(object.Subject)             {}
func (r recorder) GetFullName() string                { return r.name }
func (r recorder) GetClass() string                   { return "recorder" }
func (r recorder) IsEnabled() bool                     { return true }
func (r recorder) Execute()                            { *r.log = append(*r.log, r.name) }
func (r recorder) HandleRequest(request.Request)       {}

func TestTransformAggRunsEnabledChildrenInOrder(t *testing.T) {
	ws, _, _ := seedWorkspace(t, false)
	var order []string
	a := transform.NewTransformAgg("agg")
	a.Register(ws)
	a.Add(recorder{name: "first", log: &order})
	a.Add(recorder{name: "second", log: &order})
	a.Execute()
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRandomPopTransformSeedsWorkspacePopulation(t *testing.T) {
	ws, c, _ := seedWorkspace(t, true) // GA-style population maximizes
	rp := transform.NewRandomPopTransform("seed", c, randsrc.New(4))
	rp.Register(ws)
	rp.Execute()

	raw := ws.GetPopulation()
	require.NotNil(t, raw)
	pop, ok := raw.(*population.Population)
	require.True(t, ok)
	assert.Equal(t, 50, pop.MaxSize())
}

func TestSimAnnTransformDoesNotWorsenTheBestVector(t *testing.T) {
	ws, c, m := seedWorkspace(t, false) // SimAnn minimizes
	sa := transform.NewSimAnnTransform("anneal", c, randsrc.New(21))
	sa.Register(ws)

	initial := m.Atoms[0].Coord.Dist2(geom.Coord{})
	sa.Execute()
	final := m.Atoms[0].Coord.Dist2(geom.Coord{})
	assert.LessOrEqual(t, final, initial, "annealing must never leave the model worse than its starting pose")
}

func TestSimplexTransformConvergesTowardTheOrigin(t *testing.T) {
	ws, c, m := seedWorkspace(t, false) // Simplex minimizes
	sx := transform.NewSimplexTransform("polish", c)
	sx.Register(ws)

	initial := m.Atoms[0].Coord.Dist2(geom.Coord{})
	sx.Execute()
	final := m.Atoms[0].Coord.Dist2(geom.Coord{})
	assert.LessOrEqual(t, final, initial)
}

func TestGATransformImprovesOrMaintainsBestScore(t *testing.T) {
	ws, c, _ := seedWorkspace(t, true) // GA maximizes

	rp := transform.NewRandomPopTransform("seed", c, randsrc.New(6))
	rp.Register(ws)
	rp.Execute()

	raw := ws.GetPopulation()
	require.NotNil(t, raw)
	pop := raw.(*population.Population)
	bestBefore := pop.Best().Score

	ga := transform.NewGATransform("ga")
	ga.Register(ws)
	ga.Execute()

	assert.GreaterOrEqual(t, pop.Best().Score, bestBefore)
}

func TestGATransformWithoutPopulationIsNoOp(t *testing.T) {
	ws, _, _ := seedWorkspace(t, true)
	ga := transform.NewGATransform("ga")
	ga.Register(ws)
	assert.NotPanics(t, func() { ga.Execute() })
}
