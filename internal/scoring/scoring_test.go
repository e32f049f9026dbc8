package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarat-asymmetrica/dockvedic/internal/geom"
	"github.com/sarat-asymmetrica/dockvedic/internal/grid"
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/scoring"
	"github.com/sarat-asymmetrica/dockvedic/internal/site"
	"github.com/sarat-asymmetrica/dockvedic/internal/workspace"
)

func receptorLigand() (*model.Model, *model.Model) {
	receptor := &model.Model{Name: "receptor", Atoms: []model.Atom{
		{Index: 0, Coord: geom.Coord{X: 0, Y: 0, Z: 0}, VdwRadius: 1.7, IsAcceptor: true},
	}}
	ligand := &model.Model{Name: "ligand", Atoms: []model.Atom{
		{Index: 0, Coord: geom.Coord{X: 3, Y: 0, Z: 0}, VdwRadius: 1.7, ParentIndex: -1},
	}}
	return receptor, ligand
}

func TestVdwIdxSFScoresNearbyReceptorAtom(t *testing.T) {
	ws := workspace.New()
	receptor, ligand := receptorLigand()
	ws.AddModels(receptor, ligand)

	vdw := scoring.NewVdwIdxSF("vdw")
	vdw.Register(ws)

	raw := vdw.RawScore()
	assert.NotEqual(t, 0.0, raw, "atoms within range should produce a non-zero VdW contribution")
}

func TestVdwIdxSFZeroWhenNoLigand(t *testing.T) {
	ws := workspace.New()
	vdw := scoring.NewVdwIdxSF("vdw")
	vdw.Register(ws)
	assert.Equal(t, 0.0, vdw.RawScore())
}

func TestPolarIdxSFRequiresComplementaryDonorAcceptor(t *testing.T) {
	ws := workspace.New()
	receptor, ligand := receptorLigand()
	ligand.Atoms[0].IsDonor = true
	ws.AddModels(receptor, ligand)

	polar := scoring.NewPolarIdxSF("polar")
	polar.Register(ws)
	raw := polar.RawScore()
	assert.Less(t, raw, 0.0, "a complementary donor/acceptor pair in range should score favorably (negative)")
}

func TestConstSFReturnsFixedValue(t *testing.T) {
	c := scoring.NewConstSF("offset", -5.0)
	assert.Equal(t, -5.0, c.RawScore())
	assert.Equal(t, -5.0, c.Score())
}

func TestCavityRestraintSFPenalisesOutsideAtoms(t *testing.T) {
	base := grid.NewBaseGrid(geom.Coord{}, geom.Vector{X: 1, Y: 1, Z: 1}, 5, 5, 5)
	cavity := grid.NewRealGrid(base)
	cavity.SetSphere(geom.Coord{X: 2, Y: 2, Z: 2}, 1.0, 1.0, true)
	ds := site.NewDockingSite(cavity)

	ws := workspace.New()
	ws.AddModels(&model.Model{}, &model.Model{Atoms: []model.Atom{
		{Coord: geom.Coord{X: 2, Y: 2, Z: 2}},
		{Coord: geom.Coord{X: 100, Y: 100, Z: 100}},
	}})
	ws.SetDockingSite(ds)

	cr := scoring.NewCavityRestraintSF("cavity")
	cr.Register(ws)
	assert.Greater(t, cr.RawScore(), 0.0, "an atom far outside the cavity should accrue a penalty")
}

func TestSFAggSumsChildrenAndReportsScoreMap(t *testing.T) {
	agg := scoring.NewSFAgg("total")
	a := scoring.NewConstSF("a", 1.0)
	b := scoring.NewConstSF("b", 2.0)
	agg.Add(a)
	agg.Add(b)

	assert.Equal(t, 3.0, agg.Score())

	sm := make(workspace.ScoreMap)
	agg.ScoreMap(sm)
	require.Contains(t, sm, "a")
	require.Contains(t, sm, "b")
	assert.Equal(t, 3.0, sm["score.total"])
}
