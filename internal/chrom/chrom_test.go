package chrom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarat-asymmetrica/dockvedic/internal/chrom"
	"github.com/sarat-asymmetrica/dockvedic/internal/geom"
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/randsrc"
)

func ligandModel() *model.Model {
	return &model.Model{Atoms: []model.Atom{
		{Index: 0, Coord: geom.Coord{X: 0, Y: 0, Z: 0}},
		{Index: 1, Coord: geom.Coord{X: 1, Y: 0, Z: 0}},
		{Index: 2, Coord: geom.Coord{X: 0, Y: 1, Z: 0}},
	}}
}

func TestRigidBodyResetRestoresCoordsAfterMutate(t *testing.T) {
	m := ligandModel()
	var _ chrom.Element = chrom.NewRigidBody(m, randsrc.New(1), 2.0, 1.0) // interface satisfaction
	rb := chrom.NewRigidBody(m, randsrc.New(1), 2.0, 1.0)
	before := append([]geom.Coord(nil), m.Atoms[0].Coord, m.Atoms[1].Coord, m.Atoms[2].Coord)

	rb.Mutate(1.0)
	vec := make([]float64, 0, rb.Length())
	vec = rb.AppendVector(vec)
	require.Len(t, vec, 7)

	rb.Reset()
	assert.Equal(t, before[0], m.Atoms[0].Coord)
}

func TestChromosomeSetVectorRejectsShortVector(t *testing.T) {
	c := chrom.NewChromosome()
	rb := chrom.NewRigidBody(ligandModel(), randsrc.New(2), 2.0, 1.0)
	require.NoError(t, c.Add(rb))
	err := c.SetVector([]float64{1, 2, 3})
	assert.Error(t, err)
}

func TestChromosomeVectorLengthMatchesElements(t *testing.T) {
	c := chrom.NewChromosome()
	m := ligandModel()
	src := randsrc.New(3)
	require.NoError(t, c.Add(chrom.NewRigidBody(m, src, 2.0, 1.0)))
	require.NoError(t, c.Add(chrom.NewDihedral(m, src, 0, 1, []int{2}, 0.5)))
	assert.Equal(t, 8, c.Length())
	assert.Equal(t, 2, c.XOverLength())
}

func TestDihedralRotatesAffectedAtomsOnly(t *testing.T) {
	m := ligandModel()
	src := randsrc.New(4)
	d := chrom.NewDihedral(m, src, 0, 1, []int{2}, 0.5)
	before := m.Atoms[0].Coord
	d.Mutate(1.0)
	assert.Equal(t, before, m.Atoms[0].Coord, "atom not in affected set must stay fixed")
}

func TestCompareVectorDetectsDuplicates(t *testing.T) {
	c := chrom.NewChromosome()
	m := ligandModel()
	require.NoError(t, c.Add(chrom.NewRigidBody(m, randsrc.New(5), 2.0, 1.0)))
	vec := c.GetVector()
	assert.InDelta(t, 0.0, c.CompareVector(vec), 1e-9)
	vec[0] += 100
	assert.Greater(t, c.CompareVector(vec), 1.0)
}

func TestCompareVectorReportsShapeMismatch(t *testing.T) {
	c := chrom.NewChromosome()
	require.NoError(t, c.Add(chrom.NewRigidBody(ligandModel(), randsrc.New(6), 2.0, 1.0)))
	assert.Equal(t, -1.0, c.CompareVector([]float64{1, 2, 3}))
}

func TestDihedralMutationPolicySelectsUniformStep(t *testing.T) {
	m := ligandModel()
	src := randsrc.New(7)
	d := chrom.NewDihedral(m, src, 0, 1, []int{2}, 0.1)
	d.SetMutationPolicy(chrom.DistUniform)
	for i := 0; i < 50; i++ {
		d.Mutate(1.0)
	}
	vec := d.AppendVector(nil)
	require.Len(t, vec, 1)
	assert.LessOrEqual(t, vec[0], 50*0.1+1e-9, "a uniform-policy dihedral should never exceed its bounded step")
}

func TestRigidBodyMutationPolicySelectsUniformStep(t *testing.T) {
	m := ligandModel()
	src := randsrc.New(8)
	rb := chrom.NewRigidBody(m, src, 1.0, 0.2)
	rb.SetMutationPolicy(chrom.DistUniform)
	rb.Mutate(1.0)
	vec := rb.AppendVector(nil)
	require.Len(t, vec, 7)
}

func TestReceptorDihedralWrapsToFoldSymmetry(t *testing.T) {
	m := ligandModel()
	src := randsrc.New(9)
	var _ chrom.Element = chrom.NewReceptorDihedral(m, src, 0, 1, []int{2}, 0.2, 3)
	rd := chrom.NewReceptorDihedral(m, src, 0, 1, []int{2}, 0.2, 3)
	for i := 0; i < 20; i++ {
		rd.Mutate(1.0)
	}
	vec := rd.AppendVector(nil)
	require.Len(t, vec, 1)
	period := 2 * 3.14159265358979 / 3
	assert.LessOrEqual(t, vec[0], period/2+1e-9)
	assert.GreaterOrEqual(t, vec[0], -period/2-1e-9)
}

func TestSolventOccupancyTogglesModelInactive(t *testing.T) {
	sm := &model.Model{}
	src := randsrc.New(10)
	var _ chrom.Element = chrom.NewSolventOccupancy(sm, src, 1.0)
	occ := chrom.NewSolventOccupancy(sm, src, 1.0)
	assert.False(t, sm.Inactive, "newly constructed occupancy element starts occupied")

	occ.Mutate(1.0) // flipProb 1.0 at relStepSize 1.0 always flips
	assert.True(t, sm.Inactive)

	occ.Reset()
	assert.False(t, sm.Inactive)
}

func TestSolventOccupancyCompareVectorIsBinary(t *testing.T) {
	sm := &model.Model{}
	occ := chrom.NewSolventOccupancy(sm, randsrc.New(11), 0)
	vec := occ.AppendVector(nil)
	pos := 0
	assert.Equal(t, 0.0, occ.CompareVector(vec, &pos))

	pos = 0
	assert.Equal(t, 1.0, occ.CompareVector([]float64{0.0}, &pos))
}
