package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarat-asymmetrica/dockvedic/internal/geom"
	"github.com/sarat-asymmetrica/dockvedic/internal/grid"
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
)

func TestBaseGridRoundTripsIndices(t *testing.T) {
	base := grid.NewBaseGrid(geom.Coord{}, geom.Vector{X: 0.5, Y: 0.5, Z: 0.5}, 10, 10, 10)
	c := base.CoordOf(3, 4, 5)
	ix, iy, iz := base.Indices(c)
	assert.Equal(t, 3, ix)
	assert.Equal(t, 4, iy)
	assert.Equal(t, 5, iz)
	assert.True(t, base.IsValid(ix, iy, iz))
	assert.False(t, base.IsValid(-1, 0, 0))
}

func TestSphereIndicesIncludesCenter(t *testing.T) {
	base := grid.NewBaseGrid(geom.Coord{}, geom.Vector{X: 1, Y: 1, Z: 1}, 5, 5, 5)
	idxs := base.SphereIndices(geom.Coord{X: 2, Y: 2, Z: 2}, 1.5)
	require.NotEmpty(t, idxs)
	center := base.Flatten(2, 2, 2)
	assert.Contains(t, idxs, center)
}

func TestRealGridSmoothedValueInterpolatesLinearly(t *testing.T) {
	base := grid.NewBaseGrid(geom.Coord{}, geom.Vector{X: 1, Y: 1, Z: 1}, 3, 3, 3)
	g := grid.NewRealGrid(base)
	g.SetValue(0, 0, 0, 0)
	g.SetValue(1, 0, 0, 10)
	mid := g.GetSmoothedValue(geom.Coord{X: 0.5, Y: 0, Z: 0})
	assert.InDelta(t, 5.0, mid, 1e-9)
}

func TestRealGridOutOfRangeReadsZero(t *testing.T) {
	base := grid.NewBaseGrid(geom.Coord{}, geom.Vector{X: 1, Y: 1, Z: 1}, 3, 3, 3)
	g := grid.NewRealGrid(base)
	assert.Equal(t, 0.0, g.GetValue(99, 99, 99))
}

func TestInteractionGridStampAndRetrieve(t *testing.T) {
	base := grid.NewBaseGrid(geom.Coord{}, geom.Vector{X: 1, Y: 1, Z: 1}, 5, 5, 5)
	ig := grid.NewInteractionGrid(base)
	m := &model.Model{Atoms: []model.Atom{{Index: 0, Coord: geom.Coord{X: 2, Y: 2, Z: 2}}}}
	center := &model.InteractionCenter{Model: m, Atom1: 0, Atom2: -1, Atom3: -1}
	ig.SetInteractionLists(center, 1.0)
	flat := base.Flatten(2, 2, 2)
	list := ig.GetInteractionList(flat)
	require.Len(t, list, 1)
	assert.Same(t, center, list[0])
}

func TestInteractionGridUniqueDedups(t *testing.T) {
	base := grid.NewBaseGrid(geom.Coord{}, geom.Vector{X: 1, Y: 1, Z: 1}, 5, 5, 5)
	ig := grid.NewInteractionGrid(base)
	m := &model.Model{Atoms: []model.Atom{{Index: 0, Coord: geom.Coord{X: 2, Y: 2, Z: 2}}}}
	center := &model.InteractionCenter{Model: m, Atom1: 0, Atom2: -1, Atom3: -1}
	ig.SetInteractionLists(center, 1.0)
	ig.SetInteractionLists(center, 1.0)
	ig.UniqueInteractionLists()
	flat := base.Flatten(2, 2, 2)
	assert.Len(t, ig.GetInteractionList(flat), 1)
}
