package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarat-asymmetrica/dockvedic/internal/geom"
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
)

func TestAddPseudoAtomIsCentroid(t *testing.T) {
	m := &model.Model{Atoms: []model.Atom{
		{Index: 0, Coord: geom.Coord{X: 0, Y: 0, Z: 0}},
		{Index: 1, Coord: geom.Coord{X: 2, Y: 0, Z: 0}},
	}}
	idx := m.AddPseudoAtom([]int{0, 1}, "centroid")
	assert.Equal(t, 2, idx)
	assert.True(t, m.Atoms[idx].IsPseudo())
	assert.Equal(t, geom.Coord{X: 1, Y: 0, Z: 0}, m.Atoms[idx].Coord)
}

func TestSelectedIndices(t *testing.T) {
	m := &model.Model{Atoms: []model.Atom{
		{Index: 0, Selected: true},
		{Index: 1, Selected: false},
		{Index: 2, Selected: true},
	}}
	assert.Equal(t, []int{0, 2}, m.SelectedIndices())
}

func TestCentroid(t *testing.T) {
	m := &model.Model{Atoms: []model.Atom{
		{Coord: geom.Coord{X: 0, Y: 0, Z: 0}},
		{Coord: geom.Coord{X: 2, Y: 2, Z: 2}},
	}}
	assert.Equal(t, geom.Coord{X: 1, Y: 1, Z: 1}, m.Centroid())
}

func TestInteractionCenterAtomListDeconvolutesPseudoAtom(t *testing.T) {
	m := &model.Model{Atoms: []model.Atom{
		{Index: 0, Coord: geom.Coord{}},
		{Index: 1, Coord: geom.Coord{X: 1}},
	}}
	idx := m.AddPseudoAtom([]int{0, 1}, "pseudo")
	ic := model.InteractionCenter{Model: m, Atom1: idx, Atom2: -1, Atom3: -1}
	assert.ElementsMatch(t, []int{0, 1}, ic.AtomList())
}
