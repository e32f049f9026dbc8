package dockio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarat-asymmetrica/dockvedic/internal/dockio"
)

const fixtureYAML = `
name: ligand
atoms:
  - name: C1
    element: C
    x: 0
    y: 0
    z: 0
    vdw_radius: 1.7
  - name: C2
    element: C
    x: 1.5
    y: 0
    z: 0
    vdw_radius: 1.7
  - name: O1
    element: O
    x: 3.0
    y: 0
    z: 0
    is_acceptor: true
bonds:
  - atom1: 0
    atom2: 1
    rotatable: false
  - atom1: 1
    atom2: 2
    rotatable: true
`

func TestParseModelFixtureBuildsModel(t *testing.T) {
	f, err := dockio.ParseModelFixture(strings.NewReader(fixtureYAML))
	require.NoError(t, err)

	m := f.ToModel()
	assert.Equal(t, "ligand", m.Name)
	assert.Len(t, m.Atoms, 3)
	assert.True(t, m.Flexible)
	assert.InDelta(t, 1.5, m.Atoms[1].Coord.X, 1e-9)
	assert.True(t, m.Atoms[2].IsAcceptor)
}

func TestModelFixtureRotatableBonds(t *testing.T) {
	f, err := dockio.ParseModelFixture(strings.NewReader(fixtureYAML))
	require.NoError(t, err)

	bonds := f.RotatableBonds()
	require.Len(t, bonds, 1)
	assert.Equal(t, [2]int{1, 2}, bonds[0])
}

func TestParseModelFixtureRejectsMalformedYAML(t *testing.T) {
	_, err := dockio.ParseModelFixture(strings.NewReader("atoms: [this is not valid"))
	assert.Error(t, err)
}
