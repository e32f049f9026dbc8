package dockio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarat-asymmetrica/dockvedic/internal/chrom"
	"github.com/sarat-asymmetrica/dockvedic/internal/dockio"
	"github.com/sarat-asymmetrica/dockvedic/internal/geom"
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/randsrc"
	"github.com/sarat-asymmetrica/dockvedic/internal/workspace"
)

func sampleModel() *model.Model {
	return &model.Model{
		Name: "ligand",
		Atoms: []model.Atom{
			{Index: 0, Element: "C", Coord: geom.Coord{X: 1, Y: 2, Z: 3}},
			{Index: 1, Element: "O", Coord: geom.Coord{X: 4, Y: 5, Z: 6}},
		},
		Bonds: []model.Bond{{Atom1: 0, Atom2: 1}},
	}
}

func TestSDSinkWritesOneRecordPerCall(t *testing.T) {
	var buf bytes.Buffer
	sink := dockio.NewSDSink(&buf)

	require.NoError(t, sink.Render(sampleModel(), workspace.ScoreMap{"score.total": -12.5}))
	require.NoError(t, sink.Render(sampleModel(), workspace.ScoreMap{"score.total": -9.0}))

	assert.Equal(t, 2, sink.RecordsWritten())
	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "$$$$"))
	assert.Contains(t, out, "M  END")
	assert.Contains(t, out, "<score.total>")
}

func TestRestartRecordRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	rec := dockio.RestartRecord{RunID: "run-1", Vector: []float64{1, 2, 3, 0, 0, 0, 1}, Score: -42.0}
	require.NoError(t, dockio.WriteRestartRecord(&buf, rec))

	got, err := dockio.ReadRestartRecord(&buf)
	require.NoError(t, err)
	assert.Equal(t, rec.RunID, got.RunID)
	assert.Equal(t, rec.Score, got.Score)
	assert.Equal(t, rec.Vector, got.Vector)
}

func TestRestoreChromosomeAppliesVectorToModel(t *testing.T) {
	m := &model.Model{Atoms: []model.Atom{{Index: 0, Coord: geom.Coord{X: 0, Y: 0, Z: 0}}}}
	c := chrom.NewChromosome()
	require.NoError(t, c.Add(chrom.NewRigidBody(m, randsrc.New(1), 2.0, 1.0)))

	rec := dockio.RestartRecord{Vector: []float64{5, 0, 0, 1, 0, 0, 0}}
	require.NoError(t, dockio.RestoreChromosome(c, rec))

	assert.InDelta(t, 5.0, m.Atoms[0].Coord.X, 1e-9)
}
