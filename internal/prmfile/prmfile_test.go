package prmfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarat-asymmetrica/dockvedic/internal/chrom"
	"github.com/sarat-asymmetrica/dockvedic/internal/geom"
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/prmfile"
	"github.com/sarat-asymmetrica/dockvedic/internal/randsrc"
)

func TestParseFileReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.prm")
	require.NoError(t, os.WriteFile(path, []byte("[vdw]\nSCORING_FUNCTION=ConstSF\n"), 0o644))

	src, err := prmfile.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"vdw"}, src.GetSectionList())
}

func TestParseFileMissingFileReturnsError(t *testing.T) {
	_, err := prmfile.ParseFile(filepath.Join(t.TempDir(), "missing.prm"))
	assert.Error(t, err)
}

const sample = `
# a minimal scoring-function section
[vdw]
SCORING_FUNCTION=VdwIdxSF
WEIGHT=1.5

[polar]
SCORING_FUNCTION=PolarIdxSF
WEIGHT=2.0

[restraint]
SCORING_FUNCTION=CavityRestraintSF
LIGAND_IDX=0

vdw@WEIGHT=0.75
`

func TestParseBuildsSectionsAndQueuedParams(t *testing.T) {
	src, err := prmfile.Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, []string{"vdw", "polar", "restraint"}, src.GetSectionList())

	src.SetSection("vdw")
	assert.True(t, src.IsParameterPresent("SCORING_FUNCTION"))
	assert.Equal(t, "VdwIdxSF", src.GetParameterValueAsString("SCORING_FUNCTION"))
	assert.Equal(t, "1.5", src.GetParameterValueAsString("WEIGHT"))

	queued := src.QueuedParams()
	require.Len(t, queued, 1)
	assert.Equal(t, prmfile.QueuedParam{Target: "vdw", Param: "WEIGHT", Value: "0.75"}, queued[0])
}

func TestParseRejectsKeyOutsideSection(t *testing.T) {
	_, err := prmfile.Parse("WEIGHT=1.0\n")
	assert.Error(t, err)
}

func TestParseRejectsMissingEquals(t *testing.T) {
	_, err := prmfile.Parse("[vdw]\nnotakeyvalue\n")
	assert.Error(t, err)
}

func TestCreateSFAggFromSourceBuildsTermsWithParameters(t *testing.T) {
	src, err := prmfile.Parse(sample)
	require.NoError(t, err)

	agg, err := prmfile.CreateSFAggFromSource(src, "SCORE", "")
	require.NoError(t, err)
	assert.Len(t, agg.Children(), 3)

	for _, c := range agg.Children() {
		if c.GetFullName() == "vdw" {
			assert.InDelta(t, 1.5, c.Weight(), 1e-9)
		}
		if c.GetFullName() == "polar" {
			assert.InDelta(t, 2.0, c.Weight(), 1e-9)
		}
	}

	prmfile.ApplyQueuedParams(src, agg)
	for _, c := range agg.Children() {
		if c.GetFullName() == "vdw" {
			assert.InDelta(t, 0.75, c.Weight(), 1e-9, "section@param form must override after construction")
		}
	}
}

func TestCreateSFAggFromSourceRequiresKnownSectionsWhenStrict(t *testing.T) {
	src, err := prmfile.Parse("[unrelated]\nFOO=bar\n")
	require.NoError(t, err)
	_, err = prmfile.CreateSFAggFromSource(src, "SCORE", "unrelated")
	assert.Error(t, err)
}

func TestCreateSFRejectsUnknownClass(t *testing.T) {
	_, err := prmfile.CreateSF("NotARealSF", "x")
	assert.Error(t, err)
}

const protocol = `
[seed]
TRANSFORM=RandomPopTransform
POPSIZE=8

[anneal]
TRANSFORM=SimAnnTransform
NBLOCKS=2
STEPS=5
`

func TestCreateTransformAggFromSourceBuildsStagesInOrder(t *testing.T) {
	src, err := prmfile.Parse(protocol)
	require.NoError(t, err)

	m := &model.Model{Atoms: []model.Atom{{Index: 0, Coord: geom.Coord{X: 1, Y: 1, Z: 1}}}}
	c := chrom.NewChromosome()
	require.NoError(t, c.Add(chrom.NewRigidBody(m, randsrc.New(2), 1.0, 1.0)))

	agg, err := prmfile.CreateTransformAggFromSource(src, "PROTOCOL", "", c, randsrc.New(3))
	require.NoError(t, err)
	require.Len(t, agg.Children(), 2)
	assert.Equal(t, "seed", agg.Children()[0].GetFullName())
	assert.Equal(t, "anneal", agg.Children()[1].GetFullName())
}

func TestCreateTransformRejectsUnknownClass(t *testing.T) {
	_, err := prmfile.CreateTransform("NotARealTransform", "x", nil, nil)
	assert.Error(t, err)
}
