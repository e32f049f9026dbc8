package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorePrintsTotalAndComponentBreakdown(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"score",
		testdataPath(t, "receptor.yaml"),
		testdataPath(t, "ligand.yaml"),
		testdataPath(t, "protocol.prm"),
		"--seed", "7",
	})

	require.NoError(t, cmd.Execute())

	got := out.String()
	assert.Contains(t, got, "score.total =")
	assert.Contains(t, got, "vdw")
	assert.Contains(t, got, "polar")
}

func TestScoreRejectsMissingLigandFixture(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"score",
		testdataPath(t, "receptor.yaml"),
		testdataPath(t, "does-not-exist.yaml"),
		testdataPath(t, "protocol.prm"),
	})

	assert.Error(t, cmd.Execute())
}
