package main

import (
	"bytes"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", name)
}

func TestValidateReportsScoringFunctionAndProtocol(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"validate", testdataPath(t, "protocol.prm"), "--stage-sections", "anneal"})

	err := cmd.Execute()
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "scoring function: 2 term(s)")
	assert.Contains(t, got, "vdw")
	assert.Contains(t, got, "polar")
	assert.Contains(t, got, "transform pipeline: 1 stage(s)")
	assert.Contains(t, got, "anneal")
	assert.Contains(t, got, "OK")
}

func TestValidateRejectsMissingParameterFile(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"validate", filepath.Join(t.TempDir(), "missing.prm")})

	err := cmd.Execute()
	assert.Error(t, err)
}

func TestValidateRejectsUnknownSFSection(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"validate", testdataPath(t, "protocol.prm"), "--sf-sections", "nope"})

	err := cmd.Execute()
	assert.Error(t, err)
}
