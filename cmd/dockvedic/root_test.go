package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCommandUse(t *testing.T) {
	cmd := newRootCommand()
	assert.Equal(t, "dockvedic", cmd.Use)
}

func TestNewRootCommandPersistentFlags(t *testing.T) {
	cmd := newRootCommand()
	pf := cmd.PersistentFlags()

	assert.NotNil(t, pf.Lookup("config"))
	assert.NotNil(t, pf.Lookup("log-level"))
}

func TestNewRootCommandSubcommandsMounted(t *testing.T) {
	cmd := newRootCommand()
	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"validate", "score", "run"}, names)
}

func TestNewRootCommandSilencesUsageAndErrors(t *testing.T) {
	cmd := newRootCommand()
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
}
