package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bindcov/bindcov/internal/cli/config"
	"github.com/bindcov/bindcov/internal/cli/testutil"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "bindcov", cmd.Use)
	assert.Equal(t, Version, cmd.Version)

	subcommands := []string{
		"version", "status", "list", "check", "fmt",
		"diff", "init", "snapshot", "history", "serve", "completion",
	}
	registered := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		registered[sub.Name()] = true
	}
	for _, name := range subcommands {
		assert.True(t, registered[name], "subcommand %q should be registered", name)
	}
}

func TestRootCommandStatus(t *testing.T) {
	testutil.SetupTestProject(t)
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"status"})

	require.NoError(t, cmd.Execute())
	testutil.AssertContains(t, out.String(), "| Section |")
	testutil.AssertContains(t, out.String(), "libmpv")
	testutil.AssertNoANSI(t, out.String())
}

func TestRootCommandCheckFindings(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	t.Cleanup(config.ResetConfig)
	testutil.WriteChecklist(t, dir, "- [X] `mpv_create`\n- [X] `mpv_create`\n")

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"check"})

	err := cmd.Execute()
	require.Error(t, err)
	testutil.AssertContains(t, out.String(), "duplicate symbol")
}

func TestRootPersistentFlags(t *testing.T) {
	cmd := NewRootCmd()

	flags := []string{"config", "checklist", "state", "verbose", "output"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}
