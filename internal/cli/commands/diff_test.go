package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bindcov/bindcov/pkg/checklist"
)

func mustParse(t *testing.T, content string) *checklist.Document {
	t.Helper()
	doc, err := checklist.Parse(strings.NewReader(content))
	require.NoError(t, err)
	return doc
}

func TestDiff(t *testing.T) {
	oldDoc := mustParse(t, "- [ ] `mpv_create`\n- [X] `mpv_destroy`\n- [X] `mpv_command`\n")

	t.Run("no changes", func(t *testing.T) {
		newDoc := mustParse(t, "- [ ] `mpv_create`\n- [X] `mpv_destroy`\n- [X] `mpv_command`\n")
		result := Diff(oldDoc, newDoc)
		assert.True(t, result.Empty())
	})

	t.Run("newly bound", func(t *testing.T) {
		newDoc := mustParse(t, "- [X] `mpv_create`\n- [X] `mpv_destroy`\n- [X] `mpv_command`\n")
		result := Diff(oldDoc, newDoc)
		assert.Equal(t, []string{"mpv_create"}, result.NewlyBound)
		assert.Empty(t, result.Regressed)
	})

	t.Run("regressed", func(t *testing.T) {
		newDoc := mustParse(t, "- [ ] `mpv_create`\n- [ ] `mpv_destroy`\n- [X] `mpv_command`\n")
		result := Diff(oldDoc, newDoc)
		assert.Equal(t, []string{"mpv_destroy"}, result.Regressed)
		assert.Empty(t, result.NewlyBound)
	})

	t.Run("added and removed", func(t *testing.T) {
		newDoc := mustParse(t, "- [ ] `mpv_create`\n- [X] `mpv_destroy`\n- [X] `mpv_wait_event`\n")
		result := Diff(oldDoc, newDoc)
		assert.Equal(t, []string{"mpv_wait_event"}, result.Added)
		assert.Equal(t, []string{"mpv_command"}, result.Removed)
		// A symbol added in bound state counts as newly bound too.
		assert.Equal(t, []string{"mpv_wait_event"}, result.NewlyBound)
	})

	t.Run("results are sorted", func(t *testing.T) {
		newDoc := mustParse(t, "- [X] `mpv_create`\n- [X] `mpv_destroy`\n- [X] `mpv_command`\n- [X] `mpv_wakeup`\n- [X] `mpv_abort_async_command`\n")
		result := Diff(oldDoc, newDoc)
		assert.Equal(t, []string{"mpv_abort_async_command", "mpv_wakeup"}, result.Added)
	})
}

func TestDiffCommand(t *testing.T) {
	t.Setenv("BINDCOV_OUTPUT", "markdown")

	dir := t.TempDir()
	oldPath := writeFile(t, dir, "old.md", "# coverage\n\n- [ ] `mpv_create`\n")
	newPath := writeFile(t, dir, "new.md", "# coverage\n\n- [X] `mpv_create`\n")

	out, err := executeCommand(NewDiffCommand(), oldPath, newPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Newly bound (1):")
	assert.Contains(t, out, "mpv_create")
}

func TestDiffCommandJSON(t *testing.T) {
	t.Setenv("BINDCOV_OUTPUT", "json")

	dir := t.TempDir()
	oldPath := writeFile(t, dir, "old.md", "- [X] `mpv_create`\n")
	newPath := writeFile(t, dir, "new.md", "- [ ] `mpv_create`\n")

	out, err := executeCommand(NewDiffCommand(), oldPath, newPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"regressed"`)
	assert.Contains(t, out, `"mpv_create"`)
}

func TestDiffCommandNoChanges(t *testing.T) {
	t.Setenv("BINDCOV_OUTPUT", "markdown")

	dir := t.TempDir()
	path := writeFile(t, dir, "same.md", "- [X] `mpv_create`\n")

	out, err := executeCommand(NewDiffCommand(), path, path)
	require.NoError(t, err)
	assert.Contains(t, out, "no changes")
}
