package commands

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFmtCommandPrintsCanonicalForm(t *testing.T) {
	// Lowercase marker and trailing whitespace are canonicalized.
	setupChecklist(t, "# coverage\n\n- [x] `mpv_create`  \n- [ ] `mpv_destroy`\n")

	out, err := executeCommand(NewFmtCommand())
	require.NoError(t, err)
	assert.Equal(t, "# coverage\n\n- [X] `mpv_create`\n- [ ] `mpv_destroy`\n", out)
}

func TestFmtCommandCheck(t *testing.T) {
	t.Run("canonical file passes", func(t *testing.T) {
		setupChecklist(t, testChecklist)

		_, err := executeCommand(NewFmtCommand(), "--check")
		assert.NoError(t, err)
	})

	t.Run("non-canonical file fails", func(t *testing.T) {
		setupChecklist(t, "- [x] `mpv_create`\n")

		_, err := executeCommand(NewFmtCommand(), "--check")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not in canonical form")
	})
}

func TestFmtCommandWrite(t *testing.T) {
	path := setupChecklist(t, "- [x] `mpv_create`\n")

	_, err := executeCommand(NewFmtCommand(), "--write")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "- [X] `mpv_create`\n", string(content))
}

func TestFmtCommandWriteAndCheckExclusive(t *testing.T) {
	setupChecklist(t, testChecklist)

	_, err := executeCommand(NewFmtCommand(), "--write", "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}
