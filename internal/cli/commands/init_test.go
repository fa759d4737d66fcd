package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bindcov/bindcov/pkg/capi"
	"github.com/bindcov/bindcov/pkg/checklist"
)

func TestNewCatalogDocument(t *testing.T) {
	doc := NewCatalogDocument("")

	assert.Equal(t, capi.Count(), doc.Count(), "document should cover the whole catalog")
	assert.Len(t, doc.Sections, len(capi.Sections()))
	assert.Nil(t, doc.Meta, "no binding name means no frontmatter")

	for _, rec := range doc.Records() {
		assert.False(t, rec.Bound, "fresh checklist entries start unchecked")
	}

	// Internal catalog symbols carry the annotation.
	rec, ok := doc.Lookup("mpv_free")
	require.True(t, ok)
	assert.True(t, rec.Internal)
}

func TestNewCatalogDocumentWithBinding(t *testing.T) {
	doc := NewCatalogDocument("libmpv2")

	require.NotNil(t, doc.Meta)
	assert.Equal(t, "libmpv", doc.Meta.API)
	assert.Equal(t, "libmpv2", doc.Meta.Binding)
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverage.md")
	t.Setenv("BINDCOV_CHECKLIST", path)
	t.Setenv("BINDCOV_OUTPUT", "markdown")

	out, err := executeCommand(NewInitCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "created")

	// The generated file parses back to the full catalog.
	doc, err := checklist.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, capi.Count(), doc.Count())
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	path := setupChecklist(t, testChecklist)

	_, err := executeCommand(NewInitCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// The original content is untouched.
	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, testChecklist, string(content))
}

func TestInitCommandForce(t *testing.T) {
	path := setupChecklist(t, testChecklist)

	_, err := executeCommand(NewInitCommand(), "--force")
	require.NoError(t, err)

	doc, err := checklist.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, capi.Count(), doc.Count())
}
