package checklist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RecordStates(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		wantSymbol   string
		wantBound    bool
		wantInternal bool
	}{
		{
			name:       "bound",
			line:       "- [X] `mpv_create`",
			wantSymbol: "mpv_create",
			wantBound:  true,
		},
		{
			name:       "unbound",
			line:       "- [ ] `mpv_wakeup`",
			wantSymbol: "mpv_wakeup",
			wantBound:  false,
		},
		{
			name:         "bound internal",
			line:         "- [X] `mpv_free` (not public, internal use only)",
			wantSymbol:   "mpv_free",
			wantBound:    true,
			wantInternal: true,
		},
		{
			name:       "lowercase marker accepted",
			line:       "- [x] `mpv_command`",
			wantSymbol: "mpv_command",
			wantBound:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(tt.line + "\n"))
			require.NoError(t, err)
			require.Equal(t, 1, doc.Count())

			rec := doc.Sections[0].Records[0]
			assert.Equal(t, tt.wantSymbol, rec.Symbol)
			assert.Equal(t, tt.wantBound, rec.Bound)
			assert.Equal(t, tt.wantInternal, rec.Internal)
			assert.Equal(t, 1, rec.Line)
		})
	}
}

func TestParse_MalformedLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "missing marker", line: "`mpv_create`"},
		{name: "bad marker body", line: "- [?] `mpv_create`"},
		{name: "missing backticks", line: "- [X] mpv_create"},
		{name: "plain text", line: "some prose"},
		{name: "marker without space", line: "-[X] `mpv_create`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.line + "\n"))
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, 1, perr.Line)
		})
	}
}

func TestParse_DuplicateSymbol(t *testing.T) {
	input := "- [X] `mpv_create`\n- [ ] `mpv_create`\n"
	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)

	var derr *DuplicateSymbolError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "mpv_create", derr.Symbol)
	assert.Equal(t, 2, derr.Line)
	assert.Equal(t, 1, derr.FirstLine)
}

func TestParse_Sections(t *testing.T) {
	input := `# libmpv coverage

- [X] ` + "`mpv_create`" + `
- [X] ` + "`mpv_initialize`" + `

- [ ] ` + "`mpv_hook_add`" + `
`
	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "libmpv coverage", doc.Title)
	require.Len(t, doc.Sections, 2)
	assert.Len(t, doc.Sections[0].Records, 2)
	assert.Len(t, doc.Sections[1].Records, 1)
}

func TestParse_SectionHeadings(t *testing.T) {
	input := `# coverage

## Lifecycle
- [X] ` + "`mpv_create`" + `

## Hooks
- [ ] ` + "`mpv_hook_add`" + `
`
	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "Lifecycle", doc.Sections[0].Title)
	assert.Equal(t, "Hooks", doc.Sections[1].Title)
}

func TestParse_HeadingAfterEntries(t *testing.T) {
	input := "- [X] `mpv_create`\n# late heading\n"
	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "precede")
}

func TestParse_Empty(t *testing.T) {
	doc, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Count())
	assert.Empty(t, doc.Sections)
}

func TestParse_Lookup(t *testing.T) {
	input := "- [X] `mpv_create`\n- [ ] `mpv_wakeup`\n"
	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	rec, ok := doc.Lookup("mpv_wakeup")
	require.True(t, ok)
	assert.False(t, rec.Bound)

	_, ok = doc.Lookup("mpv_destroy")
	assert.False(t, ok)
}

func TestLint_CollectsAllIssues(t *testing.T) {
	input := `# coverage

- [X] ` + "`mpv_create`" + `
- [?] ` + "`mpv_broken`" + `
- [X] ` + "`mpv_create`" + `
- [ ] ` + "`mpv_wakeup`" + `
`
	doc, issues, err := Lint(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, issues, 2)
	assert.Equal(t, IssueMalformed, issues[0].Kind)
	assert.Equal(t, 4, issues[0].Line)
	assert.Equal(t, IssueDuplicate, issues[1].Kind)
	assert.Equal(t, 5, issues[1].Line)

	// Well-formed first occurrences survive.
	assert.Equal(t, 2, doc.Count())
	_, ok := doc.Lookup("mpv_wakeup")
	assert.True(t, ok)
}

func TestParseError_Format(t *testing.T) {
	err := &ParseError{File: "coverage.md", Line: 7, Message: "malformed line"}
	assert.Equal(t, "coverage.md:7: malformed line", err.Error())

	err = &ParseError{Line: 7, Message: "malformed line"}
	assert.Equal(t, "line 7: malformed line", err.Error())
}
