// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/bindcov/bindcov/internal/cli/output"
)

// SampleChecklist is a small valid checklist used by command tests.
const SampleChecklist = `---
api: libmpv
api_version: "2.5"
binding: libmpv-go
---

# libmpv binding coverage

## Lifecycle
- [X] ` + "`mpv_create`" + `
- [X] ` + "`mpv_initialize`" + `
- [ ] ` + "`mpv_destroy`" + `
- [X] ` + "`mpv_free`" + ` (not public, internal use only)

## Commands
- [X] ` + "`mpv_command`" + `
- [ ] ` + "`mpv_command_async`" + `
`

// SetupTestProject creates a temporary project containing a checklist
// file and returns its root. The working directory is switched to the
// project root for the duration of the test.
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	WriteChecklist(t, tmpDir, SampleChecklist)
	t.Chdir(tmpDir)

	return tmpDir
}

// WriteChecklist writes content as the project's coverage.md and
// returns the file path.
func WriteChecklist(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "coverage.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write checklist: %v", err)
	}
	return path
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a renderer writing into buffers. Buffers are
// not terminals, so ModeAuto resolves to markdown.
func NewTestRenderer(mode output.Mode) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRenderer(out, errOut, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the captured stdout output.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the captured stderr output.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertContains checks that the string contains the expected substring.
func AssertContains(t *testing.T, s, expected string) {
	t.Helper()
	if !strings.Contains(s, expected) {
		t.Errorf("string %q does not contain expected %q", s, expected)
	}
}

// AssertNotContains checks that the string does not contain the substring.
func AssertNotContains(t *testing.T, s, unexpected string) {
	t.Helper()
	if strings.Contains(s, unexpected) {
		t.Errorf("string %q unexpectedly contains %q", s, unexpected)
	}
}
