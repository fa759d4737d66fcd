package checklist

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Render writes the document in canonical form: frontmatter first when
// present, then the top-level heading, then sections separated by one
// blank line. Bound entries render as `[X]` regardless of the marker
// case they were parsed from. Rendering a parsed canonical document
// reproduces its input byte for byte.
func Render(doc *Document, w io.Writer) error {
	var b strings.Builder

	if doc.Meta != nil {
		raw, err := yaml.Marshal(doc.Meta)
		if err != nil {
			return fmt.Errorf("failed to marshal frontmatter: %w", err)
		}
		b.WriteString("---\n")
		b.Write(raw)
		b.WriteString("---\n")
		if doc.Title != "" || len(doc.Sections) > 0 {
			b.WriteString("\n")
		}
	}

	if doc.Title != "" {
		b.WriteString("# ")
		b.WriteString(doc.Title)
		b.WriteString("\n")
	}

	for i, sec := range doc.Sections {
		if doc.Title != "" || i > 0 {
			b.WriteString("\n")
		}
		if sec.Title != "" {
			b.WriteString("## ")
			b.WriteString(sec.Title)
			b.WriteString("\n")
		}
		for _, rec := range sec.Records {
			b.WriteString(FormatRecord(rec))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderString renders the document to a string.
func RenderString(doc *Document) (string, error) {
	var b strings.Builder
	if err := Render(doc, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FormatRecord renders a single entry line without the trailing newline.
func FormatRecord(rec Record) string {
	marker := " "
	if rec.Bound {
		marker = "X"
	}
	line := fmt.Sprintf("- [%s] `%s`", marker, rec.Symbol)
	if ann := rec.Annotation(); ann != "" {
		line += fmt.Sprintf(" (%s)", ann)
	}
	return line
}
