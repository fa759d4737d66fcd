package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable writes the report as a styled terminal table.
func (r *Report) RenderTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Section", "Bound", "Total", "Coverage"})
	for _, sc := range r.Sections {
		t.AppendRow(table.Row{sc.Title, formatBound(sc), sc.Total, formatPercent(sc.Percent)})
	}
	t.AppendFooter(table.Row{"Total", formatBound(r.Total), r.Total.Total, formatPercent(r.Total.Percent)})
	t.Render()

	if len(r.Unknown) > 0 {
		_, _ = fmt.Fprintf(w, "Unknown symbols: %s\n", strings.Join(r.Unknown, ", "))
	}
	if len(r.Missing) > 0 {
		_, _ = fmt.Fprintf(w, "Missing from checklist: %s\n", strings.Join(r.Missing, ", "))
	}
}

// RenderMarkdown writes the report as a markdown table.
func (r *Report) RenderMarkdown(w io.Writer) {
	title := "Binding coverage"
	if r.API != "" {
		title = fmt.Sprintf("%s binding coverage", r.API)
	}
	_, _ = fmt.Fprintf(w, "# %s\n\n", title)

	if r.Binding != "" {
		_, _ = fmt.Fprintf(w, "**Binding**: %s\n", r.Binding)
	}
	if r.APIVersion != "" {
		_, _ = fmt.Fprintf(w, "**API version**: %s\n", r.APIVersion)
	}
	if r.Binding != "" || r.APIVersion != "" {
		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintln(w, "| Section | Bound | Total | Coverage |")
	_, _ = fmt.Fprintln(w, "| --- | --- | --- | --- |")
	for _, sc := range r.Sections {
		_, _ = fmt.Fprintf(w, "| %s | %s | %d | %s |\n",
			sc.Title, formatBound(sc), sc.Total, formatPercent(sc.Percent))
	}
	_, _ = fmt.Fprintf(w, "| **Total** | %s | %d | %s |\n",
		formatBound(r.Total), r.Total.Total, formatPercent(r.Total.Percent))

	if len(r.Unknown) > 0 {
		_, _ = fmt.Fprintf(w, "\nUnknown symbols: %s\n", strings.Join(r.Unknown, ", "))
	}
	if len(r.Missing) > 0 {
		_, _ = fmt.Fprintf(w, "\nMissing from checklist: %s\n", strings.Join(r.Missing, ", "))
	}
}

// RenderJSON writes the report as indented JSON.
func (r *Report) RenderJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func formatBound(sc SectionCoverage) string {
	if sc.Internal > 0 {
		return fmt.Sprintf("%d (%d internal)", sc.Bound, sc.Internal)
	}
	return fmt.Sprintf("%d", sc.Bound)
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
