// Package report computes binding coverage from a loaded registry and
// renders it as a styled table, markdown, or JSON.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/bindcov/bindcov/internal/registry"
	"github.com/bindcov/bindcov/pkg/capi"
	"github.com/bindcov/bindcov/pkg/checklist"
)

// SectionCoverage is the coverage of one catalog section.
type SectionCoverage struct {
	Section  capi.Section `json:"section"`
	Title    string       `json:"title"`
	Bound    int          `json:"bound"`
	Internal int          `json:"internal"`
	Total    int          `json:"total"`
	Percent  float64      `json:"percent"`
}

// Report is a full coverage report for one checklist.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	API        string `json:"api,omitempty"`
	APIVersion string `json:"api_version,omitempty"`
	Binding    string `json:"binding,omitempty"`

	Sections []SectionCoverage `json:"sections"`
	Total    SectionCoverage   `json:"total"`

	// Unknown are checklist symbols absent from the catalog; Missing
	// are catalog symbols absent from the checklist.
	Unknown []string `json:"unknown,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// New computes a coverage report. Section totals come from the catalog,
// so unbound symbols that the checklist omits entirely still count
// against coverage. meta may be nil.
func New(reg *registry.Registry, meta *checklist.Meta) *Report {
	r := &Report{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
	}
	if meta != nil {
		r.API = meta.API
		r.APIVersion = meta.APIVersion
		r.Binding = meta.Binding
	}

	for _, section := range capi.Sections() {
		sc := SectionCoverage{
			Section: section,
			Title:   section.Title(),
		}
		for _, sym := range capi.BySection(section) {
			sc.Total++
			rec, ok := reg.Lookup(sym.Name)
			if !ok || !rec.Bound {
				continue
			}
			sc.Bound++
			if rec.Internal || sym.Internal {
				sc.Internal++
			}
		}
		sc.Percent = percent(sc.Bound, sc.Total)
		r.Sections = append(r.Sections, sc)

		r.Total.Bound += sc.Bound
		r.Total.Internal += sc.Internal
		r.Total.Total += sc.Total
	}
	r.Total.Title = "Total"
	r.Total.Percent = percent(r.Total.Bound, r.Total.Total)

	rec := reg.Reconcile()
	r.Unknown = rec.Unknown
	r.Missing = rec.Missing

	return r
}

// Complete reports whether every catalog symbol is bound, internal
// ones included.
func (r *Report) Complete() bool {
	return r.Total.Bound == r.Total.Total
}

func percent(bound, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(bound) / float64(total) * 100
}
