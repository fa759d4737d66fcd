// Package registry holds the in-memory binding registry: every symbol
// of a parsed coverage checklist, indexed for lookup and grouped by
// catalog section. The registry is loaded once from a document and is
// read-only afterwards.
package registry

import (
	"sort"
	"sync"

	"github.com/bindcov/bindcov/pkg/capi"
	"github.com/bindcov/bindcov/pkg/checklist"
)

// Registry maps native symbol names to their binding records.
type Registry struct {
	mu sync.RWMutex

	// bySymbol maps symbol names to records: "mpv_create" → record
	bySymbol map[string]checklist.Record

	// bySection groups symbols by catalog section. Symbols unknown to
	// the catalog are collected under the empty section key.
	bySection map[capi.Section][]string

	// order preserves document order for deterministic listings.
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		bySymbol:  make(map[string]checklist.Record),
		bySection: make(map[capi.Section][]string),
	}
}

// Load builds a registry from a parsed checklist document.
// Duplicate symbols cannot occur here; the parser enforces uniqueness.
func Load(doc *checklist.Document) *Registry {
	r := New()
	for _, rec := range doc.Records() {
		r.add(rec)
	}
	return r
}

func (r *Registry) add(rec checklist.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bySymbol[rec.Symbol] = rec
	r.order = append(r.order, rec.Symbol)

	section := capi.Section("")
	if sym, ok := capi.Lookup(rec.Symbol); ok {
		section = sym.Section
	}
	r.bySection[section] = append(r.bySection[section], rec.Symbol)
}

// Lookup finds the record for a symbol name.
func (r *Registry) Lookup(name string) (checklist.Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.bySymbol[name]
	return rec, ok
}

// Count returns the number of registered symbols.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bySymbol)
}

// Symbols returns all registered symbol names in document order.
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Section returns the symbols of one catalog section in document
// order. The empty section holds symbols unknown to the catalog.
func (r *Registry) Section(section capi.Section) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	syms := r.bySection[section]
	out := make([]string, len(syms))
	copy(out, syms)
	return out
}

// Reconciliation classifies registry content against the API catalog.
type Reconciliation struct {
	// Bound and Unbound are checklist symbols known to the catalog.
	Bound   []string
	Unbound []string

	// Unknown are checklist symbols the catalog has never heard of,
	// typically typos or removed upstream entry points.
	Unknown []string

	// Missing are catalog symbols absent from the checklist.
	Missing []string
}

// Reconcile compares the registry with the API surface catalog.
// All slices are sorted for stable output.
func (r *Registry) Reconcile() Reconciliation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rec Reconciliation
	for _, name := range r.order {
		if _, ok := capi.Lookup(name); !ok {
			rec.Unknown = append(rec.Unknown, name)
			continue
		}
		if r.bySymbol[name].Bound {
			rec.Bound = append(rec.Bound, name)
		} else {
			rec.Unbound = append(rec.Unbound, name)
		}
	}
	for _, sym := range capi.Surface() {
		if _, ok := r.bySymbol[sym.Name]; !ok {
			rec.Missing = append(rec.Missing, sym.Name)
		}
	}

	sort.Strings(rec.Bound)
	sort.Strings(rec.Unbound)
	sort.Strings(rec.Unknown)
	sort.Strings(rec.Missing)
	return rec
}
