// Package checklist implements the binding coverage checklist format:
// a markdown document of `- [ ]`/`- [X]` lines naming backtick-quoted
// native symbols, grouped into sections by blank lines. The package
// provides the document model, a strict parser, a lenient linter, and a
// canonical renderer. Parsing then rendering a canonical document is
// the identity.
package checklist

// InternalNote is the annotation the format uses to mark symbols that
// are bound but not exposed by the public wrapper surface.
const InternalNote = "not public, internal use only"

// Record is one checklist entry: a native symbol and its binding state.
type Record struct {
	// Symbol is the native entry point name, e.g. "mpv_create".
	Symbol string

	// Bound reports whether the symbol has been exposed by the binding
	// layer. There are exactly two states; the parser rejects anything
	// that is not `[ ]` or `[X]`.
	Bound bool

	// Internal marks records annotated with InternalNote.
	Internal bool

	// Note carries any other parenthetical annotation verbatim.
	// Empty for records with no annotation or the internal annotation.
	Note string

	// Line is the 1-based source line the record was parsed from.
	// Zero for records constructed programmatically.
	Line int
}

// Annotation returns the parenthetical annotation the record renders
// with, or "" when it has none.
func (r Record) Annotation() string {
	if r.Internal {
		return InternalNote
	}
	return r.Note
}

// Section is a blank-line-delimited group of records. Title is empty
// for positional sections (the observed artifact does not label its
// groups); an optional `## heading` is preserved when present.
type Section struct {
	Title   string
	Records []Record
}

// Meta is the optional YAML frontmatter of a checklist document.
type Meta struct {
	API        string `yaml:"api"`
	APIVersion string `yaml:"api_version"`
	Binding    string `yaml:"binding"`
}

// Document is a parsed checklist.
type Document struct {
	// Title is the text of the top-level `# heading`.
	Title string

	// Meta holds frontmatter values, nil when the document has none.
	Meta *Meta

	Sections []Section
}

// Records returns all records of the document in order.
func (d *Document) Records() []Record {
	var out []Record
	for _, sec := range d.Sections {
		out = append(out, sec.Records...)
	}
	return out
}

// Count returns the total number of records.
func (d *Document) Count() int {
	n := 0
	for _, sec := range d.Sections {
		n += len(sec.Records)
	}
	return n
}

// Lookup finds a record by symbol name.
func (d *Document) Lookup(symbol string) (Record, bool) {
	for _, sec := range d.Sections {
		for _, rec := range sec.Records {
			if rec.Symbol == symbol {
				return rec, true
			}
		}
	}
	return Record{}, false
}
