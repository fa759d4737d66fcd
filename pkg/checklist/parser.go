package checklist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// recordPattern matches one checklist entry:
// `- [ ]` or `- [X]`, a backtick-quoted symbol, an optional annotation.
// A lowercase `x` is accepted on input and canonicalized on render.
var recordPattern = regexp.MustCompile("^- \\[([ xX])\\] `([A-Za-z_][A-Za-z0-9_]*)`(?: \\(([^)]*)\\))?$")

// ParseError reports a line that does not match the checklist grammar.
type ParseError struct {
	File    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// DuplicateSymbolError reports a symbol that appears more than once in
// a document. Symbol names are unique within a checklist.
type DuplicateSymbolError struct {
	File      string
	Symbol    string
	Line      int
	FirstLine int
}

func (e *DuplicateSymbolError) Error() string {
	msg := fmt.Sprintf("duplicate symbol %q (first seen on line %d)", e.Symbol, e.FirstLine)
	if e.File != "" {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, msg)
	}
	return fmt.Sprintf("line %d: %s", e.Line, msg)
}

// Parse reads a checklist document. It is strict: the first malformed
// line or duplicate symbol aborts with an error. Use Lint to collect
// every problem in one pass.
func Parse(r io.Reader) (*Document, error) {
	return parse(r, "")
}

// ParseFile parses a checklist from disk, attributing errors to path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open checklist: %w", err)
	}
	defer f.Close()
	return parse(f, path)
}

func parse(r io.Reader, file string) (*Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read checklist: %w", err)
	}

	meta, body, offset, err := extractFrontmatter(string(content), file)
	if err != nil {
		return nil, err
	}

	doc := &Document{Meta: meta}
	seen := make(map[string]int)

	var current Section
	open := false

	flush := func() {
		if open {
			doc.Sections = append(doc.Sections, current)
			current = Section{}
			open = false
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(body))
	lineNo := offset
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t")

		switch {
		case line == "":
			flush()

		case strings.HasPrefix(line, "## "):
			flush()
			current.Title = strings.TrimSpace(line[3:])
			open = true

		case strings.HasPrefix(line, "# "):
			if doc.Title != "" {
				return nil, &ParseError{File: file, Line: lineNo, Message: "multiple top-level headings"}
			}
			if doc.Count() > 0 || open {
				return nil, &ParseError{File: file, Line: lineNo, Message: "top-level heading must precede all entries"}
			}
			doc.Title = strings.TrimSpace(line[2:])

		default:
			rec, perr := parseRecord(line, lineNo, file)
			if perr != nil {
				return nil, perr
			}
			if first, dup := seen[rec.Symbol]; dup {
				return nil, &DuplicateSymbolError{File: file, Symbol: rec.Symbol, Line: lineNo, FirstLine: first}
			}
			seen[rec.Symbol] = lineNo
			current.Records = append(current.Records, rec)
			open = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read checklist: %w", err)
	}
	flush()

	return doc, nil
}

// parseRecord parses a single entry line.
func parseRecord(line string, lineNo int, file string) (Record, *ParseError) {
	m := recordPattern.FindStringSubmatch(line)
	if m == nil {
		return Record{}, &ParseError{
			File:    file,
			Line:    lineNo,
			Message: fmt.Sprintf("malformed line %q: expected `- [ ]` or `- [X]` followed by a backtick-quoted symbol", line),
		}
	}

	rec := Record{
		Symbol: m[2],
		Bound:  m[1] == "X" || m[1] == "x",
		Line:   lineNo,
	}
	if note := m[3]; note != "" {
		if note == InternalNote {
			rec.Internal = true
		} else {
			rec.Note = note
		}
	}
	return rec, nil
}

// IssueKind classifies a lint finding.
type IssueKind string

const (
	IssueMalformed IssueKind = "malformed"
	IssueDuplicate IssueKind = "duplicate"
)

// Issue is one problem found by Lint.
type Issue struct {
	Kind    IssueKind
	Line    int
	Message string
}

// Lint parses a checklist leniently: malformed lines are skipped and
// reported, duplicate symbols are kept out of the document and
// reported. The returned document contains every well-formed, first-
// occurrence record.
func Lint(r io.Reader) (*Document, []Issue, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read checklist: %w", err)
	}

	meta, body, offset, err := extractFrontmatter(string(content), "")
	if err != nil {
		// Frontmatter problems are reported as a single issue on line 1;
		// the body is still linted without it.
		return lintBody(string(content), 0, nil, []Issue{{
			Kind:    IssueMalformed,
			Line:    1,
			Message: err.Error(),
		}})
	}
	return lintBody(body, offset, meta, nil)
}

func lintBody(body string, offset int, meta *Meta, issues []Issue) (*Document, []Issue, error) {
	doc := &Document{Meta: meta}
	seen := make(map[string]int)

	var current Section
	open := false
	flush := func() {
		if open {
			doc.Sections = append(doc.Sections, current)
			current = Section{}
			open = false
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(body))
	lineNo := offset
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t")

		switch {
		case line == "":
			flush()

		case strings.HasPrefix(line, "## "):
			flush()
			current.Title = strings.TrimSpace(line[3:])
			open = true

		case strings.HasPrefix(line, "# "):
			if doc.Title == "" && doc.Count() == 0 && !open {
				doc.Title = strings.TrimSpace(line[2:])
			} else {
				issues = append(issues, Issue{
					Kind:    IssueMalformed,
					Line:    lineNo,
					Message: "unexpected top-level heading",
				})
			}

		default:
			rec, perr := parseRecord(line, lineNo, "")
			if perr != nil {
				issues = append(issues, Issue{Kind: IssueMalformed, Line: lineNo, Message: perr.Message})
				continue
			}
			if first, dup := seen[rec.Symbol]; dup {
				issues = append(issues, Issue{
					Kind:    IssueDuplicate,
					Line:    lineNo,
					Message: fmt.Sprintf("duplicate symbol %q (first seen on line %d)", rec.Symbol, first),
				})
				continue
			}
			seen[rec.Symbol] = lineNo
			current.Records = append(current.Records, rec)
			open = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read checklist: %w", err)
	}
	flush()

	return doc, issues, nil
}
