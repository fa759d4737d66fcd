package commands

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bindcov/bindcov/internal/cli/output"
	"github.com/bindcov/bindcov/pkg/checklist"
)

// DiffResult is the comparison of two checklist revisions.
type DiffResult struct {
	// NewlyBound symbols were unbound (or absent) before and are bound now.
	NewlyBound []string `json:"newly_bound,omitempty"`

	// Regressed symbols were bound before and are unbound now.
	Regressed []string `json:"regressed,omitempty"`

	// Added and Removed track symbols entering or leaving the checklist.
	Added   []string `json:"added,omitempty"`
	Removed []string `json:"removed,omitempty"`
}

// Empty reports whether the two revisions are equivalent.
func (d DiffResult) Empty() bool {
	return len(d.NewlyBound) == 0 && len(d.Regressed) == 0 &&
		len(d.Added) == 0 && len(d.Removed) == 0
}

// NewDiffCommand creates the diff command.
func NewDiffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare two checklist revisions",
		Long: `Compare two revisions of a coverage checklist and report symbols that
were newly bound, regressed to unbound, added, or removed.`,
		Example: `  # Compare the committed checklist against the working copy
  bindcov diff HEAD-coverage.md coverage.md

  # Machine-readable comparison
  bindcov diff old.md new.md --output json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args[0], args[1])
		},
	}
}

func runDiff(cmd *cobra.Command, oldPath, newPath string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	oldDoc, err := checklist.ParseFile(oldPath)
	if err != nil {
		return err
	}
	newDoc, err := checklist.ParseFile(newPath)
	if err != nil {
		return err
	}

	result := Diff(oldDoc, newDoc)

	if r.EffectiveMode() == output.ModeJSON {
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if result.Empty() {
		r.Println("no changes")
		return nil
	}
	printDiffGroup(r, "Newly bound", result.NewlyBound)
	printDiffGroup(r, "Regressed", result.Regressed)
	printDiffGroup(r, "Added", result.Added)
	printDiffGroup(r, "Removed", result.Removed)
	return nil
}

func printDiffGroup(r *output.Renderer, label string, symbols []string) {
	if len(symbols) == 0 {
		return
	}
	r.Println(fmt.Sprintf("%s (%d):", label, len(symbols)))
	for _, name := range symbols {
		r.Println("  " + name)
	}
}

// Diff compares two checklist documents.
func Diff(oldDoc, newDoc *checklist.Document) DiffResult {
	oldRecs := make(map[string]checklist.Record)
	for _, rec := range oldDoc.Records() {
		oldRecs[rec.Symbol] = rec
	}

	var result DiffResult
	seen := make(map[string]struct{})
	for _, rec := range newDoc.Records() {
		seen[rec.Symbol] = struct{}{}
		old, existed := oldRecs[rec.Symbol]
		switch {
		case !existed:
			result.Added = append(result.Added, rec.Symbol)
			if rec.Bound {
				result.NewlyBound = append(result.NewlyBound, rec.Symbol)
			}
		case rec.Bound && !old.Bound:
			result.NewlyBound = append(result.NewlyBound, rec.Symbol)
		case !rec.Bound && old.Bound:
			result.Regressed = append(result.Regressed, rec.Symbol)
		}
	}
	for symbol := range oldRecs {
		if _, ok := seen[symbol]; !ok {
			result.Removed = append(result.Removed, symbol)
		}
	}

	sort.Strings(result.NewlyBound)
	sort.Strings(result.Regressed)
	sort.Strings(result.Added)
	sort.Strings(result.Removed)
	return result
}
