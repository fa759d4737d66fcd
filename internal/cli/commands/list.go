package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bindcov/bindcov/internal/cli/output"
	"github.com/bindcov/bindcov/internal/registry"
	"github.com/bindcov/bindcov/pkg/capi"
	"github.com/bindcov/bindcov/pkg/checklist"
)

// listOptions holds the list command filters.
type listOptions struct {
	bound    bool
	unbound  bool
	internal bool
	section  string
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List checklist entries",
		Long: `List the entries of the coverage checklist, optionally filtered by
binding state, visibility, or API section.`,
		Example: `  # All entries
  bindcov list

  # Only symbols still waiting for a binding
  bindcov list --unbound

  # Bound property symbols as JSON
  bindcov list --bound --section properties --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.bound, "bound", false, "Only bound symbols")
	cmd.Flags().BoolVar(&opts.unbound, "unbound", false, "Only unbound symbols")
	cmd.Flags().BoolVar(&opts.internal, "internal", false, "Only internal-use symbols")
	cmd.Flags().StringVar(&opts.section, "section", "", "Only symbols of one API section")

	_ = cmd.RegisterFlagCompletionFunc("section", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, s := range capi.Sections() {
			names = append(names, string(s))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	if opts.bound && opts.unbound {
		return fmt.Errorf("--bound and --unbound are mutually exclusive")
	}

	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	reg, _, err := cmdCtx.loadRegistry()
	if err != nil {
		return err
	}

	records := filterRecords(reg, opts)

	if r.EffectiveMode() == output.ModeJSON {
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(listJSON(records))
	}

	for _, rec := range records {
		r.Println(checklist.FormatRecord(rec))
	}
	return nil
}

func filterRecords(reg *registry.Registry, opts *listOptions) []checklist.Record {
	names := reg.Symbols()
	if opts.section != "" {
		names = reg.Section(capi.Section(opts.section))
	}

	var out []checklist.Record
	for _, name := range names {
		rec, ok := reg.Lookup(name)
		if !ok {
			continue
		}
		if opts.bound && !rec.Bound {
			continue
		}
		if opts.unbound && rec.Bound {
			continue
		}
		if opts.internal && !rec.Internal {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// listEntry is the JSON shape of one listed record.
type listEntry struct {
	Symbol   string `json:"symbol"`
	Bound    bool   `json:"bound"`
	Internal bool   `json:"internal"`
	Section  string `json:"section,omitempty"`
	Note     string `json:"note,omitempty"`
}

func listJSON(records []checklist.Record) []listEntry {
	out := make([]listEntry, 0, len(records))
	for _, rec := range records {
		entry := listEntry{
			Symbol:   rec.Symbol,
			Bound:    rec.Bound,
			Internal: rec.Internal,
			Note:     rec.Note,
		}
		if sym, ok := capi.Lookup(rec.Symbol); ok {
			entry.Section = string(sym.Section)
		}
		out = append(out, entry)
	}
	return out
}
