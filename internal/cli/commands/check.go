package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bindcov/bindcov/internal/registry"
	"github.com/bindcov/bindcov/pkg/checklist"
)

// checkOptions holds the check command flags.
type checkOptions struct {
	strict bool
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the checklist against the API catalog",
		Long: `Validate the coverage checklist: report malformed lines, duplicate
symbols, and symbols unknown to the native API catalog. With --strict,
catalog symbols missing from the checklist are reported as well.

Exits non-zero when any finding is reported.`,
		Example: `  # Validate the checklist
  bindcov check

  # Also require the checklist to cover the whole catalog
  bindcov check --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Require every catalog symbol to be listed")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	f, err := os.Open(cmdCtx.Cfg.Checklist)
	if err != nil {
		return fmt.Errorf("failed to open checklist: %w", err)
	}
	defer f.Close()

	doc, issues, err := checklist.Lint(f)
	if err != nil {
		return err
	}

	findings := 0
	for _, issue := range issues {
		findings++
		r.Println(fmt.Sprintf("%s:%d: %s", cmdCtx.Cfg.Checklist, issue.Line, issue.Message))
	}

	rec := registry.Load(doc).Reconcile()
	for _, name := range rec.Unknown {
		findings++
		r.Println(fmt.Sprintf("%s: symbol `%s` is not part of the API catalog", cmdCtx.Cfg.Checklist, name))
	}
	if opts.strict {
		for _, name := range rec.Missing {
			findings++
			r.Println(fmt.Sprintf("%s: catalog symbol `%s` is missing from the checklist", cmdCtx.Cfg.Checklist, name))
		}
	}

	if findings > 0 {
		return fmt.Errorf("%d finding(s)", findings)
	}
	r.Success("checklist is valid")
	return nil
}
