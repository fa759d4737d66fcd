package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bindcov/bindcov/pkg/checklist"
)

// fmtOptions holds the fmt command flags.
type fmtOptions struct {
	write bool
	check bool
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	opts := &fmtOptions{}

	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Canonicalize the checklist",
		Long: `Re-render the coverage checklist in canonical form: one fixed entry
format, [X] markers upper-cased, sections separated by single blank
lines. By default the result is printed to stdout.`,
		Example: `  # Print the canonical form
  bindcov fmt

  # Rewrite the file in place
  bindcov fmt --write

  # Fail when the file is not canonical (for CI)
  bindcov fmt --check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFmt(cmd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Rewrite the checklist file in place")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Exit non-zero when the file is not canonical")

	return cmd
}

func runFmt(cmd *cobra.Command, opts *fmtOptions) error {
	if opts.write && opts.check {
		return fmt.Errorf("--write and --check are mutually exclusive")
	}

	cmdCtx := NewCommandContext(cmd)
	path := cmdCtx.Cfg.Checklist

	original, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read checklist: %w", err)
	}

	doc, err := checklist.ParseFile(path)
	if err != nil {
		return err
	}

	canonical, err := checklist.RenderString(doc)
	if err != nil {
		return err
	}

	switch {
	case opts.check:
		if string(original) != canonical {
			return fmt.Errorf("%s is not in canonical form", path)
		}
		return nil

	case opts.write:
		if string(original) == canonical {
			return nil
		}
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to stat checklist: %w", err)
		}
		if err := os.WriteFile(path, []byte(canonical), info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to rewrite checklist: %w", err)
		}
		return nil

	default:
		_, err := fmt.Fprint(cmdCtx.Renderer.Writer(), canonical)
		return err
	}
}
