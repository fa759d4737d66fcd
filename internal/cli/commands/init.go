package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bindcov/bindcov/pkg/capi"
	"github.com/bindcov/bindcov/pkg/checklist"
)

// initOptions holds the init command flags.
type initOptions struct {
	force   bool
	binding string
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a fresh checklist from the API catalog",
		Long: `Write a new coverage checklist listing every symbol of the native API
catalog as unchecked, grouped by section. Internal-only symbols carry
their annotation. Refuses to overwrite an existing checklist unless
--force is given.`,
		Example: `  # Create coverage.md (or the configured checklist path)
  bindcov init

  # Name the binding in the frontmatter
  bindcov init --binding libmpv2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing checklist")
	cmd.Flags().StringVar(&opts.binding, "binding", "", "Binding name recorded in the frontmatter")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	cmdCtx := NewCommandContext(cmd)
	path := cmdCtx.Cfg.Checklist

	if _, err := os.Stat(path); err == nil && !opts.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	doc := NewCatalogDocument(opts.binding)

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create checklist directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create checklist: %w", err)
	}
	defer f.Close()

	if err := checklist.Render(doc, f); err != nil {
		return err
	}

	cmdCtx.Renderer.Success(fmt.Sprintf("created %s with %d symbols", path, doc.Count()))
	return nil
}

// NewCatalogDocument builds an all-unchecked checklist covering the
// whole API catalog.
func NewCatalogDocument(binding string) *checklist.Document {
	doc := &checklist.Document{
		Title: "libmpv client API coverage",
	}
	if binding != "" {
		doc.Meta = &checklist.Meta{API: "libmpv", Binding: binding}
	}

	for _, section := range capi.Sections() {
		sec := checklist.Section{Title: section.Title()}
		for _, sym := range capi.BySection(section) {
			sec.Records = append(sec.Records, checklist.Record{
				Symbol:   sym.Name,
				Internal: sym.Internal,
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc
}
