package commands

import (
	"github.com/spf13/cobra"

	"github.com/bindcov/bindcov/internal/cli/output"
	"github.com/bindcov/bindcov/internal/report"
)

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show binding coverage per API section",
		Long: `Parse the coverage checklist and report how much of the native API
surface the binding layer exposes, broken down by section.

Output adapts to environment:
  - Terminal: styled table
  - Piped/Scripted: markdown (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # Show coverage (auto-detect output format)
  bindcov status

  # Coverage as JSON
  bindcov status --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd)
		},
	}
}

func runStatus(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	reg, doc, err := cmdCtx.loadRegistry()
	if err != nil {
		return err
	}

	rep := report.New(reg, doc.Meta)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return rep.RenderJSON(r.Writer())
	case output.ModeMarkdown:
		rep.RenderMarkdown(r.Writer())
	default:
		rep.RenderTable(r.Writer())
	}
	return nil
}
