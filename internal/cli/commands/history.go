package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bindcov/bindcov/internal/cli/output"
)

// historyOptions holds the history command flags.
type historyOptions struct {
	limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	opts := &historyOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded coverage snapshots",
		Long: `List coverage snapshots recorded with "bindcov snapshot", newest
first.`,
		Example: `  # Latest ten snapshots
  bindcov history

  # Full history as JSON
  bindcov history --limit 0 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 10, "Maximum snapshots to show (0 for all)")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *historyOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	store, err := openStore(cmdCtx.Cfg.StatePath)
	if err != nil {
		return err
	}
	defer store.Close()

	snaps, err := store.List(opts.limit)
	if err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(snaps)

	case output.ModeMarkdown:
		r.Println("| Taken | Bound | Total | Coverage |")
		r.Println("| --- | --- | --- | --- |")
		for _, snap := range snaps {
			r.Println(fmt.Sprintf("| %s | %d | %d | %.1f%% |",
				snap.TakenAt.Format(time.RFC3339), snap.Bound, snap.Total, snap.Percent()))
		}
		return nil

	default:
		if len(snaps) == 0 {
			r.Println("no snapshots recorded")
			return nil
		}
		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Taken", "Bound", "Total", "Coverage"})
		for _, snap := range snaps {
			t.AppendRow(table.Row{
				snap.TakenAt.Format("2006-01-02 15:04:05"),
				snap.Bound,
				snap.Total,
				fmt.Sprintf("%.1f%%", snap.Percent()),
			})
		}
		t.Render()
		return nil
	}
}
