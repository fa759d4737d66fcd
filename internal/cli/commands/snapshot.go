package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bindcov/bindcov/internal/report"
	"github.com/bindcov/bindcov/internal/state"
)

// NewSnapshotCommand creates the snapshot command.
func NewSnapshotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Record current coverage in the snapshot database",
		Long: `Compute coverage from the checklist and append it to the snapshot
database, so binding progress can be tracked over time with
"bindcov history".`,
		Example: `  bindcov snapshot`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnapshot(cmd)
		},
	}
}

func runSnapshot(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)

	reg, doc, err := cmdCtx.loadRegistry()
	if err != nil {
		return err
	}
	rep := report.New(reg, doc.Meta)

	store, err := openStore(cmdCtx.Cfg.StatePath)
	if err != nil {
		return err
	}
	defer store.Close()

	snap := snapshotFromReport(rep)
	if err := store.Save(snap); err != nil {
		return err
	}

	cmdCtx.Renderer.Success(fmt.Sprintf("recorded snapshot %s: %d/%d bound (%.1f%%)",
		snap.ID, snap.Bound, snap.Total, snap.Percent()))
	return nil
}

// openStore opens the snapshot database, creating its directory first.
func openStore(path string) (state.Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return nil, fmt.Errorf("failed to create state directory: %w", err)
			}
		}
	}
	return state.Open(path)
}

// snapshotFromReport converts a coverage report into a snapshot row.
func snapshotFromReport(rep *report.Report) *state.Snapshot {
	snap := &state.Snapshot{
		API:        rep.API,
		APIVersion: rep.APIVersion,
		Binding:    rep.Binding,
		Bound:      rep.Total.Bound,
		Internal:   rep.Total.Internal,
		Total:      rep.Total.Total,
	}
	for _, sc := range rep.Sections {
		snap.Sections = append(snap.Sections, state.SectionCount{
			Section:  string(sc.Section),
			Bound:    sc.Bound,
			Internal: sc.Internal,
			Total:    sc.Total,
		})
	}
	return snap
}
