package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbtile/internal/cli/styles"
)

var (
	historyLimit     int
	historyWorkspace string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show applied layout snapshots",
	Long: `List the layout batches recorded for a workspace, newest first.

The changed column counts windows that moved compared to the previous snapshot.

Examples:
  dumbtile history                    # Last 20 snapshots of the configured workspace
  dumbtile history -w dev -l 50       # Another workspace, more entries
  dumbtile history prune              # Drop snapshots past the retention period`,
	RunE: runHistory,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete snapshots older than database.retention_days",
	RunE:  runHistoryPrune,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every snapshot of the workspace",
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyPruneCmd, historyClearCmd)
	historyCmd.PersistentFlags().StringVarP(&historyWorkspace, "workspace", "w", "", "workspace name (default: layout.workspace)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum number of snapshots")
}

func historyTarget() (string, error) {
	app := GetApp()
	if app == nil {
		return "", fmt.Errorf("app not initialized")
	}
	if app.Snapshots == nil {
		return "", fmt.Errorf("snapshot history is disabled (database.enabled = false)")
	}
	if historyWorkspace != "" {
		return historyWorkspace, nil
	}
	return app.Config.Layout.Workspace, nil
}

func runHistory(_ *cobra.Command, _ []string) error {
	workspace, err := historyTarget()
	if err != nil {
		return err
	}
	app := GetApp()

	snaps, err := app.Snapshots.History(app.Ctx(), workspace, historyLimit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	if len(snaps) == 0 {
		fmt.Println(app.Theme.Subtle.Render("no snapshots for " + workspace))
		return nil
	}

	rows := styles.SnapshotRows(snaps)
	table := styles.NewStyledTable(app.Theme, styles.SnapshotTableColumns(), rows, 72, len(rows)+1)
	table.Blur()
	fmt.Println(table.View())
	return nil
}

func runHistoryPrune(_ *cobra.Command, _ []string) error {
	if _, err := historyTarget(); err != nil {
		return err
	}
	app := GetApp()

	removed, err := app.PruneSnapshots(app.Ctx())
	if err != nil {
		return err
	}
	fmt.Println(app.Theme.SuccessStyle.Render(fmt.Sprintf("%s removed %d snapshots", styles.IconCheck, removed)))
	return nil
}

func runHistoryClear(_ *cobra.Command, _ []string) error {
	workspace, err := historyTarget()
	if err != nil {
		return err
	}
	app := GetApp()

	if err := app.Snapshots.Delete(app.Ctx(), workspace); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	fmt.Println(app.Theme.SuccessStyle.Render(fmt.Sprintf("%s cleared %s", styles.IconCheck, workspace)))
	return nil
}
