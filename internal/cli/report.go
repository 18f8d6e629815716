package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Manage stored conflict reports",
	Long: `List, inspect, and delete reports stored by 'check --save'.

Reports live under $DECONFLICT_ROOT/reports (default ~/.deconflict/reports).`,
}

var reportLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List stored reports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		result, err := env.engine.ListReports(context.Background())
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(w, result)
		}

		PrintSection(w, "Stored Reports")
		if len(result.Reports) == 0 {
			PrintEmptyState(w, "No reports found")
			return nil
		}

		rows := make([][]string, 0, len(result.Reports))
		for _, r := range result.Reports {
			rows = append(rows, []string{
				r.ID,
				r.Scenario,
				string(r.Status),
				fmt.Sprintf("%d", r.Conflicts),
				fmt.Sprintf("%g", r.Buffer),
				r.Mode,
			})
		}
		PrintTable(w, []string{"ID", "Scenario", "Status", "Conflicts", "Buffer", "Mode"}, rows)
		return nil
	},
}

var reportShowCmd = &cobra.Command{
	Use:   "show <report-id>",
	Short: "Show a stored report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		entry, err := env.engine.ShowReport(context.Background(), args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(w, entry)
		}

		PrintSection(w, "Report "+entry.ID)
		PrintLabelValue(w, "Scenario", entry.Scenario)
		PrintLabelValue(w, "Generated", entry.GeneratedAt.Format(time.RFC3339))
		PrintLabelValue(w, "Safety buffer", fmt.Sprintf("%g", entry.Buffer))
		PrintLabelValue(w, "Mode", entry.Mode)
		PrintLabelValue(w, "Fingerprint", entry.Fingerprint)
		fmt.Fprintln(w)
		printReport(w, entry.Report)
		return nil
	},
}

var reportRmCmd = &cobra.Command{
	Use:   "rm <report-id>...",
	Short: "Delete stored reports",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := context.Background()
		deleted := make([]string, 0, len(args))
		for _, id := range args {
			if err := env.engine.DeleteReport(ctx, id); err != nil {
				return err
			}
			deleted = append(deleted, id)
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(w, map[string][]string{"deleted": deleted})
		}
		for _, id := range deleted {
			PrintSuccess(w, "Deleted report "+id)
		}
		return nil
	},
}

func init() {
	reportCmd.AddCommand(reportLsCmd)
	reportCmd.AddCommand(reportShowCmd)
	reportCmd.AddCommand(reportRmCmd)
}
