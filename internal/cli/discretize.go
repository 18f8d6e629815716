package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/deconflict/internal/engine"
	"github.com/danieljhkim/deconflict/internal/scenario"
)

var discretizeCmd = &cobra.Command{
	Use:   "discretize <scenario-file>",
	Short: "Show the primary mission's timed segments",
	Long: `Split the primary mission of a scenario into its timed segments.

The mission window is divided evenly across the legs between consecutive
waypoints, regardless of leg length.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		s, err := scenario.Load(env.fs, args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", engine.ErrValidation, err)
		}

		result, err := env.engine.Discretize(context.Background(), &engine.DiscretizeRequest{Mission: s.Mission})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(w, result)
		}

		PrintSection(w, "Primary Segments")
		if len(result.Segments) == 0 {
			PrintEmptyState(w, result.Reason)
			return nil
		}

		rows := make([][]string, 0, len(result.Segments))
		for i, seg := range result.Segments {
			length := fmt.Sprintf("%.2f", seg.Length())
			if seg.IsDegenerate() {
				length = "hover"
			}
			rows = append(rows, []string{
				fmt.Sprintf("%d", i),
				seg.Start.String(),
				seg.End.String(),
				length,
				fmt.Sprintf("%.2fs", seg.Window.Start),
				fmt.Sprintf("%.2fs", seg.Window.End),
			})
		}
		PrintTable(w, []string{"#", "From", "To", "Length", "Start", "End"}, rows)
		return nil
	},
}
