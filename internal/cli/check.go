package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/deconflict/internal/conflict"
	"github.com/danieljhkim/deconflict/internal/engine"
	"github.com/danieljhkim/deconflict/internal/scenario"
)

// checkOptions are the evaluation flags shared by check and demo.
type checkOptions struct {
	buffer         float64
	mode           string
	workers        int
	save           bool
	failOnConflict bool
}

func (o *checkOptions) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&o.buffer, "buffer", 0, "Safety buffer in coordinate units (default: scenario, then DECONFLICT_BUFFER, then 5)")
	cmd.Flags().StringVar(&o.mode, "mode", "", "Spatial test: exact or legacy (default: DECONFLICT_MODE, then exact)")
	cmd.Flags().IntVar(&o.workers, "workers", 0, "Parallel workers, 0 for one per CPU (default: DECONFLICT_WORKERS, then 1)")
	cmd.Flags().BoolVar(&o.save, "save", false, "Store the report for later 'report ls' and 'report show'")
	cmd.Flags().BoolVar(&o.failOnConflict, "fail-on-conflict", false, "Exit with an error when conflicts are detected")
}

var checkOpts checkOptions

var checkCmd = &cobra.Command{
	Use:   "check <scenario-file>",
	Short: "Check a primary mission against scheduled flights",
	Long: `Check a primary mission against the other flights in a scenario file.

The scenario may be JSON (.json) or msgpack (.msgpack, .mpk). The primary
mission's waypoints are split into evenly timed segments, and each segment is
compared against every segment of every other flight.

Examples:
  deconflict check mission.json
  deconflict check mission.json --buffer 10 --save
  deconflict check mission.json --mode legacy --json`,
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
		if s.Name == "" {
			s.Name = args[0]
		}

		return runCheck(cmd, env, s, &checkOpts)
	},
}

func init() {
	checkOpts.register(checkCmd)
}

// runCheck evaluates s and renders the result.
func runCheck(cmd *cobra.Command, env *environment, s *scenario.Scenario, opts *checkOptions) error {
	buffer, err := resolveBuffer(cmd.Flags().Changed("buffer"), opts.buffer, s, env.settings)
	if err != nil {
		return err
	}
	workers, err := resolveWorkers(cmd.Flags().Changed("workers"), opts.workers, env.settings)
	if err != nil {
		return err
	}

	modeName := env.settings.Mode
	if cmd.Flags().Changed("mode") {
		modeName = opts.mode
	}
	mode, err := conflict.ParseMode(modeName)
	if err != nil {
		return fmt.Errorf("%w: %w", engine.ErrValidation, err)
	}
	if mode == conflict.ModeLegacy {
		PrintWarning(cmd.ErrOrStderr(), "legacy mode only samples midpoints and endpoints and can miss crossings between segment interiors")
	}

	req := &engine.CheckRequest{
		Name:    s.Name,
		Mission: s.Mission,
		Flights: s.Flights,
		Buffer:  buffer,
		Mode:    mode,
		Workers: workers,
		Save:    opts.save,
	}

	result, err := env.engine.Check(context.Background(), req)
	if err != nil {
		return err
	}

	if jsonOutput {
		if err := outputJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else {
		printCheckResult(cmd.OutOrStdout(), s.Name, len(s.Flights), result)
		if env.logger.LogFile != "" {
			PrintLabelValue(cmd.OutOrStdout(), "Log file", env.logger.LogFile)
		}
	}

	if opts.failOnConflict && result.Report.HasConflicts() {
		return fmt.Errorf("%w: %s", engine.ErrConflict, PrintCount(len(result.Report.Records), "conflict", "conflicts"))
	}
	return nil
}

func printCheckResult(w io.Writer, name string, flights int, result *engine.CheckResult) {
	PrintSection(w, "Conflict Check: "+name)
	PrintLabelValue(w, "Safety buffer", fmt.Sprintf("%g", result.Buffer))
	PrintLabelValue(w, "Mode", string(result.Mode))
	PrintLabelValue(w, "Primary segments", fmt.Sprintf("%d", len(result.Segments)))
	PrintLabelValue(w, "Flights", fmt.Sprintf("%d", flights))
	fmt.Fprintln(w)

	printReport(w, result.Report)

	if result.Entry != nil {
		fmt.Fprintln(w)
		PrintLabelValue(w, "Saved as", result.Entry.ID)
	}
}

func printReport(w io.Writer, rep conflict.Report) {
	if !rep.HasConflicts() {
		PrintSuccess(w, "CLEAR: no conflicts detected")
		if rep.Reason != "" {
			PrintDetail(w, 1, rep.Reason)
		}
		return
	}

	PrintFailure(w, fmt.Sprintf("CONFLICT DETECTED: %s", PrintCount(len(rep.Records), "conflict", "conflicts")))
	fmt.Fprintln(w)
	for i, rec := range rep.Records {
		_, _ = labelColor.Fprintf(w, "  %d. %s segment %d\n", i+1, rec.FlightID, rec.FlightSegmentIndex)
		PrintDetail(w, 3, rec.Location())
		PrintDetail(w, 3, rec.TimeSummary())
		PrintDetail(w, 3, fmt.Sprintf("Closest approach %.3f at %s / %s, shared window %.2fs to %.2fs",
			rec.MinDistance, rec.ClosestPrimary, rec.ClosestOther, rec.Overlap.Start, rec.Overlap.End))
	}
}
