package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/deconflict/internal/scenario"
)

var (
	demoOpts   checkOptions
	demoExport string
)

var demoCmd = &cobra.Command{
	Use:   "demo [name]",
	Short: "Run a built-in demonstration scenario",
	Long: fmt.Sprintf(`Run one of the built-in scenarios (%s), or all of them when no name is given.

  safe      one other drone flying well clear of the primary path
  conflict  one drone sharing the primary path, one passing within the buffer,
            and one crossing the same airspace after the mission has ended

Use --export to write a scenario to a file (.json or .msgpack) instead of
running it, as a starting point for your own scenarios.`, strings.Join(scenario.BuiltinNames(), ", ")),
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: scenario.BuiltinNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := scenario.BuiltinNames()
		if len(args) == 1 {
			names = args
		}

		env, err := newEnvironment(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if demoExport != "" {
			if len(names) != 1 {
				return fmt.Errorf("--export needs a scenario name (one of %s)", strings.Join(scenario.BuiltinNames(), ", "))
			}
			s, err := scenario.Builtin(names[0])
			if err != nil {
				return err
			}
			if err := scenario.Save(env.fs, demoExport, s); err != nil {
				return err
			}
			if !jsonOutput {
				PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Wrote scenario %q to %s", s.Name, demoExport))
			}
			return nil
		}

		for _, name := range names {
			s, err := scenario.Builtin(name)
			if err != nil {
				return err
			}
			if err := runCheck(cmd, env, s, &demoOpts); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	demoOpts.register(demoCmd)
	demoCmd.Flags().StringVar(&demoExport, "export", "", "Write the named scenario to this file instead of running it")
}
