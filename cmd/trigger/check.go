package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trigger/conformance"
)

func newCheckCmd(opts *options) *cobra.Command {
	var showPassed bool

	cmd := &cobra.Command{
		Use:   "check [flags] <suite-files-or-dirs>...",
		Short: "Run YAML expression suites",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger(cmd)
			tests, err := conformance.Load(args...)
			if err != nil {
				return err
			}
			log.Debug().Int("tests", len(tests)).Strs("paths", args).Msg("loaded suites")

			runner := conformance.NewRunner(opts.evalOptions(log)...)
			results := runner.RunAll(tests)

			out := cmd.OutOrStdout()
			for _, r := range results {
				name := r.Test.File + ": " + r.Test.Test.Name
				switch {
				case r.Skipped:
					fmt.Fprintf(out, "SKIP %s (%s)\n", name, r.SkipReason)
				case r.Passed:
					if showPassed {
						fmt.Fprintf(out, "PASS %s\n", name)
					}
				default:
					fmt.Fprintf(out, "FAIL %s\n     %s\n     %v\n", name, r.Test.Test.Expr, r.Error)
				}
			}

			stats := conformance.ComputeStats(results)
			fmt.Fprintln(out, conformance.FormatStats(stats))
			if stats.Failed > 0 {
				return fmt.Errorf("%d of %d tests failed", stats.Failed, stats.Total)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showPassed, "show-passed", false, "list passing tests too")
	return cmd
}
