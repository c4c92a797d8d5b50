package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"trigger/eval"
)

func newEvalCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [flags] <expression>...",
		Short: "Evaluate an expression and print its value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger(cmd)
			c, err := loadCharacter(opts.character, log)
			if err != nil {
				return err
			}

			src := strings.Join(args, " ")
			v, err := eval.EvaluateSource(src, c, opts.evalOptions(log)...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.character, "character", "c", "", "character snapshot (YAML)")
	return cmd
}
