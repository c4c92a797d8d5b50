// Command trigger evaluates MUGEN trigger expressions against character
// snapshots and runs YAML expression suites.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"trigger/character"
	"trigger/eval"
	"trigger/trace"
)

// options are the flags shared by every subcommand
type options struct {
	verbose     bool
	trace       bool
	traceFilter []string
	character   string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "trigger",
		Short:         "Evaluate MUGEN trigger expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")
	cmd.PersistentFlags().BoolVar(&opts.trace, "trace", false, "trace every evaluation step to stderr")
	cmd.PersistentFlags().StringSliceVar(&opts.traceFilter, "trace-filter", nil, "only trace nodes matching these glob patterns (e.g. 'var*')")

	cmd.AddCommand(
		newEvalCmd(opts),
		newCheckCmd(opts),
		newReplCmd(opts),
	)
	return cmd
}

// logger writes human-readable records to the command's stderr
func (o *options) logger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.InfoLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}
	if o.trace {
		level = zerolog.TraceLevel
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
	out := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	return zerolog.New(out).Level(level)
}

// evalOptions turns the trace flags into evaluator options
func (o *options) evalOptions(log zerolog.Logger) []eval.Option {
	if !o.trace {
		return nil
	}
	return []eval.Option{eval.WithTracer(trace.New(log, o.traceFilter))}
}

// loadCharacter reads the --character snapshot, or an empty one
func loadCharacter(path string, log zerolog.Logger) (*character.Character, error) {
	if path == "" {
		return character.New(character.State{})
	}
	c, err := character.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load character: %w", err)
	}
	log.Debug().Str("path", path).Str("name", c.State().Name).Msg("loaded character")
	return c, nil
}
