package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"trigger/character"
	"trigger/eval"
)

const (
	prompt      = "trigger> "
	historyFile = ".trigger_history"
)

// lineReader yields one line of input per call; io.EOF ends the session
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// linerReader edits lines on an interactive terminal, with history
type linerReader struct {
	state    *liner.State
	histPath string
}

func newLinerReader() *linerReader {
	r := &linerReader{state: liner.NewLiner()}
	r.state.SetCtrlCAborts(true)
	if home, err := os.UserHomeDir(); err == nil {
		r.histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(r.histPath); err == nil {
			_, _ = r.state.ReadHistory(f)
			_ = f.Close()
		}
	}
	return r
}

func (r *linerReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err == nil && strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}
	return line, err
}

func (r *linerReader) Close() error {
	if r.histPath != "" {
		if f, err := os.Create(r.histPath); err == nil {
			_, _ = r.state.WriteHistory(f)
			_ = f.Close()
		}
	}
	return r.state.Close()
}

// scanReader reads piped input without prompting
type scanReader struct {
	scanner *bufio.Scanner
}

func (r *scanReader) ReadLine(string) (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *scanReader) Close() error { return nil }

func newReplCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl [flags]",
		Short: "Evaluate expressions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger(cmd)
			c, err := loadCharacter(opts.character, log)
			if err != nil {
				return err
			}

			var in lineReader
			if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				in = newLinerReader()
			} else {
				in = &scanReader{scanner: bufio.NewScanner(cmd.InOrStdin())}
			}
			defer in.Close()

			s := &session{
				in:      in,
				out:     cmd.OutOrStdout(),
				errOut:  cmd.ErrOrStderr(),
				log:     log,
				env:     c,
				options: opts.evalOptions(log),
			}
			return s.run()
		},
	}
	cmd.Flags().StringVarP(&opts.character, "character", "c", "", "character snapshot (YAML)")
	return cmd
}

// session is one REPL run
type session struct {
	in      lineReader
	out     io.Writer
	errOut  io.Writer
	log     zerolog.Logger
	env     *character.Character
	options []eval.Option
}

func (s *session) run() error {
	for {
		line, err := s.in.ReadLine(prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := s.meta(line); quit {
				return nil
			}
			continue
		}

		v, err := eval.EvaluateSource(line, s.env, s.options...)
		if err != nil {
			fmt.Fprintln(s.errOut, err)
			continue
		}
		fmt.Fprintln(s.out, v)
	}
}

// meta handles a ":" command and reports whether the session should end
func (s *session) meta(line string) bool {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case ":quit", ":q":
		return true
	case ":char":
		if len(fields) != 2 {
			fmt.Fprintln(s.errOut, "usage: :char <file.yaml>")
			return false
		}
		c, err := loadCharacter(fields[1], s.log)
		if err != nil {
			fmt.Fprintln(s.errOut, err)
			return false
		}
		s.env = c
		fmt.Fprintf(s.out, "loaded %s\n", fields[1])
	default:
		fmt.Fprintln(s.errOut, "unknown command; try :char <file> or :quit")
	}
	return false
}
