package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trigger/character"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeCharacter(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "char.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestEvalCommand(t *testing.T) {
	out, _, err := run(t, "", "eval", "1 + 2 * 3")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	out, _, err = run(t, "", "eval", "abs(-3.5)")
	require.NoError(t, err)
	assert.Equal(t, "3.5\n", out)
}

func TestEvalWithCharacter(t *testing.T) {
	path := writeCharacter(t, "var: {0: \"5\"}\nctrl: true\n")

	out, _, err := run(t, "", "eval", "--character", path, "var(0) = 5 && ctrl")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestEvalError(t *testing.T) {
	_, _, err := run(t, "", "eval", "foobar")
	require.Error(t, err)
	assert.Equal(t, "Error while evaluating expression 'foobar': Unknown identifier 'foobar'", err.Error())
}

func TestEvalTrace(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	_, stderr, err := run(t, "", "eval", "--trace", "1 + 2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "evaluate expression")
	assert.Contains(t, stderr, "1 + 2")
}

func TestCheckCommand(t *testing.T) {
	out, _, err := run(t, "", "check", "../../conformance/testdata")
	require.NoError(t, err)
	assert.Contains(t, out, "0 failed")
	assert.NotContains(t, out, "FAIL")
}

func TestCheckReportsFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: broken
tests:
  - name: wrong
    expr: 1 + 1
    expect: {value: 3}
`), 0o644))

	out, _, err := run(t, "", "check", path)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "wrong")
	assert.Contains(t, out, "0 passed, 1 failed")
}

func TestReplPipedInput(t *testing.T) {
	path := writeCharacter(t, "time: 42\n")
	input := strings.Join([]string{
		"1 + 1",
		"",
		"nosuch",
		":char " + path,
		"time",
		":bogus",
		":quit",
		"2 + 2",
	}, "\n")

	out, stderr, err := run(t, input, "repl")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"2", "loaded " + path, "42"}, lines)
	assert.Contains(t, stderr, "Unknown identifier 'nosuch'")
	assert.Contains(t, stderr, "unknown command")
}

func TestReplEndsAtEOF(t *testing.T) {
	out, _, err := run(t, "3 * 3\n", "repl")
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)
}

func TestSessionCharUsage(t *testing.T) {
	env, err := character.New(character.State{})
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	s := &session{
		in:     &scanReader{scanner: bufio.NewScanner(strings.NewReader(":char\n:char /nonexistent/x.yaml\n"))},
		out:    &out,
		errOut: &errOut,
		log:    zerolog.Nop(),
		env:    env,
	}
	require.NoError(t, s.run())
	assert.Contains(t, errOut.String(), "usage: :char")
	assert.Contains(t, errOut.String(), "load character")
	assert.Same(t, env, s.env)
}
