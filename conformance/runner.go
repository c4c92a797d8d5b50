package conformance

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"trigger/character"
	"trigger/eval"
	"trigger/parser"
	"trigger/types"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Value      types.Value
	Error      error
}

type baseSnapshot struct {
	state character.State
	err   error
}

// Runner executes conformance tests
type Runner struct {
	options []eval.Option
	bases   map[*TestSuite]baseSnapshot // decoded suite snapshots
}

// NewRunner creates a test runner. Options are passed to every evaluation.
func NewRunner(opts ...eval.Option) *Runner {
	return &Runner{
		options: opts,
		bases:   make(map[*TestSuite]baseSnapshot),
	}
}

// baseState decodes the suite's shared snapshot once per suite
func (r *Runner) baseState(suite *TestSuite) (character.State, error) {
	if base, ok := r.bases[suite]; ok {
		return base.state, base.err
	}
	var base baseSnapshot
	if suite.Character.Kind != 0 {
		base.err = suite.Character.Decode(&base.state)
	}
	r.bases[suite] = base
	return base.state, base.err
}

// environment builds the snapshot a test evaluates against
func (r *Runner) environment(test LoadedTest) (*character.Character, error) {
	var base character.State
	if test.Suite != nil {
		var err error
		base, err = r.baseState(test.Suite)
		if err != nil {
			return nil, fmt.Errorf("suite character: %w", err)
		}
	}
	var overlay *yaml.Node
	if test.Test.HasCharacter() {
		overlay = &test.Test.Character
	}
	c, err := character.Overlay(base, overlay)
	if err != nil {
		return nil, fmt.Errorf("test character: %w", err)
	}
	return c, nil
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	if test.Test.Expr == "" {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: "no expr",
		}
	}

	env, err := r.environment(test)
	if err != nil {
		return TestResult{
			Test:  test,
			Error: err,
		}
	}

	v, evalErr := eval.EvaluateSource(test.Test.Expr, env, r.options...)
	passed, err := checkExpectation(test.Test.Expect, v, evalErr)
	return TestResult{
		Test:   test,
		Passed: passed,
		Value:  v,
		Error:  err,
	}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// checkExpectation checks if the result matches the expected outcome
func checkExpectation(expect Expectation, v types.Value, evalErr error) (bool, error) {
	if expect.IsEmpty() {
		return false, fmt.Errorf("no expectation specified")
	}

	// Check for expected error
	if expect.Error != "" {
		if evalErr == nil {
			return false, fmt.Errorf("expected error %s, got value: %v", expect.Error, v)
		}
		if err := matchError(expect.Error, evalErr); err != nil {
			return false, err
		}
		if expect.Contains != "" && !strings.Contains(evalErr.Error(), expect.Contains) {
			return false, fmt.Errorf("expected error containing %q, got %q", expect.Contains, evalErr.Error())
		}
		return true, nil
	}

	// Check for normal result
	if evalErr != nil {
		return false, fmt.Errorf("unexpected error: %v", evalErr)
	}

	if expect.Value != nil {
		want, err := convertYAMLValue(expect.Value)
		if err != nil {
			return false, fmt.Errorf("failed to convert expected value: %w", err)
		}
		if !sameValue(want, v) {
			return false, fmt.Errorf("expected %v, got %v", want, v)
		}
	}

	if expect.Type != "" {
		if got := types.KindOf(v).String(); got != expect.Type {
			return false, fmt.Errorf("expected type %s, got %s", expect.Type, got)
		}
	}

	if expect.Contains != "" && !strings.Contains(v.String(), expect.Contains) {
		return false, fmt.Errorf("expected value containing %q, got %v", expect.Contains, v)
	}

	return true, nil
}

func matchError(name string, err error) error {
	if name == ParseError {
		var parseErr *parser.ParseError
		if !errors.As(err, &parseErr) {
			return fmt.Errorf("expected parse error, got %v", err)
		}
		return nil
	}

	code, ok := types.ErrorFromString(strings.ToUpper(name))
	if !ok {
		return fmt.Errorf("unknown error code: %s", name)
	}
	if got := types.CodeOf(err); got != code {
		return fmt.Errorf("expected error %s, got %s (%v)", code, got, err)
	}
	return nil
}

// convertYAMLValue converts a decoded YAML scalar or sequence to a value
func convertYAMLValue(v interface{}) (types.Value, error) {
	switch val := v.(type) {
	case int:
		return types.NewInt(val), nil
	case float64:
		return types.NewDouble(val), nil
	case string:
		return types.NewStr(val), nil
	case bool:
		return types.NewBool(val), nil
	case []interface{}:
		elements := make([]string, len(val))
		for i, elem := range val {
			s, ok := elem.(string)
			if !ok {
				return nil, fmt.Errorf("list element %d is %T, want string", i, elem)
			}
			elements[i] = s
		}
		return types.NewStrList(elements), nil
	default:
		return nil, fmt.Errorf("unsupported YAML type: %T", v)
	}
}

// sameValue is strict equality for results: the variants must match, and
// doubles compare within the language's tolerance with NaN equal to NaN
func sameValue(want, got types.Value) bool {
	switch w := want.(type) {
	case types.DoubleValue:
		g, ok := got.(types.DoubleValue)
		if !ok {
			return false
		}
		if math.IsNaN(w.Val) || math.IsNaN(g.Val) {
			return math.IsNaN(w.Val) && math.IsNaN(g.Val)
		}
		if math.IsInf(w.Val, 0) {
			return w.Val == g.Val
		}
		return math.Abs(w.Val-g.Val) < types.Epsilon
	case types.StrListValue:
		g, ok := got.(types.StrListValue)
		if !ok || g.Len() != w.Len() {
			return false
		}
		ws, gs := w.Elements(), g.Elements()
		for i := range ws {
			if ws[i] != gs[i] {
				return false
			}
		}
		return true
	default:
		return want == got
	}
}
