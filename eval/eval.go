package eval

import (
	"strconv"

	"trigger/parser"
	"trigger/trace"
	"trigger/types"
)

// Evaluator walks a trigger expression tree against an Environment.
// It holds no state between calls and never writes to the environment.
type Evaluator struct {
	env    Environment
	tracer *trace.Tracer
}

// Option configures an Evaluator
type Option func(*Evaluator)

// WithTracer sends evaluation diagnostics to t
func WithTracer(t *trace.Tracer) Option {
	return func(e *Evaluator) {
		e.tracer = t
	}
}

// NewEvaluator creates an evaluator bound to env
func NewEvaluator(env Environment, opts ...Option) *Evaluator {
	e := &Evaluator{env: env}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate evaluates node against env. Any failure is returned as a
// *types.ExprError naming the source text of node.
func Evaluate(node parser.Expr, env Environment, opts ...Option) (types.Value, error) {
	return NewEvaluator(env, opts...).Evaluate(node)
}

// EvaluateSource parses src and evaluates it. Parse errors are returned
// unwrapped as *parser.ParseError.
func EvaluateSource(src string, env Environment, opts ...Option) (types.Value, error) {
	node, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return Evaluate(node, env, opts...)
}

// Evaluate is the wrapping entry point; see the package-level Evaluate
func (e *Evaluator) Evaluate(node parser.Expr) (types.Value, error) {
	v, err := e.Eval(node)
	if err != nil {
		return nil, &types.ExprError{Source: describe(node), Err: err}
	}
	return v, nil
}

// Eval evaluates node without adding source context to failures.
// Dispatch is over the closed set of parser node shapes.
func (e *Evaluator) Eval(node parser.Expr) (types.Value, error) {
	var (
		v   types.Value
		err error
	)

	switch n := node.(type) {
	case *parser.RangeExpr:
		v, err = e.evalRange(n)
	case *parser.IdentifierExpr:
		v, err = e.evalIdentifier(n)
	case *parser.KeywordExpr:
		v, err = e.evalKeyword(n)
	case *parser.StringExpr:
		v = types.NewStr(n.Value)
	case *parser.FunctionExpr:
		v, err = e.evalFunction(n)
	case *parser.NumberExpr:
		v, err = evalNumber(n)
	case *parser.InfixExpr:
		v, err = e.evalInfix(n)
	case *parser.UnaryExpr:
		v, err = e.evalUnary(n)
	default:
		err = types.Errorf(types.E_INVALID, "Unknown expression: %s", describe(node))
	}

	if e.tracer.IsEnabled() {
		if err != nil {
			e.tracer.Failure(describe(node), err)
		} else {
			e.tracer.Result(describe(node), v)
		}
	}
	return v, err
}

func evalNumber(n *parser.NumberExpr) (types.Value, error) {
	x, err := strconv.ParseFloat(n.Text, 64)
	if err != nil {
		return nil, types.Errorf(types.E_INVALID, "Invalid number '%s'", n.Text)
	}
	return types.NewDouble(x), nil
}

// evalRange evaluates both bounds, truncates them to integers and
// normalizes them to exclusive bounds.
func (e *Evaluator) evalRange(n *parser.RangeExpr) (types.Value, error) {
	low, err := e.evalInt(n.Low)
	if err != nil {
		return nil, err
	}
	high, err := e.evalInt(n.High)
	if err != nil {
		return nil, err
	}
	return types.NewRange(low, high, n.Kind)
}

// Typed evaluation helpers

func (e *Evaluator) evalNumber(node parser.Expr) (float64, error) {
	v, err := e.Eval(node)
	if err != nil {
		return 0, err
	}
	return types.ToNumber(v)
}

func (e *Evaluator) evalInt(node parser.Expr) (int, error) {
	n, err := e.evalNumber(node)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (e *Evaluator) evalInt32(node parser.Expr) (int32, error) {
	v, err := e.Eval(node)
	if err != nil {
		return 0, err
	}
	return types.ToInt(v)
}

func (e *Evaluator) evalBool(node parser.Expr) (bool, error) {
	v, err := e.Eval(node)
	if err != nil {
		return false, err
	}
	return types.ToBool(v)
}

// character returns the character behind the environment
func (e *Evaluator) character() (Character, error) {
	if e.env == nil {
		return nil, types.NewError(types.E_INVALID, "No environment")
	}
	c := e.env.Character()
	if c == nil {
		return nil, types.NewError(types.E_INVALID, "No character in environment")
	}
	return c, nil
}

func describe(node parser.Expr) string {
	if node == nil {
		return "<nil>"
	}
	return node.String()
}
