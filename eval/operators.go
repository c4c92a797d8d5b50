package eval

import (
	"math"

	"trigger/parser"
	"trigger/types"
)

// evalInfix evaluates a binary expression. Operands are evaluated left to
// right; || and && stop after the left operand when it decides the result.
func (e *Evaluator) evalInfix(n *parser.InfixExpr) (types.Value, error) {
	if e.tracer.IsEnabled() {
		e.tracer.Expression("infix", n.String())
	}

	switch n.Op {
	case parser.Or, parser.And:
		left, err := e.evalBool(n.Left)
		if err != nil {
			return nil, err
		}
		if left == (n.Op == parser.Or) {
			return types.NewBool(left), nil
		}
		right, err := e.evalBool(n.Right)
		if err != nil {
			return nil, err
		}
		return types.NewBool(right), nil

	case parser.XOr:
		return e.boolOp(n, func(a, b bool) bool { return a != b })

	case parser.BitwiseOr:
		return e.intOp(n, func(a, b int32) int32 { return a | b })
	case parser.BitwiseXOr:
		return e.intOp(n, func(a, b int32) int32 { return a ^ b })
	case parser.BitwiseAnd:
		return e.intOp(n, func(a, b int32) int32 { return a & b })

	case parser.Equals, parser.Unequals:
		left, err := e.Eval(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.Eval(n.Right)
		if err != nil {
			return nil, err
		}
		same, err := types.Same(left, right)
		if err != nil || n.Op == parser.Equals {
			return same, err
		}
		b, err := types.ToBool(same)
		if err != nil {
			return nil, err
		}
		return types.NewBool(!b), nil

	case parser.GreaterThanEquals:
		return e.compare(n, func(a, b float64) bool { return a >= b })
	case parser.GreaterThan:
		return e.compare(n, func(a, b float64) bool { return a > b })
	case parser.LessThanEquals:
		return e.compare(n, func(a, b float64) bool { return a <= b })
	case parser.LessThan:
		return e.compare(n, func(a, b float64) bool { return a < b })

	case parser.Add:
		return e.arith(n, func(a, b float64) float64 { return a + b })
	case parser.Subtract:
		return e.arith(n, func(a, b float64) float64 { return a - b })
	case parser.Multiply:
		return e.arith(n, func(a, b float64) float64 { return a * b })
	case parser.Divide:
		// Zero divisors are not trapped: x/0 is ±Inf and 0/0 is NaN
		return e.arith(n, func(a, b float64) float64 { return a / b })
	case parser.Modulo:
		return e.modulo(n)
	case parser.Power:
		return e.arith(n, math.Pow)

	case parser.Assignment:
		// recognized by the parser, never evaluated
	}

	return nil, types.Errorf(types.E_INVALID, "Unknown expression: %s", n.String())
}

// evalUnary evaluates a prefix expression
func (e *Evaluator) evalUnary(n *parser.UnaryExpr) (types.Value, error) {
	switch n.Op {
	case parser.Not:
		b, err := e.evalBool(n.Operand)
		if err != nil {
			return nil, err
		}
		return types.NewBool(!b), nil

	case parser.Minus:
		x, err := e.evalNumber(n.Operand)
		if err != nil {
			return nil, err
		}
		return types.NewDouble(-x), nil

	case parser.Negation:
		i, err := e.evalInt32(n.Operand)
		if err != nil {
			return nil, err
		}
		return types.NewDouble(float64(^i)), nil
	}

	return nil, types.Errorf(types.E_INVALID, "Unknown expression: %s", n.String())
}

func (e *Evaluator) operands(n *parser.InfixExpr) (float64, float64, error) {
	left, err := e.evalNumber(n.Left)
	if err != nil {
		return 0, 0, err
	}
	right, err := e.evalNumber(n.Right)
	if err != nil {
		return 0, 0, err
	}
	return left, right, nil
}

func (e *Evaluator) arith(n *parser.InfixExpr, op func(a, b float64) float64) (types.Value, error) {
	left, right, err := e.operands(n)
	if err != nil {
		return nil, err
	}
	return types.NewDouble(op(left, right)), nil
}

func (e *Evaluator) compare(n *parser.InfixExpr, op func(a, b float64) bool) (types.Value, error) {
	left, right, err := e.operands(n)
	if err != nil {
		return nil, err
	}
	return types.NewBool(op(left, right)), nil
}

func (e *Evaluator) boolOp(n *parser.InfixExpr, op func(a, b bool) bool) (types.Value, error) {
	left, err := e.evalBool(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalBool(n.Right)
	if err != nil {
		return nil, err
	}
	return types.NewBool(op(left, right)), nil
}

func (e *Evaluator) intOp(n *parser.InfixExpr, op func(a, b int32) int32) (types.Value, error) {
	left, err := e.evalInt32(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalInt32(n.Right)
	if err != nil {
		return nil, err
	}
	return types.NewDouble(float64(op(left, right))), nil
}

// modulo truncates both operands to integers first. A zero divisor yields
// NaN, matching the untrapped float division.
func (e *Evaluator) modulo(n *parser.InfixExpr) (types.Value, error) {
	left, err := e.evalInt32(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalInt32(n.Right)
	if err != nil {
		return nil, err
	}
	if right == 0 {
		return types.NewDouble(math.NaN()), nil
	}
	return types.NewDouble(float64(left % right)), nil
}
