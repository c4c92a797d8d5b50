package parser

import (
	"fmt"
	"strings"
)

// Operator precedence levels (higher = tighter binding)
const (
	precedenceLowest     = iota
	precedenceOr         // ||
	precedenceXor        // ^^
	precedenceAnd        // &&
	precedenceBitOr      // |
	precedenceBitXor     // ^
	precedenceBitAnd     // &
	precedenceAssign     // :=
	precedenceEquality   // = !=
	precedenceComparison // < <= > >=
	precedenceAdditive   // + -
	precedenceMultiply   // * / %
	precedencePower      // **
	precedenceUnary      // - ! ~
)

type infixInfo struct {
	symbol     string
	precedence int
}

var infixOps = map[InfixOp]infixInfo{
	Or:                {"||", precedenceOr},
	XOr:               {"^^", precedenceXor},
	And:               {"&&", precedenceAnd},
	BitwiseOr:         {"|", precedenceBitOr},
	BitwiseXOr:        {"^", precedenceBitXor},
	BitwiseAnd:        {"&", precedenceBitAnd},
	Assignment:        {":=", precedenceAssign},
	Equals:            {"=", precedenceEquality},
	Unequals:          {"!=", precedenceEquality},
	GreaterThanEquals: {">=", precedenceComparison},
	GreaterThan:       {">", precedenceComparison},
	LessThanEquals:    {"<=", precedenceComparison},
	LessThan:          {"<", precedenceComparison},
	Add:               {"+", precedenceAdditive},
	Subtract:          {"-", precedenceAdditive},
	Multiply:          {"*", precedenceMultiply},
	Divide:            {"/", precedenceMultiply},
	Modulo:            {"%", precedenceMultiply},
	Power:             {"**", precedencePower},
}

// String returns the operator's source symbol
func (op InfixOp) String() string {
	if info, ok := infixOps[op]; ok {
		return info.symbol
	}
	return fmt.Sprintf("<infix %d>", int(op))
}

// String returns the operator's source symbol
func (op UnaryOp) String() string {
	switch op {
	case Not:
		return "!"
	case Minus:
		return "-"
	case Negation:
		return "~"
	default:
		return fmt.Sprintf("<unary %d>", int(op))
	}
}

// unparseExpr converts an expression to source code, adding parentheses
// only where the parent binds tighter.
func unparseExpr(expr Expr, parentPrecedence int) string {
	switch e := expr.(type) {
	case nil:
		return "<nil>"

	case *IdentifierExpr, *KeywordExpr, *StringExpr, *NumberExpr:
		return e.String()

	case *RangeExpr:
		open, closing := e.Kind.Brackets()
		return open + unparseExpr(e.Low, precedenceLowest) + ", " + unparseExpr(e.High, precedenceLowest) + closing

	case *FunctionExpr:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = unparseExpr(arg, precedenceLowest)
		}
		return e.Name + "(" + strings.Join(args, ", ") + ")"

	case *UnaryExpr:
		result := e.Op.String() + unparseExpr(e.Operand, precedenceUnary)
		if precedenceUnary < parentPrecedence {
			return "(" + result + ")"
		}
		return result

	case *InfixExpr:
		info, ok := infixOps[e.Op]
		if !ok {
			return fmt.Sprintf("<unknown infix %d>", int(e.Op))
		}
		prec := info.precedence
		leftPrec, rightPrec := prec, prec+1
		if e.Op == Power {
			// right associative
			leftPrec, rightPrec = prec+1, prec
		}
		result := unparseExpr(e.Left, leftPrec) + " " + info.symbol + " " + unparseExpr(e.Right, rightPrec)
		if prec < parentPrecedence {
			return "(" + result + ")"
		}
		return result

	default:
		return fmt.Sprintf("<unknown expression: %T>", expr)
	}
}

// quote renders a string literal using the escapes the lexer understands
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch b := s[i]; b {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(b)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
