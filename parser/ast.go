package parser

import "trigger/types"

// Node is the base interface for all AST nodes
type Node interface {
	Position() Position
	String() string // canonical source rendering
}

// Expr is a trigger expression node. The set of node shapes is closed to
// this package.
type Expr interface {
	Node
	exprNode()
}

// InfixOp identifies a binary operator
type InfixOp int

const (
	Or InfixOp = iota
	XOr
	And
	BitwiseOr
	BitwiseXOr
	BitwiseAnd
	Assignment
	Equals
	Unequals
	GreaterThanEquals
	GreaterThan
	LessThanEquals
	LessThan
	Add
	Subtract
	Multiply
	Divide
	Modulo
	Power
)

// UnaryOp identifies a prefix operator
type UnaryOp int

const (
	Not UnaryOp = iota
	Minus
	Negation
)

// RangeExpr is an interval literal such as [1, 5) on the right of "="
type RangeExpr struct {
	Pos  Position
	Low  Expr
	High Expr
	Kind types.RangeKind
}

func (e *RangeExpr) Position() Position { return e.Pos }
func (e *RangeExpr) String() string     { return unparseExpr(e, precedenceLowest) }
func (e *RangeExpr) exprNode()          {}

// IdentifierExpr is a bare (possibly dotted) name
type IdentifierExpr struct {
	Pos  Position
	Name string
}

func (e *IdentifierExpr) Position() Position { return e.Pos }
func (e *IdentifierExpr) String() string     { return e.Name }
func (e *IdentifierExpr) exprNode()          {}

// KeywordExpr is a two-word name such as "vel x"
type KeywordExpr struct {
	Pos  Position
	Text string
}

func (e *KeywordExpr) Position() Position { return e.Pos }
func (e *KeywordExpr) String() string     { return e.Text }
func (e *KeywordExpr) exprNode()          {}

// StringExpr is a quoted string literal (Value is decoded)
type StringExpr struct {
	Pos   Position
	Value string
}

func (e *StringExpr) Position() Position { return e.Pos }
func (e *StringExpr) String() string     { return quote(e.Value) }
func (e *StringExpr) exprNode()          {}

// FunctionExpr is a call with at most MaxArgs positional arguments.
// Arguments are left unevaluated; each function decides what to evaluate.
type FunctionExpr struct {
	Pos  Position
	Name string
	Args []Expr
}

// MaxArgs is the largest number of arguments any function takes
const MaxArgs = 3

func (e *FunctionExpr) Position() Position { return e.Pos }
func (e *FunctionExpr) String() string     { return unparseExpr(e, precedenceLowest) }
func (e *FunctionExpr) exprNode()          {}

// Arg returns the i-th (0-based) argument or nil
func (e *FunctionExpr) Arg(i int) Expr {
	if i < 0 || i >= len(e.Args) {
		return nil
	}
	return e.Args[i]
}

// NumberExpr keeps the numeric literal's source text
type NumberExpr struct {
	Pos  Position
	Text string
}

func (e *NumberExpr) Position() Position { return e.Pos }
func (e *NumberExpr) String() string     { return e.Text }
func (e *NumberExpr) exprNode()          {}

// InfixExpr is a binary operation
type InfixExpr struct {
	Pos   Position
	Op    InfixOp
	Left  Expr
	Right Expr
}

func (e *InfixExpr) Position() Position { return e.Pos }
func (e *InfixExpr) String() string     { return unparseExpr(e, precedenceLowest) }
func (e *InfixExpr) exprNode()          {}

// UnaryExpr is a prefix operation
type UnaryExpr struct {
	Pos     Position
	Op      UnaryOp
	Operand Expr
}

func (e *UnaryExpr) Position() Position { return e.Pos }
func (e *UnaryExpr) String() string     { return unparseExpr(e, precedenceLowest) }
func (e *UnaryExpr) exprNode()          {}
