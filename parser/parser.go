package parser

import "trigger/types"

// Parser parses trigger expression source into an AST
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
}

// NewParser creates a new Parser instance
func NewParser(input string) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses a complete expression; trailing input is an error
func Parse(input string) (Expr, error) {
	p := NewParser(input)
	expr, err := p.ParseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}
	if p.current.Type != TOKEN_EOF {
		return nil, p.errorf(p.current, "unexpected %s after expression", describe(p.current))
	}
	return expr, nil
}

// MustParse is Parse for fixed, known-good source. It panics on error.
func MustParse(input string) Expr {
	expr, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return expr
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// binaryOps maps operator tokens to AST operators
var binaryOps = map[TokenType]InfixOp{
	TOKEN_OR:      Or,
	TOKEN_XOR:     XOr,
	TOKEN_AND:     And,
	TOKEN_BITOR:   BitwiseOr,
	TOKEN_BITXOR:  BitwiseXOr,
	TOKEN_BITAND:  BitwiseAnd,
	TOKEN_ASSIGN:  Assignment,
	TOKEN_EQ:      Equals,
	TOKEN_NE:      Unequals,
	TOKEN_GE:      GreaterThanEquals,
	TOKEN_GT:      GreaterThan,
	TOKEN_LE:      LessThanEquals,
	TOKEN_LT:      LessThan,
	TOKEN_PLUS:    Add,
	TOKEN_MINUS:   Subtract,
	TOKEN_STAR:    Multiply,
	TOKEN_SLASH:   Divide,
	TOKEN_PERCENT: Modulo,
	TOKEN_POWER:   Power,
}

// currentPrecedence returns the binding power of the current token as an
// infix operator, or precedenceLowest if it is not one.
func (p *Parser) currentPrecedence() (InfixOp, int) {
	op, ok := binaryOps[p.current.Type]
	if !ok {
		return 0, precedenceLowest
	}
	return op, infixOps[op].precedence
}

// ParseExpression parses operators that bind tighter than precedence
func (p *Parser) ParseExpression(precedence int) (Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		op, opPrec := p.currentPrecedence()
		if opPrec <= precedence {
			return left, nil
		}
		tok := p.current
		p.nextToken()

		rightPrec := opPrec
		if op == Power {
			// right associative
			rightPrec = opPrec - 1
		}
		right, err := p.ParseExpression(rightPrec)
		if err != nil {
			return nil, err
		}
		left = &InfixExpr{Pos: tok.Position, Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parsePrefix() (Expr, error) {
	tok := p.current
	switch tok.Type {
	case TOKEN_NUMBER:
		p.nextToken()
		return &NumberExpr{Pos: tok.Position, Text: tok.Value}, nil

	case TOKEN_STRING:
		p.nextToken()
		return &StringExpr{Pos: tok.Position, Value: tok.Literal}, nil

	case TOKEN_KEYWORD:
		p.nextToken()
		return &KeywordExpr{Pos: tok.Position, Text: tok.Value}, nil

	case TOKEN_IDENTIFIER:
		if p.peek.Type == TOKEN_LPAREN {
			return p.parseFunction()
		}
		p.nextToken()
		return &IdentifierExpr{Pos: tok.Position, Name: tok.Value}, nil

	case TOKEN_NOT, TOKEN_MINUS, TOKEN_BITNOT:
		p.nextToken()
		operand, err := p.ParseExpression(precedenceUnary)
		if err != nil {
			return nil, err
		}
		op := Not
		switch tok.Type {
		case TOKEN_MINUS:
			op = Minus
		case TOKEN_BITNOT:
			op = Negation
		}
		return &UnaryExpr{Pos: tok.Position, Op: op, Operand: operand}, nil

	case TOKEN_LPAREN, TOKEN_LBRACKET:
		return p.parseGroupOrRange()

	case TOKEN_EOF:
		return nil, p.errorf(tok, "unexpected end of expression")

	default:
		return nil, p.errorf(tok, "unexpected %s", describe(tok))
	}
}

// parseFunction parses name(arg, ...)
func (p *Parser) parseFunction() (Expr, error) {
	fn := &FunctionExpr{Pos: p.current.Position, Name: p.current.Value}
	p.nextToken() // name
	p.nextToken() // (

	if p.current.Type == TOKEN_RPAREN {
		p.nextToken()
		return fn, nil
	}

	for {
		arg, err := p.ParseExpression(precedenceLowest)
		if err != nil {
			return nil, err
		}
		fn.Args = append(fn.Args, arg)
		if len(fn.Args) > MaxArgs {
			return nil, p.errorf(p.current, "too many arguments to %s (at most %d)", fn.Name, MaxArgs)
		}

		switch p.current.Type {
		case TOKEN_COMMA:
			p.nextToken()
		case TOKEN_RPAREN:
			p.nextToken()
			return fn, nil
		default:
			return nil, p.errorf(p.current, "expected ',' or ')' in call to %s, got %s", fn.Name, describe(p.current))
		}
	}
}

// parseGroupOrRange parses (expr), or one of the four range forms
// [a, b]  (a, b)  [a, b)  (a, b]
func (p *Parser) parseGroupOrRange() (Expr, error) {
	open := p.current
	p.nextToken()

	first, err := p.ParseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}

	if p.current.Type != TOKEN_COMMA {
		if open.Type == TOKEN_LBRACKET {
			return nil, p.errorf(p.current, "expected ',' in range, got %s", describe(p.current))
		}
		if p.current.Type != TOKEN_RPAREN {
			return nil, p.errorf(p.current, "expected ')', got %s", describe(p.current))
		}
		p.nextToken()
		return first, nil
	}
	p.nextToken() // ,

	second, err := p.ParseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}

	closing := p.current
	leftInclusive := open.Type == TOKEN_LBRACKET
	var kind types.RangeKind
	switch {
	case closing.Type == TOKEN_RBRACKET && leftInclusive:
		kind = types.AllInclusive
	case closing.Type == TOKEN_RPAREN && !leftInclusive:
		kind = types.AllExclusive
	case closing.Type == TOKEN_RPAREN && leftInclusive:
		kind = types.LeftInclusiveRightExclusive
	case closing.Type == TOKEN_RBRACKET && !leftInclusive:
		kind = types.LeftExclusiveRightInclusive
	default:
		return nil, p.errorf(closing, "expected ']' or ')' to close range, got %s", describe(closing))
	}
	p.nextToken()

	return &RangeExpr{Pos: open.Position, Low: first, High: second, Kind: kind}, nil
}

func describe(tok Token) string {
	switch tok.Type {
	case TOKEN_EOF:
		return "end of expression"
	case TOKEN_NUMBER, TOKEN_STRING, TOKEN_IDENTIFIER, TOKEN_KEYWORD, TOKEN_ILLEGAL:
		return "'" + tok.Value + "'"
	default:
		return "'" + tok.Type.String() + "'"
	}
}
