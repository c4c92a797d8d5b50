package parser

import "fmt"

// ParseError reports a syntax error at a source position
type ParseError struct {
	Pos Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

func (p *Parser) errorf(tok Token, format string, args ...interface{}) error {
	return &ParseError{Pos: tok.Position, Msg: fmt.Sprintf(format, args...)}
}
