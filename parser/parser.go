/*
File    : gomonkey/parser/parser.go
Package : parser
*/

// Package parser implements a Pratt (top-down operator precedence) parser
// that turns a lexer.Lexer's token stream into an AST rooted at *Program.
//
// Parsing never panics on malformed input: every parse function that fails
// appends a message to Parser.Errors and returns nil, and callers thread
// that nil upward rather than stopping early, so ParseProgram can surface
// every syntax error it finds in one pass rather than just the first.
package parser

import (
	"fmt"

	"github.com/akashmaji946/gomonkey/lexer"
)

type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

// Parser holds the token window and the Pratt dispatch tables.
type Parser struct {
	l *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errors []string

	prefixParseFns map[lexer.TokenKind]prefixParseFn
	infixParseFns  map[lexer.TokenKind]infixParseFn
}

// NewParser builds a Parser over l, registers the prefix/infix handler
// tables, and reads the first two tokens so curToken/peekToken are primed.
func NewParser(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, errors: []string{}}

	p.prefixParseFns = make(map[lexer.TokenKind]prefixParseFn)
	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.INT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBoolean)
	p.registerPrefix(lexer.FALSE, p.parseBoolean)
	p.registerPrefix(lexer.NULL, p.parseNullLiteral)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpression)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpression)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.IF, p.parseIfExpression)
	p.registerPrefix(lexer.FUNCTION, p.parseFunctionLiteral)
	p.registerPrefix(lexer.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(lexer.LBRACE, p.parseHashLiteral)

	p.infixParseFns = make(map[lexer.TokenKind]infixParseFn)
	p.registerInfix(lexer.PLUS, p.parseInfixExpression)
	p.registerInfix(lexer.MINUS, p.parseInfixExpression)
	p.registerInfix(lexer.SLASH, p.parseInfixExpression)
	p.registerInfix(lexer.ASTERISK, p.parseInfixExpression)
	p.registerInfix(lexer.EQ, p.parseInfixExpression)
	p.registerInfix(lexer.NOTEQ, p.parseInfixExpression)
	p.registerInfix(lexer.LT, p.parseInfixExpression)
	p.registerInfix(lexer.GT, p.parseInfixExpression)
	p.registerInfix(lexer.LPAREN, p.parseCallExpression)
	p.registerInfix(lexer.LBRACKET, p.parseIndexOrRangeExpression)
	p.registerInfix(lexer.ASSIGN, p.parseAssignmentExpression)

	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) registerPrefix(kind lexer.TokenKind, fn prefixParseFn) {
	p.prefixParseFns[kind] = fn
}

func (p *Parser) registerInfix(kind lexer.TokenKind, fn infixParseFn) {
	p.infixParseFns[kind] = fn
}

// Errors returns every syntax error accumulated so far, in the order found.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// ParseProgram consumes the entire token stream and returns the resulting
// Program. Parse errors do not stop the pass; check Errors() afterward.
func (p *Parser) ParseProgram() *Program {
	program := &Program{Statements: []Statement{}}

	for p.curToken.Kind != lexer.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseExpression(precedence int) Expression {
	if TraceEnabled {
		defer untrace(trace("parseExpression"))
	}

	prefix := p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Kind)
		return nil
	}
	left := prefix()

	for p.peekToken.Kind != lexer.SEMICOLON && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Kind]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) noPrefixParseFnError(kind lexer.TokenKind) {
	p.errors = append(p.errors, fmt.Sprintf("no prefix parse function for %s found", kind))
}
