/*
File    : gomonkey/parser/parser_precedence.go
Package : parser
*/
package parser

import "github.com/akashmaji946/gomonkey/lexer"

// Precedence levels, lowest to highest. Higher binds tighter.
const (
	LOWEST      = iota
	ASSIGN      // =
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // fn(x)
	INDEX       // arr[x]
)

// precedences maps each infix-capable token to its binding power. Tokens
// absent from this table are not infix operators and fall back to LOWEST.
var precedences = map[lexer.TokenKind]int{
	lexer.ASSIGN:   ASSIGN,
	lexer.EQ:       EQUALS,
	lexer.NOTEQ:    EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.SLASH:    PRODUCT,
	lexer.ASTERISK: PRODUCT,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: INDEX,
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Kind]; ok {
		return prec
	}
	return LOWEST
}
