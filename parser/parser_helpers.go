/*
File    : gomonkey/parser/parser_helpers.go
Package : parser
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/gomonkey/lexer"
)

// expectPeek checks peekToken against kind; on a match it advances and
// returns true, otherwise it records a peek-error and returns false
// without advancing.
func (p *Parser) expectPeek(kind lexer.TokenKind) bool {
	if p.peekToken.Kind == kind {
		p.nextToken()
		return true
	}
	p.peekError(kind)
	return false
}

func (p *Parser) peekError(kind lexer.TokenKind) {
	msg := fmt.Sprintf("expected next token to be %s, got %s instead", kind, p.peekToken.Kind)
	p.errors = append(p.errors, msg)
}

func (p *Parser) curTokenIs(kind lexer.TokenKind) bool  { return p.curToken.Kind == kind }
func (p *Parser) peekTokenIs(kind lexer.TokenKind) bool { return p.peekToken.Kind == kind }
