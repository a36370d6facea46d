/*
File    : gomonkey/parser/parser_loops.go
Package : parser
*/
package parser

import "github.com/akashmaji946/gomonkey/lexer"

// parseWhileStatement parses `while (cond) { ... }`. curToken is the WHILE
// token on entry.
func (p *Parser) parseWhileStatement() *While {
	stmt := &While{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlock()

	return stmt
}
