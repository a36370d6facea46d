/*
File    : gomonkey/parser/parser_conditionals.go
Package : parser
*/
package parser

import "github.com/akashmaji946/gomonkey/lexer"

// parseIfExpression parses `if (cond) { ... } [else { ... }]`. curToken is
// the IF token on entry.
func (p *Parser) parseIfExpression() Expression {
	expr := &IfExpression{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	expr.Consequence = p.parseBlock()

	if p.peekTokenIs(lexer.ELSE) {
		p.nextToken()
		if !p.expectPeek(lexer.LBRACE) {
			return nil
		}
		expr.Alternative = p.parseBlock()
	}

	return expr
}
