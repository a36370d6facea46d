/*
File    : gomonkey/parser/parser_collections.go
Package : parser
*/
package parser

import "github.com/akashmaji946/gomonkey/lexer"

func (p *Parser) parseArrayLiteral() Expression {
	arr := &ArrayLiteral{Token: p.curToken}
	arr.Elements = p.parseExpressionList(lexer.RBRACKET)
	return arr
}

func (p *Parser) parseHashLiteral() Expression {
	hash := &HashLiteral{Token: p.curToken, Pairs: []HashPair{}}

	for !p.peekTokenIs(lexer.RBRACE) {
		p.nextToken()
		key := p.parseExpression(LOWEST)

		if !p.expectPeek(lexer.COLON) {
			return nil
		}

		p.nextToken()
		value := p.parseExpression(LOWEST)

		hash.Pairs = append(hash.Pairs, HashPair{Key: key, Value: value})

		if !p.peekTokenIs(lexer.RBRACE) && !p.expectPeek(lexer.COMMA) {
			return nil
		}
	}

	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}

	return hash
}

// parseIndexOrRangeExpression parses `left[index]` and `left[lo:hi]`. Which
// node comes out depends on whether a COLON follows the first inner
// expression: no colon yields IndexExpression, a colon yields
// RangeExpression. curToken is the LBRACKET on entry.
func (p *Parser) parseIndexOrRangeExpression(left Expression) Expression {
	tok := p.curToken

	p.nextToken()
	first := p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.COLON) {
		p.nextToken()
		p.nextToken()
		second := p.parseExpression(LOWEST)

		if !p.expectPeek(lexer.RBRACKET) {
			return nil
		}

		return &RangeExpression{Token: tok, Left: left, LeftIndex: first, RightIndex: second}
	}

	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}

	return &IndexExpression{Token: tok, Left: left, Index: first}
}
