/*
File    : gomonkey/parser/parser_assignments.go
Package : parser
*/
package parser

import "fmt"

// parseAssignmentExpression parses `ident = value`, where left has already
// been parsed as the expression to the left of the `=`. Assignment only
// ever targets a bare identifier; anything else is a parse error.
func (p *Parser) parseAssignmentExpression(left Expression) Expression {
	ident, ok := left.(*Identifier)
	if !ok {
		// left may be nil, or hold nil parts, after an earlier parse error,
		// so only its own token is reported.
		got := "nothing"
		if left != nil {
			got = left.TokenLiteral()
		}
		p.errors = append(p.errors, fmt.Sprintf("expected identifier on left of assignment, got %s", got))
		return nil
	}

	expr := &AssignmentExpression{Token: p.curToken, Name: ident}

	precedence := p.curPrecedence()
	p.nextToken()
	expr.Value = p.parseExpression(precedence - 1)

	return expr
}
