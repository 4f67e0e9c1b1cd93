/*
File    : jmespath/parser/nud.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/jmespath/ast"
	"github.com/akashmaji946/jmespath/jmerrors"
	"github.com/akashmaji946/jmespath/lexer"
)

// nud consumes one token in prefix ("null denotation") position and
// returns the node it starts, per spec.md §4.2's nud table.
func (p *Parser) nud() (*ast.Node, error) {
	pos := p.curOffset
	switch p.cur.Type {
	case lexer.Identifier:
		name := p.cur.Str
		p.advance()
		if p.cur.Type == lexer.Lparen {
			return p.parseFunctionCall(name, pos)
		}
		return ast.NewIdentifier(pos, name), nil

	case lexer.QuotedIdentifier:
		name := p.cur.Str
		p.advance()
		if p.cur.Type == lexer.Lparen {
			return nil, p.errorf("Quoted strings can't be function names")
		}
		return ast.NewIdentifier(pos, name), nil

	case lexer.LiteralTok:
		v := p.cur.Val
		p.advance()
		return ast.NewLiteral(pos, v), nil

	case lexer.At:
		p.advance()
		return ast.NewCurrentNode(pos), nil

	case lexer.Star:
		p.advance()
		rhs, err := p.parseProjectionRHS()
		if err != nil {
			return nil, err
		}
		return ast.NewProjection(pos, ast.NewObjectValues(pos, ast.NewCurrentNode(pos)), rhs), nil

	case lexer.Flatten:
		p.advance()
		rhs, err := p.parseProjectionRHS()
		if err != nil {
			return nil, err
		}
		return ast.NewProjection(pos, ast.NewFlatten(pos, ast.NewCurrentNode(pos)), rhs), nil

	case lexer.Filter:
		return p.parseFilter(ast.NewCurrentNode(pos))

	case lexer.Lbrace:
		p.advance()
		pairs, err := p.parseMultiHashBody()
		if err != nil {
			return nil, err
		}
		return ast.NewMultiHash(pos, pairs), nil

	case lexer.Ampersand:
		p.advance()
		child, err := p.parseExpression(exprefRBP)
		if err != nil {
			return nil, err
		}
		return ast.NewExpref(pos, child), nil

	case lexer.Not:
		p.advance()
		child, err := p.parseExpression(notRBP)
		if err != nil {
			return nil, err
		}
		return ast.NewNot(pos, child), nil

	case lexer.Lbracket:
		return p.parseBracket(nil)

	case lexer.Lparen:
		p.advance()
		inner, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.Rparen, "')' to close parenthesized expression"); err != nil {
			return nil, err
		}
		return inner, nil

	case lexer.Unknown:
		return nil, jmerrors.NewParseErrorHint(p.expr, pos, "unrecognized token", p.cur.Hint)

	default:
		return nil, p.errorf("unexpected token " + string(p.cur.Type))
	}
}
