/*
File    : jmespath/parser/bracket.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// This file implements spec.md §4.2.1, "The `[` disambiguator": after
// a bare "[" (distinct from the single "[]" flatten token and the
// single "[?" filter token, which the lexer already emits as their own
// token types), the next token selects between a bare index, an array
// projection, a slice, or — only when "[" opens a fresh sub-expression
// rather than continuing one — a multi-select-list.
package parser

import (
	"github.com/akashmaji946/jmespath/ast"
	"github.com/akashmaji946/jmespath/lexer"
)

// parseBracket parses a "[...]" body that began at the current "["
// token. lhs is nil when called from nud (no left operand yet, so the
// disambiguator may also produce a multi-select-list) and non-nil when
// called from led (an index/slice/projection applied to lhs; a
// multi-select-list cannot follow an existing expression without a
// "." per the grammar, so that case is rejected).
func (p *Parser) parseBracket(lhs *ast.Node) (*ast.Node, error) {
	pos := p.curOffset
	p.advance() // consume '['

	switch p.cur.Type {
	case lexer.RawNumber:
		n := int(p.cur.Num)
		p.advance()
		if p.cur.Type == lexer.Colon {
			return p.finishSlice(pos, lhs, &n)
		}
		if err := p.expect(lexer.Rbracket, "']' to close index"); err != nil {
			return nil, err
		}
		idx := ast.NewIndex(pos, n)
		if lhs == nil {
			return idx, nil
		}
		return ast.NewSubexpr(pos, lhs, idx), nil

	case lexer.Colon:
		return p.finishSlice(pos, lhs, nil)

	case lexer.Star:
		p.advance()
		if err := p.expect(lexer.Rbracket, "']' to close array projection"); err != nil {
			return nil, err
		}
		rhs, err := p.parseProjectionRHS()
		if err != nil {
			return nil, err
		}
		if lhs == nil {
			lhs = ast.NewCurrentNode(pos)
		}
		return ast.NewProjection(pos, lhs, rhs), nil

	default:
		if lhs != nil {
			return nil, p.errorf("expected a number, '*', or slice inside '[' following an expression")
		}
		items, err := p.parseCommaList(lexer.Rbracket, "']' to close multi-select-list")
		if err != nil {
			return nil, err
		}
		return ast.NewMultiList(pos, items), nil
	}
}

// ledLbracket is the led entry point for a bare "[" following lhs.
func (p *Parser) ledLbracket(lhs *ast.Node) (*ast.Node, error) {
	return p.parseBracket(lhs)
}

// finishSlice reads up to three colon-separated optional numeric parts
// (spec.md §4.2.1), erroring on more than two colons; step = 0 is
// rejected per spec.md §3's Slice invariant. first, when non-nil, is
// the already-consumed leading number (the cursor is sitting on the
// first ':' in that case).
func (p *Parser) finishSlice(pos int, lhs *ast.Node, first *int) (*ast.Node, error) {
	parts := []*int{first}
	colons := 0
	for p.cur.Type == lexer.Colon {
		colons++
		if colons > 2 {
			return nil, p.errorf("too many colons in slice expression")
		}
		p.advance()
		if p.cur.Type == lexer.RawNumber {
			n := int(p.cur.Num)
			p.advance()
			parts = append(parts, &n)
		} else {
			parts = append(parts, nil)
		}
	}
	for len(parts) < 3 {
		parts = append(parts, nil)
	}
	start, stop, step := parts[0], parts[1], parts[2]
	if step != nil && *step == 0 {
		return nil, p.errorf("slice step cannot be zero")
	}
	if err := p.expect(lexer.Rbracket, "']' to close slice"); err != nil {
		return nil, err
	}
	rhs, err := p.parseProjectionRHS()
	if err != nil {
		return nil, err
	}
	slice := ast.NewSlice(pos, start, stop, step)
	if lhs == nil {
		return ast.NewProjection(pos, slice, rhs), nil
	}
	return ast.NewSubexpr(pos, lhs, ast.NewProjection(pos, slice, rhs)), nil
}
