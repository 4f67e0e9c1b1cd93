/*
File    : jmespath/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a Pratt parser (top-down operator precedence
parser) for JMESPath expressions.

The parser converts the lexer's token stream into an AST. It handles:
  - Identifiers, quoted identifiers, literals, and the current-node "@"
  - Sub-expressions ("."), pipes ("|"), or/and/not, comparators
  - Index, slice, and projection bracket forms ("[", "[]", "[?")
  - Multi-select lists and hashes ("[...]", "{...}")
  - Function calls and expression references ("&")

spec.md §4.2 describes this algorithm in terms of three explicit
stacks (output, operator, state). This implementation instead uses the
recursive formulation spec.md §9 calls out as equivalent and clearer:
one parseExpression(rbp) loop that calls a token's "nud" (null
denotation, prefix role) once and then repeatedly applies "led" (left
denotation, infix role) functions while the current token's left-
binding power exceeds rbp. The teacher (go-mix)'s
UnaryFuncs/BinaryFuncs dispatch-table idiom in
parser/parser_precedence.go is kept in spirit: nud (nud.go) and led
(led.go) dispatch on the token type with a switch, one case per token
type, driving a recursive rather than an explicitly-stacked loop.
*/
package parser

import (
	"github.com/akashmaji946/jmespath/ast"
	"github.com/akashmaji946/jmespath/jmerrors"
	"github.com/akashmaji946/jmespath/lexer"
)

// Binding powers used only for right-hand-side sub-parses; the lexer's
// own lbp table (lexer/token.go) governs when the main loop decides to
// apply a led at all. projectionRBP is one less than a projection
// operator's own lbp (20), so a projection's rhs keeps consuming
// further dot/bracket/projection chains (lbp 45 and 20) but stops
// before a pipe (lbp 9), matching spec.md §4.2 "projections ... are
// right-associative".
const (
	projectionRBP = 19
	notRBP        = 44
	exprefRBP     = 0
)

// Parser holds the token stream and the small amount of lookahead
// state a Pratt parser needs: the lexer, the current token and its
// byte offset, and the original expression text for error rendering.
type Parser struct {
	lex  *lexer.Lexer
	expr string

	curOffset int
	cur       lexer.Token
}

// New creates a Parser over expr.
func New(expr string) *Parser {
	p := &Parser{lex: lexer.New(expr), expr: expr}
	p.advance()
	return p
}

// Parse compiles expr into an AST, or returns a *jmerrors.ParseError.
func Parse(expr string) (*ast.Node, error) {
	p := New(expr)
	node, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.EOF {
		return nil, p.errorf("trailing input after expression")
	}
	return node, nil
}

func (p *Parser) advance() {
	p.curOffset, p.cur = p.lex.Next()
}

func (p *Parser) errorf(msg string) error {
	return jmerrors.NewParseError(p.expr, p.curOffset, msg)
}

func (p *Parser) expect(t lexer.TokenType, what string) error {
	if p.cur.Type != t {
		return p.errorf("expected " + what)
	}
	p.advance()
	return nil
}

// parseExpression is the main Pratt loop: consume a prefix ("nud"),
// then keep extending it with infix ("led") operators whose left-
// binding power exceeds rbp.
func (p *Parser) parseExpression(rbp int) (*ast.Node, error) {
	left, err := p.nud()
	if err != nil {
		return nil, err
	}
	for rbp < p.cur.Type.Lbp() {
		left, err = p.led(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// stopsProjection reports whether tok cannot start an expression, so a
// projection whose next token is one of these has no rhs at all — the
// rhs is then the explicit CurrentNode spec.md §3 requires ("Absence
// of a rhs is represented explicitly as CurrentNode").
func stopsProjection(t lexer.TokenType) bool {
	switch t {
	case lexer.EOF, lexer.Rparen, lexer.Rbracket, lexer.Rbrace, lexer.Comma,
		lexer.Pipe, lexer.Or, lexer.And, lexer.Eq, lexer.Ne, lexer.Lt, lexer.Lte,
		lexer.Gt, lexer.Gte, lexer.Colon:
		return true
	default:
		return false
	}
}

// parseProjectionRHS parses the expression applied to each element of
// a projection, or CurrentNode if nothing follows. A leading '.' is
// special-cased (mirroring jmespath.py's _parse_projection_rhs): the
// dot is consumed here rather than left for a led, since "." only ever
// has an infix role (ledDot) and the rhs of a projection starts fresh,
// with no left operand to attach a Subexpr to.
func (p *Parser) parseProjectionRHS() (*ast.Node, error) {
	if p.cur.Type == lexer.Dot {
		p.advance()
		return p.parseDotRHS()
	}
	if stopsProjection(p.cur.Type) {
		return ast.NewCurrentNode(p.curOffset), nil
	}
	return p.parseExpression(projectionRBP)
}

// parseDotRHS parses what follows a '.' when there is no left operand
// to attach it to (a projection's rhs): wildcard-values projection,
// multi-select-list, multi-select-hash, a plain or quoted identifier,
// or a function call. This is the same grammar ledDot consumes after
// its own '.', except the wildcard-values case here projects over the
// current node rather than an existing left expression, since each
// projected element plays that role implicitly.
func (p *Parser) parseDotRHS() (*ast.Node, error) {
	pos := p.curOffset
	switch p.cur.Type {
	case lexer.Star:
		p.advance()
		rhs, err := p.parseProjectionRHS()
		if err != nil {
			return nil, err
		}
		return ast.NewProjection(pos, ast.NewObjectValues(pos, ast.NewCurrentNode(pos)), rhs), nil

	case lexer.Lbracket:
		p.advance()
		items, err := p.parseCommaList(lexer.Rbracket, "']' to close multi-select-list")
		if err != nil {
			return nil, err
		}
		return ast.NewMultiList(pos, items), nil

	case lexer.Lbrace:
		p.advance()
		pairs, err := p.parseMultiHashBody()
		if err != nil {
			return nil, err
		}
		return ast.NewMultiHash(pos, pairs), nil

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

	default:
		return nil, p.errorf("expected identifier, '*', '[' or '{' after '.'")
	}
}

// parseCommaList parses a comma-separated list of expressions up to
// and including close, used by multi-select-list, function arguments,
// and the dot-multi-list form. An immediate close (no elements) is
// handled specially per spec.md §4.2.2 ("foo() ... no placeholder
// argument is pushed").
func (p *Parser) parseCommaList(close lexer.TokenType, what string) ([]*ast.Node, error) {
	if p.cur.Type == close {
		p.advance()
		return nil, nil
	}
	var items []*ast.Node
	for {
		item, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.cur.Type == lexer.Comma {
			p.advance()
			continue
		}
		break
	}
	if err := p.expect(close, what); err != nil {
		return nil, err
	}
	return items, nil
}

// parseMultiHashBody parses the "key: expr, ..." body of a "{...}"
// multi-hash, up to and including the closing "}".
func (p *Parser) parseMultiHashBody() ([]ast.HashPair, error) {
	if p.cur.Type == lexer.Rbrace {
		p.advance()
		return nil, nil
	}
	var pairs []ast.HashPair
	for {
		key, err := p.parseHashKey()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.Colon, "':' in multi-select-hash"); err != nil {
			return nil, err
		}
		val, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, ast.HashPair{Key: key, Value: val})
		if p.cur.Type == lexer.Comma {
			p.advance()
			continue
		}
		break
	}
	if err := p.expect(lexer.Rbrace, "'}' to close multi-select-hash"); err != nil {
		return nil, err
	}
	return pairs, nil
}

func (p *Parser) parseHashKey() (string, error) {
	switch p.cur.Type {
	case lexer.Identifier, lexer.QuotedIdentifier:
		s := p.cur.Str
		p.advance()
		return s, nil
	default:
		return "", p.errorf("expected a key (identifier) in multi-select-hash")
	}
}

// parseFunctionCall parses the "(args)" tail of a function call, name
// and its source position having already been consumed by the caller.
func (p *Parser) parseFunctionCall(name string, pos int) (*ast.Node, error) {
	p.advance() // consume '('
	args, err := p.parseCommaList(lexer.Rparen, "')' to close function call")
	if err != nil {
		return nil, err
	}
	return ast.NewFunction(pos, name, args), nil
}
