/*
File    : jmespath/jmespath.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package jmespath is the outer facade spec.md §6 describes: it chains
// parse -> interpret and adapts native Go values to and from the
// internal value tree. Grounded on the teacher's main/main.go, which
// plays the same "wire the pieces together for a caller" role for
// go-mix's lexer -> parser -> eval pipeline.
package jmespath

import (
	"github.com/akashmaji946/jmespath/ast"
	"github.com/akashmaji946/jmespath/functions"
	"github.com/akashmaji946/jmespath/interp"
	"github.com/akashmaji946/jmespath/parser"
	"github.com/akashmaji946/jmespath/value"
)

// Expression is a compiled, immutable AST, safe to evaluate
// concurrently against many documents and registries (spec.md §5).
type Expression struct {
	node *ast.Node
	src  string
}

// Parse compiles expr into an Expression or returns a *jmerrors.ParseError.
func Parse(expr string) (*Expression, error) {
	node, err := parser.Parse(expr)
	if err != nil {
		return nil, err
	}
	return &Expression{node: node, src: expr}, nil
}

// MustParse is Parse but panics on error, for tests and package-level
// expression constants.
func MustParse(expr string) *Expression {
	e, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return e
}

// Search parses expr and evaluates it against data in one call, using
// the default function registry.
func Search(expr string, data interface{}) (interface{}, error) {
	e, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return e.Search(data)
}

// Search evaluates the compiled expression against data using the
// default function registry, converting data in and the result out via
// the FromInterface/ToInterface adapter.
func (e *Expression) Search(data interface{}) (interface{}, error) {
	return e.SearchWithRegistry(data, functions.FromDefaults())
}

// SearchWithRegistry is Search with a caller-supplied function
// registry, letting callers register custom functions before
// searching (spec.md §6's "custom functions follow the same validation
// path").
func (e *Expression) SearchWithRegistry(data interface{}, registry *functions.Registry) (interface{}, error) {
	root := value.FromInterface(data)
	it := interp.New(registry)
	ctx := &functions.Context{Expression: e.src}
	result, err := it.Interpret(e.node, root, ctx)
	if err != nil {
		return nil, err
	}
	return value.ToInterface(result), nil
}

// String renders the original expression text the Expression was
// parsed from.
func (e *Expression) String() string {
	return e.src
}
