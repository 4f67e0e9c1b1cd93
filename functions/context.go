/*
File    : jmespath/functions/context.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package functions implements the JMESPath function registry: the
// name -> callable map, the signature/argument-type validator that
// runs before every call, and the full set of builtins spec.md §4.4
// enumerates. Grounded on the teacher's Builtin{Name, Callback} +
// Package/RegisterPackage registration idiom (function/function.go,
// std/builtins.go), generalized from go-mix's per-package builtin
// registries down to a single flat registry, since JMESPath has no
// module/import system.
package functions

import (
	"github.com/akashmaji946/jmespath/ast"
	"github.com/akashmaji946/jmespath/value"
)

// Context carries the per-search state a builtin or the interpreter
// needs to build a position-accurate error: the original expression
// text and the byte offset of the AST node currently being evaluated.
// It is intentionally small and short-lived (spec.md §5: "the per-
// search context is short-lived"), unlike Registry which is long-lived
// and safely shared across concurrent searches.
type Context struct {
	Expression string
	Offset     int
}

// Evaluator is the callback surface the function registry uses to
// evaluate an expression-reference argument (spec.md §4.4's map,
// sort_by, min_by, max_by all take an ExpRef and must apply it to
// candidate elements). interp.Interpreter implements this interface;
// functions never imports interp, keeping the dependency arrow
// pointing the direction spec.md §2 describes: "the Function registry
// ... may call the Interpreter".
type Evaluator interface {
	Eval(node *ast.Node, current value.Value, ctx *Context) (value.Value, error)
}
