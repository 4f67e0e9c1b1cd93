/*
File    : jmespath/interp/interp.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interp implements the JMESPath tree-walking interpreter:
// given a parsed AST, a current value, and a function registry, it
// produces a result value or a RuntimeError. Grounded on the teacher's
// eval.Evaluator struct in eval/evaluator.go, which keeps a handle back
// to the parser for position-accurate error reporting; Interpreter
// keeps that same role via functions.Context instead of a full parser
// handle, since JMESPath errors only ever need the original expression
// text and a byte offset, not live parser state.
package interp

import (
	"github.com/akashmaji946/jmespath/ast"
	"github.com/akashmaji946/jmespath/functions"
	"github.com/akashmaji946/jmespath/value"
)

// Interpreter walks an AST against a root value, calling into registry
// for Function nodes. It implements functions.Evaluator so the
// registry's higher-order builtins (map, sort_by, max_by, min_by) can
// call back into Eval for their ExpRef arguments.
type Interpreter struct {
	registry *functions.Registry
}

// New builds an Interpreter around registry. A nil registry is
// replaced by functions.FromDefaults(), matching spec.md §6's
// "default registry is the set in §4.4".
func New(registry *functions.Registry) *Interpreter {
	if registry == nil {
		registry = functions.FromDefaults()
	}
	return &Interpreter{registry: registry}
}

// Eval implements functions.Evaluator.
func (it *Interpreter) Eval(node *ast.Node, current value.Value, ctx *functions.Context) (value.Value, error) {
	return it.Interpret(node, current, ctx)
}

// Interpret walks node against current, dispatching on ast.Kind per
// spec.md §4.3's evaluation-rule table.
func (it *Interpreter) Interpret(node *ast.Node, current value.Value, ctx *functions.Context) (value.Value, error) {
	if node == nil {
		return value.Null{}, nil
	}
	ctx.Offset = node.Pos

	switch node.Kind {
	case ast.Identifier:
		return it.evalIdentifier(node, current)
	case ast.Literal:
		return node.Value, nil
	case ast.CurrentNode:
		return current, nil
	case ast.Index:
		return it.evalIndex(node, current)
	case ast.Subexpr:
		return it.evalSubexpr(node, current, ctx)
	case ast.Or:
		return it.evalOr(node, current, ctx)
	case ast.And:
		return it.evalAnd(node, current, ctx)
	case ast.Not:
		return it.evalNot(node, current, ctx)
	case ast.Comparison:
		return it.evalComparison(node, current, ctx)
	case ast.ObjectValues:
		return it.evalObjectValues(node, current, ctx)
	case ast.Flatten:
		return it.evalFlatten(node, current, ctx)
	case ast.Slice:
		return it.evalSlice(node, current)
	case ast.Projection:
		return it.evalProjection(node, current, ctx)
	case ast.Condition:
		return it.evalCondition(node, current, ctx)
	case ast.MultiList:
		return it.evalMultiList(node, current, ctx)
	case ast.MultiHash:
		return it.evalMultiHash(node, current, ctx)
	case ast.Expref:
		return value.ExprRef{Node: node.Child}, nil
	case ast.Function:
		return it.evalFunction(node, current, ctx)
	default:
		return value.Null{}, nil
	}
}

func (it *Interpreter) evalIdentifier(node *ast.Node, current value.Value) (value.Value, error) {
	obj, ok := current.(*value.Object)
	if !ok {
		return value.Null{}, nil
	}
	v, ok := obj.Get(node.Name)
	if !ok {
		return value.Null{}, nil
	}
	return v, nil
}

func (it *Interpreter) evalIndex(node *ast.Node, current value.Value) (value.Value, error) {
	arr, ok := current.(value.Array)
	if !ok {
		return value.Null{}, nil
	}
	i := node.Int
	if i < 0 {
		i += len(arr.Elements)
	}
	if i < 0 || i >= len(arr.Elements) {
		return value.Null{}, nil
	}
	return arr.Elements[i], nil
}

func (it *Interpreter) evalSubexpr(node *ast.Node, current value.Value, ctx *functions.Context) (value.Value, error) {
	l, err := it.Interpret(node.Lhs, current, ctx)
	if err != nil {
		return nil, err
	}
	if _, isNull := l.(value.Null); isNull {
		return value.Null{}, nil
	}
	return it.Interpret(node.Rhs, l, ctx)
}

func (it *Interpreter) evalOr(node *ast.Node, current value.Value, ctx *functions.Context) (value.Value, error) {
	l, err := it.Interpret(node.Lhs, current, ctx)
	if err != nil {
		return nil, err
	}
	if value.Truthy(l) {
		return l, nil
	}
	return it.Interpret(node.Rhs, current, ctx)
}

func (it *Interpreter) evalAnd(node *ast.Node, current value.Value, ctx *functions.Context) (value.Value, error) {
	l, err := it.Interpret(node.Lhs, current, ctx)
	if err != nil {
		return nil, err
	}
	if !value.Truthy(l) {
		return l, nil
	}
	return it.Interpret(node.Rhs, current, ctx)
}

func (it *Interpreter) evalNot(node *ast.Node, current value.Value, ctx *functions.Context) (value.Value, error) {
	c, err := it.Interpret(node.Child, current, ctx)
	if err != nil {
		return nil, err
	}
	return value.Bool{Val: !value.Truthy(c)}, nil
}

func (it *Interpreter) evalComparison(node *ast.Node, current value.Value, ctx *functions.Context) (value.Value, error) {
	l, err := it.Interpret(node.Lhs, current, ctx)
	if err != nil {
		return nil, err
	}
	r, err := it.Interpret(node.Rhs, current, ctx)
	if err != nil {
		return nil, err
	}
	switch node.Op {
	case ast.Eq:
		return value.Bool{Val: value.Equal(l, r)}, nil
	case ast.Ne:
		return value.Bool{Val: !value.Equal(l, r)}, nil
	default:
		ord, ok := value.Compare(l, r)
		if !ok {
			return value.Null{}, nil
		}
		switch node.Op {
		case ast.Lt:
			return value.Bool{Val: ord == value.Less}, nil
		case ast.Lte:
			return value.Bool{Val: ord != value.Greater}, nil
		case ast.Gt:
			return value.Bool{Val: ord == value.Greater}, nil
		case ast.Gte:
			return value.Bool{Val: ord != value.Less}, nil
		}
		return value.Null{}, nil
	}
}

func (it *Interpreter) evalObjectValues(node *ast.Node, current value.Value, ctx *functions.Context) (value.Value, error) {
	c, err := it.Interpret(node.Lhs, current, ctx)
	if err != nil {
		return nil, err
	}
	obj, ok := c.(*value.Object)
	if !ok {
		return value.Null{}, nil
	}
	elems := make([]value.Value, 0, obj.Len())
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		elems = append(elems, v)
	}
	return value.NewArray(elems...), nil
}

func (it *Interpreter) evalFlatten(node *ast.Node, current value.Value, ctx *functions.Context) (value.Value, error) {
	c, err := it.Interpret(node.Lhs, current, ctx)
	if err != nil {
		return nil, err
	}
	arr, ok := c.(value.Array)
	if !ok {
		return value.Null{}, nil
	}
	out := make([]value.Value, 0, len(arr.Elements))
	for _, e := range arr.Elements {
		if inner, ok := e.(value.Array); ok {
			out = append(out, inner.Elements...)
		} else {
			out = append(out, e)
		}
	}
	return value.NewArray(out...), nil
}

// evalSlice implements Python-style slicing (spec.md §4.3, §9): start
// and stop are clamped into range, step defaults to 1, and a negative
// step walks the array backwards with inverted defaults.
func (it *Interpreter) evalSlice(node *ast.Node, current value.Value) (value.Value, error) {
	arr, ok := current.(value.Array)
	if !ok {
		return value.Null{}, nil
	}
	n := len(arr.Elements)
	step := 1
	if node.Step != nil {
		step = *node.Step
	}

	var start, stop int
	if step > 0 {
		start, stop = 0, n
	} else {
		start, stop = n-1, -1
	}
	if node.Start != nil {
		start = clampSliceIndex(*node.Start, n, step > 0)
	}
	if node.Stop != nil {
		stop = clampSliceIndex(*node.Stop, n, step > 0)
	}

	var out []value.Value
	if step > 0 {
		for i := start; i < stop; i += step {
			if i >= 0 && i < n {
				out = append(out, arr.Elements[i])
			}
		}
	} else {
		for i := start; i > stop; i += step {
			if i >= 0 && i < n {
				out = append(out, arr.Elements[i])
			}
		}
	}
	return value.NewArray(out...), nil
}

// clampSliceIndex normalizes a possibly-negative slice bound into
// [0, n] (ascending) or [-1, n-1] (descending), Python's slice.indices
// rule.
func clampSliceIndex(i, n int, ascending bool) int {
	if i < 0 {
		i += n
	}
	if ascending {
		if i < 0 {
			return 0
		}
		if i > n {
			return n
		}
		return i
	}
	if i < -1 {
		return -1
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

func (it *Interpreter) evalProjection(node *ast.Node, current value.Value, ctx *functions.Context) (value.Value, error) {
	l, err := it.Interpret(node.Lhs, current, ctx)
	if err != nil {
		return nil, err
	}
	arr, ok := l.(value.Array)
	if !ok {
		return value.Null{}, nil
	}
	out := make([]value.Value, 0, len(arr.Elements))
	for _, e := range arr.Elements {
		r, err := it.Interpret(node.Rhs, e, ctx)
		if err != nil {
			return nil, err
		}
		if _, isNull := r.(value.Null); isNull {
			continue
		}
		out = append(out, r)
	}
	return value.NewArray(out...), nil
}

// evalCondition implements the filter guard `[?test]`, wired per
// SPEC_FULL.md §8 as the rhs of a Projection: only elements
// whose test is truthy survive, and the surviving value is Then
// evaluated against the same element (CurrentNode when no explicit
// rhs followed the filter).
func (it *Interpreter) evalCondition(node *ast.Node, current value.Value, ctx *functions.Context) (value.Value, error) {
	test, err := it.Interpret(node.Test, current, ctx)
	if err != nil {
		return nil, err
	}
	if !value.Truthy(test) {
		return value.Null{}, nil
	}
	return it.Interpret(node.Then, current, ctx)
}

func (it *Interpreter) evalMultiList(node *ast.Node, current value.Value, ctx *functions.Context) (value.Value, error) {
	if _, isNull := current.(value.Null); isNull {
		return value.Null{}, nil
	}
	out := make([]value.Value, len(node.Items))
	for i, item := range node.Items {
		v, err := it.Interpret(item, current, ctx)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return value.NewArray(out...), nil
}

func (it *Interpreter) evalMultiHash(node *ast.Node, current value.Value, ctx *functions.Context) (value.Value, error) {
	if _, isNull := current.(value.Null); isNull {
		return value.Null{}, nil
	}
	out := value.NewObject()
	for _, pair := range node.Pairs {
		v, err := it.Interpret(pair.Value, current, ctx)
		if err != nil {
			return nil, err
		}
		out.Set(pair.Key, v)
	}
	return out, nil
}

func (it *Interpreter) evalFunction(node *ast.Node, current value.Value, ctx *functions.Context) (value.Value, error) {
	args := make([]value.Value, len(node.Items))
	for i, a := range node.Items {
		v, err := it.Interpret(a, current, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return it.registry.Evaluate(node.FuncName, args, it, ctx)
}
