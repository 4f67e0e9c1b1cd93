/*
File    : jmespath/functions/higher_order.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Higher-order builtins: map, sort_by, max_by, min_by. These are the
// only builtins that call back into the interpreter (via the Evaluator
// interface in context.go) to apply an expression-reference argument
// to each candidate element, grounded on spec.md §4.4's ExpRef
// invocation rule and on the teacher's higher-order std wrappers
// (e.g. std/collections.go's map/filter over GoMixObject slices).
package functions

import (
	"sort"

	"github.com/akashmaji946/jmespath/ast"
	"github.com/akashmaji946/jmespath/jmerrors"
	"github.com/akashmaji946/jmespath/value"
)

func higherOrderBuiltins() []*Builtin {
	return []*Builtin{
		{
			Name:      "map",
			Signature: Signature{Inputs: []ArgType{ExprT, ArrT}},
			Call: func(ev Evaluator, ctx *Context, args []value.Value) (value.Value, error) {
				expr := args[0].(value.ExprRef)
				node := expr.Node.(*ast.Node)
				arr := args[1].(value.Array)
				out := make([]value.Value, len(arr.Elements))
				for i, e := range arr.Elements {
					v, err := ev.Eval(node, e, ctx)
					if err != nil {
						return nil, err
					}
					out[i] = v
				}
				return value.NewArray(out...), nil
			},
		},
		{
			Name:      "sort_by",
			Signature: Signature{Inputs: []ArgType{ArrT, ExprT}},
			Call: func(ev Evaluator, ctx *Context, args []value.Value) (value.Value, error) {
				arr := args[0].(value.Array)
				expr := args[1].(value.ExprRef)
				node := expr.Node.(*ast.Node)
				keys, err := projectSortKeys(ev, ctx, node, arr.Elements)
				if err != nil {
					return nil, err
				}
				idx := make([]int, len(arr.Elements))
				for i := range idx {
					idx[i] = i
				}
				sort.SliceStable(idx, func(i, j int) bool {
					ord, _ := value.Compare(keys[idx[i]], keys[idx[j]])
					return ord == value.Less
				})
				out := make([]value.Value, len(arr.Elements))
				for i, k := range idx {
					out[i] = arr.Elements[k]
				}
				return value.NewArray(out...), nil
			},
		},
		{
			Name:      "max_by",
			Signature: Signature{Inputs: []ArgType{ArrT, ExprT}},
			Call: func(ev Evaluator, ctx *Context, args []value.Value) (value.Value, error) {
				return extremumBy(ev, ctx, args, false)
			},
		},
		{
			Name:      "min_by",
			Signature: Signature{Inputs: []ArgType{ArrT, ExprT}},
			Call: func(ev Evaluator, ctx *Context, args []value.Value) (value.Value, error) {
				return extremumBy(ev, ctx, args, true)
			},
		},
	}
}

// projectSortKeys evaluates node against every element and checks that
// every resulting key is a Number or a String, and that all keys share
// the same kind, per spec.md §4.4's sort_by/max_by/min_by rule.
// InvalidReturnType carries the offending element's index.
func projectSortKeys(ev Evaluator, ctx *Context, node *ast.Node, elems []value.Value) ([]value.Value, error) {
	keys := make([]value.Value, len(elems))
	var kind value.Kind
	for i, e := range elems {
		k, err := ev.Eval(node, e, ctx)
		if err != nil {
			return nil, err
		}
		if k.Type() != value.NumberKind && k.Type() != value.StringKind {
			return nil, jmerrors.NewInvalidReturnType(ctx.Expression, ctx.Offset, "number|string", string(k.Type()), 1, i)
		}
		if kind == "" {
			kind = k.Type()
		} else if k.Type() != kind {
			return nil, jmerrors.NewInvalidReturnType(ctx.Expression, ctx.Offset, string(kind), string(k.Type()), 1, i)
		}
		keys[i] = k
	}
	return keys, nil
}

func extremumBy(ev Evaluator, ctx *Context, args []value.Value, wantMin bool) (value.Value, error) {
	arr := args[0].(value.Array)
	expr := args[1].(value.ExprRef)
	node := expr.Node.(*ast.Node)
	if len(arr.Elements) == 0 {
		return value.Null{}, nil
	}
	keys, err := projectSortKeys(ev, ctx, node, arr.Elements)
	if err != nil {
		return nil, err
	}
	bestIdx := 0
	for i := 1; i < len(keys); i++ {
		ord, _ := value.Compare(keys[i], keys[bestIdx])
		if (wantMin && ord == value.Less) || (!wantMin && ord == value.Greater) {
			bestIdx = i
		}
	}
	return arr.Elements[bestIdx], nil
}
