/*
File    : jmespath/functions/higher_order_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/jmespath/ast"
	"github.com/akashmaji946/jmespath/jmerrors"
	"github.com/akashmaji946/jmespath/value"
)

// fakeEvaluator stands in for interp.Interpreter: it ignores the AST
// node it's handed (the higher-order builtins never inspect it
// themselves, only pass it through) and instead applies fn directly to
// the candidate element, the same indirection principle the teacher's
// tests use to isolate a layer from the one above it.
type fakeEvaluator struct {
	fn func(current value.Value) (value.Value, error)
}

func (f fakeEvaluator) Eval(node *ast.Node, current value.Value, c *Context) (value.Value, error) {
	return f.fn(current)
}

func exprOf(fn func(current value.Value) (value.Value, error)) (value.ExprRef, Evaluator) {
	return value.ExprRef{Node: ast.NewCurrentNode(0)}, fakeEvaluator{fn: fn}
}

func byField(name string) func(value.Value) (value.Value, error) {
	return func(current value.Value) (value.Value, error) {
		obj := current.(*value.Object)
		v, _ := obj.Get(name)
		return v, nil
	}
}

func objWith(fields map[string]value.Value) *value.Object {
	o := value.NewObject()
	for k, v := range fields {
		o.Set(k, v)
	}
	return o
}

func TestHigherOrder_Map(t *testing.T) {
	r := FromDefaults()
	expr, ev := exprOf(func(cur value.Value) (value.Value, error) {
		return value.Number{Val: cur.(value.Number).Val * 2}, nil
	})
	arr := value.NewArray(value.Number{Val: 1}, value.Number{Val: 2}, value.Number{Val: 3})
	out, err := r.Evaluate("map", []value.Value{expr, arr}, ev, ctx())
	require.NoError(t, err)
	assert.Equal(t, value.NewArray(value.Number{Val: 2}, value.Number{Val: 4}, value.Number{Val: 6}), out)
}

func TestHigherOrder_SortBy(t *testing.T) {
	r := FromDefaults()
	expr, ev := exprOf(byField("age"))
	arr := value.NewArray(
		objWith(map[string]value.Value{"age": value.Number{Val: 30}}),
		objWith(map[string]value.Value{"age": value.Number{Val: 10}}),
		objWith(map[string]value.Value{"age": value.Number{Val: 20}}),
	)
	out, err := r.Evaluate("sort_by", []value.Value{arr, expr}, ev, ctx())
	require.NoError(t, err)
	sorted := out.(value.Array)
	ages := make([]float64, len(sorted.Elements))
	for i, e := range sorted.Elements {
		v, _ := e.(*value.Object).Get("age")
		ages[i] = v.(value.Number).Val
	}
	assert.Equal(t, []float64{10, 20, 30}, ages)
}

func TestHigherOrder_SortBy_MixedKindRejected(t *testing.T) {
	r := FromDefaults()
	expr, ev := exprOf(byField("k"))
	arr := value.NewArray(
		objWith(map[string]value.Value{"k": value.Number{Val: 1}}),
		objWith(map[string]value.Value{"k": value.String{Val: "x"}}),
	)
	_, err := r.Evaluate("sort_by", []value.Value{arr, expr}, ev, ctx())
	require.Error(t, err)
	re, ok := err.(*jmerrors.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, jmerrors.InvalidReturnType, re.Reason)
	assert.Equal(t, 1, re.Invocation)
}

func TestHigherOrder_MaxByMinBy(t *testing.T) {
	r := FromDefaults()
	arr := value.NewArray(
		objWith(map[string]value.Value{"age": value.Number{Val: 30}}),
		objWith(map[string]value.Value{"age": value.Number{Val: 10}}),
		objWith(map[string]value.Value{"age": value.Number{Val: 20}}),
	)

	expr, ev := exprOf(byField("age"))
	out, err := r.Evaluate("max_by", []value.Value{arr, expr}, ev, ctx())
	require.NoError(t, err)
	v, _ := out.(*value.Object).Get("age")
	assert.Equal(t, value.Number{Val: 30}, v)

	expr2, ev2 := exprOf(byField("age"))
	out, err = r.Evaluate("min_by", []value.Value{arr, expr2}, ev2, ctx())
	require.NoError(t, err)
	v, _ = out.(*value.Object).Get("age")
	assert.Equal(t, value.Number{Val: 10}, v)

	emptyExpr, emptyEv := exprOf(byField("age"))
	out, err = r.Evaluate("max_by", []value.Value{value.NewArray(), emptyExpr}, emptyEv, ctx())
	require.NoError(t, err)
	assert.Equal(t, value.Null{}, out)
}
