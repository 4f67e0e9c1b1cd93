/*
File    : jmespath/functions/math_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/jmespath/value"
)

func mustEval(t *testing.T, r *Registry, name string, args []value.Value) value.Value {
	t.Helper()
	out, err := r.Evaluate(name, args, nil, ctx())
	require.NoError(t, err)
	return out
}

func TestMathBuiltins(t *testing.T) {
	r := FromDefaults()

	assert.Equal(t, value.Number{Val: 2}, mustEval(t, r, "abs", []value.Value{value.Number{Val: -2}}))
	assert.Equal(t, value.Number{Val: 3}, mustEval(t, r, "ceil", []value.Value{value.Number{Val: 2.1}}))
	assert.Equal(t, value.Number{Val: 2}, mustEval(t, r, "floor", []value.Value{value.Number{Val: 2.9}}))

	nums := value.NewArray(value.Number{Val: 1}, value.Number{Val: 2}, value.Number{Val: 3})
	assert.Equal(t, value.Number{Val: 2}, mustEval(t, r, "avg", []value.Value{nums}))
	assert.Equal(t, value.Number{Val: 6}, mustEval(t, r, "sum", []value.Value{nums}))
	assert.Equal(t, value.Number{Val: 3}, mustEval(t, r, "max", []value.Value{nums}))
	assert.Equal(t, value.Number{Val: 1}, mustEval(t, r, "min", []value.Value{nums}))

	empty := value.NewArray()
	assert.Equal(t, value.Null{}, mustEval(t, r, "avg", []value.Value{empty}))
	assert.Equal(t, value.Number{Val: 0}, mustEval(t, r, "sum", []value.Value{empty}))
	assert.Equal(t, value.Null{}, mustEval(t, r, "max", []value.Value{empty}))
	assert.Equal(t, value.Null{}, mustEval(t, r, "min", []value.Value{empty}))

	strs := value.NewArray(value.String{Val: "b"}, value.String{Val: "a"}, value.String{Val: "c"})
	assert.Equal(t, value.String{Val: "c"}, mustEval(t, r, "max", []value.Value{strs}))
	assert.Equal(t, value.String{Val: "a"}, mustEval(t, r, "min", []value.Value{strs}))
}
