/*
File    : jmespath/functions/convert_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/jmespath/value"
)

func TestConvertBuiltins_ToNumber(t *testing.T) {
	r := FromDefaults()
	assert.Equal(t, value.Number{Val: 42}, mustEval(t, r, "to_number", []value.Value{value.Number{Val: 42}}))
	assert.Equal(t, value.Number{Val: 3.5}, mustEval(t, r, "to_number", []value.Value{value.String{Val: "3.5"}}))
	assert.Equal(t, value.Null{}, mustEval(t, r, "to_number", []value.Value{value.String{Val: "not a number"}}))
	assert.Equal(t, value.Null{}, mustEval(t, r, "to_number", []value.Value{value.Bool{Val: true}}))
}

func TestConvertBuiltins_ToString(t *testing.T) {
	r := FromDefaults()
	assert.Equal(t, value.String{Val: "abc"}, mustEval(t, r, "to_string", []value.Value{value.String{Val: "abc"}}))
	assert.Equal(t, value.String{Val: "42"}, mustEval(t, r, "to_string", []value.Value{value.Number{Val: 42}}))
	assert.Equal(t, value.String{Val: "true"}, mustEval(t, r, "to_string", []value.Value{value.Bool{Val: true}}))
	assert.Equal(t, value.String{Val: "null"}, mustEval(t, r, "to_string", []value.Value{value.Null{}}))
}
