/*
File    : jmespath/functions/predicates_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/jmespath/value"
)

func TestPredicateBuiltins_Contains(t *testing.T) {
	r := FromDefaults()

	tests := []struct {
		name      string
		haystack  value.Value
		needle    value.Value
		wantFound bool
	}{
		{"string contains substring", value.String{Val: "hello world"}, value.String{Val: "wor"}, true},
		{"string missing substring", value.String{Val: "hello world"}, value.String{Val: "xyz"}, false},
		{"array contains number", value.NewArray(value.Number{Val: 1}, value.Number{Val: 2}), value.Number{Val: 2}, true},
		{"array missing number", value.NewArray(value.Number{Val: 1}, value.Number{Val: 2}), value.Number{Val: 3}, false},
		{"string needle non-string type mismatch", value.String{Val: "abc"}, value.Number{Val: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustEval(t, r, "contains", []value.Value{tt.haystack, tt.needle})
			assert.Equal(t, value.Bool{Val: tt.wantFound}, out)
		})
	}
}

func TestPredicateBuiltins_StartsEndsWith(t *testing.T) {
	r := FromDefaults()
	assert.Equal(t, value.Bool{Val: true}, mustEval(t, r, "starts_with", []value.Value{value.String{Val: "foobar"}, value.String{Val: "foo"}}))
	assert.Equal(t, value.Bool{Val: false}, mustEval(t, r, "starts_with", []value.Value{value.String{Val: "foobar"}, value.String{Val: "bar"}}))
	assert.Equal(t, value.Bool{Val: true}, mustEval(t, r, "ends_with", []value.Value{value.String{Val: "foobar"}, value.String{Val: "bar"}}))
	assert.Equal(t, value.Bool{Val: false}, mustEval(t, r, "ends_with", []value.Value{value.String{Val: "foobar"}, value.String{Val: "foo"}}))
}
