/*
File    : jmespath/functions/predicates.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// String/array predicate builtins: contains, ends_with, starts_with.
// Grounded on the teacher's std/strings.go predicate wrappers, adapted
// so contains also accepts an Array haystack per spec.md §4.4.
package functions

import (
	"strings"

	"github.com/akashmaji946/jmespath/value"
)

func predicateBuiltins() []*Builtin {
	return []*Builtin{
		{
			Name:      "contains",
			Signature: Signature{Inputs: []ArgType{Union(StrT, ArrT), Any}},
			Call: func(_ Evaluator, _ *Context, args []value.Value) (value.Value, error) {
				needle := args[1]
				switch haystack := args[0].(type) {
				case value.String:
					s, ok := needle.(value.String)
					if !ok {
						return value.Bool{Val: false}, nil
					}
					return value.Bool{Val: strings.Contains(haystack.Val, s.Val)}, nil
				case value.Array:
					for _, e := range haystack.Elements {
						if value.Equal(e, needle) {
							return value.Bool{Val: true}, nil
						}
					}
					return value.Bool{Val: false}, nil
				}
				return value.Bool{Val: false}, nil
			},
		},
		{
			Name:      "starts_with",
			Signature: Signature{Inputs: []ArgType{StrT, StrT}},
			Call: func(_ Evaluator, _ *Context, args []value.Value) (value.Value, error) {
				s := args[0].(value.String).Val
				prefix := args[1].(value.String).Val
				return value.Bool{Val: strings.HasPrefix(s, prefix)}, nil
			},
		},
		{
			Name:      "ends_with",
			Signature: Signature{Inputs: []ArgType{StrT, StrT}},
			Call: func(_ Evaluator, _ *Context, args []value.Value) (value.Value, error) {
				s := args[0].(value.String).Val
				suffix := args[1].(value.String).Val
				return value.Bool{Val: strings.HasSuffix(s, suffix)}, nil
			},
		},
	}
}
