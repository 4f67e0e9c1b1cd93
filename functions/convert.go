/*
File    : jmespath/functions/convert.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Conversion builtins: to_number, to_string. Grounded on the teacher's
// std/json.go, which already reaches for encoding/json to move between
// Go-native values and GoMixObject; no third-party JSON library appears
// anywhere in the retrieved pack, so stdlib json is the grounded choice
// (see DESIGN.md's ambient-stack justification).
package functions

import (
	"encoding/json"

	"github.com/akashmaji946/jmespath/value"
)

func convertBuiltins() []*Builtin {
	return []*Builtin{
		{
			Name:      "to_number",
			Signature: Signature{Inputs: []ArgType{Any}},
			Call: func(_ Evaluator, _ *Context, args []value.Value) (value.Value, error) {
				switch v := args[0].(type) {
				case value.Number:
					return v, nil
				case value.String:
					var n float64
					if err := json.Unmarshal([]byte(v.Val), &n); err != nil {
						return value.Null{}, nil
					}
					return value.Number{Val: n}, nil
				default:
					return value.Null{}, nil
				}
			},
		},
		{
			Name:      "to_string",
			Signature: Signature{Inputs: []ArgType{Union(ObjT, ArrT, BoolT, NumT, StrT, NullT)}},
			Call: func(_ Evaluator, _ *Context, args []value.Value) (value.Value, error) {
				if s, ok := args[0].(value.String); ok {
					return s, nil
				}
				b, err := json.Marshal(value.ToInterface(args[0]))
				if err != nil {
					return value.Null{}, nil
				}
				return value.String{Val: string(b)}, nil
			},
		},
	}
}
