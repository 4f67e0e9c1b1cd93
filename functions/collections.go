/*
File    : jmespath/functions/collections.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Collection builtins: length, keys, values, merge, reverse, sort,
// not_null, to_array, type, join. Grounded on the teacher's
// std/arrays.go and std/objects.go wrappers, adapted to JMESPath's
// Object/Array value model and to operate over value.Value rather than
// go-mix's GoMixObject.
package functions

import (
	"strings"
	"unicode/utf8"

	"github.com/akashmaji946/jmespath/value"
)

func collectionBuiltins() []*Builtin {
	return []*Builtin{
		{
			Name:      "length",
			Signature: Signature{Inputs: []ArgType{Union(StrT, ArrT, ObjT)}},
			Call: func(_ Evaluator, _ *Context, args []value.Value) (value.Value, error) {
				switch v := args[0].(type) {
				case value.String:
					return value.Number{Val: float64(utf8.RuneCountInString(v.Val))}, nil
				case value.Array:
					return value.Number{Val: float64(len(v.Elements))}, nil
				case *value.Object:
					return value.Number{Val: float64(v.Len())}, nil
				}
				return value.Number{Val: 0}, nil
			},
		},
		{
			Name:      "keys",
			Signature: Signature{Inputs: []ArgType{ObjT}},
			Call: func(_ Evaluator, _ *Context, args []value.Value) (value.Value, error) {
				obj := args[0].(*value.Object)
				elems := make([]value.Value, 0, obj.Len())
				for _, k := range obj.Keys() {
					elems = append(elems, value.String{Val: k})
				}
				return value.NewArray(elems...), nil
			},
		},
		{
			Name:      "values",
			Signature: Signature{Inputs: []ArgType{ObjT}},
			Call: func(_ Evaluator, _ *Context, args []value.Value) (value.Value, error) {
				obj := args[0].(*value.Object)
				elems := make([]value.Value, 0, obj.Len())
				for _, k := range obj.Keys() {
					v, _ := obj.Get(k)
					elems = append(elems, v)
				}
				return value.NewArray(elems...), nil
			},
		},
		{
			Name:      "merge",
			Signature: Signature{Inputs: []ArgType{ObjT}, Variadic: ObjT},
			Call: func(_ Evaluator, _ *Context, args []value.Value) (value.Value, error) {
				out := value.NewObject()
				for _, a := range args {
					obj := a.(*value.Object)
					for _, k := range obj.Keys() {
						v, _ := obj.Get(k)
						out.Set(k, v)
					}
				}
				return out, nil
			},
		},
		{
			Name:      "reverse",
			Signature: Signature{Inputs: []ArgType{Union(StrT, ArrT)}},
			Call: func(_ Evaluator, _ *Context, args []value.Value) (value.Value, error) {
				switch v := args[0].(type) {
				case value.String:
					runes := []rune(v.Val)
					for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
						runes[i], runes[j] = runes[j], runes[i]
					}
					return value.String{Val: string(runes)}, nil
				case value.Array:
					n := len(v.Elements)
					out := make([]value.Value, n)
					for i, e := range v.Elements {
						out[n-1-i] = e
					}
					return value.NewArray(out...), nil
				}
				return args[0], nil
			},
		},
		{
			Name:      "sort",
			Signature: Signature{Inputs: []ArgType{Union(TypedArray(NumT), TypedArray(StrT))}},
			Call: func(_ Evaluator, _ *Context, args []value.Value) (value.Value, error) {
				arr := args[0].(value.Array)
				out := make([]value.Value, len(arr.Elements))
				copy(out, arr.Elements)
				value.SortStable(out)
				return value.NewArray(out...), nil
			},
		},
		{
			Name:      "not_null",
			Signature: Signature{Inputs: []ArgType{Any}, Variadic: Any},
			Call: func(_ Evaluator, _ *Context, args []value.Value) (value.Value, error) {
				for _, a := range args {
					if _, isNull := a.(value.Null); !isNull {
						return a, nil
					}
				}
				return value.Null{}, nil
			},
		},
		{
			Name:      "to_array",
			Signature: Signature{Inputs: []ArgType{Any}},
			Call: func(_ Evaluator, _ *Context, args []value.Value) (value.Value, error) {
				if arr, ok := args[0].(value.Array); ok {
					return arr, nil
				}
				return value.NewArray(args[0]), nil
			},
		},
		{
			Name:      "type",
			Signature: Signature{Inputs: []ArgType{Any}},
			Call: func(_ Evaluator, _ *Context, args []value.Value) (value.Value, error) {
				return value.String{Val: string(args[0].Type())}, nil
			},
		},
		{
			Name:      "join",
			Signature: Signature{Inputs: []ArgType{StrT, TypedArray(StrT)}},
			Call: func(_ Evaluator, _ *Context, args []value.Value) (value.Value, error) {
				glue := args[0].(value.String).Val
				arr := args[1].(value.Array)
				parts := make([]string, len(arr.Elements))
				for i, e := range arr.Elements {
					parts[i] = e.(value.String).Val
				}
				return value.String{Val: strings.Join(parts, glue)}, nil
			},
		},
	}
}
