/*
File    : jmespath/functions/signature.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package functions

import (
	"strings"

	"github.com/akashmaji946/jmespath/value"
)

// ArgType classifies one positional argument (or the variadic tail) of
// a Signature. spec.md §4.4 enumerates: Any, Null, String, Number,
// Bool, Object, Array, ExpRef, TypedArray(T), Union([T...]).
type ArgType interface {
	Accepts(v value.Value) bool
	Name() string
}

type anyType struct{}

func (anyType) Accepts(value.Value) bool { return true }
func (anyType) Name() string             { return "any" }

type kindType struct {
	kind value.Kind
	name string
}

func (k kindType) Accepts(v value.Value) bool { return v.Type() == k.kind }
func (k kindType) Name() string               { return k.name }

// typedArrayType matches an Array every one of whose elements matches
// Elem; the empty array vacuously matches any Elem.
type typedArrayType struct {
	Elem ArgType
}

func (t typedArrayType) Accepts(v value.Value) bool {
	arr, ok := v.(value.Array)
	if !ok {
		return false
	}
	for _, e := range arr.Elements {
		if !t.Elem.Accepts(e) {
			return false
		}
	}
	return true
}

func (t typedArrayType) Name() string {
	return "array[" + t.Elem.Name() + "]"
}

// unionType matches any one of Members; its rendered name lists each
// member's name joined by "|", per spec.md §4.4's rendering rule.
type unionType struct {
	Members []ArgType
}

func (u unionType) Accepts(v value.Value) bool {
	for _, m := range u.Members {
		if m.Accepts(v) {
			return true
		}
	}
	return false
}

func (u unionType) Name() string {
	names := make([]string, len(u.Members))
	for i, m := range u.Members {
		names[i] = m.Name()
	}
	return strings.Join(names, "|")
}

// Exported ArgType constructors and singletons.
var (
	Any     ArgType = anyType{}
	NullT   ArgType = kindType{value.NullKind, "null"}
	StrT    ArgType = kindType{value.StringKind, "string"}
	NumT    ArgType = kindType{value.NumberKind, "number"}
	BoolT   ArgType = kindType{value.BoolKind, "boolean"}
	ObjT    ArgType = kindType{value.ObjectKind, "object"}
	ArrT    ArgType = kindType{value.ArrayKind, "array"}
	ExprT   ArgType = kindType{value.ExprKind, "expref"}
)

func TypedArray(elem ArgType) ArgType { return typedArrayType{Elem: elem} }
func Union(members ...ArgType) ArgType { return unionType{Members: members} }

// Signature is the typed interface of a builtin: positional input
// types, an optional variadic tail type, and an output type (output is
// documentation-only here — Go has no static return-type checking
// across a Value-typed interface boundary, so it is not enforced; the
// default builtins leave it nil).
type Signature struct {
	Inputs   []ArgType
	Variadic ArgType // nil if not variadic
	Output   ArgType
}

// typeOf finds the ArgType expected for the k-th argument.
func (s Signature) typeOf(k int) ArgType {
	if k < len(s.Inputs) {
		return s.Inputs[k]
	}
	return s.Variadic
}
