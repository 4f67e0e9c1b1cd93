/*
File    : jmespath/functions/registry.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package functions

import (
	"github.com/akashmaji946/jmespath/jmerrors"
	"github.com/akashmaji946/jmespath/value"
)

// Call is the native Go implementation of a builtin or custom
// function, invoked only after Registry.Evaluate has validated arity
// and argument types.
type Call func(ev Evaluator, ctx *Context, args []value.Value) (value.Value, error)

// Builtin bundles a function's name, its Signature, and its Call —
// the same three-field shape as the teacher's std.Builtin{Name,
// Callback}, with Signature added for JMESPath's dynamic argument
// typing (go-mix's builtins do their own ad hoc argument checking
// inline; JMESPath centralizes it in Registry.Evaluate instead).
type Builtin struct {
	Name      string
	Signature Signature
	Call      Call
}

// Registry maps function names to Builtins. A Registry is immutable
// after construction from the caller's point of view during search
// (spec.md §5: "the function registry are immutable after
// construction and therefore safely shared across threads"); Register
// and Deregister are provided for building one up before first use.
type Registry struct {
	funcs map[string]*Builtin
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{funcs: make(map[string]*Builtin)}
}

// FromDefaults creates a registry preloaded with every builtin in
// spec.md §4.4's table.
func FromDefaults() *Registry {
	r := New()
	for _, b := range defaultBuiltins() {
		r.Register(b)
	}
	return r
}

// Register adds or replaces a function.
func (r *Registry) Register(b *Builtin) {
	r.funcs[b.Name] = b
}

// Deregister removes a function, returning it if it was present.
func (r *Registry) Deregister(name string) *Builtin {
	b, ok := r.funcs[name]
	if !ok {
		return nil
	}
	delete(r.funcs, name)
	return b
}

// Lookup returns the named function without validating or calling it.
func (r *Registry) Lookup(name string) (*Builtin, bool) {
	b, ok := r.funcs[name]
	return b, ok
}

// Evaluate validates args against name's Signature (spec.md §4.4
// step 1: arity, step 2: per-argument type) and, if valid, invokes the
// function. UnknownFunction is raised if name isn't registered.
func (r *Registry) Evaluate(name string, args []value.Value, ev Evaluator, ctx *Context) (value.Value, error) {
	b, ok := r.funcs[name]
	if !ok {
		return nil, jmerrors.NewUnknownFunction(ctx.Expression, ctx.Offset, name)
	}
	if err := validateArity(b.Signature, len(args), ctx); err != nil {
		return nil, err
	}
	for i, arg := range args {
		t := b.Signature.typeOf(i)
		if t == nil {
			continue
		}
		if !t.Accepts(arg) {
			return nil, jmerrors.NewInvalidType(ctx.Expression, ctx.Offset, t.Name(), string(arg.Type()), i)
		}
	}
	return b.Call(ev, ctx, args)
}

func validateArity(sig Signature, actual int, ctx *Context) error {
	expected := len(sig.Inputs)
	if sig.Variadic != nil {
		if actual < expected {
			return jmerrors.NewNotEnoughArguments(ctx.Expression, ctx.Offset, expected, actual)
		}
		return nil
	}
	if actual < expected {
		return jmerrors.NewNotEnoughArguments(ctx.Expression, ctx.Offset, expected, actual)
	}
	if actual > expected {
		return jmerrors.NewTooManyArguments(ctx.Expression, ctx.Offset, expected, actual)
	}
	return nil
}
