/*
File    : jmespath/functions/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package functions

// defaultBuiltins collects every function spec.md §4.4's table names.
// Each group lives in its own file (math.go, predicates.go,
// collections.go, higher_order.go, convert.go), the same "one file per
// related cluster of builtins" layout the teacher uses across
// std/math.go, std/strings.go, std/arrays.go, etc.
func defaultBuiltins() []*Builtin {
	var all []*Builtin
	all = append(all, mathBuiltins()...)
	all = append(all, predicateBuiltins()...)
	all = append(all, collectionBuiltins()...)
	all = append(all, higherOrderBuiltins()...)
	all = append(all, convertBuiltins()...)
	return all
}
