/*
File    : jmespath/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the parsed representation of a JMESPath
// expression. Where the teacher interpreter (go-mix) gives every
// expression shape its own struct behind a NodeVisitor interface, a
// JMESPath expression tree has a small, closed set of shapes (the
// eighteen Kinds below), so this package follows the flatter
// tagged-node style of the original jmespath.rs `Ast` enum instead:
// one Node struct, one Kind tag, and only the payload fields each Kind
// actually uses.
package ast

import "github.com/akashmaji946/jmespath/value"

// Kind tags which case of the JMESPath grammar a Node represents.
type Kind int

const (
	Identifier Kind = iota
	Literal
	CurrentNode
	Subexpr
	Index
	Projection
	ObjectValues
	Flatten
	Slice
	Or
	And
	Not
	Comparison
	Condition
	MultiList
	MultiHash
	Function
	Expref
)

// CompareOp enumerates the comparison operators carried by a
// Comparison node.
type CompareOp int

const (
	Eq CompareOp = iota
	Ne
	Lt
	Lte
	Gt
	Gte
)

func (op CompareOp) String() string {
	switch op {
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Lte:
		return "<="
	case Gt:
		return ">"
	case Gte:
		return ">="
	default:
		return "?"
	}
}

// HashPair is one `key: expr` entry of a MultiHash node, kept in the
// written order — spec.md §4.3 requires MultiHash to "preserve the
// written order of k/c pairs".
type HashPair struct {
	Key   string
	Value *Node
}

// Node is a single AST node. Only the fields relevant to Kind are
// populated; the rest are zero. This mirrors the original Rust
// source's single `Ast` enum more closely than the teacher's
// one-struct-per-shape style, because JMESPath's grammar is small and
// closed (unlike go-mix's general-purpose statement/expression
// grammar), and `Pos` carries the byte offset used for error
// rendering, the analogue of the teacher's Token.Line/Column.
type Node struct {
	Kind Kind
	Pos  int

	// Identifier
	Name string

	// Literal
	Value value.Value

	// Subexpr, Projection, ObjectValues (child via Lhs), Flatten (child
	// via Lhs), Or, And, Comparison
	Lhs *Node
	Rhs *Node

	// Not, Expref
	Child *Node

	// Index
	Int int

	// Slice
	Start *int
	Stop  *int
	Step  *int

	// Comparison
	Op CompareOp

	// Condition
	Test *Node
	Then *Node

	// MultiList, Function args
	Items []*Node

	// MultiHash
	Pairs []HashPair

	// Function
	FuncName string
}

func leaf(kind Kind, pos int) *Node { return &Node{Kind: kind, Pos: pos} }

func NewIdentifier(pos int, name string) *Node {
	n := leaf(Identifier, pos)
	n.Name = name
	return n
}

func NewLiteral(pos int, v value.Value) *Node {
	n := leaf(Literal, pos)
	n.Value = v
	return n
}

func NewCurrentNode(pos int) *Node { return leaf(CurrentNode, pos) }

func NewSubexpr(pos int, lhs, rhs *Node) *Node {
	n := leaf(Subexpr, pos)
	n.Lhs, n.Rhs = lhs, rhs
	return n
}

func NewIndex(pos int, i int) *Node {
	n := leaf(Index, pos)
	n.Int = i
	return n
}

func NewProjection(pos int, lhs, rhs *Node) *Node {
	n := leaf(Projection, pos)
	n.Lhs, n.Rhs = lhs, rhs
	return n
}

func NewObjectValues(pos int, child *Node) *Node {
	n := leaf(ObjectValues, pos)
	n.Lhs = child
	return n
}

func NewFlatten(pos int, child *Node) *Node {
	n := leaf(Flatten, pos)
	n.Lhs = child
	return n
}

func NewSlice(pos int, start, stop, step *int) *Node {
	n := leaf(Slice, pos)
	n.Start, n.Stop, n.Step = start, stop, step
	return n
}

func NewOr(pos int, lhs, rhs *Node) *Node {
	n := leaf(Or, pos)
	n.Lhs, n.Rhs = lhs, rhs
	return n
}

func NewAnd(pos int, lhs, rhs *Node) *Node {
	n := leaf(And, pos)
	n.Lhs, n.Rhs = lhs, rhs
	return n
}

func NewNot(pos int, child *Node) *Node {
	n := leaf(Not, pos)
	n.Child = child
	return n
}

func NewComparison(pos int, op CompareOp, lhs, rhs *Node) *Node {
	n := leaf(Comparison, pos)
	n.Op, n.Lhs, n.Rhs = op, lhs, rhs
	return n
}

func NewCondition(pos int, test, then *Node) *Node {
	n := leaf(Condition, pos)
	n.Test, n.Then = test, then
	return n
}

func NewMultiList(pos int, items []*Node) *Node {
	n := leaf(MultiList, pos)
	n.Items = items
	return n
}

func NewMultiHash(pos int, pairs []HashPair) *Node {
	n := leaf(MultiHash, pos)
	n.Pairs = pairs
	return n
}

func NewFunction(pos int, name string, args []*Node) *Node {
	n := leaf(Function, pos)
	n.FuncName = name
	n.Items = args
	return n
}

func NewExpref(pos int, child *Node) *Node {
	n := leaf(Expref, pos)
	n.Child = child
	return n
}
