/*
File    : jmespath/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/jmespath/ast"
)

func TestParse_Identifier(t *testing.T) {
	node, err := Parse("foo")
	require.NoError(t, err)
	assert.Equal(t, ast.Identifier, node.Kind)
	assert.Equal(t, "foo", node.Name)
}

func TestParse_Subexpr(t *testing.T) {
	node, err := Parse("foo.bar")
	require.NoError(t, err)
	require.Equal(t, ast.Subexpr, node.Kind)
	assert.Equal(t, ast.Identifier, node.Lhs.Kind)
	assert.Equal(t, "foo", node.Lhs.Name)
	assert.Equal(t, ast.Identifier, node.Rhs.Kind)
	assert.Equal(t, "bar", node.Rhs.Name)
}

func TestParse_IndexUnary(t *testing.T) {
	node, err := Parse("[0]")
	require.NoError(t, err)
	assert.Equal(t, ast.Index, node.Kind)
	assert.Equal(t, 0, node.Int)
}

func TestParse_IndexBinary(t *testing.T) {
	node, err := Parse("a[0]")
	require.NoError(t, err)
	require.Equal(t, ast.Subexpr, node.Kind)
	assert.Equal(t, ast.Identifier, node.Lhs.Kind)
	require.Equal(t, ast.Index, node.Rhs.Kind)
	assert.Equal(t, 0, node.Rhs.Int)
}

func TestParse_NegativeIndex(t *testing.T) {
	node, err := Parse("a[-1]")
	require.NoError(t, err)
	assert.Equal(t, -1, node.Rhs.Int)
}

func TestParse_WildcardValuesProjection(t *testing.T) {
	node, err := Parse("foo.*.b")
	require.NoError(t, err)
	require.Equal(t, ast.Projection, node.Kind)
	require.Equal(t, ast.ObjectValues, node.Lhs.Kind)
	assert.Equal(t, "foo", node.Lhs.Lhs.Name)
	require.Equal(t, ast.Identifier, node.Rhs.Kind)
	assert.Equal(t, "b", node.Rhs.Name)
}

func TestParse_FlattenProjection(t *testing.T) {
	node, err := Parse("a[].b")
	require.NoError(t, err)
	require.Equal(t, ast.Projection, node.Kind)
	require.Equal(t, ast.Flatten, node.Lhs.Kind)
	assert.Equal(t, "a", node.Lhs.Lhs.Name)
	require.Equal(t, ast.Identifier, node.Rhs.Kind)
	assert.Equal(t, "b", node.Rhs.Name)
}

func TestParse_ArrayProjectionNoRHS(t *testing.T) {
	node, err := Parse("a[*]")
	require.NoError(t, err)
	require.Equal(t, ast.Projection, node.Kind)
	assert.Equal(t, "a", node.Lhs.Name)
	assert.Equal(t, ast.CurrentNode, node.Rhs.Kind)
}

func TestParse_Slice(t *testing.T) {
	node, err := Parse("a[1:2:3]")
	require.NoError(t, err)
	require.Equal(t, ast.Subexpr, node.Kind)
	require.Equal(t, ast.Projection, node.Rhs.Kind)
	slice := node.Rhs.Lhs
	require.Equal(t, ast.Slice, slice.Kind)
	require.NotNil(t, slice.Start)
	require.NotNil(t, slice.Stop)
	require.NotNil(t, slice.Step)
	assert.Equal(t, 1, *slice.Start)
	assert.Equal(t, 2, *slice.Stop)
	assert.Equal(t, 3, *slice.Step)
}

func TestParse_SliceTooManyColons(t *testing.T) {
	_, err := Parse("a[1:2:3:4]")
	assert.Error(t, err)
}

func TestParse_SliceStepZero(t *testing.T) {
	_, err := Parse("a[1:2:0]")
	assert.Error(t, err)
}

func TestParse_MultiList(t *testing.T) {
	node, err := Parse("[a,b,c]")
	require.NoError(t, err)
	require.Equal(t, ast.MultiList, node.Kind)
	require.Len(t, node.Items, 3)
	assert.Equal(t, "a", node.Items[0].Name)
	assert.Equal(t, "b", node.Items[1].Name)
	assert.Equal(t, "c", node.Items[2].Name)
}

func TestParse_MultiHash(t *testing.T) {
	node, err := Parse("{x: a, y: b}")
	require.NoError(t, err)
	require.Equal(t, ast.MultiHash, node.Kind)
	require.Len(t, node.Pairs, 2)
	assert.Equal(t, "x", node.Pairs[0].Key)
	assert.Equal(t, "a", node.Pairs[0].Value.Name)
	assert.Equal(t, "y", node.Pairs[1].Key)
	assert.Equal(t, "b", node.Pairs[1].Value.Name)
}

func TestParse_FunctionCall(t *testing.T) {
	node, err := Parse("length(a)")
	require.NoError(t, err)
	require.Equal(t, ast.Function, node.Kind)
	assert.Equal(t, "length", node.FuncName)
	require.Len(t, node.Items, 1)
	assert.Equal(t, "a", node.Items[0].Name)
}

func TestParse_FunctionCallNoArgs(t *testing.T) {
	node, err := Parse("foo()")
	require.NoError(t, err)
	require.Equal(t, ast.Function, node.Kind)
	assert.Empty(t, node.Items)
}

func TestParse_Expref(t *testing.T) {
	node, err := Parse("&n")
	require.NoError(t, err)
	require.Equal(t, ast.Expref, node.Kind)
	assert.Equal(t, "n", node.Child.Name)
}

func TestParse_Not(t *testing.T) {
	node, err := Parse("!foo")
	require.NoError(t, err)
	require.Equal(t, ast.Not, node.Kind)
	assert.Equal(t, "foo", node.Child.Name)
}

func TestParse_OrAndAnd(t *testing.T) {
	node, err := Parse("a || b && c")
	require.NoError(t, err)
	require.Equal(t, ast.Or, node.Kind)
	assert.Equal(t, "a", node.Lhs.Name)
	require.Equal(t, ast.And, node.Rhs.Kind)
}

func TestParse_Comparison(t *testing.T) {
	node, err := Parse("a == b")
	require.NoError(t, err)
	require.Equal(t, ast.Comparison, node.Kind)
	assert.Equal(t, ast.Eq, node.Op)
}

func TestParse_Filter(t *testing.T) {
	node, err := Parse("a[?b == c]")
	require.NoError(t, err)
	require.Equal(t, ast.Projection, node.Kind)
	assert.Equal(t, "a", node.Lhs.Name)
	require.Equal(t, ast.Condition, node.Rhs.Kind)
	assert.Equal(t, ast.Comparison, node.Rhs.Test.Kind)
	assert.Equal(t, ast.CurrentNode, node.Rhs.Then.Kind)
}

func TestParse_Pipe(t *testing.T) {
	node, err := Parse("a.b | c")
	require.NoError(t, err)
	require.Equal(t, ast.Subexpr, node.Kind)
	assert.Equal(t, "c", node.Rhs.Name)
}

func TestParse_Grouping(t *testing.T) {
	node, err := Parse("(a)")
	require.NoError(t, err)
	assert.Equal(t, ast.Identifier, node.Kind)
	assert.Equal(t, "a", node.Name)
}

func TestParse_DotMultiList(t *testing.T) {
	node, err := Parse("a.[b,c]")
	require.NoError(t, err)
	require.Equal(t, ast.Subexpr, node.Kind)
	require.Equal(t, ast.MultiList, node.Rhs.Kind)
	require.Len(t, node.Rhs.Items, 2)
}

func TestParse_QuotedIdentifierCannotBeFunctionName(t *testing.T) {
	_, err := Parse(`"foo"()`)
	assert.Error(t, err)
}

func TestParse_TrailingInputIsError(t *testing.T) {
	_, err := Parse("foo bar")
	assert.Error(t, err)
}

func TestParse_UnclosedFunctionCall(t *testing.T) {
	_, err := Parse("length(")
	assert.Error(t, err)
}

func TestParse_MisplacedComma(t *testing.T) {
	_, err := Parse(",")
	assert.Error(t, err)
}
