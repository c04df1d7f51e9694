package es6to5

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/romshark/es6down/internal/ast"
)

func TestLowerObjectLiteral_ShorthandOnly(t *testing.T) {
	c, _ := newTestContext()

	// {x, y: 2}
	node := &ast.Node{
		Kind: ast.KindObjectLiteralExpression,
		Data: &ast.ObjectLiteralExpression{
			Properties: []*ast.Node{
				{Kind: ast.KindShorthandPropertyAssignment, Data: &ast.ShorthandPropertyAssignment{Name: ast.Ident("x")}},
				{Kind: ast.KindPropertyAssignment, Data: &ast.PropertyAssignment{Name: ast.Ident("y"), Value: ast.NumLit(2)}},
			},
		},
	}

	got := dump(c.lowerObjectLiteral(node))
	want := []any{"object", []any{
		[]any{"prop", "id:x", "id:x"},
		[]any{"prop", "id:y", "num:2"},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lowerObjectLiteral() mismatch (-want +got):\n%s", diff)
	}
}

func TestLowerObjectLiteral_ComputedKeySplit(t *testing.T) {
	c, _ := newTestContext()
	c.env.StartLexicalEnvironment()
	defer c.env.EndLexicalEnvironment(nil)

	// {[k]: v, z: 1}
	node := &ast.Node{
		Kind: ast.KindObjectLiteralExpression,
		Data: &ast.ObjectLiteralExpression{
			Properties: []*ast.Node{
				{
					Kind: ast.KindPropertyAssignment,
					Data: &ast.PropertyAssignment{
						Name:  &ast.Node{Kind: ast.KindComputedPropertyName, Data: &ast.ComputedPropertyName{Expression: ast.Ident("k")}},
						Value: ast.Ident("v"),
					},
				},
				{Kind: ast.KindPropertyAssignment, Data: &ast.PropertyAssignment{Name: ast.Ident("z"), Value: ast.NumLit(1)}},
			},
		},
	}

	got := dump(c.lowerObjectLiteral(node))
	want := []any{"paren", []any{"seq", []any{
		[]any{"assign", "id:_a", []any{"object", []any{}}},
		[]any{"assign", []any{"index", "id:_a", "id:k"}, "id:v"},
		[]any{"assign", []any{"index", "id:_a", "str:z"}, "num:1"},
		"id:_a",
	}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lowerObjectLiteral() mismatch (-want +got):\n%s", diff)
	}
}

func TestLowerObjectLiteral_ShorthandAndSpreadAfterComputedSplit(t *testing.T) {
	c, _ := newTestContext()
	c.env.StartLexicalEnvironment()
	defer c.env.EndLexicalEnvironment(nil)

	// {[k]: v, b, ...rest}
	node := &ast.Node{
		Kind: ast.KindObjectLiteralExpression,
		Data: &ast.ObjectLiteralExpression{
			Properties: []*ast.Node{
				{
					Kind: ast.KindPropertyAssignment,
					Data: &ast.PropertyAssignment{
						Name:  &ast.Node{Kind: ast.KindComputedPropertyName, Data: &ast.ComputedPropertyName{Expression: ast.Ident("k")}},
						Value: ast.Ident("v"),
					},
				},
				{Kind: ast.KindShorthandPropertyAssignment, Data: &ast.ShorthandPropertyAssignment{Name: ast.Ident("b")}},
				{Kind: ast.KindSpreadElement, Data: &ast.SpreadElement{Expression: ast.Ident("rest")}},
			},
		},
	}

	got := dump(c.lowerObjectLiteral(node))
	want := []any{"paren", []any{"seq", []any{
		[]any{"assign", "id:_a", []any{"object", []any{}}},
		[]any{"assign", []any{"index", "id:_a", "id:k"}, "id:v"},
		[]any{"assign", []any{"member", "id:_a", "id:b"}, "id:b"},
		[]any{"call", []any{"member", "id:Object", "id:assign"}, []any{"id:_a", "id:rest"}},
		"id:_a",
	}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lowerObjectLiteral() mismatch (-want +got):\n%s", diff)
	}
}
