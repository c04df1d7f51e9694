package es6to5

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/romshark/es6down/internal/ast"
)

func spreadOf(n *ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.KindSpreadElement, Data: &ast.SpreadElement{Expression: n}}
}

func TestLowerArrayLiteral_Spread(t *testing.T) {
	c, _ := newTestContext()

	// [1, ...mid, 2, 3]
	node := &ast.Node{
		Kind: ast.KindArrayLiteralExpression,
		Data: &ast.ArrayLiteralExpression{
			Elements: []*ast.Node{ast.NumLit(1), spreadOf(ast.Ident("mid")), ast.NumLit(2), ast.NumLit(3)},
		},
	}

	got := dump(c.lowerArrayLiteral(node))
	want := []any{"call",
		[]any{"member", []any{"array", []any{"num:1"}}, "id:concat"},
		[]any{"id:mid", []any{"array", []any{"num:2", "num:3"}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lowerArrayLiteral() mismatch (-want +got):\n%s", diff)
	}
}

func TestLowerNewExpression_Spread(t *testing.T) {
	c, _ := newTestContext()

	// new F(...args)
	node := &ast.Node{
		Kind: ast.KindNewExpression,
		Data: &ast.NewExpression{
			Callee:    ast.Ident("F"),
			Arguments: []*ast.Node{spreadOf(ast.Ident("args"))},
		},
	}

	got := dump(c.lowerNewExpression(node))
	want := []any{"new",
		[]any{"paren", []any{"call",
			[]any{"member", []any{"member", "id:F", "id:bind"}, "id:apply"},
			[]any{"id:F", []any{"call",
				[]any{"member", []any{"array", []any{"void0"}}, "id:concat"},
				[]any{"id:args"},
			}},
		}},
		[]any{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lowerNewExpression() mismatch (-want +got):\n%s", diff)
	}
}

func TestLowerNewExpression_NonIdentifierCallee(t *testing.T) {
	c, _ := newTestContext()
	c.env.StartLexicalEnvironment()
	defer c.env.EndLexicalEnvironment(nil)

	// new (getCtor())(...args)
	node := &ast.Node{
		Kind: ast.KindNewExpression,
		Data: &ast.NewExpression{
			Callee:    ast.Call(ast.Ident("getCtor")),
			Arguments: []*ast.Node{spreadOf(ast.Ident("args"))},
		},
	}

	got := dump(c.lowerNewExpression(node))

	calleeForBind := []any{"paren", []any{"seq", []any{
		[]any{"assign", "id:_a", []any{"call", "id:getCtor", []any{}}},
		"id:_a",
	}}}
	want := []any{"new",
		[]any{"paren", []any{"call",
			[]any{"member", []any{"member", calleeForBind, "id:bind"}, "id:apply"},
			[]any{"id:_a", []any{"call",
				[]any{"member", []any{"array", []any{"void0"}}, "id:concat"},
				[]any{"id:args"},
			}},
		}},
		[]any{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lowerNewExpression() mismatch (-want +got):\n%s", diff)
	}
}

func TestLowerCallExpression_OrdinarySpread(t *testing.T) {
	c, _ := newTestContext()

	// f(a, ...b)
	node := &ast.Node{
		Kind: ast.KindCallExpression,
		Data: &ast.CallExpression{
			Callee:    ast.Ident("f"),
			Arguments: []*ast.Node{ast.Ident("a"), spreadOf(ast.Ident("b"))},
		},
	}

	got := dump(c.lowerCallExpression(node))
	want := []any{"call",
		[]any{"member", "id:f", "id:apply"},
		[]any{"void0", []any{"call",
			[]any{"member", []any{"array", []any{"id:a"}}, "id:concat"},
			[]any{"id:b"},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lowerCallExpression() mismatch (-want +got):\n%s", diff)
	}
}

func TestLowerCallExpression_SuperSpread(t *testing.T) {
	c, _ := newTestContext()
	superAlias := ast.Ident("_super")
	c.superStack = append(c.superStack, superAlias)

	// super(...args)
	node := &ast.Node{
		Kind: ast.KindCallExpression,
		Data: &ast.CallExpression{
			Callee:    ast.Super(),
			Arguments: []*ast.Node{spreadOf(ast.Ident("args"))},
		},
	}

	got := dump(c.lowerCallExpression(node))
	want := []any{"call",
		[]any{"member", "id:_super", "id:apply"},
		[]any{"this", []any{"call", []any{"member", "id:args", "id:slice"}, []any{}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lowerCallExpression() mismatch (-want +got):\n%s", diff)
	}
}
