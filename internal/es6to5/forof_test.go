package es6to5

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/romshark/es6down/internal/ast"
)

func TestLowerForOf_VarNameTarget(t *testing.T) {
	c, _ := newTestContext()

	// for (var x of items) { use(x); }
	node := &ast.Node{
		Kind: ast.KindForOfStatement,
		Data: &ast.ForOfStatement{
			Initializer: ast.VarDeclList(ast.FlagNone, ast.VarDecl(ast.Ident("x"), nil)),
			Expression:  ast.Ident("items"),
			Body: ast.BlockStmt(ast.ExprStmt(ast.Call(ast.Ident("use"), ast.Ident("x")))),
		},
	}

	got := dump(c.lowerForOf(node))

	want := []any{"for",
		[]any{"declList", []any{
			[]any{"decl", "id:_i", "num:0"},
		}},
		[]any{"bin", "<", "id:_i", []any{"member", "id:items", "id:length"}},
		[]any{"postfix", "++", "id:_i"},
		[]any{"block", []any{
			[]any{"var", []any{"declList", []any{
				[]any{"decl", "id:x", []any{"index", "id:items", "id:_i"}},
			}}},
			[]any{"exprStmt", []any{"call", "id:use", []any{"id:x"}}},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lowerForOf() mismatch (-want +got):\n%s", diff)
	}
}

func TestLowerForOf_DestructuringTarget(t *testing.T) {
	c, _ := newTestContext()

	// for (var {a, b} of getItems()) { use(a, b); }
	pattern := &ast.Node{
		Kind: ast.KindBindingPattern,
		Data: &ast.BindingPattern{
			IsObject: true,
			Elements: []*ast.Node{bindingElement(ast.Ident("a")), bindingElement(ast.Ident("b"))},
		},
	}
	node := &ast.Node{
		Kind: ast.KindForOfStatement,
		Data: &ast.ForOfStatement{
			Initializer: ast.VarDeclList(ast.FlagNone, ast.VarDecl(pattern, nil)),
			Expression:  ast.Call(ast.Ident("getItems")),
			Body:        ast.BlockStmt(ast.ExprStmt(ast.Call(ast.Ident("use"), ast.Ident("a"), ast.Ident("b")))),
		},
	}

	got := dump(c.lowerForOf(node))

	want := []any{"for",
		[]any{"declList", []any{
			[]any{"decl", "id:_i", "num:0"},
			[]any{"decl", "id:_a", []any{"call", "id:getItems", []any{}}},
		}},
		[]any{"bin", "<", "id:_i", []any{"member", "id:_a", "id:length"}},
		[]any{"postfix", "++", "id:_i"},
		[]any{"block", []any{
			[]any{"var", []any{"declList", []any{
				[]any{"decl", "id:_b", []any{"index", "id:_a", "id:_i"}},
			}}},
			[]any{"var", []any{"declList", []any{
				[]any{"decl", "id:a", []any{"member", "id:_b", "id:a"}},
			}}},
			[]any{"var", []any{"declList", []any{
				[]any{"decl", "id:b", []any{"member", "id:_b", "id:b"}},
			}}},
			[]any{"exprStmt", []any{"call", "id:use", []any{"id:a", "id:b"}}},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lowerForOf() mismatch (-want +got):\n%s", diff)
	}
}

func TestLowerForOf_NonIdentifierSource(t *testing.T) {
	c, _ := newTestContext()

	// for (var x of getItems()) { use(x); }
	node := &ast.Node{
		Kind: ast.KindForOfStatement,
		Data: &ast.ForOfStatement{
			Initializer: ast.VarDeclList(ast.FlagNone, ast.VarDecl(ast.Ident("x"), nil)),
			Expression:  ast.Call(ast.Ident("getItems")),
			Body:        ast.BlockStmt(ast.ExprStmt(ast.Call(ast.Ident("use"), ast.Ident("x")))),
		},
	}

	got := dump(c.lowerForOf(node))

	want := []any{"for",
		[]any{"declList", []any{
			[]any{"decl", "id:_i", "num:0"},
			[]any{"decl", "id:_a", []any{"call", "id:getItems", []any{}}},
		}},
		[]any{"bin", "<", "id:_i", []any{"member", "id:_a", "id:length"}},
		[]any{"postfix", "++", "id:_i"},
		[]any{"block", []any{
			[]any{"var", []any{"declList", []any{
				[]any{"decl", "id:x", []any{"index", "id:_a", "id:_i"}},
			}}},
			[]any{"exprStmt", []any{"call", "id:use", []any{"id:x"}}},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lowerForOf() mismatch (-want +got):\n%s", diff)
	}
}
