package es6to5

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/romshark/es6down/internal/ast"
)

func TestLowerClassDeclaration_NoBase(t *testing.T) {
	c, _ := newTestContext()

	// class Foo { bar() { return 1; } }
	barMethod := &ast.Node{
		Kind: ast.KindMethodDeclaration,
		Data: &ast.MethodDeclaration{
			ClassMember: ast.ClassMember{Name: ast.Ident("bar")},
			FunctionLikeBody: ast.FunctionLikeBody{
				Body: ast.BlockStmt(ast.ReturnStmt(ast.NumLit(1))),
			},
		},
	}
	cls := &ast.Node{
		Kind: ast.KindClassDeclaration,
		Data: &ast.ClassDeclaration{Class: ast.Class{
			Name:    ast.Ident("Foo"),
			Members: []*ast.Node{barMethod},
		}},
	}

	stmts := c.lowerClassDeclaration(cls)
	if len(stmts) != 1 {
		t.Fatalf("want 1 statement, got %d", len(stmts))
	}
	got := dump(stmts[0])

	want := []any{"var", []any{"declList", []any{
		[]any{"decl", "id:Foo", []any{"call",
			[]any{"paren", []any{"function", []any{}, []any{"block", []any{
				[]any{"functionDecl", "id:Foo", []any{}, []any{"block", []any{}}},
				[]any{"exprStmt", []any{"assign",
					[]any{"member", []any{"member", "id:Foo", "id:prototype"}, "id:bar"},
					[]any{"function", []any{}, []any{"block", []any{
						[]any{"return", "num:1"},
					}}},
				}},
				[]any{"return", "id:Foo"},
			}}}},
			[]any{},
		}},
	}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lowerClassDeclaration() mismatch (-want +got):\n%s", diff)
	}
}

func TestLowerClassMember_GetSetAccessorsAreIndependent(t *testing.T) {
	c, _ := newTestContext()
	c.staticStack = append(c.staticStack, false)

	// class Foo { get x() { return this._x; } set x(v) { this._x = v; } }
	getter := &ast.Node{
		Kind: ast.KindAccessorProperty,
		Data: &ast.AccessorProperty{
			ClassMember: ast.ClassMember{Name: ast.Ident("x")},
			FunctionLikeBody: ast.FunctionLikeBody{
				Body: ast.BlockStmt(ast.ReturnStmt(ast.PropAccess(ast.This(), "_x"))),
			},
		},
	}
	setter := &ast.Node{
		Kind: ast.KindAccessorProperty,
		Data: &ast.AccessorProperty{
			ClassMember: ast.ClassMember{Name: ast.Ident("x"), Flags: ast.FlagSetAccessor},
			FunctionLikeBody: ast.FunctionLikeBody{
				Parameters: []*ast.Node{{Kind: ast.KindParameter, Data: &ast.Parameter{Name: ast.Ident("v")}}},
				Body:       ast.BlockStmt(ast.ExprStmt(ast.Assign(ast.PropAccess(ast.This(), "_x"), ast.Ident("v")))),
			},
		},
	}

	gotGet := dumpList(c.lowerClassMember(getter, ast.Ident("Foo")))
	gotSet := dumpList(c.lowerClassMember(setter, ast.Ident("Foo")))

	// Each accessor gets its own independent defineProperty call rather
	// than being merged into a single get/set descriptor.
	wantGet := []any{[]any{"exprStmt", []any{"call", []any{"member", "id:Object", "id:defineProperty"},
		[]any{
			[]any{"member", "id:Foo", "id:prototype"},
			"str:x",
			[]any{"object", []any{
				[]any{"prop", "id:get", []any{"function", []any{}, []any{"block", []any{
					[]any{"return", []any{"member", "this", "id:_x"}},
				}}}},
				[]any{"prop", "id:enumerable", "bool:true"},
				[]any{"prop", "id:configurable", "bool:true"},
			}},
		},
	}}}
	if diff := cmp.Diff(wantGet, gotGet); diff != "" {
		t.Errorf("lowerClassMember() getter mismatch (-want +got):\n%s", diff)
	}

	wantSet := []any{[]any{"exprStmt", []any{"call", []any{"member", "id:Object", "id:defineProperty"},
		[]any{
			[]any{"member", "id:Foo", "id:prototype"},
			"str:x",
			[]any{"object", []any{
				[]any{"prop", "id:set", []any{"function", []any{[]any{"param", "id:v"}}, []any{"block", []any{
					[]any{"exprStmt", []any{"assign", []any{"member", "this", "id:_x"}, "id:v"}},
				}}}},
				[]any{"prop", "id:enumerable", "bool:true"},
				[]any{"prop", "id:configurable", "bool:true"},
			}},
		},
	}}}
	if diff := cmp.Diff(wantSet, gotSet); diff != "" {
		t.Errorf("lowerClassMember() setter mismatch (-want +got):\n%s", diff)
	}
}

func TestLowerClassDeclaration_WithBaseAndDefaultConstructor(t *testing.T) {
	c, _ := newTestContext()

	// class Foo extends Base {}
	cls := &ast.Node{
		Kind: ast.KindClassDeclaration,
		Data: &ast.ClassDeclaration{Class: ast.Class{
			Name:           ast.Ident("Foo"),
			HeritageClause: ast.Ident("Base"),
		}},
	}

	stmts := c.lowerClassDeclaration(cls)
	got := dump(stmts[0])

	want := []any{"var", []any{"declList", []any{
		[]any{"decl", "id:Foo", []any{"call",
			[]any{"paren", []any{"function", []any{[]any{"param", "id:_super"}}, []any{"block", []any{
				[]any{"exprStmt", []any{"call", "id:__extends", []any{"id:Foo", "id:_super"}}},
				[]any{"functionDecl", "id:Foo", []any{}, []any{"block", []any{
					[]any{"exprStmt", []any{"call", []any{"member", "id:_super", "id:apply"}, []any{"this", "id:arguments"}}},
				}}},
				[]any{"return", "id:Foo"},
			}}}},
			[]any{"id:Base"},
		}},
	}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lowerClassDeclaration() mismatch (-want +got):\n%s", diff)
	}
}
