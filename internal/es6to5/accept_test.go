package es6to5

import (
	"testing"

	"github.com/romshark/es6down/internal/ast"
)

// These cover the generic copy-visitor's structural-sharing guarantee:
// a statement with no ES6-flagged children comes back as the exact same
// node rather than a needless clone.

func TestAcceptStatement_ForStatementUnchangedReturnsSamePointer(t *testing.T) {
	c, _ := newTestContext()

	node := &ast.Node{
		Kind: ast.KindForStatement,
		Data: &ast.ForStatement{
			Initializer: ast.VarDeclList(ast.FlagNone, ast.VarDecl(ast.Ident("i"), ast.NumLit(0))),
			Condition:   ast.Binary(ast.OpLessThan, ast.Ident("i"), ast.NumLit(10)),
			Incrementor: &ast.Node{Kind: ast.KindPostfixUnaryExpression, Data: &ast.PostfixUnaryExpression{Operator: "++", Operand: ast.Ident("i")}},
			Body:        ast.BlockStmt(ast.ExprStmt(ast.Call(ast.Ident("use"), ast.Ident("i")))),
		},
	}

	got := c.acceptStatement(node)
	if got != node {
		t.Errorf("acceptStatement() cloned an unchanged for statement, want the same pointer back")
	}
}

func TestAcceptStatement_ForInStatementUnchangedReturnsSamePointer(t *testing.T) {
	c, _ := newTestContext()

	node := &ast.Node{
		Kind: ast.KindForInStatement,
		Data: &ast.ForInStatement{
			Initializer: ast.VarDeclList(ast.FlagNone, ast.VarDecl(ast.Ident("k"), nil)),
			Expression:  ast.Ident("obj"),
			Body:        ast.BlockStmt(ast.ExprStmt(ast.Call(ast.Ident("use"), ast.Ident("k")))),
		},
	}

	got := c.acceptStatement(node)
	if got != node {
		t.Errorf("acceptStatement() cloned an unchanged for-in statement, want the same pointer back")
	}
}

func TestAcceptStatement_TryStatementUnchangedReturnsSamePointer(t *testing.T) {
	c, _ := newTestContext()

	node := &ast.Node{
		Kind: ast.KindTryStatement,
		Data: &ast.TryStatement{
			TryBlock: ast.BlockStmt(ast.ExprStmt(ast.Call(ast.Ident("risky")))),
			CatchClause: &ast.Node{
				Kind: ast.KindCatchClause,
				Data: &ast.CatchClause{
					Parameter: ast.Ident("e"),
					Block:     ast.BlockStmt(ast.ExprStmt(ast.Call(ast.Ident("handle"), ast.Ident("e")))),
				},
			},
			FinallyBlock: ast.BlockStmt(ast.ExprStmt(ast.Call(ast.Ident("cleanup")))),
		},
	}

	got := c.acceptStatement(node)
	if got != node {
		t.Errorf("acceptStatement() cloned an unchanged try statement, want the same pointer back")
	}
}
