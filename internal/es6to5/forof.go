package es6to5

import (
	"github.com/romshark/es6down/internal/ast"
	"github.com/romshark/es6down/internal/destructuring"
	"github.com/romshark/es6down/internal/transformer"
)

// for-of lowering. Grounded on the index/temp-driven loop body
// assembly github.com/evanw/esbuild/internal/js_parser/js_parser_lower.go uses for
// lowerForAwaitLoop, adapted here to plain (non-await) for-of: esbuild
// itself never lowers plain for-of since it targets environments with
// native iterators, so the trigger condition is new even though the
// loop-assembly technique is reused.
func (c *context) lowerForOf(node *ast.Node) *ast.Node {
	s := node.Data.(*ast.ForOfStatement)

	rhs := c.visitExpression(s.Expression)

	var arrayTemp *ast.Node
	if rhs.Kind == ast.KindIdentifier {
		arrayTemp = rhs
	} else {
		arrayTemp = c.env.CreateTempVariable(transformer.TempFlagsAuto)
	}
	counter := c.env.CreateTempVariable(transformer.TempFlagsI)

	var initDecls []*ast.Node
	initDecls = append(initDecls, ast.VarDecl(counter, ast.NumLit(0)))
	if arrayTemp != rhs {
		initDecls = append(initDecls, ast.VarDecl(arrayTemp, rhs))
	}

	var bodyPrefix []*ast.Node
	elementAccess := ast.ElemAccess(arrayTemp, counter)
	bodyPrefix = append(bodyPrefix, c.lowerForOfHead(s.Initializer, elementAccess)...)

	visitedBody := c.visitSingleStatement(s.Body)
	bodyStatements := append(bodyPrefix, blockStatementsOf(visitedBody)...)

	loop := ast.ForStmt(
		ast.VarDeclList(ast.FlagNone, initDecls...),
		ast.Binary(ast.OpLessThan, counter, ast.PropAccess(arrayTemp, "length")),
		&ast.Node{Kind: ast.KindPostfixUnaryExpression, Data: &ast.PostfixUnaryExpression{Operator: "++", Operand: counter}, IsSynthesized: true},
		ast.BlockStmt(bodyStatements...),
	)
	return loop
}

// lowerForOfHead builds the statements that bind one iteration's element
//, given the initializer header node (either a
// KindVariableDeclarationList or a bare assignment-target expression) and
// the `_a[_i]` read expression.
func (c *context) lowerForOfHead(initializer *ast.Node, elementAccess *ast.Node) []*ast.Node {
	var out []*ast.Node
	emit := func(n *ast.Node) { out = append(out, n) }

	if initializer == nil {
		c.env.CreateTempVariable(transformer.TempFlagsAuto)
		return nil
	}

	if initializer.Kind == ast.KindVariableDeclarationList {
		list := initializer.Data.(*ast.VariableDeclarationList)
		if len(list.Declarations) == 0 {
			c.env.CreateTempVariable(transformer.TempFlagsAuto)
			return nil
		}
		decl := list.Declarations[0].Data.(*ast.VariableDeclaration)
		if decl.Name.Kind == ast.KindBindingPattern {
			c.destructure(decl.Name, elementAccess, destructuring.ModeDeclaration, emit)
			return out
		}
		return []*ast.Node{ast.VarStmt(list.Flags, ast.VarDecl(decl.Name, elementAccess))}
	}

	// Bare expression LHS.
	if initializer.Kind == ast.KindBindingPattern {
		c.destructure(initializer, elementAccess, destructuring.ModeAssignment, emit)
		return out
	}
	return []*ast.Node{ast.ExprStmt(ast.Assign(initializer, elementAccess))}
}

func blockStatementsOf(node *ast.Node) []*ast.Node {
	if node == nil {
		return nil
	}
	if node.Kind == ast.KindBlock {
		return node.Data.(*ast.Block).Statements
	}
	return []*ast.Node{node}
}
