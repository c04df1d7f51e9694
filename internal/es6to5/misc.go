package es6to5

import (
	"github.com/romshark/es6down/internal/ast"
	"github.com/romshark/es6down/internal/destructuring"
	"github.com/romshark/es6down/internal/resolver"
)

// This file covers the remaining miscellaneous rewrites not already folded
// into function.go/class.go (bare `this`/`super` substitution and
// super-property access live there since they share state with the
// enclosing function/class lowering), plus variable-statement lowering and
// the destructuring-assignment-expression case.
// Grounded on extractSuperProperty, lowerSuperPropertyGet/Set,
// callSuperPropertyWrapper in
// github.com/evanw/esbuild/internal/js_parser/js_parser_lower_class.go.

// lowerVariableStatement lowers a variable declaration list: each
// binding-pattern declaration is flattened by the destructuring
// bridge; a block-scoped binding in a loop that lacks an initializer and
// isn't the loop's own for-in/for-of head binding gets an explicit
// `void 0` so the rewritten `var` doesn't leak the prior iteration's
// value; a nested-redeclaration binding is renamed at its declaration
// site via the binding-identifier substitution hook.
func (c *context) lowerVariableStatement(node *ast.Node) []*ast.Node {
	s := node.Data.(*ast.VariableStatement)
	list := s.DeclarationList.Data.(*ast.VariableDeclarationList)

	var out []*ast.Node
	var plainDecls []*ast.Node

	for _, d := range list.Declarations {
		decl := d.Data.(*ast.VariableDeclaration)
		name := c.lowerBindingIdentifierIfRedeclared(decl.Name, d)

		if name.Kind == ast.KindBindingPattern {
			if decl.Initializer == nil {
				continue
			}
			value := c.visitExpression(decl.Initializer)
			flushPlain := func() {
				if len(plainDecls) > 0 {
					out = append(out, ast.VarStmt(ast.FlagNone, plainDecls...))
					plainDecls = nil
				}
			}
			flushPlain()
			c.destructure(name, value, destructuring.ModeDeclaration, func(n *ast.Node) { out = append(out, n) })
			continue
		}

		init := decl.Initializer
		if init == nil && c.needsExplicitVoidInitializer(d, list.Flags) {
			init = ast.VoidZero()
		}
		if init != nil {
			init = c.visitExpression(init)
		}
		plainDecls = append(plainDecls, ast.VarDecl(name, init))
	}

	if len(plainDecls) > 0 {
		out = append(out, ast.VarStmt(ast.FlagNone, plainDecls...))
	}
	return out
}

// lowerBindingIdentifierIfRedeclared consults the binding-identifier
// substitution hook; nested-redeclaration renaming is installed as that
// hook by installNestedRedeclarationSubstitution (substitution.go), so
// this is a pass-through call, not a local decision.
func (c *context) lowerBindingIdentifierIfRedeclared(name *ast.Node, decl *ast.Node) *ast.Node {
	if name.Kind != ast.KindIdentifier {
		return name
	}
	return c.env.SubstituteBindingIdentifier(name)
}

// needsExplicitVoidInitializer applies the leak-prevention rule: only a
// block-scoped (let/const) binding inside a loop body, with no initializer
// of its own, needs the synthetic `void 0`. A loop's own for-in/for-of head
// binding never reaches here: lowerForOfHead and visitForInitializer lower
// the head's declaration list directly and never wrap it in the
// KindVariableStatement this function is called for.
func (c *context) needsExplicitVoidInitializer(decl *ast.Node, listFlags ast.Flags) bool {
	if !listFlags.Has(ast.FlagLet) && !listFlags.Has(ast.FlagConst) {
		return false
	}
	flags := c.res.GetNodeCheckFlags(decl)
	return flags.Has(resolver.BlockScopedBindingInLoop)
}

// lowerAssignmentExpression handles a destructuring-assignment expression
// whose target is a binding pattern, delegating to the same flattening
// helper a declaration uses; an ordinary assignment just falls through to
// the generic copy-visitor.
func (c *context) lowerAssignmentExpression(node *ast.Node) *ast.Node {
	a := node.Data.(*ast.AssignmentExpression)
	if a.Target.Kind != ast.KindBindingPattern {
		return nil
	}

	value := c.visitExpression(a.Value)
	var assigns []*ast.Node
	c.destructure(a.Target, value, destructuring.ModeAssignment, func(n *ast.Node) {
		assigns = append(assigns, n.Data.(*ast.ExpressionStatement).Expression)
	})
	return ast.Paren(ast.Seq(assigns...))
}
