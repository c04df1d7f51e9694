package es6to5

import (
	"fmt"

	"github.com/romshark/es6down/internal/ast"
	"github.com/romshark/es6down/internal/logger"
	"github.com/romshark/es6down/internal/transformer"
)

// Substitution hooks, grounded on captureThis plus the
// general predecessor-chaining idiom visible in how esbuild's
// p.fnOrArrowDataVisit tracks enclosing-`this` context in
// github.com/evanw/esbuild/internal/js_parser/js_parser_lower.go. The `this`/`super`
// halves of expression substitution are handled directly in the
// dispatcher (rewriteExpression's KindThisExpression/KindSuperExpression
// cases) since they need the context's capturedThisStack/superStack, not
// a chained hook; this file installs the identifier-only half of nested
// redeclaration renaming, which is purely a resolver lookup with no
// enclosing-scope state of its own.

// installNestedRedeclarationSubstitution registers the binding- and
// expression-identifier hooks that rename a shadowing declaration once
// its enclosing `let`/`const` block is hoisted to `var`: the
// declaration site gets the generated name, and every reference for the
// rest of the scope is rewritten to match.
// redeclNames caches one generated name per shadowed binding (keyed by its
// ast.Ref, not by node-id): the declaration-site hook and every
// reference-site hook must agree on the same replacement name for a given
// binding, so the name is allocated once on first sight and reused.
func (c *context) nameForRedeclaration(ref ast.Ref) string {
	if c.redeclNames == nil {
		c.redeclNames = make(map[ast.Ref]string)
	}
	if name, ok := c.redeclNames[ref]; ok {
		return name
	}
	name := c.env.CreateTempVariable(transformer.TempFlagsAuto).Data.(*ast.Identifier).Text
	c.redeclNames[ref] = name
	if c.source != nil {
		c.log.AddWarningWithID(logger.MsgID_JS_NestedRedeclarationRenamed, c.source, logger.Loc{},
			fmt.Sprintf("renaming shadowed declaration to %q to avoid colliding with its hoisted outer binding", name))
	}
	return name
}

func (c *context) installNestedRedeclarationSubstitution() {
	c.env.SetBindingIdentifierSubstitution(func(node *ast.Node) *ast.Node {
		if !c.res.IsNestedRedeclaration(node) {
			return nil
		}
		ident := node.Data.(*ast.Identifier)
		name := c.nameForRedeclaration(ident.Ref)
		return ast.IdentRef(name, ident.Ref)
	})

	c.env.SetExpressionSubstitution(func(node *ast.Node) *ast.Node {
		if node.Kind != ast.KindIdentifier {
			return nil
		}
		ref, ok := c.res.GetReferencedNestedRedeclaration(node)
		if !ok {
			return nil
		}
		name := c.nameForRedeclaration(ref)
		return ast.IdentRef(name, ref)
	})
}
