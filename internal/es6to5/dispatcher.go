package es6to5

import "github.com/romshark/es6down/internal/ast"

// This file is the flag-gated visitor dispatcher: a three-way gate,
// rewrite / recurse / pass-through. Keeping it this small, and keeping the
// ContainsES6 check first, is what bounds the transform to touched nodes
// instead of the whole tree.

// visitStatement is the dispatcher entry point for a single statement. It
// may return more than one replacement statement (a lowering like for-of
// or a destructuring declaration commonly expands to several); callers
// collect and flatten.
func (c *context) visitStatement(node *ast.Node) []*ast.Node {
	if node == nil {
		return nil
	}
	c.env.PushNode(node)
	defer c.env.PopNode()

	if !node.TransformFlags.Has(ast.ES6) && !node.TransformFlags.Has(ast.ContainsES6) {
		return []*ast.Node{node}
	}

	if node.TransformFlags.Has(ast.ES6) {
		if out := c.rewriteStatement(node); out != nil {
			return out
		}
		// Unknown ES6 statement kind: fall back to generic recursion so a
		// demoted diagnostic doesn't also lose the rest of the subtree.
		c.fatalUnhandledKind(node, "visitStatement")
	}

	return []*ast.Node{c.acceptStatement(node)}
}

// visitExpression is the dispatcher entry point for a single expression.
// Expressions always replace 1:1 — even a lowering that logically produces
// "several steps" packages them as one SequenceExpression or IIFE, never
// as multiple sibling expressions, so there is no sink here.
func (c *context) visitExpression(node *ast.Node) *ast.Node {
	if node == nil {
		return nil
	}
	c.env.PushNode(node)
	defer c.env.PopNode()

	if !node.TransformFlags.Has(ast.ES6) && !node.TransformFlags.Has(ast.ContainsES6) {
		return node
	}

	if node.TransformFlags.Has(ast.ES6) {
		if out := c.rewriteExpression(node); out != nil {
			return out
		}
		c.fatalUnhandledKind(node, "visitExpression")
	}

	return c.acceptExpression(node)
}

// rewriteStatement dispatches a node flagged ES6-at-this-node to its
// kind-specific statement rewriter (a computed-property object literal in
// statement position arrives through an expression statement and is
// handled via visitExpression instead).
func (c *context) rewriteStatement(node *ast.Node) []*ast.Node {
	switch node.Kind {
	case ast.KindClassDeclaration:
		return c.lowerClassDeclaration(node)
	case ast.KindFunctionDeclaration:
		return []*ast.Node{c.lowerFunctionDeclaration(node)}
	case ast.KindForOfStatement:
		return []*ast.Node{c.lowerForOf(node)}
	case ast.KindVariableStatement:
		return c.lowerVariableStatement(node)
	default:
		return nil
	}
}

// rewriteExpression dispatches a node flagged ES6-at-this-node to its
// kind-specific expression rewriter.
func (c *context) rewriteExpression(node *ast.Node) *ast.Node {
	switch node.Kind {
	case ast.KindArrowFunction:
		return c.lowerArrowFunction(node)
	case ast.KindFunctionExpression:
		return c.lowerFunctionExpression(node)
	case ast.KindClassExpression:
		return c.lowerClassExpression(node)
	case ast.KindTemplateExpression:
		return c.lowerTemplateExpression(node)
	case ast.KindTaggedTemplateExpression:
		return c.lowerTaggedTemplate(node)
	case ast.KindObjectLiteralExpression:
		return c.lowerObjectLiteral(node)
	case ast.KindCallExpression:
		return c.lowerCallExpression(node)
	case ast.KindNewExpression:
		return c.lowerNewExpression(node)
	case ast.KindArrayLiteralExpression:
		return c.lowerArrayLiteral(node)
	case ast.KindThisExpression:
		return c.substituteThis(node)
	case ast.KindSuperExpression:
		return c.substituteSuper(node)
	case ast.KindPropertyAccessExpression:
		return c.lowerSuperPropertyAccessIfNeeded(node)
	case ast.KindIdentifier:
		return c.env.SubstituteExpression(node)
	case ast.KindAssignmentExpression:
		return c.lowerAssignmentExpression(node)
	default:
		return nil
	}
}
