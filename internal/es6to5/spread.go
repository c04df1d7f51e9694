package es6to5

import (
	"github.com/romshark/es6down/internal/ast"
)

// Spread lowering, grounded on lowerObjectSpread's
// segment-building approach in
// github.com/evanw/esbuild/internal/js_parser/js_parser_lower.go, generalized from
// object-spread to call/new/array-literal spread.

func hasSpread(args []*ast.Node) bool {
	for _, a := range args {
		if a.Kind == ast.KindSpreadElement {
			return true
		}
	}
	return false
}

// segmentArguments groups consecutive non-spread arguments into
// array-literal segments and passes spread arguments through unwrapped,
// the shape every `.concat(...)` call in this file builds on.
func (c *context) segmentArguments(args []*ast.Node) []*ast.Node {
	var segments []*ast.Node
	var run []*ast.Node
	flush := func() {
		if len(run) > 0 {
			segments = append(segments, ast.Array(run...))
			run = nil
		}
	}
	for _, a := range args {
		if a.Kind == ast.KindSpreadElement {
			flush()
			inner := c.visitExpression(a.Data.(*ast.SpreadElement).Expression)
			segments = append(segments, inner)
			continue
		}
		run = append(run, c.visitExpression(a))
	}
	flush()
	return segments
}

func (c *context) lowerCallExpression(node *ast.Node) *ast.Node {
	call := node.Data.(*ast.CallExpression)

	if call.Callee.Kind == ast.KindSuperExpression {
		superAlias, ok := c.currentSuper()
		if ok {
			if hasSpread(call.Arguments) {
				argsArray := c.buildConcatArguments(call.Arguments)
				return ast.Call(ast.PropAccess(superAlias, "apply"), ast.This(), argsArray)
			}
			args := c.visitExpressionList(call.Arguments)
			return ast.Call(ast.PropAccess(superAlias, "call"), append([]*ast.Node{ast.This()}, args...)...)
		}
	}

	if call.Callee.Kind == ast.KindPropertyAccessExpression {
		pa := call.Callee.Data.(*ast.PropertyAccessExpression)
		if pa.Expression.Kind == ast.KindSuperExpression {
			target := c.lowerSuperPropertyAccessIfNeeded(call.Callee)
			if target == nil {
				target = c.visitExpression(call.Callee)
			}
			receiver := c.superCallReceiver()
			if hasSpread(call.Arguments) {
				argsArray := c.buildConcatArguments(call.Arguments)
				return ast.Call(ast.PropAccess(target, "apply"), receiver, argsArray)
			}
			args := c.visitExpressionList(call.Arguments)
			return ast.Call(ast.PropAccess(target, "call"), append([]*ast.Node{receiver}, args...)...)
		}
	}

	if !hasSpread(call.Arguments) {
		return nil
	}

	callee, thisArg := c.spreadCallCalleeAndThisArg(call.Callee)
	argsArray := c.buildConcatArguments(call.Arguments)
	return ast.Call(ast.PropAccess(callee, "apply"), thisArg, argsArray)
}

// superCallReceiver returns `this`, the receiver a spread `super.m(...)`
// call applies its arguments against.
func (c *context) superCallReceiver() *ast.Node { return ast.This() }

// spreadCallCalleeAndThisArg picks the receiver and function value to
// `.apply()` for an ordinary (non-super) spread call: a member-expression callee
// hoists its receiver to a temp when it isn't already a simple
// identifier; a bare callee uses `void 0`.
func (c *context) spreadCallCalleeAndThisArg(callee *ast.Node) (fn *ast.Node, thisArg *ast.Node) {
	switch callee.Kind {
	case ast.KindPropertyAccessExpression:
		pa := callee.Data.(*ast.PropertyAccessExpression)
		receiver := c.visitExpression(pa.Expression)
		if receiver.Kind == ast.KindIdentifier {
			return ast.PropAccess(receiver, pa.Name.Data.(*ast.Identifier).Text), receiver
		}
		temp := c.hoistedTempVariable()
		assign := ast.Assign(temp, receiver)
		member := ast.PropAccess(temp, pa.Name.Data.(*ast.Identifier).Text)
		return ast.Paren(ast.Seq(assign, member)), temp

	case ast.KindElementAccessExpression:
		ea := callee.Data.(*ast.ElementAccessExpression)
		receiver := c.visitExpression(ea.Expression)
		index := c.visitExpression(ea.ArgumentExpression)
		if receiver.Kind == ast.KindIdentifier {
			return ast.ElemAccess(receiver, index), receiver
		}
		temp := c.hoistedTempVariable()
		assign := ast.Assign(temp, receiver)
		member := ast.ElemAccess(temp, index)
		return ast.Paren(ast.Seq(assign, member)), temp

	default:
		return c.visitExpression(callee), ast.VoidZero()
	}
}

// buildConcatArguments implements "f(a, ...b, c, d, ...e) becomes
// f.apply(thisArg, [a].concat(b, [c, d], e))": the first segment starts
// the concat chain, the rest are concat's arguments; a lone spread that
// needs a fresh copy gets `.slice()` instead of a no-op concat.
func (c *context) buildConcatArguments(args []*ast.Node) *ast.Node {
	segments := c.segmentArguments(args)
	if len(segments) == 0 {
		return ast.Array()
	}
	if len(segments) == 1 {
		if segments[0].Kind == ast.KindArrayLiteralExpression {
			return segments[0]
		}
		return ast.Call(ast.PropAccess(segments[0], "slice"))
	}
	return ast.Call(ast.PropAccess(segments[0], "concat"), segments[1:]...)
}

// lowerNewExpression rewrites a spread `new F(...args)` into
// `new (F.bind.apply(F, [void 0].concat(args)))()`, since `new` has no
// apply form of its own. A callee that isn't already a bare identifier is
// hoisted to a temp first, the same way spreadCallCalleeAndThisArg hoists
// a non-identifier receiver, so it's evaluated once even though the
// rewrite references it twice.
func (c *context) lowerNewExpression(node *ast.Node) *ast.Node {
	n := node.Data.(*ast.NewExpression)
	if !hasSpread(n.Arguments) {
		return nil
	}
	callee := c.visitExpression(n.Callee)
	segments := c.segmentArguments(n.Arguments)
	concatArgs := append([]*ast.Node{ast.VoidZero()}, segments...)
	var argsExpr *ast.Node
	if len(concatArgs) == 1 {
		argsExpr = ast.Array(concatArgs[0])
	} else {
		argsExpr = ast.Call(ast.PropAccess(ast.Array(concatArgs[0]), "concat"), concatArgs[1:]...)
	}

	calleeForBind, calleeForApply := callee, callee
	if callee.Kind != ast.KindIdentifier {
		temp := c.hoistedTempVariable()
		calleeForBind = ast.Paren(ast.Seq(ast.Assign(temp, callee), temp))
		calleeForApply = temp
	}

	boundCall := ast.Call(ast.PropAccess(ast.PropAccess(calleeForBind, "bind"), "apply"), calleeForApply, argsExpr)
	return &ast.Node{
		Kind:          ast.KindNewExpression,
		IsSynthesized: true,
		Data:          &ast.NewExpression{Callee: ast.Paren(boundCall)},
	}
}

// lowerArrayLiteral rewrites a spread array literal using the same
// concat-based segmentation as a spread call, but without an apply step.
func (c *context) lowerArrayLiteral(node *ast.Node) *ast.Node {
	arr := node.Data.(*ast.ArrayLiteralExpression)
	if !hasSpread(arr.Elements) {
		return nil
	}
	return c.buildConcatArguments(arr.Elements)
}
