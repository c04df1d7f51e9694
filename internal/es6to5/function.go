package es6to5

import (
	"github.com/romshark/es6down/internal/ast"
	"github.com/romshark/es6down/internal/destructuring"
	"github.com/romshark/es6down/internal/resolver"
	"github.com/romshark/es6down/internal/transformer"
)

// This file lowers function declarations, expressions, and arrows,
// grounded on
// github.com/evanw/esbuild/internal/js_parser/js_parser_lower.go's lowerFunction (the
// default-parameter-to-guard, rest-parameter-to-loop, and captured-`this`
// expansion shapes all come from there), adapted to the tagged Kind/Data
// node representation this module uses instead of esbuild's Ekind structs.

func (c *context) lowerFunctionDeclaration(node *ast.Node) *ast.Node {
	fn := node.Data.(*ast.FunctionDeclaration)
	params, body := c.lowerFunctionBody(fn.FunctionLikeBody, false)
	return cloneNode(node, &ast.FunctionDeclaration{
		Name: fn.Name,
		FunctionLikeBody: ast.FunctionLikeBody{
			Parameters: params,
			Body:       body,
		},
	})
}

func (c *context) lowerFunctionExpression(node *ast.Node) *ast.Node {
	fn := node.Data.(*ast.FunctionExpression)
	params, body := c.lowerFunctionBody(fn.FunctionLikeBody, false)
	return cloneNode(node, &ast.FunctionExpression{
		Name: fn.Name,
		FunctionLikeBody: ast.FunctionLikeBody{
			Parameters: params,
			Body:       body,
		},
	})
}

// lowerArrowFunction produces an equivalent function expression with no own
// `this` binding: every `this` reference inside
// becomes a reference to the captured `_this` established by the nearest
// enclosing non-arrow function.
func (c *context) lowerArrowFunction(node *ast.Node) *ast.Node {
	arrow := node.Data.(*ast.ArrowFunction)
	params, body := c.lowerFunctionBody(arrow.FunctionLikeBody, true)
	return &ast.Node{
		Kind:          ast.KindFunctionExpression,
		Loc:           node.Loc,
		Original:      node,
		IsSynthesized: true,
		Data: &ast.FunctionExpression{
			FunctionLikeBody: ast.FunctionLikeBody{
				Parameters: params,
				Body:       body,
			},
		},
	}
}

// lowerFunctionBody runs the common body assembly shared by function
// declarations, function expressions, and arrows, in order. isArrow is
// false for every caller except lowerArrowFunction, since
// only a genuine arrow's body both may be a bare expression and never gets
// its own `var _this = this;` prelude.
func (c *context) lowerFunctionBody(fn ast.FunctionLikeBody, isArrow bool) ([]*ast.Node, *ast.Node) {
	c.env.StartLexicalEnvironment()

	var prelude []*ast.Node

	// Step 2: captured `this`.
	if !isArrow && c.bodyCapturesThis(fn) {
		thisAlias := c.allocateThisAlias()
		prelude = append(prelude, ast.VarStmt(ast.FlagNone, ast.VarDecl(thisAlias, ast.This())))
		c.capturedThisStack = append(c.capturedThisStack, thisAlias)
		defer func() { c.capturedThisStack = c.capturedThisStack[:len(c.capturedThisStack)-1] }()
	}

	// Steps 3-4: parameter defaults, binding patterns, and a trailing rest
	// parameter.
	newParams, paramPrelude := c.lowerParameterList(fn.Parameters)
	prelude = append(prelude, paramPrelude...)

	// Step 5: visit and emit the original body.
	var bodyStatements []*ast.Node
	if fn.Body == nil {
		bodyStatements = nil
	} else if fn.Body.Kind == ast.KindBlock {
		block := fn.Body.Data.(*ast.Block)
		bodyStatements = c.visitStatementList(block.Statements)
	} else {
		// An arrow with an expression body: lower the expression, then wrap
		// it in a return statement.
		expr := c.visitExpression(fn.Body)
		bodyStatements = []*ast.Node{ast.ReturnStmt(expr)}
	}

	all := append(prelude, bodyStatements...)
	// Step 6: close the bracket, flushing any hoisted temp declarations.
	all = c.env.EndLexicalEnvironment(all)

	return newParams, ast.BlockStmt(all...)
}

// bodyCapturesThis reports whether lowering this function's body will
// introduce any reference to the captured `_this` alias — i.e. whether it
// contains a nested arrow function that itself (transitively) refers to
// `this`. The resolver-driven transform-flags bit (ast.ContainsCapturedLexicalThis)
// set during parsing/binding is the authoritative source; walking the body
// here would duplicate work the flags already did.
func (c *context) bodyCapturesThis(fn ast.FunctionLikeBody) bool {
	if fn.Body == nil {
		return false
	}
	return fn.Body.TransformFlags.Has(ast.ContainsCapturedLexicalThis)
}

// lowerParameterList handles binding-pattern and defaulted parameters: they
// are rewritten in place and replaced in the emitted
// parameter list by a plain identifier; a trailing rest parameter is
// elided from the parameter list and expanded into a prelude loop.
func (c *context) lowerParameterList(params []*ast.Node) (newParams []*ast.Node, prelude []*ast.Node) {
	restIndex := -1
	for i, p := range params {
		if p.Data.(*ast.Parameter).DotDotDotToken {
			restIndex = i
			break
		}
	}

	limit := len(params)
	if restIndex >= 0 {
		limit = restIndex
	}

	for i := 0; i < limit; i++ {
		p := params[i].Data.(*ast.Parameter)

		if p.Name.Kind == ast.KindBindingPattern {
			temp := c.env.CreateTempVariable(transformer.TempFlagsAuto)
			var sourceValue *ast.Node = temp
			if p.Initializer != nil {
				sourceValue = &ast.Node{
					Kind: ast.KindConditionalExpression,
					Data: &ast.ConditionalExpression{
						Condition: ast.Binary(ast.OpStrictEquals, temp, ast.VoidZero()),
						WhenTrue:  c.visitExpression(p.Initializer),
						WhenFalse: temp,
					},
					IsSynthesized: true,
				}
			}
			c.destructure(p.Name, sourceValue, destructuring.ModeDeclaration, func(stmt *ast.Node) { prelude = append(prelude, stmt) })
			newParams = append(newParams, &ast.Node{Kind: ast.KindParameter, Data: &ast.Parameter{Name: temp}, IsSynthesized: true})
			continue
		}

		if p.Initializer != nil {
			init := c.visitExpression(p.Initializer)
			guard := ast.IfStmt(
				ast.Binary(ast.OpStrictEquals, p.Name, ast.VoidZero()),
				ast.BlockStmt(ast.ExprStmt(ast.Assign(p.Name, init))),
				nil,
			)
			prelude = append(prelude, guard)
			newParams = append(newParams, &ast.Node{Kind: ast.KindParameter, Data: &ast.Parameter{Name: p.Name}, IsSynthesized: true})
			continue
		}

		newParams = append(newParams, params[i])
	}

	if restIndex >= 0 {
		rest := params[restIndex].Data.(*ast.Parameter)
		prelude = append(prelude, c.lowerRestParameter(rest.Name, restIndex)...)
	}

	return newParams, prelude
}

// lowerRestParameter expands a trailing "...name" parameter into an
// init/loop pair that copies tail arguments off the `arguments` object.
func (c *context) lowerRestParameter(name *ast.Node, restIndex int) []*ast.Node {
	counter := c.env.CreateTempVariable(transformer.TempFlagsI)

	declareEmpty := ast.VarStmt(ast.FlagNone, ast.VarDecl(name, ast.Array()))

	argumentsLen := ast.PropAccess(ast.Ident("arguments"), "length")

	var index *ast.Node = counter
	if restIndex != 0 {
		index = ast.Binary(ast.OpSubtract, counter, ast.NumLit(float64(restIndex)))
	}

	loop := ast.ForStmt(
		ast.VarDeclList(ast.FlagNone, ast.VarDecl(counter, ast.NumLit(float64(restIndex)))),
		ast.Binary(ast.OpLessThan, counter, argumentsLen),
		&ast.Node{Kind: ast.KindPostfixUnaryExpression, Data: &ast.PostfixUnaryExpression{Operator: "++", Operand: counter}, IsSynthesized: true},
		ast.BlockStmt(ast.ExprStmt(ast.Assign(
			ast.ElemAccess(name, index),
			ast.ElemAccess(ast.Ident("arguments"), counter),
		))),
	)

	return []*ast.Node{declareEmpty, loop}
}

// lowerSuperPropertyAccessIfNeeded rewrites `super.m` references
// encountered as a bare property access outside of a call (the call
// case is handled in spread.go's lowerCallExpression, which special-cases
// a super callee before falling through here).
func (c *context) lowerSuperPropertyAccessIfNeeded(node *ast.Node) *ast.Node {
	p := node.Data.(*ast.PropertyAccessExpression)
	if p.Expression.Kind != ast.KindSuperExpression {
		return nil
	}
	superAlias, ok := c.currentSuper()
	if !ok {
		return nil
	}
	base := superAlias
	if !c.currentIsStatic() {
		base = ast.PropAccess(superAlias, "prototype")
	}
	return cloneNode(node, &ast.PropertyAccessExpression{Expression: base, Name: p.Name})
}

// substituteThis and substituteSuper implement the bare-identifier
// substitutions: `this` inside an arrow resolves to the enclosing
// function's captured alias; a bare `super` resolves to `_super`, adding
// `.prototype` when the resolver marks the reference as an instance-member
// access (NodeCheckFlags.SuperInstance).
func (c *context) substituteThis(node *ast.Node) *ast.Node {
	alias := c.currentThis()
	if alias == nil {
		return node
	}
	return referenceAlias(node, alias)
}

func (c *context) substituteSuper(node *ast.Node) *ast.Node {
	alias, ok := c.currentSuper()
	if !ok {
		return node
	}
	flags := c.res.GetNodeCheckFlags(node)
	if flags.Has(resolver.SuperInstance) {
		return ast.PropAccess(referenceAlias(node, alias), "prototype")
	}
	return referenceAlias(node, alias)
}

// referenceAlias builds a fresh reference to a previously-allocated temp
// identifier, anchored at site's source location rather than the temp's
// own (synthesized, locationless) one.
func referenceAlias(site *ast.Node, alias *ast.Node) *ast.Node {
	ident := alias.Data.(*ast.Identifier)
	ref := ast.IdentRef(ident.Text, ident.Ref)
	ref.Loc = site.Loc
	ref.Original = site
	return ref
}
