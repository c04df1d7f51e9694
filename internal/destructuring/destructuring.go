// Package destructuring flattens a binding or assignment pattern against a
// source expression: given a root pattern and a source expression, it
// emits a sequence of simple variable declarations or assignments that
// read from generated temporaries and preserve short-circuit semantics
// for defaults.
//
// esbuild folds its equivalent object/array-rest handling directly into
// js_parser_lower.go's lowerObjectRestHelper rather than exposing a
// standalone helper; this package factors the same flattening technique
// out on its own so the core can reuse it across parameters, variable
// declarations, destructuring assignments, and for-of loop targets (see
// DESIGN.md's Open Question decision).
package destructuring

import (
	"github.com/romshark/es6down/internal/ast"
	"github.com/romshark/es6down/internal/transformer"
)

// Mode selects whether flattened bindings are emitted as fresh
// declarations (parameters, `var`/`let`/`const` patterns) or as plain
// assignments (destructuring-assignment expressions, `for-of` with a bare
// assignment-target pattern).
type Mode int

const (
	ModeDeclaration Mode = iota
	ModeAssignment
)

// Visitor lets the destructuring helper run sub-expressions inside a
// pattern (default-value initializers, computed property keys) back
// through the core's own visitor, so sub-expressions inside patterns are
// themselves lowered rather than copied through untouched.
type Visitor func(node *ast.Node) *ast.Node

// Flatten destructures root against source, appending the resulting
// statements via emit: for ModeDeclaration, each a complete
// KindVariableStatement ready to drop straight into a statement list; for
// ModeAssignment, each a complete KindExpressionStatement wrapping one
// assignment. Every node emit receives is a full statement the caller can
// append directly — it never needs to know the mode to know how to wrap it.
func Flatten(env *transformer.Environment, visit Visitor, root *ast.Node, source *ast.Node, mode Mode, emit func(*ast.Node)) {
	f := &flattener{env: env, visit: visit, mode: mode, emit: emit}
	f.bindElement(root, source)
}

type flattener struct {
	env   *transformer.Environment
	visit Visitor
	mode  Mode
	emit  func(*ast.Node)
}

func (f *flattener) declOrAssign(target *ast.Node, value *ast.Node) {
	value = f.visit(value)
	if f.mode == ModeDeclaration {
		f.emit(ast.VarStmt(ast.FlagNone, ast.VarDecl(target, value)))
		return
	}
	f.emit(ast.ExprStmt(ast.Assign(target, value)))
}

// bindElement destructures one binding target (an identifier, or a nested
// pattern) against value.
func (f *flattener) bindElement(target *ast.Node, value *ast.Node) {
	switch target.Kind {
	case ast.KindBindingPattern:
		f.bindPattern(target.Data.(*ast.BindingPattern), value)
	default:
		// A plain identifier (or, in assignment mode, any assignable
		// expression): declare/assign it directly from value.
		f.declOrAssign(target, value)
	}
}

func (f *flattener) bindPattern(pattern *ast.BindingPattern, value *ast.Node) {
	// The source value is only ever evaluated once; if it's not already a
	// cheap reference, hoist it to a temp first so every element's access
	// observes the same value and side effects run exactly once.
	value = f.stabilize(value)

	if pattern.IsObject {
		f.bindObjectPattern(pattern, value)
	} else {
		f.bindArrayPattern(pattern, value)
	}
}

func (f *flattener) stabilize(value *ast.Node) *ast.Node {
	if value.Kind == ast.KindIdentifier {
		return value
	}
	temp := f.env.CreateTempVariable(transformer.TempFlagsAuto)
	visited := f.visit(value)
	if f.mode == ModeDeclaration {
		f.emit(ast.VarStmt(ast.FlagNone, ast.VarDecl(temp, visited)))
		return temp
	}
	// ModeAssignment never introduces a var statement of its own, so the
	// temp needs hoisting explicitly before it's assigned to.
	f.env.HoistVariableDeclaration(temp.Data.(*ast.Identifier).Text)
	f.emit(ast.ExprStmt(ast.Assign(temp, visited)))
	return temp
}

func (f *flattener) bindArrayPattern(pattern *ast.BindingPattern, value *ast.Node) {
	for i, el := range pattern.Elements {
		elem := el.Data.(*ast.BindingElement)
		if elem.DotDotDotToken {
			rest := ast.Call(ast.PropAccess(value, "slice"), ast.NumLit(float64(i)))
			f.bindElement(elem.Name, rest)
			continue
		}
		access := ast.ElemAccess(value, ast.NumLit(float64(i)))
		f.bindWithDefault(elem, access)
	}
}

func (f *flattener) bindObjectPattern(pattern *ast.BindingPattern, value *ast.Node) {
	var seenKeys []string
	for _, el := range pattern.Elements {
		elem := el.Data.(*ast.BindingElement)
		if elem.DotDotDotToken {
			rest := f.objectRestExpression(value, seenKeys)
			f.bindElement(elem.Name, rest)
			continue
		}
		key := elem.PropertyName
		if key == nil {
			key = elem.Name
		}
		keyName := key.Data.(*ast.Identifier).Text
		seenKeys = append(seenKeys, keyName)
		access := ast.PropAccess(value, keyName)
		f.bindWithDefault(elem, access)
	}
}

func (f *flattener) bindWithDefault(elem *ast.BindingElement, access *ast.Node) {
	if elem.Initializer == nil {
		f.bindElement(elem.Name, access)
		return
	}
	// `name = access === void 0 ? initializer : access`, matching the
	// strict-equality default check used for parameter defaults so the
	// two default-value mechanisms stay consistent.
	guarded := &ast.Node{
		Kind: ast.KindConditionalExpression,
		Data: &ast.ConditionalExpression{
			Condition: ast.Binary(ast.OpStrictEquals, access, ast.VoidZero()),
			WhenTrue:  elem.Initializer,
			WhenFalse: access,
		},
		IsSynthesized: true,
	}
	f.bindElement(elem.Name, guarded)
}

// objectRestExpression builds the "everything except these keys" object
// used for an object pattern's rest element, calling the same shape of
// helper esbuild's own lowerObjectRestHelper constructs
// (__rest(source, ["a","b"])-style), but inlined here as a small IIFE
// rather than assuming a named runtime helper is ambiently available,
// since `__extends` is the only runtime helper this module assumes is
// ambiently available.
func (f *flattener) objectRestExpression(source *ast.Node, excludeKeys []string) *ast.Node {
	excludeArray := make([]*ast.Node, len(excludeKeys))
	for i, k := range excludeKeys {
		excludeArray[i] = ast.StrLit(k)
	}
	target := f.env.CreateTempVariable(transformer.TempFlagsAuto)
	prop := f.env.CreateTempVariable(transformer.TempFlagsAuto)
	excludeList := ast.Array(excludeArray...)

	body := ast.BlockStmt(
		ast.VarStmt(ast.FlagNone, ast.VarDecl(target, &ast.Node{Kind: ast.KindObjectLiteralExpression, Data: &ast.ObjectLiteralExpression{}, IsSynthesized: true})),
		&ast.Node{
			Kind: ast.KindForInStatement,
			Data: &ast.ForInStatement{
				Initializer: ast.VarDeclList(ast.FlagNone, ast.VarDecl(prop, nil)),
				Expression:  source,
				Body: ast.IfStmt(
					ast.Binary(ast.OpLessThan, ast.Call(ast.PropAccess(excludeList, "indexOf"), prop), ast.NumLit(0)),
					ast.ExprStmt(ast.Assign(ast.ElemAccess(target, prop), ast.ElemAccess(source, prop))),
					nil,
				),
			},
			IsSynthesized: true,
		},
		ast.ReturnStmt(target),
	)

	iife := ast.Call(ast.Paren(&ast.Node{
		Kind: ast.KindFunctionExpression,
		Data: &ast.FunctionExpression{FunctionLikeBody: ast.FunctionLikeBody{Body: body}},
		IsSynthesized: true,
	}))
	return iife
}
