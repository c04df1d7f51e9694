package es6to5

import (
	"github.com/romshark/es6down/internal/ast"
	"github.com/romshark/es6down/internal/helpers"
)

// Class lowering, grounded on lowerClass /
// computeClassLoweringInfo in github.com/evanw/esbuild/internal/js_parser/js_parser_lower_class.go:
// the source class becomes an IIFE taking the base class as its sole
// argument, binding `_super` inside, and installing members as plain
// property assignments on the constructor function / its prototype.

func (c *context) lowerClassDeclaration(node *ast.Node) []*ast.Node {
	cls := node.Data.(*ast.ClassDeclaration)
	name := cls.Name
	if name == nil {
		name = ast.Ident(c.env.GetGeneratedNameForNode(node))
	}
	iife := c.buildClassIIFE(cls.Class)
	decl := ast.VarStmt(ast.FlagNone, ast.VarDecl(name, iife))
	return []*ast.Node{decl}
}

func (c *context) lowerClassExpression(node *ast.Node) *ast.Node {
	cls := node.Data.(*ast.ClassExpression)
	return c.buildClassIIFE(cls.Class)
}

// buildClassIIFE assembles:
//
//	(function (_super) {
//	    __extends(Name, _super);
//	    function Name(...) { ...constructor body... }
//	    Name.prototype.m = function () {...};
//	    return Name;
//	})(Base)
//
// The `__extends` call is the one runtime helper this module assumes is
// ambiently available, so it is emitted as a bare call rather than
// inlined.
func (c *context) buildClassIIFE(cls ast.Class) *ast.Node {
	hasBase := cls.HeritageClause != nil

	ctorName := cls.Name
	if ctorName == nil {
		ctorName = ast.Ident("_")
	}

	var superParam *ast.Node
	if hasBase {
		superParam = ast.Ident("_super")
		c.superStack = append(c.superStack, superParam)
	} else {
		c.superStack = append(c.superStack, nil)
	}
	c.staticStack = append(c.staticStack, false)
	defer func() {
		c.superStack = c.superStack[:len(c.superStack)-1]
		c.staticStack = c.staticStack[:len(c.staticStack)-1]
	}()

	var body []*ast.Node
	if hasBase {
		body = append(body, ast.ExprStmt(ast.Call(ast.Ident("__extends"), ctorName, superParam)))
	}

	body = append(body, c.buildConstructor(cls, ctorName, hasBase))

	for _, member := range cls.Members {
		body = append(body, c.lowerClassMember(member, ctorName)...)
	}

	body = append(body, ast.ReturnStmt(ctorName))

	params := []*ast.Node{}
	if hasBase {
		params = append(params, &ast.Node{Kind: ast.KindParameter, Data: &ast.Parameter{Name: superParam}, IsSynthesized: true})
	}

	fn := &ast.Node{
		Kind: ast.KindFunctionExpression,
		Data: &ast.FunctionExpression{
			FunctionLikeBody: ast.FunctionLikeBody{
				Parameters: params,
				Body:       ast.BlockStmt(body...),
			},
		},
		IsSynthesized: true,
	}

	args := []*ast.Node{}
	if hasBase {
		args = append(args, cls.HeritageClause)
	}
	return ast.Call(ast.Paren(fn), args...)
}

// buildConstructor lowers an explicit constructor's body like any function
//, or synthesizes a default one (bullet 2): an empty
// body, or — when a base class is present — a single
// `_super.apply(this, arguments)` statement.
func (c *context) buildConstructor(cls ast.Class, ctorName *ast.Node, hasBase bool) *ast.Node {
	ctor := findConstructor(cls.Members)

	var params []*ast.Node
	var body *ast.Node

	if ctor != nil {
		m := ctor.Data.(*ast.MethodDeclaration)
		params, body = c.lowerFunctionBody(m.FunctionLikeBody, false)
	} else if hasBase {
		superAlias, _ := c.currentSuper()
		body = ast.BlockStmt(ast.ExprStmt(ast.Call(ast.PropAccess(superAlias, "apply"), ast.This(), ast.Ident("arguments"))))
	} else {
		body = ast.BlockStmt()
	}

	return &ast.Node{
		Kind: ast.KindFunctionDeclaration,
		Data: &ast.FunctionDeclaration{
			Name: ctorName,
			FunctionLikeBody: ast.FunctionLikeBody{
				Parameters: params,
				Body:       body,
			},
		},
		IsSynthesized: true,
	}
}

func findConstructor(members []*ast.Node) *ast.Node {
	for _, m := range members {
		if m.Kind != ast.KindMethodDeclaration {
			continue
		}
		method := m.Data.(*ast.MethodDeclaration)
		if ident, ok := method.Name.Data.(*ast.Identifier); ok && ident.Text == "constructor" {
			return m
		}
	}
	return nil
}

// lowerClassMember handles one non-constructor member: a method becomes
// `Receiver.m = function(...) {...}`; each
// accessor becomes its own `Object.defineProperty` call with `enumerable`
// and `configurable` both true — a getter and setter sharing a name each
// get an independent call rather than a single merged descriptor, which
// is runtime-equivalent since ECMAScript's own descriptor semantics merge
// them; an empty semicolon member is kept as an empty statement for
// source-map fidelity.
func (c *context) lowerClassMember(member *ast.Node, ctorName *ast.Node) []*ast.Node {
	switch member.Kind {
	case ast.KindEmptyStatement:
		return []*ast.Node{member}

	case ast.KindMethodDeclaration:
		m := member.Data.(*ast.MethodDeclaration)
		if ident, ok := m.Name.Data.(*ast.Identifier); ok && ident.Text == "constructor" {
			return nil
		}
		c.staticStack[len(c.staticStack)-1] = m.Flags.Has(ast.FlagStatic)
		receiver := c.memberReceiver(ctorName, m.Flags)
		params, body := c.lowerFunctionBody(m.FunctionLikeBody, false)
		fn := &ast.Node{
			Kind: ast.KindFunctionExpression,
			Data: &ast.FunctionExpression{FunctionLikeBody: ast.FunctionLikeBody{Parameters: params, Body: body}},
			IsSynthesized: true,
		}
		target := ast.PropAccess(receiver, c.memberKeyName(m.Name))
		return []*ast.Node{ast.ExprStmt(ast.Assign(target, fn))}

	case ast.KindAccessorProperty:
		a := member.Data.(*ast.AccessorProperty)
		c.staticStack[len(c.staticStack)-1] = a.Flags.Has(ast.FlagStatic)
		receiver := c.memberReceiver(ctorName, a.Flags)
		params, body := c.lowerFunctionBody(a.FunctionLikeBody, false)
		fn := &ast.Node{
			Kind: ast.KindFunctionExpression,
			Data: &ast.FunctionExpression{FunctionLikeBody: ast.FunctionLikeBody{Parameters: params, Body: body}},
			IsSynthesized: true,
		}
		accessorKind := "get"
		if a.Flags.Has(ast.FlagSetAccessor) {
			accessorKind = "set"
		}
		descriptor := &ast.Node{
			Kind: ast.KindObjectLiteralExpression,
			Data: &ast.ObjectLiteralExpression{
				Properties: []*ast.Node{
					propertyAssignment(accessorKind, fn),
					propertyAssignment("enumerable", ast.BoolLit(true)),
					propertyAssignment("configurable", ast.BoolLit(true)),
				},
			},
			IsSynthesized: true,
		}
		call := ast.Call(ast.PropAccess(ast.Ident("Object"), "defineProperty"), receiver, ast.StrLit(c.memberKeyName(a.Name)), descriptor)
		return []*ast.Node{ast.ExprStmt(call)}

	default:
		return nil
	}
}

func propertyAssignment(key string, value *ast.Node) *ast.Node {
	return &ast.Node{
		Kind:          ast.KindPropertyAssignment,
		Data:          &ast.PropertyAssignment{Name: ast.Ident(key), Value: value},
		IsSynthesized: true,
	}
}

// memberReceiver picks `Name` for static members, `Name.prototype`
// otherwise.
func (c *context) memberReceiver(ctorName *ast.Node, flags ast.Flags) *ast.Node {
	if flags.Has(ast.FlagStatic) {
		return ctorName
	}
	return ast.PropAccess(ctorName, "prototype")
}

func (c *context) memberKeyName(name *ast.Node) string {
	if ident, ok := name.Data.(*ast.Identifier); ok {
		return ident.Text
	}
	if str, ok := name.Data.(*ast.StringLiteral); ok {
		return helpers.UTF16ToString(str.Value)
	}
	return ""
}
