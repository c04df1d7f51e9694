package es6to5

import (
	"github.com/romshark/es6down/internal/ast"
)

// Object-literal lowering for computed property keys, grounded
// on computeClassLoweringInfo's split-at-first-special-member approach in
// github.com/evanw/esbuild/internal/js_parser/js_parser_lower_class.go, applied here
// to an object literal's computed-property split instead of class members.
func (c *context) lowerObjectLiteral(node *ast.Node) *ast.Node {
	obj := node.Data.(*ast.ObjectLiteralExpression)

	splitAt := -1
	for i, p := range obj.Properties {
		if isComputedProperty(p) {
			splitAt = i
			break
		}
	}
	if splitAt < 0 {
		return c.lowerShorthandOnly(node, obj)
	}

	temp := c.hoistedTempVariable()

	var leading []*ast.Node
	for _, p := range obj.Properties[:splitAt] {
		leading = append(leading, c.lowerObjectLiteralProperty(p))
	}

	exprs := []*ast.Node{ast.Assign(temp, &ast.Node{
		Kind:          ast.KindObjectLiteralExpression,
		Data:          &ast.ObjectLiteralExpression{Properties: leading},
		IsSynthesized: true,
	})}

	for _, p := range obj.Properties[splitAt:] {
		exprs = append(exprs, c.lowerComputedMemberAssignment(temp, p))
	}

	exprs = append(exprs, temp)
	return ast.Paren(ast.Seq(exprs...))
}

func isComputedProperty(p *ast.Node) bool {
	switch p.Kind {
	case ast.KindPropertyAssignment:
		return p.Data.(*ast.PropertyAssignment).Name.Kind == ast.KindComputedPropertyName
	case ast.KindMethodDeclaration:
		return p.Data.(*ast.MethodDeclaration).Name.Kind == ast.KindComputedPropertyName
	case ast.KindAccessorProperty:
		return p.Data.(*ast.AccessorProperty).Name.Kind == ast.KindComputedPropertyName
	default:
		return false
	}
}

// lowerShorthandOnly expands `{x}` to `{x: x}` when no computed key forces
// the full split; it still needs
// to visit every property value for nested ES6 constructs.
func (c *context) lowerShorthandOnly(node *ast.Node, obj *ast.ObjectLiteralExpression) *ast.Node {
	props := make([]*ast.Node, len(obj.Properties))
	changed := false
	for i, p := range obj.Properties {
		switch p.Kind {
		case ast.KindShorthandPropertyAssignment:
			sp := p.Data.(*ast.ShorthandPropertyAssignment)
			props[i] = &ast.Node{
				Kind:          ast.KindPropertyAssignment,
				Loc:           p.Loc,
				Original:      p,
				IsSynthesized: true,
				Data:          &ast.PropertyAssignment{Name: sp.Name, Value: cloneIdentifier(sp.Name)},
			}
			changed = true
		case ast.KindPropertyAssignment:
			pa := p.Data.(*ast.PropertyAssignment)
			value := c.visitExpression(pa.Value)
			if value != pa.Value {
				props[i] = cloneNode(p, &ast.PropertyAssignment{Name: pa.Name, Value: value})
				changed = true
			} else {
				props[i] = p
			}
		default:
			props[i] = c.visitExpression(p)
			if props[i] != p {
				changed = true
			}
		}
	}
	if !changed {
		return node
	}
	return cloneNode(node, &ast.ObjectLiteralExpression{Properties: props})
}

func cloneIdentifier(n *ast.Node) *ast.Node {
	ident := n.Data.(*ast.Identifier)
	return ast.IdentRef(ident.Text, ident.Ref)
}

// lowerObjectLiteralProperty visits one leading (pre-split) property's
// value in place; these stay inside the literal emitted in the sequence's
// first expression.
func (c *context) lowerObjectLiteralProperty(p *ast.Node) *ast.Node {
	switch p.Kind {
	case ast.KindShorthandPropertyAssignment:
		sp := p.Data.(*ast.ShorthandPropertyAssignment)
		return &ast.Node{
			Kind:          ast.KindPropertyAssignment,
			IsSynthesized: true,
			Data:          &ast.PropertyAssignment{Name: sp.Name, Value: cloneIdentifier(sp.Name)},
		}
	case ast.KindPropertyAssignment:
		pa := p.Data.(*ast.PropertyAssignment)
		return cloneNode(p, &ast.PropertyAssignment{Name: pa.Name, Value: c.visitExpression(pa.Value)})
	case ast.KindSpreadElement:
		sp := p.Data.(*ast.SpreadElement)
		return cloneNode(p, &ast.SpreadElement{Expression: c.visitExpression(sp.Expression)})
	case ast.KindMethodDeclaration, ast.KindAccessorProperty:
		return c.visitExpression(p)
	default:
		return p
	}
}

// lowerComputedMemberAssignment builds one per-property assignment in the
// split sequence: `_a[key] = value`, `_a[key] =
// function(){...}` for a method, or an Object.defineProperty call for an accessor.
func (c *context) lowerComputedMemberAssignment(temp *ast.Node, p *ast.Node) *ast.Node {
	switch p.Kind {
	case ast.KindPropertyAssignment:
		pa := p.Data.(*ast.PropertyAssignment)
		key := c.propertyKeyExpression(pa.Name)
		value := c.visitExpression(pa.Value)
		return ast.Assign(ast.ElemAccess(temp, key), value)

	case ast.KindMethodDeclaration:
		m := p.Data.(*ast.MethodDeclaration)
		key := c.propertyKeyExpression(m.Name)
		params, body := c.lowerFunctionBody(m.FunctionLikeBody, false)
		fn := &ast.Node{
			Kind:          ast.KindFunctionExpression,
			IsSynthesized: true,
			Data:          &ast.FunctionExpression{FunctionLikeBody: ast.FunctionLikeBody{Parameters: params, Body: body}},
		}
		return ast.Assign(ast.ElemAccess(temp, key), fn)

	case ast.KindAccessorProperty:
		a := p.Data.(*ast.AccessorProperty)
		key := c.propertyKeyExpression(a.Name)
		params, body := c.lowerFunctionBody(a.FunctionLikeBody, false)
		fn := &ast.Node{
			Kind:          ast.KindFunctionExpression,
			IsSynthesized: true,
			Data:          &ast.FunctionExpression{FunctionLikeBody: ast.FunctionLikeBody{Parameters: params, Body: body}},
		}
		accessorKind := "get"
		if a.Flags.Has(ast.FlagSetAccessor) {
			accessorKind = "set"
		}
		descriptor := &ast.Node{
			Kind: ast.KindObjectLiteralExpression,
			Data: &ast.ObjectLiteralExpression{Properties: []*ast.Node{
				propertyAssignment(accessorKind, fn),
				propertyAssignment("enumerable", ast.BoolLit(true)),
				propertyAssignment("configurable", ast.BoolLit(true)),
			}},
			IsSynthesized: true,
		}
		return ast.Call(ast.PropAccess(ast.Ident("Object"), "defineProperty"), temp, key, descriptor)

	case ast.KindShorthandPropertyAssignment:
		sp := p.Data.(*ast.ShorthandPropertyAssignment)
		name := sp.Name.Data.(*ast.Identifier).Text
		return ast.Assign(ast.PropAccess(temp, name), cloneIdentifier(sp.Name))

	case ast.KindSpreadElement:
		sp := p.Data.(*ast.SpreadElement)
		value := c.visitExpression(sp.Expression)
		return ast.Call(ast.PropAccess(ast.Ident("Object"), "assign"), temp, value)

	default:
		return ast.VoidZero()
	}
}

// propertyKeyExpression reduces a property name node to the expression
// form needed for bracket-notation access: a computed name's inner
// expression (visited), a string literal built from a plain identifier
// key, or a string/numeric literal key returned as it is.
func (c *context) propertyKeyExpression(name *ast.Node) *ast.Node {
	switch name.Kind {
	case ast.KindComputedPropertyName:
		return c.visitExpression(name.Data.(*ast.ComputedPropertyName).Expression)
	case ast.KindIdentifier:
		return ast.StrLit(name.Data.(*ast.Identifier).Text)
	case ast.KindStringLiteral, ast.KindNumericLiteral:
		return name
	default:
		return name
	}
}
