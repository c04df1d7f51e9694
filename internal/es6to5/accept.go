package es6to5

import "github.com/romshark/es6down/internal/ast"

// acceptStatement is the generic copy-visitor half of the dispatcher: it
// reconstructs node with each child replaced by a recursive visit,
// preserving structural sharing for clean subtrees — a child whose own
// ContainsES6 bit is clear comes back byte-identical rather than a
// pointless copy.
func (c *context) acceptStatement(node *ast.Node) *ast.Node {
	switch node.Kind {
	case ast.KindBlock:
		b := node.Data.(*ast.Block)
		stmts := c.visitStatementList(b.Statements)
		if sameStatements(stmts, b.Statements) {
			return node
		}
		return &ast.Node{Kind: node.Kind, Loc: node.Loc, Flags: node.Flags, Data: &ast.Block{Statements: stmts}}

	case ast.KindExpressionStatement:
		s := node.Data.(*ast.ExpressionStatement)
		expr := c.visitExpression(s.Expression)
		if expr == s.Expression {
			return node
		}
		return cloneNode(node, &ast.ExpressionStatement{Expression: expr})

	case ast.KindReturnStatement:
		s := node.Data.(*ast.ReturnStatement)
		expr := c.visitExpression(s.Expression)
		if expr == s.Expression {
			return node
		}
		return cloneNode(node, &ast.ReturnStatement{Expression: expr})

	case ast.KindIfStatement:
		s := node.Data.(*ast.IfStatement)
		cond := c.visitExpression(s.Condition)
		then := c.visitSingleStatement(s.Then)
		els := c.visitSingleStatement(s.Else)
		if cond == s.Condition && then == s.Then && els == s.Else {
			return node
		}
		return cloneNode(node, &ast.IfStatement{Condition: cond, Then: then, Else: els})

	case ast.KindForStatement:
		s := node.Data.(*ast.ForStatement)
		init := c.visitForInitializer(s.Initializer)
		cond := c.visitExpression(s.Condition)
		incr := c.visitExpression(s.Incrementor)
		body := c.visitSingleStatement(s.Body)
		if init == s.Initializer && cond == s.Condition && incr == s.Incrementor && body == s.Body {
			return node
		}
		return cloneNode(node, &ast.ForStatement{Initializer: init, Condition: cond, Incrementor: incr, Body: body})

	case ast.KindForInStatement:
		s := node.Data.(*ast.ForInStatement)
		init := c.visitForInitializer(s.Initializer)
		expr := c.visitExpression(s.Expression)
		body := c.visitSingleStatement(s.Body)
		if init == s.Initializer && expr == s.Expression && body == s.Body {
			return node
		}
		return cloneNode(node, &ast.ForInStatement{Initializer: init, Expression: expr, Body: body})

	case ast.KindVariableStatement:
		s := node.Data.(*ast.VariableStatement)
		declList := s.DeclarationList.Data.(*ast.VariableDeclarationList)
		decls := make([]*ast.Node, len(declList.Declarations))
		changed := false
		for i, d := range declList.Declarations {
			decls[i] = c.visitVariableDeclaration(d)
			if decls[i] != d {
				changed = true
			}
		}
		if !changed {
			return node
		}
		return cloneNode(node, &ast.VariableStatement{
			DeclarationList: cloneNode(s.DeclarationList, &ast.VariableDeclarationList{Declarations: decls, Flags: declList.Flags}),
		})

	case ast.KindThrowStatement:
		s := node.Data.(*ast.ThrowStatement)
		expr := c.visitExpression(s.Expression)
		if expr == s.Expression {
			return node
		}
		return cloneNode(node, &ast.ThrowStatement{Expression: expr})

	case ast.KindTryStatement:
		s := node.Data.(*ast.TryStatement)
		try := c.visitSingleStatement(s.TryBlock)
		catch := s.CatchClause
		if s.CatchClause != nil {
			cc := s.CatchClause.Data.(*ast.CatchClause)
			block := c.visitSingleStatement(cc.Block)
			if block != cc.Block {
				catch = cloneNode(s.CatchClause, &ast.CatchClause{Parameter: cc.Parameter, Block: block})
			}
		}
		fin := c.visitSingleStatement(s.FinallyBlock)
		if try == s.TryBlock && catch == s.CatchClause && fin == s.FinallyBlock {
			return node
		}
		return cloneNode(node, &ast.TryStatement{TryBlock: try, CatchClause: catch, FinallyBlock: fin})

	case ast.KindLabeledStatement:
		s := node.Data.(*ast.LabeledStatement)
		stmt := c.visitSingleStatement(s.Stmt)
		if stmt == s.Stmt {
			return node
		}
		return cloneNode(node, &ast.LabeledStatement{Label: s.Label, Stmt: stmt})

	case ast.KindEmptyStatement, ast.KindBreakStatement, ast.KindContinueStatement:
		return node

	default:
		return node
	}
}

// visitForInitializer visits a for/for-in header's initializer, which is
// either a VariableDeclarationList or a bare expression.
func (c *context) visitForInitializer(node *ast.Node) *ast.Node {
	if node == nil {
		return nil
	}
	if node.Kind == ast.KindVariableDeclarationList {
		list := node.Data.(*ast.VariableDeclarationList)
		decls := make([]*ast.Node, len(list.Declarations))
		changed := false
		for i, d := range list.Declarations {
			decls[i] = c.visitVariableDeclaration(d)
			if decls[i] != d {
				changed = true
			}
		}
		if !changed {
			return node
		}
		return cloneNode(node, &ast.VariableDeclarationList{Declarations: decls, Flags: list.Flags})
	}
	return c.visitExpression(node)
}

func (c *context) visitVariableDeclaration(node *ast.Node) *ast.Node {
	d := node.Data.(*ast.VariableDeclaration)
	init := c.visitExpression(d.Initializer)
	if init == d.Initializer {
		return node
	}
	return cloneNode(node, &ast.VariableDeclaration{Name: d.Name, Initializer: init})
}

// visitSingleStatement visits a statement reachable through a non-Block
// slot (if/for/while bodies, try blocks). It may legitimately be nil.
func (c *context) visitSingleStatement(node *ast.Node) *ast.Node {
	if node == nil {
		return nil
	}
	out := c.visitStatement(node)
	if len(out) == 1 {
		return out[0]
	}
	return ast.BlockStmt(out...)
}

func (c *context) visitStatementList(stmts []*ast.Node) []*ast.Node {
	out := make([]*ast.Node, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, c.visitStatement(s)...)
	}
	return out
}

func sameStatements(a, b []*ast.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// acceptExpression is acceptStatement's expression-side counterpart.
func (c *context) acceptExpression(node *ast.Node) *ast.Node {
	switch node.Kind {
	case ast.KindArrayLiteralExpression:
		a := node.Data.(*ast.ArrayLiteralExpression)
		elems := make([]*ast.Node, len(a.Elements))
		changed := false
		for i, e := range a.Elements {
			elems[i] = c.visitExpression(e)
			if elems[i] != e {
				changed = true
			}
		}
		if !changed {
			return node
		}
		return cloneNode(node, &ast.ArrayLiteralExpression{Elements: elems})

	case ast.KindCallExpression:
		call := node.Data.(*ast.CallExpression)
		callee := c.visitExpression(call.Callee)
		args := c.visitExpressionList(call.Arguments)
		if callee == call.Callee && sameStatements(args, call.Arguments) {
			return node
		}
		return cloneNode(node, &ast.CallExpression{Callee: callee, Arguments: args, OptionalChain: call.OptionalChain})

	case ast.KindNewExpression:
		n := node.Data.(*ast.NewExpression)
		callee := c.visitExpression(n.Callee)
		args := c.visitExpressionList(n.Arguments)
		if callee == n.Callee && sameStatements(args, n.Arguments) {
			return node
		}
		return cloneNode(node, &ast.NewExpression{Callee: callee, Arguments: args})

	case ast.KindPropertyAccessExpression:
		p := node.Data.(*ast.PropertyAccessExpression)
		target := c.visitExpression(p.Expression)
		if target == p.Expression {
			return node
		}
		return cloneNode(node, &ast.PropertyAccessExpression{Expression: target, Name: p.Name})

	case ast.KindElementAccessExpression:
		p := node.Data.(*ast.ElementAccessExpression)
		target := c.visitExpression(p.Expression)
		index := c.visitExpression(p.ArgumentExpression)
		if target == p.Expression && index == p.ArgumentExpression {
			return node
		}
		return cloneNode(node, &ast.ElementAccessExpression{Expression: target, ArgumentExpression: index})

	case ast.KindBinaryExpression:
		b := node.Data.(*ast.BinaryExpression)
		left := c.visitExpression(b.Left)
		right := c.visitExpression(b.Right)
		if left == b.Left && right == b.Right {
			return node
		}
		return cloneNode(node, &ast.BinaryExpression{Left: left, Operator: b.Operator, Right: right})

	case ast.KindConditionalExpression:
		cond := node.Data.(*ast.ConditionalExpression)
		c1 := c.visitExpression(cond.Condition)
		c2 := c.visitExpression(cond.WhenTrue)
		c3 := c.visitExpression(cond.WhenFalse)
		if c1 == cond.Condition && c2 == cond.WhenTrue && c3 == cond.WhenFalse {
			return node
		}
		return cloneNode(node, &ast.ConditionalExpression{Condition: c1, WhenTrue: c2, WhenFalse: c3})

	case ast.KindParenthesizedExpression:
		p := node.Data.(*ast.ParenthesizedExpression)
		inner := c.visitExpression(p.Expression)
		if inner == p.Expression {
			return node
		}
		return cloneNode(node, &ast.ParenthesizedExpression{Expression: inner})

	case ast.KindAssignmentExpression:
		a := node.Data.(*ast.AssignmentExpression)
		target := c.visitExpression(a.Target)
		value := c.visitExpression(a.Value)
		if target == a.Target && value == a.Value {
			return node
		}
		return cloneNode(node, &ast.AssignmentExpression{Target: target, Value: value})

	case ast.KindSequenceExpression:
		s := node.Data.(*ast.SequenceExpression)
		exprs := c.visitExpressionList(s.Expressions)
		if sameStatements(exprs, s.Expressions) {
			return node
		}
		return cloneNode(node, &ast.SequenceExpression{Expressions: exprs})

	case ast.KindSpreadElement:
		s := node.Data.(*ast.SpreadElement)
		expr := c.visitExpression(s.Expression)
		if expr == s.Expression {
			return node
		}
		return cloneNode(node, &ast.SpreadElement{Expression: expr})

	case ast.KindPrefixUnaryExpression:
		p := node.Data.(*ast.PrefixUnaryExpression)
		operand := c.visitExpression(p.Operand)
		if operand == p.Operand {
			return node
		}
		return cloneNode(node, &ast.PrefixUnaryExpression{Operator: p.Operator, Operand: operand})

	case ast.KindPostfixUnaryExpression:
		p := node.Data.(*ast.PostfixUnaryExpression)
		operand := c.visitExpression(p.Operand)
		if operand == p.Operand {
			return node
		}
		return cloneNode(node, &ast.PostfixUnaryExpression{Operator: p.Operator, Operand: operand})

	case ast.KindIdentifier, ast.KindThisExpression, ast.KindSuperExpression,
		ast.KindNumericLiteral, ast.KindStringLiteral, ast.KindBooleanLiteral, ast.KindNullLiteral:
		return node

	default:
		return node
	}
}

func (c *context) visitExpressionList(exprs []*ast.Node) []*ast.Node {
	out := make([]*ast.Node, len(exprs))
	for i, e := range exprs {
		out[i] = c.visitExpression(e)
	}
	return out
}

// cloneNode rebuilds a synthesized replacement that keeps template's Kind,
// Loc, and Flags but swaps in newData — used by every branch above so a
// touched node still carries its original position for diagnostics/source
// maps.
func cloneNode(template *ast.Node, newData any) *ast.Node {
	return &ast.Node{
		Kind:          template.Kind,
		Flags:         template.Flags,
		Loc:           template.Loc,
		Original:      template,
		IsSynthesized: true,
		Data:          newData,
	}
}
