package es6to5

import (
	"fmt"

	"github.com/romshark/es6down/internal/ast"
	"github.com/romshark/es6down/internal/helpers"
)

// dump reduces a node to a plain, comparable value (nested []any/string),
// stripping source-position and identity metadata (Loc, Original, ID,
// IsSynthesized) that a lowering rule is free to vary but a test should
// not have to pin down. This is the familiar "humanize" test pattern of
// reducing a structure to comparable plain data before handing it to
// cmp.Diff, rather than diffing the domain struct directly.
func dump(n *ast.Node) any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case ast.KindIdentifier:
		return "id:" + n.Data.(*ast.Identifier).Text
	case ast.KindThisExpression:
		return "this"
	case ast.KindSuperExpression:
		return "super"
	case ast.KindNumericLiteral:
		return fmt.Sprintf("num:%v", n.Data.(*ast.NumericLiteral).Value)
	case ast.KindStringLiteral:
		return "str:" + helpers.UTF16ToString(n.Data.(*ast.StringLiteral).Value)
	case ast.KindBooleanLiteral:
		return fmt.Sprintf("bool:%v", n.Data.(*ast.BooleanLiteral).Value)
	case ast.KindNullLiteral:
		return "null"

	case ast.KindPrefixUnaryExpression:
		p := n.Data.(*ast.PrefixUnaryExpression)
		if p.Operator == "void" {
			if num, ok := p.Operand.Data.(*ast.NumericLiteral); ok && num.Value == 0 {
				return "void0"
			}
		}
		return []any{"prefix", p.Operator, dump(p.Operand)}

	case ast.KindPostfixUnaryExpression:
		p := n.Data.(*ast.PostfixUnaryExpression)
		return []any{"postfix", p.Operator, dump(p.Operand)}

	case ast.KindBinaryExpression:
		b := n.Data.(*ast.BinaryExpression)
		return []any{"bin", opName(b.Operator), dump(b.Left), dump(b.Right)}

	case ast.KindConditionalExpression:
		c := n.Data.(*ast.ConditionalExpression)
		return []any{"cond", dump(c.Condition), dump(c.WhenTrue), dump(c.WhenFalse)}

	case ast.KindParenthesizedExpression:
		return []any{"paren", dump(n.Data.(*ast.ParenthesizedExpression).Expression)}

	case ast.KindAssignmentExpression:
		a := n.Data.(*ast.AssignmentExpression)
		return []any{"assign", dump(a.Target), dump(a.Value)}

	case ast.KindSequenceExpression:
		s := n.Data.(*ast.SequenceExpression)
		return []any{"seq", dumpList(s.Expressions)}

	case ast.KindSpreadElement:
		return []any{"spread", dump(n.Data.(*ast.SpreadElement).Expression)}

	case ast.KindArrayLiteralExpression:
		a := n.Data.(*ast.ArrayLiteralExpression)
		return []any{"array", dumpList(a.Elements)}

	case ast.KindObjectLiteralExpression:
		o := n.Data.(*ast.ObjectLiteralExpression)
		return []any{"object", dumpList(o.Properties)}

	case ast.KindPropertyAssignment:
		p := n.Data.(*ast.PropertyAssignment)
		return []any{"prop", dump(p.Name), dump(p.Value)}

	case ast.KindShorthandPropertyAssignment:
		return []any{"shorthand", dump(n.Data.(*ast.ShorthandPropertyAssignment).Name)}

	case ast.KindComputedPropertyName:
		return []any{"computed", dump(n.Data.(*ast.ComputedPropertyName).Expression)}

	case ast.KindCallExpression:
		c := n.Data.(*ast.CallExpression)
		return []any{"call", dump(c.Callee), dumpList(c.Arguments)}

	case ast.KindNewExpression:
		nn := n.Data.(*ast.NewExpression)
		return []any{"new", dump(nn.Callee), dumpList(nn.Arguments)}

	case ast.KindPropertyAccessExpression:
		p := n.Data.(*ast.PropertyAccessExpression)
		return []any{"member", dump(p.Expression), dump(p.Name)}

	case ast.KindElementAccessExpression:
		e := n.Data.(*ast.ElementAccessExpression)
		return []any{"index", dump(e.Expression), dump(e.ArgumentExpression)}

	case ast.KindFunctionExpression:
		f := n.Data.(*ast.FunctionExpression)
		return []any{"function", dumpParams(f.Parameters), dump(f.Body)}

	case ast.KindFunctionDeclaration:
		f := n.Data.(*ast.FunctionDeclaration)
		return []any{"functionDecl", dump(f.Name), dumpParams(f.Parameters), dump(f.Body)}

	case ast.KindParameter:
		p := n.Data.(*ast.Parameter)
		return []any{"param", dump(p.Name)}

	case ast.KindBlock:
		b := n.Data.(*ast.Block)
		return []any{"block", dumpList(b.Statements)}

	case ast.KindExpressionStatement:
		return []any{"exprStmt", dump(n.Data.(*ast.ExpressionStatement).Expression)}

	case ast.KindReturnStatement:
		return []any{"return", dump(n.Data.(*ast.ReturnStatement).Expression)}

	case ast.KindEmptyStatement:
		return "empty"

	case ast.KindIfStatement:
		i := n.Data.(*ast.IfStatement)
		return []any{"if", dump(i.Condition), dump(i.Then), dump(i.Else)}

	case ast.KindForStatement:
		f := n.Data.(*ast.ForStatement)
		return []any{"for", dump(f.Initializer), dump(f.Condition), dump(f.Incrementor), dump(f.Body)}

	case ast.KindForInStatement:
		f := n.Data.(*ast.ForInStatement)
		return []any{"forin", dump(f.Initializer), dump(f.Expression), dump(f.Body)}

	case ast.KindForOfStatement:
		f := n.Data.(*ast.ForOfStatement)
		return []any{"forof", dump(f.Initializer), dump(f.Expression), dump(f.Body)}

	case ast.KindVariableStatement:
		v := n.Data.(*ast.VariableStatement)
		return []any{"var", dump(v.DeclarationList)}

	case ast.KindVariableDeclarationList:
		l := n.Data.(*ast.VariableDeclarationList)
		return []any{"declList", dumpList(l.Declarations)}

	case ast.KindVariableDeclaration:
		d := n.Data.(*ast.VariableDeclaration)
		return []any{"decl", dump(d.Name), dump(d.Initializer)}

	case ast.KindSourceFile:
		sf := n.Data.(*ast.SourceFile)
		return []any{"sourceFile", dumpList(sf.Statements)}

	default:
		return fmt.Sprintf("kind:%d", n.Kind)
	}
}

func dumpList(nodes []*ast.Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = dump(n)
	}
	return out
}

func dumpParams(nodes []*ast.Node) []any {
	return dumpList(nodes)
}

func opName(op ast.BinaryOp) string {
	switch op {
	case ast.OpAdd:
		return "+"
	case ast.OpSubtract:
		return "-"
	case ast.OpComma:
		return ","
	case ast.OpStrictEquals:
		return "==="
	case ast.OpAssign:
		return "="
	case ast.OpLessThan:
		return "<"
	default:
		return "?"
	}
}
