package ast

import (
	"github.com/romshark/es6down/internal/helpers"
	"github.com/romshark/es6down/internal/logger"
)

// This file holds the node constructor helpers. Every helper builds a
// synthesized node (no
// source Loc, marked IsSynthesized) so lowering rules never have to
// hand-roll &Node{...} literals inline, mirroring how
// github.com/evanw/esbuild/internal/js_parser/js_parser_lower.go builds replacement
// expressions via small inline constructors (e.g. its uses of
// js_ast.Expr{Loc: loc, Data: &js_ast.ECall{...}}) — consolidated here into
// named functions since this module has no surrounding parser state to
// build them in line with.

func synth(kind Kind, data any) *Node {
	return &Node{Kind: kind, Data: data, IsSynthesized: true}
}

func Ident(name string) *Node {
	return synth(KindIdentifier, &Identifier{Text: name})
}

func IdentRef(name string, ref Ref) *Node {
	return synth(KindIdentifier, &Identifier{Text: name, Ref: ref})
}

func This() *Node { return synth(KindThisExpression, &ThisExpression{}) }
func Super() *Node { return synth(KindSuperExpression, &SuperExpression{}) }

func StrLit(s string) *Node {
	return synth(KindStringLiteral, &StringLiteral{Value: helpers.StringToUTF16(s), PreferQuote: '"'})
}

func NumLit(v float64) *Node {
	return synth(KindNumericLiteral, &NumericLiteral{Value: v})
}

func BoolLit(v bool) *Node {
	return synth(KindBooleanLiteral, &BooleanLiteral{Value: v})
}

// VoidZero builds the "void 0" expression used throughout the lowering
// rules (default-parameter checks, the default thisArg for spread calls,
// destructuring's default-value guard).
func VoidZero() *Node {
	return synth(KindPrefixUnaryExpression, &PrefixUnaryExpression{
		Operator: "void",
		Operand:  NumLit(0),
	})
}

func PropAccess(target *Node, name string) *Node {
	return synth(KindPropertyAccessExpression, &PropertyAccessExpression{
		Expression: target,
		Name:       Ident(name),
	})
}

func ElemAccess(target *Node, index *Node) *Node {
	return synth(KindElementAccessExpression, &ElementAccessExpression{
		Expression:         target,
		ArgumentExpression: index,
	})
}

func Call(callee *Node, args ...*Node) *Node {
	return synth(KindCallExpression, &CallExpression{Callee: callee, Arguments: args})
}

func New(callee *Node, args ...*Node) *Node {
	return synth(KindNewExpression, &NewExpression{Callee: callee, Arguments: args})
}

func Array(elements ...*Node) *Node {
	return synth(KindArrayLiteralExpression, &ArrayLiteralExpression{Elements: elements})
}

func Assign(target *Node, value *Node) *Node {
	return synth(KindAssignmentExpression, &AssignmentExpression{Target: target, Value: value})
}

func Binary(op BinaryOp, left *Node, right *Node) *Node {
	return synth(KindBinaryExpression, &BinaryExpression{Left: left, Operator: op, Right: right})
}

func Seq(exprs ...*Node) *Node {
	if len(exprs) == 1 {
		return exprs[0]
	}
	return synth(KindSequenceExpression, &SequenceExpression{Expressions: exprs})
}

func Paren(expr *Node) *Node {
	return synth(KindParenthesizedExpression, &ParenthesizedExpression{Expression: expr})
}

func ExprStmt(expr *Node) *Node {
	return synth(KindExpressionStatement, &ExpressionStatement{Expression: expr})
}

func ReturnStmt(expr *Node) *Node {
	return synth(KindReturnStatement, &ReturnStatement{Expression: expr})
}

func BlockStmt(stmts ...*Node) *Node {
	return synth(KindBlock, &Block{Statements: stmts})
}

func EmptyStmt() *Node {
	return synth(KindEmptyStatement, &EmptyStatement{})
}

func VarDecl(name *Node, init *Node) *Node {
	return synth(KindVariableDeclaration, &VariableDeclaration{Name: name, Initializer: init})
}

// VarDeclList builds a bare declaration list — the shape a for/for-in
// header's Initializer slot holds, as opposed to VarStmt's full statement.
func VarDeclList(flags Flags, decls ...*Node) *Node {
	return synth(KindVariableDeclarationList, &VariableDeclarationList{
		Declarations: decls,
		Flags:        flags,
	})
}

// VarStmt builds a single "var <name> = <init>;" (or no-initializer)
// statement — the shape used repeatedly by function/for-of/rest-parameter
// lowering.
func VarStmt(flags Flags, decls ...*Node) *Node {
	return synth(KindVariableStatement, &VariableStatement{
		DeclarationList: VarDeclList(flags, decls...),
	})
}

func IfStmt(cond *Node, then *Node, els *Node) *Node {
	return synth(KindIfStatement, &IfStatement{Condition: cond, Then: then, Else: els})
}

func ForStmt(init, cond, incr, body *Node) *Node {
	return synth(KindForStatement, &ForStatement{Initializer: init, Condition: cond, Incrementor: incr, Body: body})
}

// AsBlock wraps a single statement in a block unless it already is one,
// so a lowered loop body is always emitted as a block.
func AsBlock(stmt *Node) *Node {
	if stmt == nil {
		return BlockStmt()
	}
	if stmt.Kind == KindBlock {
		return stmt
	}
	return BlockStmt(stmt)
}

// WithLoc copies n with its source location replaced — used to anchor a
// synthesized node at a particular original position for diagnostics
// without implying it is not synthesized.
func WithLoc(n *Node, loc logger.Loc) *Node {
	cp := *n
	cp.Loc = loc
	return &cp
}
