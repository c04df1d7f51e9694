package es6to5

import (
	"github.com/dlclark/regexp2"

	"github.com/romshark/es6down/internal/ast"
	"github.com/romshark/es6down/internal/helpers"
)

// Template literal lowering, grounded on lowerTemplateLiteral
// in github.com/evanw/esbuild/internal/js_parser/js_parser_lower.go.

// crlfPattern normalizes a raw template chunk's line endings to "\n"
// before it becomes a raw-string array entry for a tagged template's
// `.raw` property. The pattern matches "\r" with an optional following
// "\n", so both "\r\n" and a lone "\r" become "\n". Built with regexp2;
// this is the only regular expression in the module.
var crlfPattern = regexp2.MustCompile(`\r\n?`, regexp2.None)

func normalizeRawNewlines(raw string) string {
	out, err := crlfPattern.Replace(raw, "\n", -1, -1)
	if err != nil {
		return raw
	}
	return out
}

// lowerTemplateExpression implements the untagged case: `a${x}b${y}` →
// `"a" + x + "b" + y"`.
func (c *context) lowerTemplateExpression(node *ast.Node) *ast.Node {
	t := node.Data.(*ast.TemplateExpression)

	var parts []*ast.Node
	if len(t.HeadCooked) > 0 || len(t.Spans) == 0 {
		parts = append(parts, ast.StrLit(helpers.UTF16ToString(t.HeadCooked)))
	}

	for _, spanNode := range t.Spans {
		span := spanNode.Data.(*ast.TemplateSpan)
		expr := c.visitExpression(span.Expression)
		parts = append(parts, parenthesizeIfNeeded(expr))
		if len(span.Cooked) > 0 {
			parts = append(parts, ast.StrLit(helpers.UTF16ToString(span.Cooked)))
		}
	}

	if len(parts) == 0 {
		return ast.StrLit("")
	}

	result := parts[0]
	for _, p := range parts[1:] {
		result = ast.Binary(ast.OpAdd, result, p)
	}

	if parentNeedsParens(c.env.GetParentNode(), node) {
		return ast.Paren(result)
	}
	return result
}

// parenthesizeIfNeeded wraps a substitution expression whose precedence is
// not strictly greater than binary `+`, to prevent operator
// re-association. This module's simplified precedence model treats
// conditional, assignment, sequence, and binary expressions as requiring
// parens; everything else (calls, member access, literals, unary) binds
// tighter than `+`.
func parenthesizeIfNeeded(expr *ast.Node) *ast.Node {
	switch expr.Kind {
	case ast.KindConditionalExpression, ast.KindAssignmentExpression,
		ast.KindSequenceExpression, ast.KindBinaryExpression:
		return ast.Paren(expr)
	default:
		return expr
	}
}

// parentNeedsParens reports whether the lowered `+`-chain needs wrapping
// in parens because its parent is a call/new callee: the chain otherwise
// binds incorrectly as a callee.
func parentNeedsParens(parent *ast.Node, node *ast.Node) bool {
	if parent == nil {
		return false
	}
	switch parent.Kind {
	case ast.KindCallExpression:
		return parent.Data.(*ast.CallExpression).Callee == node
	case ast.KindNewExpression:
		return parent.Data.(*ast.NewExpression).Callee == node
	default:
		return false
	}
}

// lowerTaggedTemplate implements the tagged case:
//
//	(_a = ["a", "b"], _a.raw = ["a", "b"], tag(_a, x))
//
// with distinct cooked and raw string arrays built from each literal
// chunk, the raw array normalized for line endings via
// normalizeRawNewlines before being stored.
func (c *context) lowerTaggedTemplate(node *ast.Node) *ast.Node {
	tt := node.Data.(*ast.TaggedTemplateExpression)
	t := tt.Template.Data.(*ast.TemplateExpression)

	cooked := []*ast.Node{ast.StrLit(helpers.UTF16ToString(t.HeadCooked))}
	raw := []*ast.Node{ast.StrLit(normalizeRawNewlines(t.HeadRaw))}

	var exprArgs []*ast.Node
	for _, spanNode := range t.Spans {
		span := spanNode.Data.(*ast.TemplateSpan)
		exprArgs = append(exprArgs, c.visitExpression(span.Expression))
		cooked = append(cooked, ast.StrLit(helpers.UTF16ToString(span.Cooked)))
		raw = append(raw, ast.StrLit(normalizeRawNewlines(span.Raw)))
	}

	temp := c.hoistedTempVariable()
	tag := c.visitExpression(tt.Tag)

	seq := ast.Seq(
		ast.Assign(temp, ast.Array(cooked...)),
		ast.Assign(ast.PropAccess(temp, "raw"), ast.Array(raw...)),
		ast.Call(tag, append([]*ast.Node{temp}, exprArgs...)...),
	)
	return ast.Paren(seq)
}
