package es6to5

import "github.com/romshark/es6down/internal/ast"

// Source file visitor: prologue directives
// are written unchanged, a top-level `var _this = this;` is emitted only
// if the file itself (outside any function) captures `this` inside an
// arrow, then every remaining top-level statement is visited normally.
func (c *context) visitSourceFile(node *ast.Node) *ast.Node {
	sf := node.Data.(*ast.SourceFile)

	prologue := sf.Statements[:sf.PrologueCount]
	rest := sf.Statements[sf.PrologueCount:]

	var thisAlias *ast.Node
	if fileCapturesThis(node) {
		thisAlias = c.allocateThisAlias()
		c.capturedThisStack = append(c.capturedThisStack, thisAlias)
	}

	c.env.StartLexicalEnvironment()
	visited := c.visitStatementList(rest)
	visited = c.env.EndLexicalEnvironment(visited)

	if thisAlias == nil && sameStatements(visited, rest) {
		return node
	}

	out := make([]*ast.Node, 0, len(prologue)+1+len(visited))
	out = append(out, prologue...)
	if thisAlias != nil {
		out = append(out, ast.VarStmt(ast.FlagNone, ast.VarDecl(thisAlias, ast.This())))
	}
	out = append(out, visited...)

	return cloneNode(node, &ast.SourceFile{Statements: out, PrologueCount: sf.PrologueCount})
}

// fileCapturesThis mirrors bodyCapturesThis at file scope: it reads the
// precomputed ContainsCapturedLexicalThis bit the flag pass attaches to
// the source file node when some top-level arrow refers to `this`.
func fileCapturesThis(node *ast.Node) bool {
	return node.TransformFlags.Has(ast.ContainsCapturedLexicalThis)
}
