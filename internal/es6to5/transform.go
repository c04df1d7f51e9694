// Package es6to5 implements the ES6-to-ES5 down-leveling transform: the
// flag-gated visitor dispatcher, the construct-by-construct lowering
// rules, and the single entry point, CreateTransformation, that wires
// them to a Transformer façade and an EmitResolver.
package es6to5

import (
	"github.com/romshark/es6down/internal/ast"
	"github.com/romshark/es6down/internal/config"
	"github.com/romshark/es6down/internal/logger"
	"github.com/romshark/es6down/internal/transformer"
)

// Transformation is what CreateTransformation returns: a pure transform
// over source files, mapping one SourceFile to another.
type Transformation func(source *logger.Source, file *ast.Node) *ast.Node

// CreateTransformation builds one Transformation bound to env (the
// Transformer façade) and opts. Each call to the returned function starts
// a fresh context, so a single Transformation value is safe to reuse
// across files as long as they aren't transformed concurrently: there is
// no shared mutable state across calls beyond env itself.
func CreateTransformation(env *transformer.Environment, opts config.Options) Transformation {
	return func(source *logger.Source, file *ast.Node) *ast.Node {
		if !opts.TransformEnabled() {
			return file
		}
		c := newContext(env, opts, source)
		c.installNestedRedeclarationSubstitution()
		c.env.PushNode(file)
		defer c.env.PopNode()
		return c.visitSourceFile(file)
	}
}
