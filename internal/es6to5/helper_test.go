package es6to5

import (
	"github.com/romshark/es6down/internal/ast"
	"github.com/romshark/es6down/internal/compat"
	"github.com/romshark/es6down/internal/config"
	"github.com/romshark/es6down/internal/logger"
	"github.com/romshark/es6down/internal/resolver"
	"github.com/romshark/es6down/internal/transformer"
)

// newTestContext builds a context wired to a fresh Environment/MapResolver
// pair targeting ES5, the configuration every test in this package drives
// its fixtures against unless it overrides opts explicitly.
func newTestContext() (*context, *resolver.MapResolver) {
	res := resolver.NewMapResolver()
	opts := config.Options{Target: compat.ES5}
	env := transformer.NewEnvironment(res, opts, logger.NewDeferLog(), nil)
	c := newContext(env, opts, nil)
	c.installNestedRedeclarationSubstitution()
	return c, res
}

// es6 marks a node as requiring rewriting at its own position (the `ES6`
// bit), the gate visitStatement/visitExpression check first.
func es6(n *ast.Node) *ast.Node {
	n.TransformFlags |= ast.ES6
	return n
}
