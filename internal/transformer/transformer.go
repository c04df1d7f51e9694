// Package transformer defines the pipeline façade a host wires the core
// against — node visitation primitives, name
// generation, lexical-scope management, substitution registration — plus
// (since the core is untestable without one) a concrete reference
// implementation in environment.go.
package transformer

import (
	"github.com/romshark/es6down/internal/ast"
	"github.com/romshark/es6down/internal/config"
	"github.com/romshark/es6down/internal/logger"
	"github.com/romshark/es6down/internal/resolver"
)

// TempFlags hints how a requested temp variable's name should be chosen:
// reuse of a freed temp is permitted only through explicit hinting.
type TempFlags uint8

const (
	TempFlagsAuto TempFlags = iota
	TempFlagsI // the canonical loop-counter name, conventionally "_i"
)

// SubstitutionHook rewrites a reference at emit time. Both hook kinds
// (binding-identifier and expression) share this shape; a nil
// return means "no substitution, let the chain continue".
type SubstitutionHook func(node *ast.Node) *ast.Node

// Transformer is the pipeline façade the core is built against.
// A production pipeline implements this once and shares it across every
// syntax-domain transform (ES6, module lowering, decorators, ...); this
// core never constructs one itself except in tests.
type Transformer interface {
	// StartLexicalEnvironment/EndLexicalEnvironment bracket a hoisting
	// scope. EndLexicalEnvironment returns the statements
	// passed in with any declarations hoisted during the bracket prepended
	// as a single "var" statement at the top.
	StartLexicalEnvironment()
	EndLexicalEnvironment(statements []*ast.Node) []*ast.Node

	// HoistVariableDeclaration registers a name to be flushed as a var at
	// the nearest enclosing bracket's close.
	HoistVariableDeclaration(name string)

	// GetParentNode/FindAncestorNode support stack-based ancestor queries
	// during traversal.
	GetParentNode() *ast.Node
	FindAncestorNode(predicate func(*ast.Node) bool) *ast.Node

	// GetGeneratedNameForNode returns a stable, unique name for node,
	// caching so repeated calls for the same node return the same name.
	GetGeneratedNameForNode(node *ast.Node) string

	// CreateTempVariable allocates a fresh identifier guaranteed not to
	// collide with any source name in the file.
	CreateTempVariable(flags TempFlags) *ast.Node

	// SetBindingIdentifierSubstitution/SetExpressionSubstitution register
	// a substitution hook, chaining onto whatever hook was previously
	// installed so transforms compose instead of clobbering each other.
	SetBindingIdentifierSubstitution(hook SubstitutionHook)
	SetExpressionSubstitution(hook SubstitutionHook)

	// PushNode/PopNode maintain the ancestor stack used by
	// GetParentNode/FindAncestorNode; the dispatcher calls these around
	// every recursive visit.
	PushNode(node *ast.Node)
	PopNode()

	Resolver() resolver.EmitResolver
	Options() config.Options
	Log() logger.Log
}
