// Package es6to5 is the core of the transform: the recursive AST visitor,
// the construct-by-construct lowering algorithms, the lexical-environment
// bookkeeping, and the identifier-substitution machinery.
// Everything it depends on — the transformer façade, the resolver, the
// destructuring helper — is defined in a sibling package: the façade is
// the concrete *transformer.Environment the host passes in, the resolver
// is the resolver.EmitResolver interface that environment carries, and
// the destructuring helper is a package-level function.
package es6to5

import (
	"fmt"

	"github.com/romshark/es6down/internal/ast"
	"github.com/romshark/es6down/internal/compat"
	"github.com/romshark/es6down/internal/config"
	"github.com/romshark/es6down/internal/destructuring"
	"github.com/romshark/es6down/internal/helpers"
	"github.com/romshark/es6down/internal/logger"
	"github.com/romshark/es6down/internal/resolver"
	"github.com/romshark/es6down/internal/transformer"
)

// context carries the per-file transient state a lowering pass needs:
// the current source file, the options/target that gate which rules
// fire, and the environment façade every lowering rule threads through.
type context struct {
	env    *transformer.Environment
	res    resolver.EmitResolver
	opts   config.Options
	log    logger.Log
	source *logger.Source

	// capturedThisStack's top entry is non-nil once a captured-`this` alias
	// has been allocated for the innermost enclosing non-arrow function, so nested
	// arrows all resolve `this` to the same alias.
	capturedThisStack []*ast.Node

	// superStack holds, per enclosing class IIFE, the identifier that
	// stands for `_super`; nil entries mark a class with
	// no base.
	superStack []*ast.Node

	// staticStack tracks whether the innermost enclosing class member is
	// static, for super-property lowering's "drop .prototype" rule
	//.
	staticStack []bool

	// redeclNames caches the one generated replacement name per shadowed
	// binding used by the nested-redeclaration substitution hooks
	//; see substitution.go.
	redeclNames map[ast.Ref]string
}

func newContext(env *transformer.Environment, opts config.Options, source *logger.Source) *context {
	return &context{
		env:    env,
		res:    env.Resolver(),
		opts:   opts,
		log:    env.Log(),
		source: source,
	}
}

func (c *context) fatalUnhandledKind(node *ast.Node, where string) {
	loc := node.Loc
	text := fmt.Sprintf("es6to5: unhandled %s kind %d in %s", kindLabel(node.Kind), node.Kind, where)
	if c.source != nil {
		c.log.AddErrorWithID(logger.MsgID_JS_UnsupportedSyntaxKind, c.source, loc, text)
	}
}

func (c *context) assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("es6to5 internal assertion failed: "+format, args...) + "\n" + helpers.PrettyPrintedStack())
	}
}

func kindLabel(k ast.Kind) string {
	return fmt.Sprintf("Kind(%d)", k)
}

func (c *context) currentThis() *ast.Node {
	if len(c.capturedThisStack) == 0 {
		return nil
	}
	return c.capturedThisStack[len(c.capturedThisStack)-1]
}

func (c *context) currentSuper() (*ast.Node, bool) {
	if len(c.superStack) == 0 {
		return nil, false
	}
	return c.superStack[len(c.superStack)-1], true
}

func (c *context) currentIsStatic() bool {
	if len(c.staticStack) == 0 {
		return false
	}
	return c.staticStack[len(c.staticStack)-1]
}

// destructure delegates to the external flattening helper,
// supplying c.visitExpression as the active visitor so sub-expressions
// inside patterns are themselves lowered.
func (c *context) destructure(root *ast.Node, source *ast.Node, mode destructuring.Mode, emit func(*ast.Node)) {
	destructuring.Flatten(c.env, c.visitExpression, root, source, mode, emit)
}

func (c *context) featureTarget() compat.Target { return c.opts.Target }

// allocateThisAlias names the captured-`this` temp: the literal "_this",
// unless config.StrictOptions.UniqueCapturedThisNames asks for one drawn
// from the shared allocator instead (for files where
// more than one independent nested-arrow chain would otherwise collide on
// the fixed name).
func (c *context) allocateThisAlias() *ast.Node {
	if c.opts.Strict.UniqueCapturedThisNames {
		return c.env.CreateTempVariable(transformer.TempFlagsAuto)
	}
	return ast.Ident("_this")
}

// hoistedTempVariable allocates a temp meant to be assigned to bare inside
// a sequence expression rather than through its own "var" declaration
// (e.g. the split-object-literal or tagged-template `_a = ...` pattern),
// registering it for the enclosing bracket to flush as a "var" with no
// initializer.
func (c *context) hoistedTempVariable() *ast.Node {
	temp := c.env.CreateTempVariable(transformer.TempFlagsAuto)
	c.env.HoistVariableDeclaration(temp.Data.(*ast.Identifier).Text)
	return temp
}
