package transformer

import (
	"fmt"

	"github.com/romshark/es6down/internal/ast"
	"github.com/romshark/es6down/internal/config"
	"github.com/romshark/es6down/internal/logger"
	"github.com/romshark/es6down/internal/resolver"
)

// lexicalEnvironment is one entry on the bracket stack: each
// StartLexicalEnvironment/EndLexicalEnvironment pair nests correctly, a
// child bracket closing before its parent does.
type lexicalEnvironment struct {
	hoisted []string
}

// Environment is the reference Transformer implementation. It is
// intentionally the simplest thing satisfying the interface — a map-backed
// symbol table and a slice-backed scope/bracket stack — grounded on
// captureThis/captureArguments (the ref-capturing helpers in
// github.com/evanw/esbuild/internal/js_parser/js_parser_lower.go) for name capture,
// and on internal/ast.ComputeReservedNames (itself adapted from
// github.com/evanw/esbuild/internal/renamer) for the uniqueness guarantee.
type Environment struct {
	resolver resolver.EmitResolver
	options  config.Options
	log      logger.Log

	reservedNames map[string]bool
	tempCounter   int
	iCounter      int

	brackets []lexicalEnvironment
	ancestry []*ast.Node

	generatedNames map[ast.NodeID]string

	bindingSubstitution    SubstitutionHook
	expressionSubstitution SubstitutionHook
}

func NewEnvironment(res resolver.EmitResolver, opts config.Options, log logger.Log, reservedNames map[string]bool) *Environment {
	if reservedNames == nil {
		reservedNames = make(map[string]bool)
	}
	return &Environment{
		resolver:       res,
		options:        opts,
		log:            log,
		reservedNames:  reservedNames,
		generatedNames: make(map[ast.NodeID]string),
	}
}

func (e *Environment) Resolver() resolver.EmitResolver { return e.resolver }
func (e *Environment) Options() config.Options         { return e.options }
func (e *Environment) Log() logger.Log                 { return e.log }

func (e *Environment) StartLexicalEnvironment() {
	e.brackets = append(e.brackets, lexicalEnvironment{})
}

func (e *Environment) HoistVariableDeclaration(name string) {
	if len(e.brackets) == 0 {
		panic("es6down: HoistVariableDeclaration called with no open lexical environment")
	}
	top := &e.brackets[len(e.brackets)-1]
	top.hoisted = append(top.hoisted, name)
}

// EndLexicalEnvironment closes the innermost bracket and, if anything was
// hoisted into it, prepends a single "var" statement declaring every
// hoisted name with no initializer, flushing any hoisted declarations
// registered during the body as a `var` at the top of the block.
func (e *Environment) EndLexicalEnvironment(statements []*ast.Node) []*ast.Node {
	n := len(e.brackets)
	if n == 0 {
		panic("es6down: EndLexicalEnvironment called with no open lexical environment")
	}
	top := e.brackets[n-1]
	e.brackets = e.brackets[:n-1]

	if len(top.hoisted) == 0 {
		return statements
	}

	decls := make([]*ast.Node, len(top.hoisted))
	for i, name := range top.hoisted {
		decls[i] = ast.VarDecl(ast.Ident(name), nil)
	}
	hoistedStmt := ast.VarStmt(ast.FlagNone, decls...)
	return append([]*ast.Node{hoistedStmt}, statements...)
}

func (e *Environment) PushNode(node *ast.Node) {
	e.ancestry = append(e.ancestry, node)
}

func (e *Environment) PopNode() {
	if len(e.ancestry) == 0 {
		panic("es6down: PopNode called with an empty ancestor stack")
	}
	e.ancestry = e.ancestry[:len(e.ancestry)-1]
}

func (e *Environment) GetParentNode() *ast.Node {
	if len(e.ancestry) < 2 {
		return nil
	}
	return e.ancestry[len(e.ancestry)-2]
}

func (e *Environment) FindAncestorNode(predicate func(*ast.Node) bool) *ast.Node {
	for i := len(e.ancestry) - 2; i >= 0; i-- {
		if predicate(e.ancestry[i]) {
			return e.ancestry[i]
		}
	}
	return nil
}

func (e *Environment) GetGeneratedNameForNode(node *ast.Node) string {
	if node.ID != 0 {
		if name, ok := e.generatedNames[node.ID]; ok {
			return name
		}
	}
	hint := ""
	if ident, ok := node.Data.(*ast.Identifier); ok {
		hint = ident.Text
	}
	name := e.allocateName(hint)
	if node.ID != 0 {
		e.generatedNames[node.ID] = name
	}
	return name
}

// CreateTempVariable allocates a fresh, collision-free identifier. The
// TempFlagsI hint names loop counters: the first gets "_i", later ones
// "_i2", "_i3", ... (a name is never handed out twice); everything else gets a
// numbered "_a", "_b", ... "_z", "_a2", ... sequence.
func (e *Environment) CreateTempVariable(flags TempFlags) *ast.Node {
	if flags == TempFlagsI {
		name := e.uniqueName("_i", &e.iCounter, true)
		return ast.Ident(name)
	}
	name := e.allocateName("")
	return ast.Ident(name)
}

func (e *Environment) allocateName(hint string) string {
	return e.uniqueName("_a", &e.tempCounter, false)
}

// uniqueName walks the 26-letter alphabet (then numeric suffixes) starting
// from the shared counter, skipping any candidate already reserved, so a
// generated name never collides with a source identifier or another
// generated one.
func (e *Environment) uniqueName(base string, counter *int, suffixIsIndex bool) string {
	for {
		candidate := e.nameForCounter(base, *counter)
		*counter++
		if !e.reservedNames[candidate] {
			e.reservedNames[candidate] = true
			return candidate
		}
	}
}

func (e *Environment) nameForCounter(base string, n int) string {
	if base == "_i" {
		if n == 0 {
			return "_i"
		}
		return fmt.Sprintf("_i%d", n+1)
	}
	letter := rune('a' + n%26)
	round := n / 26
	if round == 0 {
		return "_" + string(letter)
	}
	return fmt.Sprintf("_%c%d", letter, round+1)
}

func (e *Environment) SetBindingIdentifierSubstitution(hook SubstitutionHook) {
	e.bindingSubstitution = chain(e.bindingSubstitution, hook)
}

func (e *Environment) SetExpressionSubstitution(hook SubstitutionHook) {
	e.expressionSubstitution = chain(e.expressionSubstitution, hook)
}

// chain composes a newly installed hook in front of whatever predecessor
// was already registered, so "transforms compose": the new
// hook gets first refusal, and falls through to the old one when it
// declines by returning nil.
func chain(predecessor SubstitutionHook, next SubstitutionHook) SubstitutionHook {
	if predecessor == nil {
		return next
	}
	return func(node *ast.Node) *ast.Node {
		if replaced := next(node); replaced != nil {
			return replaced
		}
		return predecessor(node)
	}
}

func (e *Environment) SubstituteBindingIdentifier(node *ast.Node) *ast.Node {
	if e.bindingSubstitution == nil {
		return node
	}
	if replaced := e.bindingSubstitution(node); replaced != nil {
		return replaced
	}
	return node
}

func (e *Environment) SubstituteExpression(node *ast.Node) *ast.Node {
	if e.expressionSubstitution == nil {
		return node
	}
	if replaced := e.expressionSubstitution(node); replaced != nil {
		return replaced
	}
	return node
}
