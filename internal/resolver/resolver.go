// Package resolver defines the semantic-query interface the core consumes
// from a host's name-binding pass, plus a minimal reference implementation
// backing it for tests. The real resolver — binding resolution,
// type-checking — is an out-of-scope external collaborator; this
// package only fixes the shape of the three queries the core actually
// issues.
package resolver

import "github.com/romshark/es6down/internal/ast"

// NodeCheckFlags is the pair of resolver-computed bits the core consults.
type NodeCheckFlags uint8

const (
	NodeCheckFlagsNone NodeCheckFlags = 0

	// BlockScopedBindingInLoop: a let/const declared inside a loop body
	// whose value must not leak across iterations once lowered to var
	//.
	BlockScopedBindingInLoop NodeCheckFlags = 1 << iota

	// SuperInstance: a bare `super` identifier reference is an
	// instance-member access and should resolve to `_super.prototype`
	// rather than `_super`.
	SuperInstance
)

func (f NodeCheckFlags) Has(flag NodeCheckFlags) bool { return f&flag != 0 }

// EmitResolver is the façade's semantic-query surface.
type EmitResolver interface {
	GetNodeCheckFlags(node *ast.Node) NodeCheckFlags
	GetReferencedNestedRedeclaration(node *ast.Node) (ast.Ref, bool)
	IsNestedRedeclaration(decl *ast.Node) bool
}

// MapResolver is a reference EmitResolver backed by plain maps, keyed by
// ast.NodeID, so es6to5's tests can drive every branch of nested-
// redeclaration renaming and loop-binding rules without a real
// type-checker. Grounded on the map-of-Ref-to-fact bookkeeping style
// of github.com/evanw/esbuild/internal/renamer (kept/adapted at
// internal/ast/reserved_names.go) rather than on any single resolver file,
// since esbuild's own "resolver" package is a module-path resolver, an
// unrelated concern.
type MapResolver struct {
	CheckFlags           map[ast.NodeID]NodeCheckFlags
	NestedRedeclarations  map[ast.NodeID]ast.Ref
	IsNestedRedeclDecl    map[ast.NodeID]bool
}

func NewMapResolver() *MapResolver {
	return &MapResolver{
		CheckFlags:          make(map[ast.NodeID]NodeCheckFlags),
		NestedRedeclarations: make(map[ast.NodeID]ast.Ref),
		IsNestedRedeclDecl:   make(map[ast.NodeID]bool),
	}
}

func (r *MapResolver) GetNodeCheckFlags(node *ast.Node) NodeCheckFlags {
	if node == nil {
		return NodeCheckFlagsNone
	}
	return r.CheckFlags[node.ID]
}

func (r *MapResolver) GetReferencedNestedRedeclaration(node *ast.Node) (ast.Ref, bool) {
	if node == nil {
		return ast.InvalidRef, false
	}
	ref, ok := r.NestedRedeclarations[node.ID]
	return ref, ok
}

func (r *MapResolver) IsNestedRedeclaration(decl *ast.Node) bool {
	if decl == nil {
		return false
	}
	return r.IsNestedRedeclDecl[decl.ID]
}
