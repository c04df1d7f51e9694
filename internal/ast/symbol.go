package ast

// Ref is a pointer into a file's symbol table, grounded on
// github.com/evanw/esbuild/internal/js_ast.go's two-level Ref (outer index = file,
// inner index = symbol within that file) — this core only ever transforms
// one file at a time, so OuterIndex is always 0 here, but the
// shape is kept so a host embedding multiple files doesn't need a second
// symbol-table design.
type Ref struct {
	OuterIndex uint32
	InnerIndex uint32
}

// InvalidRef is the zero value; synthesized identifiers that were never
// registered in a symbol table (e.g. a bare "_i" allocated mid-lowering
// and never referenced again) compare equal to it.
var InvalidRef = Ref{}

func (r Ref) IsValid() bool { return r != InvalidRef }

type SymbolKind uint8

const (
	SymbolOther SymbolKind = iota
	SymbolHoisted
	SymbolHoistedFunction
	SymbolBlockScoped // let/const
	SymbolClass
	SymbolLabel
	SymbolUnbound // a reference the resolver could not bind (e.g. a global)
)

// Symbol is deliberately smaller than esbuild's ast.Symbol: no minification slot,
// no namespace-alias, no chunk index, no import-item status — none of
// those concerns exist in a file-local syntax lowering core.
type Symbol struct {
	OriginalName     string
	Kind             SymbolKind
	MustNotBeRenamed bool

	// IsNestedRedeclaration marks a let/const that the resolver reports as
	// shadowing another let/const from an enclosing block that is being
	// hoisted to var. Renaming
	// such a binding, and every reference to it, is driven off this flag
	// via internal/resolver.EmitResolver.IsNestedRedeclaration.
	IsNestedRedeclaration bool
}

type SymbolMap struct {
	Symbols []Symbol
}

func NewSymbolMap() SymbolMap {
	return SymbolMap{Symbols: make([]Symbol, 0, 64)}
}

func (sm *SymbolMap) Get(ref Ref) *Symbol {
	return &sm.Symbols[ref.InnerIndex]
}

func (sm *SymbolMap) New(symbol Symbol) Ref {
	ref := Ref{InnerIndex: uint32(len(sm.Symbols))}
	sm.Symbols = append(sm.Symbols, symbol)
	return ref
}

type ScopeKind uint8

const (
	ScopeBlock ScopeKind = iota
	ScopeFunctionArgs
	ScopeFunctionBody
	ScopeClassBody
)

// StopsHoisting mirrors github.com/evanw/esbuild/internal/js_ast.go's ScopeKind: var
// declarations hoist up through block scopes but stop at a function
// boundary.
func (k ScopeKind) StopsHoisting() bool {
	return k == ScopeFunctionArgs || k == ScopeFunctionBody
}

type Scope struct {
	Kind     ScopeKind
	Parent   *Scope
	Children []*Scope
	Members  map[string]Ref
}

func NewScope(kind ScopeKind, parent *Scope) *Scope {
	s := &Scope{Kind: kind, Parent: parent, Members: make(map[string]Ref)}
	if parent != nil {
		parent.Children = append(parent.Children, s)
	}
	return s
}
