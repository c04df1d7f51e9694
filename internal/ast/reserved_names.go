package ast

// reservedWords is the fixed keyword/strict-mode-reserved-word list a
// generated name must never collide with. Adapted from
// github.com/evanw/esbuild/internal/renamer.ComputeReservedNames, which built this set
// from a shared lexer.Keywords/StrictModeReservedWords table; this core has
// no lexer in scope, so the words are inlined directly.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true,
	"implements": true, "interface": true, "let": true, "package": true,
	"private": true, "protected": true, "public": true, "static": true,
	"yield": true,
	"arguments": true, "eval": true,
}

// ComputeReservedNames walks every module-level scope and collects every
// name that a freshly generated identifier must avoid: the fixed keyword
// set plus every unbound or must-not-be-renamed symbol actually in source,
// so every generated identifier stays distinct from every source
// identifier in the same scope chain. Adapted
// from github.com/evanw/esbuild/internal/renamer.ComputeReservedNames, trimmed of the
// minification-only "Generated" ref bookkeeping that table tracked.
func ComputeReservedNames(moduleScopes []*Scope, symbols SymbolMap) map[string]bool {
	names := make(map[string]bool, len(reservedWords))
	for k := range reservedWords {
		names[k] = true
	}

	var walk func(s *Scope)
	walk = func(s *Scope) {
		for _, ref := range s.Members {
			symbol := symbols.Get(ref)
			if symbol.Kind == SymbolUnbound || symbol.MustNotBeRenamed {
				names[symbol.OriginalName] = true
			}
		}
		for _, child := range s.Children {
			walk(child)
		}
	}
	for _, scope := range moduleScopes {
		walk(scope)
	}

	return names
}
