// Package config holds the transform's compiler-option surface, grounded
// on github.com/evanw/esbuild/internal/config.go's LanguageTarget enum and options
// struct shape (kept as the direct model; that file's ~240-line
// internal/config/globals.go table of browser/Node global names has no
// analogue in a syntax-lowering-only core and isn't reproduced here — see
// DESIGN.md).
package config

import "github.com/romshark/es6down/internal/compat"

type Options struct {
	// Target is the option that decides whether the transform runs at
	// all: anything at or above the source's own level is a no-op.
	Target compat.Target

	// Strict mirrors how esbuild's own config.StrictOptions threads
	// loose/strict choices through lowering without a full feature-flag
	// system: here it only controls whether a captured-`this` alias uses
	// the fixed name "_this" (loose) or is drawn from the shared temp-name
	// allocator like any other temp (strict).
	Strict StrictOptions
}

type StrictOptions struct {
	// UniqueCapturedThisNames: when true, a captured `this` alias is named
	// through the shared name allocator like any other temp instead of
	// always being exactly "_this". Off by default: the common case emits
	// a plain `var _this = this;` once per function.
	UniqueCapturedThisNames bool
}

func (o Options) TransformEnabled() bool {
	return o.Target < compat.ES6
}
