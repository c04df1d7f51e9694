// Package compat holds the target-language-level model: a target below
// ES6 enables the transform; an ES6+ target disables it entirely.
//
// Grounded on the *existence* of github.com/evanw/esbuild/internal/compat's
// JSFeature-bitset-gated table (the concept
// js_parser.(*parser).markSyntaxFeature switches over), not on that
// package's actual content — esbuild's table spans a multi-engine
// (Chrome/Firefox/Safari/IE/Node) compatibility matrix that has no
// referent here, where the only target axis is ES3 vs ES5 vs ES6.
package compat

// Target is the language level code is being lowered to.
type Target int8

const (
	// Arranged so a later target compares greater than an earlier one.
	ES3 Target = iota
	ES5
	ES6
)

func (t Target) String() string {
	switch t {
	case ES3:
		return "ES3"
	case ES5:
		return "ES5"
	case ES6:
		return "ES6"
	default:
		return "ESNext"
	}
}

// Feature is one syntax construct the core knows how to lower. Neither the
// dispatcher nor the lowering rules consult it: they gate on
// config.Options.TransformEnabled and the precomputed transformFlags
// bitset. Target.Has answers, per feature, whether a target needs it
// lowered.
type Feature uint32

const (
	DefaultArgument Feature = 1 << iota
	RestArgument
	ArraySpread
	ForOf
	ObjectAccessors
	ObjectExtensions // computed property names, shorthand properties
	Destructuring
	Class
	TemplateLiteral
	Arrow
	BlockScoping // let/const
)

// Has reports whether target is below the language level that natively
// supports feature, i.e. whether it must be lowered.
func (t Target) Has(feature Feature) bool {
	if t >= ES6 {
		return false
	}
	return true
}
