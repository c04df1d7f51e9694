// Package ast defines the fixed, tagged-variant AST this transform operates
// over. It is deliberately small: only the syntactic
// kinds the ES6-to-ES5 lowering core needs to recognize, not a full
// JS/TS/JSX grammar — lexing, parsing, and type-checking are out of scope
// and supply this tree ready-made.
package ast

import "github.com/romshark/es6down/internal/helpers"

// Kind tags every node with its syntactic form. Unlike an open visitor
// class hierarchy, this is a closed enum: the dispatcher's switch over Kind
// has one default branch for "I don't know this kind", which is the fatal
// diagnostic path context.fatalUnhandledKind reports.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Statements
	KindSourceFile
	KindBlock
	KindExpressionStatement
	KindEmptyStatement
	KindReturnStatement
	KindIfStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindVariableStatement
	KindVariableDeclarationList
	KindVariableDeclaration
	KindFunctionDeclaration
	KindClassDeclaration
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindLabeledStatement
	KindBreakStatement
	KindContinueStatement

	// Expressions
	KindIdentifier
	KindThisExpression
	KindSuperExpression
	KindNumericLiteral
	KindStringLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindArrayLiteralExpression
	KindObjectLiteralExpression
	KindPropertyAssignment
	KindShorthandPropertyAssignment
	KindAccessorProperty // get/set inside an object literal or class
	KindMethodDeclaration
	KindComputedPropertyName
	KindSpreadElement
	KindTemplateExpression // untagged `...${}...`
	KindTaggedTemplateExpression
	KindTemplateSpan
	KindFunctionExpression
	KindArrowFunction
	KindClassExpression
	KindParameter
	KindBindingPattern // array or object destructuring pattern
	KindBindingElement
	KindCallExpression
	KindNewExpression
	KindPropertyAccessExpression
	KindElementAccessExpression
	KindBinaryExpression
	KindConditionalExpression
	KindParenthesizedExpression
	KindAssignmentExpression
	KindSequenceExpression
	KindPrefixUnaryExpression
	KindPostfixUnaryExpression
)

// Flags are static, source-derived modifiers on a node.
type Flags uint16

const (
	FlagNone Flags = 0

	FlagStatic Flags = 1 << (iota - 1)
	FlagLet
	FlagConst
	FlagMultiLine
	FlagGenerated
	FlagSingleLine
	FlagRest              // this parameter/binding element carries "..."
	FlagComputed          // this property name is "[expr]"
	FlagShorthand         // {x} rather than {x: x}
	FlagGetAccessor
	FlagSetAccessor
	FlagBlockScopedInLoop // resolver-reported: needs a fresh value per iteration
)

func (f Flags) Has(flag Flags) bool { return f&flag != 0 }

// TransformFlags is a two-bit-per-domain bitset:
// a coarse "ContainsX" bit (set somewhere in the subtree) and a precise
// "X" bit (set at this node). Bits are monotone up the tree: a node's
// ContainsX bits cover its whole subtree.
type TransformFlags uint32

const (
	TransformFlagsNone TransformFlags = 0

	ES6 TransformFlags = 1 << (iota - 1)
	ContainsES6

	ContainsDefaultValueAssignments
	ContainsRestParameter
	ContainsSpreadElementExpression
	ContainsCapturedLexicalThis
	ContainsComputedPropertyName
	ContainsBlockScopedBinding
	ContainsLexicalThis
)

func (f TransformFlags) Has(flag TransformFlags) bool { return f&flag != 0 }

// NewNodeIDSet returns a helpers.BitSet with room for capacity node IDs.
// TransformFlags itself is a plain uint32 and does not use BitSet.
func NewNodeIDSet(capacity uint) helpers.BitSet {
	return helpers.NewBitSet(capacity)
}
