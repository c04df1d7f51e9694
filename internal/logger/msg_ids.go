package logger

// A log message can be given a message ID that can be used to set the log
// level for that message; both diagnostics below, the error as well as the
// warning, are logged with their ID. Some internal log messages do not get a message ID because they
// are part of verbose and/or internal debugging output. These messages use
// "MsgID_None" instead.
//
// Trimmed from esbuild's bundler-wide taxonomy (JS/CSS/bundler/source-map/
// package.json/tsconfig.json categories) down to the two diagnostics this
// syntax-lowering core actually emits: an unsupported construct the
// dispatcher can't rewrite (an error), and a warning when a nested
// redeclaration gets renamed.
type MsgID = uint8

const (
	MsgID_None MsgID = iota

	MsgID_JS_UnsupportedSyntaxKind
	MsgID_JS_NestedRedeclarationRenamed

	MsgID_END // keep last
)

// MsgIDToString is the inverse of StringToMsgIDs: the flag-facing name for
// an ID, or "" for an ID that isn't user-addressable (MsgID_None, or
// anything out of range).
func MsgIDToString(id MsgID) string {
	switch id {
	case MsgID_JS_UnsupportedSyntaxKind:
		return "unsupported-syntax-kind"
	case MsgID_JS_NestedRedeclarationRenamed:
		return "nested-redeclaration-renamed"
	default:
		return ""
	}
}

// StringToMsgIDs records level as an override for every MsgID whose string
// form matches str, so a host's "--log-override:name=level"-style flag can
// re-level one diagnostic category without touching the rest.
func StringToMsgIDs(str string, level LogLevel, overrides map[MsgID]LogLevel) {
	for id := MsgID(MsgID_None); id < MsgID_END; id++ {
		if MsgIDToString(id) == str {
			overrides[id] = level
		}
	}
}
