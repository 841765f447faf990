// Package lexer implements the delimiter-aware streaming lexer: it pulls
// bytes from a source.Reader, segments them by the schema's delimiters,
// classifies each segment with the schema's compiled dfa.DFA, and emits
// Timestamp | Variable | StaticText | StaticTextWithNewline tokens with
// source-line annotations.
//
// The implementation is an explicit state machine driven one byte at a
// time and exposed as a pull iterator (NextToken) rather than a
// generator/coroutine.
package lexer

import "github.com/coregx/logexa/nfa"

// Kind identifies which variant of Token this is.
type Kind int

const (
	// KindTimestamp is a segment matching a declared timestamp pattern,
	// anchored at the start of a line (or the start of the stream).
	KindTimestamp Kind = iota
	// KindVariable is a segment fully matching a declared variable pattern.
	KindVariable
	// KindStaticText is everything that isn't a Timestamp or Variable:
	// unmatched segments plus the delimiters between them.
	KindStaticText
	// KindStaticTextWithNewline is a StaticText token whose trailing byte
	// is '\n', letting the event builder detect end-of-line cheaply.
	KindStaticTextWithNewline
)

func (k Kind) String() string {
	switch k {
	case KindTimestamp:
		return "Timestamp"
	case KindVariable:
		return "Variable"
	case KindStaticText:
		return "StaticText"
	case KindStaticTextWithNewline:
		return "StaticTextWithNewline"
	default:
		return "Unknown"
	}
}

// Token is one classified slice of the input. PatternID is the
// originating ts_id/var_id and is meaningful only for KindTimestamp and
// KindVariable. Bytes is the token's exact byte payload; Bytes is owned
// by the Token (a copy out of the lexer's internal buffer), so it remains
// valid after the buffer is later garbage-collected.
type Token struct {
	Kind      Kind
	PatternID int
	Bytes     []byte
	Line      int
}

// tagKindToTokenKind maps an nfa.Tag's Kind to the corresponding Token
// Kind, used once a DFA accept's winning tag has been confirmed eligible
// (see the timestamp anchor rule in lexer.go).
func tagKindToTokenKind(k nfa.TagKind) Kind {
	if k == nfa.TagTimestamp {
		return KindTimestamp
	}
	return KindVariable
}
