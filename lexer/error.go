package lexer

import (
	"fmt"

	"github.com/coregx/logexa/source"
)

// ErrorKind classifies a lexer-level failure. The lexer itself raises no
// runtime errors for input content — any byte is either part of some
// segment or a delimiter — so the only kinds here concern construction
// and I/O propagation.
type ErrorKind int

const (
	// ErrSchema wraps a schema compile-time failure (bad pattern, etc.),
	// surfaced at NewLexer rather than at NextToken.
	ErrSchema ErrorKind = iota
	// ErrIO wraps an I/O failure from the underlying source.Reader,
	// surfaced at the NextToken call that observed it.
	ErrIO
)

func (k ErrorKind) String() string {
	if k == ErrSchema {
		return "schema error"
	}
	return "I/O error"
}

// LexError reports why NewLexer or NextToken failed.
type LexError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *LexError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lexer: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("lexer: %s: %s", e.Kind, e.Message)
}

func (e *LexError) Unwrap() error { return e.Cause }

// EndOfStream is returned by NextToken once the input and any in-flight
// static-text buffer have both been fully drained.
var EndOfStream = source.EndOfStream
