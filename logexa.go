// Package logexa is a library for high-throughput parsing of
// unstructured textual log streams into a typed token sequence and then
// into log-event records, driven by a user-supplied schema of
// delimiters, ordered timestamp patterns, and named variable patterns.
//
// The pipeline is schema → {parse, compile} per pattern → unified DFA →
// delimiter-aware lexer → token stream → event builder:
//
//	s, _  := schema.NewBuilder().AddDelimiters(" \t:,").
//	                 AddTimestamp(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`).
//	                 AddVariable("loglevel", `(INFO|DEBUG|WARN|ERROR)`).
//	                 Build()
//	lx, _ := logexa.NewLexer(s, source.NewBytesReader(data))
//	ev    := event.New(lx)
//	for {
//	    e, err := ev.NextEvent()
//	    if err == lexer.EndOfStream { break }
//	    ...
//	}
//
// This file wires the pieces together; the engine itself lives in
// package ast (C1), restx (C2), nfa (C3), dfa (C4/C5), lexer (C6), and
// event (C7).
package logexa

import (
	"github.com/coregx/logexa/dfa"
	"github.com/coregx/logexa/lexer"
	"github.com/coregx/logexa/schema"
	"github.com/coregx/logexa/source"
)

// CompileSchema compiles s's patterns into the unified DFA the lexer
// runs. The resulting *dfa.DFA is immutable and may be shared by
// read-only reference across any number of lexers built from the same
// schema, so callers parsing many streams against one schema should call
// this once and reuse the result with NewLexerFromDFA.
func CompileSchema(s *schema.Schema) (*dfa.DFA, error) {
	return dfa.CompileFromSchema(s)
}

// NewLexer compiles s and returns a Lexer draining producer. For
// parsing many streams against the same schema, prefer compiling once
// with CompileSchema and constructing lexers with NewLexerFromDFA
// instead, to avoid recompiling the DFA per stream.
func NewLexer(s *schema.Schema, producer source.Reader) (*lexer.Lexer, error) {
	compiled, err := CompileSchema(s)
	if err != nil {
		return nil, &lexer.LexError{Kind: lexer.ErrSchema, Message: "compiling schema", Cause: err}
	}
	return lexer.New(s, compiled, producer), nil
}

// NewLexerFromDFA builds a Lexer from a schema and a DFA already
// compiled from that same schema (see CompileSchema), letting many
// lexers share one compiled DFA by reference.
func NewLexerFromDFA(s *schema.Schema, compiled *dfa.DFA, producer source.Reader) *lexer.Lexer {
	return lexer.New(s, compiled, producer)
}
