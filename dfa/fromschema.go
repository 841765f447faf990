package dfa

import (
	"github.com/coregx/logexa/ast"
	"github.com/coregx/logexa/nfa"
	"github.com/coregx/logexa/schema"
)

// CompileFromSchema compiles every pattern declared in s into a tagged
// NFA (timestamps first, then variables, each group in declaration
// order, so Tag.Priority reflects the schema's priority rule directly)
// and unifies them into a single DFA via CompileSchema. An empty schema
// (schema.Empty() true) still produces a valid DFA: one with a start
// state that is never accepting, so every segment classifies as
// StaticText.
func CompileFromSchema(s *schema.Schema) (*DFA, error) {
	var nfas []*nfa.NFA
	var asts []*ast.Node

	priority := 0
	for _, ts := range s.Timestamps() {
		n := nfa.Compile(ts.AST, nfa.Tag{Kind: nfa.TagTimestamp, ID: ts.ID, Priority: priority})
		nfas = append(nfas, n)
		asts = append(asts, ts.AST)
		priority++
	}
	for _, v := range s.Variables() {
		n := nfa.Compile(v.AST, nfa.Tag{Kind: nfa.TagVariable, ID: v.ID, Priority: priority})
		nfas = append(nfas, n)
		asts = append(asts, v.AST)
		priority++
	}

	return CompileSchema(nfas, asts)
}
