package dfa

import (
	"github.com/coregx/logexa/ast"
	"github.com/coregx/logexa/litmatch"
	"github.com/coregx/logexa/nfa"
)

// literalThreshold is the minimum number of literals, summed over every
// pure-literal-alternation pattern in a schema, before the
// ahocorasick-backed fast path is worth building; schemas are typically
// small, and a literal-alternation variable like a log level (four
// literals on its own) is common enough to be worth accelerating.
const literalThreshold = 4

// CompileSchema builds the unified DFA over nfas (see Compile) and, if
// the corresponding asts that are pure literal alternations contribute at
// least literalThreshold literals in total, additionally builds a
// litmatch fast path consulted by FullMatch. Each literal is stored with
// the tag the unified DFA itself reports for it, so a higher-priority
// pattern that also matches the literal keeps winning. asts[i] must be
// the AST that nfas[i] was compiled from.
func CompileSchema(nfas []*nfa.NFA, asts []*ast.Node) (*DFA, error) {
	d, err := Compile(nfas)
	if err != nil {
		return nil, err
	}
	d = Minimize(d)
	var candidates []litmatch.Literal
	for i, node := range asts {
		lits, ok := litmatch.ExtractAlternationLiterals(node)
		if !ok {
			continue
		}
		for _, l := range lits {
			tag, ok := d.FullMatch(l)
			if !ok {
				tag = nfas[i].Tag()
			}
			candidates = append(candidates, litmatch.Literal{Bytes: l, Tag: tag})
		}
	}
	if len(candidates) >= literalThreshold {
		m, err := litmatch.Build(candidates)
		if err != nil {
			return nil, err
		}
		d.literals = m
	}
	return d, nil
}

// FullMatch classifies a whole segment as either Timestamp or Variable,
// i.e. it succeeds only if the DFA's longest match spans the entire
// input. It is the operation the lexer's segment classification (spec.md
// §4.5) is built on. If a litmatch fast path was attached by
// CompileSchema, it is consulted first; the result is defined to always
// agree with the plain DFA scan, so this is purely a performance
// optimization.
func (d *DFA) FullMatch(input []byte) (nfa.Tag, bool) {
	if d.literals != nil {
		if tag, ok := d.literals.Lookup(input); ok {
			return tag, true
		}
	}
	m, ok := d.Simulate(d.Start(), input)
	if !ok || m.Len != len(input) {
		return nfa.Tag{}, false
	}
	return m.Tag, true
}
