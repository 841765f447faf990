// Package litmatch provides an Aho-Corasick-backed fast path for schema
// patterns that are pure literal alternations (e.g.
// `loglevel=(INFO|DEBUG|WARN|ERROR)`), used once a schema's
// literal-alternation patterns contribute enough literals to be worth
// matching without the general DFA.
//
// The automaton here only answers "is this whole segment one of our
// known literals" (via IsMatch), not "which one" — the ahocorasick API
// surface exposes match boundaries, not pattern identity, so identity is
// resolved by a plain Go map from literal text to tag once membership is
// confirmed. This is strictly a performance optimization over the
// unified DFA: for any segment, Lookup must agree with what dfa.Simulate
// would have returned for a full-segment match.
package litmatch

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/logexa/nfa"
)

// Literal is one literal schema pattern eligible for the fast path.
type Literal struct {
	Bytes []byte
	Tag   nfa.Tag
}

// Matcher answers full-segment literal lookups.
type Matcher struct {
	automaton *ahocorasick.Automaton
	byText    map[string]nfa.Tag
}

// Build compiles an Aho-Corasick automaton over literals. Returns
// (nil, nil) if literals is empty: callers should treat a nil Matcher as
// "no fast path available" and fall through to the unified DFA.
func Build(literals []Literal) (*Matcher, error) {
	if len(literals) == 0 {
		return nil, nil
	}
	b := ahocorasick.NewBuilder()
	byText := make(map[string]nfa.Tag, len(literals))
	for _, l := range literals {
		b.AddPattern(l.Bytes)
		// literals is in priority order; keep the first (highest-priority)
		// writer so a tie between two patterns sharing literal text
		// resolves the same way the unified DFA's accept map would.
		if _, exists := byText[string(l.Bytes)]; !exists {
			byText[string(l.Bytes)] = l.Tag
		}
	}
	auto, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &Matcher{automaton: auto, byText: byText}, nil
}

// Lookup reports the tag of the literal that equals segment exactly, if
// any. A partial or absent match returns ok == false, signaling the
// caller to fall back to the full unified DFA scan.
func (m *Matcher) Lookup(segment []byte) (tag nfa.Tag, ok bool) {
	if m == nil || !m.automaton.IsMatch(segment) {
		return nfa.Tag{}, false
	}
	tag, ok = m.byText[string(segment)]
	return tag, ok
}
