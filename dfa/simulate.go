package dfa

import "github.com/coregx/logexa/nfa"

// Step advances from state on byte b, returning the next state or
// DeadStateID if there is no such transition.
func (d *DFA) Step(state StateID, b byte) StateID {
	return d.State(state).Step(b)
}

// Match reports the result of a completed Simulate run: the byte length
// of the longest accepted prefix and the tag of the pattern that won it.
type Match struct {
	Len int
	Tag nfa.Tag
}

// Simulate runs the DFA forward over input starting from state, tracking
// the most recently seen accepting position. It stops at the first dead
// transition or at the end of input, and reports the longest accepted
// prefix seen along the way (not necessarily the whole input). ok is
// false if no prefix of input was ever accepted.
//
// On a tie between two patterns accepting at the same position, the
// winning tag is acceptMap[0] of that state, which Compile has already
// sorted ascending by priority.
func (d *DFA) Simulate(state StateID, input []byte) (m Match, ok bool) {
	cur := state
	var last Match
	found := false
	if st := d.State(cur); st.IsAccepting() {
		last = Match{Len: 0, Tag: st.AcceptMap()[0]}
		found = true
	}
	for i, b := range input {
		cur = d.Step(cur, b)
		if cur == DeadStateID {
			break
		}
		if st := d.State(cur); st.IsAccepting() {
			last = Match{Len: i + 1, Tag: st.AcceptMap()[0]}
			found = true
		}
	}
	return last, found
}
