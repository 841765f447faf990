// Package dfa builds a single, unified DFA from the union of all of a
// schema's tagged NFAs (package nfa) via subset construction, and runs it
// forward over a byte segment with longest-match, priority-tie-break
// semantics.
//
// Unlike coregx's dfa/lazy, which determinizes on demand as a search
// progresses, this package determinizes eagerly and completely at
// Compile time: the resulting DFA is a single immutable value meant to be
// compiled once from a schema and shared by read-only reference across
// every lexer built on top of it, so there is no benefit to coregx's
// lazy-cache-with-eviction design here and real benefit to avoiding its
// bookkeeping.
package dfa

import (
	"github.com/coregx/logexa/litmatch"
	"github.com/coregx/logexa/nfa"
)

// StateID indexes into a DFA's state table.
type StateID uint32

// DeadStateID is the distinguished ⊥ state: no outgoing transitions, no
// accepts. Always index 0.
const DeadStateID StateID = 0

// State is one DFA state: a dense transition row over the ASCII byte
// range plus the priority-ordered list of pattern tags accepted here.
type State struct {
	transitions [128]StateID
	acceptMap   []nfa.Tag
}

// Step returns the state reached from this state on byte b, or
// DeadStateID if b >= 128 or there is no such transition.
func (s *State) Step(b byte) StateID {
	if b >= 128 {
		return DeadStateID
	}
	return s.transitions[b]
}

// IsAccepting reports whether this state has at least one accepted tag.
func (s *State) IsAccepting() bool {
	return len(s.acceptMap) > 0
}

// AcceptMap returns this state's accepted tags in priority order
// (ascending Priority; index 0 is the winning tag on a tie).
func (s *State) AcceptMap() []nfa.Tag {
	return s.acceptMap
}

// DFA is the unified, compiled automaton. It is immutable after Compile
// returns and safe for concurrent read-only use by multiple lexers.
type DFA struct {
	states   []State
	start    StateID
	literals *litmatch.Matcher
}

// Start returns the DFA's start state.
func (d *DFA) Start() StateID { return d.start }

// State returns the state at id.
func (d *DFA) State(id StateID) *State { return &d.states[id] }

// Len returns the number of states in the table.
func (d *DFA) Len() int { return len(d.states) }
