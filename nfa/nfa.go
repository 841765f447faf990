// Package nfa builds Thompson-construction epsilon-NFAs from this module's
// AST (package ast) and tags each one with the identity of the schema
// pattern it was built from, so that a later union over many NFAs (see
// package dfa) can recover which pattern matched.
//
// State representation follows the tagged-struct idiom: one State type
// with a Kind discriminant and only the fields relevant to that Kind
// populated, states addressed by an arena index (StateID) rather than by
// pointer so that Kleene-loop back-edges are just integers and never
// require unsafe or owning-reference cycles.
package nfa

import "fmt"

// StateID indexes into an NFA's state arena.
type StateID uint32

// InvalidStateID marks an as-yet-unpatched forward reference.
const InvalidStateID StateID = 0xFFFFFFFF

// Kind discriminates the variant of a State.
type Kind int

const (
	// KindByteRange consumes one byte in [Lo, Hi] and moves to Next.
	KindByteRange Kind = iota
	// KindSplit is an unconditional epsilon fork to Left and Right, used
	// for alternation and Kleene loops.
	KindSplit
	// KindEpsilon is an unconditional epsilon move to Next, used to chain
	// concatenated fragments without merging their state lists.
	KindEpsilon
	// KindMatch has no outgoing transitions; reaching it means the
	// pattern this NFA was built from has matched.
	KindMatch
)

func (k Kind) String() string {
	switch k {
	case KindByteRange:
		return "ByteRange"
	case KindSplit:
		return "Split"
	case KindEpsilon:
		return "Epsilon"
	case KindMatch:
		return "Match"
	default:
		return "Unknown"
	}
}

// State is one node of the NFA graph.
type State struct {
	kind Kind

	// KindByteRange: a dense [lo,hi] range. A class with multiple
	// disjoint ranges is compiled as a Split tree over several
	// single-range ByteRange states (see compile.go), keeping State
	// itself free of a variable-length transitions list.
	lo, hi byte
	next   StateID

	// KindSplit
	left, right StateID
}

// Kind reports which variant of State this is.
func (s State) Kind() Kind { return s.kind }

// ByteRange returns the inclusive byte range and target. Valid only when
// Kind() == KindByteRange.
func (s State) ByteRange() (lo, hi byte, next StateID) { return s.lo, s.hi, s.next }

// Split returns the two epsilon targets. Valid only when Kind() == KindSplit.
func (s State) Split() (left, right StateID) { return s.left, s.right }

// Epsilon returns the single epsilon target. Valid only when Kind() == KindEpsilon.
func (s State) Epsilon() StateID { return s.next }

func (s State) String() string {
	switch s.kind {
	case KindByteRange:
		return fmt.Sprintf("ByteRange(%02x-%02x) -> %d", s.lo, s.hi, s.next)
	case KindSplit:
		return fmt.Sprintf("Split(%d, %d)", s.left, s.right)
	case KindEpsilon:
		return fmt.Sprintf("Epsilon -> %d", s.next)
	case KindMatch:
		return "Match"
	default:
		return "Unknown"
	}
}

// TagKind distinguishes a timestamp pattern from a variable pattern.
type TagKind int

const (
	// TagTimestamp marks an NFA built from a schema timestamp pattern.
	TagTimestamp TagKind = iota
	// TagVariable marks an NFA built from a schema variable pattern.
	TagVariable
)

func (k TagKind) String() string {
	if k == TagTimestamp {
		return "Timestamp"
	}
	return "Variable"
}

// Tag identifies the schema pattern an NFA was built from and its
// priority rank (lower Priority wins ties). ID is the pattern's index
// within its Kind's list (ts_id or var_id in the data model).
type Tag struct {
	Kind     TagKind
	ID       int
	Priority int
}

// NFA is an epsilon-NFA with exactly one start state and exactly one
// accept (Match) state, carrying the Tag of the pattern it was built
// from.
type NFA struct {
	states []State
	start  StateID
	accept StateID
	tag    Tag
}

// Start returns the single start state.
func (n *NFA) Start() StateID { return n.start }

// Accept returns the single accept (Match) state.
func (n *NFA) Accept() StateID { return n.accept }

// Tag returns the pattern identity this NFA was built from.
func (n *NFA) Tag() Tag { return n.tag }

// State returns the state at id.
func (n *NFA) State(id StateID) State { return n.states[id] }

// Len returns the number of states in the arena.
func (n *NFA) Len() int { return len(n.states) }
