package nfa

// Builder assembles an NFA's state arena incrementally: Add* methods
// append a state and return its StateID, and Patch resolves forward
// references left dangling by constructs (like Kleene loops) whose
// back-edge target isn't known until the loop body has been built.
type Builder struct {
	states []State
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddByteRange appends a ByteRange state matching [lo, hi], with its
// target left unpatched (InvalidStateID) until Patch is called.
func (b *Builder) AddByteRange(lo, hi byte) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{kind: KindByteRange, lo: lo, hi: hi, next: InvalidStateID})
	return id
}

// AddSplit appends a Split state with both targets left unpatched.
func (b *Builder) AddSplit() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{kind: KindSplit, left: InvalidStateID, right: InvalidStateID})
	return id
}

// AddEpsilon appends an Epsilon state with its target left unpatched.
func (b *Builder) AddEpsilon() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{kind: KindEpsilon, next: InvalidStateID})
	return id
}

// AddMatch appends a Match (accept) state.
func (b *Builder) AddMatch() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{kind: KindMatch})
	return id
}

// Patch sets the Next/Epsilon target of a ByteRange or Epsilon state.
func (b *Builder) Patch(id, target StateID) {
	s := &b.states[id]
	switch s.kind {
	case KindByteRange, KindEpsilon:
		s.next = target
	default:
		panic("nfa: Patch called on a state with no single target")
	}
}

// PatchSplit sets both targets of a Split state.
func (b *Builder) PatchSplit(id, left, right StateID) {
	s := &b.states[id]
	if s.kind != KindSplit {
		panic("nfa: PatchSplit called on a non-Split state")
	}
	s.left = left
	s.right = right
}

// Build finalizes the arena into an NFA with the given start, accept, and
// tag. It panics if any state still has an unpatched (InvalidStateID)
// target, which would indicate a bug in the compiler rather than
// malformed user input (user input is rejected earlier, in restx).
func (b *Builder) Build(start, accept StateID, tag Tag) *NFA {
	for _, s := range b.states {
		switch s.kind {
		case KindByteRange, KindEpsilon:
			if s.next == InvalidStateID {
				panic("nfa: unpatched state in Build")
			}
		case KindSplit:
			if s.left == InvalidStateID || s.right == InvalidStateID {
				panic("nfa: unpatched split in Build")
			}
		}
	}
	return &NFA{states: b.states, start: start, accept: accept, tag: tag}
}
