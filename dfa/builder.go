package dfa

import (
	"hash/fnv"
	"sort"

	"github.com/coregx/logexa/internal/conv"
	"github.com/coregx/logexa/internal/sparse"
	"github.com/coregx/logexa/nfa"
)

// Compile builds the unified DFA over nfas via subset construction. nfas
// must already be in priority order (schema declaration order: all
// timestamp NFAs first, then all variable NFAs), which is also the order
// their Tag.Priority values were assigned.
//
// The worklist starts from the epsilon-closure of each nfa's start state
// rather than from a synthetic union start, which is equivalent (per
// spec.md §4.3) and avoids ever materializing a state that doesn't belong
// to some real NFA.
func Compile(nfas []*nfa.NFA) (*DFA, error) {
	c := &compiler{
		nfas:    nfas,
		offsets: make([]int, len(nfas)),
		byKey:   make(map[stateKey]StateID),
	}
	total := 0
	for i, n := range nfas {
		c.offsets[i] = total
		total += n.Len()
	}
	c.universe = total

	// Register the dead state first so DeadStateID == 0.
	c.states = append(c.states, State{})

	var startSet []uint32
	for _, n := range nfas {
		startSet = append(startSet, c.global(indexOf(nfas, n), n.Start()))
	}
	startClosure := c.epsilonClosure(startSet)
	start := c.register(startClosure)
	c.start = start

	for len(c.worklist) > 0 {
		id := c.worklist[0]
		c.worklist = c.worklist[1:]
		subset := c.subsets[id]
		for b := 0; b < 128; b++ {
			moved := c.move(subset, byte(b))
			if len(moved) == 0 {
				c.states[id].transitions[b] = DeadStateID
				continue
			}
			target := c.register(moved)
			c.states[id].transitions[b] = target
		}
	}

	return &DFA{states: c.states, start: c.start}, nil
}

func indexOf(nfas []*nfa.NFA, n *nfa.NFA) int {
	for i, other := range nfas {
		if other == n {
			return i
		}
	}
	panic("dfa: nfa not found in its own list")
}

// stateKey canonically identifies a (sorted) set of global state indices:
// sort, then FNV-1a hash the sorted sequence. Two distinct subsets
// hashing to the same key would be merged incorrectly; in practice the
// sorted-sequence hash is specific enough for schema-sized automata.
type stateKey uint64

func computeStateKey(sorted []uint32) stateKey {
	h := fnv.New64a()
	var buf [4]byte
	for _, v := range sorted {
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 24)
		_, _ = h.Write(buf[:])
	}
	return stateKey(h.Sum64())
}

type compiler struct {
	nfas     []*nfa.NFA
	offsets  []int
	universe int

	states   []State
	subsets  map[StateID][]uint32
	byKey    map[stateKey]StateID
	worklist []StateID
	start    StateID
}

// global maps a (nfaIndex, local StateID) pair to a flat index over the
// combined universe of every NFA's states.
func (c *compiler) global(nfaIndex int, id nfa.StateID) uint32 {
	return conv.IntToUint32(c.offsets[nfaIndex]) + uint32(id)
}

// localOf is the inverse of global: given a flat index, returns which NFA
// it belongs to and the local StateID within it.
func (c *compiler) localOf(g uint32) (int, nfa.StateID) {
	idx := int(g)
	for i := len(c.offsets) - 1; i >= 0; i-- {
		if idx >= c.offsets[i] {
			return i, nfa.StateID(idx - c.offsets[i])
		}
	}
	panic("dfa: global index out of range")
}

// epsilonClosure follows Split and Epsilon transitions from every seed
// state, returning the full reachable set sorted ascending. It runs an
// explicit-stack DFS over the combined state universe rather than
// per-NFA recursion, since a seed set here may span multiple NFAs at
// once.
func (c *compiler) epsilonClosure(seeds []uint32) []uint32 {
	seen := sparse.New(conv.IntToUint32(c.universe))
	var stack []uint32
	for _, s := range seeds {
		if !seen.Contains(s) {
			seen.Insert(s)
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		g := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nfaIdx, local := c.localOf(g)
		n := c.nfas[nfaIdx]
		st := n.State(local)
		switch st.Kind() {
		case nfa.KindEpsilon:
			t := c.global(nfaIdx, st.Epsilon())
			if !seen.Contains(t) {
				seen.Insert(t)
				stack = append(stack, t)
			}
		case nfa.KindSplit:
			l, r := st.Split()
			for _, t := range []nfa.StateID{l, r} {
				gt := c.global(nfaIdx, t)
				if !seen.Contains(gt) {
					seen.Insert(gt)
					stack = append(stack, gt)
				}
			}
		}
	}
	out := append([]uint32(nil), seen.Values()...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// move computes, for every ByteRange state in subset whose range contains
// b, the epsilon-closure of its target: the classic subset-construction
// step.
func (c *compiler) move(subset []uint32, b byte) []uint32 {
	var targets []uint32
	for _, g := range subset {
		nfaIdx, local := c.localOf(g)
		n := c.nfas[nfaIdx]
		st := n.State(local)
		if st.Kind() == nfa.KindByteRange {
			lo, hi, to := st.ByteRange()
			if b >= lo && b <= hi {
				targets = append(targets, c.global(nfaIdx, to))
			}
		}
	}
	if len(targets) == 0 {
		return nil
	}
	return c.epsilonClosure(targets)
}

// register looks up or creates the DFA state for a (sorted) subset,
// computing its accept map on first creation. Returns the existing
// StateID if an equal-key subset has already been registered.
func (c *compiler) register(subset []uint32) StateID {
	key := computeStateKey(subset)
	if id, ok := c.byKey[key]; ok {
		return id
	}
	id := StateID(len(c.states))
	c.states = append(c.states, State{acceptMap: c.acceptMapFor(subset)})
	if c.subsets == nil {
		c.subsets = make(map[StateID][]uint32)
	}
	c.subsets[id] = subset
	c.byKey[key] = id
	c.worklist = append(c.worklist, id)
	return id
}

// acceptMapFor collects the tags of every NFA whose accept state is
// present in subset, sorted ascending by Priority so index 0 is always
// the winning tag on a tie (spec.md §4.3/§4.4).
func (c *compiler) acceptMapFor(subset []uint32) []nfa.Tag {
	var tags []nfa.Tag
	for _, g := range subset {
		nfaIdx, local := c.localOf(g)
		n := c.nfas[nfaIdx]
		if local == n.Accept() {
			tags = append(tags, n.Tag())
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Priority < tags[j].Priority })
	return tags
}
