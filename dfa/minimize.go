package dfa

import (
	"fmt"

	"github.com/coregx/logexa/nfa"
)

// Minimize returns a new DFA equivalent to d but with equivalent states
// merged, preserving exact priority tie-break behavior.
//
// This is a Moore-style partition refinement, not Hopcroft's algorithm:
// it repeatedly refines a partition of states by transition-target
// equivalence until a fixed point, rather than using Hopcroft's
// worklist-of-splitters formulation. For the state counts a schema's
// unified DFA produces this is fast enough, and it is simpler to state
// correctly for the non-standard initial partition spec.md §4.3
// requires: two accepting states are equivalent only if their *full*
// ordered accept-tag lists match, not merely "both accept" — a plain
// boolean-accept initial partition would silently merge two states that
// accept different patterns, destroying the priority tie-break contract.
func Minimize(d *DFA) *DFA {
	partition := initialPartition(d)
	for {
		refined, changed := refine(d, partition)
		partition = refined
		if !changed {
			break
		}
	}
	return rebuild(d, partition)
}

// acceptSignature renders a state's full ordered accept-tag list as a
// string key; states in the same initial partition block share it.
func acceptSignature(st *State) string {
	s := ""
	for _, t := range st.AcceptMap() {
		s += fmt.Sprintf("%d:%d:%d|", t.Kind, t.ID, t.Priority)
	}
	return s
}

func initialPartition(d *DFA) []int {
	block := make(map[string]int)
	labels := make([]int, d.Len())
	for id := 0; id < d.Len(); id++ {
		sig := acceptSignature(d.State(StateID(id)))
		b, ok := block[sig]
		if !ok {
			b = len(block)
			block[sig] = b
		}
		labels[id] = b
	}
	return labels
}

// refine splits any block whose members disagree, for some byte, on
// which *block* (not which literal state) their transition lands in.
// Returns the new labeling and whether any split occurred.
func refine(d *DFA, partition []int) ([]int, bool) {
	type sig struct {
		block  int
		onByte [128]int
	}
	sigs := make([]sig, d.Len())
	for id := 0; id < d.Len(); id++ {
		s := sig{block: partition[id]}
		st := d.State(StateID(id))
		for b := 0; b < 128; b++ {
			target := st.Step(byte(b))
			s.onByte[b] = partition[target]
		}
		sigs[id] = s
	}

	keyOf := func(s sig) string {
		out := fmt.Sprintf("%d:", s.block)
		for _, v := range s.onByte {
			out += fmt.Sprintf("%d,", v)
		}
		return out
	}

	newBlock := make(map[string]int)
	newLabels := make([]int, d.Len())
	for id, s := range sigs {
		k := keyOf(s)
		b, ok := newBlock[k]
		if !ok {
			b = len(newBlock)
			newBlock[k] = b
		}
		newLabels[id] = b
	}

	changed := len(newBlock) != countBlocks(partition)
	return newLabels, changed
}

func countBlocks(partition []int) int {
	max := -1
	for _, b := range partition {
		if b > max {
			max = b
		}
	}
	return max + 1
}

// rebuild constructs a new DFA with one state per block of partition, in
// block-index order, choosing block 0 to be DeadStateID's block (the
// dead state's block can never merge with an accepting block since its
// accept signature and every transition target differ from any live
// state's).
func rebuild(d *DFA, partition []int) *DFA {
	numBlocks := countBlocks(partition)
	states := make([]State, numBlocks)
	seen := make([]bool, numBlocks)
	for id := 0; id < d.Len(); id++ {
		b := partition[id]
		if seen[b] {
			continue
		}
		seen[b] = true
		src := d.State(StateID(id))
		states[b].acceptMap = append([]nfa.Tag(nil), src.AcceptMap()...)
		for byt := 0; byt < 128; byt++ {
			target := src.Step(byte(byt))
			states[b].transitions[byt] = StateID(partition[target])
		}
	}
	deadBlock := partition[DeadStateID]
	newStart := StateID(partition[d.Start()])
	if deadBlock != int(DeadStateID) {
		// Swap so DeadStateID (0) always names the dead block, matching
		// the DFA type's documented invariant.
		states[0], states[deadBlock] = states[deadBlock], states[0]
		for i := range states {
			for b := 0; b < 128; b++ {
				switch int(states[i].transitions[b]) {
				case 0:
					states[i].transitions[b] = StateID(deadBlock)
				case deadBlock:
					states[i].transitions[b] = 0
				}
			}
		}
		if int(newStart) == 0 {
			newStart = StateID(deadBlock)
		} else if int(newStart) == deadBlock {
			newStart = 0
		}
	}
	return &DFA{states: states, start: newStart}
}
