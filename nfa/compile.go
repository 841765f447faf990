package nfa

import "github.com/coregx/logexa/ast"

// Compile runs Thompson construction over node and returns an NFA tagged
// with tag. Each AST node becomes a fragment with one entry state and one
// dangling exit (an Epsilon state whose Next is patched by the caller);
// the top-level exit is patched to a fresh Match state, preserving the
// single-start/single-accept invariant the dfa package's subset
// construction relies on.
func Compile(node *ast.Node, tag Tag) *NFA {
	b := NewBuilder()
	start, exit := compileNode(b, node)
	accept := b.AddMatch()
	b.Patch(exit, accept)
	return b.Build(start, accept, tag)
}

// fragment is a sub-NFA with one entry point and one dangling exit
// (always an Epsilon state) left for the caller to chain onward.
type fragment struct {
	start StateID
	exit  StateID // Epsilon state; patch its Next to continue
}

func compileNode(b *Builder, node *ast.Node) (StateID, StateID) {
	f := compile(b, node)
	return f.start, f.exit
}

func compile(b *Builder, node *ast.Node) fragment {
	switch node.Kind() {
	case ast.KindLiteral:
		return compileByteRange(b, node.Literal(), node.Literal())
	case ast.KindAnyByte:
		return compileAnyByte(b)
	case ast.KindCharClass:
		return compileCharClass(b, node)
	case ast.KindConcat:
		return compileConcat(b, node.Children())
	case ast.KindAlt:
		return compileAlt(b, node.Children())
	case ast.KindRepeat:
		return compileRepeat(b, node)
	case ast.KindGroup:
		return compile(b, node.Child())
	default:
		panic("nfa: unknown ast.Kind")
	}
}

// compileByteRange builds start --[lo,hi]--> exit, where exit is an
// Epsilon join state so every fragment has a uniform shape to chain on.
func compileByteRange(b *Builder, lo, hi byte) fragment {
	exit := b.AddEpsilon()
	start := b.AddByteRange(lo, hi)
	b.Patch(start, exit)
	return fragment{start: start, exit: exit}
}

func compileAnyByte(b *Builder) fragment {
	// Any ASCII byte except '\n': two disjoint ranges joined by a Split.
	exit := b.AddEpsilon()
	lowStart := b.AddByteRange(0x00, '\n'-1)
	b.Patch(lowStart, exit)
	highStart := b.AddByteRange('\n'+1, 0x7F)
	b.Patch(highStart, exit)
	split := b.AddSplit()
	b.PatchSplit(split, lowStart, highStart)
	return fragment{start: split, exit: exit}
}

// compileCharClass compiles a (possibly negated) ByteSet into a chain of
// Split states over its maximal contiguous ranges, so the resulting NFA
// never needs a variable-arity transition list on a single state.
func compileCharClass(b *Builder, node *ast.Node) fragment {
	set := node.Class()
	if node.Negated() {
		set = set.Negate()
	}
	ranges := contiguousRanges(set)
	exit := b.AddEpsilon()
	var starts []StateID
	for _, r := range ranges {
		s := b.AddByteRange(r.lo, r.hi)
		b.Patch(s, exit)
		starts = append(starts, s)
	}
	start := foldSplits(b, starts)
	return fragment{start: start, exit: exit}
}

type byteRange struct{ lo, hi byte }

func contiguousRanges(set *ast.ByteSet) []byteRange {
	var ranges []byteRange
	members := set.Bytes()
	i := 0
	for i < len(members) {
		lo := members[i]
		hi := lo
		j := i + 1
		for j < len(members) && members[j] == hi+1 {
			hi = members[j]
			j++
		}
		ranges = append(ranges, byteRange{lo: lo, hi: hi})
		i = j
	}
	return ranges
}

// foldSplits builds a left-leaning tree of Split states with starts as
// its leaves, returning the root. Panics if starts is empty (callers
// guarantee a non-empty class via ast.NewCharClass's own invariant).
func foldSplits(b *Builder, starts []StateID) StateID {
	if len(starts) == 0 {
		panic("nfa: empty class")
	}
	cur := starts[0]
	for _, s := range starts[1:] {
		split := b.AddSplit()
		b.PatchSplit(split, cur, s)
		cur = split
	}
	return cur
}

func compileConcat(b *Builder, children []*ast.Node) fragment {
	first := compile(b, children[0])
	start := first.start
	exit := first.exit
	for _, child := range children[1:] {
		next := compile(b, child)
		b.Patch(exit, next.start)
		exit = next.exit
	}
	return fragment{start: start, exit: exit}
}

// compileAlt builds a fan-out of Split states over each branch, all
// branches' exits chained to one shared join Epsilon state.
func compileAlt(b *Builder, children []*ast.Node) fragment {
	join := b.AddEpsilon()
	var starts []StateID
	for _, child := range children {
		f := compile(b, child)
		b.Patch(f.exit, join)
		starts = append(starts, f.start)
	}
	start := foldSplits(b, starts)
	return fragment{start: start, exit: join}
}

// compileRepeat implements spec.md's unrolling rule: N mandatory copies,
// then either (M-N) optional copies (finite M) or a Kleene loop (M = ∞).
func compileRepeat(b *Builder, node *ast.Node) fragment {
	child := node.Child()
	n, m := node.Min(), node.Max()

	var start, exit StateID
	haveFrag := false
	appendFrag := func(f fragment) {
		if !haveFrag {
			start, exit = f.start, f.exit
			haveFrag = true
			return
		}
		b.Patch(exit, f.start)
		exit = f.exit
	}

	for i := 0; i < n; i++ {
		appendFrag(compile(b, child))
	}

	if m == ast.Unbounded {
		loop := compileKleeneStar(b, child)
		appendFrag(loop)
	} else {
		for i := n; i < m; i++ {
			appendFrag(compileOptional(b, child))
		}
	}

	if !haveFrag {
		// n == 0 && m == 0: the whole repeat matches the empty string.
		e := b.AddEpsilon()
		return fragment{start: e, exit: e}
	}
	return fragment{start: start, exit: exit}
}

// compileKleeneStar builds the zero-or-more form: a Split that either
// skips straight to the join, or enters the body and loops back to
// itself.
func compileKleeneStar(b *Builder, child *ast.Node) fragment {
	join := b.AddEpsilon()
	split := b.AddSplit()
	body := compile(b, child)
	b.Patch(body.exit, split)
	b.PatchSplit(split, body.start, join)
	return fragment{start: split, exit: join}
}

// compileOptional builds the zero-or-one form used for the (M-N) tail of
// a bounded repeat.
func compileOptional(b *Builder, child *ast.Node) fragment {
	join := b.AddEpsilon()
	body := compile(b, child)
	b.Patch(body.exit, join)
	split := b.AddSplit()
	b.PatchSplit(split, body.start, join)
	return fragment{start: split, exit: join}
}
