// Package ast defines the internal tree form of a single schema pattern.
//
// A Node is a tagged union over the restricted dialect's grammar: literal
// bytes, byte classes, concatenation, alternation, bounded/unbounded repeats,
// and transparent grouping. Construction goes through the New* constructors
// rather than struct literals so that the package's own invariants (Alt and
// Concat need at least one child, CharClass needs at least one member,
// Repeat needs Min <= Max) are enforced in one place instead of at every
// call site in the parser.
package ast

// Kind identifies which variant of Node is populated.
type Kind int

const (
	// KindLiteral matches exactly one byte.
	KindLiteral Kind = iota
	// KindAnyByte matches any ASCII byte except '\n'.
	KindAnyByte
	// KindCharClass matches any byte in (or, if Negated, outside) a set.
	KindCharClass
	// KindConcat matches its children in sequence.
	KindConcat
	// KindAlt matches any one of its children.
	KindAlt
	// KindRepeat matches its single child between Min and Max times.
	KindRepeat
	// KindGroup is a transparent wrapper around a single child, kept so
	// parse errors and any future capture support can refer to group
	// boundaries; it imposes no matching semantics of its own.
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindAnyByte:
		return "AnyByte"
	case KindCharClass:
		return "CharClass"
	case KindConcat:
		return "Concat"
	case KindAlt:
		return "Alt"
	case KindRepeat:
		return "Repeat"
	case KindGroup:
		return "Group"
	default:
		return "Unknown"
	}
}

// Unbounded is the value of Node.Max for an unbounded repeat (`*`, `+`).
const Unbounded = -1

// Node is a single AST node. Only the fields relevant to Kind are
// meaningful; this is a tagged struct rather than a Go interface with one
// implementation type per node kind, keeping traversal free of type
// switches on concrete types.
type Node struct {
	kind Kind

	// KindLiteral
	literal byte

	// KindCharClass
	class   *ByteSet
	negated bool

	// KindConcat, KindAlt
	children []*Node

	// KindRepeat, KindGroup
	child *Node
	min   int
	max   int // Unbounded for no upper bound
}

// Kind reports which variant of Node this is.
func (n *Node) Kind() Kind { return n.kind }

// Literal returns the matched byte. Valid only when Kind() == KindLiteral.
func (n *Node) Literal() byte { return n.literal }

// Class returns the byte set. Valid only when Kind() == KindCharClass.
func (n *Node) Class() *ByteSet { return n.class }

// Negated reports whether the class matches its complement. Valid only
// when Kind() == KindCharClass.
func (n *Node) Negated() bool { return n.negated }

// Children returns the child nodes. Valid only when Kind() is KindConcat
// or KindAlt.
func (n *Node) Children() []*Node { return n.children }

// Child returns the single child. Valid only when Kind() is KindRepeat or
// KindGroup.
func (n *Node) Child() *Node { return n.child }

// Min returns the minimum repeat count. Valid only when Kind() == KindRepeat.
func (n *Node) Min() int { return n.min }

// Max returns the maximum repeat count, or Unbounded. Valid only when
// Kind() == KindRepeat.
func (n *Node) Max() int { return n.max }

// NewLiteral builds a node matching exactly b.
func NewLiteral(b byte) *Node {
	return &Node{kind: KindLiteral, literal: b}
}

// NewAnyByte builds a node matching any ASCII byte except '\n'.
func NewAnyByte() *Node {
	return &Node{kind: KindAnyByte}
}

// NewCharClass builds a node matching any byte in set (or, if negated, any
// ASCII byte not in set). Panics if set is empty: an empty, non-negated
// class can never match and almost certainly indicates a parser bug rather
// than a pattern the caller meant to write.
func NewCharClass(set *ByteSet, negated bool) *Node {
	if set.Len() == 0 {
		panic("ast: CharClass must be non-empty")
	}
	return &Node{kind: KindCharClass, class: set, negated: negated}
}

// NewConcat builds a node matching children in sequence. Panics if fewer
// than one child is given.
func NewConcat(children ...*Node) *Node {
	if len(children) < 1 {
		panic("ast: Concat requires at least one child")
	}
	return &Node{kind: KindConcat, children: children}
}

// NewAlt builds a node matching any one of children. Panics if fewer than
// one child is given.
func NewAlt(children ...*Node) *Node {
	if len(children) < 1 {
		panic("ast: Alt requires at least one child")
	}
	return &Node{kind: KindAlt, children: children}
}

// NewRepeat builds a node matching child between min and max times
// (max == Unbounded for no upper bound). Panics if min < 0 or
// (max != Unbounded && max < min).
func NewRepeat(child *Node, min, max int) *Node {
	if min < 0 {
		panic("ast: Repeat min must be >= 0")
	}
	if max != Unbounded && max < min {
		panic("ast: Repeat max must be >= min")
	}
	return &Node{kind: KindRepeat, child: child, min: min, max: max}
}

// NewGroup wraps child in a transparent group.
func NewGroup(child *Node) *Node {
	return &Node{kind: KindGroup, child: child}
}
