package litmatch

import "github.com/coregx/logexa/ast"

// ExtractLiteral reports whether node matches exactly one fixed byte
// string with no classes, repeats, or AnyByte — i.e. whether it is safe
// to represent as a single Aho-Corasick pattern. Alt nodes are not
// descended into here: a top-level Alt is the caller's concern (see
// ExtractAlternationLiterals). Group is transparent, so its child is
// examined in its place.
func ExtractLiteral(node *ast.Node) ([]byte, bool) {
	switch node.Kind() {
	case ast.KindLiteral:
		return []byte{node.Literal()}, true
	case ast.KindGroup:
		return ExtractLiteral(node.Child())
	case ast.KindConcat:
		var out []byte
		for _, child := range node.Children() {
			b, ok := ExtractLiteral(child)
			if !ok {
				return nil, false
			}
			out = append(out, b...)
		}
		return out, true
	default:
		return nil, false
	}
}

// ExtractAlternationLiterals reports whether node is a top-level
// Alt (optionally wrapped in Group) each of whose branches is a fixed
// literal string, returning those literals in branch order. A
// single-branch pattern that is itself a literal also qualifies, so a
// schema with a bare literal pattern can still be handed to Build.
func ExtractAlternationLiterals(node *ast.Node) ([][]byte, bool) {
	for node.Kind() == ast.KindGroup {
		node = node.Child()
	}
	if node.Kind() == ast.KindAlt {
		var out [][]byte
		for _, child := range node.Children() {
			b, ok := ExtractLiteral(child)
			if !ok {
				return nil, false
			}
			out = append(out, b)
		}
		return out, true
	}
	if b, ok := ExtractLiteral(node); ok {
		return [][]byte{b}, true
	}
	return nil, false
}
