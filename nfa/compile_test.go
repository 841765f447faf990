package nfa

import (
	"testing"

	"github.com/coregx/logexa/ast"
	"github.com/coregx/logexa/restx"
)

// run walks the NFA over input via brute-force epsilon-closure simulation,
// used only to sanity-check the compiler without depending on the dfa
// package.
func run(t *testing.T, n *NFA, input string) bool {
	t.Helper()
	cur := closure(n, map[StateID]bool{}, n.Start())
	for i := 0; i < len(input); i++ {
		b := input[i]
		next := map[StateID]bool{}
		for id := range cur {
			st := n.State(id)
			if st.Kind() == KindByteRange {
				lo, hi, to := st.ByteRange()
				if b >= lo && b <= hi {
					for k := range closure(n, map[StateID]bool{}, to) {
						next[k] = true
					}
				}
			}
		}
		cur = next
	}
	return cur[n.Accept()]
}

func closure(n *NFA, seen map[StateID]bool, id StateID) map[StateID]bool {
	if seen[id] {
		return seen
	}
	seen[id] = true
	st := n.State(id)
	switch st.Kind() {
	case KindEpsilon:
		closure(n, seen, st.Epsilon())
	case KindSplit:
		l, r := st.Split()
		closure(n, seen, l)
		closure(n, seen, r)
	}
	return seen
}

func mustParse(t *testing.T, pattern string) *ast.Node {
	t.Helper()
	n, err := restx.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return n
}

func TestCompileLiteral(t *testing.T) {
	n := Compile(mustParse(t, "abc"), Tag{Kind: TagVariable, ID: 0})
	if !run(t, n, "abc") {
		t.Error("expected match on abc")
	}
	if run(t, n, "abd") {
		t.Error("unexpected match on abd")
	}
}

func TestCompileAlternation(t *testing.T) {
	n := Compile(mustParse(t, "INFO|DEBUG|WARN|ERROR"), Tag{Kind: TagVariable, ID: 0})
	for _, s := range []string{"INFO", "DEBUG", "WARN", "ERROR"} {
		if !run(t, n, s) {
			t.Errorf("expected match on %q", s)
		}
	}
	if run(t, n, "TRACE") {
		t.Error("unexpected match on TRACE")
	}
}

func TestCompileStarPlusOptional(t *testing.T) {
	n := Compile(mustParse(t, "ab*c?d+"), Tag{Kind: TagVariable, ID: 0})
	for _, s := range []string{"ad", "abd", "abbbd", "acd", "acdd", "abcdd"} {
		if !run(t, n, s) {
			t.Errorf("expected match on %q", s)
		}
	}
	if run(t, n, "a") {
		t.Error("unexpected match on 'a' (needs at least one d)")
	}
}

func TestCompileCountedRepeat(t *testing.T) {
	n := Compile(mustParse(t, `\d{2,4}`), Tag{Kind: TagVariable, ID: 0})
	if run(t, n, "1") {
		t.Error("unexpected match on '1'")
	}
	if !run(t, n, "12") {
		t.Error("expected match on '12'")
	}
	if !run(t, n, "1234") {
		t.Error("expected match on '1234'")
	}
	if run(t, n, "12345") {
		t.Error("unexpected full match on '12345' (5 digits > max 4)")
	}
}

func TestCompileCharClassRanges(t *testing.T) {
	n := Compile(mustParse(t, "[a-z0-9_]+"), Tag{Kind: TagVariable, ID: 0})
	if !run(t, n, "hello_world_123") {
		t.Error("expected match")
	}
	if run(t, n, "Hello") {
		t.Error("unexpected match on uppercase")
	}
}

func TestCompileTimestampPattern(t *testing.T) {
	n := Compile(mustParse(t, `\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`), Tag{Kind: TagTimestamp, ID: 0})
	if !run(t, n, "2024-01-02 03:04:05") {
		t.Error("expected match on a well-formed timestamp")
	}
	if run(t, n, "2024-01-02") {
		t.Error("unexpected match on a truncated timestamp")
	}
}
