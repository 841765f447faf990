package dfa

import (
	"testing"

	"github.com/coregx/logexa/nfa"
	"github.com/coregx/logexa/restx"
)

func compilePattern(t *testing.T, pattern string, kind nfa.TagKind, id, priority int) *nfa.NFA {
	t.Helper()
	n, err := restx.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return nfa.Compile(n, nfa.Tag{Kind: kind, ID: id, Priority: priority})
}

func TestUnifiedDFABasicMatch(t *testing.T) {
	ts := compilePattern(t, `\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`, nfa.TagTimestamp, 0, 0)
	intVar := compilePattern(t, `\-?\d+`, nfa.TagVariable, 0, 1)
	levelVar := compilePattern(t, "(INFO|DEBUG|WARN|ERROR)", nfa.TagVariable, 1, 2)

	d, err := Compile([]*nfa.NFA{ts, intVar, levelVar})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	m, ok := d.Simulate(d.Start(), []byte("2024-01-02 03:04:05"))
	if !ok || m.Len != len("2024-01-02 03:04:05") || m.Tag.Kind != nfa.TagTimestamp {
		t.Fatalf("got %+v ok=%v, want full timestamp match", m, ok)
	}

	m, ok = d.Simulate(d.Start(), []byte("INFO"))
	if !ok || m.Len != 4 || m.Tag.Kind != nfa.TagVariable || m.Tag.ID != 1 {
		t.Fatalf("got %+v ok=%v, want loglevel match", m, ok)
	}

	m, ok = d.Simulate(d.Start(), []byte("-42"))
	if !ok || m.Len != 3 || m.Tag.ID != 0 {
		t.Fatalf("got %+v ok=%v, want int match", m, ok)
	}

	_, ok = d.Simulate(d.Start(), []byte("xyz"))
	if ok {
		t.Fatal("expected no match on xyz")
	}
}

func TestUnifiedDFAPriorityTieBreak(t *testing.T) {
	greet := compilePattern(t, "hello", nfa.TagVariable, 0, 0)
	word := compilePattern(t, "[a-z]+", nfa.TagVariable, 1, 1)

	d, err := Compile([]*nfa.NFA{greet, word})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	m, ok := d.Simulate(d.Start(), []byte("hello"))
	if !ok || m.Tag.ID != 0 {
		t.Fatalf("got tag %+v, want greet (id 0) to win the tie", m.Tag)
	}

	m, ok = d.Simulate(d.Start(), []byte("world"))
	if !ok || m.Tag.ID != 1 {
		t.Fatalf("got tag %+v, want word (id 1)", m.Tag)
	}
}

func TestUnifiedDFALongestMatch(t *testing.T) {
	intVar := compilePattern(t, `\d+`, nfa.TagVariable, 0, 0)
	hexVar := compilePattern(t, `0x[0-9a-f]+`, nfa.TagVariable, 1, 1)

	d, err := Compile([]*nfa.NFA{intVar, hexVar})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	m, ok := d.Simulate(d.Start(), []byte("100"))
	if !ok || m.Len != 3 || m.Tag.ID != 0 {
		t.Fatalf("got %+v ok=%v, want int match on plain digits", m, ok)
	}
}

func TestMinimizePreservesLanguageAndPriority(t *testing.T) {
	greet := compilePattern(t, "hello", nfa.TagVariable, 0, 0)
	word := compilePattern(t, "[a-z]+", nfa.TagVariable, 1, 1)

	d, err := Compile([]*nfa.NFA{greet, word})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	min := Minimize(d)

	for _, s := range []string{"hello", "world", "abc"} {
		got, gotOk := d.Simulate(d.Start(), []byte(s))
		wantGot, wantOk := min.Simulate(min.Start(), []byte(s))
		if gotOk != wantOk || (gotOk && got.Tag != wantGot.Tag) {
			t.Errorf("minimized DFA disagrees with unminimized on %q: %+v/%v vs %+v/%v", s, got, gotOk, wantGot, wantOk)
		}
	}
}

func TestDeadStateHasNoTransitions(t *testing.T) {
	intVar := compilePattern(t, `\d+`, nfa.TagVariable, 0, 0)
	d, err := Compile([]*nfa.NFA{intVar})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	dead := d.State(DeadStateID)
	if dead.IsAccepting() {
		t.Fatal("dead state must not accept")
	}
	for b := 0; b < 128; b++ {
		if dead.Step(byte(b)) != DeadStateID {
			t.Fatalf("dead state must have no outgoing transitions, byte %d goes to %d", b, dead.Step(byte(b)))
		}
	}
}
