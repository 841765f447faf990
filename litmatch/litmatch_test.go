package litmatch

import (
	"testing"

	"github.com/coregx/logexa/nfa"
	"github.com/coregx/logexa/restx"
)

func TestExtractAlternationLiterals(t *testing.T) {
	node, err := restx.Parse("(INFO|DEBUG|WARN|ERROR)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lits, ok := ExtractAlternationLiterals(node)
	if !ok {
		t.Fatal("expected literal alternation to be detected")
	}
	if len(lits) != 4 {
		t.Fatalf("got %d literals, want 4", len(lits))
	}
}

func TestExtractAlternationLiteralsRejectsClasses(t *testing.T) {
	node, err := restx.Parse("[a-z]+")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := ExtractAlternationLiterals(node); ok {
		t.Fatal("expected a character class repeat to be rejected")
	}
}

func TestMatcherLookup(t *testing.T) {
	m, err := Build([]Literal{
		{Bytes: []byte("INFO"), Tag: nfa.Tag{Kind: nfa.TagVariable, ID: 0, Priority: 0}},
		{Bytes: []byte("DEBUG"), Tag: nfa.Tag{Kind: nfa.TagVariable, ID: 0, Priority: 0}},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := m.Lookup([]byte("INFO")); !ok {
		t.Error("expected INFO to match")
	}
	if _, ok := m.Lookup([]byte("INF")); ok {
		t.Error("expected partial segment not to match")
	}
	if _, ok := m.Lookup([]byte("WARN")); ok {
		t.Error("expected unknown literal not to match")
	}
}

func TestMatcherLookupPriorityTieBreak(t *testing.T) {
	high := nfa.Tag{Kind: nfa.TagVariable, ID: 0, Priority: 0}
	low := nfa.Tag{Kind: nfa.TagVariable, ID: 1, Priority: 1}

	m, err := Build([]Literal{
		{Bytes: []byte("INFO"), Tag: high},
		{Bytes: []byte("INFO"), Tag: low},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	tag, ok := m.Lookup([]byte("INFO"))
	if !ok {
		t.Fatal("expected INFO to match")
	}
	if tag != high {
		t.Errorf("got tag %+v, want the higher-priority pattern's tag %+v", tag, high)
	}
}
