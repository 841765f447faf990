package dfa

import (
	"regexp"
	"testing"

	"github.com/coregx/logexa/nfa"
	"github.com/coregx/logexa/restx"
)

// TestRoundTripAgainstStdlibRegexp checks the compiled pipeline
// (restx -> nfa -> dfa) against stdlib regexp's POSIX mode, which (like
// this module's DFA) reports the leftmost-longest match rather than
// regexp's normal leftmost-first semantics. This only covers the
// dialect subset both engines agree on: literals, '.', character
// classes, alternation, greedy '*'/'+'/'?' and counted '{n,m}' repeats,
// and groups. It does not cover backreferences, lookaround, or Unicode
// classes, none of which this module's dialect supports.
func TestRoundTripAgainstStdlibRegexp(t *testing.T) {
	cases := []struct {
		pattern string // this module's dialect, fed to restx.Parse
		oracle  string // POSIX ERE equivalent, fed to regexp.MustCompilePOSIX
		inputs  []string
	}{
		{"abc", "abc", []string{"abc", "abcd", "ab", "xabc"}},
		{"a|bc", "a|bc", []string{"a", "bc", "b", "abc"}},
		{"ab*c?d+", "ab*c?d+", []string{"ad", "abd", "abbbd", "acd", "acdd", "a"}},
		{`\d{2,4}`, "[0-9]{2,4}", []string{"1", "12", "1234", "12345"}},
		{"[a-z0-9_]+", "[a-z0-9_]+", []string{"hello_world_123", "Hello", ""}},
		{
			`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`,
			"[0-9]{4}-[0-9]{2}-[0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2}",
			[]string{"2024-01-02 03:04:05", "2024-01-02", "2024-01-02 03:04:05Z"},
		},
		{"(INFO|DEBUG|WARN|ERROR)", "(INFO|DEBUG|WARN|ERROR)", []string{"INFO", "DEBUGX", "TRACE"}},
		{".", ".", []string{"x", "\n", ""}},
	}

	for _, c := range cases {
		node, err := restx.Parse(c.pattern)
		if err != nil {
			t.Fatalf("restx.Parse(%q): %v", c.pattern, err)
		}
		n := nfa.Compile(node, nfa.Tag{Kind: nfa.TagVariable, ID: 0})
		d, err := Compile([]*nfa.NFA{n})
		if err != nil {
			t.Fatalf("Compile(%q): %v", c.pattern, err)
		}

		oracle := regexp.MustCompilePOSIX("^(" + c.oracle + ")")

		for _, in := range c.inputs {
			m, ok := d.Simulate(d.Start(), []byte(in))
			loc := oracle.FindStringIndex(in)

			switch {
			case loc == nil && ok:
				t.Errorf("pattern %q, input %q: dfa matched len %d, stdlib regexp matched nothing", c.pattern, in, m.Len)
			case loc != nil && !ok:
				t.Errorf("pattern %q, input %q: stdlib regexp matched len %d, dfa matched nothing", c.pattern, in, loc[1])
			case loc != nil && ok && loc[1] != m.Len:
				t.Errorf("pattern %q, input %q: dfa matched len %d, stdlib regexp matched len %d", c.pattern, in, m.Len, loc[1])
			}
		}
	}
}
