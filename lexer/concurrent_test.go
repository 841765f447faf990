package lexer

import (
	"sync"
	"testing"

	"github.com/coregx/logexa/dfa"
	"github.com/coregx/logexa/source"
)

// TestConcurrentLexersShareCompiledDFA exercises the "compile once,
// share read-only, run many single-pass searches" lifecycle: N
// goroutines each drive their own Lexer, over their own source.Reader,
// against the same compiled *dfa.DFA. Run with -race to confirm the
// shared DFA is never mutated once compiled.
func TestConcurrentLexersShareCompiledDFA(t *testing.T) {
	s := sampleSchema(t)
	compiled, err := dfa.CompileFromSchema(s)
	if err != nil {
		t.Fatalf("dfa compile: %v", err)
	}

	const workers = 16
	const line = "2024-01-02 03:04:05 INFO starting, count -7\n"

	var wg sync.WaitGroup
	errs := make([]error, workers)
	counts := make([]int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			l := New(s, compiled, source.NewBytesReader([]byte(line)))
			n := 0
			for {
				_, err := l.NextToken()
				if err == EndOfStream {
					break
				}
				if err != nil {
					errs[idx] = err
					return
				}
				n++
			}
			counts[idx] = n
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("worker %d: %v", i, err)
		}
	}
	for i, n := range counts {
		if n != counts[0] {
			t.Errorf("worker %d produced %d tokens, worker 0 produced %d; expected identical output from shared DFA", i, n, counts[0])
		}
	}
}
