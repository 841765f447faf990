package lexer

import (
	"github.com/coregx/logexa/dfa"
	"github.com/coregx/logexa/nfa"
	"github.com/coregx/logexa/schema"
	"github.com/coregx/logexa/simdscan"
	"github.com/coregx/logexa/source"
)

// minGCBufferSize: the buffer is only worth compacting once the
// already-tokenized prefix has grown past this many bytes, so GC doesn't
// run (and shift memory) on every short line.
const minGCBufferSize = 4096

// Lexer is the delimiter-aware streaming lexer. Create one with New, then
// drain it with repeated NextToken calls until it returns EndOfStream.
//
// A Lexer owns its own cursor, line counter, and buffer; it holds no
// locks and no background work, so nothing beyond closing the underlying
// source.Reader (the caller's responsibility) is needed to tear one down.
// Multiple Lexers may safely share one *dfa.DFA and *schema.Schema by
// read-only reference.
type Lexer struct {
	reader source.Reader
	dfaTbl *dfa.DFA
	schema *schema.Schema
	delims *simdscan.ByteClass

	buf    []byte
	eof    bool
	done   bool // true once EndOfStream has been (or will next be) reported
	pos    int  // scan cursor; buf[pos:] is unconsumed
	static int  // start, in buf, of the pending static-text run

	line        int
	atLineStart bool

	queue []Token
}

// New compiles the lexer's view of the schema (the byte-class used for
// delimiter scanning) and returns a Lexer draining producer. The unified
// DFA itself is compiled separately (see dfa.CompileFromSchema) and shared across
// lexers; New takes it as an argument rather than rebuilding it per
// lexer.
func New(s *schema.Schema, compiledDFA *dfa.DFA, producer source.Reader) *Lexer {
	return &Lexer{
		reader:      producer,
		dfaTbl:      compiledDFA,
		schema:      s,
		delims:      simdscan.NewByteClass(s.Delimiters()),
		line:        1,
		atLineStart: true,
	}
}

// NextToken returns the next token, lexer.EndOfStream once the input and
// any in-flight static buffer are exhausted, or a *LexError{Kind: ErrIO}
// if the producer failed.
func (l *Lexer) NextToken() (Token, error) {
	for len(l.queue) == 0 {
		if l.done {
			return Token{}, EndOfStream
		}
		if err := l.advance(); err != nil {
			return Token{}, err
		}
	}
	tok := l.queue[0]
	l.queue = l.queue[1:]
	l.maybeCollectGarbage()
	return tok, nil
}

// advance performs one step of the state machine, appending zero or more
// tokens to l.queue, or setting l.done once input is exhausted.
func (l *Lexer) advance() error {
	if l.atLineStart {
		tag, n, ok, err := l.attemptTimestamp(l.pos)
		if err != nil {
			return err
		}
		if ok {
			l.flushStatic(l.pos, false)
			l.emitMatch(tag, l.buf[l.pos:l.pos+n])
			l.pos += n
			l.static = l.pos
			l.atLineStart = false
			return nil
		}
	}

	delimPos, hasDelim, err := l.scanToDelimiter(l.pos)
	if err != nil {
		return err
	}
	segEnd := delimPos
	if !hasDelim {
		segEnd = len(l.buf)
	}

	if segEnd > l.pos {
		segment := l.buf[l.pos:segEnd]
		if tag, ok := l.dfaTbl.FullMatch(segment); ok && (tag.Kind != nfa.TagTimestamp || l.atLineStart) {
			l.flushStatic(l.pos, false)
			l.emitMatch(tag, segment)
			l.pos = segEnd
			l.static = l.pos
			l.atLineStart = false
		} else {
			l.pos = segEnd
		}
	}

	if !hasDelim {
		l.flushStatic(l.pos, false)
		l.done = true
		return nil
	}

	b := l.buf[l.pos]
	l.pos++
	if b == '\n' {
		l.flushStatic(l.pos, true)
		l.line++
		l.atLineStart = true
	} else {
		l.atLineStart = false
	}
	return nil
}

// emitMatch appends a Timestamp or Variable token for bytes, copying them
// out of the internal buffer so they remain valid after a later garbage
// collection.
func (l *Lexer) emitMatch(tag nfa.Tag, bytes []byte) {
	l.queue = append(l.queue, Token{
		Kind:      tagKindToTokenKind(tag.Kind),
		PatternID: tag.ID,
		Bytes:     append([]byte(nil), bytes...),
		Line:      l.line,
	})
}

// flushStatic emits the pending static-text run [l.static, upto) as a
// StaticText or StaticTextWithNewline token, if non-empty.
func (l *Lexer) flushStatic(upto int, newline bool) {
	if upto <= l.static {
		return
	}
	kind := KindStaticText
	if newline {
		kind = KindStaticTextWithNewline
	}
	l.queue = append(l.queue, Token{
		Kind:  kind,
		Bytes: append([]byte(nil), l.buf[l.static:upto]...),
		Line:  l.line,
	})
	l.static = upto
}

// attemptTimestamp walks the DFA directly over the raw byte stream
// starting at pos, unconstrained by segment boundaries, tracking the
// longest position at which the winning accepted tag is a Timestamp tag.
// Because timestamp patterns are always assigned a lower (higher
// priority) rank than variable patterns (spec.md §4.3: timestamps first
// in schema order), a position's winning tag can only be a Variable tag
// if no timestamp pattern accepts there, so checking the winning tag's
// Kind is sufficient without separately tracking timestamp-only state.
//
// This intentionally ignores segment boundaries: a declared timestamp
// pattern is expected to contain delimiter bytes (for example the space
// and colons in "2024-01-02 03:04:05" with delimiters " \t\r\n:,"), and
// demanding a single delimiter-free segment would make most realistic
// timestamp patterns unmatchable; see DESIGN.md for the full account of
// this decision.
func (l *Lexer) attemptTimestamp(pos int) (tag nfa.Tag, length int, ok bool, err error) {
	cur := l.dfaTbl.Start()
	bestLen := -1
	var bestTag nfa.Tag
	i := pos
	for {
		st := l.dfaTbl.State(cur)
		if st.IsAccepting() && st.AcceptMap()[0].Kind == nfa.TagTimestamp {
			bestLen = i - pos
			bestTag = st.AcceptMap()[0]
		}
		if i >= len(l.buf) {
			if l.eof {
				break
			}
			grew, rerr := l.fillOne()
			if rerr != nil {
				return nfa.Tag{}, 0, false, rerr
			}
			if !grew {
				break
			}
		}
		if i >= len(l.buf) {
			break
		}
		b := l.buf[i]
		next := l.dfaTbl.Step(cur, b)
		if next == dfa.DeadStateID {
			break
		}
		cur = next
		i++
	}
	if bestLen <= 0 {
		return nfa.Tag{}, 0, false, nil
	}
	return bestTag, bestLen, true, nil
}

// scanToDelimiter finds the first delimiter byte at or after pos,
// reading more input as needed. hasDelim is false if the stream was
// exhausted before any delimiter was found.
func (l *Lexer) scanToDelimiter(pos int) (delimPos int, hasDelim bool, err error) {
	searchFrom := pos
	for {
		if idx := simdscan.FindDelimiter(l.buf[searchFrom:], l.delims); idx >= 0 {
			return searchFrom + idx, true, nil
		}
		searchFrom = len(l.buf)
		if l.eof {
			return 0, false, nil
		}
		grew, rerr := l.fillOne()
		if rerr != nil {
			return 0, false, rerr
		}
		if !grew {
			return 0, false, nil
		}
	}
}

// fillOne reads one byte from the producer and appends it to the buffer.
// grew is false (with a nil error) once the producer reports
// EndOfStream.
func (l *Lexer) fillOne() (grew bool, err error) {
	b, rerr := l.reader.ReadByte()
	if rerr != nil {
		if rerr == source.EndOfStream {
			l.eof = true
			return false, nil
		}
		return false, &LexError{Kind: ErrIO, Message: "reading input", Cause: rerr}
	}
	l.buf = append(l.buf, b)
	return true, nil
}

// maybeCollectGarbage discards the buffer prefix before l.static once it
// has grown past minGCBufferSize, so the lexer's resident memory stays
// proportional to the distance between consecutive variable/timestamp
// tokens rather than to total input size.
func (l *Lexer) maybeCollectGarbage() {
	if l.static < minGCBufferSize {
		return
	}
	n := copy(l.buf, l.buf[l.static:])
	l.buf = l.buf[:n]
	l.pos -= l.static
	l.static = 0
}
