// Package event groups a lexer's token stream into log events, a thin
// state machine over the lexer's output, following the grammar
//
//	event       := timestamp? msg_token* end_of_line?
//	msg_token   := variable | static_text
//	end_of_line := StaticTextWithNewline
//
// A new event starts on a Timestamp token, or — at stream start only —
// on the first non-timestamp token. An event closes on
// StaticTextWithNewline or end-of-stream. The first event may lack a
// timestamp; the last may lack an end-of-line.
package event

import (
	"strings"

	"github.com/coregx/logexa/lexer"
)

// Event is one grouped run of tokens: an optional leading Timestamp plus
// the body tokens (Variable and StaticText/StaticTextWithNewline) up to
// and including the line's closing newline, if any.
type Event struct {
	Timestamp *lexer.Token
	Body      []lexer.Token
}

// LineRange returns the inclusive [first, last] line numbers spanned by
// e's tokens.
func (e *Event) LineRange() (first, last int) {
	if e.Timestamp != nil {
		first = e.Timestamp.Line
	} else if len(e.Body) > 0 {
		first = e.Body[0].Line
	}
	last = first
	if len(e.Body) > 0 {
		last = e.Body[len(e.Body)-1].Line
	} else if e.Timestamp != nil {
		last = e.Timestamp.Line
	}
	return first, last
}

// String reassembles e's exact byte payload, concatenating the timestamp
// (if any) and every body token in order.
func (e *Event) String() string {
	var b strings.Builder
	if e.Timestamp != nil {
		b.Write(e.Timestamp.Bytes)
	}
	for _, tok := range e.Body {
		b.Write(tok.Bytes)
	}
	return b.String()
}

// Builder drains a *lexer.Lexer and groups its tokens into Events.
type Builder struct {
	lx      *lexer.Lexer
	pending *lexer.Token // a Timestamp token read ahead to start the next event
	done    bool
}

// New wraps lx. lx must not be drained independently once handed to a
// Builder.
func New(lx *lexer.Lexer) *Builder {
	return &Builder{lx: lx}
}

// NextEvent returns the next Event, lexer.EndOfStream once both the
// lexer and any buffered tokens are exhausted, or a propagated
// *lexer.LexError.
func (b *Builder) NextEvent() (*Event, error) {
	if b.done {
		return nil, lexer.EndOfStream
	}

	ev := &Event{}
	if b.pending != nil {
		ev.Timestamp = b.pending
		b.pending = nil
	}

	for {
		tok, err := b.lx.NextToken()
		if err == lexer.EndOfStream {
			b.done = true
			if ev.Timestamp == nil && len(ev.Body) == 0 {
				return nil, lexer.EndOfStream
			}
			return ev, nil
		}
		if err != nil {
			return nil, err
		}

		if tok.Kind == lexer.KindTimestamp {
			cp := tok
			if ev.Timestamp == nil && len(ev.Body) == 0 {
				// Nothing buffered yet for this event: this timestamp
				// opens it (the usual case, and also the stream-start
				// case where it is the very first token seen at all).
				ev.Timestamp = &cp
				continue
			}
			// The event already in progress closes here; this timestamp
			// opens the next one.
			b.pending = &cp
			return ev, nil
		}

		ev.Body = append(ev.Body, tok)
		if tok.Kind == lexer.KindStaticTextWithNewline {
			return ev, nil
		}
	}
}
