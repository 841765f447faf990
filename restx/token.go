package restx

import "github.com/coregx/logexa/ast"

// tokenKind enumerates the lexical tokens of the dialect. Character
// classes are not tokenized atom-by-atom: tokClass carries the fully
// parsed ast.Node for the bracket expression, since class parsing has its
// own nested escape rules distinct from the top-level grammar.
type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokDot
	tokStar
	tokPlus
	tokQuestion
	tokPipe
	tokLParen
	tokRParen
	tokLBrace
	tokClass
	tokEOF
)

type token struct {
	kind    tokenKind
	literal byte
	class   *classExpr
	pos     int
}

// classExpr holds a parsed `[...]` expression pending assembly into an
// ast.Node; kept separate from ast.Node construction so NewCharClass's
// non-empty invariant is checked at the point the class is known to be
// either fully assembled or negated-to-empty.
type classExpr struct {
	set     *ast.ByteSet
	negated bool
}

// tokenizer splits a pattern into tokens, resolving escapes as it goes.
// It is the only place that inspects raw bytes of the pattern; the parser
// that follows sees only tokens.
type tokenizer struct {
	pattern string
	pos     int
}

func newTokenizer(pattern string) *tokenizer {
	return &tokenizer{pattern: pattern}
}

func (t *tokenizer) eof() bool {
	return t.pos >= len(t.pattern)
}

func (t *tokenizer) peekByte() byte {
	return t.pattern[t.pos]
}

// next returns the next token, or a tokEOF token at the pattern's end.
func (t *tokenizer) next() (token, error) {
	if t.eof() {
		return token{kind: tokEOF, pos: t.pos}, nil
	}
	startPos := t.pos
	b := t.pattern[t.pos]
	switch b {
	case '.':
		t.pos++
		return token{kind: tokDot, pos: startPos}, nil
	case '*':
		t.pos++
		return token{kind: tokStar, pos: startPos}, nil
	case '+':
		t.pos++
		return token{kind: tokPlus, pos: startPos}, nil
	case '?':
		t.pos++
		return token{kind: tokQuestion, pos: startPos}, nil
	case '|':
		t.pos++
		return token{kind: tokPipe, pos: startPos}, nil
	case '(':
		t.pos++
		return token{kind: tokLParen, pos: startPos}, nil
	case ')':
		t.pos++
		return token{kind: tokRParen, pos: startPos}, nil
	case '{':
		t.pos++
		return token{kind: tokLBrace, pos: startPos}, nil
	case '[':
		cls, err := t.scanClass()
		if err != nil {
			return token{}, err
		}
		return token{kind: tokClass, class: cls, pos: startPos}, nil
	case '\\':
		return t.scanEscape()
	default:
		if b >= 128 {
			return token{}, &ParseError{Kind: ErrNonASCII, Pattern: t.pattern, Pos: startPos}
		}
		t.pos++
		return token{kind: tokLiteral, literal: b, pos: startPos}, nil
	}
}

// scanEscape consumes a backslash-introduced literal or pre-expanded class.
func (t *tokenizer) scanEscape() (token, error) {
	startPos := t.pos
	t.pos++ // consume '\\'
	if t.eof() {
		return token{}, &ParseError{Kind: ErrUnexpectedEnd, Pattern: t.pattern, Pos: startPos, Message: "trailing backslash"}
	}
	e := t.pattern[t.pos]
	t.pos++
	switch e {
	case 'd':
		return token{kind: tokClass, class: &classExpr{set: ast.Digits()}, pos: startPos}, nil
	case 'w':
		return token{kind: tokClass, class: &classExpr{set: ast.Word()}, pos: startPos}, nil
	case 's':
		return token{kind: tokClass, class: &classExpr{set: ast.Space()}, pos: startPos}, nil
	case '.', '\\', '(', ')', '[', ']', '{', '}', '|', '*', '+', '-', '?':
		return token{kind: tokLiteral, literal: e, pos: startPos}, nil
	default:
		return token{}, &ParseError{Kind: ErrUnknownEscape, Pattern: t.pattern, Pos: startPos, Message: string(e)}
	}
}

// scanClass parses a `[...]` bracket expression starting at the current
// '[' byte, leaving pos just past the closing ']'.
func (t *tokenizer) scanClass() (*classExpr, error) {
	startPos := t.pos
	t.pos++ // consume '['
	negated := false
	if !t.eof() && t.peekByte() == '^' {
		negated = true
		t.pos++
	}
	b := ast.NewByteSet()
	first := true
	for {
		if t.eof() {
			return nil, &ParseError{Kind: ErrUnbalanced, Pattern: t.pattern, Pos: startPos, Message: "unterminated ["}
		}
		c := t.peekByte()
		if c == ']' && !first {
			t.pos++
			break
		}
		first = false
		lo, err := t.scanClassByte()
		if err != nil {
			return nil, err
		}
		if !t.eof() && t.peekByte() == '-' && t.pos+1 < len(t.pattern) && t.pattern[t.pos+1] != ']' {
			t.pos++ // consume '-'
			hi, err := t.scanClassByte()
			if err != nil {
				return nil, err
			}
			if hi < lo {
				return nil, &ParseError{Kind: ErrBadRepeat, Pattern: t.pattern, Pos: startPos, Message: "range out of order"}
			}
			b.AddRange(lo, hi)
		} else {
			b.Add(lo)
		}
	}
	if (!negated && b.Len() == 0) || (negated && b.Len() == 128) {
		return nil, &ParseError{Kind: ErrEmptyClass, Pattern: t.pattern, Pos: startPos}
	}
	return &classExpr{set: b, negated: negated}, nil
}

// scanClassByte consumes one literal byte inside a class, resolving the
// escapes the dialect requires there (every metacharacter must be escaped
// inside a class).
func (t *tokenizer) scanClassByte() (byte, error) {
	pos := t.pos
	c := t.pattern[t.pos]
	if c == '\\' {
		t.pos++
		if t.eof() {
			return 0, &ParseError{Kind: ErrUnexpectedEnd, Pattern: t.pattern, Pos: pos, Message: "trailing backslash in class"}
		}
		e := t.pattern[t.pos]
		t.pos++
		switch e {
		case '.', '\\', '(', ')', '[', ']', '{', '}', '|', '*', '+', '-', '?', '^':
			return e, nil
		default:
			return 0, &ParseError{Kind: ErrUnknownEscape, Pattern: t.pattern, Pos: pos, Message: string(e)}
		}
	}
	if c >= 128 {
		return 0, &ParseError{Kind: ErrNonASCII, Pattern: t.pattern, Pos: pos}
	}
	t.pos++
	return c, nil
}
