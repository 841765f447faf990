package restx

import (
	"strconv"

	"github.com/coregx/logexa/ast"
)

// Parse parses pattern in the restricted dialect and returns its AST, or a
// *ParseError. Grammar, loosest to tightest binding:
//
//	regex      := union
//	union      := concat ('|' concat)*
//	concat     := repetition+
//	repetition := atom ('*' | '+' | '?' | '{' N (',' M)? '}')?
//	atom       := literal | '.' | class | '(' union ')'
func Parse(pattern string) (*ast.Node, error) {
	p := &parser{toks: newTokenizer(pattern), pattern: pattern}
	if err := p.advance(); err != nil {
		return nil, err
	}
	node, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, &ParseError{Kind: ErrUnbalanced, Pattern: pattern, Pos: p.cur.pos, Message: "unexpected trailing input"}
	}
	return node, nil
}

type parser struct {
	toks    *tokenizer
	pattern string
	cur     token
}

func (p *parser) advance() error {
	t, err := p.toks.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

// parseUnion parses one or more '|'-separated concat branches. Each
// branch must be non-empty: "a||b" and leading/trailing '|' are rejected
// per the dialect's EmptyAlt rule.
func (p *parser) parseUnion() (*ast.Node, error) {
	first, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	branches := []*ast.Node{first}
	for p.cur.kind == tokPipe {
		pos := p.cur.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.atConcatEnd() {
			return nil, &ParseError{Kind: ErrEmptyAlt, Pattern: p.pattern, Pos: pos}
		}
		branch, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	if len(branches) == 1 {
		return branches[0], nil
	}
	return ast.NewAlt(branches...), nil
}

// atConcatEnd reports whether the current token cannot start an atom,
// meaning the concatenation (and therefore the enclosing alternation
// branch) is empty.
func (p *parser) atConcatEnd() bool {
	switch p.cur.kind {
	case tokEOF, tokPipe, tokRParen:
		return true
	default:
		return false
	}
}

func (p *parser) parseConcat() (*ast.Node, error) {
	if p.atConcatEnd() {
		return nil, &ParseError{Kind: ErrEmptyAlt, Pattern: p.pattern, Pos: p.cur.pos}
	}
	var parts []*ast.Node
	for !p.atConcatEnd() {
		part, err := p.parseRepetition()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return ast.NewConcat(parts...), nil
}

func (p *parser) parseRepetition() (*ast.Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	switch p.cur.kind {
	case tokStar:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewRepeat(atom, 0, ast.Unbounded), nil
	case tokPlus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewRepeat(atom, 1, ast.Unbounded), nil
	case tokQuestion:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewRepeat(atom, 0, 1), nil
	case tokLBrace:
		return p.parseCountedRepeat(atom)
	default:
		return atom, nil
	}
}

// parseCountedRepeat parses `{N}` or `{N,M}`. The open-ended `{N,}` form
// is not part of the dialect, so a missing M is an error here, not
// Unbounded. p.cur is the '{' token on entry.
func (p *parser) parseCountedRepeat(atom *ast.Node) (*ast.Node, error) {
	bracePos := p.cur.pos
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.parseInt(bracePos)
	if err != nil {
		return nil, err
	}
	m := n
	if p.curIsLiteral(',') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		m, err = p.parseInt(bracePos)
		if err != nil {
			return nil, err
		}
	}
	if !p.curIsLiteral('}') {
		return nil, &ParseError{Kind: ErrBadRepeat, Pattern: p.pattern, Pos: bracePos, Message: "expected '}'"}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if m < n {
		return nil, &ParseError{Kind: ErrBadRepeat, Pattern: p.pattern, Pos: bracePos, Message: "M < N"}
	}
	return ast.NewRepeat(atom, n, m), nil
}

// curIsLiteral reports whether the current token is the literal byte b.
// The tokenizer treats ',' and '}' as plain literal bytes outside of
// bracket expressions, since they have no special meaning except inside a
// `{N,M}` quantifier, which the parser itself disambiguates by context.
func (p *parser) curIsLiteral(b byte) bool {
	return p.cur.kind == tokLiteral && p.cur.literal == b
}

func (p *parser) parseInt(bracePos int) (int, error) {
	start := p.toks.pos - 1 // position of the byte already consumed into p.cur
	if p.cur.kind != tokLiteral || p.cur.literal < '0' || p.cur.literal > '9' {
		return 0, &ParseError{Kind: ErrBadRepeat, Pattern: p.pattern, Pos: bracePos, Message: "expected digit"}
	}
	var digits []byte
	for p.cur.kind == tokLiteral && p.cur.literal >= '0' && p.cur.literal <= '9' {
		digits = append(digits, p.cur.literal)
		if err := p.advance(); err != nil {
			return 0, err
		}
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0, &ParseError{Kind: ErrBadRepeat, Pattern: p.pattern, Pos: start, Message: "invalid integer"}
	}
	return n, nil
}

func (p *parser) parseAtom() (*ast.Node, error) {
	switch p.cur.kind {
	case tokDot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewAnyByte(), nil
	case tokLiteral:
		b := p.cur.literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewLiteral(b), nil
	case tokClass:
		c := p.cur.class
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewCharClass(c.set, c.negated), nil
	case tokLParen:
		pos := p.cur.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, &ParseError{Kind: ErrUnbalanced, Pattern: p.pattern, Pos: pos, Message: "missing ')'"}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewGroup(inner), nil
	case tokRParen:
		return nil, &ParseError{Kind: ErrUnbalanced, Pattern: p.pattern, Pos: p.cur.pos, Message: "unmatched ')'"}
	default:
		return nil, &ParseError{Kind: ErrUnexpectedEnd, Pattern: p.pattern, Pos: p.cur.pos}
	}
}
