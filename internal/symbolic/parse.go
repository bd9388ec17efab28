package symbolic

import (
	"errors"
	"fmt"
	"math/big"
	"unicode"
	"unicode/utf8"
)

// ErrParse reports a malformed expression source. Wrapped errors carry the
// byte offset and the offending token.
var ErrParse = errors.New("malformed expression")

// Parse evaluates the arithmetic grammar
//
//	expr   := term (('+' | '-') term)*
//	term   := unary (('*' | '/') unary)*
//	unary  := '-' unary | power
//	power  := atom ('^' ['-'] integer)?
//	atom   := number | symbol | '(' expr ')'
//
// over rational number literals (including decimals) and symbol names
// (unicode letters, then letters, digits or underscores). Division by a
// syntactically zero divisor is an error, not a panic.
func Parse(src string) (*Expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, tok.text, tok.pos)
	}
	return e, nil
}

// MustParse is Parse for trusted, hand-written sources; it panics on error.
func MustParse(src string) *Expr {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return e
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNum
	tokSym
	tokOp
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r >= '0' && r <= '9':
			start := i
			seenDot := false
			for i < len(src) {
				c := src[i]
				if c == '.' && !seenDot {
					seenDot = true
					i++
					continue
				}
				if c < '0' || c > '9' {
					break
				}
				i++
			}
			toks = append(toks, token{kind: tokNum, text: src[start:i], pos: start})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(src) {
				r, size := utf8.DecodeRuneInString(src[i:])
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
					break
				}
				i += size
			}
			toks = append(toks, token{kind: tokSym, text: src[start:i], pos: start})
		case r == '+' || r == '-' || r == '*' || r == '/' || r == '^' || r == '(' || r == ')':
			toks = append(toks, token{kind: tokOp, text: string(r), pos: i})
			i += size
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrParse, r, i)
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) acceptOp(op string) bool {
	if t := p.peek(); t.kind == tokOp && t.text == op {
		p.pos++
		return true
	}
	return false
}

func (p *parser) parseExpr() (*Expr, error) {
	e, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.acceptOp("+"):
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			e = e.Add(rhs)
		case p.acceptOp("-"):
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			e = e.Sub(rhs)
		default:
			return e, nil
		}
	}
}

func (p *parser) parseTerm() (*Expr, error) {
	e, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.acceptOp("*"):
			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			e = e.Mul(rhs)
		case p.acceptOp("/"):
			at := p.peek().pos
			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			if rhs.IsZero() {
				return nil, fmt.Errorf("%w: division by zero at offset %d", ErrParse, at)
			}
			e = e.Div(rhs)
		default:
			return e, nil
		}
	}
}

func (p *parser) parseUnary() (*Expr, error) {
	if p.acceptOp("-") {
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return e.Neg(), nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (*Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if !p.acceptOp("^") {
		return base, nil
	}

	neg := p.acceptOp("-")
	t := p.next()
	if t.kind != tokNum {
		return nil, fmt.Errorf("%w: exponent must be an integer, got %q at offset %d", ErrParse, t.text, t.pos)
	}
	n, ok := new(big.Int).SetString(t.text, 10)
	if !ok || !n.IsInt64() {
		return nil, fmt.Errorf("%w: bad exponent %q at offset %d", ErrParse, t.text, t.pos)
	}
	exp := int(n.Int64())
	if neg {
		exp = -exp
	}
	if exp < 0 && base.IsZero() {
		return nil, fmt.Errorf("%w: zero raised to negative power at offset %d", ErrParse, t.pos)
	}
	return base.Pow(exp), nil
}

func (p *parser) parseAtom() (*Expr, error) {
	t := p.next()
	switch {
	case t.kind == tokNum:
		r, ok := new(big.Rat).SetString(t.text)
		if !ok {
			return nil, fmt.Errorf("%w: bad number %q at offset %d", ErrParse, t.text, t.pos)
		}
		return newExpr(polyNum(r), polyOne()), nil
	case t.kind == tokSym:
		return Sym(t.text), nil
	case t.kind == tokOp && t.text == "(":
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.acceptOp(")") {
			bad := p.peek()
			return nil, fmt.Errorf("%w: expected ')' at offset %d", ErrParse, bad.pos)
		}
		return e, nil
	case t.kind == tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of input", ErrParse)
	default:
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, t.text, t.pos)
	}
}
