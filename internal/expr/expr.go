// Package expr evaluates the restricted arithmetic used by assignments and
// output templates: numeric literals, #name references, + - × ÷ (with the
// ASCII * and / spellings), parentheses, unary sign, and the constants π and
// e. The namespace is closed; nothing outside the supplied Scope resolves.
package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode"
)

// Scope resolves a #name reference to a numeric value.
type Scope func(name string) (float64, bool)

var (
	ErrSyntax     = errors.New("malformed expression")
	ErrUnknownRef = errors.New("unknown reference")
	ErrDivByZero  = errors.New("division by zero")
)

// Eval evaluates src against scope. A nil scope resolves nothing.
func Eval(src string, scope Scope) (float64, error) {
	p := &parser{src: []rune(src), scope: scope}
	v, err := p.sum()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if !p.eof() {
		return 0, fmt.Errorf("%w: unexpected %q", ErrSyntax, p.src[p.pos])
	}
	return v, nil
}

type parser struct {
	src   []rune
	pos   int
	scope Scope
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// sum := product { (+|-) product }
func (p *parser) sum() (float64, error) {
	v, err := p.product()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			r, err := p.product()
			if err != nil {
				return 0, err
			}
			v += r
		case '-':
			p.pos++
			r, err := p.product()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return v, nil
		}
	}
}

// product := unary { (*|/|×|÷) unary }
func (p *parser) product() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '*', '×':
			p.pos++
			r, err := p.unary()
			if err != nil {
				return 0, err
			}
			v *= r
		case '/', '÷':
			p.pos++
			r, err := p.unary()
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, ErrDivByZero
			}
			v /= r
		default:
			return v, nil
		}
	}
}

// unary := [-|+] primary
func (p *parser) unary() (float64, error) {
	p.skipSpace()
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.unary()
		return -v, err
	case '+':
		p.pos++
		return p.unary()
	}
	return p.primary()
}

// primary := number | '(' sum ')' | '#' ident | constant
func (p *parser) primary() (float64, error) {
	p.skipSpace()
	if p.eof() {
		return 0, fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}
	c := p.peek()
	switch {
	case c >= '0' && c <= '9' || c == '.':
		return p.number()
	case c == '(':
		p.pos++
		v, err := p.sum()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return 0, fmt.Errorf("%w: missing )", ErrSyntax)
		}
		p.pos++
		return v, nil
	case c == '#':
		p.pos++
		name := p.ident()
		if name == "" {
			return 0, fmt.Errorf("%w: # without a name", ErrSyntax)
		}
		if p.scope != nil {
			if v, ok := p.scope(name); ok {
				return v, nil
			}
		}
		return 0, fmt.Errorf("%w: #%s", ErrUnknownRef, name)
	case isIdentRune(c):
		name := p.ident()
		if v, ok := constants[name]; ok {
			return v, nil
		}
		return 0, fmt.Errorf("%w: %s", ErrUnknownRef, name)
	}
	return 0, fmt.Errorf("%w: unexpected %q", ErrSyntax, c)
}

var constants = map[string]float64{
	"π": math.Pi,
	"e": math.E,
}

func (p *parser) number() (float64, error) {
	start := p.pos
	for !p.eof() && (p.src[p.pos] >= '0' && p.src[p.pos] <= '9' || p.src[p.pos] == '.') {
		p.pos++
	}
	v, err := strconv.ParseFloat(string(p.src[start:p.pos]), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrSyntax, string(p.src[start:p.pos]))
	}
	return v, nil
}

func (p *parser) ident() string {
	start := p.pos
	for !p.eof() && isIdentRune(p.src[p.pos]) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
