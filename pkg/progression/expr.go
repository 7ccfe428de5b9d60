package progression

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Op is the operator joining the two bounds of an expression.
type Op int

const (
	OpRangeTo Op = iota // first..end
	OpUntil             // first until end, first..<end
	OpDownTo            // first downTo end
	OpBounds            // [min,max), >=min, ...
)

func (o Op) String() string {
	switch o {
	case OpRangeTo:
		return ".."
	case OpUntil:
		return "until"
	case OpDownTo:
		return "downTo"
	case OpBounds:
		return "bounds"
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// Expr is a parsed progression expression. Bounds are kept as int64 until
// Build narrows them to a concrete element kind.
type Expr struct {
	Source string
	Op     Op
	First  int64
	End    int64
	Bounds Bounds // only for OpBounds
	Step   int64  // 0 when no step clause was given
	// HasChar is set when any bound was written as a character literal.
	HasChar bool
}

// ParseExpr parses value and returns an Expr.
//
// Supported formats:
//   - A..B, A..<B, A until B, A downTo B
//   - [A,B], [A,B), (A,B], (A,B), with either side possibly empty
//   - =N, >N, >=N, <N, <=N
//
// Any form may be followed by "step S" with S > 0. A, B, N and S are sums of
// integer literals (decimal, 0x, 0o, 0b) and character literals such as 'c'
// or '\n', optionally parenthesized: "(1+2)..(10-1)", "'a'+2..'g'".
func ParseExpr(value string) (Expr, error) {
	toks, err := lex(value)
	if err != nil {
		return Expr{}, err
	}
	if len(toks) == 0 {
		return Expr{}, fmt.Errorf("empty expression")
	}
	p := &parser{toks: toks, src: value}
	e, err := p.expr()
	if err != nil {
		return Expr{}, err
	}
	e.Source = strings.TrimSpace(value)
	return e, nil
}

// Build narrows e to the element kind N and constructs the progression.
func Build[N Ordinal](e Expr) (Progression[N], error) {
	var p Progression[N]
	switch e.Op {
	case OpBounds:
		var err error
		if p, err = FromBounds[N](e.Bounds); err != nil {
			return Progression[N]{}, err
		}
	default:
		first, err := convert[N](e.First)
		if err != nil {
			return Progression[N]{}, fmt.Errorf("first: %w", err)
		}
		end, err := convert[N](e.End)
		if err != nil {
			return Progression[N]{}, fmt.Errorf("end: %w", err)
		}
		switch e.Op {
		case OpRangeTo:
			p = RangeTo(first, end)
		case OpUntil:
			p = Until(first, end)
		case OpDownTo:
			p = DownTo(first, end)
		default:
			return Progression[N]{}, fmt.Errorf("unknown operator %v", e.Op)
		}
	}
	if e.Step != 0 {
		return p.WithStep(e.Step)
	}
	return p, nil
}

type tokenKind int

const (
	tokInt tokenKind = iota
	tokChar
	tokWord
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	val  int64
	pos  int
}

func lex(s string) ([]token, error) {
	var toks []token
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r >= '0' && r <= '9':
			j := i
			for j < len(s) && (isAlnum(s[j]) || s[j] == '_') {
				j++
			}
			n, err := strconv.ParseInt(s[i:j], 0, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid integer %q at %d: %w", s[i:j], i, err)
			}
			toks = append(toks, token{kind: tokInt, text: s[i:j], val: n, pos: i})
			i = j
		case r == '\'':
			q, err := strconv.QuotedPrefix(s[i:])
			if err != nil {
				return nil, fmt.Errorf("invalid character literal at %d", i)
			}
			unq, err := strconv.Unquote(q)
			if err != nil {
				return nil, fmt.Errorf("invalid character literal %s: %w", q, err)
			}
			c, _ := utf8.DecodeRuneInString(unq)
			toks = append(toks, token{kind: tokChar, text: q, val: int64(c), pos: i})
			i += len(q)
		case unicode.IsLetter(r):
			j := i + size
			for j < len(s) {
				c, n := utf8.DecodeRuneInString(s[j:])
				if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
					break
				}
				j += n
			}
			toks = append(toks, token{kind: tokWord, text: s[i:j], pos: i})
			i = j
		case strings.HasPrefix(s[i:], "..<"):
			toks = append(toks, token{kind: tokPunct, text: "..<", pos: i})
			i += 3
		case strings.HasPrefix(s[i:], ".."):
			toks = append(toks, token{kind: tokPunct, text: "..", pos: i})
			i += 2
		case strings.HasPrefix(s[i:], ">="), strings.HasPrefix(s[i:], "<="):
			toks = append(toks, token{kind: tokPunct, text: s[i : i+2], pos: i})
			i += 2
		case strings.ContainsRune("()[],+-=<>", r):
			toks = append(toks, token{kind: tokPunct, text: string(r), pos: i})
			i += size
		default:
			return nil, fmt.Errorf("unexpected %q at %d", r, i)
		}
	}
	return toks, nil
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

type parser struct {
	toks    []token
	i       int
	src     string
	hasChar bool
}

func (p *parser) peek() (token, bool) {
	if p.i >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.i], true
}

func (p *parser) is(text string) bool {
	t, ok := p.peek()
	return ok && t.kind == tokPunct && t.text == text
}

func (p *parser) isWord(word string) bool {
	t, ok := p.peek()
	return ok && t.kind == tokWord && t.text == word
}

func (p *parser) errorf(format string, args ...any) error {
	if t, ok := p.peek(); ok {
		return fmt.Errorf("%s at %d in %q", fmt.Sprintf(format, args...), t.pos, p.src)
	}
	return fmt.Errorf("%s at end of %q", fmt.Sprintf(format, args...), p.src)
}

func (p *parser) expr() (Expr, error) {
	var e Expr
	var err error
	switch {
	case p.isInterval():
		e, err = p.interval()
	case p.is("="), p.is(">"), p.is(">="), p.is("<"), p.is("<="):
		e, err = p.comparison()
	default:
		e, err = p.binary()
	}
	if err != nil {
		return Expr{}, err
	}
	if p.isWord("step") {
		p.i++
		if e.Step, err = p.sum(); err != nil {
			return Expr{}, err
		}
		if e.Step <= 0 {
			return Expr{}, fmt.Errorf("%w: step must be positive, was %d", ErrInvalidStep, e.Step)
		}
	}
	if _, ok := p.peek(); ok {
		return Expr{}, p.errorf("unexpected trailing input")
	}
	e.HasChar = p.hasChar
	return e, nil
}

// isInterval reports whether the input starts with a bracket group holding
// a comma, which only interval notation has.
func (p *parser) isInterval() bool {
	if !p.is("[") && !p.is("(") {
		return false
	}
	depth := 0
	for _, t := range p.toks[p.i:] {
		if t.kind != tokPunct {
			continue
		}
		switch t.text {
		case "(", "[":
			depth++
		case ")", "]":
			depth--
			if depth == 0 {
				return false
			}
		case ",":
			if depth == 1 {
				return true
			}
		}
	}
	return false
}

func (p *parser) interval() (Expr, error) {
	open := p.toks[p.i].text
	p.i++
	b := Bounds{MinInclude: open == "["}
	if p.is(",") {
		if b.MinInclude {
			return Expr{}, p.errorf("infinite side must be open on left")
		}
		b.MinUnbounded = true
	} else {
		v, err := p.sum()
		if err != nil {
			return Expr{}, err
		}
		b.Min = v
	}
	if !p.is(",") {
		return Expr{}, p.errorf("expected ','")
	}
	p.i++
	closeInclusive := false
	if p.is(")") || p.is("]") {
		b.MaxUnbounded = true
	} else {
		v, err := p.sum()
		if err != nil {
			return Expr{}, err
		}
		b.Max = v
	}
	switch {
	case p.is("]"):
		closeInclusive = true
	case p.is(")"):
	default:
		return Expr{}, p.errorf("expected ')' or ']'")
	}
	p.i++
	if b.MaxUnbounded && closeInclusive {
		return Expr{}, fmt.Errorf("infinite side must be open on right: %s", p.src)
	}
	b.MaxInclude = closeInclusive
	return Expr{Op: OpBounds, Bounds: b}, nil
}

func (p *parser) comparison() (Expr, error) {
	op := p.toks[p.i].text
	p.i++
	n, err := p.sum()
	if err != nil {
		return Expr{}, err
	}
	var b Bounds
	switch op {
	case "=":
		b = NewClosedBounds(n, n)
	case ">":
		b = Bounds{Min: n, MaxUnbounded: true}
	case ">=":
		b = Bounds{Min: n, MinInclude: true, MaxUnbounded: true}
	case "<":
		b = Bounds{Max: n, MinUnbounded: true}
	case "<=":
		b = Bounds{Max: n, MaxInclude: true, MinUnbounded: true}
	}
	return Expr{Op: OpBounds, Bounds: b}, nil
}

func (p *parser) binary() (Expr, error) {
	first, err := p.sum()
	if err != nil {
		return Expr{}, err
	}
	var op Op
	switch {
	case p.is(".."):
		op = OpRangeTo
	case p.is("..<"), p.isWord("until"):
		op = OpUntil
	case p.isWord("downTo"):
		op = OpDownTo
	default:
		return Expr{}, p.errorf("expected '..', '..<', 'until' or 'downTo'")
	}
	p.i++
	end, err := p.sum()
	if err != nil {
		return Expr{}, err
	}
	return Expr{Op: op, First: first, End: end}, nil
}

func (p *parser) sum() (int64, error) {
	neg := false
	if p.is("-") || p.is("+") {
		neg = p.toks[p.i].text == "-"
		p.i++
	}
	acc, err := p.atom()
	if err != nil {
		return 0, err
	}
	if neg {
		if acc == minInt64 {
			return 0, p.errorf("integer overflow")
		}
		acc = -acc
	}
	for p.is("+") || p.is("-") {
		sub := p.toks[p.i].text == "-"
		p.i++
		v, err := p.atom()
		if err != nil {
			return 0, err
		}
		if sub {
			if v == minInt64 {
				return 0, p.errorf("integer overflow")
			}
			v = -v
		}
		if (v > 0 && acc > maxInt64-v) || (v < 0 && acc < minInt64-v) {
			return 0, p.errorf("integer overflow")
		}
		acc += v
	}
	return acc, nil
}

func (p *parser) atom() (int64, error) {
	t, ok := p.peek()
	if !ok {
		return 0, p.errorf("expected a value")
	}
	switch {
	case t.kind == tokInt:
		p.i++
		return t.val, nil
	case t.kind == tokChar:
		p.i++
		p.hasChar = true
		return t.val, nil
	case t.kind == tokPunct && t.text == "(":
		p.i++
		v, err := p.sum()
		if err != nil {
			return 0, err
		}
		if !p.is(")") {
			return 0, p.errorf("expected ')'")
		}
		p.i++
		return v, nil
	}
	return 0, p.errorf("unexpected %q", t.text)
}
