// Package eval evaluates parsed expressions with a runtime-selected element
// kind and exposes the result without type parameters.
package eval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vipcxj/progression/pkg/progression"
	"github.com/vipcxj/progression/pkg/progression/verify"
)

// ErrTooLarge is returned when materializing more elements than allowed.
var ErrTooLarge = errors.New("too many elements")

// Summary describes a progression without its elements.
type Summary struct {
	Expression  string `json:"expression" yaml:"expression"`
	Kind        string `json:"kind" yaml:"kind"`
	Progression string `json:"progression" yaml:"progression"`
	First       any    `json:"first" yaml:"first"`
	Last        any    `json:"last" yaml:"last"`
	Step        int64  `json:"step" yaml:"step"`
	Count       uint64 `json:"count" yaml:"count"`
	Empty       bool   `json:"empty" yaml:"empty"`
}

// Text renders s as "key: value" lines.
func (s Summary) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "expression: %s\n", s.Expression)
	fmt.Fprintf(&b, "kind: %s\n", s.Kind)
	fmt.Fprintf(&b, "progression: %s\n", s.Progression)
	fmt.Fprintf(&b, "first: %v\n", s.First)
	fmt.Fprintf(&b, "last: %v\n", s.Last)
	fmt.Fprintf(&b, "step: %d\n", s.Step)
	fmt.Fprintf(&b, "count: %d\n", s.Count)
	fmt.Fprintf(&b, "empty: %t", s.Empty)
	return b.String()
}

// View is a progression of any kind.
type View interface {
	Kind() Kind
	Summary() Summary
	// Values returns the elements as int64 for integer kinds and as
	// one-character strings for chars. limit 0 means unlimited.
	Values(limit uint64) ([]any, error)
	// Strings returns the elements in their textual form.
	Strings(limit uint64) ([]string, error)
	// Compare runs the equivalence check against other, which must have the
	// same kind.
	Compare(other View) error
}

// Open builds e with kind k, resolving KindAuto from e. reversed flips the
// iteration order.
func Open(e progression.Expr, k Kind, reversed bool) (View, error) {
	switch k.Resolve(e) {
	case KindInt:
		return open[int](e, KindInt, reversed, intElem[int])
	case KindInt8:
		return open[int8](e, KindInt8, reversed, intElem[int8])
	case KindInt16:
		return open[int16](e, KindInt16, reversed, intElem[int16])
	case KindInt32:
		return open[int32](e, KindInt32, reversed, intElem[int32])
	case KindInt64:
		return open[int64](e, KindInt64, reversed, intElem[int64])
	case KindChar:
		v, err := open[rune](e, KindChar, reversed, charElem)
		if err != nil {
			return nil, err
		}
		if err := checkRunes(v.p); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, fmt.Errorf("unsupported kind %v", k)
}

type element[N progression.Ordinal] struct {
	value func(N) any
	text  func(N) string
	// literal renders an element inside an expression, e.g. 'c'.
	literal func(N) string
}

func intElem[N progression.Ordinal]() element[N] {
	text := func(v N) string { return strconv.FormatInt(int64(v), 10) }
	return element[N]{
		value:   func(v N) any { return int64(v) },
		text:    text,
		literal: text,
	}
}

func charElem() element[rune] {
	return element[rune]{
		value:   func(r rune) any { return string(r) },
		text:    func(r rune) string { return string(r) },
		literal: strconv.QuoteRune,
	}
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

func checkRunes(p progression.Progression[rune]) error {
	if p.IsEmpty() {
		return nil
	}
	lo, hi := p.First(), p.Last()
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 || hi > utf8.MaxRune {
		return fmt.Errorf("%w: %d..%d is not a range of code points", progression.ErrOutOfRange, lo, hi)
	}
	// surrogates have no string form
	if lo <= surrogateMax && hi >= surrogateMin {
		return fmt.Errorf("%w: %d..%d overlaps the surrogate block %#x..%#x",
			progression.ErrOutOfRange, lo, hi, surrogateMin, surrogateMax)
	}
	return nil
}

type view[N progression.Ordinal] struct {
	kind Kind
	expr progression.Expr
	p    progression.Progression[N]
	elem element[N]
}

func open[N progression.Ordinal](e progression.Expr, k Kind, reversed bool, elem func() element[N]) (*view[N], error) {
	p, err := progression.Build[N](e)
	if err != nil {
		return nil, err
	}
	if reversed {
		p = p.Reversed()
	}
	return &view[N]{kind: k, expr: e, p: p, elem: elem()}, nil
}

func (v *view[N]) Kind() Kind { return v.kind }

func (v *view[N]) Summary() Summary {
	return Summary{
		Expression:  v.expr.Source,
		Kind:        v.kind.String(),
		Progression: v.p.Format(v.elem.literal),
		First:       v.elem.value(v.p.First()),
		Last:        v.elem.value(v.p.Last()),
		Step:        v.p.Step(),
		Count:       v.p.Count(),
		Empty:       v.p.IsEmpty(),
	}
}

func (v *view[N]) checkLimit(limit uint64) error {
	n := v.p.Count()
	if n == 0 && !v.p.IsEmpty() {
		return fmt.Errorf("%w: the progression covers the whole int64 range", ErrTooLarge)
	}
	if limit > 0 && n > limit {
		return fmt.Errorf("%w: %d elements exceed the limit of %d", ErrTooLarge, n, limit)
	}
	return nil
}

func (v *view[N]) Values(limit uint64) ([]any, error) {
	if err := v.checkLimit(limit); err != nil {
		return nil, err
	}
	out := make([]any, 0, min(v.p.Count(), 4096))
	for e := range v.p.All() {
		out = append(out, v.elem.value(e))
	}
	return out, nil
}

func (v *view[N]) Strings(limit uint64) ([]string, error) {
	if err := v.checkLimit(limit); err != nil {
		return nil, err
	}
	out := make([]string, 0, min(v.p.Count(), 4096))
	for e := range v.p.All() {
		out = append(out, v.elem.text(e))
	}
	return out, nil
}

func (v *view[N]) Compare(other View) error {
	o, ok := other.(*view[N])
	if !ok {
		return fmt.Errorf("cannot compare %v with %v", v.kind, other.Kind())
	}
	return verify.Compare(v.p, o.p)
}
