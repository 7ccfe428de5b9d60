// Package progression implements immutable arithmetic progressions over
// integer and character kinds, and forward-only iterators over them.
package progression

import (
	"fmt"
	"iter"
	"math"
	"strconv"
)

// Progression is an arithmetic sequence described by its first element, its
// last element and a non-zero step. The zero value is not a valid progression;
// use New, RangeTo, DownTo or Until.
//
// A progression is empty when step > 0 and first > last, or step < 0 and
// first < last. Otherwise last - first is a multiple of step.
type Progression[N Ordinal] struct {
	first N
	last  N
	step  int64
}

// New returns the progression that starts at first and advances by step
// while not passing end. The resulting Last is the element closest to end
// that is reachable from first, so New(1, 10, 4) yields 1, 5, 9.
//
// A step of zero returns ErrInvalidStep. Bounds on the wrong side of each
// other for the step direction produce an empty progression, not an error.
func New[N Ordinal](first, end N, step int64) (Progression[N], error) {
	if step == 0 {
		return Progression[N]{}, fmt.Errorf("%w: step must be non-zero", ErrInvalidStep)
	}
	if step == math.MinInt64 {
		return Progression[N]{}, fmt.Errorf("%w: step must be greater than %d", ErrInvalidStep, int64(math.MinInt64))
	}
	return Progression[N]{
		first: first,
		last:  N(lastElement(int64(first), int64(end), step)),
		step:  step,
	}, nil
}

func mustNew[N Ordinal](first, end N, step int64) Progression[N] {
	p, err := New(first, end, step)
	if err != nil {
		panic(err)
	}
	return p
}

// RangeTo returns first..end with step 1.
func RangeTo[N Ordinal](first, end N) Progression[N] {
	return mustNew(first, end, 1)
}

// DownTo returns the descending progression first, first-1, ..., end.
func DownTo[N Ordinal](first, end N) Progression[N] {
	return mustNew(first, end, -1)
}

// Until returns the half-open progression [first, end) with step 1.
func Until[N Ordinal](first, end N) Progression[N] {
	prev := end - 1
	if prev > end {
		// end is the smallest value of N, nothing precedes it.
		return empty[N]()
	}
	return mustNew(first, prev, 1)
}

// First returns the first element produced by the progression.
func (p Progression[N]) First() N { return p.first }

// Last returns the last element produced by the progression.
func (p Progression[N]) Last() N { return p.last }

// Step returns the increment between consecutive elements.
func (p Progression[N]) Step() int64 { return p.step }

// IsEmpty reports whether the progression produces no elements.
func (p Progression[N]) IsEmpty() bool {
	if p.step > 0 {
		return p.first > p.last
	}
	return p.first < p.last
}

// Count returns the number of elements. The only count that does not fit is
// the 2^64 elements of the whole int64 range with step 1, which wraps to 0.
func (p Progression[N]) Count() uint64 {
	if p.IsEmpty() {
		return 0
	}
	step := p.step
	if step < 0 {
		step = -step
	}
	return distance(int64(p.first), int64(p.last))/uint64(step) + 1
}

// Contains reports whether v is one of the elements.
func (p Progression[N]) Contains(v N) bool {
	if p.IsEmpty() {
		return false
	}
	lo, hi := p.first, p.last
	if p.step < 0 {
		lo, hi = hi, lo
	}
	if v < lo || v > hi {
		return false
	}
	step := p.step
	if step < 0 {
		step = -step
	}
	return distance(int64(p.first), int64(v))%uint64(step) == 0
}

// WithStep returns a progression with the same first element and direction
// whose elements are step apart. step must be positive; the sign is taken
// from p. Last is normalized again, so RangeTo(1, 10).WithStep(4) ends at 9.
func (p Progression[N]) WithStep(step int64) (Progression[N], error) {
	if step <= 0 {
		return Progression[N]{}, fmt.Errorf("%w: step must be positive, was %d", ErrInvalidStep, step)
	}
	if p.step < 0 {
		step = -step
	}
	return New(p.first, p.last, step)
}

// Reversed returns the progression producing the same elements in reverse order.
func (p Progression[N]) Reversed() Progression[N] {
	return mustNew(p.last, p.first, -p.step)
}

// Equal reports whether both progressions are empty or have identical
// first, last and step.
func (p Progression[N]) Equal(other Progression[N]) bool {
	if p.IsEmpty() && other.IsEmpty() {
		return true
	}
	return p.first == other.first && p.last == other.last && p.step == other.step
}

// Iterator returns a new cursor positioned on the first element.
func (p Progression[N]) Iterator() *Iterator[N] {
	return &Iterator[N]{
		next:    p.first,
		last:    p.last,
		step:    p.step,
		hasNext: !p.IsEmpty(),
	}
}

// All returns the elements as a range-over-func sequence.
func (p Progression[N]) All() iter.Seq[N] {
	return func(yield func(N) bool) {
		it := p.Iterator()
		for it.HasNext() {
			v, _ := it.Next()
			if !yield(v) {
				return
			}
		}
	}
}

// Collect materializes every element in order.
func (p Progression[N]) Collect() []N {
	out := make([]N, 0, min(p.Count(), 1024))
	it := p.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		out = append(out, v)
	}
	return out
}

// String formats the progression as "first..last step s" or
// "first downTo last step s".
func (p Progression[N]) String() string {
	return p.Format(func(v N) string { return strconv.FormatInt(int64(v), 10) })
}

// Format is String with a custom element formatter.
func (p Progression[N]) Format(elem func(N) string) string {
	if p.step > 0 {
		return fmt.Sprintf("%s..%s step %d", elem(p.first), elem(p.last), p.step)
	}
	return fmt.Sprintf("%s downTo %s step %d", elem(p.first), elem(p.last), -p.step)
}
