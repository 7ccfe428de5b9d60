package progression

import (
	"fmt"
	"strconv"
	"unsafe"
)

// Bounds is an integer interval written in interval or comparison notation,
// such as "[3,9)", "(,10]" or ">=5". Unbounded sides resolve to the limits of
// the element kind when the interval is turned into a progression.
type Bounds struct {
	Min          int64
	MinInclude   bool
	Max          int64
	MaxInclude   bool
	MinUnbounded bool // true means the left end is -inf
	MaxUnbounded bool // true means the right end is +inf
}

// NewClosedBounds returns [min, max].
func NewClosedBounds(min, max int64) Bounds {
	return Bounds{Min: min, MinInclude: true, Max: max, MaxInclude: true}
}

// IsNotEmpty reports whether at least one integer lies inside b.
//
// Rules:
//   - An unbounded side must be open.
//   - With both sides bounded, Min > Max is empty.
//   - Min == Max is non-empty only when both ends are inclusive.
//   - (N,N+1) is empty.
func (b Bounds) IsNotEmpty() bool {
	if b.MinUnbounded && b.MinInclude {
		return false
	}
	if b.MaxUnbounded && b.MaxInclude {
		return false
	}
	if b.MinUnbounded || b.MaxUnbounded {
		return true
	}
	switch {
	case b.Min > b.Max:
		return false
	case b.Min == b.Max:
		return b.MinInclude && b.MaxInclude
	case b.Max-b.Min == 1:
		return b.MinInclude || b.MaxInclude
	}
	return true
}

// Contains reports whether n lies inside b.
func (b Bounds) Contains(n int64) bool {
	if !b.IsNotEmpty() {
		return false
	}
	if lo, ok := b.Lowest(); ok && n < lo {
		return false
	}
	if hi, ok := b.Highest(); ok && n > hi {
		return false
	}
	return true
}

// Lowest returns the smallest integer inside b, and false when the left side
// is unbounded or the exclusive minimum is already the largest int64.
func (b Bounds) Lowest() (int64, bool) {
	if b.MinUnbounded {
		return 0, false
	}
	if b.MinInclude {
		return b.Min, true
	}
	if b.Min == maxInt64 {
		return 0, false
	}
	return b.Min + 1, true
}

// Highest returns the largest integer inside b, and false when the right side
// is unbounded or the exclusive maximum is already the smallest int64.
func (b Bounds) Highest() (int64, bool) {
	if b.MaxUnbounded {
		return 0, false
	}
	if b.MaxInclude {
		return b.Max, true
	}
	if b.Max == minInt64 {
		return 0, false
	}
	return b.Max - 1, true
}

// String returns the interval notation of b. Single values print as "N" and
// half-infinite intervals in operator form (">=N", "<N", ...).
func (b Bounds) String() string {
	if !b.MinUnbounded && !b.MaxUnbounded && b.Min == b.Max && b.MinInclude && b.MaxInclude {
		return strconv.FormatInt(b.Min, 10)
	}
	if b.MinUnbounded && !b.MaxUnbounded {
		if b.MaxInclude {
			return fmt.Sprintf("<=%d", b.Max)
		}
		return fmt.Sprintf("<%d", b.Max)
	}
	if b.MaxUnbounded && !b.MinUnbounded {
		if b.MinInclude {
			return fmt.Sprintf(">=%d", b.Min)
		}
		return fmt.Sprintf(">%d", b.Min)
	}
	left, right := "(", ")"
	if b.MinInclude {
		left = "["
	}
	if b.MaxInclude {
		right = "]"
	}
	var lo, hi string
	if !b.MinUnbounded {
		lo = strconv.FormatInt(b.Min, 10)
	}
	if !b.MaxUnbounded {
		hi = strconv.FormatInt(b.Max, 10)
	}
	return left + lo + "," + hi + right
}

const (
	maxInt64 = int64(^uint64(0) >> 1)
	minInt64 = -maxInt64 - 1
)

// limits returns the smallest and largest value of N.
func limits[N Ordinal]() (lo, hi int64) {
	var zero N
	ones := ^zero
	if ones > zero {
		return 0, int64(ones)
	}
	bits := uint(unsafe.Sizeof(zero)) * 8
	hi = int64(uint64(1)<<(bits-1) - 1)
	return -hi - 1, hi
}

// empty returns the canonical empty progression 1..0.
func empty[N Ordinal]() Progression[N] {
	return Progression[N]{first: 1, last: 0, step: 1}
}

// convert narrows v to N, failing with ErrOutOfRange when it does not fit.
func convert[N Ordinal](v int64) (N, error) {
	if !fits[N](v) {
		lo, hi := limits[N]()
		return 0, fmt.Errorf("%w: %d is outside [%d, %d]", ErrOutOfRange, v, lo, hi)
	}
	return N(v), nil
}

// FromBounds returns the ascending step 1 progression over the integers of b.
// Unbounded sides take the limits of N. Finite bounds outside N fail with
// ErrOutOfRange; an interval without integers gives an empty progression.
func FromBounds[N Ordinal](b Bounds) (Progression[N], error) {
	klo, khi := limits[N]()
	if !b.MinUnbounded {
		if _, err := convert[N](b.Min); err != nil {
			return Progression[N]{}, fmt.Errorf("lower bound: %w", err)
		}
	}
	if !b.MaxUnbounded {
		if _, err := convert[N](b.Max); err != nil {
			return Progression[N]{}, fmt.Errorf("upper bound: %w", err)
		}
	}
	if !b.IsNotEmpty() {
		return empty[N](), nil
	}
	lo, ok := b.Lowest()
	if !ok {
		if !b.MinUnbounded {
			return empty[N](), nil
		}
		lo = klo
	}
	hi, ok := b.Highest()
	if !ok {
		if !b.MaxUnbounded {
			return empty[N](), nil
		}
		hi = khi
	}
	if lo > khi || hi < klo || lo > hi {
		return empty[N](), nil
	}
	return New(N(lo), N(hi), 1)
}
