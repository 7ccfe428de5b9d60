package progression

import "golang.org/x/exp/constraints"

// Ordinal restricts progression elements to integer kinds whose every value
// is representable as an int64. rune (int32) is the character kind.
//
// The ~ prefix lets named types built on these kinds satisfy the constraint.
type Ordinal interface {
	constraints.Signed | ~uint8 | ~uint16 | ~uint32
}

// mod returns a non-negative remainder of a divided by b (b > 0).
func mod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// diffMod returns (a - b) mod c without computing a - b.
func diffMod(a, b, c int64) int64 {
	return mod(mod(a, c)-mod(b, c), c)
}

// lastElement returns the last element of the progression starting at first
// that does not step beyond end.
func lastElement(first, end, step int64) int64 {
	switch {
	case step > 0:
		if first >= end {
			return end
		}
		return end - diffMod(end, first, step)
	default:
		if first <= end {
			return end
		}
		return end + diffMod(first, end, -step)
	}
}

// distance returns |b - a| without overflow.
func distance(a, b int64) uint64 {
	if b >= a {
		return uint64(b) - uint64(a)
	}
	return uint64(a) - uint64(b)
}

// fits reports whether v survives a round trip through N.
func fits[N Ordinal](v int64) bool {
	return int64(N(v)) == v
}
