package progression

// Iterator is a single-pass cursor over the elements of a Progression.
// It is not safe for concurrent use; obtain one per goroutine from
// Progression.Iterator.
type Iterator[N Ordinal] struct {
	next    N
	last    N
	step    int64
	hasNext bool
}

// HasNext reports whether Next will produce another element.
func (it *Iterator[N]) HasNext() bool {
	return it.hasNext
}

// Next returns the current element and advances the cursor. Once the last
// element has been returned every further call fails with ErrIteratorExhausted.
func (it *Iterator[N]) Next() (N, error) {
	if !it.hasNext {
		var zero N
		return zero, ErrIteratorExhausted
	}
	v := it.next
	if v == it.last {
		it.hasNext = false
	} else {
		it.next = N(int64(v) + it.step)
	}
	return v, nil
}
