// Package verify checks that two progressions, or a progression and an
// expected element list, behave identically: same bounds, same elements and
// the same iterator protocol including exhaustion.
package verify

import (
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/vipcxj/progression/pkg/progression"
)

// Iterator is the cursor protocol walked in lock-step by CompareIterators.
type Iterator[N any] interface {
	HasNext() bool
	Next() (N, error)
}

// SliceIterator iterates over a fixed list of elements and fails with
// progression.ErrIteratorExhausted past its end.
type SliceIterator[N any] struct {
	items []N
	pos   int
}

// FromSlice returns an iterator over items.
func FromSlice[N any](items []N) *SliceIterator[N] {
	return &SliceIterator[N]{items: items}
}

func (it *SliceIterator[N]) HasNext() bool {
	return it.pos < len(it.items)
}

func (it *SliceIterator[N]) Next() (N, error) {
	if it.pos >= len(it.items) {
		var zero N
		return zero, progression.ErrIteratorExhausted
	}
	v := it.items[it.pos]
	it.pos++
	return v, nil
}

// Compare reports every difference between want and got. It returns nil when
// they are equivalent.
func Compare[N progression.Ordinal](want, got progression.Progression[N]) error {
	var errs []error
	errs = append(errs, compareFields(got, want.First(), want.Last(), want.Step())...)
	errs = append(errs, compareElements(want.Collect(), got)...)
	if err := CompareIterators[N](want.Iterator(), got.Iterator()); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Expect checks got against explicitly expected bounds, step and elements.
func Expect[N progression.Ordinal](got progression.Progression[N], first, last N, step int64, elements []N) error {
	var errs []error
	errs = append(errs, compareFields(got, first, last, step)...)
	errs = append(errs, compareElements(elements, got)...)
	if err := CompareIterators[N](FromSlice(elements), got.Iterator()); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func compareFields[N progression.Ordinal](got progression.Progression[N], first, last N, step int64) []error {
	var errs []error
	if got.First() != first {
		errs = append(errs, fmt.Errorf("first: want %d, got %d", first, got.First()))
	}
	if got.Last() != last {
		errs = append(errs, fmt.Errorf("last: want %d, got %d", last, got.Last()))
	}
	if got.Step() != step {
		errs = append(errs, fmt.Errorf("step: want %d, got %d", step, got.Step()))
	}
	return errs
}

func compareElements[N progression.Ordinal](want []N, got progression.Progression[N]) []error {
	if len(want) == 0 {
		if n := got.Count(); n != 0 || !got.IsEmpty() {
			return []error{fmt.Errorf("elements: want none, got %d", n)}
		}
		for range got.All() {
			return []error{fmt.Errorf("elements: want none, iteration produced a value")}
		}
		return nil
	}
	if diff := cmp.Diff(want, got.Collect()); diff != "" {
		return []error{fmt.Errorf("elements mismatch (-want +got):\n%s", diff)}
	}
	return nil
}

// CompareIterators walks want and got in lock-step. At every position HasNext
// and Next must agree; once want is exhausted both must fail Next with the
// same kind of error.
func CompareIterators[N comparable](want, got Iterator[N]) error {
	for i := 0; ; i++ {
		wantHas, gotHas := want.HasNext(), got.HasNext()
		if wantHas != gotHas {
			return fmt.Errorf("iterator: HasNext at %d: want %t, got %t", i, wantHas, gotHas)
		}
		if !wantHas {
			break
		}
		wv, werr := want.Next()
		gv, gerr := got.Next()
		if werr != nil || gerr != nil {
			return fmt.Errorf("iterator: Next at %d failed: want err %v, got err %v", i, werr, gerr)
		}
		if wv != gv {
			return fmt.Errorf("iterator: Next at %d: want %v, got %v", i, wv, gv)
		}
	}
	_, werr := want.Next()
	_, gerr := got.Next()
	if werr == nil || gerr == nil {
		return fmt.Errorf("iterator: Next after exhaustion: want err %v, got err %v", werr, gerr)
	}
	wantExhausted := errors.Is(werr, progression.ErrIteratorExhausted)
	if wantExhausted != errors.Is(gerr, progression.ErrIteratorExhausted) ||
		!wantExhausted && !errors.Is(werr, gerr) && !errors.Is(gerr, werr) {
		return fmt.Errorf("iterator: exhaustion error kind differs: want %v, got %v", werr, gerr)
	}
	return nil
}
