package progression

import (
	"errors"
	"math"
	"testing"
)

func TestBounds_IsNotEmpty_DirectCases(t *testing.T) {
	cases := []struct {
		name string
		b    Bounds
		exp  bool
	}{
		{"finite_inclusive", Bounds{Min: 1, MinInclude: true, Max: 3, MaxInclude: true}, true},
		{"min_gt_max", Bounds{Min: 5, MinInclude: true, Max: 4, MaxInclude: true}, false},
		{"single_point_both_inclusive", Bounds{Min: 7, MinInclude: true, Max: 7, MaxInclude: true}, true},
		{"single_point_one_exclusive", Bounds{Min: 7, MinInclude: true, Max: 7}, false},
		{"adjacent_both_exclusive", Bounds{Min: 7, Max: 8}, false},
		{"adjacent_one_inclusive", Bounds{Min: 7, Max: 8, MaxInclude: true}, true},
		{"min_infinite_but_inclusive", Bounds{MinInclude: true, MinUnbounded: true, Max: 10, MaxInclude: true}, false},
		{"max_infinite_but_inclusive", Bounds{Min: -10, MinInclude: true, MaxInclude: true, MaxUnbounded: true}, false},
		{"infinite_open", Bounds{MinUnbounded: true, MaxUnbounded: true}, true},
	}

	for _, tc := range cases {
		if got := tc.b.IsNotEmpty(); got != tc.exp {
			t.Fatalf("%s: IsNotEmpty() = %v, want %v (bounds=%+v)", tc.name, got, tc.exp, tc.b)
		}
	}
}

func TestBounds_Contains_DirectCases(t *testing.T) {
	cases := []struct {
		name string
		b    Bounds
		val  int64
		exp  bool
	}{
		{"within_inclusive", NewClosedBounds(1, 3), 1, true},
		{"exclusive_left", Bounds{Min: 1, Max: 3, MaxInclude: true}, 1, false},
		{"exclusive_right", Bounds{Min: 1, MinInclude: true, Max: 3}, 3, false},
		{"infinite_left", Bounds{MinUnbounded: true, Max: 0, MaxInclude: true}, -999999999, true},
		{"infinite_right", Bounds{Min: 100, MaxUnbounded: true}, 1000000000, true},
		{"empty_contains_nothing", NewClosedBounds(5, 4), 5, false},
	}

	for _, tc := range cases {
		if got := tc.b.Contains(tc.val); got != tc.exp {
			t.Fatalf("%s: Contains(%d) = %v, want %v (bounds=%+v)", tc.name, tc.val, got, tc.exp, tc.b)
		}
	}
}

func TestBounds_String(t *testing.T) {
	cases := []struct {
		b   Bounds
		exp string
	}{
		{NewClosedBounds(4, 4), "4"},
		{NewClosedBounds(1, 3), "[1,3]"},
		{Bounds{Min: 1, Max: 3, MaxInclude: true}, "(1,3]"},
		{Bounds{Min: 5, MinInclude: true, MaxUnbounded: true}, ">=5"},
		{Bounds{Min: 5, MaxUnbounded: true}, ">5"},
		{Bounds{MinUnbounded: true, Max: 5}, "<5"},
		{Bounds{MinUnbounded: true, Max: 5, MaxInclude: true}, "<=5"},
		{Bounds{MinUnbounded: true, MaxUnbounded: true}, "(,)"},
	}
	for _, tc := range cases {
		if got := tc.b.String(); got != tc.exp {
			t.Fatalf("String() = %q, want %q (bounds=%+v)", got, tc.exp, tc.b)
		}
	}
}

func TestLimits(t *testing.T) {
	check := func(name string, lo, hi, wantLo, wantHi int64) {
		if lo != wantLo || hi != wantHi {
			t.Fatalf("%s: limits = [%d, %d], want [%d, %d]", name, lo, hi, wantLo, wantHi)
		}
	}
	lo, hi := limits[int8]()
	check("int8", lo, hi, math.MinInt8, math.MaxInt8)
	lo, hi = limits[int16]()
	check("int16", lo, hi, math.MinInt16, math.MaxInt16)
	lo, hi = limits[rune]()
	check("rune", lo, hi, math.MinInt32, math.MaxInt32)
	lo, hi = limits[int64]()
	check("int64", lo, hi, math.MinInt64, math.MaxInt64)
	lo, hi = limits[uint8]()
	check("uint8", lo, hi, 0, math.MaxUint8)
	lo, hi = limits[uint32]()
	check("uint32", lo, hi, 0, math.MaxUint32)
}

func TestFromBounds(t *testing.T) {
	cases := []struct {
		name        string
		b           Bounds
		first, last int8
		count       uint64
	}{
		{"closed", NewClosedBounds(3, 9), 3, 9, 7},
		{"half_open", Bounds{Min: 3, MinInclude: true, Max: 9}, 3, 8, 6},
		{"open", Bounds{Min: 3, Max: 9}, 4, 8, 5},
		{"at_least", Bounds{Min: 120, MinInclude: true, MaxUnbounded: true}, 120, 127, 8},
		{"below", Bounds{MinUnbounded: true, Max: -125}, -128, -126, 3},
		{"past_max", Bounds{Min: 127, MaxUnbounded: true}, 1, 0, 0},
		{"empty", Bounds{Min: 3, Max: 4}, 1, 0, 0},
	}
	for _, tc := range cases {
		p, err := FromBounds[int8](tc.b)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if p.First() != tc.first || p.Last() != tc.last || p.Step() != 1 || p.Count() != tc.count {
			t.Fatalf("%s: got %v (count %d), want %d..%d count %d", tc.name, p, p.Count(), tc.first, tc.last, tc.count)
		}
	}

	if _, err := FromBounds[int8](NewClosedBounds(0, 200)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestLastElement_NoOverflow(t *testing.T) {
	// 2^64-1 is a multiple of 3, so MaxInt64 is reachable from MinInt64.
	if got := lastElement(math.MinInt64, math.MaxInt64, 3); got != math.MaxInt64 {
		t.Fatalf("lastElement = %d, want %d", got, int64(math.MaxInt64))
	}
	if got := lastElement(math.MaxInt64, math.MinInt64, -2); got != math.MinInt64+1 {
		t.Fatalf("lastElement = %d, want %d", got, int64(math.MinInt64+1))
	}
}
