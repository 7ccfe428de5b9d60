package progression_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vipcxj/progression/pkg/progression"
	"github.com/vipcxj/progression/pkg/progression/verify"
)

func TestSimpleRange(t *testing.T) {
	want := []int{3, 4, 5, 6, 7, 8, 9}
	require.NoError(t, verify.Expect(progression.RangeTo(3, 9), 3, 9, 1, want))
	require.NoError(t, verify.Expect(progression.RangeTo[int8](3, 9), 3, 9, 1, []int8{3, 4, 5, 6, 7, 8, 9}))
	require.NoError(t, verify.Expect(progression.RangeTo[int16](3, 9), 3, 9, 1, []int16{3, 4, 5, 6, 7, 8, 9}))
	require.NoError(t, verify.Expect(progression.RangeTo[int64](3, 9), 3, 9, 1, []int64{3, 4, 5, 6, 7, 8, 9}))
	require.NoError(t, verify.Expect(progression.RangeTo('c', 'g'), 'c', 'g', 1, []rune{'c', 'd', 'e', 'f', 'g'}))
}

func TestSimpleRangeWithNonConstantEnds(t *testing.T) {
	one, two, ten := 1, 2, 10
	require.NoError(t, verify.Expect(progression.RangeTo(one+two, ten-one), 3, 9, 1, []int{3, 4, 5, 6, 7, 8, 9}))

	b1, b2, b10 := int8(1), int8(2), int8(10)
	require.NoError(t, verify.Expect(progression.RangeTo(b1+b2, b10-b1), 3, 9, 1, []int8{3, 4, 5, 6, 7, 8, 9}))

	l1, l2, l10 := int64(1), int64(2), int64(10)
	require.NoError(t, verify.Expect(progression.RangeTo(l1+l2, l10-l1), 3, 9, 1, []int64{3, 4, 5, 6, 7, 8, 9}))

	ace, age := []rune("ace"), []rune("age")
	require.NoError(t, verify.Expect(progression.RangeTo(ace[1], age[1]), 'c', 'g', 1, []rune{'c', 'd', 'e', 'f', 'g'}))
}

func TestNew_Normalization(t *testing.T) {
	cases := []struct {
		name       string
		first, end int64
		step       int64
		wantLast   int64
		want       []int64
	}{
		{"exact", 1, 9, 2, 9, []int64{1, 3, 5, 7, 9}},
		{"overshoot", 1, 10, 4, 9, []int64{1, 5, 9}},
		{"negative_start", -7, 7, 5, 3, []int64{-7, -2, 3}},
		{"descending", 10, 1, -3, 1, []int64{10, 7, 4, 1}},
		{"descending_overshoot", 10, 0, -4, 2, []int64{10, 6, 2}},
		{"single", 5, 5, 3, 5, []int64{5}},
		{"single_descending", 5, 5, -3, 5, []int64{5}},
		{"reversed_bounds", 9, 3, 1, 3, nil},
		{"reversed_bounds_descending", 3, 9, -1, 9, nil},
		{"huge_step", 0, 10, math.MaxInt64, 0, []int64{0}},
		{"full_span", math.MinInt64, math.MaxInt64, math.MaxInt64, math.MaxInt64 - 1, []int64{math.MinInt64, -1, math.MaxInt64 - 1}},
	}

	for _, tc := range cases {
		p, err := progression.New(tc.first, tc.end, tc.step)
		require.NoError(t, err, tc.name)
		if err := verify.Expect(p, tc.first, tc.wantLast, tc.step, tc.want); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
	}
}

func TestNew_InvalidStep(t *testing.T) {
	for _, step := range []int64{0, math.MinInt64} {
		_, err := progression.New(1, 10, step)
		if !errors.Is(err, progression.ErrInvalidStep) {
			t.Fatalf("New(1, 10, %d) err = %v, want ErrInvalidStep", step, err)
		}
	}
}

func TestEmptyProgression(t *testing.T) {
	p := progression.RangeTo(9, 3)
	assert.True(t, p.IsEmpty())
	assert.Zero(t, p.Count())
	assert.Empty(t, p.Collect())

	it := p.Iterator()
	assert.False(t, it.HasNext())
	_, err := it.Next()
	assert.ErrorIs(t, err, progression.ErrIteratorExhausted)

	for range p.All() {
		t.Fatal("empty progression produced an element")
	}
}

func TestDownToAndUntil(t *testing.T) {
	require.NoError(t, verify.Expect(progression.DownTo(5, 1), 5, 1, -1, []int{5, 4, 3, 2, 1}))
	require.NoError(t, verify.Expect(progression.Until(0, 4), 0, 3, 1, []int{0, 1, 2, 3}))

	empty := progression.Until[int8](5, math.MinInt8)
	assert.True(t, empty.IsEmpty())
	emptyU8 := progression.Until[uint8](0, 0)
	assert.True(t, emptyU8.IsEmpty())
	assert.Zero(t, emptyU8.Count())
}

func TestWithStep(t *testing.T) {
	p, err := progression.RangeTo(1, 10).WithStep(4)
	require.NoError(t, err)
	require.NoError(t, verify.Expect(p, 1, 9, 4, []int{1, 5, 9}))

	p, err = progression.DownTo(10, 1).WithStep(3)
	require.NoError(t, err)
	require.NoError(t, verify.Expect(p, 10, 1, -3, []int{10, 7, 4, 1}))

	_, err = progression.RangeTo(1, 10).WithStep(-2)
	assert.ErrorIs(t, err, progression.ErrInvalidStep)
	_, err = progression.RangeTo(1, 10).WithStep(0)
	assert.ErrorIs(t, err, progression.ErrInvalidStep)
}

func TestReversed(t *testing.T) {
	p, err := progression.New(1, 10, 4)
	require.NoError(t, err)
	require.NoError(t, verify.Expect(p.Reversed(), 9, 1, -4, []int{9, 5, 1}))
	require.NoError(t, verify.Compare(p, p.Reversed().Reversed()))

	assert.True(t, progression.RangeTo(9, 3).Reversed().IsEmpty())
}

func TestCountAndContains(t *testing.T) {
	p, err := progression.New[int64](math.MinInt64, math.MaxInt64-1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), p.Count())
	assert.True(t, p.Contains(0))

	q, err := progression.New(10, -10, -5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), q.Count())
	for _, v := range []int{10, 5, 0, -5, -10} {
		assert.True(t, q.Contains(v), "contains %d", v)
	}
	for _, v := range []int{11, 9, -11, -15, 1} {
		assert.False(t, q.Contains(v), "contains %d", v)
	}
	assert.False(t, progression.RangeTo(9, 3).Contains(5))
}

func TestEqual(t *testing.T) {
	a, _ := progression.New(1, 10, 4)
	b, _ := progression.New(1, 9, 4)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(progression.RangeTo(1, 9)))
	assert.True(t, progression.RangeTo(9, 3).Equal(progression.DownTo(1, 2)))
}

func TestString(t *testing.T) {
	p, _ := progression.New(1, 10, 4)
	assert.Equal(t, "1..9 step 4", p.String())
	assert.Equal(t, "9 downTo 1 step 4", p.Reversed().String())
	assert.Equal(t, "'c'..'g' step 1", progression.RangeTo('c', 'g').Format(func(r rune) string { return "'" + string(r) + "'" }))
}

func TestIterator_Independent(t *testing.T) {
	p := progression.RangeTo(1, 3)
	a, b := p.Iterator(), p.Iterator()
	v, err := a.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = b.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{1, 2, 3}, p.Collect())
}

func TestIterator_HasNextIdempotent(t *testing.T) {
	it := progression.RangeTo[int16](1, 2).Iterator()
	for i := 0; i < 5; i++ {
		assert.True(t, it.HasNext())
	}
	_, _ = it.Next()
	_, _ = it.Next()
	for i := 0; i < 5; i++ {
		assert.False(t, it.HasNext())
		_, err := it.Next()
		assert.ErrorIs(t, err, progression.ErrIteratorExhausted)
	}
}

func TestIterator_TypeLimits(t *testing.T) {
	require.NoError(t, verify.Expect(
		progression.RangeTo[int8](125, math.MaxInt8), 125, 127, 1, []int8{125, 126, 127}))
	require.NoError(t, verify.Expect(
		progression.DownTo[int8](-126, math.MinInt8), -126, -128, -1, []int8{-126, -127, -128}))
	require.NoError(t, verify.Expect(
		progression.RangeTo[uint8](253, 255), 253, 255, 1, []uint8{253, 254, 255}))
}

// Properties over a grid of bounds and steps: monotonic elements spaced by
// step, bounds matching the materialized list and round-trip reconstruction.
func TestProperties(t *testing.T) {
	for first := int64(-6); first <= 6; first++ {
		for end := int64(-6); end <= 6; end++ {
			for _, step := range []int64{-7, -3, -2, -1, 1, 2, 3, 7} {
				p, err := progression.New(first, end, step)
				require.NoError(t, err)
				elems := p.Collect()
				require.Equal(t, p.Count(), uint64(len(elems)))
				if len(elems) == 0 {
					require.True(t, p.IsEmpty())
					require.True(t, (step > 0 && first > end) || (step < 0 && first < end))
					continue
				}
				require.Equal(t, p.First(), elems[0])
				require.Equal(t, p.Last(), elems[len(elems)-1])
				for i := 1; i < len(elems); i++ {
					require.Equal(t, step, elems[i]-elems[i-1])
				}
				for _, v := range elems {
					require.True(t, p.Contains(v))
				}
				if len(elems) >= 2 {
					rt, err := progression.New(elems[0], elems[len(elems)-1], elems[1]-elems[0])
					require.NoError(t, err)
					require.NoError(t, verify.Compare(p, rt))
				}
			}
		}
	}
}
