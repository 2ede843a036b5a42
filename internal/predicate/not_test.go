package predicate

import (
	"errors"
	"testing"

	"github.com/Harshitk-cp/decidable/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideNot_Swaps(t *testing.T) {
	five := NewEqualTo(5)
	notFive := NewNot[int, Refl[int]](five)
	assert.Equal(t, "not(equal_to(5))", notFive.Name())

	t.Run("proved becomes disproved", func(t *testing.T) {
		d := notFive.Decide(domain.SingOf(5))
		refute, ok := d.Refutation()
		require.True(t, ok)

		// Any would-be witness of not(equal_to(5)) at 5 gets applied to the
		// genuine Refl and must fail.
		called := false
		candidate := domain.Refutation[Refl[int]](func(w Refl[int]) domain.Void {
			called = true
			assert.Equal(t, 5, w.Value())
			return domain.Contradiction("candidate")
		})
		err := recoverErr(t, func() { refute(candidate) })
		assert.True(t, called)
		assert.True(t, errors.Is(err, domain.ErrAbsurd))
	})

	t.Run("disproved becomes proved", func(t *testing.T) {
		d := notFive.Decide(domain.SingOf(6))
		w, ok := d.Witness()
		require.True(t, ok)
		orig, _ := five.Decide(domain.SingOf(6)).Refutation()
		require.NotNil(t, orig)
		require.NotNil(t, w)
	})
}

func TestDecideNot_DoubleNegationRoundTrips(t *testing.T) {
	five := NewEqualTo(5)
	for _, n := range sampleInts {
		d := five.Decide(domain.SingOf(n))
		twice := DecideNot(DecideNot(d))
		if twice.IsProved() != d.IsProved() {
			t.Errorf("at %d: original %s, double negation %s", n, d, twice)
		}
	}
}

func TestDoubleNegate(t *testing.T) {
	proof := DoubleNegate(Refl[int]{value: 3})
	var seen int
	spy := domain.Refutation[Refl[int]](func(w Refl[int]) domain.Void {
		seen = w.Value()
		return domain.Contradiction("spy")
	})
	recoverErr(t, func() { proof(spy) })
	assert.Equal(t, 3, seen)
}

func TestAnd(t *testing.T) {
	even := NewBoolPred("even", func(n int) bool { return n%2 == 0 })
	positive := NewBoolPred("positive", func(n int) bool { return n > 0 })
	both := NewAnd[int, Refl[bool], Refl[bool]](even, positive)
	assert.Equal(t, "and(pmap(even, equal_to(true)), pmap(positive, equal_to(true)))", both.Name())

	tests := []struct {
		n    int
		want bool
	}{
		{2, true}, {-2, false}, {3, false}, {-3, false}, {0, false},
	}
	for _, tt := range tests {
		d := both.Decide(domain.SingOf(tt.n))
		assert.Equal(t, tt.want, d.IsProved(), "and at %d", tt.n)
		if w, ok := d.Witness(); ok {
			assert.True(t, w.Left.Value())
			assert.True(t, w.Right.Value())
		}
	}
}

func TestOr(t *testing.T) {
	zero := NewEqualTo(0)
	one := NewEqualTo(1)
	either := NewOr[int, Refl[int], Refl[int]](zero, one)

	d := either.Decide(domain.SingOf(0))
	w, ok := d.Witness()
	require.True(t, ok)
	_, isLeft := w.Left()
	assert.True(t, isLeft)

	d = either.Decide(domain.SingOf(1))
	w, ok = d.Witness()
	require.True(t, ok)
	r, isRight := w.Right()
	assert.True(t, isRight)
	assert.Equal(t, 1, r.Value())

	refute, ok := either.Decide(domain.SingOf(2)).Refutation()
	require.True(t, ok)
	err := recoverErr(t, func() { refute(InRight[Refl[int]](Refl[int]{value: 1})) })
	assert.True(t, errors.Is(err, domain.ErrAbsurd))
	assert.Contains(t, err.Error(), "2 is not equal to 1")
}

func TestDecideNot_RejectsUndecided(t *testing.T) {
	var undecided domain.Decision[Refl[int]]
	err := recoverErr(t, func() { DecideNot(undecided) })
	assert.True(t, errors.Is(err, domain.ErrNilRefutation))
}
