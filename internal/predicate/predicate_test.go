package predicate

import (
	"errors"
	"testing"

	"github.com/Harshitk-cp/decidable/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleInts = []int{-3, -1, 0, 1, 2, 5, 6, 1 << 20}

// recoverErr runs f and returns the error it panicked with.
func recoverErr(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		e, ok := r.(error)
		require.True(t, ok, "expected panic value to be an error, got %T", r)
		err = e
	}()
	f()
	return nil
}

// selfDecided is provable and also supplies its own decision procedure,
// which tags witnesses differently so the two paths can be told apart.
type selfDecided struct{}

func (selfDecided) Name() string { return "self_decided" }

func (selfDecided) Prove(a domain.Sing[int]) string { return "proved" }

func (selfDecided) Decide(a domain.Sing[int]) domain.Decision[string] {
	return domain.Proved("decided")
}

// proofOnly is provable and nothing else.
type proofOnly struct{}

func (proofOnly) Name() string { return "proof_only" }

func (proofOnly) Prove(a domain.Sing[int]) int { return a.Value() * 2 }

func TestDecide_Totality(t *testing.T) {
	preds := []Decidable[int, Refl[int]]{
		NewEqualTo(0),
		NewEqualTo(5),
		NewEqualToBy(1, func(a, b int) bool { return a%2 == b%2 }),
	}

	for _, p := range preds {
		for _, n := range sampleInts {
			d := Decide(p, domain.SingOf(n))
			_, proved := d.Witness()
			_, disproved := d.Refutation()
			if proved == disproved {
				t.Errorf("%s at %d: proved=%v disproved=%v, want exactly one", p.Name(), n, proved, disproved)
			}
		}
	}
}

func TestFromProvable_MatchesProve(t *testing.T) {
	p := proofOnly{}
	d := FromProvable[int, int](p)
	assert.Equal(t, "proof_only", d.Name())

	for _, n := range sampleInts {
		a := domain.SingOf(n)
		w, ok := d.Decide(a).Witness()
		require.True(t, ok, "derived decision must be proved at %d", n)
		assert.Equal(t, Prove[int, int](p, a).Proof(), w)
	}
}

func TestResolve_PrefersDirectDecision(t *testing.T) {
	direct := Resolve[int, string](selfDecided{})
	w, ok := direct.Decide(domain.SingOf(1)).Witness()
	require.True(t, ok)
	assert.Equal(t, "decided", w)

	derived := Resolve[int, int](proofOnly{})
	n, ok := derived.Decide(domain.SingOf(4)).Witness()
	require.True(t, ok)
	assert.Equal(t, 8, n)
}

func TestEvident_AlwaysProved(t *testing.T) {
	evident := FromProvable[int, domain.Sing[int]](Evident[int]{})
	for _, n := range sampleInts {
		a := domain.SingOf(n)
		w, ok := evident.Decide(a).Witness()
		if !ok {
			t.Fatalf("evident disproved at %d", n)
		}
		if w.Value() != n {
			t.Errorf("evident witness = %d, want %d", w.Value(), n)
		}
		wit := Prove[int, domain.Sing[int]](Evident[int]{}, a)
		assert.Equal(t, "evident", wit.Predicate())
		assert.Equal(t, a, wit.Proof())
	}
}

func TestImpossible_AlwaysDisproved(t *testing.T) {
	for _, n := range sampleInts {
		d := Impossible[int]{}.Decide(domain.SingOf(n))
		refute, ok := d.Refutation()
		if !ok {
			t.Fatalf("impossible proved at %d", n)
		}

		// The only candidate witness of Impossible is a refutation of Evident;
		// refuting it means running it, which must blow up.
		candidate := domain.Refutation[domain.Sing[int]](func(domain.Sing[int]) domain.Void {
			return domain.Contradiction("candidate ran")
		})
		err := recoverErr(t, func() { refute(candidate) })
		assert.True(t, errors.Is(err, domain.ErrAbsurd))
	}
}

func TestNotImpossible_Proof(t *testing.T) {
	a := domain.SingOf(11)
	proof := NotImpossible[int]{}.Prove(a)

	var applied domain.Sing[int]
	spy := domain.Refutation[domain.Sing[int]](func(s domain.Sing[int]) domain.Void {
		applied = s
		return domain.Contradiction("spy")
	})
	recoverErr(t, func() { proof(spy) })
	assert.Equal(t, a, applied, "proof must apply the refutation to the value itself")

	d := Resolve[int, domain.Refutation[domain.Refutation[domain.Sing[int]]]](NotImpossible[int]{}).Decide(a)
	assert.True(t, d.IsProved())
}

func TestEqualTo(t *testing.T) {
	tests := []struct {
		name string
		c    int
		a    int
		want bool
	}{
		{"5 equals 5", 5, 5, true},
		{"5 vs 6", 5, 6, false},
		{"0 equals 0", 0, 0, true},
		{"negative", -1, 1, false},
		{"large", 1 << 30, 1 << 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewEqualTo(tt.c)
			d := p.Decide(domain.SingOf(tt.a))
			if d.IsProved() != tt.want {
				t.Fatalf("decide(equal_to(%d), %d) = %s, want proved=%v", tt.c, tt.a, d, tt.want)
			}
			if w, ok := d.Witness(); ok {
				assert.Equal(t, tt.a, w.Value())
			}
		})
	}
}

func TestEqualTo_RefutationRejectsForgedWitness(t *testing.T) {
	p := NewEqualTo("alpha")
	assert.Equal(t, "equal_to(alpha)", p.Name())
	assert.Equal(t, "alpha", p.Constant())

	refute, ok := p.Decide(domain.SingOf("beta")).Refutation()
	require.True(t, ok)
	err := recoverErr(t, func() { refute(Refl[string]{}) })
	assert.True(t, errors.Is(err, domain.ErrAbsurd))
	assert.Contains(t, err.Error(), "beta is not equal to alpha")
}

func TestEqualToBy_UsesDomainEquality(t *testing.T) {
	type point struct{ x, y int }
	sameX := func(a, b point) bool { return a.x == b.x }
	p := NewEqualToBy(point{1, 2}, sameX)

	assert.True(t, p.Decide(domain.SingOf(point{1, 99})).IsProved())
	assert.False(t, p.Decide(domain.SingOf(point{2, 2})).IsProved())
}

func TestBoolPred(t *testing.T) {
	even := NewBoolPred("even", func(n int) bool { return n%2 == 0 })
	assert.Equal(t, "pmap(even, equal_to(true))", even.Name())

	for _, n := range sampleInts {
		d := even.Decide(domain.SingOf(n))
		assert.Equal(t, n%2 == 0, d.IsProved(), "even at %d", n)
	}
}

func TestPMap(t *testing.T) {
	length := NewPMap[string, int, Refl[int]]("len", func(s string) int { return len(s) }, NewEqualTo(3))
	assert.True(t, length.Decide(domain.SingOf("abc")).IsProved())
	assert.False(t, length.Decide(domain.SingOf("ab")).IsProved())

	doubled := NewPMapProvable[int, int, int]("inc", func(n int) int { return n + 1 }, proofOnly{})
	assert.Equal(t, 8, doubled.Prove(domain.SingOf(3)))
	w, ok := doubled.Decide(domain.SingOf(3)).Witness()
	require.True(t, ok)
	assert.Equal(t, 8, w)

	viaDecide := NewPMapProvable[int, int, string]("id", func(n int) int { return n }, selfDecided{})
	s, ok := viaDecide.Decide(domain.SingOf(0)).Witness()
	require.True(t, ok)
	assert.Equal(t, "decided", s, "inner direct decision takes precedence")
}

func TestAlias(t *testing.T) {
	even := NewAlias[int, Refl[bool]]("even", NewBoolPred("even", func(n int) bool { return n%2 == 0 }))
	assert.Equal(t, "even", even.Name())
	assert.True(t, even.Decide(domain.SingOf(4)).IsProved())
	assert.False(t, even.Decide(domain.SingOf(5)).IsProved())
}
