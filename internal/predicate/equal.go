package predicate

import (
	"fmt"

	"github.com/Harshitk-cp/decidable/internal/domain"
)

// Refl proves that a value equals the constant of an EqualTo. Only
// EqualTo.Decide builds one.
type Refl[K any] struct {
	value K
}

func (r Refl[K]) Value() K {
	return r.value
}

// EqualTo holds at a when a equals the constant under the domain's equality.
type EqualTo[K any] struct {
	c  domain.Sing[K]
	eq func(a, b K) bool
}

func NewEqualTo[K comparable](c K) EqualTo[K] {
	return NewEqualToBy(c, func(a, b K) bool { return a == b })
}

// NewEqualToBy uses eq as the domain's equality decision procedure.
func NewEqualToBy[K any](c K, eq func(a, b K) bool) EqualTo[K] {
	return EqualTo[K]{c: domain.SingOf(c), eq: eq}
}

func (p EqualTo[K]) Name() string {
	return fmt.Sprintf("equal_to(%v)", p.c.Value())
}

func (p EqualTo[K]) Constant() K {
	return p.c.Value()
}

func (p EqualTo[K]) Decide(a domain.Sing[K]) domain.Decision[Refl[K]] {
	want, got := p.c.Value(), a.Value()
	if p.eq(want, got) {
		return domain.Proved(Refl[K]{value: got})
	}
	return domain.Disproved[Refl[K]](func(Refl[K]) domain.Void {
		return domain.Contradiction("%v is not equal to %v", got, want)
	})
}
