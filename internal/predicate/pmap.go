package predicate

import (
	"fmt"

	"github.com/Harshitk-cp/decidable/internal/domain"
)

// PMap holds at a when Of holds at Fn(a).
type PMap[J, K, W any] struct {
	label string
	Fn    func(J) K
	Of    Decidable[K, W]
}

func NewPMap[J, K, W any](label string, fn func(J) K, of Decidable[K, W]) PMap[J, K, W] {
	return PMap[J, K, W]{label: label, Fn: fn, Of: of}
}

func (p PMap[J, K, W]) Name() string {
	return fmt.Sprintf("pmap(%s, %s)", p.label, p.Of.Name())
}

func (p PMap[J, K, W]) Decide(a domain.Sing[J]) domain.Decision[W] {
	return p.Of.Decide(domain.SingOf(p.Fn(a.Value())))
}

// PMapProvable is PMap over a provable predicate; it is provable as well as
// decidable.
type PMapProvable[J, K, W any] struct {
	label string
	Fn    func(J) K
	Of    Provable[K, W]
}

func NewPMapProvable[J, K, W any](label string, fn func(J) K, of Provable[K, W]) PMapProvable[J, K, W] {
	return PMapProvable[J, K, W]{label: label, Fn: fn, Of: of}
}

func (p PMapProvable[J, K, W]) Name() string {
	return fmt.Sprintf("pmap(%s, %s)", p.label, p.Of.Name())
}

func (p PMapProvable[J, K, W]) Prove(a domain.Sing[J]) W {
	return p.Of.Prove(domain.SingOf(p.Fn(a.Value())))
}

func (p PMapProvable[J, K, W]) Decide(a domain.Sing[J]) domain.Decision[W] {
	return Resolve(p.Of).Decide(domain.SingOf(p.Fn(a.Value())))
}

// NewBoolPred holds at a when f(a) is true.
func NewBoolPred[K any](label string, f func(K) bool) PMap[K, bool, Refl[bool]] {
	return NewPMap[K, bool, Refl[bool]](label, f, NewEqualTo(true))
}
