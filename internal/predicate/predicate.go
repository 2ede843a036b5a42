// Package predicate defines predicates over typed domain values and the two
// capabilities a predicate can carry: being provable at every value and being
// decidable at every value.
//
// A predicate is a Go type with a stable Name. Its witness type W stands for
// the proofs that it holds; witnesses that depend on the value are tagged
// proof objects whose fields are only set by the code that checked them.
package predicate

import "github.com/Harshitk-cp/decidable/internal/domain"

type Predicate interface {
	Name() string
}

// Provable predicates hold at every value. Prove must be total.
type Provable[K, W any] interface {
	Predicate
	Prove(a domain.Sing[K]) W
}

// Decidable predicates can be settled at every value. Decide must be total
// and return a genuine witness or a genuine refutation.
type Decidable[K, W any] interface {
	Predicate
	Decide(a domain.Sing[K]) domain.Decision[W]
}

// Prove runs p's proof procedure at a.
func Prove[K, W any](p Provable[K, W], a domain.Sing[K]) domain.Wit[K, W] {
	return domain.NewWit(p.Name(), a, p.Prove(a))
}

// Decide runs p's decision procedure at a.
func Decide[K, W any](p Decidable[K, W], a domain.Sing[K]) domain.Decision[W] {
	return p.Decide(a)
}

// FromProvable decides p by proving it.
func FromProvable[K, W any](p Provable[K, W]) Decidable[K, W] {
	return derived[K, W]{p: p}
}

// Resolve returns p's own decision procedure when it has one and falls back
// to FromProvable otherwise.
func Resolve[K, W any](p Provable[K, W]) Decidable[K, W] {
	if d, ok := p.(Decidable[K, W]); ok {
		return d
	}
	return FromProvable(p)
}

type derived[K, W any] struct {
	p Provable[K, W]
}

func (d derived[K, W]) Name() string {
	return d.p.Name()
}

func (d derived[K, W]) Decide(a domain.Sing[K]) domain.Decision[W] {
	return domain.Proved(d.p.Prove(a))
}
