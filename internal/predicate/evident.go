package predicate

import "github.com/Harshitk-cp/decidable/internal/domain"

// Evident holds at every value. Its witness is the value's representation.
type Evident[K any] struct{}

func (Evident[K]) Name() string {
	return "evident"
}

func (Evident[K]) Prove(a domain.Sing[K]) domain.Sing[K] {
	return a
}

// Impossible is the negation of Evident and holds nowhere.
type Impossible[K any] struct{}

func (Impossible[K]) Name() string {
	return "impossible"
}

func (Impossible[K]) Decide(a domain.Sing[K]) domain.Decision[domain.Refutation[domain.Sing[K]]] {
	return DecideNot(FromProvable[K, domain.Sing[K]](Evident[K]{}).Decide(a))
}

// NotImpossible is Not(Impossible), proved by feeding a to the hypothetical
// refutation of Evident.
type NotImpossible[K any] struct{}

func (NotImpossible[K]) Name() string {
	return "not(impossible)"
}

func (NotImpossible[K]) Prove(a domain.Sing[K]) domain.Refutation[domain.Refutation[domain.Sing[K]]] {
	return func(r domain.Refutation[domain.Sing[K]]) domain.Void {
		return r(a)
	}
}
