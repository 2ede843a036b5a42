package predicate

import "github.com/Harshitk-cp/decidable/internal/domain"

// Alias is Of under another name. Catalogs use it to give composed
// predicates short names.
type Alias[K, W any] struct {
	label string
	Of    Decidable[K, W]
}

func NewAlias[K, W any](label string, of Decidable[K, W]) Alias[K, W] {
	return Alias[K, W]{label: label, Of: of}
}

func (p Alias[K, W]) Name() string {
	return p.label
}

func (p Alias[K, W]) Decide(a domain.Sing[K]) domain.Decision[W] {
	return p.Of.Decide(a)
}
