package functor

import (
	"github.com/Harshitk-cp/decidable/internal/domain"
	"github.com/Harshitk-cp/decidable/internal/implication"
	"github.com/Harshitk-cp/decidable/internal/predicate"
)

// AnyWit names one element of the slice and the witness found there.
type AnyWit[W any] struct {
	index int
	w     W
}

func (a AnyWit[W]) Index() int {
	return a.index
}

func (a AnyWit[W]) Proof() W {
	return a.w
}

// Any holds at a slice when Of holds at some element; the lowest such index
// is reported. It never holds at an empty slice.
type Any[K, W any] struct {
	Of predicate.Decidable[K, W]
}

func NewAny[K, W any](of predicate.Decidable[K, W]) Any[K, W] {
	return Any[K, W]{Of: of}
}

func (p Any[K, W]) Name() string {
	return "any(" + p.Of.Name() + ")"
}

func (p Any[K, W]) Decide(a domain.Sing[[]K]) domain.Decision[AnyWit[W]] {
	xs := a.Value()
	refutations := make([]domain.Refutation[W], 0, len(xs))
	for i, x := range xs {
		d := p.Of.Decide(domain.SingOf(x))
		if w, ok := d.Witness(); ok {
			return domain.Proved(AnyWit[W]{index: i, w: w})
		}
		r := d.MustRefutation()
		refutations = append(refutations, r)
	}
	return domain.Disproved[AnyWit[W]](func(aw AnyWit[W]) domain.Void {
		if aw.index < 0 || aw.index >= len(refutations) {
			return domain.Contradiction("any witness index %d outside %d elements", aw.index, len(refutations))
		}
		return refutations[aw.index](aw.w)
	})
}

// AnyF is the total functor instance for Any. There is no decidable
// instance: refuting "some element holds" would need decisions at the
// elements that carry no witness.
type AnyF[K, P, Q any] struct{}

var _ TFunctor[int, int, int, []int, AnyWit[int], AnyWit[int]] = AnyF[int, int, int]{}

func (AnyF[K, P, Q]) TMap(f implication.Impl[K, P, Q]) implication.Impl[[]K, AnyWit[P], AnyWit[Q]] {
	return func(a domain.Sing[[]K], w AnyWit[P]) AnyWit[Q] {
		x := a.Value()[w.index]
		return AnyWit[Q]{index: w.index, w: f(domain.SingOf(x), w.w)}
	}
}
