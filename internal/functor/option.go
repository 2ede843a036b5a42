package functor

import (
	"github.com/Harshitk-cp/decidable/internal/domain"
	"github.com/Harshitk-cp/decidable/internal/implication"
	"github.com/Harshitk-cp/decidable/internal/predicate"
)

// PresentWit witnesses Present: the pointer was non-nil and the inner
// predicate held at its target.
type PresentWit[W any] struct {
	w W
}

func (p PresentWit[W]) Proof() W {
	return p.w
}

// Present holds at a *K when it is non-nil and Of holds at the pointee.
type Present[K, W any] struct {
	Of predicate.Decidable[K, W]
}

func NewPresent[K, W any](of predicate.Decidable[K, W]) Present[K, W] {
	return Present[K, W]{Of: of}
}

func (p Present[K, W]) Name() string {
	return "present(" + p.Of.Name() + ")"
}

func (p Present[K, W]) Decide(a domain.Sing[*K]) domain.Decision[PresentWit[W]] {
	x := a.Value()
	if x == nil {
		return domain.Disproved[PresentWit[W]](func(PresentWit[W]) domain.Void {
			return domain.Contradiction("%s witnessed at an absent value", p.Name())
		})
	}
	return domain.MapDecision(p.Of.Decide(domain.SingOf(*x)),
		func(w W) PresentWit[W] { return PresentWit[W]{w: w} },
		func(pw PresentWit[W]) W { return pw.w })
}

// OptionF is the functor instance for Present. A witness can only exist for
// a non-nil pointer, so both liftings act on that one element.
type OptionF[K, P, Q any] struct{}

var (
	_ TFunctor[int, int, int, *int, PresentWit[int], PresentWit[int]] = OptionF[int, int, int]{}
	_ DFunctor[int, int, int, *int, PresentWit[int], PresentWit[int]] = OptionF[int, int, int]{}
)

func (OptionF[K, P, Q]) TMap(f implication.Impl[K, P, Q]) implication.Impl[*K, PresentWit[P], PresentWit[Q]] {
	return func(a domain.Sing[*K], w PresentWit[P]) PresentWit[Q] {
		return PresentWit[Q]{w: f(domain.SingOf(*a.Value()), w.w)}
	}
}

func (OptionF[K, P, Q]) DMap(f implication.DecImpl[K, P, Q]) implication.DecImpl[*K, PresentWit[P], PresentWit[Q]] {
	return func(a domain.Sing[*K], w PresentWit[P]) domain.Decision[PresentWit[Q]] {
		return domain.MapDecision(f(domain.SingOf(*a.Value()), w.w),
			func(q Q) PresentWit[Q] { return PresentWit[Q]{w: q} },
			func(pw PresentWit[Q]) Q { return pw.w })
	}
}
