package predicate

import "github.com/Harshitk-cp/decidable/internal/domain"

// Pair witnesses a conjunction.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Either witnesses a disjunction. Exactly one side is set.
type Either[L, R any] struct {
	isLeft bool
	left   L
	right  R
}

func InLeft[L, R any](l L) Either[L, R] {
	return Either[L, R]{isLeft: true, left: l}
}

func InRight[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r}
}

func (e Either[L, R]) Left() (L, bool) {
	return e.left, e.isLeft
}

func (e Either[L, R]) Right() (R, bool) {
	return e.right, !e.isLeft
}

// And holds when both operands hold. Left is decided first and Right is not
// consulted when Left is refuted.
type And[K, L, R any] struct {
	Left  Decidable[K, L]
	Right Decidable[K, R]
}

func NewAnd[K, L, R any](l Decidable[K, L], r Decidable[K, R]) And[K, L, R] {
	return And[K, L, R]{Left: l, Right: r}
}

func (p And[K, L, R]) Name() string {
	return "and(" + p.Left.Name() + ", " + p.Right.Name() + ")"
}

func (p And[K, L, R]) Decide(a domain.Sing[K]) domain.Decision[Pair[L, R]] {
	dl := p.Left.Decide(a)
	l, ok := dl.Witness()
	if !ok {
		refute := dl.MustRefutation()
		return domain.Disproved[Pair[L, R]](func(w Pair[L, R]) domain.Void { return refute(w.Left) })
	}
	dr := p.Right.Decide(a)
	r, ok := dr.Witness()
	if !ok {
		refute := dr.MustRefutation()
		return domain.Disproved[Pair[L, R]](func(w Pair[L, R]) domain.Void { return refute(w.Right) })
	}
	return domain.Proved(Pair[L, R]{Left: l, Right: r})
}

// Or holds when either operand holds, preferring Left.
type Or[K, L, R any] struct {
	Left  Decidable[K, L]
	Right Decidable[K, R]
}

func NewOr[K, L, R any](l Decidable[K, L], r Decidable[K, R]) Or[K, L, R] {
	return Or[K, L, R]{Left: l, Right: r}
}

func (p Or[K, L, R]) Name() string {
	return "or(" + p.Left.Name() + ", " + p.Right.Name() + ")"
}

func (p Or[K, L, R]) Decide(a domain.Sing[K]) domain.Decision[Either[L, R]] {
	dl := p.Left.Decide(a)
	if l, ok := dl.Witness(); ok {
		return domain.Proved(InLeft[L, R](l))
	}
	dr := p.Right.Decide(a)
	if r, ok := dr.Witness(); ok {
		return domain.Proved(InRight[L](r))
	}
	refuteL := dl.MustRefutation()
	refuteR := dr.MustRefutation()
	return domain.Disproved[Either[L, R]](func(e Either[L, R]) domain.Void {
		if l, ok := e.Left(); ok {
			return refuteL(l)
		}
		r, _ := e.Right()
		return refuteR(r)
	})
}
