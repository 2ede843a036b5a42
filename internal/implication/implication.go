// Package implication holds the four shapes of implication between
// predicates over K with witness types P and Q, and their composition.
//
// The effectful shapes use context.Context plus an error return as the
// effect: proof construction may block, be cancelled, or fail.
package implication

import (
	"context"

	"github.com/Harshitk-cp/decidable/internal/domain"
)

// Impl is a total implication p --> q.
type Impl[K, P, Q any] func(a domain.Sing[K], w P) Q

// ImplCtx is a total implication whose proof construction runs in a context.
type ImplCtx[K, P, Q any] func(ctx context.Context, a domain.Sing[K], w P) (Q, error)

// DecImpl is a partial implication p -?> q: a witness of p lets q be decided.
type DecImpl[K, P, Q any] func(a domain.Sing[K], w P) domain.Decision[Q]

// DecImplCtx is DecImpl run in a context.
type DecImplCtx[K, P, Q any] func(ctx context.Context, a domain.Sing[K], w P) (domain.Decision[Q], error)

// Identity is the implication p --> p.
func Identity[K, P any]() Impl[K, P, P] {
	return func(_ domain.Sing[K], w P) P { return w }
}

// Compose chains p --> q and q --> r into p --> r. Both steps see the same a.
func Compose[K, P, Q, R any](f Impl[K, P, Q], g Impl[K, Q, R]) Impl[K, P, R] {
	return func(a domain.Sing[K], w P) R {
		return g(a, f(a, w))
	}
}

// ComposeCtx chains two effectful implications. g is not run when f fails.
func ComposeCtx[K, P, Q, R any](f ImplCtx[K, P, Q], g ImplCtx[K, Q, R]) ImplCtx[K, P, R] {
	return func(ctx context.Context, a domain.Sing[K], w P) (R, error) {
		q, err := f(ctx, a, w)
		if err != nil {
			var zero R
			return zero, err
		}
		return g(ctx, a, q)
	}
}

// ThenDecide runs a total implication and decides the result.
func ThenDecide[K, P, Q, R any](f Impl[K, P, Q], g DecImpl[K, Q, R]) DecImpl[K, P, R] {
	return func(a domain.Sing[K], w P) domain.Decision[R] {
		return g(a, f(a, w))
	}
}

// Contrapose turns p --> q into Not(q) --> Not(p).
func Contrapose[K, P, Q any](f Impl[K, P, Q]) Impl[K, domain.Refutation[Q], domain.Refutation[P]] {
	return func(a domain.Sing[K], notQ domain.Refutation[Q]) domain.Refutation[P] {
		return func(p P) domain.Void {
			return notQ(f(a, p))
		}
	}
}

// InCtx lifts f into the effect context. The context is checked before f
// runs.
func (f Impl[K, P, Q]) InCtx() ImplCtx[K, P, Q] {
	return func(ctx context.Context, a domain.Sing[K], w P) (Q, error) {
		if err := ctx.Err(); err != nil {
			var zero Q
			return zero, err
		}
		return f(a, w), nil
	}
}

// Partial weakens a total implication to a decidable one that always proves.
func (f Impl[K, P, Q]) Partial() DecImpl[K, P, Q] {
	return func(a domain.Sing[K], w P) domain.Decision[Q] {
		return domain.Proved(f(a, w))
	}
}

func (f DecImpl[K, P, Q]) InCtx() DecImplCtx[K, P, Q] {
	return func(ctx context.Context, a domain.Sing[K], w P) (domain.Decision[Q], error) {
		if err := ctx.Err(); err != nil {
			return domain.Decision[Q]{}, err
		}
		return f(a, w), nil
	}
}
