package functor

import (
	"context"
	"fmt"

	"github.com/Harshitk-cp/decidable/internal/domain"
	"github.com/Harshitk-cp/decidable/internal/implication"
	"github.com/Harshitk-cp/decidable/internal/predicate"
	"golang.org/x/sync/errgroup"
)

// EachWit holds one witness per element of the slice it was decided on, in
// element order.
type EachWit[W any] struct {
	ws []W
}

func (e EachWit[W]) Len() int {
	return len(e.ws)
}

func (e EachWit[W]) At(i int) W {
	return e.ws[i]
}

// Witnesses returns a copy of the per-element witnesses.
func (e EachWit[W]) Witnesses() []W {
	out := make([]W, len(e.ws))
	copy(out, e.ws)
	return out
}

// Each holds at a slice when Of holds at every element. It holds vacuously
// at an empty slice.
type Each[K, W any] struct {
	Of predicate.Decidable[K, W]
}

func NewEach[K, W any](of predicate.Decidable[K, W]) Each[K, W] {
	return Each[K, W]{Of: of}
}

func (e Each[K, W]) Name() string {
	return "each(" + e.Of.Name() + ")"
}

// Decide stops at the first element that is refuted.
func (e Each[K, W]) Decide(a domain.Sing[[]K]) domain.Decision[EachWit[W]] {
	xs := a.Value()
	ws := make([]W, 0, len(xs))
	for i, x := range xs {
		d := e.Of.Decide(domain.SingOf(x))
		w, ok := d.Witness()
		if !ok {
			r := d.MustRefutation()
			return domain.Disproved(refuteEachAt(i, r))
		}
		ws = append(ws, w)
	}
	return domain.Proved(EachWit[W]{ws: ws})
}

func refuteEachAt[W any](i int, r domain.Refutation[W]) domain.Refutation[EachWit[W]] {
	return func(e EachWit[W]) domain.Void {
		if i >= len(e.ws) {
			return domain.Contradiction("each witness has %d elements, refuted position is %d", len(e.ws), i)
		}
		return r(e.ws[i])
	}
}

// EachF is the functor instance for Each.
type EachF[K, P, Q any] struct {
	// Limit bounds concurrent elements in TMapCtx and DMapCtx. Zero or less
	// means unbounded; 1 runs elements strictly in order.
	Limit int
}

var (
	_ TFunctor[int, int, int, []int, EachWit[int], EachWit[int]] = EachF[int, int, int]{}
	_ DFunctor[int, int, int, []int, EachWit[int], EachWit[int]] = EachF[int, int, int]{}
)

// TMap applies f at every position, keeping order and count.
func (EachF[K, P, Q]) TMap(f implication.Impl[K, P, Q]) implication.Impl[[]K, EachWit[P], EachWit[Q]] {
	return func(a domain.Sing[[]K], w EachWit[P]) EachWit[Q] {
		xs := a.Value()
		out := make([]Q, len(w.ws))
		for i, p := range w.ws {
			out[i] = f(domain.SingOf(xs[i]), p)
		}
		return EachWit[Q]{ws: out}
	}
}

// DMap decides q at every position; the result is proved only when every
// position is. The refutation points at the first failing position.
func (EachF[K, P, Q]) DMap(f implication.DecImpl[K, P, Q]) implication.DecImpl[[]K, EachWit[P], EachWit[Q]] {
	return func(a domain.Sing[[]K], w EachWit[P]) domain.Decision[EachWit[Q]] {
		xs := a.Value()
		out := make([]Q, len(w.ws))
		for i, p := range w.ws {
			d := f(domain.SingOf(xs[i]), p)
			q, ok := d.Witness()
			if !ok {
				r := d.MustRefutation()
				return domain.Disproved(refuteEachAt(i, r))
			}
			out[i] = q
		}
		return domain.Proved(EachWit[Q]{ws: out})
	}
}

// TMapCtx is TMap for effectful implications. Elements run concurrently up
// to Limit; the first error cancels the rest.
func (e EachF[K, P, Q]) TMapCtx(f implication.ImplCtx[K, P, Q]) implication.ImplCtx[[]K, EachWit[P], EachWit[Q]] {
	return func(ctx context.Context, a domain.Sing[[]K], w EachWit[P]) (EachWit[Q], error) {
		xs := a.Value()
		out := make([]Q, len(w.ws))
		g, gctx := e.group(ctx)
		for i := range w.ws {
			g.Go(func() error {
				q, err := f(gctx, domain.SingOf(xs[i]), w.ws[i])
				if err != nil {
					return fmt.Errorf("element %d: %w", i, err)
				}
				out[i] = q
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return EachWit[Q]{}, err
		}
		return EachWit[Q]{ws: out}, nil
	}
}

// DMapCtx is DMap for effectful implications. All elements are decided
// before aggregating, so the refutation still names the lowest failing
// position regardless of scheduling.
func (e EachF[K, P, Q]) DMapCtx(f implication.DecImplCtx[K, P, Q]) implication.DecImplCtx[[]K, EachWit[P], EachWit[Q]] {
	return func(ctx context.Context, a domain.Sing[[]K], w EachWit[P]) (domain.Decision[EachWit[Q]], error) {
		xs := a.Value()
		decisions := make([]domain.Decision[Q], len(w.ws))
		g, gctx := e.group(ctx)
		for i := range w.ws {
			g.Go(func() error {
				d, err := f(gctx, domain.SingOf(xs[i]), w.ws[i])
				if err != nil {
					return fmt.Errorf("element %d: %w", i, err)
				}
				decisions[i] = d
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return domain.Decision[EachWit[Q]]{}, err
		}

		out := make([]Q, len(decisions))
		for i, d := range decisions {
			q, ok := d.Witness()
			if !ok {
				r := d.MustRefutation()
				return domain.Disproved(refuteEachAt(i, r)), nil
			}
			out[i] = q
		}
		return domain.Proved(EachWit[Q]{ws: out}), nil
	}
}

func (e EachF[K, P, Q]) group(ctx context.Context) (*errgroup.Group, context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	if e.Limit > 0 {
		g.SetLimit(e.Limit)
	}
	return g, gctx
}
