// Package functor lifts implications between predicates on elements into
// implications between the same predicates wrapped in a container.
//
// Each container supplies its own instance and documents how it aggregates
// per-element evidence:
//
//   - Each (slices): every element must hold.
//   - Present (pointers): the value must exist and hold.
//   - Any (slices): at least one element must hold. Total lifting only.
package functor

import "github.com/Harshitk-cp/decidable/internal/implication"

// TFunctor lifts p --> q on K into f(p) --> f(q) on the container FK whose
// witnesses have types FP and FQ.
type TFunctor[K, P, Q, FK, FP, FQ any] interface {
	TMap(f implication.Impl[K, P, Q]) implication.Impl[FK, FP, FQ]
}

// DFunctor lifts p -?> q on K into f(p) -?> f(q) on FK.
type DFunctor[K, P, Q, FK, FP, FQ any] interface {
	DMap(f implication.DecImpl[K, P, Q]) implication.DecImpl[FK, FP, FQ]
}
