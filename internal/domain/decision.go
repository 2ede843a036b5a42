package domain

// Decision is the outcome of settling a predicate at a value: either a
// witness or a refutation, never both and never neither. The zero Decision
// is neither; it only travels next to a non-nil error and every operation
// that would read a variant from it panics with ErrNilRefutation.
type Decision[W any] struct {
	proved     bool
	witness    W
	refutation Refutation[W]
}

func Proved[W any](w W) Decision[W] {
	return Decision[W]{proved: true, witness: w}
}

func Disproved[W any](r Refutation[W]) Decision[W] {
	if r == nil {
		panic(ErrNilRefutation)
	}
	return Decision[W]{refutation: r}
}

func (d Decision[W]) IsProved() bool {
	return d.proved
}

// Witness returns the proof when d is Proved.
func (d Decision[W]) Witness() (W, bool) {
	return d.witness, d.proved
}

// Refutation returns the refutation when d is Disproved.
func (d Decision[W]) Refutation() (Refutation[W], bool) {
	if d.proved || d.refutation == nil {
		return nil, false
	}
	return d.refutation, true
}

// Decided reports whether d was built by Proved or Disproved.
func (d Decision[W]) Decided() bool {
	return d.proved || d.refutation != nil
}

// MustRefutation returns the refutation of a decision already known not to
// be proved.
func (d Decision[W]) MustRefutation() Refutation[W] {
	r, ok := d.Refutation()
	if !ok {
		panic(ErrNilRefutation)
	}
	return r
}

func (d Decision[W]) String() string {
	switch {
	case d.proved:
		return "proved"
	case d.refutation != nil:
		return "disproved"
	default:
		return "undecided"
	}
}

// Elim performs case analysis on a decision.
func Elim[W, R any](d Decision[W], proved func(W) R, disproved func(Refutation[W]) R) R {
	if d.proved {
		return proved(d.witness)
	}
	return disproved(d.MustRefutation())
}

// MapDecision transports a decision along an isomorphism between witness
// types. to maps witnesses forward; from is needed to pull a refutation back.
func MapDecision[W, V any](d Decision[W], to func(W) V, from func(V) W) Decision[V] {
	if d.proved {
		return Proved(to(d.witness))
	}
	r := d.MustRefutation()
	return Disproved[V](func(v V) Void { return r(from(v)) })
}

// ElimDisproof extracts the witness from a decision that is known not to be
// disproved. Reaching the disproved branch means notDisproved was applied to
// a real refutation, which panics.
func ElimDisproof[W any](d Decision[W], notDisproved Refutation[Refutation[W]]) W {
	if d.proved {
		return d.witness
	}
	return Absurd[W](notDisproved(d.MustRefutation()))
}

// Erase forgets the witness type. Applying the erased refutation to a value
// of the wrong type panics.
func Erase[W any](d Decision[W]) Decision[any] {
	return MapDecision(d,
		func(w W) any { return w },
		func(v any) W { return v.(W) })
}
