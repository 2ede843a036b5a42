package predicate

import "github.com/Harshitk-cp/decidable/internal/domain"

// Not holds at a exactly when Of is refuted at a. A witness of Not is a
// refutation of Of.
type Not[K, W any] struct {
	Of Decidable[K, W]
}

func NewNot[K, W any](of Decidable[K, W]) Not[K, W] {
	return Not[K, W]{Of: of}
}

func (n Not[K, W]) Name() string {
	return "not(" + n.Of.Name() + ")"
}

func (n Not[K, W]) Decide(a domain.Sing[K]) domain.Decision[domain.Refutation[W]] {
	return DecideNot(n.Of.Decide(a))
}

// DecideNot turns a decision for p into a decision for Not(p). A witness w of
// p refutes Not(p) by being fed to the hypothetical refutation; a refutation
// of p is already a witness of Not(p). An undecided d panics with
// domain.ErrNilRefutation.
func DecideNot[W any](d domain.Decision[W]) domain.Decision[domain.Refutation[W]] {
	if w, ok := d.Witness(); ok {
		return domain.Disproved[domain.Refutation[W]](func(r domain.Refutation[W]) domain.Void {
			return r(w)
		})
	}
	return domain.Proved(d.MustRefutation())
}

// DoubleNegate proves Not(Not(p)) from a witness of p.
func DoubleNegate[W any](w W) domain.Refutation[domain.Refutation[W]] {
	return func(r domain.Refutation[W]) domain.Void {
		return r(w)
	}
}
