package domain

// Wit carries a witness that the named predicate holds at a value. It is
// interchangeable with the bare proof; the wrapper only records where the
// proof came from.
type Wit[K, W any] struct {
	pred  string
	at    Sing[K]
	proof W
}

func NewWit[K, W any](pred string, at Sing[K], proof W) Wit[K, W] {
	return Wit[K, W]{pred: pred, at: at, proof: proof}
}

func (w Wit[K, W]) Predicate() string {
	return w.pred
}

func (w Wit[K, W]) At() Sing[K] {
	return w.at
}

func (w Wit[K, W]) Proof() W {
	return w.proof
}
