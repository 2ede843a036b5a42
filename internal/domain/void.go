package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAbsurd is raised when a refutation is handed a witness that could
	// only have been built by a broken predicate instance.
	ErrAbsurd = errors.New("absurd: refuted predicate was witnessed")

	ErrNilRefutation = errors.New("disproved decision requires a refutation")
)

// Void has no values. Code holding a Void is unreachable, so a function
// returning Void can only leave by panicking.
type Void interface {
	void()
}

// Absurd eliminates a Void into any type.
func Absurd[T any](v Void) T {
	panic(fmt.Errorf("%w: eliminated a Void value", ErrAbsurd))
}

// Contradiction is what a refutation returns once it has shown that its
// argument could not exist.
func Contradiction(format string, args ...any) Void {
	panic(fmt.Errorf("%w: %s", ErrAbsurd, fmt.Sprintf(format, args...)))
}

// Refutation turns a hypothetical witness of W into absurdity. Holding one is
// evidence that no W exists for the value in question.
type Refutation[W any] func(W) Void
