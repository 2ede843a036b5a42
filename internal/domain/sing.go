package domain

import "fmt"

// Sing is the run-time representation of a domain value. Proof and decision
// procedures receive their argument as a Sing.
type Sing[K any] struct {
	value K
}

func SingOf[K any](v K) Sing[K] {
	return Sing[K]{value: v}
}

func (s Sing[K]) Value() K {
	return s.value
}

func (s Sing[K]) String() string {
	return fmt.Sprintf("%v", s.value)
}
