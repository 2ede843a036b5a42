package domain

import (
	"context"
	"time"
)

// Entry is a catalog registration of a predicate over K with its witness
// type erased. At least one of Prove and Decide is set; when both are, Decide
// is the one used to decide.
type Entry[K any] struct {
	Name         string
	Prove        func(Sing[K]) any
	Decide       func(Sing[K]) Decision[any]
	RegisteredAt time.Time
}

// Provable reports whether the entry carries a proof procedure.
func (e *Entry[K]) Provable() bool {
	return e.Prove != nil
}

// Verdict summarises one decision for reporting.
type Verdict struct {
	Predicate string
	Value     string
	Proved    bool
}

// CatalogStore handles storage and lookup of registered predicates by name.
type CatalogStore[K any] interface {
	// Upsert replaces any entry with the same name. An entry must carry a
	// name and at least one procedure.
	Upsert(ctx context.Context, e *Entry[K]) error
	Get(ctx context.Context, name string) (*Entry[K], error)
	// List returns registered names in sorted order.
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
}
