package main

import (
	"context"
	"fmt"

	"github.com/Harshitk-cp/decidable/internal/domain"
	"github.com/Harshitk-cp/decidable/internal/predicate"
	"github.com/Harshitk-cp/decidable/internal/service"
	"github.com/Harshitk-cp/decidable/internal/store"
	"go.uber.org/zap"
)

type (
	refuted = domain.Refutation[domain.Sing[int]]
	flag    = predicate.Refl[bool]
)

// newCatalog registers the built-in integer predicates plus equal_to_<c>
// for every constant in equals.
func newCatalog(ctx context.Context, logger *zap.Logger, equals []int) (*service.CatalogService[int], error) {
	c := service.NewCatalogService[int](store.NewPredicateStore[int](), logger)

	even := predicate.NewBoolPred("even", func(n int) bool { return n%2 == 0 })
	positive := predicate.NewBoolPred("positive", func(n int) bool { return n > 0 })

	regs := []func() error{
		func() error {
			return service.RegisterProvable[int, domain.Sing[int]](ctx, c, predicate.Evident[int]{})
		},
		func() error {
			return service.RegisterDecidable[int, refuted](ctx, c, predicate.Impossible[int]{})
		},
		func() error {
			return service.RegisterProvable[int, domain.Refutation[refuted]](ctx, c, predicate.NotImpossible[int]{})
		},
		func() error {
			return service.RegisterDecidable[int, flag](ctx, c, predicate.NewAlias[int, flag]("even", even))
		},
		func() error {
			return service.RegisterDecidable[int, flag](ctx, c, predicate.NewAlias[int, flag]("positive", positive))
		},
		func() error {
			notEven := predicate.NewNot[int, flag](even)
			return service.RegisterDecidable[int, domain.Refutation[flag]](ctx, c, predicate.NewAlias[int, domain.Refutation[flag]]("not_even", notEven))
		},
		func() error {
			both := predicate.NewAnd[int, flag, flag](even, positive)
			return service.RegisterDecidable[int, predicate.Pair[flag, flag]](ctx, c, predicate.NewAlias[int, predicate.Pair[flag, flag]]("even_and_positive", both))
		},
		func() error {
			either := predicate.NewOr[int, flag, flag](even, positive)
			return service.RegisterDecidable[int, predicate.Either[flag, flag]](ctx, c, predicate.NewAlias[int, predicate.Either[flag, flag]]("even_or_positive", either))
		},
	}
	for _, constant := range equals {
		name := fmt.Sprintf("equal_to_%d", constant)
		eq := predicate.NewEqualTo(constant)
		regs = append(regs, func() error {
			return service.RegisterDecidable[int, predicate.Refl[int]](ctx, c, predicate.NewAlias[int, predicate.Refl[int]](name, eq))
		})
	}

	for _, register := range regs {
		if err := register(); err != nil {
			return nil, err
		}
	}
	return c, nil
}
