package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Harshitk-cp/decidable/internal/domain"
	"github.com/Harshitk-cp/decidable/internal/predicate"
	"github.com/Harshitk-cp/decidable/internal/store"
	"go.uber.org/zap"
)

var (
	ErrPredicateNotFound = errors.New("predicate not registered")
	ErrNotProvable       = errors.New("predicate has no proof procedure")
)

// CatalogService registers predicates over K by name and proves or decides
// them on request. A name may carry a proof procedure, a decision
// procedure, or both; deciding uses the decision procedure when there is one
// and otherwise wraps the proof.
type CatalogService[K any] struct {
	store  domain.CatalogStore[K]
	logger *zap.Logger
	now    func() time.Time

	mu sync.Mutex
}

func NewCatalogService[K any](s domain.CatalogStore[K], logger *zap.Logger) *CatalogService[K] {
	return &CatalogService[K]{
		store:  s,
		logger: logger,
		now:    time.Now,
	}
}

// RegisterProvable records p's proof procedure under p.Name().
func RegisterProvable[K, W any](ctx context.Context, s *CatalogService[K], p predicate.Provable[K, W]) error {
	return s.register(ctx, p.Name(), func(e *domain.Entry[K]) {
		e.Prove = func(a domain.Sing[K]) any { return p.Prove(a) }
	})
}

// RegisterDecidable records p's decision procedure under p.Name().
func RegisterDecidable[K, W any](ctx context.Context, s *CatalogService[K], p predicate.Decidable[K, W]) error {
	return s.register(ctx, p.Name(), func(e *domain.Entry[K]) {
		e.Decide = func(a domain.Sing[K]) domain.Decision[any] { return domain.Erase(p.Decide(a)) }
	})
}

func (s *CatalogService[K]) register(ctx context.Context, name string, set func(*domain.Entry[K])) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.store.Get(ctx, name)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		e = &domain.Entry[K]{Name: name, RegisteredAt: s.now()}
	}
	set(e)

	if err := s.store.Upsert(ctx, e); err != nil {
		return fmt.Errorf("register %q: %w", name, err)
	}

	s.logger.Debug("predicate registered",
		zap.String("predicate", name),
		zap.Bool("provable", e.Provable()),
		zap.Bool("direct_decision", e.Decide != nil))
	return nil
}

func (s *CatalogService[K]) Decide(ctx context.Context, name string, a domain.Sing[K]) (domain.Decision[any], error) {
	e, err := s.lookup(ctx, name)
	if err != nil {
		return domain.Decision[any]{}, err
	}
	switch {
	case e.Decide != nil:
		return e.Decide(a), nil
	case e.Provable():
		return domain.Proved(e.Prove(a)), nil
	default:
		return domain.Decision[any]{}, fmt.Errorf("%w: %s has no procedure", ErrNotProvable, name)
	}
}

func (s *CatalogService[K]) Prove(ctx context.Context, name string, a domain.Sing[K]) (domain.Wit[K, any], error) {
	e, err := s.lookup(ctx, name)
	if err != nil {
		return domain.Wit[K, any]{}, err
	}
	if !e.Provable() {
		return domain.Wit[K, any]{}, fmt.Errorf("%w: %s", ErrNotProvable, name)
	}
	return domain.NewWit(name, a, e.Prove(a)), nil
}

func (s *CatalogService[K]) Names(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}

func (s *CatalogService[K]) Unregister(ctx context.Context, name string) error {
	err := s.store.Delete(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrPredicateNotFound, name)
	}
	return err
}

func (s *CatalogService[K]) lookup(ctx context.Context, name string) (*domain.Entry[K], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := s.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPredicateNotFound, name)
		}
		return nil, err
	}
	return e, nil
}
