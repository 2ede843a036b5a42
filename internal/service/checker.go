package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Harshitk-cp/decidable/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultCheckParallelism = 4

// Check asks whether the named catalog predicate holds at Value.
type Check[K any] struct {
	Predicate string
	Value     K
}

// Report is the outcome of one checker run. Verdicts line up with the
// checks that produced them.
type Report struct {
	ID         uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	Verdicts   []domain.Verdict
	Proved     int
	Disproved  int
}

type CheckerService[K any] struct {
	catalog *CatalogService[K]
	logger  *zap.Logger

	parallelism int
}

func NewCheckerService[K any](catalog *CatalogService[K], logger *zap.Logger) *CheckerService[K] {
	return &CheckerService[K]{
		catalog:     catalog,
		logger:      logger,
		parallelism: defaultCheckParallelism,
	}
}

// SetParallelism bounds how many checks are decided at once. Zero or less
// removes the bound.
func (s *CheckerService[K]) SetParallelism(n int) {
	s.parallelism = n
}

// Run decides every check. An unknown predicate fails the whole run.
func (s *CheckerService[K]) Run(ctx context.Context, checks []Check[K]) (*Report, error) {
	report := &Report{
		ID:        uuid.New(),
		StartedAt: time.Now(),
		Verdicts:  make([]domain.Verdict, len(checks)),
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.parallelism > 0 {
		g.SetLimit(s.parallelism)
	}
	for i, c := range checks {
		g.Go(func() error {
			d, err := s.catalog.Decide(gctx, c.Predicate, domain.SingOf(c.Value))
			if err != nil {
				return fmt.Errorf("check %d (%s): %w", i, c.Predicate, err)
			}
			report.Verdicts[i] = domain.Verdict{
				Predicate: c.Predicate,
				Value:     fmt.Sprintf("%v", c.Value),
				Proved:    d.IsProved(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("check run failed",
			zap.String("report_id", report.ID.String()),
			zap.Error(err))
		return nil, err
	}

	for _, v := range report.Verdicts {
		if v.Proved {
			report.Proved++
		} else {
			report.Disproved++
		}
	}
	report.FinishedAt = time.Now()

	s.logger.Info("check run complete",
		zap.String("report_id", report.ID.String()),
		zap.Int("checks", len(checks)),
		zap.Int("proved", report.Proved),
		zap.Int("disproved", report.Disproved),
		zap.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)))
	return report, nil
}
