package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

// AddUseCase attaches a new use case to an existing account.
func (s *Service) AddUseCase(ctx context.Context, input AddUseCaseInput) (*domain.UseCase, error) {
	bsnid, p, err := input.normalize(s.catalog)
	if err != nil {
		return nil, err
	}

	var uc *domain.UseCase
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		ok, err := s.accounts.Exists(ctx, bsnid)
		if err != nil {
			return fmt.Errorf("check account: %w", err)
		}
		if !ok {
			return fmt.Errorf("account %s: %w", bsnid, domain.ErrNotFound)
		}

		uc, err = s.useCases.Create(ctx, &domain.UseCase{
			ID:             uuid.New(),
			AccountBSNID:   bsnid,
			Problem:        p.Problem,
			Solution:       p.Solution,
			Leader:         p.Leader,
			Status:         p.Status,
			EnablementTier: p.EnablementTier,
			Platform:       p.Platform,
		})
		if err != nil {
			return fmt.Errorf("create use case: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "use case created",
		slog.String("bsnid", bsnid),
		slog.String("use_case_id", uc.ID.String()),
		slog.String("status", uc.Status.String()),
	)

	return uc, nil
}

// UpdateUseCase overwrites every mutable field of a use case.
func (s *Service) UpdateUseCase(ctx context.Context, input UpdateUseCaseInput) (*domain.UseCase, error) {
	p, err := input.normalize(s.catalog)
	if err != nil {
		return nil, err
	}

	uc, err := s.useCases.Update(ctx, input.ID, p)
	if err != nil {
		return nil, fmt.Errorf("update use case: %w", err)
	}

	s.log.InfoContext(ctx, "use case updated",
		slog.String("use_case_id", uc.ID.String()),
		slog.String("status", uc.Status.String()),
	)

	return uc, nil
}

// GetUseCasesForAccount returns all of an account's use cases, newest first.
func (s *Service) GetUseCasesForAccount(ctx context.Context, bsnid string) ([]*domain.UseCase, error) {
	list, err := s.useCases.ListByAccount(ctx, strings.TrimSpace(bsnid))
	if err != nil {
		return nil, fmt.Errorf("list use cases: %w", err)
	}
	return list, nil
}

// ListUseCases returns use cases across all accounts, annotated with the
// owning team and business area.
func (s *Service) ListUseCases(ctx context.Context, input ListInput) ([]*domain.UseCaseWithAccount, error) {
	f, err := input.filter(s.catalog)
	if err != nil {
		return nil, err
	}
	list, err := s.useCases.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list use cases: %w", err)
	}
	return list, nil
}

// Stats counts use cases by status across all accounts. Active counts the
// open statuses (Active and In Progress).
func (s *Service) Stats(ctx context.Context) (domain.UseCaseStats, error) {
	list, err := s.useCases.List(ctx, domain.UseCaseFilter{})
	if err != nil {
		return domain.UseCaseStats{}, fmt.Errorf("list use cases: %w", err)
	}
	return Summarize(list), nil
}

// Summarize computes use case statistics over list.
func Summarize(list []*domain.UseCaseWithAccount) domain.UseCaseStats {
	stats := domain.UseCaseStats{
		Total:    len(list),
		ByStatus: make(map[domain.UseCaseStatus]int),
	}
	for _, uc := range list {
		stats.ByStatus[uc.Status]++
		switch {
		case uc.Status.IsOpen():
			stats.Active++
		case uc.Status == domain.UseCaseStatusCompleted:
			stats.Completed++
		}
	}
	return stats
}
