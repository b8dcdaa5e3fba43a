// Package report builds read-only views over the whole dataset: the
// dashboard summary and the full export used for backups.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/edip-crm/internal/domain"
	"github.com/heartmarshall/edip-crm/internal/service/usecase"
)

type snapshotRunner interface {
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

type accountRepo interface {
	Search(ctx context.Context, term string) ([]*domain.Account, error)
}

type useCaseRepo interface {
	List(ctx context.Context, f domain.UseCaseFilter) ([]*domain.UseCaseWithAccount, error)
}

type updateRepo interface {
	List(ctx context.Context, f domain.UpdateFilter) ([]*domain.UpdateWithAccount, error)
}

type platformRepo interface {
	List(ctx context.Context) ([]*domain.PlatformStatus, error)
}

type areaRepo interface {
	List(ctx context.Context) ([]*domain.BusinessArea, error)
}

// Service computes reports.
type Service struct {
	tx          snapshotRunner
	accounts    accountRepo
	useCases    useCaseRepo
	updates     updateRepo
	platforms   platformRepo
	areas       areaRepo
	recentLimit int
	now         func() time.Time
	log         *slog.Logger
}

// NewService creates a new Report service. recentLimit caps the number of
// updates shown on the dashboard.
func NewService(
	log *slog.Logger,
	tx snapshotRunner,
	accounts accountRepo,
	useCases useCaseRepo,
	updates updateRepo,
	platforms platformRepo,
	areas areaRepo,
	recentLimit int,
) *Service {
	return &Service{
		tx:          tx,
		accounts:    accounts,
		useCases:    useCases,
		updates:     updates,
		platforms:   platforms,
		areas:       areas,
		recentLimit: recentLimit,
		now:         time.Now,
		log:         log.With("service", "report"),
	}
}

// dataset is every record, read from one snapshot so that the views agree
// with each other.
type dataset struct {
	accounts  []*domain.Account
	useCases  []*domain.UseCaseWithAccount
	updates   []*domain.UpdateWithAccount
	platforms []*domain.PlatformStatus
	areas     []*domain.BusinessArea
}

func (s *Service) load(ctx context.Context) (*dataset, error) {
	var d dataset
	err := s.tx.RunInSnapshot(ctx, func(ctx context.Context) (err error) {
		if d.accounts, err = s.accounts.Search(ctx, ""); err != nil {
			return fmt.Errorf("list accounts: %w", err)
		}
		if d.useCases, err = s.useCases.List(ctx, domain.UseCaseFilter{}); err != nil {
			return fmt.Errorf("list use cases: %w", err)
		}
		if d.updates, err = s.updates.List(ctx, domain.UpdateFilter{}); err != nil {
			return fmt.Errorf("list updates: %w", err)
		}
		if d.platforms, err = s.platforms.List(ctx); err != nil {
			return fmt.Errorf("list platform statuses: %w", err)
		}
		if d.areas, err = s.areas.List(ctx); err != nil {
			return fmt.Errorf("list business areas: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Dashboard summarizes the dataset: totals, use case statistics, onboarding
// per platform, the most used platform, the most active author and business
// area, and the most recent updates.
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	d, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	dash := &domain.Dashboard{
		Accounts:             len(d.accounts),
		UseCases:             usecase.Summarize(d.useCases),
		Updates:              len(d.updates),
		OnboardingByPlatform: make(map[domain.Platform]map[domain.OnboardingStatus]int),
	}

	for _, ps := range d.platforms {
		byStatus, ok := dash.OnboardingByPlatform[ps.Platform]
		if !ok {
			byStatus = make(map[domain.OnboardingStatus]int)
			dash.OnboardingByPlatform[ps.Platform] = byStatus
		}
		byStatus[ps.Status]++
	}

	platforms := make(map[string]int)
	for _, uc := range d.useCases {
		platforms[string(uc.Platform)]++
	}
	authors := make(map[string]int)
	areas := make(map[string]int)
	for _, u := range d.updates {
		authors[u.Author]++
		if u.BusinessArea != "" {
			areas[u.BusinessArea]++
		}
	}
	dash.TopPlatform = domain.TopOf(platforms)
	dash.TopAuthor = domain.TopOf(authors)
	dash.TopBusinessArea = domain.TopOf(areas)

	recent := d.updates
	if s.recentLimit > 0 && len(recent) > s.recentLimit {
		recent = recent[:s.recentLimit]
	}
	dash.RecentUpdates = recent

	return dash, nil
}

// Export returns a full copy of the dataset.
func (s *Service) Export(ctx context.Context) (*domain.Snapshot, error) {
	d, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	snap := &domain.Snapshot{
		TakenAt:          s.now().UTC(),
		Accounts:         d.accounts,
		UseCases:         make([]*domain.UseCase, len(d.useCases)),
		Updates:          make([]*domain.Update, len(d.updates)),
		PlatformStatuses: d.platforms,
		BusinessAreas:    d.areas,
	}
	for i, uc := range d.useCases {
		c := uc.UseCase
		snap.UseCases[i] = &c
	}
	for i, u := range d.updates {
		c := u.Update
		snap.Updates[i] = &c
	}

	s.log.InfoContext(ctx, "dataset exported",
		slog.Int("accounts", len(snap.Accounts)),
		slog.Int("use_cases", len(snap.UseCases)),
		slog.Int("updates", len(snap.Updates)),
	)

	return snap, nil
}
