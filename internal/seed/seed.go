// Package seed loads the demonstration dataset into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/heartmarshall/edip-crm/internal/domain"
	"github.com/heartmarshall/edip-crm/internal/service/account"
	"github.com/heartmarshall/edip-crm/internal/service/activity"
	"github.com/heartmarshall/edip-crm/internal/service/businessarea"
	"github.com/heartmarshall/edip-crm/internal/service/usecase"
)

type accountService interface {
	SearchAccounts(ctx context.Context, term string) ([]*domain.Account, error)
	AddAccount(ctx context.Context, input account.AddAccountInput) (*domain.Account, error)
	SetPlatformStatus(ctx context.Context, input account.SetPlatformStatusInput) (*domain.PlatformStatus, error)
	AddAzureDevOpsLink(ctx context.Context, bsnid, url string) (*domain.Account, error)
	AddArtifactsFolderLink(ctx context.Context, bsnid, url string) (*domain.Account, error)
}

type useCaseService interface {
	AddUseCase(ctx context.Context, input usecase.AddUseCaseInput) (*domain.UseCase, error)
}

type activityService interface {
	AddUpdate(ctx context.Context, input activity.AddUpdateInput) (*domain.Update, error)
}

type areaService interface {
	UpdatePrimaryITPartner(ctx context.Context, input businessarea.Input) (*domain.BusinessArea, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Seeder writes the sample dataset through the services, so the records get
// fresh ids and pass the same validation as user input.
type Seeder struct {
	accounts accountService
	useCases useCaseService
	updates  activityService
	areas    areaService
	tx       txManager
	now      func() time.Time
	log      *slog.Logger
}

// New creates a Seeder.
func New(
	log *slog.Logger,
	accounts accountService,
	useCases useCaseService,
	updates activityService,
	areas areaService,
	tx txManager,
) *Seeder {
	return &Seeder{
		accounts: accounts,
		useCases: useCases,
		updates:  updates,
		areas:    areas,
		tx:       tx,
		now:      time.Now,
		log:      log.With("component", "seed"),
	}
}

// Result reports what Apply wrote.
type Result struct {
	Applied       bool
	BusinessAreas int
	Accounts      int
	UseCases      int
	Updates       int
}

// Apply loads the sample dataset in one transaction. It does nothing if the
// store already holds an account.
func (s *Seeder) Apply(ctx context.Context) (Result, error) {
	var res Result

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.accounts.SearchAccounts(ctx, "")
		if err != nil {
			return fmt.Errorf("check existing accounts: %w", err)
		}
		if len(existing) > 0 {
			return nil
		}

		for _, a := range areas {
			if _, err := s.areas.UpdatePrimaryITPartner(ctx, businessarea.Input{Name: a.name, Partner: a.partner}); err != nil {
				return fmt.Errorf("seed business area %s: %w", a.name, err)
			}
			res.BusinessAreas++
		}

		today := domain.DateOf(s.now())
		for _, a := range accounts {
			if err := s.seedAccount(ctx, a, today, &res); err != nil {
				return fmt.Errorf("seed account %s: %w", a.team, err)
			}
		}
		res.Applied = true
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	if res.Applied {
		s.log.InfoContext(ctx, "sample data seeded",
			slog.Int("business_areas", res.BusinessAreas),
			slog.Int("accounts", res.Accounts),
			slog.Int("use_cases", res.UseCases),
			slog.Int("updates", res.Updates),
		)
	} else {
		s.log.InfoContext(ctx, "store not empty, sample data skipped")
	}
	return res, nil
}

func (s *Seeder) seedAccount(ctx context.Context, a accountSeed, today time.Time, res *Result) error {
	created, err := s.accounts.AddAccount(ctx, account.AddAccountInput{
		Team:             a.team,
		BusinessArea:     a.area,
		VP:               a.vp,
		Admin:            a.admin,
		ITPartner:        a.partner,
		PlatformStatuses: a.platforms,
	})
	if err != nil {
		return err
	}
	res.Accounts++
	bsnid := created.BSNID

	for _, p := range slices.Sorted(maps.Keys(a.tiers)) {
		tier := a.tiers[p]
		if _, err := s.accounts.SetPlatformStatus(ctx, account.SetPlatformStatusInput{
			BSNID: bsnid, Platform: p, Status: a.platforms[p], EnablementTier: &tier,
		}); err != nil {
			return err
		}
	}
	for _, link := range a.devOps {
		if _, err := s.accounts.AddAzureDevOpsLink(ctx, bsnid, link); err != nil {
			return err
		}
	}
	for _, link := range a.artifacts {
		if _, err := s.accounts.AddArtifactsFolderLink(ctx, bsnid, link); err != nil {
			return err
		}
	}

	for _, uc := range a.useCases {
		if _, err := s.useCases.AddUseCase(ctx, usecase.AddUseCaseInput{
			BSNID: bsnid,
			Fields: usecase.Fields{
				Problem:        uc.problem,
				Solution:       uc.solution,
				Leader:         uc.leader,
				Status:         uc.status,
				EnablementTier: uc.tier,
				Platform:       uc.platform,
			},
		}); err != nil {
			return err
		}
		res.UseCases++
	}

	for _, u := range a.updates {
		if _, err := s.updates.AddUpdate(ctx, activity.AddUpdateInput{
			BSNID: bsnid,
			Fields: activity.Fields{
				Author:        u.author,
				EffectiveDate: today.AddDate(0, 0, -u.daysAgo),
				Platform:      u.platform,
				Description:   u.description,
			},
		}); err != nil {
			return err
		}
		res.Updates++
	}
	return nil
}
