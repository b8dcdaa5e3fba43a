package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

// SetPlatformStatus creates or overwrites the account's status on a platform.
// The enablement tier is overwritten only when provided.
func (s *Service) SetPlatformStatus(ctx context.Context, input SetPlatformStatusInput) (*domain.PlatformStatus, error) {
	in, err := input.normalize(s.catalog)
	if err != nil {
		return nil, err
	}

	var ps *domain.PlatformStatus
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.requireAccount(ctx, in.BSNID); err != nil {
			return err
		}
		ps, err = s.platforms.Upsert(ctx, &domain.PlatformStatus{
			AccountBSNID:   in.BSNID,
			Platform:       in.Platform,
			Status:         in.Status,
			EnablementTier: in.EnablementTier,
		})
		if err != nil {
			return fmt.Errorf("upsert platform status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "platform status set",
		slog.String("bsnid", in.BSNID),
		slog.String("platform", in.Platform.String()),
		slog.String("status", in.Status.String()),
	)

	return ps, nil
}

// AddPlatformToAccount records an account's first status on a platform.
func (s *Service) AddPlatformToAccount(ctx context.Context, bsnid string, platform domain.Platform, status domain.OnboardingStatus) (*domain.PlatformStatus, error) {
	return s.SetPlatformStatus(ctx, SetPlatformStatusInput{BSNID: bsnid, Platform: platform, Status: status})
}

// UpdatePlatformStatus changes an account's status, and optionally tier, on a
// platform.
func (s *Service) UpdatePlatformStatus(ctx context.Context, bsnid string, platform domain.Platform, status domain.OnboardingStatus, tier *domain.EnablementTier) (*domain.PlatformStatus, error) {
	return s.SetPlatformStatus(ctx, SetPlatformStatusInput{BSNID: bsnid, Platform: platform, Status: status, EnablementTier: tier})
}

// ListPlatformStatuses returns the account's platform statuses ordered by
// platform name.
func (s *Service) ListPlatformStatuses(ctx context.Context, bsnid string) ([]*domain.PlatformStatus, error) {
	bsnid = strings.TrimSpace(bsnid)
	if err := s.requireAccount(ctx, bsnid); err != nil {
		return nil, err
	}
	list, err := s.platforms.ListByAccount(ctx, bsnid)
	if err != nil {
		return nil, fmt.Errorf("list platform statuses: %w", err)
	}
	return list, nil
}

func (s *Service) requireAccount(ctx context.Context, bsnid string) error {
	ok, err := s.accounts.Exists(ctx, bsnid)
	if err != nil {
		return fmt.Errorf("check account: %w", err)
	}
	if !ok {
		return fmt.Errorf("account %s: %w", bsnid, domain.ErrNotFound)
	}
	return nil
}
