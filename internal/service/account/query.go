package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

// SearchAccounts returns accounts whose team, business area, VP, admin or IT
// partner contains term, case-insensitively. A blank term returns all.
func (s *Service) SearchAccounts(ctx context.Context, term string) ([]*domain.Account, error) {
	accounts, err := s.accounts.Search(ctx, domain.NormalizeSearchTerm(term))
	if err != nil {
		return nil, fmt.Errorf("search accounts: %w", err)
	}
	return accounts, nil
}

// GetAccount returns an account with its platform statuses, use cases and
// updates.
func (s *Service) GetAccount(ctx context.Context, bsnid string) (*domain.AccountDetails, error) {
	bsnid = strings.TrimSpace(bsnid)
	if bsnid == "" {
		return nil, domain.NewValidationError("bsnid", "required")
	}

	a, err := s.accounts.GetByBSNID(ctx, bsnid)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	platforms, err := s.platforms.ListByAccount(ctx, bsnid)
	if err != nil {
		return nil, fmt.Errorf("list platforms: %w", err)
	}
	useCases, err := s.useCases.ListByAccount(ctx, bsnid)
	if err != nil {
		return nil, fmt.Errorf("list use cases: %w", err)
	}
	updates, err := s.updates.ListByAccount(ctx, bsnid)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}

	return &domain.AccountDetails{
		Account:   a,
		Platforms: platforms,
		UseCases:  useCases,
		Updates:   updates,
	}, nil
}
