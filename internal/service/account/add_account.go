package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

func newBSNID() string { return uuid.NewString() }

// AddAccount creates an account with a fresh BSNID together with its initial
// platform statuses, in one transaction.
func (s *Service) AddAccount(ctx context.Context, input AddAccountInput) (*domain.Account, error) {
	in, err := input.normalize(s.catalog)
	if err != nil {
		return nil, err
	}

	var created *domain.Account
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		partner := in.ITPartner
		if partner == "" {
			partner, err = s.defaultPartner(ctx, in.BusinessArea)
			if err != nil {
				return err
			}
		}

		created, err = s.accounts.Create(ctx, &domain.Account{
			BSNID:                s.newBSNID(),
			Team:                 in.Team,
			BusinessArea:         in.BusinessArea,
			VP:                   in.VP,
			Admin:                in.Admin,
			PrimaryITPartner:     partner,
			AzureDevOpsLinks:     []string{},
			ArtifactsFolderLinks: []string{},
		})
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}

		for _, p := range slices.Sorted(maps.Keys(in.PlatformStatuses)) {
			if _, err := s.platforms.Upsert(ctx, &domain.PlatformStatus{
				AccountBSNID: created.BSNID,
				Platform:     p,
				Status:       in.PlatformStatuses[p],
			}); err != nil {
				return fmt.Errorf("set platform %s: %w", p, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "account created",
		slog.String("bsnid", created.BSNID),
		slog.String("team", created.Team),
		slog.Int("platforms", len(in.PlatformStatuses)),
	)

	return created, nil
}

// defaultPartner looks up the registry default for a business area.
// An unregistered area yields an empty partner.
func (s *Service) defaultPartner(ctx context.Context, area string) (string, error) {
	ba, err := s.areas.Get(ctx, area)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get business area: %w", err)
	}
	return ba.DefaultITPartner, nil
}
