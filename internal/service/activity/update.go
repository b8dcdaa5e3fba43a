package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/edip-crm/internal/domain"
	"github.com/heartmarshall/edip-crm/internal/service/validation"
)

// AddUpdate records a progress note on an existing account.
func (s *Service) AddUpdate(ctx context.Context, input AddUpdateInput) (*domain.Update, error) {
	var errs validation.Errors
	bsnid := strings.TrimSpace(input.BSNID)
	if bsnid == "" {
		errs.Add("bsnid", "required")
	}
	p := input.Fields.normalize(&errs, s.catalog, s.now())
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var u *domain.Update
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		ok, err := s.accounts.Exists(ctx, bsnid)
		if err != nil {
			return fmt.Errorf("check account: %w", err)
		}
		if !ok {
			return fmt.Errorf("account %s: %w", bsnid, domain.ErrNotFound)
		}

		u, err = s.updates.Create(ctx, &domain.Update{
			ID:            uuid.New(),
			AccountBSNID:  bsnid,
			Author:        p.Author,
			EffectiveDate: p.EffectiveDate,
			Platform:      p.Platform,
			Description:   p.Description,
		})
		if err != nil {
			return fmt.Errorf("create update: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "update added",
		slog.String("bsnid", bsnid),
		slog.String("update_id", u.ID.String()),
		slog.String("date", u.EffectiveDate.Format(domain.DateLayout)),
	)

	return u, nil
}

// UpdateUpdate overwrites the author, date, platform and description of an
// update.
func (s *Service) UpdateUpdate(ctx context.Context, input UpdateUpdateInput) (*domain.Update, error) {
	var errs validation.Errors
	if input.ID == uuid.Nil {
		errs.Add("id", "required")
	}
	p := input.Fields.normalize(&errs, s.catalog, s.now())
	if err := errs.Err(); err != nil {
		return nil, err
	}

	u, err := s.updates.Update(ctx, input.ID, p)
	if err != nil {
		return nil, fmt.Errorf("update update: %w", err)
	}

	s.log.InfoContext(ctx, "update edited", slog.String("update_id", u.ID.String()))

	return u, nil
}

// GetUpdatesForAccount returns an account's updates, newest effective date
// first and, within a date, most recently created first.
func (s *Service) GetUpdatesForAccount(ctx context.Context, bsnid string) ([]*domain.Update, error) {
	list, err := s.updates.ListByAccount(ctx, strings.TrimSpace(bsnid))
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	return list, nil
}

// ListUpdates returns updates across all accounts in display order.
func (s *Service) ListUpdates(ctx context.Context, input ListInput) ([]*domain.UpdateWithAccount, error) {
	f, err := input.filter(s.catalog)
	if err != nil {
		return nil, err
	}
	list, err := s.updates.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	return list, nil
}
