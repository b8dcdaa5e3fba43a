package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

// UpdateRepo stores account updates.
type UpdateRepo struct {
	s *Store
}

// Create inserts an update. The effective date is truncated to a calendar date.
func (r *UpdateRepo) Create(ctx context.Context, u *domain.Update) (*domain.Update, error) {
	var out *domain.Update
	err := r.s.write(ctx, func() error {
		c := *u
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		if _, ok := r.s.updates[c.ID]; ok {
			return alreadyExists("update", c.ID)
		}
		now := r.s.now().UTC()
		c.EffectiveDate = domain.DateOf(c.EffectiveDate)
		c.CreatedAt, c.UpdatedAt = now, now
		r.s.updates[c.ID] = &c
		r.s.updateOrder = append(r.s.updateOrder, c.ID)
		cp := c
		out = &cp
		return nil
	})
	return out, err
}

// GetByID returns an update. Returns domain.ErrNotFound for an unknown id.
func (r *UpdateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Update, error) {
	defer r.s.readLock(ctx)()

	u, ok := r.s.updates[id]
	if !ok {
		return nil, notFound("update", id)
	}
	c := *u
	return &c, nil
}

// Update overwrites every mutable field of an update.
func (r *UpdateRepo) Update(ctx context.Context, id uuid.UUID, p domain.UpdateUpdateParams) (*domain.Update, error) {
	var out *domain.Update
	err := r.s.write(ctx, func() error {
		u, ok := r.s.updates[id]
		if !ok {
			return notFound("update", id)
		}
		u.Author = p.Author
		u.EffectiveDate = domain.DateOf(p.EffectiveDate)
		u.Platform = p.Platform
		u.Description = p.Description
		u.UpdatedAt = r.s.now().UTC()
		c := *u
		out = &c
		return nil
	})
	return out, err
}

// ListByAccount returns the account's updates in display order.
func (r *UpdateRepo) ListByAccount(ctx context.Context, bsnid string) ([]*domain.Update, error) {
	defer r.s.readLock(ctx)()

	out := []*domain.Update{}
	for _, id := range slices.Backward(r.s.updateOrder) {
		if u := r.s.updates[id]; u.AccountBSNID == bsnid {
			c := *u
			out = append(out, &c)
		}
	}
	domain.SortUpdates(out)
	return out, nil
}

// List returns updates of all accounts that pass f, in display order.
func (r *UpdateRepo) List(ctx context.Context, f domain.UpdateFilter) ([]*domain.UpdateWithAccount, error) {
	defer r.s.readLock(ctx)()

	out := []*domain.UpdateWithAccount{}
	for _, id := range slices.Backward(r.s.updateOrder) {
		u := &domain.UpdateWithAccount{Update: *r.s.updates[id]}
		if a, ok := r.s.accounts[u.AccountBSNID]; ok {
			u.Team, u.BusinessArea = a.Team, a.BusinessArea
		}
		if f.Match(u) {
			out = append(out, u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return domain.UpdateLess(&out[i].Update, &out[j].Update) })
	return out, nil
}

func alreadyExists(entity string, id any) error {
	return fmt.Errorf("%s %v: %w", entity, id, domain.ErrAlreadyExists)
}
