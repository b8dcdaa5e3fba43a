package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

// UseCaseRepo stores use cases.
type UseCaseRepo struct {
	s *Store
}

// Create inserts a use case.
func (r *UseCaseRepo) Create(ctx context.Context, uc *domain.UseCase) (*domain.UseCase, error) {
	var out *domain.UseCase
	err := r.s.write(ctx, func() error {
		c := *uc
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		if _, ok := r.s.useCases[c.ID]; ok {
			return alreadyExists("use_case", c.ID)
		}
		now := r.s.now().UTC()
		c.CreatedAt, c.UpdatedAt = now, now
		r.s.useCases[c.ID] = &c
		r.s.useCaseOrder = append(r.s.useCaseOrder, c.ID)
		cp := c
		out = &cp
		return nil
	})
	return out, err
}

// GetByID returns a use case. Returns domain.ErrNotFound for an unknown id.
func (r *UseCaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UseCase, error) {
	defer r.s.readLock(ctx)()

	uc, ok := r.s.useCases[id]
	if !ok {
		return nil, notFound("use_case", id)
	}
	c := *uc
	return &c, nil
}

// Update overwrites every mutable field of a use case.
func (r *UseCaseRepo) Update(ctx context.Context, id uuid.UUID, p domain.UseCaseUpdateParams) (*domain.UseCase, error) {
	var out *domain.UseCase
	err := r.s.write(ctx, func() error {
		uc, ok := r.s.useCases[id]
		if !ok {
			return notFound("use_case", id)
		}
		uc.Problem = p.Problem
		uc.Solution = p.Solution
		uc.Leader = p.Leader
		uc.Status = p.Status
		uc.EnablementTier = p.EnablementTier
		uc.Platform = p.Platform
		uc.UpdatedAt = r.s.now().UTC()
		c := *uc
		out = &c
		return nil
	})
	return out, err
}

// ListByAccount returns the account's use cases, newest first.
func (r *UseCaseRepo) ListByAccount(ctx context.Context, bsnid string) ([]*domain.UseCase, error) {
	defer r.s.readLock(ctx)()

	out := []*domain.UseCase{}
	for _, id := range slices.Backward(r.s.useCaseOrder) {
		if uc := r.s.useCases[id]; uc.AccountBSNID == bsnid {
			c := *uc
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// List returns use cases of all accounts that pass f, newest first. Use cases
// whose account is missing are returned with empty team and business area.
func (r *UseCaseRepo) List(ctx context.Context, f domain.UseCaseFilter) ([]*domain.UseCaseWithAccount, error) {
	defer r.s.readLock(ctx)()

	out := []*domain.UseCaseWithAccount{}
	for _, id := range slices.Backward(r.s.useCaseOrder) {
		uc := &domain.UseCaseWithAccount{UseCase: *r.s.useCases[id]}
		if a, ok := r.s.accounts[uc.AccountBSNID]; ok {
			uc.Team, uc.BusinessArea = a.Team, a.BusinessArea
		}
		if f.Match(uc) {
			out = append(out, uc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
