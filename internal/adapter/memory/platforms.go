package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

// PlatformStatusRepo stores per-(account, platform) onboarding state.
type PlatformStatusRepo struct {
	s *Store
}

// Upsert inserts ps or, when the (account, platform) pair exists, overwrites
// its status and, if ps carries one, its enablement tier.
func (r *PlatformStatusRepo) Upsert(ctx context.Context, ps *domain.PlatformStatus) (*domain.PlatformStatus, error) {
	var out *domain.PlatformStatus
	err := r.s.write(ctx, func() error {
		now := r.s.now().UTC()
		k := platformKey{ps.AccountBSNID, ps.Platform}

		if cur, ok := r.s.platforms[k]; ok {
			cur.Status = ps.Status
			if ps.EnablementTier != nil {
				t := *ps.EnablementTier
				cur.EnablementTier = &t
			}
			cur.UpdatedAt = now
			out = clonePlatformStatus(cur)
			return nil
		}

		c := clonePlatformStatus(ps)
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		c.CreatedAt, c.UpdatedAt = now, now
		r.s.platforms[k] = c
		r.s.platformOrder = append(r.s.platformOrder, k)
		out = clonePlatformStatus(c)
		return nil
	})
	return out, err
}

// ListByAccount returns the account's platform statuses ordered by platform.
func (r *PlatformStatusRepo) ListByAccount(ctx context.Context, bsnid string) ([]*domain.PlatformStatus, error) {
	defer r.s.readLock(ctx)()

	out := []*domain.PlatformStatus{}
	for _, k := range r.s.platformOrder {
		if k.bsnid == bsnid {
			out = append(out, clonePlatformStatus(r.s.platforms[k]))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Platform < out[j].Platform })
	return out, nil
}

// List returns every platform status ordered by account, then platform.
func (r *PlatformStatusRepo) List(ctx context.Context) ([]*domain.PlatformStatus, error) {
	defer r.s.readLock(ctx)()

	out := make([]*domain.PlatformStatus, 0, len(r.s.platformOrder))
	for _, k := range r.s.platformOrder {
		out = append(out, clonePlatformStatus(r.s.platforms[k]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AccountBSNID != out[j].AccountBSNID {
			return out[i].AccountBSNID < out[j].AccountBSNID
		}
		return out[i].Platform < out[j].Platform
	})
	return out, nil
}
