package memory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

// BusinessAreaRepo stores the business area to default IT partner registry.
type BusinessAreaRepo struct {
	s *Store
}

// Get returns a registry entry. Returns domain.ErrNotFound for an unknown name.
func (r *BusinessAreaRepo) Get(ctx context.Context, name string) (*domain.BusinessArea, error) {
	defer r.s.readLock(ctx)()

	ba, ok := r.s.businessAreas[name]
	if !ok {
		return nil, notFound("business_area", name)
	}
	c := *ba
	return &c, nil
}

// Create adds a registry entry. Returns domain.ErrAlreadyExists if the name is taken.
func (r *BusinessAreaRepo) Create(ctx context.Context, name, partner string) (*domain.BusinessArea, error) {
	var out *domain.BusinessArea
	err := r.s.write(ctx, func() error {
		if _, ok := r.s.businessAreas[name]; ok {
			return fmt.Errorf("business_area %s: %w", name, domain.ErrAlreadyExists)
		}
		now := r.s.now().UTC()
		ba := &domain.BusinessArea{Name: name, DefaultITPartner: partner, CreatedAt: now, UpdatedAt: now}
		r.s.businessAreas[name] = ba
		c := *ba
		out = &c
		return nil
	})
	return out, err
}

// Upsert sets the default IT partner of a business area, creating the entry
// if needed.
func (r *BusinessAreaRepo) Upsert(ctx context.Context, name, partner string) (*domain.BusinessArea, error) {
	var out *domain.BusinessArea
	err := r.s.write(ctx, func() error {
		now := r.s.now().UTC()
		ba, ok := r.s.businessAreas[name]
		if !ok {
			ba = &domain.BusinessArea{Name: name, CreatedAt: now}
			r.s.businessAreas[name] = ba
		}
		ba.DefaultITPartner = partner
		ba.UpdatedAt = now
		c := *ba
		out = &c
		return nil
	})
	return out, err
}

// List returns all entries ordered by name.
func (r *BusinessAreaRepo) List(ctx context.Context) ([]*domain.BusinessArea, error) {
	defer r.s.readLock(ctx)()

	out := make([]*domain.BusinessArea, 0, len(r.s.businessAreas))
	for _, name := range r.s.businessAreaNames() {
		c := *r.s.businessAreas[name]
		out = append(out, &c)
	}
	return out, nil
}
