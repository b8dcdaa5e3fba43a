package memory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

// AccountRepo stores accounts.
type AccountRepo struct {
	s *Store
}

// Create inserts a new account. Returns domain.ErrAlreadyExists if the BSNID
// is taken.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	var out *domain.Account
	err := r.s.write(ctx, func() error {
		if _, ok := r.s.accounts[a.BSNID]; ok {
			return fmt.Errorf("account %s: %w", a.BSNID, domain.ErrAlreadyExists)
		}
		c := a.Clone()
		now := r.s.now().UTC()
		c.CreatedAt, c.UpdatedAt = now, now
		r.s.accounts[c.BSNID] = c
		r.s.accountOrder = append(r.s.accountOrder, c.BSNID)
		out = c.Clone()
		return nil
	})
	return out, err
}

// GetByBSNID returns an account. Returns domain.ErrNotFound for an unknown BSNID.
func (r *AccountRepo) GetByBSNID(ctx context.Context, bsnid string) (*domain.Account, error) {
	defer r.s.readLock(ctx)()

	a, ok := r.s.accounts[bsnid]
	if !ok {
		return nil, notFound("account", bsnid)
	}
	return a.Clone(), nil
}

// Exists reports whether an account with the BSNID exists.
func (r *AccountRepo) Exists(ctx context.Context, bsnid string) (bool, error) {
	defer r.s.readLock(ctx)()

	_, ok := r.s.accounts[bsnid]
	return ok, nil
}

// Search returns accounts matching the normalized term in insertion order.
// An empty term returns every account.
func (r *AccountRepo) Search(ctx context.Context, term string) ([]*domain.Account, error) {
	defer r.s.readLock(ctx)()

	out := make([]*domain.Account, 0, len(r.s.accountOrder))
	for _, id := range r.s.accountOrder {
		if a := r.s.accounts[id]; a.Matches(term) {
			out = append(out, a.Clone())
		}
	}
	return out, nil
}

// AppendLink appends url to the link list selected by kind.
func (r *AccountRepo) AppendLink(ctx context.Context, bsnid string, kind domain.LinkKind, url string) (*domain.Account, error) {
	var out *domain.Account
	err := r.s.write(ctx, func() error {
		a, ok := r.s.accounts[bsnid]
		if !ok {
			return notFound("account", bsnid)
		}
		switch kind {
		case domain.LinkKindAzureDevOps:
			a.AzureDevOpsLinks = append(a.AzureDevOpsLinks, url)
		case domain.LinkKindArtifactsFolder:
			a.ArtifactsFolderLinks = append(a.ArtifactsFolderLinks, url)
		default:
			return domain.NewValidationError("kind", "unknown link kind")
		}
		a.UpdatedAt = r.s.now().UTC()
		out = a.Clone()
		return nil
	})
	return out, err
}

// Count returns the number of accounts.
func (r *AccountRepo) Count(ctx context.Context) (int, error) {
	defer r.s.readLock(ctx)()
	return len(r.s.accounts), nil
}
