package activity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/edip-crm/internal/domain"
	"github.com/heartmarshall/edip-crm/internal/service/validation"
)

// Fields holds the mutable fields of an update. A zero EffectiveDate means
// today.
type Fields struct {
	Author        string `validate:"notblank,max=200"`
	EffectiveDate time.Time
	Platform      domain.Platform
	Description   string `validate:"notblank,max=4000"`
}

// AddUpdateInput holds the parameters for recording an update.
type AddUpdateInput struct {
	BSNID string
	Fields
}

// UpdateUpdateInput holds the parameters for editing an update.
type UpdateUpdateInput struct {
	ID uuid.UUID
	Fields
}

func (f Fields) normalize(errs *validation.Errors, catalog domain.PlatformCatalog, today time.Time) domain.UpdateUpdateParams {
	errs.Struct(f)

	p := domain.UpdateUpdateParams{
		Author:        strings.TrimSpace(f.Author),
		Description:   strings.TrimSpace(f.Description),
		EffectiveDate: domain.DateOf(today),
	}
	if !f.EffectiveDate.IsZero() {
		p.EffectiveDate = domain.DateOf(f.EffectiveDate)
	}

	platform, ok := catalog.Lookup(string(f.Platform))
	if !ok {
		errs.Add("platform", "unknown platform")
	}
	p.Platform = platform

	return p
}

// ListInput narrows ListUpdates. Empty fields match everything.
type ListInput struct {
	BusinessArea string
	Platform     string
	Author       string
}

func (i ListInput) filter(catalog domain.PlatformCatalog) (domain.UpdateFilter, error) {
	f := domain.UpdateFilter{
		BusinessArea: strings.TrimSpace(i.BusinessArea),
		Author:       strings.TrimSpace(i.Author),
	}
	if s := strings.TrimSpace(i.Platform); s != "" {
		platform, ok := catalog.Lookup(s)
		if !ok {
			return f, domain.NewValidationError("platform", "unknown platform")
		}
		f.Platform = platform
	}
	return f, nil
}
