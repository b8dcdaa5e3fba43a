package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/edip-crm/internal/domain"
	"github.com/heartmarshall/edip-crm/internal/service/validation"
)

// Fields holds the mutable fields of a use case as entered by a user.
// Status, tier and platform are matched case-insensitively; an empty tier
// means None.
type Fields struct {
	Problem        string `validate:"notblank,max=4000"`
	Solution       string `validate:"max=4000"`
	Leader         string `validate:"max=200"`
	Status         domain.UseCaseStatus
	EnablementTier domain.EnablementTier
	Platform       domain.Platform
}

// AddUseCaseInput holds the parameters for creating a use case.
type AddUseCaseInput struct {
	BSNID string
	Fields
}

// UpdateUseCaseInput holds the parameters for overwriting a use case.
type UpdateUseCaseInput struct {
	ID uuid.UUID
	Fields
}

func (f Fields) normalize(errs *validation.Errors, catalog domain.PlatformCatalog) domain.UseCaseUpdateParams {
	errs.Struct(f)

	p := domain.UseCaseUpdateParams{
		Problem:        strings.TrimSpace(f.Problem),
		Solution:       strings.TrimSpace(f.Solution),
		Leader:         strings.TrimSpace(f.Leader),
		EnablementTier: domain.EnablementTierNone,
	}

	status, ok := domain.ParseUseCaseStatus(string(f.Status))
	if !ok {
		errs.Add("status", "invalid use case status")
	}
	p.Status = status

	if strings.TrimSpace(string(f.EnablementTier)) != "" {
		tier, ok := domain.ParseEnablementTier(string(f.EnablementTier))
		if !ok {
			errs.Add("enablement_tier", "invalid enablement tier")
		}
		p.EnablementTier = tier
	}

	platform, ok := catalog.Lookup(string(f.Platform))
	if !ok {
		errs.Add("platform", "unknown platform")
	}
	p.Platform = platform

	return p
}

func (i AddUseCaseInput) normalize(catalog domain.PlatformCatalog) (string, domain.UseCaseUpdateParams, error) {
	var errs validation.Errors
	if strings.TrimSpace(i.BSNID) == "" {
		errs.Add("bsnid", "required")
	}
	p := i.Fields.normalize(&errs, catalog)
	return strings.TrimSpace(i.BSNID), p, errs.Err()
}

func (i UpdateUseCaseInput) normalize(catalog domain.PlatformCatalog) (domain.UseCaseUpdateParams, error) {
	var errs validation.Errors
	if i.ID == uuid.Nil {
		errs.Add("id", "required")
	}
	p := i.Fields.normalize(&errs, catalog)
	return p, errs.Err()
}

// ListInput narrows ListUseCases. Empty fields match everything.
type ListInput struct {
	BusinessArea   string
	Status         string
	EnablementTier string
	Platform       string
}

func (i ListInput) filter(catalog domain.PlatformCatalog) (domain.UseCaseFilter, error) {
	var errs validation.Errors
	f := domain.UseCaseFilter{BusinessArea: strings.TrimSpace(i.BusinessArea)}

	if s := strings.TrimSpace(i.Status); s != "" {
		status, ok := domain.ParseUseCaseStatus(s)
		if !ok {
			errs.Add("status", "invalid use case status")
		}
		f.Status = status
	}
	if s := strings.TrimSpace(i.EnablementTier); s != "" {
		tier, ok := domain.ParseEnablementTier(s)
		if !ok {
			errs.Add("tier", "invalid enablement tier")
		}
		f.EnablementTier = tier
	}
	if s := strings.TrimSpace(i.Platform); s != "" {
		platform, ok := catalog.Lookup(s)
		if !ok {
			errs.Add("platform", "unknown platform")
		}
		f.Platform = platform
	}
	return f, errs.Err()
}
