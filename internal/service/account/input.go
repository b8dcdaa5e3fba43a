package account

import (
	"maps"
	"slices"
	"strings"

	"github.com/heartmarshall/edip-crm/internal/domain"
	"github.com/heartmarshall/edip-crm/internal/service/validation"
)

// AddAccountInput holds the parameters for creating an account.
// An empty ITPartner is filled from the business area registry.
type AddAccountInput struct {
	Team             string `validate:"notblank,max=200"`
	BusinessArea     string `validate:"notblank,max=200"`
	VP               string `validate:"max=200"`
	Admin            string `validate:"max=200"`
	ITPartner        string `validate:"max=200"`
	PlatformStatuses map[domain.Platform]domain.OnboardingStatus
}

// normalize validates the input and returns it trimmed, with platform names
// and statuses in canonical spelling.
func (i AddAccountInput) normalize(catalog domain.PlatformCatalog) (AddAccountInput, error) {
	var errs validation.Errors
	errs.Struct(i)

	out := AddAccountInput{
		Team:         strings.TrimSpace(i.Team),
		BusinessArea: strings.TrimSpace(i.BusinessArea),
		VP:           strings.TrimSpace(i.VP),
		Admin:        strings.TrimSpace(i.Admin),
		ITPartner:    strings.TrimSpace(i.ITPartner),
	}

	if len(i.PlatformStatuses) > 0 {
		out.PlatformStatuses = make(map[domain.Platform]domain.OnboardingStatus, len(i.PlatformStatuses))
		for _, p := range slices.Sorted(maps.Keys(i.PlatformStatuses)) {
			platform, ok := catalog.Lookup(string(p))
			if !ok {
				errs.Add("platform_statuses", "unknown platform "+string(p))
				continue
			}
			status, ok := domain.ParseOnboardingStatus(string(i.PlatformStatuses[p]))
			if !ok {
				errs.Add("platform_statuses", "invalid status for "+string(platform))
				continue
			}
			if _, dup := out.PlatformStatuses[platform]; dup {
				errs.Add("platform_statuses", "duplicate platform "+string(platform))
				continue
			}
			out.PlatformStatuses[platform] = status
		}
	}

	return out, errs.Err()
}

// SetPlatformStatusInput holds the parameters for setting an account's
// onboarding status on one platform. A nil tier keeps the stored one.
type SetPlatformStatusInput struct {
	BSNID          string `validate:"notblank"`
	Platform       domain.Platform
	Status         domain.OnboardingStatus
	EnablementTier *domain.EnablementTier
}

func (i SetPlatformStatusInput) normalize(catalog domain.PlatformCatalog) (SetPlatformStatusInput, error) {
	var errs validation.Errors
	errs.Struct(i)

	out := SetPlatformStatusInput{BSNID: strings.TrimSpace(i.BSNID)}

	platform, ok := catalog.Lookup(string(i.Platform))
	if !ok {
		errs.Add("platform", "unknown platform")
	}
	out.Platform = platform

	status, ok := domain.ParseOnboardingStatus(string(i.Status))
	if !ok {
		errs.Add("status", "invalid onboarding status")
	}
	out.Status = status

	if i.EnablementTier != nil {
		tier, ok := domain.ParseEnablementTier(string(*i.EnablementTier))
		if !ok {
			errs.Add("enablement_tier", "invalid enablement tier")
		}
		out.EnablementTier = &tier
	}

	return out, errs.Err()
}

// AddLinkInput holds the parameters for appending a link to an account.
type AddLinkInput struct {
	BSNID string          `validate:"notblank"`
	Kind  domain.LinkKind `validate:"oneof=azure_devops artifacts_folder"`
	URL   string          `validate:"notblank,max=2000"`
}
