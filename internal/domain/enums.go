package domain

import (
	"slices"
	"strings"
)

// OnboardingStatus is the state of an account's adoption of a platform.
type OnboardingStatus string

const (
	OnboardingStatusNotStarted OnboardingStatus = "Not Started"
	OnboardingStatusRequested  OnboardingStatus = "Requested"
	OnboardingStatusInProgress OnboardingStatus = "In Progress"
	OnboardingStatusCompleted  OnboardingStatus = "Completed"
	OnboardingStatusOnHold     OnboardingStatus = "On Hold"
)

// OnboardingStatuses lists the onboarding vocabulary in workflow order.
var OnboardingStatuses = []OnboardingStatus{
	OnboardingStatusNotStarted,
	OnboardingStatusRequested,
	OnboardingStatusInProgress,
	OnboardingStatusCompleted,
	OnboardingStatusOnHold,
}

func (s OnboardingStatus) String() string { return string(s) }

func (s OnboardingStatus) IsValid() bool {
	return slices.Contains(OnboardingStatuses, s)
}

// ParseOnboardingStatus matches s case-insensitively against the vocabulary.
func ParseOnboardingStatus(s string) (OnboardingStatus, bool) {
	return matchFold(OnboardingStatuses, s)
}

// UseCaseStatus is the lifecycle state of a use case.
type UseCaseStatus string

const (
	UseCaseStatusPlanning   UseCaseStatus = "Planning"
	UseCaseStatusNotStarted UseCaseStatus = "Not Started"
	UseCaseStatusActive     UseCaseStatus = "Active"
	UseCaseStatusInProgress UseCaseStatus = "In Progress"
	UseCaseStatusOnHold     UseCaseStatus = "On Hold"
	UseCaseStatusCompleted  UseCaseStatus = "Completed"
	UseCaseStatusCancelled  UseCaseStatus = "Cancelled"
)

// UseCaseStatuses lists the use case vocabulary.
var UseCaseStatuses = []UseCaseStatus{
	UseCaseStatusPlanning,
	UseCaseStatusNotStarted,
	UseCaseStatusActive,
	UseCaseStatusInProgress,
	UseCaseStatusOnHold,
	UseCaseStatusCompleted,
	UseCaseStatusCancelled,
}

func (s UseCaseStatus) String() string { return string(s) }

func (s UseCaseStatus) IsValid() bool {
	return slices.Contains(UseCaseStatuses, s)
}

// IsOpen reports whether work on the use case is still under way.
func (s UseCaseStatus) IsOpen() bool {
	return s == UseCaseStatusActive || s == UseCaseStatusInProgress
}

// ParseUseCaseStatus matches s case-insensitively against the vocabulary.
func ParseUseCaseStatus(s string) (UseCaseStatus, bool) {
	return matchFold(UseCaseStatuses, s)
}

// EnablementTier classifies how much hands-on support a use case needs.
type EnablementTier string

const (
	EnablementTierSelfService EnablementTier = "Self-Service"
	EnablementTierGuided      EnablementTier = "Guided"
	EnablementTierManaged     EnablementTier = "Managed"
	EnablementTierNone        EnablementTier = "None"
)

// EnablementTiers lists the canonical tier vocabulary.
var EnablementTiers = []EnablementTier{
	EnablementTierSelfService,
	EnablementTierGuided,
	EnablementTierManaged,
	EnablementTierNone,
}

// legacyTiers maps the numbered vocabulary onto the canonical one.
var legacyTiers = map[string]EnablementTier{
	"tier 1": EnablementTierSelfService,
	"tier 2": EnablementTierGuided,
	"tier 3": EnablementTierManaged,
}

func (t EnablementTier) String() string { return string(t) }

func (t EnablementTier) IsValid() bool {
	return slices.Contains(EnablementTiers, t)
}

// ParseEnablementTier accepts the canonical names and the legacy "Tier N"
// names, case-insensitively, and returns the canonical tier.
func ParseEnablementTier(s string) (EnablementTier, bool) {
	if t, ok := matchFold(EnablementTiers, s); ok {
		return t, true
	}
	t, ok := legacyTiers[strings.ToLower(strings.TrimSpace(s))]
	return t, ok
}

// Platform is a named system an account can be onboarded onto.
type Platform string

const (
	PlatformDatabricks    Platform = "Databricks"
	PlatformSnowflake     Platform = "Snowflake"
	PlatformPowerPlatform Platform = "Power Platform"
)

// DefaultPlatforms is the platform catalog used when none is configured.
var DefaultPlatforms = PlatformCatalog{PlatformDatabricks, PlatformSnowflake, PlatformPowerPlatform}

func (p Platform) String() string { return string(p) }

// PlatformCatalog is the configured set of known platforms.
type PlatformCatalog []Platform

// NewPlatformCatalog builds a catalog from names, dropping blanks and duplicates.
func NewPlatformCatalog(names []string) PlatformCatalog {
	var c PlatformCatalog
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || slices.Contains(c, Platform(n)) {
			continue
		}
		c = append(c, Platform(n))
	}
	return c
}

// Lookup returns the catalog spelling of name, matched case-insensitively.
func (c PlatformCatalog) Lookup(name string) (Platform, bool) {
	return matchFold(c, name)
}

func matchFold[T ~string](vocab []T, s string) (T, bool) {
	s = strings.TrimSpace(s)
	for _, v := range vocab {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
