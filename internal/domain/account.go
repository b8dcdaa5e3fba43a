package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is a business team tracked by the CRM. BSNID is the business-system
// identifier; it is unique and never changes once issued.
type Account struct {
	BSNID                string
	Team                 string
	BusinessArea         string
	VP                   string
	Admin                string
	PrimaryITPartner     string
	AzureDevOpsLinks     []string
	ArtifactsFolderLinks []string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Clone returns a deep copy; link slices are never shared with the original.
func (a *Account) Clone() *Account {
	c := *a
	c.AzureDevOpsLinks = cloneLinks(a.AzureDevOpsLinks)
	c.ArtifactsFolderLinks = cloneLinks(a.ArtifactsFolderLinks)
	return &c
}

// Matches reports whether the lowercased term is a substring of any searchable
// field. An empty term matches every account.
func (a *Account) Matches(term string) bool {
	if term == "" {
		return true
	}
	for _, field := range []string{a.Team, a.BusinessArea, a.VP, a.Admin, a.PrimaryITPartner} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func cloneLinks(links []string) []string {
	if links == nil {
		return []string{}
	}
	return slices.Clone(links)
}

// LinkKind selects one of the two ordered link lists on an Account.
type LinkKind string

const (
	LinkKindAzureDevOps     LinkKind = "azure_devops"
	LinkKindArtifactsFolder LinkKind = "artifacts_folder"
)

func (k LinkKind) String() string { return string(k) }

func (k LinkKind) IsValid() bool {
	switch k {
	case LinkKindAzureDevOps, LinkKindArtifactsFolder:
		return true
	}
	return false
}

// PlatformStatus is the onboarding state of one account on one platform.
// There is at most one record per (AccountBSNID, Platform).
type PlatformStatus struct {
	ID             uuid.UUID
	AccountBSNID   string
	Platform       Platform
	Status         OnboardingStatus
	EnablementTier *EnablementTier
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BusinessArea maps a business area to the IT partner pre-filled on new accounts.
type BusinessArea struct {
	Name             string
	DefaultITPartner string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AccountDetails is an account together with all records it owns.
type AccountDetails struct {
	Account   *Account
	Platforms []*PlatformStatus
	UseCases  []*UseCase
	Updates   []*Update
}
