package domain

import (
	"time"

	"github.com/google/uuid"
)

// UseCase is a problem/solution pairing attributed to an account.
type UseCase struct {
	ID             uuid.UUID
	AccountBSNID   string
	Problem        string
	Solution       string
	Leader         string
	Status         UseCaseStatus
	EnablementTier EnablementTier
	Platform       Platform
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UseCaseUpdateParams holds the mutable fields of a use case. An update
// overwrites all of them.
type UseCaseUpdateParams struct {
	Problem        string
	Solution       string
	Leader         string
	Status         UseCaseStatus
	EnablementTier EnablementTier
	Platform       Platform
}

// UseCaseWithAccount is a use case annotated with its owning account's team and
// business area, used by cross-account listings.
type UseCaseWithAccount struct {
	UseCase
	Team         string
	BusinessArea string
}
