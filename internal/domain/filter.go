package domain

import "strings"

// UseCaseFilter narrows cross-account use case listings. Empty fields match
// everything; non-empty fields must match exactly.
type UseCaseFilter struct {
	BusinessArea   string
	Status         UseCaseStatus
	EnablementTier EnablementTier
	Platform       Platform
}

// Match reports whether uc passes the filter.
func (f UseCaseFilter) Match(uc *UseCaseWithAccount) bool {
	return (f.BusinessArea == "" || f.BusinessArea == uc.BusinessArea) &&
		(f.Status == "" || f.Status == uc.Status) &&
		(f.EnablementTier == "" || f.EnablementTier == uc.EnablementTier) &&
		(f.Platform == "" || f.Platform == uc.Platform)
}

// UpdateFilter narrows cross-account update listings.
type UpdateFilter struct {
	BusinessArea string
	Platform     Platform
	Author       string
}

// Match reports whether u passes the filter.
func (f UpdateFilter) Match(u *UpdateWithAccount) bool {
	return (f.BusinessArea == "" || f.BusinessArea == u.BusinessArea) &&
		(f.Platform == "" || f.Platform == u.Platform) &&
		(f.Author == "" || f.Author == u.Author)
}

// NormalizeSearchTerm trims and lowercases a free-text search term.
func NormalizeSearchTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
