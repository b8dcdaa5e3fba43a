package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and storage format for effective dates.
const DateLayout = "2006-01-02"

// Update is a dated free-text progress note on an account.
type Update struct {
	ID            uuid.UUID
	AccountBSNID  string
	Author        string
	EffectiveDate time.Time // calendar date at midnight UTC
	Platform      Platform
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UpdateUpdateParams holds the mutable fields of an update.
type UpdateUpdateParams struct {
	Author        string
	EffectiveDate time.Time
	Platform      Platform
	Description   string
}

// UpdateWithAccount is an update annotated with its owning account's team and
// business area.
type UpdateWithAccount struct {
	Update
	Team         string
	BusinessArea string
}

// DateOf truncates t to its calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// UpdateLess orders updates newest first: effective date descending, then
// creation time descending.
func UpdateLess(a, b *Update) bool {
	if !a.EffectiveDate.Equal(b.EffectiveDate) {
		return a.EffectiveDate.After(b.EffectiveDate)
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// SortUpdates sorts updates in display order (see UpdateLess).
func SortUpdates(updates []*Update) {
	sort.SliceStable(updates, func(i, j int) bool {
		return UpdateLess(updates[i], updates[j])
	})
}
