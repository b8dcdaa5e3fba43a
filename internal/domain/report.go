package domain

import "time"

// UseCaseStats summarizes use cases across all accounts.
type UseCaseStats struct {
	Total     int
	Active    int
	Completed int
	ByStatus  map[UseCaseStatus]int
}

// NameCount pairs a name with its number of occurrences.
type NameCount struct {
	Name  string
	Count int
}

// Dashboard is the aggregate view over the whole dataset.
type Dashboard struct {
	Accounts             int
	UseCases             UseCaseStats
	Updates              int
	OnboardingByPlatform map[Platform]map[OnboardingStatus]int
	TopPlatform          *NameCount
	TopAuthor            *NameCount
	TopBusinessArea      *NameCount
	RecentUpdates        []*UpdateWithAccount
}

// Snapshot is a full copy of the dataset, used for export and backup.
type Snapshot struct {
	TakenAt          time.Time
	Accounts         []*Account
	UseCases         []*UseCase
	Updates          []*Update
	PlatformStatuses []*PlatformStatus
	BusinessAreas    []*BusinessArea
}

// TopOf returns the entry with the highest count, ties broken by name
// ascending. It returns nil for an empty map.
func TopOf(counts map[string]int) *NameCount {
	var best *NameCount
	for name, n := range counts {
		if best == nil || n > best.Count || (n == best.Count && name < best.Name) {
			best = &NameCount{Name: name, Count: n}
		}
	}
	return best
}
