package domain

import "testing"

func TestOnboardingStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status OnboardingStatus
		want   bool
	}{
		{OnboardingStatusNotStarted, true},
		{OnboardingStatusRequested, true},
		{OnboardingStatusInProgress, true},
		{OnboardingStatusCompleted, true},
		{OnboardingStatusOnHold, true},
		{OnboardingStatus("Done"), false},
		{OnboardingStatus(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("OnboardingStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestParseOnboardingStatus(t *testing.T) {
	t.Parallel()

	got, ok := ParseOnboardingStatus("  in progress ")
	if !ok || got != OnboardingStatusInProgress {
		t.Fatalf("ParseOnboardingStatus = (%q, %v), want (%q, true)", got, ok, OnboardingStatusInProgress)
	}
	if _, ok := ParseOnboardingStatus("Active"); ok {
		t.Error("Active is not an onboarding status")
	}
}

func TestUseCaseStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range UseCaseStatuses {
		if !s.IsValid() {
			t.Errorf("UseCaseStatus(%q).IsValid() = false", s)
		}
	}
	if UseCaseStatus("Requested").IsValid() {
		t.Error("Requested must not be a use case status")
	}
}

func TestUseCaseStatus_IsOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status UseCaseStatus
		want   bool
	}{
		{UseCaseStatusActive, true},
		{UseCaseStatusInProgress, true},
		{UseCaseStatusPlanning, false},
		{UseCaseStatusCompleted, false},
		{UseCaseStatusCancelled, false},
	}
	for _, tt := range tests {
		if got := tt.status.IsOpen(); got != tt.want {
			t.Errorf("UseCaseStatus(%q).IsOpen() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestParseEnablementTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   EnablementTier
		wantOK bool
	}{
		{"Self-Service", EnablementTierSelfService, true},
		{"guided", EnablementTierGuided, true},
		{"MANAGED", EnablementTierManaged, true},
		{"None", EnablementTierNone, true},
		{"Tier 1", EnablementTierSelfService, true},
		{"tier 2", EnablementTierGuided, true},
		{" TIER 3 ", EnablementTierManaged, true},
		{"Tier 4", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseEnablementTier(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseEnablementTier(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPlatformCatalog(t *testing.T) {
	t.Parallel()

	c := NewPlatformCatalog([]string{"Databricks", " ", "Fabric", "Databricks"})
	if len(c) != 2 {
		t.Fatalf("expected 2 platforms, got %v", c)
	}
	if p, ok := c.Lookup("fabric"); !ok || p != "Fabric" {
		t.Errorf("Lookup(fabric) = (%q, %v)", p, ok)
	}
	if _, ok := c.Lookup("Snowflake"); ok {
		t.Error("Snowflake should not be in the catalog")
	}
	if p, ok := DefaultPlatforms.Lookup("power platform"); !ok || p != PlatformPowerPlatform {
		t.Errorf("default catalog Lookup = (%q, %v)", p, ok)
	}
}
