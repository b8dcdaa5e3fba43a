package seed

import "github.com/heartmarshall/edip-crm/internal/domain"

type areaSeed struct {
	name    string
	partner string
}

type useCaseSeed struct {
	problem  string
	solution string
	leader   string
	status   domain.UseCaseStatus
	tier     domain.EnablementTier
	platform domain.Platform
}

type updateSeed struct {
	author      string
	daysAgo     int
	platform    domain.Platform
	description string
}

type accountSeed struct {
	team      string
	area      string
	vp        string
	admin     string
	partner   string
	platforms map[domain.Platform]domain.OnboardingStatus
	tiers     map[domain.Platform]domain.EnablementTier
	devOps    []string
	artifacts []string
	useCases  []useCaseSeed
	updates   []updateSeed
}

var areas = []areaSeed{
	{"Engineering", "TechCorp Solutions"},
	{"Finance", "John Smith"},
	{"HR", "Lisa Brown"},
	{"Marketing", "Sarah Johnson"},
	{"Operations", "Mike Davis"},
}

var accounts = []accountSeed{
	{
		team:    "Data Engineering",
		area:    "Engineering",
		vp:      "Sarah Johnson",
		admin:   "Mike Chen",
		partner: "TechCorp Solutions",
		platforms: map[domain.Platform]domain.OnboardingStatus{
			domain.PlatformDatabricks:    domain.OnboardingStatusCompleted,
			domain.PlatformSnowflake:     domain.OnboardingStatusInProgress,
			domain.PlatformPowerPlatform: domain.OnboardingStatusNotStarted,
		},
		tiers: map[domain.Platform]domain.EnablementTier{
			domain.PlatformDatabricks: domain.EnablementTierGuided,
		},
		devOps:    []string{"https://dev.azure.com/company/project1"},
		artifacts: []string{"https://company.sharepoint.com/artifacts/project1"},
	},
	{
		team:    "Analytics Team",
		area:    "Finance",
		vp:      "Jennifer Walsh",
		admin:   "Mark Thompson",
		partner: "John Smith",
		platforms: map[domain.Platform]domain.OnboardingStatus{
			domain.PlatformDatabricks: domain.OnboardingStatusCompleted,
			domain.PlatformSnowflake:  domain.OnboardingStatusInProgress,
		},
		useCases: []useCaseSeed{{
			problem:  "Financial reporting takes too long to generate",
			solution: "Implement automated reporting dashboard using Databricks",
			leader:   "Mark Thompson",
			status:   domain.UseCaseStatusActive,
			tier:     domain.EnablementTierSelfService,
			platform: domain.PlatformDatabricks,
		}},
		updates: []updateSeed{
			{"Mark Thompson", 2, domain.PlatformDatabricks, "Completed initial data pipeline setup. Dashboard framework is ready for testing."},
			{"Jennifer Lee", 5, domain.PlatformDatabricks, "Data source connections established. Beginning ETL process development."},
			{"Mark Thompson", 10, domain.PlatformDatabricks, "Project kickoff meeting completed. Requirements gathered and documented."},
		},
	},
	{
		team:    "Sales Analytics",
		area:    "Marketing",
		vp:      "Robert Kim",
		admin:   "Sarah Chen",
		partner: "Sarah Johnson",
		platforms: map[domain.Platform]domain.OnboardingStatus{
			domain.PlatformPowerPlatform: domain.OnboardingStatusRequested,
			domain.PlatformDatabricks:    domain.OnboardingStatusInProgress,
		},
		useCases: []useCaseSeed{{
			problem:  "Sales forecasting accuracy is below 70%",
			solution: "Build ML-powered forecasting model with real-time data",
			leader:   "Sarah Chen",
			status:   domain.UseCaseStatusPlanning,
			tier:     domain.EnablementTierGuided,
			platform: domain.PlatformSnowflake,
		}},
		updates: []updateSeed{
			{"Sarah Chen", 1, domain.PlatformSnowflake, "ML model training in progress. Initial accuracy showing 85% improvement."},
			{"Robert Kim", 7, domain.PlatformPowerPlatform, "Data quality assessment completed. Ready to begin model development."},
			{"Sarah Chen", 14, domain.PlatformSnowflake, "Historical sales data migration to Snowflake completed successfully."},
		},
	},
	{
		team:    "Operations Intelligence",
		area:    "Operations",
		vp:      "David Rodriguez",
		admin:   "Lisa Wang",
		partner: "Mike Davis",
		platforms: map[domain.Platform]domain.OnboardingStatus{
			domain.PlatformSnowflake: domain.OnboardingStatusCompleted,
		},
		useCases: []useCaseSeed{{
			problem:  "Supply chain visibility is limited",
			solution: "Create real-time tracking dashboard for inventory and logistics",
			leader:   "Lisa Wang",
			status:   domain.UseCaseStatusCompleted,
			tier:     domain.EnablementTierSelfService,
			platform: domain.PlatformPowerPlatform,
		}},
		updates: []updateSeed{
			{"Lisa Wang", 3, domain.PlatformPowerPlatform, "Supply chain dashboard deployed to production. User training scheduled for next week."},
			{"David Rodriguez", 8, domain.PlatformPowerPlatform, "Dashboard testing phase completed. All KPIs displaying correctly."},
			{"Lisa Wang", 12, domain.PlatformPowerPlatform, "Real-time data connectors configured. Beginning dashboard development."},
		},
	},
}
