package rest

import (
	"time"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type accountResponse struct {
	BSNID                string    `json:"bsnid"`
	Team                 string    `json:"team"`
	BusinessArea         string    `json:"businessArea"`
	VP                   string    `json:"vp"`
	Admin                string    `json:"admin"`
	PrimaryITPartner     string    `json:"primaryItPartner"`
	AzureDevOpsLinks     []string  `json:"azureDevOpsLinks"`
	ArtifactsFolderLinks []string  `json:"artifactsFolderLinks"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

type platformStatusResponse struct {
	ID             string    `json:"id"`
	AccountBSNID   string    `json:"accountBsnid"`
	Platform       string    `json:"platform"`
	Status         string    `json:"status"`
	EnablementTier *string   `json:"enablementTier"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type useCaseResponse struct {
	ID             string    `json:"id"`
	AccountBSNID   string    `json:"accountBsnid"`
	Team           string    `json:"team,omitempty"`
	BusinessArea   string    `json:"businessArea,omitempty"`
	Problem        string    `json:"problem"`
	Solution       string    `json:"solution"`
	Leader         string    `json:"leader"`
	Status         string    `json:"status"`
	EnablementTier string    `json:"enablementTier"`
	Platform       string    `json:"platform"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type updateResponse struct {
	ID           string    `json:"id"`
	AccountBSNID string    `json:"accountBsnid"`
	Team         string    `json:"team,omitempty"`
	BusinessArea string    `json:"businessArea,omitempty"`
	Author       string    `json:"author"`
	Date         string    `json:"date"`
	Platform     string    `json:"platform"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}

type accountDetailsResponse struct {
	accountResponse
	Platforms []platformStatusResponse `json:"platforms"`
	UseCases  []useCaseResponse        `json:"useCases"`
	Updates   []updateResponse         `json:"updates"`
}

type businessAreaResponse struct {
	Name             string `json:"name"`
	DefaultITPartner string `json:"defaultItPartner"`
}

type useCaseStatsResponse struct {
	Total     int            `json:"total"`
	Active    int            `json:"active"`
	Completed int            `json:"completed"`
	ByStatus  map[string]int `json:"byStatus"`
}

type nameCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type dashboardResponse struct {
	Accounts             int                       `json:"accounts"`
	UseCases             useCaseStatsResponse      `json:"useCases"`
	Updates              int                       `json:"updates"`
	OnboardingByPlatform map[string]map[string]int `json:"onboardingByPlatform"`
	TopPlatform          *nameCountResponse        `json:"topPlatform"`
	TopAuthor            *nameCountResponse        `json:"topAuthor"`
	TopBusinessArea      *nameCountResponse        `json:"topBusinessArea"`
	RecentUpdates        []updateResponse          `json:"recentUpdates"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	a = a.Clone()
	return accountResponse{
		BSNID:                a.BSNID,
		Team:                 a.Team,
		BusinessArea:         a.BusinessArea,
		VP:                   a.VP,
		Admin:                a.Admin,
		PrimaryITPartner:     a.PrimaryITPartner,
		AzureDevOpsLinks:     a.AzureDevOpsLinks,
		ArtifactsFolderLinks: a.ArtifactsFolderLinks,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

func toAccountResponses(accounts []*domain.Account) []accountResponse {
	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	return out
}

func toPlatformStatusResponse(ps *domain.PlatformStatus) platformStatusResponse {
	resp := platformStatusResponse{
		ID:           ps.ID.String(),
		AccountBSNID: ps.AccountBSNID,
		Platform:     string(ps.Platform),
		Status:       string(ps.Status),
		UpdatedAt:    ps.UpdatedAt,
	}
	if ps.EnablementTier != nil {
		tier := string(*ps.EnablementTier)
		resp.EnablementTier = &tier
	}
	return resp
}

func toPlatformStatusResponses(list []*domain.PlatformStatus) []platformStatusResponse {
	out := make([]platformStatusResponse, 0, len(list))
	for _, ps := range list {
		out = append(out, toPlatformStatusResponse(ps))
	}
	return out
}

func toUseCaseResponse(uc *domain.UseCase) useCaseResponse {
	return useCaseResponse{
		ID:             uc.ID.String(),
		AccountBSNID:   uc.AccountBSNID,
		Problem:        uc.Problem,
		Solution:       uc.Solution,
		Leader:         uc.Leader,
		Status:         string(uc.Status),
		EnablementTier: string(uc.EnablementTier),
		Platform:       string(uc.Platform),
		CreatedAt:      uc.CreatedAt,
		UpdatedAt:      uc.UpdatedAt,
	}
}

func toUseCaseResponses(list []*domain.UseCase) []useCaseResponse {
	out := make([]useCaseResponse, 0, len(list))
	for _, uc := range list {
		out = append(out, toUseCaseResponse(uc))
	}
	return out
}

func toUseCaseWithAccountResponses(list []*domain.UseCaseWithAccount) []useCaseResponse {
	out := make([]useCaseResponse, 0, len(list))
	for _, uc := range list {
		resp := toUseCaseResponse(&uc.UseCase)
		resp.Team = uc.Team
		resp.BusinessArea = uc.BusinessArea
		out = append(out, resp)
	}
	return out
}

func toUpdateResponse(u *domain.Update) updateResponse {
	return updateResponse{
		ID:           u.ID.String(),
		AccountBSNID: u.AccountBSNID,
		Author:       u.Author,
		Date:         u.EffectiveDate.Format(domain.DateLayout),
		Platform:     string(u.Platform),
		Description:  u.Description,
		CreatedAt:    u.CreatedAt,
	}
}

func toUpdateResponses(list []*domain.Update) []updateResponse {
	out := make([]updateResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUpdateResponse(u))
	}
	return out
}

func toUpdateWithAccountResponses(list []*domain.UpdateWithAccount) []updateResponse {
	out := make([]updateResponse, 0, len(list))
	for _, u := range list {
		resp := toUpdateResponse(&u.Update)
		resp.Team = u.Team
		resp.BusinessArea = u.BusinessArea
		out = append(out, resp)
	}
	return out
}

func toBusinessAreaResponses(list []*domain.BusinessArea) []businessAreaResponse {
	out := make([]businessAreaResponse, 0, len(list))
	for _, ba := range list {
		out = append(out, businessAreaResponse{Name: ba.Name, DefaultITPartner: ba.DefaultITPartner})
	}
	return out
}

func toUseCaseStatsResponse(s domain.UseCaseStats) useCaseStatsResponse {
	byStatus := make(map[string]int, len(s.ByStatus))
	for status, n := range s.ByStatus {
		byStatus[string(status)] = n
	}
	return useCaseStatsResponse{Total: s.Total, Active: s.Active, Completed: s.Completed, ByStatus: byStatus}
}

func toNameCountResponse(nc *domain.NameCount) *nameCountResponse {
	if nc == nil {
		return nil
	}
	return &nameCountResponse{Name: nc.Name, Count: nc.Count}
}

func toDashboardResponse(d *domain.Dashboard) dashboardResponse {
	onboarding := make(map[string]map[string]int, len(d.OnboardingByPlatform))
	for platform, counts := range d.OnboardingByPlatform {
		m := make(map[string]int, len(counts))
		for status, n := range counts {
			m[string(status)] = n
		}
		onboarding[string(platform)] = m
	}
	return dashboardResponse{
		Accounts:             d.Accounts,
		UseCases:             toUseCaseStatsResponse(d.UseCases),
		Updates:              d.Updates,
		OnboardingByPlatform: onboarding,
		TopPlatform:          toNameCountResponse(d.TopPlatform),
		TopAuthor:            toNameCountResponse(d.TopAuthor),
		TopBusinessArea:      toNameCountResponse(d.TopBusinessArea),
		RecentUpdates:        toUpdateWithAccountResponses(d.RecentUpdates),
	}
}
