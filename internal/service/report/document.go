package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

// DocumentVersion identifies the export format.
const DocumentVersion = 1

// Document is the JSON form of a Snapshot.
type Document struct {
	Version          int               `json:"version"`
	TakenAt          time.Time         `json:"taken_at"`
	Accounts         []AccountDoc      `json:"accounts"`
	PlatformStatuses []PlatformDoc     `json:"platform_statuses"`
	UseCases         []UseCaseDoc      `json:"use_cases"`
	Updates          []UpdateDoc       `json:"updates"`
	BusinessAreas    []BusinessAreaDoc `json:"business_areas"`
}

type AccountDoc struct {
	BSNID                string    `json:"bsnid"`
	Team                 string    `json:"team"`
	BusinessArea         string    `json:"business_area"`
	VP                   string    `json:"vp"`
	Admin                string    `json:"admin"`
	PrimaryITPartner     string    `json:"primary_it_partner"`
	AzureDevOpsLinks     []string  `json:"azure_devops_links"`
	ArtifactsFolderLinks []string  `json:"artifacts_folder_links"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type PlatformDoc struct {
	ID             string    `json:"id"`
	AccountBSNID   string    `json:"account_bsnid"`
	Platform       string    `json:"platform"`
	Status         string    `json:"status"`
	EnablementTier *string   `json:"enablement_tier"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type UseCaseDoc struct {
	ID             string    `json:"id"`
	AccountBSNID   string    `json:"account_bsnid"`
	Problem        string    `json:"problem"`
	Solution       string    `json:"solution"`
	Leader         string    `json:"leader"`
	Status         string    `json:"status"`
	EnablementTier string    `json:"enablement_tier"`
	Platform       string    `json:"platform"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type UpdateDoc struct {
	ID            string    `json:"id"`
	AccountBSNID  string    `json:"account_bsnid"`
	Author        string    `json:"author"`
	EffectiveDate string    `json:"date"`
	Platform      string    `json:"platform"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BusinessAreaDoc struct {
	Name             string    `json:"name"`
	DefaultITPartner string    `json:"default_it_partner"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewDocument converts snap to its JSON form.
func NewDocument(snap *domain.Snapshot) *Document {
	doc := &Document{
		Version:          DocumentVersion,
		TakenAt:          snap.TakenAt,
		Accounts:         make([]AccountDoc, len(snap.Accounts)),
		PlatformStatuses: make([]PlatformDoc, len(snap.PlatformStatuses)),
		UseCases:         make([]UseCaseDoc, len(snap.UseCases)),
		Updates:          make([]UpdateDoc, len(snap.Updates)),
		BusinessAreas:    make([]BusinessAreaDoc, len(snap.BusinessAreas)),
	}

	for i, a := range snap.Accounts {
		a = a.Clone()
		doc.Accounts[i] = AccountDoc{
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
	for i, ps := range snap.PlatformStatuses {
		var tier *string
		if ps.EnablementTier != nil {
			t := string(*ps.EnablementTier)
			tier = &t
		}
		doc.PlatformStatuses[i] = PlatformDoc{
			ID:             ps.ID.String(),
			AccountBSNID:   ps.AccountBSNID,
			Platform:       string(ps.Platform),
			Status:         string(ps.Status),
			EnablementTier: tier,
			CreatedAt:      ps.CreatedAt,
			UpdatedAt:      ps.UpdatedAt,
		}
	}
	for i, uc := range snap.UseCases {
		doc.UseCases[i] = UseCaseDoc{
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
	for i, u := range snap.Updates {
		doc.Updates[i] = UpdateDoc{
			ID:            u.ID.String(),
			AccountBSNID:  u.AccountBSNID,
			Author:        u.Author,
			EffectiveDate: u.EffectiveDate.Format(domain.DateLayout),
			Platform:      string(u.Platform),
			Description:   u.Description,
			CreatedAt:     u.CreatedAt,
			UpdatedAt:     u.UpdatedAt,
		}
	}
	for i, ba := range snap.BusinessAreas {
		doc.BusinessAreas[i] = BusinessAreaDoc{
			Name:             ba.Name,
			DefaultITPartner: ba.DefaultITPartner,
			CreatedAt:        ba.CreatedAt,
			UpdatedAt:        ba.UpdatedAt,
		}
	}
	return doc
}

// Encode renders snap as indented JSON.
func Encode(snap *domain.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(snap), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// ArchiveKey names a backup archive after the time the snapshot was taken.
func ArchiveKey(takenAt time.Time) string {
	return "crm-" + takenAt.UTC().Format("20060102T150405Z") + ".json"
}
