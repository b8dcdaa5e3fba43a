package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/edip-crm/internal/domain"
	"github.com/heartmarshall/edip-crm/internal/service/validation"
)

// AddAzureDevOpsLink appends url to the account's Azure DevOps links.
func (s *Service) AddAzureDevOpsLink(ctx context.Context, bsnid, url string) (*domain.Account, error) {
	return s.AddLink(ctx, AddLinkInput{BSNID: bsnid, Kind: domain.LinkKindAzureDevOps, URL: url})
}

// AddArtifactsFolderLink appends url to the account's artifacts folder links.
func (s *Service) AddArtifactsFolderLink(ctx context.Context, bsnid, url string) (*domain.Account, error) {
	return s.AddLink(ctx, AddLinkInput{BSNID: bsnid, Kind: domain.LinkKindArtifactsFolder, URL: url})
}

// AddLink appends a link to the list selected by input.Kind. Links are not
// deduplicated.
func (s *Service) AddLink(ctx context.Context, input AddLinkInput) (*domain.Account, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	bsnid := strings.TrimSpace(input.BSNID)
	url := strings.TrimSpace(input.URL)

	a, err := s.accounts.AppendLink(ctx, bsnid, input.Kind, url)
	if err != nil {
		return nil, fmt.Errorf("append %s link: %w", input.Kind, err)
	}

	s.log.InfoContext(ctx, "account link added",
		slog.String("bsnid", bsnid),
		slog.String("kind", input.Kind.String()),
	)

	return a, nil
}
