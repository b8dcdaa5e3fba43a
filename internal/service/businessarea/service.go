// Package businessarea manages the registry that maps business areas to the
// IT partner pre-filled on new accounts.
package businessarea

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/edip-crm/internal/domain"
	"github.com/heartmarshall/edip-crm/internal/service/validation"
)

type areaRepo interface {
	Get(ctx context.Context, name string) (*domain.BusinessArea, error)
	Create(ctx context.Context, name, partner string) (*domain.BusinessArea, error)
	Upsert(ctx context.Context, name, partner string) (*domain.BusinessArea, error)
	List(ctx context.Context) ([]*domain.BusinessArea, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides business area registry operations.
type Service struct {
	areas areaRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new BusinessArea service.
func NewService(log *slog.Logger, areas areaRepo, tx txManager) *Service {
	return &Service{
		areas: areas,
		tx:    tx,
		log:   log.With("service", "businessarea"),
	}
}

// Input holds a business area and its default IT partner.
type Input struct {
	Name    string `validate:"notblank,max=200"`
	Partner string `validate:"max=200"`
}

func (i Input) normalize() (Input, error) {
	if err := validation.Struct(i); err != nil {
		return Input{}, err
	}
	return Input{Name: strings.TrimSpace(i.Name), Partner: strings.TrimSpace(i.Partner)}, nil
}

// AddBusinessArea registers a new business area. Returns
// domain.ErrAlreadyExists if the name is taken.
func (s *Service) AddBusinessArea(ctx context.Context, input Input) (*domain.BusinessArea, error) {
	in, err := input.normalize()
	if err != nil {
		return nil, err
	}

	ba, err := s.areas.Create(ctx, in.Name, in.Partner)
	if err != nil {
		return nil, fmt.Errorf("create business area: %w", err)
	}

	s.log.InfoContext(ctx, "business area added",
		slog.String("name", ba.Name),
		slog.String("partner", ba.DefaultITPartner),
	)

	return ba, nil
}

// UpdatePrimaryITPartner sets the default IT partner of a business area,
// registering the area if needed. Existing accounts keep their partner.
func (s *Service) UpdatePrimaryITPartner(ctx context.Context, input Input) (*domain.BusinessArea, error) {
	in, err := input.normalize()
	if err != nil {
		return nil, err
	}

	var ba *domain.BusinessArea
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		ba, err = s.areas.Upsert(ctx, in.Name, in.Partner)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("upsert business area: %w", err)
	}

	s.log.InfoContext(ctx, "primary IT partner updated",
		slog.String("name", ba.Name),
		slog.String("partner", ba.DefaultITPartner),
	)

	return ba, nil
}

// ListBusinessAreas returns the registry ordered by name.
func (s *Service) ListBusinessAreas(ctx context.Context) ([]*domain.BusinessArea, error) {
	list, err := s.areas.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list business areas: %w", err)
	}
	return list, nil
}

// DefaultITPartner returns the registered partner for a business area, or an
// empty string when the area is not registered.
func (s *Service) DefaultITPartner(ctx context.Context, name string) (string, error) {
	ba, err := s.areas.Get(ctx, strings.TrimSpace(name))
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get business area: %w", err)
	}
	return ba.DefaultITPartner, nil
}
