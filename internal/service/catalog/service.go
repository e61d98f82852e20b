package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/dricebeauty/clinic-api/internal/model"
	"github.com/dricebeauty/clinic-api/internal/repository"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
)

// Service manages the treatment catalog. Services are never hard-deleted:
// historical transaction items keep referencing them, so removal is the
// active flag.
type Service struct {
	repo repository.ServiceRepository
}

func NewService(repo repository.ServiceRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateService(ctx context.Context, svc *model.Service) error {
	if err := validateService(svc); err != nil {
		return err
	}
	svc.Active = true
	return s.repo.Create(ctx, svc)
}

func (s *Service) GetService(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateService(ctx context.Context, svc *model.Service) error {
	if err := validateService(svc); err != nil {
		return err
	}
	return s.repo.Update(ctx, svc)
}

func (s *Service) DeactivateService(ctx context.Context, id uuid.UUID) error {
	return s.repo.Deactivate(ctx, id)
}

func (s *Service) ListServices(ctx context.Context, filters *model.ServiceFilters) ([]*model.Service, error) {
	return s.repo.List(ctx, filters)
}

// ListByCategory returns the active services offered in a category, the
// listing the cart screen is built from.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]*model.Service, error) {
	return s.repo.List(ctx, &model.ServiceFilters{Category: category, ActiveOnly: true})
}

func validateService(svc *model.Service) error {
	if strings.TrimSpace(svc.Name) == "" {
		return apperror.Validation("name is required", nil)
	}
	if strings.TrimSpace(svc.Category) == "" {
		return apperror.Validation("category is required", nil)
	}
	if svc.Price.IsNegative() {
		return apperror.Validation("price must not be negative", nil)
	}
	if svc.Duration <= 0 {
		return apperror.Validation("duration must be positive", nil)
	}
	return nil
}
