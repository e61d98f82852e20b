package staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/dricebeauty/clinic-api/internal/model"
	"github.com/dricebeauty/clinic-api/internal/repository"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
	"github.com/dricebeauty/clinic-api/pkg/security"
)

type Service struct {
	repo   repository.StaffRepository
	hasher security.PasswordHasher
}

func NewService(repo repository.StaffRepository, hasher security.PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

func (s *Service) CreateStaff(ctx context.Context, staff *model.Staff, password string) error {
	if !validRole(staff.Role) {
		return apperror.Validation("invalid staff role", nil)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return apperror.Validation("invalid password", err)
	}
	staff.PasswordHash = hash
	staff.Active = true

	return s.repo.Create(ctx, staff)
}

func (s *Service) GetStaff(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateStaff(ctx context.Context, staff *model.Staff) error {
	if !validRole(staff.Role) {
		return apperror.Validation("invalid staff role", nil)
	}
	return s.repo.Update(ctx, staff)
}

func (s *Service) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListActiveStaff(ctx context.Context) ([]*model.Staff, error) {
	return s.repo.ListActive(ctx)
}

func validRole(role model.StaffRole) bool {
	switch role {
	case model.StaffRoleAdmin, model.StaffRoleDoctor, model.StaffRoleTherapist, model.StaffRoleReceptionist:
		return true
	}
	return false
}
