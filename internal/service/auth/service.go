package auth

import (
	"context"

	"github.com/dricebeauty/clinic-api/internal/model"
	"github.com/dricebeauty/clinic-api/internal/repository"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
	"github.com/dricebeauty/clinic-api/pkg/auth"
	"github.com/dricebeauty/clinic-api/pkg/security"
)

type Service struct {
	staffRepo repository.StaffRepository
	hasher    security.PasswordHasher
	jwt       auth.JWTService
}

func NewService(staffRepo repository.StaffRepository, hasher security.PasswordHasher, jwt auth.JWTService) *Service {
	return &Service{staffRepo: staffRepo, hasher: hasher, jwt: jwt}
}

// Login authenticates a staff member by email and password. Inactive
// accounts and bad credentials both come back as unauthorized; the caller
// never learns which.
func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	staff, err := s.staffRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.Unauthorized(err)
		}
		return nil, err
	}
	if !staff.Active {
		return nil, apperror.Unauthorized(nil)
	}
	if err := s.hasher.Compare(staff.PasswordHash, password); err != nil {
		return nil, apperror.Unauthorized(err)
	}

	accessToken, err := s.jwt.GenerateAccessToken(staff.ID, string(staff.Role))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	refreshToken, err := s.jwt.GenerateRefreshToken(staff.ID, string(staff.Role))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &model.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Staff:        staff,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*model.TokenResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized(err)
	}

	staff, err := s.staffRepo.Get(ctx, claims.StaffID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.Unauthorized(err)
		}
		return nil, err
	}
	if !staff.Active {
		return nil, apperror.Unauthorized(nil)
	}

	accessToken, err := s.jwt.GenerateAccessToken(staff.ID, string(staff.Role))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	newRefresh, err := s.jwt.GenerateRefreshToken(staff.ID, string(staff.Role))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &model.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		Staff:        staff,
	}, nil
}

func (s *Service) ValidateAccessToken(token string) (*auth.Claims, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, apperror.Unauthorized(err)
	}
	return claims, nil
}
