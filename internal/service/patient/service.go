package patient

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/dricebeauty/clinic-api/internal/model"
	"github.com/dricebeauty/clinic-api/internal/repository"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
)

// MinSearchLength is the shortest term the API accepts; shorter terms
// return an empty result without touching the store.
const MinSearchLength = 2

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, patient *model.Patient) error {
	if err := validatePatient(patient); err != nil {
		return err
	}
	return s.repo.Create(ctx, patient)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdatePatient(ctx context.Context, patient *model.Patient) error {
	if err := validatePatient(patient); err != nil {
		return err
	}
	if patient.ID == uuid.Nil {
		return apperror.Validation("patient id is required", nil)
	}
	return s.repo.Update(ctx, patient)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return s.repo.List(ctx)
}

// SearchPatients matches name, phone or email case-insensitively. Terms
// below the minimum length short-circuit to an empty result.
func (s *Service) SearchPatients(ctx context.Context, term string) ([]*model.Patient, error) {
	term = strings.TrimSpace(term)
	if len(term) < MinSearchLength {
		return []*model.Patient{}, nil
	}
	return s.repo.Search(ctx, term)
}

func (s *Service) GetPatientHistory(ctx context.Context, id uuid.UUID) (*model.PatientHistory, error) {
	return s.repo.GetHistory(ctx, id)
}

func validatePatient(patient *model.Patient) error {
	if strings.TrimSpace(patient.Name) == "" {
		return apperror.Validation("name is required", nil)
	}
	if strings.TrimSpace(patient.Phone) == "" {
		return apperror.Validation("phone is required", nil)
	}
	return nil
}
