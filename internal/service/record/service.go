package record

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dricebeauty/clinic-api/internal/model"
	"github.com/dricebeauty/clinic-api/internal/repository"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
	"github.com/dricebeauty/clinic-api/pkg/storage"
)

// Service manages the clinical record: doctor notes (append-only) and
// progress photos (storage references only).
type Service struct {
	noteRepo    repository.DoctorNoteRepository
	photoRepo   repository.PatientPhotoRepository
	patientRepo repository.PatientRepository
	visitRepo   repository.VisitRepository
	store       storage.Storage
}

func NewService(noteRepo repository.DoctorNoteRepository, photoRepo repository.PatientPhotoRepository, patientRepo repository.PatientRepository, visitRepo repository.VisitRepository, store storage.Storage) *Service {
	return &Service{
		noteRepo:    noteRepo,
		photoRepo:   photoRepo,
		patientRepo: patientRepo,
		visitRepo:   visitRepo,
		store:       store,
	}
}

// AddNote appends a new clinical entry. Existing notes are never modified;
// history is the full trail.
func (s *Service) AddNote(ctx context.Context, note *model.DoctorNote) error {
	if _, err := s.patientRepo.Get(ctx, note.PatientID); err != nil {
		return err
	}
	if note.ProgressNotes == "" {
		return apperror.Validation("progress notes are required", nil)
	}
	return s.noteRepo.Create(ctx, note)
}

// CurrentNote is the newest entry for the patient.
func (s *Service) CurrentNote(ctx context.Context, patientID uuid.UUID) (*model.DoctorNote, error) {
	return s.noteRepo.GetCurrent(ctx, patientID)
}

func (s *Service) ListNotes(ctx context.Context, patientID uuid.UUID) ([]*model.DoctorNote, error) {
	return s.noteRepo.ListByPatient(ctx, patientID)
}

// AddPhoto hands the file to the storage collaborator and persists only the
// returned reference.
func (s *Service) AddPhoto(ctx context.Context, patientID uuid.UUID, sourcePath string, photoType model.PhotoType) (*model.PatientPhoto, error) {
	if _, err := s.patientRepo.Get(ctx, patientID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("patients/%s/%s/%d%s",
		patientID, photoType, time.Now().UnixNano(), filepath.Ext(sourcePath))
	reference, err := s.store.Save(sourcePath, key)
	if err != nil {
		return nil, apperror.Persistence("failed to store photo", err)
	}

	photo := &model.PatientPhoto{
		PatientID: patientID,
		PhotoPath: reference,
		PhotoType: photoType,
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		// The row is the source of truth; without it the stored file is
		// unreachable, so clean it up.
		s.store.Remove(reference)
		return nil, err
	}
	return photo, nil
}

func (s *Service) ListPhotos(ctx context.Context, patientID uuid.UUID) ([]*model.PatientPhoto, error) {
	return s.photoRepo.ListByPatient(ctx, patientID)
}

// LastVisit reports the patient's most recent activity across notes,
// photos, completed appointments and completed transactions.
func (s *Service) LastVisit(ctx context.Context, patientID uuid.UUID) (*time.Time, error) {
	if _, err := s.patientRepo.Get(ctx, patientID); err != nil {
		return nil, err
	}
	return s.visitRepo.LastVisit(ctx, patientID)
}
