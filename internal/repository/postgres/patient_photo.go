package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dricebeauty/clinic-api/internal/model"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
)

func (r *patientPhotoRepository) Create(ctx context.Context, photo *model.PatientPhoto) error {
	query := `
		INSERT INTO patient_photos (id, patient_id, photo_path, photo_type, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if photo.ID == uuid.Nil {
		photo.ID = uuid.New()
	}
	photo.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		photo.ID,
		photo.PatientID,
		photo.PhotoPath,
		photo.PhotoType,
		photo.CreatedAt,
	)
	if err != nil {
		return apperror.Persistence("failed to create patient photo", err)
	}
	return nil
}

func (r *patientPhotoRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.PatientPhoto, error) {
	query := `
		SELECT * FROM patient_photos
		WHERE patient_id = $1
		ORDER BY created_at DESC
	`
	photos := []*model.PatientPhoto{}
	if err := r.db.SelectContext(ctx, &photos, query, patientID); err != nil {
		return nil, apperror.Persistence("failed to list patient photos", err)
	}
	return photos, nil
}

func (r *patientPhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM patient_photos WHERE id = $1`, id)
	if err != nil {
		return apperror.Persistence("failed to delete patient photo", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Persistence("failed to get rows affected", err)
	}
	if rows == 0 {
		return apperror.NotFound("patient photo", nil)
	}
	return nil
}
