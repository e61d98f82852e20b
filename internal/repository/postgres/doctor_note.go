package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dricebeauty/clinic-api/internal/model"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
)

func (r *doctorNoteRepository) Create(ctx context.Context, note *model.DoctorNote) error {
	query := `
		INSERT INTO doctor_notes (
			id, patient_id, medical_history, progress_notes,
			recommendations, next_steps, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		note.ID,
		note.PatientID,
		note.MedicalHistory,
		note.ProgressNotes,
		note.Recommendations,
		note.NextSteps,
		note.CreatedAt,
	)
	if err != nil {
		return apperror.Persistence("failed to create doctor note", err)
	}
	return nil
}

// GetCurrent returns the newest note for the patient. Notes are append-only,
// so newest by created_at is the current clinical state.
func (r *doctorNoteRepository) GetCurrent(ctx context.Context, patientID uuid.UUID) (*model.DoctorNote, error) {
	query := `
		SELECT * FROM doctor_notes
		WHERE patient_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	var note model.DoctorNote
	err := r.db.GetContext(ctx, &note, query, patientID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("doctor note", err)
	}
	if err != nil {
		return nil, apperror.Persistence("failed to get current doctor note", err)
	}
	return &note, nil
}

func (r *doctorNoteRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.DoctorNote, error) {
	query := `
		SELECT * FROM doctor_notes
		WHERE patient_id = $1
		ORDER BY created_at DESC
	`
	notes := []*model.DoctorNote{}
	if err := r.db.SelectContext(ctx, &notes, query, patientID); err != nil {
		return nil, apperror.Persistence("failed to list doctor notes", err)
	}
	return notes, nil
}
