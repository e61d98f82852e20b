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

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, patient_id, service_id, start_time, end_time,
			status, notes, created_at, modified_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	now := time.Now()
	appointment.CreatedAt = now
	appointment.ModifiedAt = now

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.PatientID,
		appointment.ServiceID,
		appointment.StartTime,
		appointment.EndTime,
		appointment.Status,
		appointment.Notes,
		appointment.CreatedAt,
		appointment.ModifiedAt,
	)
	if err != nil {
		return apperror.Persistence("failed to create appointment", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE id = $1`
	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("appointment", err)
	}
	if err != nil {
		return nil, apperror.Persistence("failed to get appointment", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments
		SET start_time = $1, end_time = $2, status = $3, notes = $4, modified_at = $5
		WHERE id = $6
	`
	appointment.ModifiedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		appointment.StartTime,
		appointment.EndTime,
		appointment.Status,
		appointment.Notes,
		appointment.ModifiedAt,
		appointment.ID,
	)
	if err != nil {
		return apperror.Persistence("failed to update appointment", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Persistence("failed to get rows affected", err)
	}
	if rows == 0 {
		return apperror.NotFound("appointment", nil)
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return apperror.Persistence("failed to delete appointment", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Persistence("failed to get rows affected", err)
	}
	if rows == 0 {
		return apperror.NotFound("appointment", nil)
	}
	return nil
}

// ListByDay returns appointments starting within [00:00, 24:00) of the
// given day, in the day's location, ordered by start time.
func (r *appointmentRepository) ListByDay(ctx context.Context, day time.Time) ([]*model.Appointment, error) {
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	query := `
		SELECT * FROM appointments
		WHERE start_time >= $1 AND start_time < $2
		ORDER BY start_time ASC
	`
	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, startOfDay, endOfDay); err != nil {
		return nil, apperror.Persistence("failed to list appointments", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	query := `
		SELECT * FROM appointments
		WHERE patient_id = $1
		ORDER BY start_time DESC
	`
	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, patientID); err != nil {
		return nil, apperror.Persistence("failed to list patient appointments", err)
	}
	return appointments, nil
}
