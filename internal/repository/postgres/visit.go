package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dricebeauty/clinic-api/pkg/apperror"
)

// LastVisit is the newest timestamp across doctor notes, photo uploads,
// completed appointments and transactions. Returns nil when the patient has
// no recorded activity.
func (r *visitRepository) LastVisit(ctx context.Context, patientID uuid.UUID) (*time.Time, error) {
	query := `
		SELECT MAX(visited_at) FROM (
			SELECT MAX(created_at) AS visited_at FROM doctor_notes WHERE patient_id = $1
			UNION ALL
			SELECT MAX(created_at) FROM patient_photos WHERE patient_id = $1
			UNION ALL
			SELECT MAX(start_time) FROM appointments WHERE patient_id = $1 AND status = 'completed'
			UNION ALL
			SELECT MAX(transaction_date) FROM transactions WHERE patient_id = $1 AND status = 'completed'
		) visits
	`
	var last sql.NullTime
	err := r.db.GetContext(ctx, &last, query, patientID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.Persistence("failed to get last visit", err)
	}
	if !last.Valid {
		return nil, nil
	}
	return &last.Time, nil
}
