package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dricebeauty/clinic-api/internal/model"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
)

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (
			id, name, phone, email, address, birth_date, gender,
			emergency_contact, medical_history, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	now := time.Now()
	if patient.CreatedAt.IsZero() {
		patient.CreatedAt = now
	}
	patient.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.Name,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.BirthDate,
		patient.Gender,
		patient.EmergencyContact,
		patient.MedicalHistory,
		patient.Notes,
		patient.CreatedAt,
		patient.UpdatedAt,
	)
	if err != nil {
		return apperror.Persistence("failed to create patient", err)
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `SELECT * FROM patients WHERE id = $1`
	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("patient", err)
	}
	if err != nil {
		return nil, apperror.Persistence("failed to get patient", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients
		SET name = $1, phone = $2, email = $3, address = $4, birth_date = $5,
			gender = $6, emergency_contact = $7, medical_history = $8,
			notes = $9, updated_at = $10
		WHERE id = $11
	`
	patient.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		patient.Name,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.BirthDate,
		patient.Gender,
		patient.EmergencyContact,
		patient.MedicalHistory,
		patient.Notes,
		patient.UpdatedAt,
		patient.ID,
	)
	if err != nil {
		return apperror.Persistence("failed to update patient", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Persistence("failed to get rows affected", err)
	}
	if rows == 0 {
		return apperror.NotFound("patient", nil)
	}
	return nil
}

// Delete refuses to remove a patient that still has transactions,
// appointments, notes or photos. Dependent history is never orphaned.
func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			SELECT EXISTS (SELECT 1 FROM transactions WHERE patient_id = $1)
				OR EXISTS (SELECT 1 FROM appointments WHERE patient_id = $1)
				OR EXISTS (SELECT 1 FROM doctor_notes WHERE patient_id = $1)
				OR EXISTS (SELECT 1 FROM patient_photos WHERE patient_id = $1)
		`
		var hasDependents bool
		if err := tx.GetContext(ctx, &hasDependents, query, id); err != nil {
			return apperror.Persistence("failed to check patient dependents", err)
		}
		if hasDependents {
			return apperror.Conflict("patient has existing records", nil)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
		if err != nil {
			return apperror.Persistence("failed to delete patient", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return apperror.Persistence("failed to get rows affected", err)
		}
		if rows == 0 {
			return apperror.NotFound("patient", nil)
		}
		return nil
	})
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT * FROM patients ORDER BY name ASC`
	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, apperror.Persistence("failed to list patients", err)
	}
	return patients, nil
}

func (r *patientRepository) Search(ctx context.Context, term string) ([]*model.Patient, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*model.Patient{}, nil
	}

	query := `
		SELECT * FROM patients
		WHERE name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1
		ORDER BY name ASC
	`
	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query, "%"+term+"%"); err != nil {
		return nil, apperror.Persistence("failed to search patients", err)
	}
	return patients, nil
}

// GetHistory returns the patient with transactions and appointments
// newest-first. A missing patient is NotFound; a patient with no history
// gets empty slices.
func (r *patientRepository) GetHistory(ctx context.Context, patientID uuid.UUID) (*model.PatientHistory, error) {
	patient, err := r.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}

	transactions := []*model.Transaction{}
	query := `
		SELECT * FROM transactions
		WHERE patient_id = $1
		ORDER BY transaction_date DESC
	`
	if err := r.db.SelectContext(ctx, &transactions, query, patientID); err != nil {
		return nil, apperror.Persistence("failed to get patient transactions", err)
	}

	for _, txn := range transactions {
		items := []*model.TransactionItem{}
		itemQuery := `SELECT * FROM transaction_items WHERE transaction_id = $1 ORDER BY id`
		if err := r.db.SelectContext(ctx, &items, itemQuery, txn.ID); err != nil {
			return nil, apperror.Persistence("failed to get transaction items", err)
		}
		txn.Items = items
	}

	appointments := []*model.Appointment{}
	query = `
		SELECT * FROM appointments
		WHERE patient_id = $1
		ORDER BY start_time DESC
	`
	if err := r.db.SelectContext(ctx, &appointments, query, patientID); err != nil {
		return nil, apperror.Persistence("failed to get patient appointments", err)
	}

	return &model.PatientHistory{
		Patient:      patient,
		Transactions: transactions,
		Appointments: appointments,
	}, nil
}
