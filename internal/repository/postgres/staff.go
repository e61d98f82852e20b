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

func (r *staffRepository) Create(ctx context.Context, staff *model.Staff) error {
	query := `
		INSERT INTO staff (
			id, name, email, phone, role, active, password_hash,
			created_at, modified_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if staff.ID == uuid.Nil {
		staff.ID = uuid.New()
	}
	now := time.Now()
	staff.CreatedAt = now
	staff.ModifiedAt = now

	_, err := r.db.ExecContext(ctx, query,
		staff.ID,
		staff.Name,
		staff.Email,
		staff.Phone,
		staff.Role,
		staff.Active,
		staff.PasswordHash,
		staff.CreatedAt,
		staff.ModifiedAt,
	)
	if err != nil {
		return apperror.Persistence("failed to create staff", err)
	}
	return nil
}

func (r *staffRepository) Get(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	query := `SELECT * FROM staff WHERE id = $1`
	var staff model.Staff
	err := r.db.GetContext(ctx, &staff, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("staff", err)
	}
	if err != nil {
		return nil, apperror.Persistence("failed to get staff", err)
	}
	return &staff, nil
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*model.Staff, error) {
	query := `SELECT * FROM staff WHERE email = $1`
	var staff model.Staff
	err := r.db.GetContext(ctx, &staff, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("staff", err)
	}
	if err != nil {
		return nil, apperror.Persistence("failed to get staff by email", err)
	}
	return &staff, nil
}

func (r *staffRepository) Update(ctx context.Context, staff *model.Staff) error {
	query := `
		UPDATE staff
		SET name = $1, email = $2, phone = $3, role = $4, active = $5, modified_at = $6
		WHERE id = $7
	`
	staff.ModifiedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		staff.Name,
		staff.Email,
		staff.Phone,
		staff.Role,
		staff.Active,
		staff.ModifiedAt,
		staff.ID,
	)
	if err != nil {
		return apperror.Persistence("failed to update staff", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Persistence("failed to get rows affected", err)
	}
	if rows == 0 {
		return apperror.NotFound("staff", nil)
	}
	return nil
}

func (r *staffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return apperror.Persistence("failed to delete staff", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Persistence("failed to get rows affected", err)
	}
	if rows == 0 {
		return apperror.NotFound("staff", nil)
	}
	return nil
}

func (r *staffRepository) ListActive(ctx context.Context) ([]*model.Staff, error) {
	query := `SELECT * FROM staff WHERE active = TRUE ORDER BY name ASC`
	staff := []*model.Staff{}
	if err := r.db.SelectContext(ctx, &staff, query); err != nil {
		return nil, apperror.Persistence("failed to list active staff", err)
	}
	return staff, nil
}
