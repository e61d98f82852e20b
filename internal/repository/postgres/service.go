package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dricebeauty/clinic-api/internal/model"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
)

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	query := `
		INSERT INTO services (
			id, name, price, description, category, duration, active,
			created_at, modified_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	now := time.Now()
	service.CreatedAt = now
	service.ModifiedAt = now

	_, err := r.db.ExecContext(ctx, query,
		service.ID,
		service.Name,
		service.Price,
		service.Description,
		service.Category,
		service.Duration,
		service.Active,
		service.CreatedAt,
		service.ModifiedAt,
	)
	if err != nil {
		return apperror.Persistence("failed to create service", err)
	}
	return nil
}

func (r *serviceRepository) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	query := `SELECT * FROM services WHERE id = $1`
	var service model.Service
	err := r.db.GetContext(ctx, &service, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("service", err)
	}
	if err != nil {
		return nil, apperror.Persistence("failed to get service", err)
	}
	return &service, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *model.Service) error {
	query := `
		UPDATE services
		SET name = $1, price = $2, description = $3, category = $4,
			duration = $5, active = $6, modified_at = $7
		WHERE id = $8
	`
	service.ModifiedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		service.Name,
		service.Price,
		service.Description,
		service.Category,
		service.Duration,
		service.Active,
		service.ModifiedAt,
		service.ID,
	)
	if err != nil {
		return apperror.Persistence("failed to update service", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Persistence("failed to get rows affected", err)
	}
	if rows == 0 {
		return apperror.NotFound("service", nil)
	}
	return nil
}

// Deactivate is the logical delete for services: sold transactions keep
// referencing the row, it just stops being offered.
func (r *serviceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE services SET active = FALSE, modified_at = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return apperror.Persistence("failed to deactivate service", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Persistence("failed to get rows affected", err)
	}
	if rows == 0 {
		return apperror.NotFound("service", nil)
	}
	return nil
}

func (r *serviceRepository) List(ctx context.Context, filters *model.ServiceFilters) ([]*model.Service, error) {
	query := `SELECT * FROM services WHERE 1=1`
	args := []interface{}{}
	argCount := 1

	if filters != nil {
		if filters.Category != "" {
			query += fmt.Sprintf(" AND category = $%d", argCount)
			args = append(args, filters.Category)
			argCount++
		}
		if filters.ActiveOnly {
			query += " AND active = TRUE"
		}
	}

	query += " ORDER BY name ASC"

	services := []*model.Service{}
	if err := r.db.SelectContext(ctx, &services, query, args...); err != nil {
		return nil, apperror.Persistence("failed to list services", err)
	}
	return services, nil
}
