package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Description string          `db:"description" json:"description"`
	Category    string          `db:"category" json:"category"`
	Duration    int             `db:"duration" json:"duration"`
	Active      bool            `db:"active" json:"active"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	ModifiedAt  time.Time       `db:"modified_at" json:"modified_at"`
}

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required"`
	Duration    int             `json:"duration" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required"`
	Duration    int             `json:"duration" binding:"required,gt=0"`
	Active      bool            `json:"active"`
}

type ServiceFilters struct {
	Category   string
	ActiveOnly bool
}
