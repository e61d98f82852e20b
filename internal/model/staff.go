package model

import (
	"time"

	"github.com/google/uuid"
)

type StaffRole string

const (
	StaffRoleAdmin        StaffRole = "admin"
	StaffRoleDoctor       StaffRole = "doctor"
	StaffRoleTherapist    StaffRole = "therapist"
	StaffRoleReceptionist StaffRole = "receptionist"
)

type Staff struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	Role         StaffRole `db:"role" json:"role"`
	Active       bool      `db:"active" json:"active"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	ModifiedAt   time.Time `db:"modified_at" json:"modified_at"`
}

type CreateStaffRequest struct {
	Name     string    `json:"name" binding:"required"`
	Email    string    `json:"email" binding:"required,email"`
	Phone    string    `json:"phone" binding:"required,phone"`
	Role     StaffRole `json:"role" binding:"required,oneof=admin doctor therapist receptionist"`
	Password string    `json:"password" binding:"required,min=8"`
}

type UpdateStaffRequest struct {
	Name   string    `json:"name" binding:"required"`
	Email  string    `json:"email" binding:"required,email"`
	Phone  string    `json:"phone" binding:"required,phone"`
	Role   StaffRole `json:"role" binding:"required,oneof=admin doctor therapist receptionist"`
	Active bool      `json:"active"`
}
