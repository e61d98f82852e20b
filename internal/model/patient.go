package model

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	Name             string     `db:"name" json:"name"`
	Phone            string     `db:"phone" json:"phone"`
	Email            *string    `db:"email" json:"email,omitempty"`
	Address          *string    `db:"address" json:"address,omitempty"`
	BirthDate        *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	Gender           *string    `db:"gender" json:"gender,omitempty"`
	EmergencyContact *string    `db:"emergency_contact" json:"emergency_contact,omitempty"`
	MedicalHistory   string     `db:"medical_history" json:"medical_history"`
	Notes            string     `db:"notes" json:"notes"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

type CreatePatientRequest struct {
	Name             string     `json:"name" binding:"required"`
	Phone            string     `json:"phone" binding:"required,phone"`
	Email            *string    `json:"email" binding:"omitempty,email"`
	Address          *string    `json:"address"`
	BirthDate        *time.Time `json:"birth_date"`
	Gender           *string    `json:"gender" binding:"omitempty,oneof=male female other"`
	EmergencyContact *string    `json:"emergency_contact"`
	MedicalHistory   string     `json:"medical_history"`
	Notes            string     `json:"notes"`
}

type UpdatePatientRequest struct {
	Name             string     `json:"name" binding:"required"`
	Phone            string     `json:"phone" binding:"required,phone"`
	Email            *string    `json:"email" binding:"omitempty,email"`
	Address          *string    `json:"address"`
	BirthDate        *time.Time `json:"birth_date"`
	Gender           *string    `json:"gender" binding:"omitempty,oneof=male female other"`
	EmergencyContact *string    `json:"emergency_contact"`
	MedicalHistory   string     `json:"medical_history"`
	Notes            string     `json:"notes"`
}

// PatientHistory aggregates a patient with their full visit record,
// transactions and appointments newest-first.
type PatientHistory struct {
	Patient      *Patient       `json:"patient"`
	Transactions []*Transaction `json:"transactions"`
	Appointments []*Appointment `json:"appointments"`
}
