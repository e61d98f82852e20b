package model

import (
	"time"

	"github.com/google/uuid"
)

// DoctorNote is an append-only clinical entry. The "current" note for a
// patient is the most recent by created_at; notes are never updated in place.
type DoctorNote struct {
	ID              uuid.UUID `db:"id" json:"id"`
	PatientID       uuid.UUID `db:"patient_id" json:"patient_id"`
	MedicalHistory  string    `db:"medical_history" json:"medical_history"`
	ProgressNotes   string    `db:"progress_notes" json:"progress_notes"`
	Recommendations string    `db:"recommendations" json:"recommendations"`
	NextSteps       string    `db:"next_steps" json:"next_steps"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type CreateDoctorNoteRequest struct {
	MedicalHistory  string `json:"medical_history"`
	ProgressNotes   string `json:"progress_notes" binding:"required"`
	Recommendations string `json:"recommendations"`
	NextSteps       string `json:"next_steps"`
}
