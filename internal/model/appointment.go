package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

type Appointment struct {
	ID         uuid.UUID         `db:"id" json:"id"`
	PatientID  uuid.UUID         `db:"patient_id" json:"patient_id"`
	ServiceID  uuid.UUID         `db:"service_id" json:"service_id"`
	StartTime  time.Time         `db:"start_time" json:"start_time"`
	EndTime    time.Time         `db:"end_time" json:"end_time"`
	Status     AppointmentStatus `db:"status" json:"status"`
	Notes      string            `db:"notes" json:"notes"`
	CreatedAt  time.Time         `db:"created_at" json:"created_at"`
	ModifiedAt time.Time         `db:"modified_at" json:"modified_at"`
}

type CreateAppointmentRequest struct {
	PatientID uuid.UUID `json:"patient_id" binding:"required"`
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required,gtefield=StartTime"`
	Notes     string    `json:"notes" binding:"max=1000"`
}

type UpdateAppointmentRequest struct {
	StartTime time.Time         `json:"start_time" binding:"required"`
	EndTime   time.Time         `json:"end_time" binding:"required,gtefield=StartTime"`
	Status    AppointmentStatus `json:"status" binding:"required,oneof=scheduled completed cancelled no_show"`
	Notes     string            `json:"notes" binding:"max=1000"`
}
