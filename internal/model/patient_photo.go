package model

import (
	"time"

	"github.com/google/uuid"
)

type PhotoType string

const (
	PhotoTypeBefore   PhotoType = "before"
	PhotoTypeAfter    PhotoType = "after"
	PhotoTypeProgress PhotoType = "progress"
)

// PatientPhoto stores only the storage reference; image bytes live with the
// storage collaborator.
type PatientPhoto struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	PhotoPath string    `db:"photo_path" json:"photo_path"`
	PhotoType PhotoType `db:"photo_type" json:"photo_type"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type AddPhotoRequest struct {
	SourcePath string    `json:"source_path" binding:"required"`
	PhotoType  PhotoType `json:"photo_type" binding:"required,oneof=before after progress"`
}
