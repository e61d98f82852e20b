package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dricebeauty/clinic-api/internal/model"
)

// All repository interfaces in one file
type (
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Patient, error)
		Search(ctx context.Context, term string) ([]*model.Patient, error)
		GetHistory(ctx context.Context, patientID uuid.UUID) (*model.PatientHistory, error)
	}

	ServiceRepository interface {
		Create(ctx context.Context, service *model.Service) error
		Get(ctx context.Context, id uuid.UUID) (*model.Service, error)
		Update(ctx context.Context, service *model.Service) error
		Deactivate(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filters *model.ServiceFilters) ([]*model.Service, error)
	}

	TransactionRepository interface {
		// Create persists the transaction row and all item rows in one
		// database transaction: either everything is written or nothing is.
		Create(ctx context.Context, txn *model.Transaction) error
		Get(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.TransactionStatus) error
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Transaction, error)
		GetInvoice(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		Delete(ctx context.Context, id uuid.UUID) error
		ListByDay(ctx context.Context, day time.Time) ([]*model.Appointment, error)
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error)
	}

	StaffRepository interface {
		Create(ctx context.Context, staff *model.Staff) error
		Get(ctx context.Context, id uuid.UUID) (*model.Staff, error)
		GetByEmail(ctx context.Context, email string) (*model.Staff, error)
		Update(ctx context.Context, staff *model.Staff) error
		Delete(ctx context.Context, id uuid.UUID) error
		ListActive(ctx context.Context) ([]*model.Staff, error)
	}

	DoctorNoteRepository interface {
		Create(ctx context.Context, note *model.DoctorNote) error
		GetCurrent(ctx context.Context, patientID uuid.UUID) (*model.DoctorNote, error)
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.DoctorNote, error)
	}

	PatientPhotoRepository interface {
		Create(ctx context.Context, photo *model.PatientPhoto) error
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.PatientPhoto, error)
		Delete(ctx context.Context, id uuid.UUID) error
	}

	// VisitRepository answers cross-entity questions about patient activity.
	VisitRepository interface {
		LastVisit(ctx context.Context, patientID uuid.UUID) (*time.Time, error)
	}
)
