package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/dricebeauty/clinic-api/internal/repository"
)

type patientRepository struct {
	BaseRepository
}

type serviceRepository struct {
	BaseRepository
}

type transactionRepository struct {
	BaseRepository
}

type appointmentRepository struct {
	BaseRepository
}

type staffRepository struct {
	BaseRepository
}

type doctorNoteRepository struct {
	BaseRepository
}

type patientPhotoRepository struct {
	BaseRepository
}

type visitRepository struct {
	BaseRepository
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{NewBaseRepository(db)}
}

func NewServiceRepository(db *sqlx.DB) repository.ServiceRepository {
	return &serviceRepository{NewBaseRepository(db)}
}

func NewTransactionRepository(db *sqlx.DB) repository.TransactionRepository {
	return &transactionRepository{NewBaseRepository(db)}
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{NewBaseRepository(db)}
}

func NewStaffRepository(db *sqlx.DB) repository.StaffRepository {
	return &staffRepository{NewBaseRepository(db)}
}

func NewDoctorNoteRepository(db *sqlx.DB) repository.DoctorNoteRepository {
	return &doctorNoteRepository{NewBaseRepository(db)}
}

func NewPatientPhotoRepository(db *sqlx.DB) repository.PatientPhotoRepository {
	return &patientPhotoRepository{NewBaseRepository(db)}
}

func NewVisitRepository(db *sqlx.DB) repository.VisitRepository {
	return &visitRepository{NewBaseRepository(db)}
}
