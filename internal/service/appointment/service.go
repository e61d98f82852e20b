package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dricebeauty/clinic-api/internal/email"
	"github.com/dricebeauty/clinic-api/internal/model"
	"github.com/dricebeauty/clinic-api/internal/repository"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
)

const (
	MinAppointmentDuration = 15 * time.Minute
	MaxAppointmentDuration = 4 * time.Hour
)

type Service struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
	serviceRepo repository.ServiceRepository
	sender      email.Sender
}

func NewService(repo repository.AppointmentRepository, patientRepo repository.PatientRepository, serviceRepo repository.ServiceRepository, sender email.Sender) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		serviceRepo: serviceRepo,
		sender:      sender,
	}
}

func (s *Service) CreateAppointment(ctx context.Context, apt *model.Appointment) error {
	if err := s.validateTimes(apt.StartTime, apt.EndTime); err != nil {
		return err
	}

	patient, err := s.patientRepo.Get(ctx, apt.PatientID)
	if err != nil {
		return err
	}
	svc, err := s.serviceRepo.Get(ctx, apt.ServiceID)
	if err != nil {
		return err
	}

	apt.ID = uuid.New()
	apt.Status = model.AppointmentStatusScheduled

	if err := s.repo.Create(ctx, apt); err != nil {
		return err
	}

	// Confirmation email is best-effort; the booking stands either way.
	if patient.Email != nil {
		if err := s.sendConfirmation(*patient.Email, patient.Name, svc.Name, apt.StartTime); err != nil {
			log.Warn().Err(err).Str("appointment_id", apt.ID.String()).Msg("failed to send confirmation email")
		}
	}
	return nil
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateAppointment(ctx context.Context, apt *model.Appointment) error {
	if err := s.validateTimes(apt.StartTime, apt.EndTime); err != nil {
		return err
	}
	return s.repo.Update(ctx, apt)
}

func (s *Service) CancelAppointment(ctx context.Context, id uuid.UUID, reason string) error {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if apt.Status == model.AppointmentStatusCancelled {
		return apperror.Conflict("appointment is already cancelled", nil)
	}
	if apt.Status == model.AppointmentStatusCompleted {
		return apperror.Conflict("cannot cancel a completed appointment", nil)
	}

	apt.Status = model.AppointmentStatusCancelled
	if reason != "" {
		apt.Notes = reason
	}
	return s.repo.Update(ctx, apt)
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByDay(ctx context.Context, day time.Time) ([]*model.Appointment, error) {
	return s.repo.ListByDay(ctx, day)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) validateTimes(startTime, endTime time.Time) error {
	if endTime.Before(startTime) {
		return apperror.Validation("end time must not be before start time", nil)
	}
	duration := endTime.Sub(startTime)
	if duration < MinAppointmentDuration {
		return apperror.Validation("appointment is shorter than the minimum duration", nil)
	}
	if duration > MaxAppointmentDuration {
		return apperror.Validation("appointment exceeds the maximum duration", nil)
	}
	return nil
}

func (s *Service) sendConfirmation(to, patientName, serviceName string, start time.Time) error {
	subject := "Appointment confirmation"
	body := "Dear " + patientName + ",\n\n" +
		"Your " + serviceName + " appointment is confirmed for " +
		start.Format("Monday, 2 January 2006 at 15:04") + ".\n\n" +
		"See you soon!"
	return s.sender.Send(to, subject, body)
}
