package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dricebeauty/clinic-api/internal/model"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
)

type fakeApptRepo struct {
	appts map[uuid.UUID]*model.Appointment
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{appts: map[uuid.UUID]*model.Appointment{}}
}

func (f *fakeApptRepo) Create(_ context.Context, apt *model.Appointment) error {
	f.appts[apt.ID] = apt
	return nil
}

func (f *fakeApptRepo) Get(_ context.Context, id uuid.UUID) (*model.Appointment, error) {
	apt, ok := f.appts[id]
	if !ok {
		return nil, apperror.NotFound("appointment", nil)
	}
	return apt, nil
}

func (f *fakeApptRepo) Update(_ context.Context, apt *model.Appointment) error {
	if _, ok := f.appts[apt.ID]; !ok {
		return apperror.NotFound("appointment", nil)
	}
	f.appts[apt.ID] = apt
	return nil
}

func (f *fakeApptRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.appts, id)
	return nil
}

func (f *fakeApptRepo) ListByDay(_ context.Context, day time.Time) ([]*model.Appointment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)
	var out []*model.Appointment
	for _, apt := range f.appts {
		if !apt.StartTime.Before(start) && apt.StartTime.Before(end) {
			out = append(out, apt)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, apt := range f.appts {
		if apt.PatientID == patientID {
			out = append(out, apt)
		}
	}
	return out, nil
}

type fakePatientRepo struct {
	patients map[uuid.UUID]*model.Patient
}

func (f *fakePatientRepo) Create(_ context.Context, _ *model.Patient) error { return nil }
func (f *fakePatientRepo) Update(_ context.Context, _ *model.Patient) error { return nil }
func (f *fakePatientRepo) Delete(_ context.Context, _ uuid.UUID) error      { return nil }
func (f *fakePatientRepo) List(_ context.Context) ([]*model.Patient, error) { return nil, nil }
func (f *fakePatientRepo) Search(_ context.Context, _ string) ([]*model.Patient, error) {
	return nil, nil
}
func (f *fakePatientRepo) GetHistory(_ context.Context, _ uuid.UUID) (*model.PatientHistory, error) {
	return nil, nil
}

func (f *fakePatientRepo) Get(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, apperror.NotFound("patient", nil)
	}
	return p, nil
}

type fakeServiceRepo struct {
	services map[uuid.UUID]*model.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, _ *model.Service) error { return nil }
func (f *fakeServiceRepo) Update(_ context.Context, _ *model.Service) error { return nil }
func (f *fakeServiceRepo) Deactivate(_ context.Context, _ uuid.UUID) error  { return nil }
func (f *fakeServiceRepo) List(_ context.Context, _ *model.ServiceFilters) ([]*model.Service, error) {
	return nil, nil
}

func (f *fakeServiceRepo) Get(_ context.Context, id uuid.UUID) (*model.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, apperror.NotFound("service", nil)
	}
	return svc, nil
}

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) Send(to, _, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func newFixture() (*Service, *fakeApptRepo, *fakeSender, uuid.UUID, uuid.UUID) {
	email := "jane@example.com"
	patientID := uuid.New()
	serviceID := uuid.New()

	repo := newFakeApptRepo()
	sender := &fakeSender{}
	patientRepo := &fakePatientRepo{patients: map[uuid.UUID]*model.Patient{
		patientID: {ID: patientID, Name: "Jane Roe", Phone: "555-0101", Email: &email},
	}}
	serviceRepo := &fakeServiceRepo{services: map[uuid.UUID]*model.Service{
		serviceID: {ID: serviceID, Name: "Facial", Price: decimal.RequireFromString("45.00"), Active: true},
	}}

	return NewService(repo, patientRepo, serviceRepo, sender), repo, sender, patientID, serviceID
}

func validAppointment(patientID, serviceID uuid.UUID) *model.Appointment {
	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	return &model.Appointment{
		PatientID: patientID,
		ServiceID: serviceID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
}

func TestCreateAppointment(t *testing.T) {
	svc, repo, sender, patientID, serviceID := newFixture()

	apt := validAppointment(patientID, serviceID)
	require.NoError(t, svc.CreateAppointment(context.Background(), apt))

	assert.NotEqual(t, uuid.Nil, apt.ID)
	assert.Equal(t, model.AppointmentStatusScheduled, apt.Status)
	assert.Contains(t, repo.appts, apt.ID)
	assert.Equal(t, []string{"jane@example.com"}, sender.sent)
}

func TestCreateAppointmentSurvivesEmailFailure(t *testing.T) {
	svc, repo, sender, patientID, serviceID := newFixture()
	sender.err = assert.AnError

	apt := validAppointment(patientID, serviceID)
	require.NoError(t, svc.CreateAppointment(context.Background(), apt))
	assert.Contains(t, repo.appts, apt.ID)
}

func TestCreateAppointmentDurationBounds(t *testing.T) {
	svc, _, _, patientID, serviceID := newFixture()
	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		end  time.Time
	}{
		{"end before start", start.Add(-time.Hour)},
		{"below minimum", start.Add(10 * time.Minute)},
		{"above maximum", start.Add(5 * time.Hour)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			apt := validAppointment(patientID, serviceID)
			apt.EndTime = tc.end
			err := svc.CreateAppointment(context.Background(), apt)
			assert.True(t, apperror.IsValidation(err))
		})
	}
}

func TestCreateAppointmentUnknownPatient(t *testing.T) {
	svc, _, _, _, serviceID := newFixture()

	apt := validAppointment(uuid.New(), serviceID)
	err := svc.CreateAppointment(context.Background(), apt)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCancelAppointment(t *testing.T) {
	svc, repo, _, patientID, serviceID := newFixture()

	apt := validAppointment(patientID, serviceID)
	require.NoError(t, svc.CreateAppointment(context.Background(), apt))

	require.NoError(t, svc.CancelAppointment(context.Background(), apt.ID, "patient request"))
	assert.Equal(t, model.AppointmentStatusCancelled, repo.appts[apt.ID].Status)
	assert.Equal(t, "patient request", repo.appts[apt.ID].Notes)

	// Cancelling twice is a conflict.
	err := svc.CancelAppointment(context.Background(), apt.ID, "")
	assert.True(t, apperror.IsConflict(err))
}

func TestCancelCompletedAppointment(t *testing.T) {
	svc, repo, _, patientID, serviceID := newFixture()

	apt := validAppointment(patientID, serviceID)
	require.NoError(t, svc.CreateAppointment(context.Background(), apt))
	repo.appts[apt.ID].Status = model.AppointmentStatusCompleted

	err := svc.CancelAppointment(context.Background(), apt.ID, "")
	assert.True(t, apperror.IsConflict(err))
}

func TestListByDay(t *testing.T) {
	svc, _, _, patientID, serviceID := newFixture()

	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	apt := validAppointment(patientID, serviceID)
	require.NoError(t, svc.CreateAppointment(context.Background(), apt))

	other := validAppointment(patientID, serviceID)
	other.StartTime = day.AddDate(0, 0, 1).Add(10 * time.Hour)
	other.EndTime = other.StartTime.Add(time.Hour)
	require.NoError(t, svc.CreateAppointment(context.Background(), other))

	appts, err := svc.ListByDay(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, apt.ID, appts[0].ID)
}
