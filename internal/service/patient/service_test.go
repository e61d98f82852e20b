package patient

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dricebeauty/clinic-api/internal/model"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
)

type fakePatientRepo struct {
	patients   map[uuid.UUID]*model.Patient
	searchTerm string
	searched   bool
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: map[uuid.UUID]*model.Patient{}}
}

func (f *fakePatientRepo) Create(_ context.Context, patient *model.Patient) error {
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	f.patients[patient.ID] = patient
	return nil
}

func (f *fakePatientRepo) Get(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, apperror.NotFound("patient", nil)
	}
	return p, nil
}

func (f *fakePatientRepo) Update(_ context.Context, patient *model.Patient) error {
	if _, ok := f.patients[patient.ID]; !ok {
		return apperror.NotFound("patient", nil)
	}
	f.patients[patient.ID] = patient
	return nil
}

func (f *fakePatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.patients[id]; !ok {
		return apperror.NotFound("patient", nil)
	}
	delete(f.patients, id)
	return nil
}

func (f *fakePatientRepo) List(_ context.Context) ([]*model.Patient, error) {
	out := make([]*model.Patient, 0, len(f.patients))
	for _, p := range f.patients {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePatientRepo) Search(_ context.Context, term string) ([]*model.Patient, error) {
	f.searched = true
	f.searchTerm = term
	var out []*model.Patient
	for _, p := range f.patients {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) ||
			strings.Contains(p.Phone, term) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePatientRepo) GetHistory(_ context.Context, patientID uuid.UUID) (*model.PatientHistory, error) {
	p, ok := f.patients[patientID]
	if !ok {
		return nil, apperror.NotFound("patient", nil)
	}
	return &model.PatientHistory{Patient: p}, nil
}

func TestCreateAndGetPatient(t *testing.T) {
	svc := NewService(newFakePatientRepo())

	p := &model.Patient{Name: "Maria Santos", Phone: "555-0142"}
	require.NoError(t, svc.CreatePatient(context.Background(), p))
	require.NotEqual(t, uuid.Nil, p.ID)

	got, err := svc.GetPatient(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", got.Name)
	assert.Equal(t, "555-0142", got.Phone)
}

func TestCreatePatientValidation(t *testing.T) {
	svc := NewService(newFakePatientRepo())

	err := svc.CreatePatient(context.Background(), &model.Patient{Phone: "555-0142"})
	assert.True(t, apperror.IsValidation(err))

	err = svc.CreatePatient(context.Background(), &model.Patient{Name: "Maria Santos"})
	assert.True(t, apperror.IsValidation(err))

	err = svc.CreatePatient(context.Background(), &model.Patient{Name: "   ", Phone: "555-0142"})
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateNonexistentPatient(t *testing.T) {
	svc := NewService(newFakePatientRepo())

	err := svc.UpdatePatient(context.Background(), &model.Patient{
		ID:    uuid.New(),
		Name:  "Ghost",
		Phone: "555-0000",
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdatePatientRequiresID(t *testing.T) {
	svc := NewService(newFakePatientRepo())

	err := svc.UpdatePatient(context.Background(), &model.Patient{
		Name:  "No ID",
		Phone: "555-0000",
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestDeleteThenGetPatient(t *testing.T) {
	svc := NewService(newFakePatientRepo())

	p := &model.Patient{Name: "Maria Santos", Phone: "555-0142"}
	require.NoError(t, svc.CreatePatient(context.Background(), p))
	require.NoError(t, svc.DeletePatient(context.Background(), p.ID))

	_, err := svc.GetPatient(context.Background(), p.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSearchShortTermShortCircuits(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewService(repo)

	for _, term := range []string{"", "a", " a ", "  "} {
		results, err := svc.SearchPatients(context.Background(), term)
		require.NoError(t, err)
		assert.Empty(t, results)
	}
	assert.False(t, repo.searched, "short terms must not reach the store")
}

func TestSearchTrimsAndMatches(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewService(repo)

	p := &model.Patient{Name: "Maria Santos", Phone: "555-0142"}
	require.NoError(t, svc.CreatePatient(context.Background(), p))

	results, err := svc.SearchPatients(context.Background(), "  maria  ")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "maria", repo.searchTerm)

	results, err = svc.SearchPatients(context.Background(), "0142")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
