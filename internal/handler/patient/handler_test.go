package patient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dricebeauty/clinic-api/internal/handler"
	"github.com/dricebeauty/clinic-api/internal/model"
	patientService "github.com/dricebeauty/clinic-api/internal/service/patient"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
)

type fakePatientRepo struct {
	patients map[uuid.UUID]*model.Patient
}

func (f *fakePatientRepo) Create(_ context.Context, p *model.Patient) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.patients[p.ID] = p
	return nil
}

func (f *fakePatientRepo) Get(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, apperror.NotFound("patient", nil)
	}
	return p, nil
}

func (f *fakePatientRepo) Update(_ context.Context, p *model.Patient) error {
	if _, ok := f.patients[p.ID]; !ok {
		return apperror.NotFound("patient", nil)
	}
	f.patients[p.ID] = p
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
	return nil, nil
}

func (f *fakePatientRepo) GetHistory(_ context.Context, id uuid.UUID) (*model.PatientHistory, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, apperror.NotFound("patient", nil)
	}
	return &model.PatientHistory{Patient: p}, nil
}

func setupRouter(repo *fakePatientRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler.RegisterValidations()

	r := gin.New()
	h := NewHandler(patientService.NewService(repo))
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndGetPatientEndpoint(t *testing.T) {
	repo := &fakePatientRepo{patients: map[uuid.UUID]*model.Patient{}}
	r := setupRouter(repo)

	w := doRequest(r, http.MethodPost, "/api/v1/patients", map[string]interface{}{
		"name":  "Maria Santos",
		"phone": "555-0142",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Status string        `json:"status"`
		Data   model.Patient `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "success", created.Status)
	assert.NotEqual(t, uuid.Nil, created.Data.ID)

	w = doRequest(r, http.MethodGet, "/api/v1/patients/"+created.Data.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Data model.Patient `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Maria Santos", got.Data.Name)
}

func TestCreatePatientRejectsBadBody(t *testing.T) {
	r := setupRouter(&fakePatientRepo{patients: map[uuid.UUID]*model.Patient{}})

	// Missing phone.
	w := doRequest(r, http.MethodPost, "/api/v1/patients", map[string]interface{}{
		"name": "Maria Santos",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Phone with letters.
	w = doRequest(r, http.MethodPost, "/api/v1/patients", map[string]interface{}{
		"name":  "Maria Santos",
		"phone": "not a phone",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPatientNotFound(t *testing.T) {
	r := setupRouter(&fakePatientRepo{patients: map[uuid.UUID]*model.Patient{}})

	w := doRequest(r, http.MethodGet, "/api/v1/patients/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
}

func TestGetPatientInvalidID(t *testing.T) {
	r := setupRouter(&fakePatientRepo{patients: map[uuid.UUID]*model.Patient{}})

	w := doRequest(r, http.MethodGet, "/api/v1/patients/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteThenGet(t *testing.T) {
	repo := &fakePatientRepo{patients: map[uuid.UUID]*model.Patient{}}
	r := setupRouter(repo)

	p := &model.Patient{Name: "Maria Santos", Phone: "555-0142"}
	require.NoError(t, repo.Create(context.Background(), p))

	w := doRequest(r, http.MethodDelete, "/api/v1/patients/"+p.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/patients/"+p.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
