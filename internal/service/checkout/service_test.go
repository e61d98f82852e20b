package checkout

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dricebeauty/clinic-api/internal/model"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
)

type fakeTxnRepo struct {
	created *model.Transaction
	txns    map[uuid.UUID]*model.Transaction
	status  model.TransactionStatus
}

func (f *fakeTxnRepo) Create(_ context.Context, txn *model.Transaction) error {
	f.created = txn
	return nil
}

func (f *fakeTxnRepo) Get(_ context.Context, id uuid.UUID) (*model.Transaction, error) {
	txn, ok := f.txns[id]
	if !ok {
		return nil, apperror.NotFound("transaction", nil)
	}
	return txn, nil
}

func (f *fakeTxnRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.TransactionStatus) error {
	f.status = status
	return nil
}

func (f *fakeTxnRepo) ListByPatient(_ context.Context, _ uuid.UUID) ([]*model.Transaction, error) {
	return nil, nil
}

func (f *fakeTxnRepo) GetInvoice(_ context.Context, _ uuid.UUID) (*model.Invoice, error) {
	return nil, nil
}

type fakeServiceRepo struct {
	services map[uuid.UUID]*model.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, _ *model.Service) error     { return nil }
func (f *fakeServiceRepo) Update(_ context.Context, _ *model.Service) error     { return nil }
func (f *fakeServiceRepo) Deactivate(_ context.Context, _ uuid.UUID) error      { return nil }
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

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newFixture() (*Service, *fakeTxnRepo, *fakeServiceRepo, *fakePatientRepo, uuid.UUID) {
	patientID := uuid.New()
	txnRepo := &fakeTxnRepo{txns: map[uuid.UUID]*model.Transaction{}}
	serviceRepo := &fakeServiceRepo{services: map[uuid.UUID]*model.Service{}}
	patientRepo := &fakePatientRepo{patients: map[uuid.UUID]*model.Patient{
		patientID: {ID: patientID, Name: "Jane Roe", Phone: "555-0101"},
	}}
	return NewService(txnRepo, serviceRepo, patientRepo), txnRepo, serviceRepo, patientRepo, patientID
}

func TestCheckoutComputesExactTotal(t *testing.T) {
	svc, txnRepo, serviceRepo, _, patientID := newFixture()

	facial := &model.Service{ID: uuid.New(), Name: "Facial", Price: money("45.00"), Active: true}
	peel := &model.Service{ID: uuid.New(), Name: "Chemical Peel", Price: money("60.00"), Active: true}
	serviceRepo.services[facial.ID] = facial
	serviceRepo.services[peel.ID] = peel

	txn, err := svc.Checkout(context.Background(), &model.CheckoutRequest{
		PatientID:     patientID,
		PaymentMethod: "card",
		Lines: []model.CheckoutLine{
			{ServiceID: facial.ID, Quantity: 1},
			{ServiceID: peel.ID, Quantity: 1},
		},
		TaxAmount: money("9.17"),
	})

	require.NoError(t, err)
	assert.True(t, money("114.17").Equal(txn.TotalAmount), "got total %s", txn.TotalAmount)
	assert.Equal(t, model.TransactionStatusCompleted, txn.Status)
	require.NotNil(t, txnRepo.created)
	assert.Len(t, txnRepo.created.Items, 2)
}

func TestCheckoutSnapshotsCatalogPrice(t *testing.T) {
	svc, _, serviceRepo, _, patientID := newFixture()

	botox := &model.Service{ID: uuid.New(), Name: "Botox", Price: money("250.00"), Active: true}
	serviceRepo.services[botox.ID] = botox

	txn, err := svc.Checkout(context.Background(), &model.CheckoutRequest{
		PatientID:     patientID,
		PaymentMethod: "cash",
		Lines:         []model.CheckoutLine{{ServiceID: botox.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// The item carries the price charged, not a reference to the catalog.
	require.Len(t, txn.Items, 1)
	assert.True(t, money("250.00").Equal(txn.Items[0].Price))
	assert.True(t, money("500.00").Equal(txn.TotalAmount))

	botox.Price = money("300.00")
	assert.True(t, money("250.00").Equal(txn.Items[0].Price))
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	svc, _, _, _, patientID := newFixture()

	_, err := svc.Checkout(context.Background(), &model.CheckoutRequest{
		PatientID:     patientID,
		PaymentMethod: "cash",
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestCheckoutRejectsInactiveService(t *testing.T) {
	svc, _, serviceRepo, _, patientID := newFixture()

	retired := &model.Service{ID: uuid.New(), Name: "Old Treatment", Price: money("80.00"), Active: false}
	serviceRepo.services[retired.ID] = retired

	_, err := svc.Checkout(context.Background(), &model.CheckoutRequest{
		PatientID:     patientID,
		PaymentMethod: "cash",
		Lines:         []model.CheckoutLine{{ServiceID: retired.ID, Quantity: 1}},
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestCheckoutRejectsUnknownPatient(t *testing.T) {
	svc, _, serviceRepo, _, _ := newFixture()

	facial := &model.Service{ID: uuid.New(), Name: "Facial", Price: money("45.00"), Active: true}
	serviceRepo.services[facial.ID] = facial

	_, err := svc.Checkout(context.Background(), &model.CheckoutRequest{
		PatientID:     uuid.New(),
		PaymentMethod: "cash",
		Lines:         []model.CheckoutLine{{ServiceID: facial.ID, Quantity: 1}},
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestCheckoutRejectsDiscountExceedingTotal(t *testing.T) {
	svc, _, serviceRepo, _, patientID := newFixture()

	facial := &model.Service{ID: uuid.New(), Name: "Facial", Price: money("45.00"), Active: true}
	serviceRepo.services[facial.ID] = facial

	_, err := svc.Checkout(context.Background(), &model.CheckoutRequest{
		PatientID:      patientID,
		PaymentMethod:  "cash",
		Lines:          []model.CheckoutLine{{ServiceID: facial.ID, Quantity: 1}},
		DiscountAmount: money("100.00"),
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestCheckoutRejectsNegativeAdjustments(t *testing.T) {
	svc, _, serviceRepo, _, patientID := newFixture()

	facial := &model.Service{ID: uuid.New(), Name: "Facial", Price: money("45.00"), Active: true}
	serviceRepo.services[facial.ID] = facial
	lines := []model.CheckoutLine{{ServiceID: facial.ID, Quantity: 1}}

	_, err := svc.Checkout(context.Background(), &model.CheckoutRequest{
		PatientID:      patientID,
		PaymentMethod:  "cash",
		Lines:          lines,
		DiscountAmount: money("-1.00"),
	})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Checkout(context.Background(), &model.CheckoutRequest{
		PatientID:     patientID,
		PaymentMethod: "cash",
		Lines:         lines,
		TaxAmount:     money("-0.01"),
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestCancelTransaction(t *testing.T) {
	svc, txnRepo, _, _, patientID := newFixture()

	id := uuid.New()
	txnRepo.txns[id] = &model.Transaction{
		ID:        id,
		PatientID: patientID,
		Status:    model.TransactionStatusCompleted,
	}

	require.NoError(t, svc.CancelTransaction(context.Background(), id))
	assert.Equal(t, model.TransactionStatusCancelled, txnRepo.status)

	txnRepo.txns[id].Status = model.TransactionStatusCancelled
	err := svc.CancelTransaction(context.Background(), id)
	assert.True(t, apperror.IsConflict(err))

	err = svc.CancelTransaction(context.Background(), uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}
