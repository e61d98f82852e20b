package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dricebeauty/clinic-api/internal/model"
	"github.com/dricebeauty/clinic-api/internal/repository"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
)

// Service turns a cart into a persisted transaction. The price on every
// line is snapshotted from the catalog at checkout time, and the whole sale
// is one atomic write.
type Service struct {
	txnRepo     repository.TransactionRepository
	serviceRepo repository.ServiceRepository
	patientRepo repository.PatientRepository
}

func NewService(txnRepo repository.TransactionRepository, serviceRepo repository.ServiceRepository, patientRepo repository.PatientRepository) *Service {
	return &Service{
		txnRepo:     txnRepo,
		serviceRepo: serviceRepo,
		patientRepo: patientRepo,
	}
}

// Checkout validates the cart, snapshots current service prices into items,
// computes the total and persists everything atomically. The returned
// transaction is completed and satisfies
// total = Σ(price × quantity) − discount + tax exactly.
func (s *Service) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.Transaction, error) {
	if len(req.Lines) == 0 {
		return nil, apperror.Validation("cart is empty", nil)
	}
	if req.DiscountAmount.IsNegative() {
		return nil, apperror.Validation("discount must not be negative", nil)
	}
	if req.TaxAmount.IsNegative() {
		return nil, apperror.Validation("tax must not be negative", nil)
	}

	if _, err := s.patientRepo.Get(ctx, req.PatientID); err != nil {
		return nil, err
	}

	items := make([]*model.TransactionItem, 0, len(req.Lines))
	subtotal := decimal.Zero
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, apperror.Validation("quantity must be positive", nil)
		}

		svc, err := s.serviceRepo.Get(ctx, line.ServiceID)
		if err != nil {
			return nil, err
		}
		if !svc.Active {
			return nil, apperror.Validation("service is not active: "+svc.Name, nil)
		}

		item := &model.TransactionItem{
			ID:        uuid.New(),
			ServiceID: svc.ID,
			Quantity:  line.Quantity,
			Price:     svc.Price,
			Discount:  line.Discount,
			Notes:     line.Notes,
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.LineTotal())
	}

	total := subtotal.Sub(req.DiscountAmount).Add(req.TaxAmount)
	if total.IsNegative() {
		return nil, apperror.Validation("discount exceeds cart total", nil)
	}

	txn := &model.Transaction{
		ID:              uuid.New(),
		PatientID:       req.PatientID,
		TotalAmount:     total,
		PaymentMethod:   req.PaymentMethod,
		TransactionDate: time.Now(),
		Status:          model.TransactionStatusCompleted,
		Notes:           req.Notes,
		DiscountAmount:  req.DiscountAmount,
		TaxAmount:       req.TaxAmount,
		CreatedBy:       req.CreatedBy,
		Items:           items,
	}

	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *Service) GetTransaction(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	return s.txnRepo.Get(ctx, id)
}

// CancelTransaction marks a completed or pending sale as cancelled. Rows are
// never removed; the record stays for reporting.
func (s *Service) CancelTransaction(ctx context.Context, id uuid.UUID) error {
	txn, err := s.txnRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if txn.Status == model.TransactionStatusCancelled {
		return apperror.Conflict("transaction is already cancelled", nil)
	}
	return s.txnRepo.UpdateStatus(ctx, id, model.TransactionStatusCancelled)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Transaction, error) {
	return s.txnRepo.ListByPatient(ctx, patientID)
}

// GetInvoice returns the fully-resolved sale for the document renderer.
func (s *Service) GetInvoice(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	return s.txnRepo.GetInvoice(ctx, id)
}
