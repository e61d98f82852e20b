package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

type Transaction struct {
	ID              uuid.UUID          `db:"id" json:"id"`
	PatientID       uuid.UUID          `db:"patient_id" json:"patient_id"`
	TotalAmount     decimal.Decimal    `db:"total_amount" json:"total_amount"`
	PaymentMethod   string             `db:"payment_method" json:"payment_method"`
	TransactionDate time.Time          `db:"transaction_date" json:"transaction_date"`
	Status          TransactionStatus  `db:"status" json:"status"`
	Notes           string             `db:"notes" json:"notes"`
	DiscountAmount  decimal.Decimal    `db:"discount_amount" json:"discount_amount"`
	TaxAmount       decimal.Decimal    `db:"tax_amount" json:"tax_amount"`
	CreatedBy       string             `db:"created_by" json:"created_by"`
	Items           []*TransactionItem `db:"-" json:"items"`
}

// TransactionItem holds the price charged at sale time. It is copied from
// the service at checkout so later price changes never rewrite history.
type TransactionItem struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	TransactionID uuid.UUID       `db:"transaction_id" json:"transaction_id"`
	ServiceID     uuid.UUID       `db:"service_id" json:"service_id"`
	Quantity      int             `db:"quantity" json:"quantity"`
	Price         decimal.Decimal `db:"price" json:"price"`
	Discount      decimal.Decimal `db:"discount" json:"discount"`
	Notes         string          `db:"notes" json:"notes"`
}

// LineTotal is price × quantity for this item.
func (i *TransactionItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type CheckoutLine struct {
	ServiceID uuid.UUID       `json:"service_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	Discount  decimal.Decimal `json:"discount"`
	Notes     string          `json:"notes"`
}

type CheckoutRequest struct {
	PatientID      uuid.UUID       `json:"patient_id" binding:"required"`
	PaymentMethod  string          `json:"payment_method" binding:"required,oneof=cash card transfer"`
	Lines          []CheckoutLine  `json:"lines" binding:"required,min=1,dive"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Notes          string          `json:"notes"`
	CreatedBy      string          `json:"created_by"`
}

// InvoiceLine is a transaction item resolved with its service name for the
// external document renderer.
type InvoiceLine struct {
	ServiceName string          `json:"service_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// Invoice is the fully-resolved transaction handed to the renderer. The
// record layer supplies only data, never layout.
type Invoice struct {
	TransactionID   uuid.UUID       `json:"transaction_id"`
	PatientName     string          `json:"patient_name"`
	TransactionDate time.Time       `json:"transaction_date"`
	PaymentMethod   string          `json:"payment_method"`
	Lines           []InvoiceLine   `json:"lines"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}
