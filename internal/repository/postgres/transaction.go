package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dricebeauty/clinic-api/internal/model"
	"github.com/dricebeauty/clinic-api/pkg/apperror"
)

// Create writes the transaction row and every item row inside one database
// transaction. This is the checkout atomicity boundary: a failed item insert
// rolls back the whole sale and no partial rows are ever visible.
func (r *transactionRepository) Create(ctx context.Context, txn *model.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	if txn.TransactionDate.IsZero() {
		txn.TransactionDate = time.Now()
	}

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO transactions (
				id, patient_id, total_amount, payment_method, transaction_date,
				status, notes, discount_amount, tax_amount, created_by
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`
		_, err := tx.ExecContext(ctx, query,
			txn.ID,
			txn.PatientID,
			txn.TotalAmount,
			txn.PaymentMethod,
			txn.TransactionDate,
			txn.Status,
			txn.Notes,
			txn.DiscountAmount,
			txn.TaxAmount,
			txn.CreatedBy,
		)
		if err != nil {
			return apperror.Persistence("failed to create transaction", err)
		}

		itemQuery := `
			INSERT INTO transaction_items (
				id, transaction_id, service_id, quantity, price, discount, notes
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		for _, item := range txn.Items {
			if item.ID == uuid.Nil {
				item.ID = uuid.New()
			}
			item.TransactionID = txn.ID

			_, err := tx.ExecContext(ctx, itemQuery,
				item.ID,
				item.TransactionID,
				item.ServiceID,
				item.Quantity,
				item.Price,
				item.Discount,
				item.Notes,
			)
			if err != nil {
				return apperror.Persistence("failed to create transaction item", err)
			}
		}
		return nil
	})
}

func (r *transactionRepository) Get(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	query := `SELECT * FROM transactions WHERE id = $1`
	var txn model.Transaction
	err := r.db.GetContext(ctx, &txn, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("transaction", err)
	}
	if err != nil {
		return nil, apperror.Persistence("failed to get transaction", err)
	}

	items := []*model.TransactionItem{}
	itemQuery := `SELECT * FROM transaction_items WHERE transaction_id = $1 ORDER BY id`
	if err := r.db.SelectContext(ctx, &items, itemQuery, id); err != nil {
		return nil, apperror.Persistence("failed to get transaction items", err)
	}
	txn.Items = items

	return &txn, nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TransactionStatus) error {
	query := `UPDATE transactions SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return apperror.Persistence("failed to update transaction status", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Persistence("failed to get rows affected", err)
	}
	if rows == 0 {
		return apperror.NotFound("transaction", nil)
	}
	return nil
}

func (r *transactionRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Transaction, error) {
	query := `
		SELECT * FROM transactions
		WHERE patient_id = $1
		ORDER BY transaction_date DESC
	`
	txns := []*model.Transaction{}
	if err := r.db.SelectContext(ctx, &txns, query, patientID); err != nil {
		return nil, apperror.Persistence("failed to list transactions", err)
	}
	return txns, nil
}

// GetInvoice resolves a transaction with patient name and service names
// joined, ready for the external document renderer.
func (r *transactionRepository) GetInvoice(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	txn, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var patientName string
	if err := r.db.GetContext(ctx, &patientName, `SELECT name FROM patients WHERE id = $1`, txn.PatientID); err != nil {
		return nil, apperror.Persistence("failed to resolve patient name", err)
	}

	type lineRow struct {
		ServiceName string `db:"service_name"`
		model.TransactionItem
	}
	rows := []lineRow{}
	query := `
		SELECT ti.*, s.name AS service_name
		FROM transaction_items ti
		JOIN services s ON ti.service_id = s.id
		WHERE ti.transaction_id = $1
		ORDER BY ti.id
	`
	if err := r.db.SelectContext(ctx, &rows, query, id); err != nil {
		return nil, apperror.Persistence("failed to resolve invoice lines", err)
	}

	invoice := &model.Invoice{
		TransactionID:   txn.ID,
		PatientName:     patientName,
		TransactionDate: txn.TransactionDate,
		PaymentMethod:   txn.PaymentMethod,
		DiscountAmount:  txn.DiscountAmount,
		TaxAmount:       txn.TaxAmount,
		TotalAmount:     txn.TotalAmount,
	}
	for _, row := range rows {
		line := model.InvoiceLine{
			ServiceName: row.ServiceName,
			Quantity:    row.Quantity,
			Price:       row.Price,
			Discount:    row.Discount,
			LineTotal:   row.LineTotal(),
		}
		invoice.Lines = append(invoice.Lines, line)
		invoice.Subtotal = invoice.Subtotal.Add(line.LineTotal)
	}

	return invoice, nil
}
