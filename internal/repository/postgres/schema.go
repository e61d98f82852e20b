package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is executed at startup. Statements are idempotent so repeated
// starts against the same database are safe.
const schema = `
CREATE TABLE IF NOT EXISTS patients (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	phone TEXT NOT NULL,
	email TEXT,
	address TEXT,
	birth_date TIMESTAMPTZ,
	gender TEXT,
	emergency_contact TEXT,
	medical_history TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS services (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	price NUMERIC(10,2) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL,
	duration INTEGER NOT NULL,
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL,
	modified_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	id UUID PRIMARY KEY,
	patient_id UUID NOT NULL REFERENCES patients(id),
	total_amount NUMERIC(10,2) NOT NULL,
	payment_method TEXT NOT NULL,
	transaction_date TIMESTAMPTZ NOT NULL,
	status TEXT NOT NULL CHECK (status IN ('pending', 'completed', 'cancelled')),
	notes TEXT NOT NULL DEFAULT '',
	discount_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
	tax_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
	created_by TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS transaction_items (
	id UUID PRIMARY KEY,
	transaction_id UUID NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
	service_id UUID NOT NULL REFERENCES services(id),
	quantity INTEGER NOT NULL CHECK (quantity > 0),
	price NUMERIC(10,2) NOT NULL,
	discount NUMERIC(10,2) NOT NULL DEFAULT 0,
	notes TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS appointments (
	id UUID PRIMARY KEY,
	patient_id UUID NOT NULL REFERENCES patients(id),
	service_id UUID NOT NULL REFERENCES services(id),
	start_time TIMESTAMPTZ NOT NULL,
	end_time TIMESTAMPTZ NOT NULL CHECK (end_time >= start_time),
	status TEXT NOT NULL CHECK (status IN ('scheduled', 'completed', 'cancelled', 'no_show')),
	notes TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	modified_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS staff (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	phone TEXT NOT NULL,
	role TEXT NOT NULL CHECK (role IN ('admin', 'doctor', 'therapist', 'receptionist')),
	active BOOLEAN NOT NULL DEFAULT TRUE,
	password_hash TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	modified_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS doctor_notes (
	id UUID PRIMARY KEY,
	patient_id UUID NOT NULL REFERENCES patients(id),
	medical_history TEXT NOT NULL DEFAULT '',
	progress_notes TEXT NOT NULL DEFAULT '',
	recommendations TEXT NOT NULL DEFAULT '',
	next_steps TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS patient_photos (
	id UUID PRIMARY KEY,
	patient_id UUID NOT NULL REFERENCES patients(id),
	photo_path TEXT NOT NULL,
	photo_type TEXT NOT NULL CHECK (photo_type IN ('before', 'after', 'progress')),
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_patients_name ON patients (name);
CREATE INDEX IF NOT EXISTS idx_transactions_patient ON transactions (patient_id, transaction_date DESC);
CREATE INDEX IF NOT EXISTS idx_transaction_items_txn ON transaction_items (transaction_id);
CREATE INDEX IF NOT EXISTS idx_appointments_patient ON appointments (patient_id, start_time DESC);
CREATE INDEX IF NOT EXISTS idx_appointments_start ON appointments (start_time);
CREATE INDEX IF NOT EXISTS idx_doctor_notes_patient ON doctor_notes (patient_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_patient_photos_patient ON patient_photos (patient_id);
`

// Migrate creates the schema if it does not exist.
func Migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to run schema migration: %w", err)
	}
	return nil
}
