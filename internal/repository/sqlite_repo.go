package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/TenSketch/Aaradhaya-UI-React/internal/domain"

	_ "modernc.org/sqlite"
)

type SQLiteRepo struct {
	db *sql.DB
}

func NewSQLiteRepo(dsn string) (*SQLiteRepo, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	db.Exec("PRAGMA foreign_keys = ON;")
	db.Exec("PRAGMA journal_mode = WAL;")
	db.Exec("PRAGMA busy_timeout = 5000;")

	r := &SQLiteRepo{db: db}
	if err := r.migrate(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepo) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS donations(
			id TEXT PRIMARY KEY,
			donor_name TEXT NOT NULL,
			donor_email TEXT NOT NULL,
			donor_mobile TEXT NOT NULL DEFAULT '',
			donor_aadhar TEXT NOT NULL DEFAULT '',
			donor_pan TEXT NOT NULL DEFAULT '',
			donor_message TEXT NOT NULL DEFAULT '',
			donor_address TEXT NOT NULL DEFAULT '',
			amount_minor INTEGER NOT NULL,
			razorpay_order_id TEXT NOT NULL,
			razorpay_payment_id TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE UNIQUE INDEX IF NOT EXISTS idx_donation_order_payment
			ON donations(razorpay_order_id, razorpay_payment_id);
		CREATE INDEX IF NOT EXISTS idx_donation_email ON donations(donor_email);
		CREATE INDEX IF NOT EXISTS idx_donation_status ON donations(status);

		CREATE TABLE IF NOT EXISTS users(
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			created_at TEXT NOT NULL
		);
	`
	_, err := r.db.Exec(schema)
	return err
}

// InsertDonation appends a donation record. Records are never updated or
// deleted by the service; the unique (order, payment) index makes a repeated
// verified callback a no-op surfaced as ErrDuplicateDonation.
func (r *SQLiteRepo) InsertDonation(ctx context.Context, d *domain.Donation) error {
	q := `
		INSERT INTO donations(
			id,
			donor_name,
			donor_email,
			donor_mobile,
			donor_aadhar,
			donor_pan,
			donor_message,
			donor_address,
			amount_minor,
			razorpay_order_id,
			razorpay_payment_id,
			status,
			created_at
		)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`

	_, err := r.db.ExecContext(
		ctx, q,
		d.ID,
		d.DonorName,
		d.DonorEmail,
		d.DonorMobile,
		d.DonorAadhar,
		d.DonorPAN,
		d.DonorMsg,
		d.DonorAddr,
		d.AmountMinor,
		d.OrderID,
		d.PaymentID,
		string(d.Status),
		d.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.ErrDuplicateDonation
		}
		return err
	}

	return nil
}

func (r *SQLiteRepo) GetDonationByOrderID(ctx context.Context, orderID string) (*domain.Donation, error) {
	q := selectDonation + ` WHERE razorpay_order_id = ?`

	row := r.db.QueryRowContext(ctx, q, orderID)
	d, err := scanDonation(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return d, err
}

type DonationFilter struct {
	DonorEmail string
	OrderID    string
	Status     domain.DonationStatus
}

func (r *SQLiteRepo) ListDonations(ctx context.Context, f DonationFilter, limit, offset int) ([]domain.Donation, error) {
	q := selectDonation + ` WHERE 1 = 1`
	args := []any{}

	if f.DonorEmail != "" {
		q += " AND donor_email = ?"
		args = append(args, f.DonorEmail)
	}

	if f.OrderID != "" {
		q += " AND razorpay_order_id = ?"
		args = append(args, f.OrderID)
	}

	if f.Status != "" {
		q += " AND status = ?"
		args = append(args, string(f.Status))
	}

	q += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}

		res = append(res, *d)
	}

	return res, rows.Err()
}

const selectDonation = `
	SELECT
		id,
		donor_name,
		donor_email,
		donor_mobile,
		donor_aadhar,
		donor_pan,
		donor_message,
		donor_address,
		amount_minor,
		razorpay_order_id,
		razorpay_payment_id,
		status,
		created_at
	FROM donations`

func scanDonation(scanner interface {
	Scan(dest ...any) error
}) (*domain.Donation, error) {
	var d domain.Donation
	var status string
	var createdStr string

	if err := scanner.Scan(
		&d.ID,
		&d.DonorName,
		&d.DonorEmail,
		&d.DonorMobile,
		&d.DonorAadhar,
		&d.DonorPAN,
		&d.DonorMsg,
		&d.DonorAddr,
		&d.AmountMinor,
		&d.OrderID,
		&d.PaymentID,
		&status,
		&createdStr,
	); err != nil {
		return nil, err
	}

	d.Status = domain.DonationStatus(status)

	created, err := time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parse created time: %w", err)
	}
	d.CreatedAt = created

	return &d, nil
}

func (r *SQLiteRepo) CreateUser(ctx context.Context, u *domain.User) error {
	q := `INSERT INTO users(id, name, email, password_hash, role, created_at) VALUES(?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(
		ctx, q,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.ErrEmailTaken
		}
		return err
	}

	return nil
}

func (r *SQLiteRepo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := `SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = ?`

	var u domain.User
	var createdStr string

	err := r.db.QueryRowContext(ctx, q, email).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&createdStr,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	created, err := time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parse created time: %w", err)
	}
	u.CreatedAt = created

	return &u, nil
}
